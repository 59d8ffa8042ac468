package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"legalvault_backend/internal/models"
	"legalvault_backend/internal/repositories"
	"legalvault_backend/internal/services/dto"
	"legalvault_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

// CaseService owns case CRUD plus the visibility overlay: a case is
// visible to its owner, to members of its allow-list, and to everyone
// when it has no owner. Admins bypass the overlay.
type CaseService interface {
	GetCase(actorID uint, actorRole string, id uint) (*models.LegalCase, error)
	ListCases(actorID uint, actorRole string) ([]models.LegalCase, error)
	CreateCase(actorID uint, req *dto.CreateCaseRequest) (*models.LegalCase, error)
	UpdateCase(actorID uint, actorRole string, id uint, req *dto.UpdateCaseRequest) (*models.LegalCase, error)
	DeleteCase(id uint) (*models.LegalCase, error)
	SearchCases(actorID uint, actorRole string, term string) ([]models.LegalCase, error)
	CountCases() (*dto.CaseCountsResponse, error)
	CountCasesForUser(actorID uint) (*dto.CaseCountsResponse, error)

	// ShareAccess replaces the allow-list wholesale. Only the owner or an
	// Admin may edit it; an empty list revokes all shared access.
	ShareAccess(actorID uint, actorRole string, caseID uint, req *dto.ShareAccessRequest) (*models.LegalCase, error)

	// Taxonomy
	ListCategories() ([]models.CaseCategory, error)
	ListTypes() ([]models.CaseType, error)
	CreateCategory(req *dto.CreateCategoryRequest) (*models.CaseCategory, error)
	CreateType(req *dto.CreateTypeRequest) (*models.CaseType, error)
}

type caseService struct {
	caseRepo   repositories.CaseRepository
	clientRepo repositories.ClientRepository
}

func NewCaseService(caseRepo repositories.CaseRepository, clientRepo repositories.ClientRepository) CaseService {
	return &caseService{caseRepo: caseRepo, clientRepo: clientRepo}
}

// viewerListContains reports whether the stored allow-list includes the
// user. A NULL list means nobody was granted shared access.
func viewerListContains(list datatypes.JSON, userID uint) bool {
	if len(list) == 0 {
		return false
	}
	var ids []uint
	if err := json.Unmarshal(list, &ids); err != nil {
		return false
	}
	for _, id := range ids {
		if id == userID {
			return true
		}
	}
	return false
}

// canView applies the visibility rule: owner, allow-list member, or an
// unassigned case.
func canView(c *models.LegalCase, userID uint) bool {
	if c.UserID == nil {
		return true
	}
	if *c.UserID == userID {
		return true
	}
	return viewerListContains(c.AllowedViewers, userID)
}

func isAdmin(role string) bool {
	return models.UserRole(role) == models.UserRoleAdmin
}

func (s *caseService) GetCase(actorID uint, actorRole string, id uint) (*models.LegalCase, error) {
	c, err := s.caseRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrCaseNotFound) {
			return nil, apperrors.NewNotFoundError("case", "Case not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if !isAdmin(actorRole) && !canView(c, actorID) {
		return nil, apperrors.ErrInsufficientPermissions
	}
	return c, nil
}

func (s *caseService) ListCases(actorID uint, actorRole string) ([]models.LegalCase, error) {
	if isAdmin(actorRole) {
		cases, err := s.caseRepo.FindAll()
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		return cases, nil
	}

	candidates, err := s.caseRepo.FindCandidatesForViewer(actorID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	visible := make([]models.LegalCase, 0, len(candidates))
	for i := range candidates {
		if canView(&candidates[i], actorID) {
			visible = append(visible, candidates[i])
		}
	}
	return visible, nil
}

func (s *caseService) CreateCase(actorID uint, req *dto.CreateCaseRequest) (*models.LegalCase, error) {
	if req.ClientID != nil {
		if _, err := s.clientRepo.FindByID(*req.ClientID); err != nil {
			if errors.Is(err, repositories.ErrClientNotFound) {
				return nil, apperrors.NewNotFoundError("client", "Client not found")
			}
			return nil, apperrors.InternalError(err)
		}
	}

	c := &models.LegalCase{
		Status:     models.CaseStatusProcessing,
		Fee:        req.Fee,
		Balance:    req.Fee,
		Remarks:    req.Remarks,
		Cabinet:    req.Cabinet,
		Drawer:     req.Drawer,
		UserID:     req.UserID,
		ClientID:   req.ClientID,
		CategoryID: req.CategoryID,
		TypeID:     req.TypeID,
		AssignedBy: &actorID,
		Tag:        req.Tag,
	}
	if len(req.TagList) > 0 {
		raw, err := json.Marshal(req.TagList)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		c.TagList = datatypes.JSON(raw)
	}

	if err := s.caseRepo.Create(c); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.caseRepo.FindByID(c.ID)
}

func (s *caseService) UpdateCase(actorID uint, actorRole string, id uint, req *dto.UpdateCaseRequest) (*models.LegalCase, error) {
	c, err := s.caseRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrCaseNotFound) {
			return nil, apperrors.NewNotFoundError("case", "Case not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if !isAdmin(actorRole) && c.UserID != nil && *c.UserID != actorID {
		return nil, apperrors.ErrInsufficientPermissions
	}

	if req.Status != nil {
		c.Status = *req.Status
	}
	if req.Fee != nil {
		c.Fee = *req.Fee
	}
	if req.Balance != nil {
		c.Balance = *req.Balance
	}
	if req.Remarks != nil {
		c.Remarks = *req.Remarks
	}
	if req.Cabinet != nil {
		c.Cabinet = *req.Cabinet
	}
	if req.Drawer != nil {
		c.Drawer = *req.Drawer
	}
	if req.UserID != nil {
		c.UserID = req.UserID
	}
	if req.ClientID != nil {
		c.ClientID = req.ClientID
	}
	if req.CategoryID != nil {
		c.CategoryID = req.CategoryID
	}
	if req.TypeID != nil {
		c.TypeID = req.TypeID
	}
	if req.Tag != nil {
		c.Tag = *req.Tag
	}
	if req.TagList != nil {
		raw, err := json.Marshal(req.TagList)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		c.TagList = datatypes.JSON(raw)
	}
	if req.Verdict != nil {
		c.Verdict = *req.Verdict
	}
	c.LastUpdatedBy = &actorID

	if err := s.caseRepo.Update(c); err != nil {
		if errors.Is(err, repositories.ErrCaseNotFound) {
			return nil, apperrors.NewNotFoundError("case", "Case not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return s.caseRepo.FindByID(id)
}

func (s *caseService) DeleteCase(id uint) (*models.LegalCase, error) {
	c, err := s.caseRepo.Delete(id)
	if err != nil {
		if errors.Is(err, repositories.ErrCaseNotFound) {
			return nil, apperrors.NewNotFoundError("case", "Case not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return c, nil
}

func (s *caseService) SearchCases(actorID uint, actorRole string, term string) ([]models.LegalCase, error) {
	matches, err := s.caseRepo.Search(term)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if isAdmin(actorRole) {
		return matches, nil
	}
	visible := make([]models.LegalCase, 0, len(matches))
	for i := range matches {
		if canView(&matches[i], actorID) {
			visible = append(visible, matches[i])
		}
	}
	return visible, nil
}

func (s *caseService) CountCases() (*dto.CaseCountsResponse, error) {
	processing, err := s.caseRepo.CountByStatus(models.CaseStatusProcessing)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	archived, err := s.caseRepo.CountByStatus(
		models.CaseStatusArchivedCompleted,
		models.CaseStatusArchivedDismissed,
	)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.CaseCountsResponse{
		Processing: processing,
		Archived:   archived,
		Total:      processing + archived,
	}, nil
}

func (s *caseService) CountCasesForUser(actorID uint) (*dto.CaseCountsResponse, error) {
	processing, err := s.caseRepo.CountByStatusForOwner(actorID, models.CaseStatusProcessing)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	archived, err := s.caseRepo.CountByStatusForOwner(
		actorID,
		models.CaseStatusArchivedCompleted,
		models.CaseStatusArchivedDismissed,
	)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.CaseCountsResponse{
		Processing: processing,
		Archived:   archived,
		Total:      processing + archived,
	}, nil
}

func (s *caseService) ShareAccess(actorID uint, actorRole string, caseID uint, req *dto.ShareAccessRequest) (*models.LegalCase, error) {
	// Existence is checked before permission so a caller cannot tell a
	// forbidden case from a missing one by probing ids.
	c, err := s.caseRepo.FindByID(caseID)
	if err != nil {
		if errors.Is(err, repositories.ErrCaseNotFound) {
			return nil, apperrors.NewNotFoundError("case", "Case not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if !isAdmin(actorRole) && !(c.UserID != nil && *c.UserID == actorID) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	// Dedup preserving first occurrence order.
	seen := make(map[uint]bool, len(req.UserIDs))
	ids := make([]uint, 0, len(req.UserIDs))
	for _, id := range req.UserIDs {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	// An empty list stores SQL NULL, not an empty JSON array.
	var viewers datatypes.JSON
	if len(ids) > 0 {
		raw, err := json.Marshal(ids)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		viewers = datatypes.JSON(raw)
	}

	updated, err := s.caseRepo.UpdateAllowedViewers(caseID, viewers, &actorID)
	if err != nil {
		if errors.Is(err, repositories.ErrCaseNotFound) {
			return nil, apperrors.NewNotFoundError("case", "Case not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return updated, nil
}

// --- Taxonomy ---

func (s *caseService) ListCategories() ([]models.CaseCategory, error) {
	categories, err := s.caseRepo.FindCategories()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return categories, nil
}

func (s *caseService) ListTypes() ([]models.CaseType, error) {
	types, err := s.caseRepo.FindTypes()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return types, nil
}

func (s *caseService) CreateCategory(req *dto.CreateCategoryRequest) (*models.CaseCategory, error) {
	category := &models.CaseCategory{Name: req.Name}
	if err := s.caseRepo.CreateCategory(category); err != nil {
		if errors.Is(err, repositories.ErrCategoryNameExists) {
			return nil, apperrors.NewAlreadyExistsError("case_category", "A category with this name already exists")
		}
		return nil, apperrors.InternalError(err)
	}
	return category, nil
}

func (s *caseService) CreateType(req *dto.CreateTypeRequest) (*models.CaseType, error) {
	t := &models.CaseType{
		Name:       req.Name,
		CategoryID: req.CategoryID,
		FeeRange:   fmt.Sprintf("₱%.2f - ₱%.2f", req.FeeMin, req.FeeMax),
	}
	if err := s.caseRepo.CreateType(t); err != nil {
		if errors.Is(err, repositories.ErrTypeNameExists) {
			return nil, apperrors.NewAlreadyExistsError("case_type", "A case type with this name already exists")
		}
		return nil, apperrors.InternalError(err)
	}
	return t, nil
}
