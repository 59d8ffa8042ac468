package services

import (
	"context"
	"encoding/json"
	"errors"

	"legalvault_backend/internal/auth"
	"legalvault_backend/internal/logger"
	"legalvault_backend/internal/models"
	"legalvault_backend/internal/repositories"
	"legalvault_backend/internal/services/dto"
	"legalvault_backend/internal/storage"
	"legalvault_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

// DocumentService owns document CRUD and the trash lifecycle:
// Active -> Trashed (restorable) -> Purged (gone for good). Trashing is
// permissive: re-trashing an already trashed document just re-stamps
// the markers, and purging works from either state.
type DocumentService interface {
	GetDocument(id uint) (*models.Document, error)
	ListDocuments() ([]models.Document, error)
	ListTrash() ([]models.Document, error)
	ListByCase(caseID uint) ([]models.Document, error)
	ListBySubmitter(userID uint) ([]models.Document, error)
	ListByLawyer(lawyerID uint) ([]models.Document, error)
	ListTasksForUser(userID uint) ([]models.Document, error)
	CreateDocument(actorID uint, req *dto.CreateDocumentRequest, filePath string) (*models.Document, error)
	UpdateDocument(actorID, id uint, req *dto.UpdateDocumentRequest) (*models.Document, error)
	SearchDocuments(term string) ([]models.Document, error)

	TrashDocument(actorID, id uint) (*models.Document, error)
	RestoreDocument(id uint) (*models.Document, error)
	PurgeDocument(id uint) (*models.Document, error)

	// RemoveReference drops one path from the document's reference set and
	// deletes the stored file.
	RemoveReference(id uint, path string) (*models.Document, error)
	CheckPassword(id uint, password string) error

	Counts() (*dto.DocumentCountsResponse, error)
	CountsForUser(userID uint) (*dto.DocumentCountsResponse, error)
}

type documentService struct {
	docRepo  repositories.DocumentRepository
	caseRepo repositories.CaseRepository
	files    storage.Storage
}

func NewDocumentService(docRepo repositories.DocumentRepository, caseRepo repositories.CaseRepository, files storage.Storage) DocumentService {
	return &documentService{docRepo: docRepo, caseRepo: caseRepo, files: files}
}

func (s *documentService) GetDocument(id uint) (*models.Document, error) {
	doc, err := s.docRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrDocumentNotFound) {
			return nil, apperrors.NewNotFoundError("document", "Document not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return doc, nil
}

func (s *documentService) ListDocuments() ([]models.Document, error) {
	docs, err := s.docRepo.FindAll(false)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return docs, nil
}

func (s *documentService) ListTrash() ([]models.Document, error) {
	all, err := s.docRepo.FindAll(true)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	trashed := make([]models.Document, 0)
	for i := range all {
		if all[i].IsDeleted {
			trashed = append(trashed, all[i])
		}
	}
	return trashed, nil
}

func (s *documentService) ListByCase(caseID uint) ([]models.Document, error) {
	if _, err := s.caseRepo.FindByID(caseID); err != nil {
		if errors.Is(err, repositories.ErrCaseNotFound) {
			return nil, apperrors.NewNotFoundError("case", "Case not found")
		}
		return nil, apperrors.InternalError(err)
	}
	docs, err := s.docRepo.FindByCase(caseID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return docs, nil
}

func (s *documentService) ListBySubmitter(userID uint) ([]models.Document, error) {
	docs, err := s.docRepo.FindBySubmitter(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return docs, nil
}

func (s *documentService) ListByLawyer(lawyerID uint) ([]models.Document, error) {
	docs, err := s.docRepo.FindByLawyer(lawyerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return docs, nil
}

func (s *documentService) ListTasksForUser(userID uint) ([]models.Document, error) {
	docs, err := s.docRepo.FindTasksForUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return docs, nil
}

func (s *documentService) CreateDocument(actorID uint, req *dto.CreateDocumentRequest, filePath string) (*models.Document, error) {
	if req.CaseID != nil {
		if _, err := s.caseRepo.FindByID(*req.CaseID); err != nil {
			if errors.Is(err, repositories.ErrCaseNotFound) {
				return nil, apperrors.NewNotFoundError("case", "Case not found")
			}
			return nil, apperrors.InternalError(err)
		}
	}

	doc := &models.Document{
		Name:        req.Name,
		Type:        models.DocumentType(req.Type),
		Description: req.Description,
		Task:        req.Task,
		File:        filePath,
		PrioLevel:   req.PrioLevel,
		DueDate:     req.DueDate,
		Status:      req.Status,
		Tag:         req.Tag,
		TaskedTo:    req.TaskedTo,
		TaskedBy:    req.TaskedBy,
		SubmittedBy: req.SubmittedBy,
		CaseID:      req.CaseID,
	}
	if doc.SubmittedBy == nil {
		doc.SubmittedBy = &actorID
	}

	if req.Password != "" {
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		doc.Password = hash
	}

	if refs := dedupStrings(req.References); len(refs) > 0 {
		raw, err := json.Marshal(refs)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		doc.References = datatypes.JSON(raw)
	}

	if err := s.docRepo.Create(doc); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return doc, nil
}

func (s *documentService) UpdateDocument(actorID, id uint, req *dto.UpdateDocumentRequest) (*models.Document, error) {
	doc, err := s.GetDocument(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"last_updated_by": actorID,
	}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Task != nil {
		updates["task"] = *req.Task
	}
	if req.PrioLevel != nil {
		updates["prio_level"] = *req.PrioLevel
	}
	if req.DueDate != nil {
		updates["due_date"] = req.DueDate
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.Tag != nil {
		updates["tag"] = *req.Tag
	}
	if req.TaskedTo != nil {
		updates["tasked_to"] = req.TaskedTo
	}
	if req.CaseID != nil {
		updates["case_id"] = req.CaseID
	}
	if req.IsTrashed != nil {
		updates["is_trashed"] = *req.IsTrashed
	}
	if req.TrashedBy != nil {
		updates["trashed_by"] = req.TrashedBy
	}
	if req.TrashedDate != nil {
		updates["trashed_date"] = req.TrashedDate
	}
	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		updates["password"] = hash
	}

	// References merge into the stored set rather than replacing it.
	if req.References != nil {
		merged, err := mergeReferences(doc.References, req.References)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		updates["doc_reference"] = merged
	}

	updated, err := s.docRepo.Update(id, updates)
	if err != nil {
		if errors.Is(err, repositories.ErrDocumentNotFound) {
			return nil, apperrors.NewNotFoundError("document", "Document not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return updated, nil
}

func (s *documentService) SearchDocuments(term string) ([]models.Document, error) {
	docs, err := s.docRepo.Search(term)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return docs, nil
}

func (s *documentService) TrashDocument(actorID, id uint) (*models.Document, error) {
	doc, err := s.docRepo.SoftDelete(id, actorID)
	if err != nil {
		if errors.Is(err, repositories.ErrDocumentNotFound) {
			return nil, apperrors.NewNotFoundError("document", "Document not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return doc, nil
}

func (s *documentService) RestoreDocument(id uint) (*models.Document, error) {
	doc, err := s.docRepo.Restore(id)
	if err != nil {
		if errors.Is(err, repositories.ErrDocumentNotFound) {
			return nil, apperrors.NewNotFoundError("document", "Document not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return doc, nil
}

func (s *documentService) PurgeDocument(id uint) (*models.Document, error) {
	doc, err := s.docRepo.PermanentDelete(id)
	if err != nil {
		if errors.Is(err, repositories.ErrDocumentNotFound) {
			return nil, apperrors.NewNotFoundError("document", "Document not found")
		}
		return nil, apperrors.InternalError(err)
	}

	// Best-effort cleanup of the stored files; the row is already gone.
	go func(d models.Document) {
		ctx := context.Background()
		if d.File != "" {
			if err := s.files.Delete(ctx, d.File); err != nil {
				logger.Error("failed to delete document file", "doc_id", d.ID, "error", err)
			}
		}
		for _, ref := range decodeReferences(d.References) {
			if err := s.files.Delete(ctx, ref); err != nil {
				logger.Error("failed to delete reference file", "doc_id", d.ID, "path", ref, "error", err)
			}
		}
	}(*doc)

	return doc, nil
}

func (s *documentService) RemoveReference(id uint, path string) (*models.Document, error) {
	doc, err := s.GetDocument(id)
	if err != nil {
		return nil, err
	}

	refs := decodeReferences(doc.References)
	kept := make([]string, 0, len(refs))
	found := false
	for _, ref := range refs {
		if ref == path {
			found = true
			continue
		}
		kept = append(kept, ref)
	}
	if !found {
		return nil, apperrors.NewNotFoundError("document", "Reference not found on this document")
	}

	var next datatypes.JSON
	if len(kept) > 0 {
		raw, err := json.Marshal(kept)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		next = datatypes.JSON(raw)
	}

	updated, err := s.docRepo.SetReferences(id, next)
	if err != nil {
		if errors.Is(err, repositories.ErrDocumentNotFound) {
			return nil, apperrors.NewNotFoundError("document", "Document not found")
		}
		return nil, apperrors.InternalError(err)
	}

	go func() {
		if err := s.files.Delete(context.Background(), path); err != nil {
			logger.Error("failed to delete reference file", "doc_id", id, "path", path, "error", err)
		}
	}()

	return updated, nil
}

func (s *documentService) CheckPassword(id uint, password string) error {
	doc, err := s.GetDocument(id)
	if err != nil {
		return err
	}
	if doc.Password == "" {
		return nil
	}
	if !auth.CheckPasswordHash(password, doc.Password) {
		return apperrors.ErrInvalidCredentials
	}
	return nil
}

func (s *documentService) Counts() (*dto.DocumentCountsResponse, error) {
	todo, err := s.docRepo.CountByDocStatus(models.DocStatusTodo)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	done, err := s.docRepo.CountByDocStatus(models.DocStatusDone)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	approved, err := s.docRepo.CountByDocStatus(models.DocStatusApproved)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	pending, err := s.docRepo.CountPendingTasks()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	processing, err := s.docRepo.CountProcessing()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.DocumentCountsResponse{
		Todo:         todo,
		Done:         done,
		Approved:     approved,
		PendingTasks: pending,
		Processing:   processing,
	}, nil
}

func (s *documentService) CountsForUser(userID uint) (*dto.DocumentCountsResponse, error) {
	pending, err := s.docRepo.CountUserPendingTasks(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	processing, err := s.docRepo.CountProcessingByLawyer(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.DocumentCountsResponse{
		PendingTasks: pending,
		Processing:   processing,
	}, nil
}

func decodeReferences(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return nil
	}
	var refs []string
	if err := json.Unmarshal(raw, &refs); err != nil {
		return nil
	}
	return refs
}

func dedupStrings(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// mergeReferences unions the stored set with the incoming paths,
// keeping stored order and appending new paths at the end.
func mergeReferences(stored datatypes.JSON, incoming []string) (datatypes.JSON, error) {
	merged := dedupStrings(append(decodeReferences(stored), incoming...))
	if len(merged) == 0 {
		return nil, nil
	}
	raw, err := json.Marshal(merged)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}
