package services

import (
	"errors"

	"legalvault_backend/internal/models"
	"legalvault_backend/internal/repositories"
	"legalvault_backend/internal/services/dto"
	"legalvault_backend/pkg/apperrors"
)

// CaseTagService manages the registry of progress tags shown on the
// case timeline. Names are unique ignoring case; sequence numbers are
// advisory and may repeat or leave gaps.
type CaseTagService interface {
	ListTags() ([]models.CaseTag, error)
	CreateTag(actorID uint, req *dto.CreateCaseTagRequest) (*models.CaseTag, error)
	UpdateTag(id uint, req *dto.UpdateCaseTagRequest) (*models.CaseTag, error)
}

type caseTagService struct {
	tagRepo repositories.CaseTagRepository
}

func NewCaseTagService(tagRepo repositories.CaseTagRepository) CaseTagService {
	return &caseTagService{tagRepo: tagRepo}
}

func (s *caseTagService) ListTags() ([]models.CaseTag, error) {
	tags, err := s.tagRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return tags, nil
}

func (s *caseTagService) CreateTag(actorID uint, req *dto.CreateCaseTagRequest) (*models.CaseTag, error) {
	tag := &models.CaseTag{
		Name:        req.Name,
		SequenceNum: req.SequenceNum,
		CreatedBy:   &actorID,
	}
	if err := s.tagRepo.Create(tag); err != nil {
		if errors.Is(err, repositories.ErrCaseTagNameExists) {
			return nil, apperrors.NewAlreadyExistsError("case_tag", "A tag with this name already exists")
		}
		return nil, apperrors.InternalError(err)
	}
	return tag, nil
}

func (s *caseTagService) UpdateTag(id uint, req *dto.UpdateCaseTagRequest) (*models.CaseTag, error) {
	tag, err := s.tagRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrCaseTagNotFound) {
			return nil, apperrors.NewNotFoundError("case_tag", "Case tag not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Name != nil && *req.Name != tag.Name {
		// Renaming must not collide with another tag, ignoring case.
		if existing, err := s.tagRepo.FindByName(*req.Name); err == nil && existing.ID != tag.ID {
			return nil, apperrors.NewAlreadyExistsError("case_tag", "A tag with this name already exists")
		} else if err != nil && !errors.Is(err, repositories.ErrCaseTagNotFound) {
			return nil, apperrors.InternalError(err)
		}
		tag.Name = *req.Name
	}
	if req.SequenceNum != nil {
		tag.SequenceNum = req.SequenceNum
	}

	if err := s.tagRepo.Update(tag); err != nil {
		if errors.Is(err, repositories.ErrCaseTagNotFound) {
			return nil, apperrors.NewNotFoundError("case_tag", "Case tag not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return tag, nil
}
