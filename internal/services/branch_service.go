package services

import (
	"errors"

	"legalvault_backend/internal/models"
	"legalvault_backend/internal/repositories"
	"legalvault_backend/internal/services/dto"
	"legalvault_backend/pkg/apperrors"
)

type BranchService interface {
	GetBranch(id uint) (*models.Branch, error)
	ListBranches() ([]models.Branch, error)
	CreateBranch(req *dto.CreateBranchRequest) (*models.Branch, error)
	UpdateBranch(id uint, req *dto.UpdateBranchRequest) (*models.Branch, error)
	DeleteBranch(id uint) (*models.Branch, error)
}

type branchService struct {
	branchRepo repositories.BranchRepository
}

func NewBranchService(branchRepo repositories.BranchRepository) BranchService {
	return &branchService{branchRepo: branchRepo}
}

func (s *branchService) GetBranch(id uint) (*models.Branch, error) {
	branch, err := s.branchRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrBranchNotFound) {
			return nil, apperrors.NewNotFoundError("branch", "Branch not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return branch, nil
}

func (s *branchService) ListBranches() ([]models.Branch, error) {
	branches, err := s.branchRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return branches, nil
}

func (s *branchService) CreateBranch(req *dto.CreateBranchRequest) (*models.Branch, error) {
	branch := &models.Branch{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
	}
	if err := s.branchRepo.Create(branch); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return branch, nil
}

func (s *branchService) UpdateBranch(id uint, req *dto.UpdateBranchRequest) (*models.Branch, error) {
	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}

	branch, err := s.branchRepo.Update(id, updates)
	if err != nil {
		if errors.Is(err, repositories.ErrBranchNotFound) {
			return nil, apperrors.NewNotFoundError("branch", "Branch not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return branch, nil
}

func (s *branchService) DeleteBranch(id uint) (*models.Branch, error) {
	branch, err := s.branchRepo.Delete(id)
	if err != nil {
		if errors.Is(err, repositories.ErrBranchNotFound) {
			return nil, apperrors.NewNotFoundError("branch", "Branch not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return branch, nil
}
