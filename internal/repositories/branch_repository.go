package repositories

import (
	"errors"

	"legalvault_backend/internal/models"

	"gorm.io/gorm"
)

var ErrBranchNotFound = errors.New("branch not found")

type BranchRepository interface {
	FindAll() ([]models.Branch, error)
	FindByID(id uint) (*models.Branch, error)
	Create(branch *models.Branch) error
	Update(id uint, updates map[string]interface{}) (*models.Branch, error)
	Delete(id uint) (*models.Branch, error)
}

type BranchRepositoryImpl struct {
	db *gorm.DB
}

func NewBranchRepository(db *gorm.DB) BranchRepository {
	return &BranchRepositoryImpl{db: db}
}

func (r *BranchRepositoryImpl) FindAll() ([]models.Branch, error) {
	var branches []models.Branch
	err := r.db.Order("id ASC").Find(&branches).Error
	return branches, err
}

func (r *BranchRepositoryImpl) FindByID(id uint) (*models.Branch, error) {
	var branch models.Branch
	err := r.db.First(&branch, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBranchNotFound
		}
		return nil, err
	}
	return &branch, nil
}

func (r *BranchRepositoryImpl) Create(branch *models.Branch) error {
	return r.db.Create(branch).Error
}

func (r *BranchRepositoryImpl) Update(id uint, updates map[string]interface{}) (*models.Branch, error) {
	if len(updates) > 0 {
		result := r.db.Model(&models.Branch{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, ErrBranchNotFound
		}
	}
	return r.FindByID(id)
}

func (r *BranchRepositoryImpl) Delete(id uint) (*models.Branch, error) {
	branch, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Delete(&models.Branch{}, id).Error; err != nil {
		return nil, err
	}
	return branch, nil
}
