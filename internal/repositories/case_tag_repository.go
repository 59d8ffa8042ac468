package repositories

import (
	"errors"

	"legalvault_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCaseTagNotFound   = errors.New("case tag not found")
	ErrCaseTagNameExists = errors.New("case tag already exists")
)

type CaseTagRepository interface {
	FindAll() ([]models.CaseTag, error)
	FindByID(id uint) (*models.CaseTag, error)
	// FindByName matches case-insensitively; the uniqueness rule treats
	// "Filing" and "filing" as the same tag.
	FindByName(name string) (*models.CaseTag, error)
	Create(tag *models.CaseTag) error
	Update(tag *models.CaseTag) error
}

type CaseTagRepositoryImpl struct {
	db *gorm.DB
}

func NewCaseTagRepository(db *gorm.DB) CaseTagRepository {
	return &CaseTagRepositoryImpl{db: db}
}

func (r *CaseTagRepositoryImpl) FindAll() ([]models.CaseTag, error) {
	var tags []models.CaseTag
	err := r.db.Order("id ASC").Find(&tags).Error
	return tags, err
}

func (r *CaseTagRepositoryImpl) FindByID(id uint) (*models.CaseTag, error) {
	var tag models.CaseTag
	err := r.db.First(&tag, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCaseTagNotFound
		}
		return nil, err
	}
	return &tag, nil
}

func (r *CaseTagRepositoryImpl) FindByName(name string) (*models.CaseTag, error) {
	var tag models.CaseTag
	err := r.db.Where("LOWER(name) = LOWER(?)", name).First(&tag).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCaseTagNotFound
		}
		return nil, err
	}
	return &tag, nil
}

func (r *CaseTagRepositoryImpl) Create(tag *models.CaseTag) error {
	if _, err := r.FindByName(tag.Name); err == nil {
		return ErrCaseTagNameExists
	} else if !errors.Is(err, ErrCaseTagNotFound) {
		return err
	}
	return r.db.Create(tag).Error
}

func (r *CaseTagRepositoryImpl) Update(tag *models.CaseTag) error {
	result := r.db.Model(&models.CaseTag{}).Where("id = ?", tag.ID).Updates(map[string]interface{}{
		"name":         tag.Name,
		"sequence_num": tag.SequenceNum,
		"created_by":   tag.CreatedBy,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCaseTagNotFound
	}
	return nil
}
