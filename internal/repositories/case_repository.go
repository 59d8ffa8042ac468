package repositories

import (
	"errors"
	"time"

	"legalvault_backend/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrCaseNotFound       = errors.New("case not found")
	ErrCategoryNotFound   = errors.New("case category not found")
	ErrTypeNotFound       = errors.New("case type not found")
	ErrCategoryNameExists = errors.New("case category already exists")
	ErrTypeNameExists     = errors.New("case type already exists")
)

type CaseRepository interface {
	FindAll() ([]models.LegalCase, error)
	FindByID(id uint) (*models.LegalCase, error)
	// FindCandidatesForViewer returns the rows that can possibly be visible
	// to the viewer: owned, unassigned, or carrying a non-NULL allow-list.
	// Allow-list membership is decided by the service.
	FindCandidatesForViewer(userID uint) ([]models.LegalCase, error)
	Create(c *models.LegalCase) error
	Update(c *models.LegalCase) error
	Delete(id uint) (*models.LegalCase, error)
	Search(term string) ([]models.LegalCase, error)
	CountByStatus(statuses ...string) (int64, error)
	CountByStatusForOwner(ownerID uint, statuses ...string) (int64, error)

	// UpdateAllowedViewers replaces the allow-list wholesale in one UPDATE.
	// A nil viewers value stores SQL NULL.
	UpdateAllowedViewers(id uint, viewers datatypes.JSON, updatedBy *uint) (*models.LegalCase, error)

	// Taxonomy
	FindCategories() ([]models.CaseCategory, error)
	FindTypes() ([]models.CaseType, error)
	FindCategoryByName(name string) (*models.CaseCategory, error)
	FindTypeByName(name string) (*models.CaseType, error)
	CreateCategory(category *models.CaseCategory) error
	CreateType(t *models.CaseType) error
}

type CaseRepositoryImpl struct {
	db *gorm.DB
}

func NewCaseRepository(db *gorm.DB) CaseRepository {
	return &CaseRepositoryImpl{db: db}
}

func (r *CaseRepositoryImpl) preloaded() *gorm.DB {
	return r.db.Preload("Owner").Preload("Client").Preload("Category").Preload("Type")
}

func (r *CaseRepositoryImpl) FindAll() ([]models.LegalCase, error) {
	var cases []models.LegalCase
	err := r.preloaded().Order("created_at DESC").Find(&cases).Error
	return cases, err
}

func (r *CaseRepositoryImpl) FindByID(id uint) (*models.LegalCase, error) {
	var c models.LegalCase
	err := r.preloaded().First(&c, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCaseNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *CaseRepositoryImpl) FindCandidatesForViewer(userID uint) ([]models.LegalCase, error) {
	var cases []models.LegalCase
	err := r.preloaded().
		Where("user_id = ? OR user_id IS NULL OR allowed_viewers IS NOT NULL", userID).
		Order("created_at DESC").
		Find(&cases).Error
	return cases, err
}

func (r *CaseRepositoryImpl) Create(c *models.LegalCase) error {
	return r.db.Create(c).Error
}

func (r *CaseRepositoryImpl) Update(c *models.LegalCase) error {
	now := time.Now()
	result := r.db.Model(&models.LegalCase{}).Where("id = ?", c.ID).Updates(map[string]interface{}{
		"status":          c.Status,
		"fee":             c.Fee,
		"balance":         c.Balance,
		"remarks":         c.Remarks,
		"cabinet":         c.Cabinet,
		"drawer":          c.Drawer,
		"user_id":         c.UserID,
		"client_id":       c.ClientID,
		"category_id":     c.CategoryID,
		"type_id":         c.TypeID,
		"tag":             c.Tag,
		"tag_list":        c.TagList,
		"verdict":         c.Verdict,
		"last_updated":    &now,
		"last_updated_by": c.LastUpdatedBy,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCaseNotFound
	}
	return nil
}

func (r *CaseRepositoryImpl) Delete(id uint) (*models.LegalCase, error) {
	c, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Delete(&models.LegalCase{}, id).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (r *CaseRepositoryImpl) Search(term string) ([]models.LegalCase, error) {
	like := "%" + term + "%"
	var cases []models.LegalCase
	err := r.preloaded().
		Joins("LEFT JOIN users ON cases.user_id = users.id").
		Joins("LEFT JOIN clients ON cases.client_id = clients.id").
		Joins("LEFT JOIN case_types ON cases.type_id = case_types.id").
		Where(
			r.db.Where("LOWER(case_types.name) LIKE LOWER(?)", like).
				Or("LOWER(clients.full_name) LIKE LOWER(?)", like).
				Or("LOWER(cases.status) LIKE LOWER(?)", like).
				Or("LOWER(users.first_name) LIKE LOWER(?)", like).
				Or("LOWER(users.middle_name) LIKE LOWER(?)", like).
				Or("LOWER(users.last_name) LIKE LOWER(?)", like),
		).
		Order("cases.id").
		Find(&cases).Error
	return cases, err
}

func (r *CaseRepositoryImpl) CountByStatus(statuses ...string) (int64, error) {
	var count int64
	err := r.db.Model(&models.LegalCase{}).Where("status IN ?", statuses).Count(&count).Error
	return count, err
}

func (r *CaseRepositoryImpl) CountByStatusForOwner(ownerID uint, statuses ...string) (int64, error) {
	var count int64
	err := r.db.Model(&models.LegalCase{}).
		Where("user_id = ? AND status IN ?", ownerID, statuses).
		Count(&count).Error
	return count, err
}

func (r *CaseRepositoryImpl) UpdateAllowedViewers(id uint, viewers datatypes.JSON, updatedBy *uint) (*models.LegalCase, error) {
	now := time.Now()
	result := r.db.Model(&models.LegalCase{}).Where("id = ?", id).Updates(map[string]interface{}{
		"allowed_viewers": viewers,
		"last_updated":    &now,
		"last_updated_by": updatedBy,
	})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrCaseNotFound
	}
	return r.FindByID(id)
}

// --- Taxonomy ---

func (r *CaseRepositoryImpl) FindCategories() ([]models.CaseCategory, error) {
	var categories []models.CaseCategory
	err := r.db.Order("id").Find(&categories).Error
	return categories, err
}

func (r *CaseRepositoryImpl) FindTypes() ([]models.CaseType, error) {
	var types []models.CaseType
	err := r.db.Order("id").Find(&types).Error
	return types, err
}

func (r *CaseRepositoryImpl) FindCategoryByName(name string) (*models.CaseCategory, error) {
	var category models.CaseCategory
	err := r.db.Where("LOWER(name) = LOWER(?)", name).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *CaseRepositoryImpl) FindTypeByName(name string) (*models.CaseType, error) {
	var t models.CaseType
	err := r.db.Where("LOWER(name) = LOWER(?)", name).First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTypeNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *CaseRepositoryImpl) CreateCategory(category *models.CaseCategory) error {
	if _, err := r.FindCategoryByName(category.Name); err == nil {
		return ErrCategoryNameExists
	} else if !errors.Is(err, ErrCategoryNotFound) {
		return err
	}
	return r.db.Create(category).Error
}

func (r *CaseRepositoryImpl) CreateType(t *models.CaseType) error {
	if _, err := r.FindTypeByName(t.Name); err == nil {
		return ErrTypeNameExists
	} else if !errors.Is(err, ErrTypeNotFound) {
		return err
	}
	return r.db.Create(t).Error
}
