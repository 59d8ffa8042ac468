package repositories

import (
	"errors"
	"time"

	"legalvault_backend/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrDocumentNotFound = errors.New("document not found")

type DocumentRepository interface {
	FindAll(includeDeleted bool) ([]models.Document, error)
	FindByID(id uint) (*models.Document, error)
	FindByCase(caseID uint) ([]models.Document, error)
	FindBySubmitter(userID uint) ([]models.Document, error)
	FindByLawyer(lawyerID uint) ([]models.Document, error)
	// FindTasksForUser returns task documents assigned to, created by, or
	// belonging to a case owned by the user.
	FindTasksForUser(userID uint) ([]models.Document, error)
	Create(doc *models.Document) error
	// Update writes the given column map in one statement.
	Update(id uint, updates map[string]interface{}) (*models.Document, error)
	Search(term string) ([]models.Document, error)

	// Lifecycle. Each transition is a single-row statement.
	SoftDelete(id uint, deletedBy uint) (*models.Document, error)
	Restore(id uint) (*models.Document, error)
	PermanentDelete(id uint) (*models.Document, error)

	// Reference paths
	SetReferences(id uint, refs datatypes.JSON) (*models.Document, error)

	// Dashboard counts
	CountByDocStatus(status string) (int64, error)
	CountProcessing() (int64, error)
	CountProcessingByLawyer(lawyerID uint) (int64, error)
	CountPendingTasks() (int64, error)
	CountUserPendingTasks(userID uint) (int64, error)
}

type DocumentRepositoryImpl struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &DocumentRepositoryImpl{db: db}
}

func (r *DocumentRepositoryImpl) FindAll(includeDeleted bool) ([]models.Document, error) {
	var docs []models.Document
	q := r.db.Order("id DESC")
	if !includeDeleted {
		q = q.Where("is_deleted = ?", false)
	}
	err := q.Find(&docs).Error
	return docs, err
}

func (r *DocumentRepositoryImpl) FindByID(id uint) (*models.Document, error) {
	var doc models.Document
	err := r.db.First(&doc, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}
	return &doc, nil
}

func (r *DocumentRepositoryImpl) FindByCase(caseID uint) ([]models.Document, error) {
	var docs []models.Document
	err := r.db.Where("case_id = ?", caseID).Order("id ASC").Find(&docs).Error
	return docs, err
}

func (r *DocumentRepositoryImpl) FindBySubmitter(userID uint) ([]models.Document, error) {
	var docs []models.Document
	err := r.db.Where("submitted_by = ?", userID).Order("id DESC").Find(&docs).Error
	return docs, err
}

func (r *DocumentRepositoryImpl) FindByLawyer(lawyerID uint) ([]models.Document, error) {
	var docs []models.Document
	err := r.db.
		Joins("JOIN cases ON documents.case_id = cases.id").
		Where("cases.user_id = ?", lawyerID).
		Order("documents.id DESC").
		Find(&docs).Error
	return docs, err
}

func (r *DocumentRepositoryImpl) FindTasksForUser(userID uint) ([]models.Document, error) {
	var docs []models.Document
	err := r.db.
		Joins("LEFT JOIN cases ON documents.case_id = cases.id").
		Where("documents.type = ?", models.DocumentTypeTask).
		Where("documents.tasked_to = ? OR documents.tasked_by = ? OR cases.user_id = ?", userID, userID, userID).
		Order("documents.id DESC").
		Find(&docs).Error
	return docs, err
}

func (r *DocumentRepositoryImpl) Create(doc *models.Document) error {
	return r.db.Create(doc).Error
}

func (r *DocumentRepositoryImpl) Update(id uint, updates map[string]interface{}) (*models.Document, error) {
	if len(updates) > 0 {
		result := r.db.Model(&models.Document{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, ErrDocumentNotFound
		}
	}
	return r.FindByID(id)
}

func (r *DocumentRepositoryImpl) Search(term string) ([]models.Document, error) {
	like := "%" + term + "%"
	var docs []models.Document
	err := r.db.
		Where("LOWER(name) LIKE LOWER(?)", like).
		Or("LOWER(tag) LIKE LOWER(?)", like).
		Or("LOWER(status) LIKE LOWER(?)", like).
		Order("id DESC").
		Find(&docs).Error
	return docs, err
}

func (r *DocumentRepositoryImpl) SoftDelete(id uint, deletedBy uint) (*models.Document, error) {
	now := time.Now()
	result := r.db.Model(&models.Document{}).Where("id = ?", id).Updates(map[string]interface{}{
		"is_deleted":   true,
		"deleted_by":   deletedBy,
		"deleted_date": &now,
	})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrDocumentNotFound
	}
	return r.FindByID(id)
}

func (r *DocumentRepositoryImpl) Restore(id uint) (*models.Document, error) {
	result := r.db.Model(&models.Document{}).Where("id = ?", id).Updates(map[string]interface{}{
		"is_deleted":   false,
		"deleted_by":   nil,
		"deleted_date": nil,
	})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrDocumentNotFound
	}
	return r.FindByID(id)
}

func (r *DocumentRepositoryImpl) PermanentDelete(id uint) (*models.Document, error) {
	doc, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Delete(&models.Document{}, id).Error; err != nil {
		return nil, err
	}
	return doc, nil
}

func (r *DocumentRepositoryImpl) SetReferences(id uint, refs datatypes.JSON) (*models.Document, error) {
	result := r.db.Model(&models.Document{}).Where("id = ?", id).Update("doc_reference", refs)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrDocumentNotFound
	}
	return r.FindByID(id)
}

func (r *DocumentRepositoryImpl) CountByDocStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Document{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *DocumentRepositoryImpl) CountProcessing() (int64, error) {
	var count int64
	err := r.db.Model(&models.Document{}).
		Joins("JOIN cases ON documents.case_id = cases.id").
		Where("cases.status = ?", models.CaseStatusProcessing).
		Count(&count).Error
	return count, err
}

func (r *DocumentRepositoryImpl) CountProcessingByLawyer(lawyerID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Document{}).
		Joins("JOIN cases ON documents.case_id = cases.id").
		Where("cases.status = ? AND cases.user_id = ?", models.CaseStatusProcessing, lawyerID).
		Count(&count).Error
	return count, err
}

func (r *DocumentRepositoryImpl) CountPendingTasks() (int64, error) {
	var count int64
	err := r.db.Model(&models.Document{}).
		Where("type = ? AND status != ?", models.DocumentTypeTask, models.DocStatusApproved).
		Count(&count).Error
	return count, err
}

func (r *DocumentRepositoryImpl) CountUserPendingTasks(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Document{}).
		Joins("LEFT JOIN cases ON documents.case_id = cases.id").
		Where("documents.type = ?", models.DocumentTypeTask).
		Where("documents.tasked_to = ? OR documents.tasked_by = ? OR cases.user_id = ?", userID, userID, userID).
		Where("documents.status IS NULL OR LOWER(documents.status) NOT IN ?", []string{"approved", "completed"}).
		Where("cases.status NOT IN ? OR cases.status IS NULL",
			[]string{models.CaseStatusArchivedCompleted, models.CaseStatusArchivedDismissed}).
		Count(&count).Error
	return count, err
}
