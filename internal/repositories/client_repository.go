package repositories

import (
	"errors"

	"legalvault_backend/internal/models"

	"gorm.io/gorm"
)

var ErrClientNotFound = errors.New("client not found")

type ClientRepository interface {
	FindAll() ([]models.Client, error)
	FindByID(id uint) (*models.Client, error)
	Create(client *models.Client) error
	Update(id uint, updates map[string]interface{}) (*models.Client, error)
	Delete(id uint) (*models.Client, error)
	Search(term string) ([]models.Client, error)
}

type ClientRepositoryImpl struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) ClientRepository {
	return &ClientRepositoryImpl{db: db}
}

func (r *ClientRepositoryImpl) FindAll() ([]models.Client, error) {
	var clients []models.Client
	err := r.db.Order("full_name ASC").Find(&clients).Error
	return clients, err
}

func (r *ClientRepositoryImpl) FindByID(id uint) (*models.Client, error) {
	var client models.Client
	err := r.db.First(&client, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return &client, nil
}

func (r *ClientRepositoryImpl) Create(client *models.Client) error {
	return r.db.Create(client).Error
}

func (r *ClientRepositoryImpl) Update(id uint, updates map[string]interface{}) (*models.Client, error) {
	if len(updates) > 0 {
		result := r.db.Model(&models.Client{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, ErrClientNotFound
		}
	}
	return r.FindByID(id)
}

func (r *ClientRepositoryImpl) Delete(id uint) (*models.Client, error) {
	client, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Delete(&models.Client{}, id).Error; err != nil {
		return nil, err
	}
	return client, nil
}

func (r *ClientRepositoryImpl) Search(term string) ([]models.Client, error) {
	like := "%" + term + "%"
	var clients []models.Client
	err := r.db.
		Where("LOWER(full_name) LIKE LOWER(?)", like).
		Or("LOWER(email) LIKE LOWER(?)", like).
		Or("LOWER(phone) LIKE LOWER(?)", like).
		Order("full_name ASC").
		Find(&clients).Error
	return clients, err
}
