package repositories

import (
	"errors"

	"legalvault_backend/internal/models"

	"gorm.io/gorm"
)

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationRepository interface {
	Create(n *models.Notification) error
	FindByID(id uint) (*models.Notification, error)
	// FindByUser returns the user's inbox: cleared rows excluded, newest
	// first.
	FindByUser(userID uint) ([]models.Notification, error)
	// UnreadCount counts rows with is_read = false AND is_cleared = false.
	// Cleared notifications are excluded by decision; see DESIGN.md.
	UnreadCount(userID uint) (int64, error)
	// ToggleRead flips is_read in a single conditional UPDATE, so two
	// concurrent toggles cannot collapse into a no-op.
	ToggleRead(id uint) error
	// ClearAll hides every notification of the user from the inbox. Rows
	// persist.
	ClearAll(userID uint) error
}

type NotificationRepositoryImpl struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &NotificationRepositoryImpl{db: db}
}

func (r *NotificationRepositoryImpl) Create(n *models.Notification) error {
	return r.db.Create(n).Error
}

func (r *NotificationRepositoryImpl) FindByID(id uint) (*models.Notification, error) {
	var n models.Notification
	err := r.db.First(&n, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}
	return &n, nil
}

func (r *NotificationRepositoryImpl) FindByUser(userID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.
		Where("user_id = ? AND is_cleared = ?", userID, false).
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, err
}

func (r *NotificationRepositoryImpl) UnreadCount(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ? AND is_cleared = ?", userID, false, false).
		Count(&count).Error
	return count, err
}

func (r *NotificationRepositoryImpl) ToggleRead(id uint) error {
	result := r.db.Model(&models.Notification{}).
		Where("id = ?", id).
		Update("is_read", gorm.Expr("NOT is_read"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (r *NotificationRepositoryImpl) ClearAll(userID uint) error {
	return r.db.Model(&models.Notification{}).
		Where("user_id = ?", userID).
		Update("is_cleared", true).Error
}
