package services

import (
	"errors"

	"legalvault_backend/internal/models"
	"legalvault_backend/internal/repositories"
	"legalvault_backend/internal/services/dto"
	"legalvault_backend/pkg/apperrors"
)

// NotificationService tracks two independent axes per notification:
// read/unread (toggled from the inbox) and cleared (a one-way hide from
// the inbox view).
type NotificationService interface {
	Create(req *dto.CreateNotificationRequest) (*models.Notification, error)
	ListForUser(userID uint) ([]models.Notification, error)
	UnreadCount(userID uint) (*dto.UnreadCountResponse, error)
	// ToggleRead flips the read flag. Only the owner may toggle.
	ToggleRead(actorID, id uint) error
	ClearAll(userID uint) error
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
	userRepo         repositories.UserRepository
}

func NewNotificationService(notificationRepo repositories.NotificationRepository, userRepo repositories.UserRepository) NotificationService {
	return &notificationService{notificationRepo: notificationRepo, userRepo: userRepo}
}

func (s *notificationService) Create(req *dto.CreateNotificationRequest) (*models.Notification, error) {
	if _, err := s.userRepo.FindByID(req.UserID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	n := &models.Notification{
		UserID:  req.UserID,
		Title:   req.Title,
		Message: req.Message,
	}
	if err := s.notificationRepo.Create(n); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return n, nil
}

func (s *notificationService) ListForUser(userID uint) ([]models.Notification, error) {
	notifications, err := s.notificationRepo.FindByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return notifications, nil
}

func (s *notificationService) UnreadCount(userID uint) (*dto.UnreadCountResponse, error) {
	count, err := s.notificationRepo.UnreadCount(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.UnreadCountResponse{Count: count}, nil
}

func (s *notificationService) ToggleRead(actorID, id uint) error {
	n, err := s.notificationRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotificationNotFound) {
			return apperrors.NewNotFoundError("notification", "Notification not found")
		}
		return apperrors.InternalError(err)
	}
	if n.UserID != actorID {
		return apperrors.ErrInsufficientPermissions
	}

	if err := s.notificationRepo.ToggleRead(id); err != nil {
		if errors.Is(err, repositories.ErrNotificationNotFound) {
			return apperrors.NewNotFoundError("notification", "Notification not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *notificationService) ClearAll(userID uint) error {
	if err := s.notificationRepo.ClearAll(userID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
