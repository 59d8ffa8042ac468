package services

import (
	"testing"

	"legalvault_backend/internal/models"
	"legalvault_backend/internal/repositories"
	"legalvault_backend/internal/services/dto"
	"legalvault_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newNotificationService(db *gorm.DB) NotificationService {
	return NewNotificationService(
		repositories.NewNotificationRepository(db),
		repositories.NewUserRepository(db),
	)
}

func notify(t *testing.T, svc NotificationService, userID uint, title string) *models.Notification {
	t.Helper()

	n, err := svc.Create(&dto.CreateNotificationRequest{
		UserID:  userID,
		Title:   title,
		Message: "details",
	})
	require.NoError(t, err)
	return n
}

func TestUnreadCount_ExcludesReadAndCleared(t *testing.T) {
	db := newTestDB(t)
	svc := newNotificationService(db)

	user := createTestUser(t, db, "user@firm.test", models.UserRoleStaff)

	first := notify(t, svc, user.ID, "Hearing moved")
	notify(t, svc, user.ID, "New task")

	count, err := svc.UnreadCount(user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count.Count)

	require.NoError(t, svc.ToggleRead(user.ID, first.ID))
	count, err = svc.UnreadCount(user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count.Count)

	// Clearing hides everything from the inbox and from the badge, even
	// rows never read.
	require.NoError(t, svc.ClearAll(user.ID))
	count, err = svc.UnreadCount(user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count.Count)

	inbox, err := svc.ListForUser(user.ID)
	require.NoError(t, err)
	assert.Empty(t, inbox)

	// The rows themselves persist.
	var total int64
	require.NoError(t, db.Model(&models.Notification{}).Where("user_id = ?", user.ID).Count(&total).Error)
	assert.Equal(t, int64(2), total)
}

func TestToggleRead_DoubleToggleRestoresState(t *testing.T) {
	db := newTestDB(t)
	svc := newNotificationService(db)

	user := createTestUser(t, db, "user@firm.test", models.UserRoleStaff)
	n := notify(t, svc, user.ID, "Filing due")

	require.NoError(t, svc.ToggleRead(user.ID, n.ID))
	require.NoError(t, svc.ToggleRead(user.ID, n.ID))

	var stored models.Notification
	require.NoError(t, db.First(&stored, n.ID).Error)
	assert.False(t, stored.IsRead)
}

func TestToggleRead_OnlyOwner(t *testing.T) {
	db := newTestDB(t)
	svc := newNotificationService(db)

	owner := createTestUser(t, db, "owner@firm.test", models.UserRoleStaff)
	other := createTestUser(t, db, "other@firm.test", models.UserRoleStaff)
	n := notify(t, svc, owner.ID, "Private note")

	err := svc.ToggleRead(other.ID, n.ID)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeForbidden, appErr.Code)
}

func TestToggleRead_MissingNotification(t *testing.T) {
	db := newTestDB(t)
	svc := newNotificationService(db)

	user := createTestUser(t, db, "user@firm.test", models.UserRoleStaff)

	err := svc.ToggleRead(user.ID, 12345)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestCreateNotification_UnknownUser(t *testing.T) {
	db := newTestDB(t)
	svc := newNotificationService(db)

	_, err := svc.Create(&dto.CreateNotificationRequest{UserID: 999, Title: "x", Message: "y"})
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}
