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

func newCaseTagService(db *gorm.DB) CaseTagService {
	return NewCaseTagService(repositories.NewCaseTagRepository(db))
}

func TestCreateTag_CaseInsensitiveUniqueness(t *testing.T) {
	db := newTestDB(t)
	svc := newCaseTagService(db)

	admin := createTestUser(t, db, "admin@firm.test", models.UserRoleAdmin)

	tag, err := svc.CreateTag(admin.ID, &dto.CreateCaseTagRequest{Name: "Filing"})
	require.NoError(t, err)
	require.NotNil(t, tag.CreatedBy)
	assert.Equal(t, admin.ID, *tag.CreatedBy)

	_, err = svc.CreateTag(admin.ID, &dto.CreateCaseTagRequest{Name: "FILING"})
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeAlreadyExists, appErr.Code)
}

func TestCreateTag_SequenceGapsAndDuplicatesAllowed(t *testing.T) {
	db := newTestDB(t)
	svc := newCaseTagService(db)

	admin := createTestUser(t, db, "admin@firm.test", models.UserRoleAdmin)

	five := 5
	alsoFive := 5
	forty := 40

	_, err := svc.CreateTag(admin.ID, &dto.CreateCaseTagRequest{Name: "Filing", SequenceNum: &five})
	require.NoError(t, err)
	_, err = svc.CreateTag(admin.ID, &dto.CreateCaseTagRequest{Name: "Hearing", SequenceNum: &alsoFive})
	require.NoError(t, err)
	_, err = svc.CreateTag(admin.ID, &dto.CreateCaseTagRequest{Name: "Verdict", SequenceNum: &forty})
	require.NoError(t, err)

	tags, err := svc.ListTags()
	require.NoError(t, err)
	require.Len(t, tags, 3)
}

func TestUpdateTag_RenameCollision(t *testing.T) {
	db := newTestDB(t)
	svc := newCaseTagService(db)

	admin := createTestUser(t, db, "admin@firm.test", models.UserRoleAdmin)

	_, err := svc.CreateTag(admin.ID, &dto.CreateCaseTagRequest{Name: "Filing"})
	require.NoError(t, err)
	hearing, err := svc.CreateTag(admin.ID, &dto.CreateCaseTagRequest{Name: "Hearing"})
	require.NoError(t, err)

	rename := "filing"
	_, err = svc.UpdateTag(hearing.ID, &dto.UpdateCaseTagRequest{Name: &rename})
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeAlreadyExists, appErr.Code)

	// Renaming only the sequence, or to a same-letters variant of its
	// own name, is fine.
	self := "HEARING"
	updated, err := svc.UpdateTag(hearing.ID, &dto.UpdateCaseTagRequest{Name: &self})
	require.NoError(t, err)
	assert.Equal(t, "HEARING", updated.Name)
}
