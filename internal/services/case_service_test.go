package services

import (
	"testing"

	"legalvault_backend/internal/models"
	"legalvault_backend/internal/services/dto"
	"legalvault_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaseVisibility_OwnerAndStranger(t *testing.T) {
	db := newTestDB(t)
	svc := newCaseService(db)

	owner := createTestUser(t, db, "owner@firm.test", models.UserRoleLawyer)
	stranger := createTestUser(t, db, "stranger@firm.test", models.UserRoleStaff)
	c := createTestCase(t, db, &owner.ID)

	got, err := svc.GetCase(owner.ID, string(owner.Role), c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)

	_, err = svc.GetCase(stranger.ID, string(stranger.Role), c.ID)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeForbidden, appErr.Code)
}

func TestCaseVisibility_UnassignedVisibleToEveryone(t *testing.T) {
	db := newTestDB(t)
	svc := newCaseService(db)

	staff := createTestUser(t, db, "staff@firm.test", models.UserRoleStaff)
	c := createTestCase(t, db, nil)

	got, err := svc.GetCase(staff.ID, string(staff.Role), c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)

	visible, err := svc.ListCases(staff.ID, string(staff.Role))
	require.NoError(t, err)
	require.Len(t, visible, 1)
}

func TestCaseVisibility_AdminBypassesOverlay(t *testing.T) {
	db := newTestDB(t)
	svc := newCaseService(db)

	owner := createTestUser(t, db, "owner@firm.test", models.UserRoleLawyer)
	admin := createTestUser(t, db, "admin@firm.test", models.UserRoleAdmin)
	c := createTestCase(t, db, &owner.ID)

	got, err := svc.GetCase(admin.ID, string(admin.Role), c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)
}

func TestShareAccess_GrantsVisibility(t *testing.T) {
	db := newTestDB(t)
	svc := newCaseService(db)

	owner := createTestUser(t, db, "owner@firm.test", models.UserRoleLawyer)
	viewer := createTestUser(t, db, "viewer@firm.test", models.UserRoleParalegal)
	c := createTestCase(t, db, &owner.ID)

	_, err := svc.GetCase(viewer.ID, string(viewer.Role), c.ID)
	require.Error(t, err)

	_, err = svc.ShareAccess(owner.ID, string(owner.Role), c.ID, &dto.ShareAccessRequest{
		UserIDs: []uint{viewer.ID, viewer.ID}, // duplicate on purpose
	})
	require.NoError(t, err)

	got, err := svc.GetCase(viewer.ID, string(viewer.Role), c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)

	// The duplicate must not be stored twice.
	var stored models.LegalCase
	require.NoError(t, db.First(&stored, c.ID).Error)
	assert.JSONEq(t, `[`+uintString(viewer.ID)+`]`, string(stored.AllowedViewers))
}

func TestShareAccess_EmptyListStoresNull(t *testing.T) {
	db := newTestDB(t)
	svc := newCaseService(db)

	owner := createTestUser(t, db, "owner@firm.test", models.UserRoleLawyer)
	viewer := createTestUser(t, db, "viewer@firm.test", models.UserRoleParalegal)
	c := createTestCase(t, db, &owner.ID)

	_, err := svc.ShareAccess(owner.ID, string(owner.Role), c.ID, &dto.ShareAccessRequest{UserIDs: []uint{viewer.ID}})
	require.NoError(t, err)

	_, err = svc.ShareAccess(owner.ID, string(owner.Role), c.ID, &dto.ShareAccessRequest{UserIDs: nil})
	require.NoError(t, err)

	var nullCount int64
	require.NoError(t, db.Model(&models.LegalCase{}).
		Where("id = ? AND allowed_viewers IS NULL", c.ID).
		Count(&nullCount).Error)
	assert.Equal(t, int64(1), nullCount, "revoked allow-list must be stored as SQL NULL")

	_, err = svc.GetCase(viewer.ID, string(viewer.Role), c.ID)
	require.Error(t, err)
}

func TestShareAccess_NotFoundBeforeForbidden(t *testing.T) {
	db := newTestDB(t)
	svc := newCaseService(db)

	stranger := createTestUser(t, db, "stranger@firm.test", models.UserRoleStaff)

	// Missing case reports NotFound even though the caller could never
	// have edited it.
	_, err := svc.ShareAccess(stranger.ID, string(stranger.Role), 9999, &dto.ShareAccessRequest{UserIDs: []uint{1}})
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)

	owner := createTestUser(t, db, "owner@firm.test", models.UserRoleLawyer)
	c := createTestCase(t, db, &owner.ID)

	_, err = svc.ShareAccess(stranger.ID, string(stranger.Role), c.ID, &dto.ShareAccessRequest{UserIDs: []uint{1}})
	appErr, ok = apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeForbidden, appErr.Code)
}

func TestCreateCase_BalanceStartsAtFee(t *testing.T) {
	db := newTestDB(t)
	svc := newCaseService(db)

	lawyer := createTestUser(t, db, "lawyer@firm.test", models.UserRoleLawyer)
	client := createTestClient(t, db, "Juan dela Cruz")

	c, err := svc.CreateCase(lawyer.ID, &dto.CreateCaseRequest{
		ClientID: &client.ID,
		UserID:   &lawyer.ID,
		Fee:      50000,
	})
	require.NoError(t, err)
	assert.Equal(t, float64(50000), c.Fee)
	assert.Equal(t, float64(50000), c.Balance)
	assert.Equal(t, models.CaseStatusProcessing, c.Status)
}

func TestUpdateCase_PartialKeepsUnsetFields(t *testing.T) {
	db := newTestDB(t)
	svc := newCaseService(db)

	owner := createTestUser(t, db, "owner@firm.test", models.UserRoleLawyer)
	c := createTestCase(t, db, &owner.ID)
	require.NoError(t, db.Model(c).Updates(map[string]interface{}{"remarks": "initial remarks", "cabinet": "A"}).Error)

	verdict := "Granted"
	updated, err := svc.UpdateCase(owner.ID, string(owner.Role), c.ID, &dto.UpdateCaseRequest{Verdict: &verdict})
	require.NoError(t, err)
	assert.Equal(t, "Granted", updated.Verdict)
	assert.Equal(t, "initial remarks", updated.Remarks)
	assert.Equal(t, "A", updated.Cabinet)
	require.NotNil(t, updated.LastUpdatedBy)
	assert.Equal(t, owner.ID, *updated.LastUpdatedBy)
}

func TestCaseTaxonomy_DuplicateNamesRejected(t *testing.T) {
	db := newTestDB(t)
	svc := newCaseService(db)

	_, err := svc.CreateCategory(&dto.CreateCategoryRequest{Name: "Civil"})
	require.NoError(t, err)

	_, err = svc.CreateCategory(&dto.CreateCategoryRequest{Name: "civil"})
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeAlreadyExists, appErr.Code)

	created, err := svc.CreateType(&dto.CreateTypeRequest{Name: "Annulment", FeeMin: 10000, FeeMax: 50000})
	require.NoError(t, err)
	assert.Equal(t, "₱10000.00 - ₱50000.00", created.FeeRange)

	_, err = svc.CreateType(&dto.CreateTypeRequest{Name: "ANNULMENT", FeeMin: 1, FeeMax: 2})
	appErr, ok = apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeAlreadyExists, appErr.Code)
}
