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

func newUserService(db *gorm.DB) UserService {
	return NewUserService(
		repositories.NewUserRepository(db),
		repositories.NewNotificationRepository(db),
	)
}

func TestUpdateRole_LawyerBootstrapsFirstAdmin(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)

	lawyer := createTestUser(t, db, "lawyer@firm.test", models.UserRoleLawyer)
	target := createTestUser(t, db, "target@firm.test", models.UserRoleStaff)

	updated, err := svc.UpdateRole(lawyer.ID, string(lawyer.Role), target.ID, &dto.UpdateRoleRequest{Role: "Admin"})
	require.NoError(t, err)
	assert.Equal(t, "Admin", updated.Role)
}

func TestUpdateRole_BootstrapWindowClosesAfterFirstAdmin(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)

	lawyerA := createTestUser(t, db, "a@firm.test", models.UserRoleLawyer)
	lawyerB := createTestUser(t, db, "b@firm.test", models.UserRoleLawyer)
	target := createTestUser(t, db, "target@firm.test", models.UserRoleStaff)

	_, err := svc.UpdateRole(lawyerA.ID, string(lawyerA.Role), target.ID, &dto.UpdateRoleRequest{Role: "Admin"})
	require.NoError(t, err)

	// Once an Admin exists the bootstrap path is closed to Lawyers for
	// good, including promoting themselves.
	_, err = svc.UpdateRole(lawyerB.ID, string(lawyerB.Role), lawyerB.ID, &dto.UpdateRoleRequest{Role: "Admin"})
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeForbidden, appErr.Code)
}

func TestUpdateRole_LawyerCannotAssignNonAdminRoles(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)

	lawyer := createTestUser(t, db, "lawyer@firm.test", models.UserRoleLawyer)
	target := createTestUser(t, db, "target@firm.test", models.UserRoleStaff)

	_, err := svc.UpdateRole(lawyer.ID, string(lawyer.Role), target.ID, &dto.UpdateRoleRequest{Role: "Paralegal"})
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeForbidden, appErr.Code)
}

func TestUpdateRole_AdminAssignsFreely(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)

	admin := createTestUser(t, db, "admin@firm.test", models.UserRoleAdmin)
	target := createTestUser(t, db, "target@firm.test", models.UserRoleStaff)

	updated, err := svc.UpdateRole(admin.ID, string(admin.Role), target.ID, &dto.UpdateRoleRequest{Role: "Lawyer"})
	require.NoError(t, err)
	assert.Equal(t, "Lawyer", updated.Role)

	// A second Admin appointed by an Admin is fine; the bootstrap rule
	// only constrains Lawyers.
	updated, err = svc.UpdateRole(admin.ID, string(admin.Role), target.ID, &dto.UpdateRoleRequest{Role: "Admin"})
	require.NoError(t, err)
	assert.Equal(t, "Admin", updated.Role)
}

func TestUpdateRole_StaffForbidden(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)

	staff := createTestUser(t, db, "staff@firm.test", models.UserRoleStaff)
	target := createTestUser(t, db, "target@firm.test", models.UserRoleParalegal)

	_, err := svc.UpdateRole(staff.ID, string(staff.Role), target.ID, &dto.UpdateRoleRequest{Role: "Admin"})
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeForbidden, appErr.Code)
}

func TestUpdateUser_PartialKeepsUnsetFields(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)

	admin := createTestUser(t, db, "admin@firm.test", models.UserRoleAdmin)
	target := createTestUser(t, db, "target@firm.test", models.UserRoleStaff)

	phone := "+63 912 555 0101"
	updated, err := svc.UpdateUser(admin.ID, target.ID, &dto.UpdateUserRequest{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, phone, updated.Phone)
	assert.Equal(t, target.Email, updated.Email)
	assert.Equal(t, "Test", updated.FirstName)
}

func TestCreateUser_DuplicateEmailRejected(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)

	admin := createTestUser(t, db, "admin@firm.test", models.UserRoleAdmin)

	req := &dto.CreateUserRequest{
		Email:     "new@firm.test",
		Password:  "password123",
		FirstName: "New",
		LastName:  "Hire",
		Role:      "Staff",
	}
	_, err := svc.CreateUser(admin.ID, req)
	require.NoError(t, err)

	_, err = svc.CreateUser(admin.ID, req)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeAlreadyExists, appErr.Code)
}
