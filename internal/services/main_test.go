package services

import (
	"fmt"
	"strconv"
	"testing"

	"legalvault_backend/database"
	"legalvault_backend/internal/auth"
	"legalvault_backend/internal/models"
	"legalvault_backend/internal/repositories"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database per test. The name keys
// the shared cache so every connection in the pool sees the same data.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string, role models.UserRole) *models.User {
	t.Helper()

	hash, err := auth.HashPassword("password123")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		FirstName:    "Test",
		LastName:     "User",
		Role:         role,
		Status:       models.UserStatusActive,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

func createTestClient(t *testing.T, db *gorm.DB, name string) *models.Client {
	t.Helper()

	client := &models.Client{FullName: name}
	if err := db.Create(client).Error; err != nil {
		t.Fatalf("failed to create test client: %v", err)
	}
	return client
}

func createTestCase(t *testing.T, db *gorm.DB, owner *uint) *models.LegalCase {
	t.Helper()

	c := &models.LegalCase{
		Status: models.CaseStatusProcessing,
		UserID: owner,
	}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("failed to create test case: %v", err)
	}
	return c
}

func uintString(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}

func newCaseService(db *gorm.DB) CaseService {
	return NewCaseService(repositories.NewCaseRepository(db), repositories.NewClientRepository(db))
}
