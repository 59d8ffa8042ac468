package services

import (
	"testing"
	"time"

	"legalvault_backend/internal/models"
	"legalvault_backend/internal/repositories"
	"legalvault_backend/internal/services/dto"
	"legalvault_backend/internal/storage"
	"legalvault_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newDocumentService(t *testing.T, db *gorm.DB) DocumentService {
	t.Helper()

	files, err := storage.NewLocalStorage(storage.Config{BasePath: t.TempDir()})
	if err != nil {
		t.Fatalf("failed to create test storage: %v", err)
	}
	return NewDocumentService(
		repositories.NewDocumentRepository(db),
		repositories.NewCaseRepository(db),
		files,
	)
}

func createTestDocument(t *testing.T, db *gorm.DB, name string) *models.Document {
	t.Helper()

	doc := &models.Document{
		Name: name,
		Type: models.DocumentTypeSupport,
	}
	if err := db.Create(doc).Error; err != nil {
		t.Fatalf("failed to create test document: %v", err)
	}
	return doc
}

func TestTrashDocument_StampsMarkers(t *testing.T) {
	db := newTestDB(t)
	svc := newDocumentService(t, db)

	doc := createTestDocument(t, db, "affidavit.pdf")
	actor := createTestUser(t, db, "actor@firm.test", models.UserRoleStaff)

	trashed, err := svc.TrashDocument(actor.ID, doc.ID)
	require.NoError(t, err)
	assert.True(t, trashed.IsDeleted)
	require.NotNil(t, trashed.DeletedBy)
	assert.Equal(t, actor.ID, *trashed.DeletedBy)
	require.NotNil(t, trashed.DeletedDate)
}

func TestUpdateDocument_PassesTrashMarkersThrough(t *testing.T) {
	db := newTestDB(t)
	svc := newDocumentService(t, db)

	doc := createTestDocument(t, db, "ledger.xlsx")
	actor := createTestUser(t, db, "actor@firm.test", models.UserRoleStaff)

	trashed := true
	when := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	updated, err := svc.UpdateDocument(actor.ID, doc.ID, &dto.UpdateDocumentRequest{
		IsTrashed:   &trashed,
		TrashedBy:   &actor.ID,
		TrashedDate: &when,
	})
	require.NoError(t, err)
	assert.True(t, updated.IsTrashed)
	require.NotNil(t, updated.TrashedBy)
	assert.Equal(t, actor.ID, *updated.TrashedBy)
	require.NotNil(t, updated.TrashedDate)

	// Untouched fields keep their values and the markers are independent
	// of the soft-delete flow.
	assert.Equal(t, "ledger.xlsx", updated.Name)
	assert.False(t, updated.IsDeleted)
}

func TestTrashRestore_RoundTrip(t *testing.T) {
	db := newTestDB(t)
	svc := newDocumentService(t, db)

	doc := createTestDocument(t, db, "contract.pdf")
	actor := createTestUser(t, db, "actor@firm.test", models.UserRoleStaff)

	_, err := svc.TrashDocument(actor.ID, doc.ID)
	require.NoError(t, err)

	// Trashed documents leave the active listing.
	active, err := svc.ListDocuments()
	require.NoError(t, err)
	assert.Empty(t, active)

	trash, err := svc.ListTrash()
	require.NoError(t, err)
	require.Len(t, trash, 1)

	restored, err := svc.RestoreDocument(doc.ID)
	require.NoError(t, err)
	assert.False(t, restored.IsDeleted)
	assert.Nil(t, restored.DeletedBy)
	assert.Nil(t, restored.DeletedDate)

	active, err = svc.ListDocuments()
	require.NoError(t, err)
	require.Len(t, active, 1)
}

func TestTrashDocument_RetrashRestamps(t *testing.T) {
	db := newTestDB(t)
	svc := newDocumentService(t, db)

	doc := createTestDocument(t, db, "brief.pdf")
	first := createTestUser(t, db, "first@firm.test", models.UserRoleStaff)
	second := createTestUser(t, db, "second@firm.test", models.UserRoleStaff)

	_, err := svc.TrashDocument(first.ID, doc.ID)
	require.NoError(t, err)

	trashed, err := svc.TrashDocument(second.ID, doc.ID)
	require.NoError(t, err)
	require.NotNil(t, trashed.DeletedBy)
	assert.Equal(t, second.ID, *trashed.DeletedBy)
}

func TestPurgeDocument_RemovesRow(t *testing.T) {
	db := newTestDB(t)
	svc := newDocumentService(t, db)

	doc := createTestDocument(t, db, "evidence.pdf")

	// Purge is allowed straight from Active, no prior trash required.
	purged, err := svc.PurgeDocument(doc.ID)
	require.NoError(t, err)
	assert.Equal(t, doc.ID, purged.ID)

	_, err = svc.GetDocument(doc.ID)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)

	_, err = svc.PurgeDocument(doc.ID)
	appErr, ok = apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestUpdateDocument_MergesReferences(t *testing.T) {
	db := newTestDB(t)
	svc := newDocumentService(t, db)

	actor := createTestUser(t, db, "actor@firm.test", models.UserRoleStaff)

	doc, err := svc.CreateDocument(actor.ID, &dto.CreateDocumentRequest{
		Name:       "exhibit list",
		Type:       "Support",
		References: []string{"refs/a.pdf", "refs/b.pdf", "refs/a.pdf"},
	}, "")
	require.NoError(t, err)
	assert.JSONEq(t, `["refs/a.pdf","refs/b.pdf"]`, string(doc.References))

	updated, err := svc.UpdateDocument(actor.ID, doc.ID, &dto.UpdateDocumentRequest{
		References: []string{"refs/b.pdf", "refs/c.pdf"},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `["refs/a.pdf","refs/b.pdf","refs/c.pdf"]`, string(updated.References))
}

func TestRemoveReference(t *testing.T) {
	db := newTestDB(t)
	svc := newDocumentService(t, db)

	actor := createTestUser(t, db, "actor@firm.test", models.UserRoleStaff)
	doc, err := svc.CreateDocument(actor.ID, &dto.CreateDocumentRequest{
		Name:       "motions",
		Type:       "Support",
		References: []string{"refs/a.pdf", "refs/b.pdf"},
	}, "")
	require.NoError(t, err)

	updated, err := svc.RemoveReference(doc.ID, "refs/a.pdf")
	require.NoError(t, err)
	assert.JSONEq(t, `["refs/b.pdf"]`, string(updated.References))

	_, err = svc.RemoveReference(doc.ID, "refs/missing.pdf")
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)

	// Dropping the last reference stores NULL.
	updated, err = svc.RemoveReference(doc.ID, "refs/b.pdf")
	require.NoError(t, err)
	assert.Empty(t, updated.References)
}

func TestDocumentPassword(t *testing.T) {
	db := newTestDB(t)
	svc := newDocumentService(t, db)

	actor := createTestUser(t, db, "actor@firm.test", models.UserRoleStaff)
	doc, err := svc.CreateDocument(actor.ID, &dto.CreateDocumentRequest{
		Name:     "sealed deposition",
		Type:     "Support",
		Password: "s3cret-doc",
	}, "")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-doc", doc.Password, "password must be stored hashed")

	require.NoError(t, svc.CheckPassword(doc.ID, "s3cret-doc"))

	err = svc.CheckPassword(doc.ID, "wrong")
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidCredentials, appErr.Code)
}
