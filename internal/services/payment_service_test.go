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

func newPaymentService(db *gorm.DB) PaymentService {
	return NewPaymentService(repositories.NewPaymentRepository(db))
}

func TestRecordPayment_DecrementsBalance(t *testing.T) {
	db := newTestDB(t)
	svc := newPaymentService(db)

	lawyer := createTestUser(t, db, "lawyer@firm.test", models.UserRoleLawyer)
	c := createTestCase(t, db, &lawyer.ID)
	require.NoError(t, db.Model(c).Updates(map[string]interface{}{"fee": 50000.0, "balance": 50000.0}).Error)

	p, err := svc.RecordPayment(lawyer.ID, &dto.RecordPaymentRequest{
		CaseID: c.ID,
		Amount: 20000,
		Type:   "Cash",
	})
	require.NoError(t, err)
	assert.Equal(t, float64(20000), p.Amount)

	var stored models.LegalCase
	require.NoError(t, db.First(&stored, c.ID).Error)
	assert.Equal(t, float64(30000), stored.Balance)

	_, err = svc.RecordPayment(lawyer.ID, &dto.RecordPaymentRequest{
		CaseID: c.ID,
		Amount: 30000,
		Type:   "Cash",
	})
	require.NoError(t, err)

	require.NoError(t, db.First(&stored, c.ID).Error)
	assert.Equal(t, float64(0), stored.Balance)
}

func TestRecordPayment_ChequeRequiresDetails(t *testing.T) {
	db := newTestDB(t)
	svc := newPaymentService(db)

	lawyer := createTestUser(t, db, "lawyer@firm.test", models.UserRoleLawyer)
	c := createTestCase(t, db, &lawyer.ID)

	_, err := svc.RecordPayment(lawyer.ID, &dto.RecordPaymentRequest{
		CaseID: c.ID,
		Amount: 1000,
		Type:   "Cheque",
	})
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)

	p, err := svc.RecordPayment(lawyer.ID, &dto.RecordPaymentRequest{
		CaseID:       c.ID,
		Amount:       1000,
		Type:         "Cheque",
		ChequeName:   "Juan dela Cruz",
		ChequeNumber: "0001234",
	})
	require.NoError(t, err)
	assert.Equal(t, models.PaymentTypeCheque, p.Type)
}

func TestDeletePayment_RestoresBalance(t *testing.T) {
	db := newTestDB(t)
	svc := newPaymentService(db)

	lawyer := createTestUser(t, db, "lawyer@firm.test", models.UserRoleLawyer)
	c := createTestCase(t, db, &lawyer.ID)
	require.NoError(t, db.Model(c).Updates(map[string]interface{}{"fee": 50000.0, "balance": 50000.0}).Error)

	p, err := svc.RecordPayment(lawyer.ID, &dto.RecordPaymentRequest{
		CaseID: c.ID,
		Amount: 20000,
		Type:   "Cash",
	})
	require.NoError(t, err)

	voided, err := svc.DeletePayment(p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, voided.ID)

	var stored models.LegalCase
	require.NoError(t, db.First(&stored, c.ID).Error)
	assert.Equal(t, float64(50000), stored.Balance)

	_, err = svc.DeletePayment(p.ID)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestRecordPayment_UnknownCase(t *testing.T) {
	db := newTestDB(t)
	svc := newPaymentService(db)

	lawyer := createTestUser(t, db, "lawyer@firm.test", models.UserRoleLawyer)

	_, err := svc.RecordPayment(lawyer.ID, &dto.RecordPaymentRequest{
		CaseID: 999,
		Amount: 1000,
		Type:   "Cash",
	})
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}
