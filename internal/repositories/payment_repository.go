package repositories

import (
	"errors"

	"legalvault_backend/internal/models"

	"gorm.io/gorm"
)

var ErrPaymentNotFound = errors.New("payment not found")

type PaymentRepository interface {
	FindAll() ([]models.Payment, error)
	FindByID(id uint) (*models.Payment, error)
	FindByCase(caseID uint) ([]models.Payment, error)
	FindByLawyer(lawyerID uint) ([]models.Payment, error)
	// Record inserts the payment and decrements the case balance in the
	// same transaction.
	Record(p *models.Payment) error
	// Delete removes the payment and credits the amount back to the case
	// balance in the same transaction.
	Delete(id uint) (*models.Payment, error)
}

type PaymentRepositoryImpl struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &PaymentRepositoryImpl{db: db}
}

func (r *PaymentRepositoryImpl) preloaded() *gorm.DB {
	return r.db.Preload("Case").Preload("Case.Client").Preload("User")
}

func (r *PaymentRepositoryImpl) FindAll() ([]models.Payment, error) {
	var payments []models.Payment
	err := r.preloaded().Order("payment_date DESC").Find(&payments).Error
	return payments, err
}

func (r *PaymentRepositoryImpl) FindByID(id uint) (*models.Payment, error) {
	var p models.Payment
	err := r.preloaded().First(&p, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepositoryImpl) FindByCase(caseID uint) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.preloaded().Where("case_id = ?", caseID).Order("payment_date DESC").Find(&payments).Error
	return payments, err
}

func (r *PaymentRepositoryImpl) FindByLawyer(lawyerID uint) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.preloaded().
		Joins("JOIN cases ON payments.case_id = cases.id").
		Where("cases.user_id = ?", lawyerID).
		Order("payments.payment_date DESC").
		Find(&payments).Error
	return payments, err
}

func (r *PaymentRepositoryImpl) Record(p *models.Payment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var c models.LegalCase
		if err := tx.First(&c, "id = ?", p.CaseID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCaseNotFound
			}
			return err
		}
		if err := tx.Create(p).Error; err != nil {
			return err
		}
		return tx.Model(&models.LegalCase{}).
			Where("id = ?", p.CaseID).
			Update("balance", gorm.Expr("balance - ?", p.Amount)).Error
	})
}

func (r *PaymentRepositoryImpl) Delete(id uint) (*models.Payment, error) {
	p, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	err = r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Payment{}, id).Error; err != nil {
			return err
		}
		return tx.Model(&models.LegalCase{}).
			Where("id = ?", p.CaseID).
			Update("balance", gorm.Expr("balance + ?", p.Amount)).Error
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}
