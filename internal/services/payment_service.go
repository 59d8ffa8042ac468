package services

import (
	"errors"

	"legalvault_backend/internal/models"
	"legalvault_backend/internal/repositories"
	"legalvault_backend/internal/services/dto"
	"legalvault_backend/pkg/apperrors"
)

type PaymentService interface {
	ListPayments() ([]models.Payment, error)
	GetPayment(id uint) (*models.Payment, error)
	ListByCase(caseID uint) ([]models.Payment, error)
	ListByLawyer(lawyerID uint) ([]models.Payment, error)
	// RecordPayment books the payment and decrements the case balance in
	// one transaction.
	RecordPayment(actorID uint, req *dto.RecordPaymentRequest) (*models.Payment, error)
	// DeletePayment voids a booked payment and restores the case balance.
	DeletePayment(id uint) (*models.Payment, error)
}

type paymentService struct {
	paymentRepo repositories.PaymentRepository
}

func NewPaymentService(paymentRepo repositories.PaymentRepository) PaymentService {
	return &paymentService{paymentRepo: paymentRepo}
}

func (s *paymentService) ListPayments() ([]models.Payment, error) {
	payments, err := s.paymentRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return payments, nil
}

func (s *paymentService) GetPayment(id uint) (*models.Payment, error) {
	p, err := s.paymentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrPaymentNotFound) {
			return nil, apperrors.NewNotFoundError("payment", "Payment not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return p, nil
}

func (s *paymentService) ListByCase(caseID uint) ([]models.Payment, error) {
	payments, err := s.paymentRepo.FindByCase(caseID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return payments, nil
}

func (s *paymentService) ListByLawyer(lawyerID uint) ([]models.Payment, error) {
	payments, err := s.paymentRepo.FindByLawyer(lawyerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return payments, nil
}

func (s *paymentService) RecordPayment(actorID uint, req *dto.RecordPaymentRequest) (*models.Payment, error) {
	if models.PaymentType(req.Type) == models.PaymentTypeCheque {
		if req.ChequeNumber == "" || req.ChequeName == "" {
			return nil, apperrors.NewBadRequestError("Cheque payments require the cheque name and number")
		}
	}

	p := &models.Payment{
		CaseID:         req.CaseID,
		UserID:         &actorID,
		Amount:         req.Amount,
		Type:           models.PaymentType(req.Type),
		ChequeName:     req.ChequeName,
		ChequeNumber:   req.ChequeNumber,
		ChequeBranch:   req.ChequeBranch,
		ChequeLocation: req.ChequeLocation,
	}
	if err := s.paymentRepo.Record(p); err != nil {
		if errors.Is(err, repositories.ErrCaseNotFound) {
			return nil, apperrors.NewNotFoundError("case", "Case not found")
		}
		return nil, apperrors.InternalError(err)
	}

	created, err := s.paymentRepo.FindByID(p.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return created, nil
}

func (s *paymentService) DeletePayment(id uint) (*models.Payment, error) {
	p, err := s.paymentRepo.Delete(id)
	if err != nil {
		if errors.Is(err, repositories.ErrPaymentNotFound) {
			return nil, apperrors.NewNotFoundError("payment", "Payment not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return p, nil
}
