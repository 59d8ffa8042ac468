package services

import (
	"errors"

	"legalvault_backend/internal/models"
	"legalvault_backend/internal/repositories"
	"legalvault_backend/internal/services/dto"
	"legalvault_backend/pkg/apperrors"
)

type ClientService interface {
	GetClient(id uint) (*models.Client, error)
	ListClients() ([]models.Client, error)
	CreateClient(req *dto.CreateClientRequest) (*models.Client, error)
	UpdateClient(id uint, req *dto.UpdateClientRequest) (*models.Client, error)
	DeleteClient(id uint) (*models.Client, error)
	SearchClients(term string) ([]models.Client, error)
}

type clientService struct {
	clientRepo repositories.ClientRepository
}

func NewClientService(clientRepo repositories.ClientRepository) ClientService {
	return &clientService{clientRepo: clientRepo}
}

func (s *clientService) GetClient(id uint) (*models.Client, error) {
	client, err := s.clientRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrClientNotFound) {
			return nil, apperrors.NewNotFoundError("client", "Client not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return client, nil
}

func (s *clientService) ListClients() ([]models.Client, error) {
	clients, err := s.clientRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return clients, nil
}

func (s *clientService) CreateClient(req *dto.CreateClientRequest) (*models.Client, error) {
	client := &models.Client{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
	}
	if err := s.clientRepo.Create(client); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return client, nil
}

func (s *clientService) UpdateClient(id uint, req *dto.UpdateClientRequest) (*models.Client, error) {
	updates := map[string]interface{}{}
	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}

	client, err := s.clientRepo.Update(id, updates)
	if err != nil {
		if errors.Is(err, repositories.ErrClientNotFound) {
			return nil, apperrors.NewNotFoundError("client", "Client not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return client, nil
}

func (s *clientService) DeleteClient(id uint) (*models.Client, error) {
	client, err := s.clientRepo.Delete(id)
	if err != nil {
		if errors.Is(err, repositories.ErrClientNotFound) {
			return nil, apperrors.NewNotFoundError("client", "Client not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return client, nil
}

func (s *clientService) SearchClients(term string) ([]models.Client, error) {
	clients, err := s.clientRepo.Search(term)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return clients, nil
}
