package handlers

import (
	"legalvault_backend/internal/config"
	"legalvault_backend/internal/services"
	"legalvault_backend/internal/validator"
)

// AppHandlers holds every handler of the application.
type AppHandlers struct {
	HealthHandler       *HealthHandler
	AuthHandler         *AuthHandler
	UserHandler         *UserHandler
	ClientHandler       *ClientHandler
	BranchHandler       *BranchHandler
	CaseHandler         *CaseHandler
	CaseTagHandler      *CaseTagHandler
	DocumentHandler     *DocumentHandler
	PaymentHandler      *PaymentHandler
	NotificationHandler *NotificationHandler
}

// NewAppHandlers builds the handler registry from the service
// container.
func NewAppHandlers(sc *services.ServiceContainer, cfg *config.Config, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		HealthHandler:       NewHealthHandler(base),
		AuthHandler:         NewAuthHandler(base, sc.AuthService),
		UserHandler:         NewUserHandler(base, sc.UserService, sc.Storage, cfg.Upload.MaxSize),
		ClientHandler:       NewClientHandler(base, sc.ClientService),
		BranchHandler:       NewBranchHandler(base, sc.BranchService),
		CaseHandler:         NewCaseHandler(base, sc.CaseService),
		CaseTagHandler:      NewCaseTagHandler(base, sc.CaseTagService),
		DocumentHandler:     NewDocumentHandler(base, sc.DocumentService, sc.Storage, cfg.Upload.MaxSize),
		PaymentHandler:      NewPaymentHandler(base, sc.PaymentService),
		NotificationHandler: NewNotificationHandler(base, sc.NotificationService),
	}
}
