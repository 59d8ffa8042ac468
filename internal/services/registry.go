package services

import (
	"legalvault_backend/internal/config"
	"legalvault_backend/internal/email"
	"legalvault_backend/internal/repositories"
	"legalvault_backend/internal/storage"

	"gorm.io/gorm"
)

// ServiceContainer holds every service of the application.
type ServiceContainer struct {
	AuthService         AuthService
	UserService         UserService
	ClientService       ClientService
	BranchService       BranchService
	CaseService         CaseService
	CaseTagService      CaseTagService
	DocumentService     DocumentService
	PaymentService      PaymentService
	NotificationService NotificationService
	Mailer              email.Mailer
	Storage             storage.Storage
}

// NewServiceContainer wires repositories and collaborators into the
// service graph.
func NewServiceContainer(db *gorm.DB, cfg *config.Config, files storage.Storage, mailer email.Mailer) *ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	clientRepo := repositories.NewClientRepository(db)
	branchRepo := repositories.NewBranchRepository(db)
	caseRepo := repositories.NewCaseRepository(db)
	tagRepo := repositories.NewCaseTagRepository(db)
	docRepo := repositories.NewDocumentRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)

	return &ServiceContainer{
		AuthService:         NewAuthService(userRepo, mailer, cfg),
		UserService:         NewUserService(userRepo, notificationRepo),
		ClientService:       NewClientService(clientRepo),
		BranchService:       NewBranchService(branchRepo),
		CaseService:         NewCaseService(caseRepo, clientRepo),
		CaseTagService:      NewCaseTagService(tagRepo),
		DocumentService:     NewDocumentService(docRepo, caseRepo, files),
		PaymentService:      NewPaymentService(paymentRepo),
		NotificationService: NewNotificationService(notificationRepo, userRepo),
		Mailer:              mailer,
		Storage:             files,
	}
}
