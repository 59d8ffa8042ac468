package services

import (
	"errors"

	"legalvault_backend/internal/auth"
	"legalvault_backend/internal/models"
	"legalvault_backend/internal/repositories"
	"legalvault_backend/internal/services/dto"
	"legalvault_backend/pkg/apperrors"
)

type UserService interface {
	GetUser(id uint) (*dto.UserResponse, error)
	ListUsers() ([]*dto.UserResponse, error)
	CountUsers() (int64, error)
	CreateUser(actorID uint, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	UpdateUser(actorID, id uint, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	DeleteUser(id uint) (*dto.UserResponse, error)
	SearchUsers(term string) ([]*dto.UserResponse, error)
	ChangePassword(userID uint, req *dto.ChangePasswordRequest) error
	SetProfileImage(userID uint, path string) (*dto.UserResponse, error)
	LawyersBySpecialty() ([]repositories.LawyerSpecialty, error)

	// UpdateRole applies the role policy: Admins may assign any role;
	// a Lawyer may assign Admin only while the firm has none.
	UpdateRole(actorID uint, actorRole string, targetID uint, req *dto.UpdateRoleRequest) (*dto.UserResponse, error)
}

type userService struct {
	userRepo         repositories.UserRepository
	notificationRepo repositories.NotificationRepository
}

func NewUserService(userRepo repositories.UserRepository, notificationRepo repositories.NotificationRepository) UserService {
	return &userService{userRepo: userRepo, notificationRepo: notificationRepo}
}

func (s *userService) GetUser(id uint) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserResponse(user), nil
}

func (s *userService) ListUsers() ([]*dto.UserResponse, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserResponseList(users), nil
}

func (s *userService) CountUsers() (int64, error) {
	count, err := s.userRepo.Count()
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return count, nil
}

func (s *userService) CreateUser(actorID uint, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		MiddleName:   req.MiddleName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		Role:         models.UserRole(req.Role),
		Status:       models.UserStatusActive,
		BranchID:     req.BranchID,
		CreatedBy:    &actorID,
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.NewAlreadyExistsError("user", "A user with this email already exists")
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserResponse(user), nil
}

func (s *userService) UpdateUser(actorID, id uint, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.MiddleName != nil {
		user.MiddleName = *req.MiddleName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Status != nil {
		user.Status = models.UserStatus(*req.Status)
	}
	if req.BranchID != nil {
		user.BranchID = req.BranchID
	}
	if req.ProfileImage != nil {
		user.ProfileImage = *req.ProfileImage
	}
	user.LastUpdatedBy = &actorID

	if err := s.userRepo.Update(user); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return s.GetUser(id)
}

func (s *userService) DeleteUser(id uint) (*dto.UserResponse, error) {
	user, err := s.userRepo.Delete(id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserResponse(user), nil
}

func (s *userService) SearchUsers(term string) ([]*dto.UserResponse, error) {
	users, err := s.userRepo.Search(term)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserResponseList(users), nil
}

func (s *userService) ChangePassword(userID uint, req *dto.ChangePasswordRequest) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.NewNotFoundError("user", "User not found")
		}
		return apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		return apperrors.ErrInvalidCredentials
	}
	if err := auth.ValidatePassword(req.NewPassword); err != nil {
		return apperrors.NewBadRequestError(err.Error())
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.userRepo.UpdatePassword(userID, hash); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *userService) SetProfileImage(userID uint, path string) (*dto.UserResponse, error) {
	image := path
	return s.UpdateUser(userID, userID, &dto.UpdateUserRequest{ProfileImage: &image})
}

func (s *userService) LawyersBySpecialty() ([]repositories.LawyerSpecialty, error) {
	pairs, err := s.userRepo.FindLawyersBySpecialty()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return pairs, nil
}

func (s *userService) UpdateRole(actorID uint, actorRole string, targetID uint, req *dto.UpdateRoleRequest) (*dto.UserResponse, error) {
	newRole := models.UserRole(req.Role)

	var (
		updated *models.User
		err     error
	)
	switch models.UserRole(actorRole) {
	case models.UserRoleAdmin:
		updated, err = s.userRepo.UpdateRole(targetID, newRole)
	case models.UserRoleLawyer:
		if newRole != models.UserRoleAdmin {
			return nil, apperrors.ErrInsufficientPermissions
		}
		updated, err = s.userRepo.PromoteFirstAdmin(targetID)
	default:
		return nil, apperrors.ErrInsufficientPermissions
	}
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrUserNotFound):
			return nil, apperrors.NewNotFoundError("user", "User not found")
		case errors.Is(err, repositories.ErrAdminAlreadyExists):
			return nil, apperrors.ErrBootstrapWindowClosed
		default:
			return nil, apperrors.InternalError(err)
		}
	}

	s.notify(updated.ID, "Role updated", "Your role is now "+string(updated.Role)+".")
	return dto.NewUserResponse(updated), nil
}

// notify writes an inbox notification; failures are logged by the
// caller of Create and never fail the request.
func (s *userService) notify(userID uint, title, message string) {
	_ = s.notificationRepo.Create(&models.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
	})
}
