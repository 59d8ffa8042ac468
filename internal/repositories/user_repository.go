package repositories

import (
	"errors"
	"time"

	"legalvault_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrAdminAlreadyExists = errors.New("an admin already exists")
)

type UserRepository interface {
	FindByID(id uint) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	FindAll() ([]models.User, error)
	Count() (int64, error)
	CountByRole(role models.UserRole) (int64, error)
	Create(user *models.User) error
	Update(user *models.User) error
	Delete(id uint) (*models.User, error)
	Search(term string) ([]models.User, error)

	// Role changes
	UpdateRole(id uint, role models.UserRole) (*models.User, error)
	// PromoteFirstAdmin promotes the target to Admin only while no Admin
	// exists; the count check and the write share one transaction so two
	// concurrent bootstrap attempts cannot both succeed.
	PromoteFirstAdmin(id uint) (*models.User, error)

	// Login verification
	SetOTP(id uint, otp string, expiry time.Time) error
	MarkVerified(id uint) error
	UpdatePassword(id uint, passwordHash string) error

	// Lawyers grouped by the case categories they have worked.
	FindLawyersBySpecialty() ([]LawyerSpecialty, error)
}

// LawyerSpecialty is a (category, lawyer) pair for the assignment picker.
type LawyerSpecialty struct {
	CategoryID   uint   `json:"cc_id"`
	CategoryName string `json:"cc_name"`
	UserID       uint   `json:"user_id"`
	FirstName    string `json:"user_fname"`
	MiddleName   string `json:"user_mname"`
	LastName     string `json:"user_lname"`
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) FindByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Branch").First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindAll() ([]models.User, error) {
	var users []models.User
	err := r.db.Preload("Branch").Order("id").Find(&users).Error
	return users, err
}

func (r *UserRepositoryImpl) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Count(&count).Error
	return count, err
}

func (r *UserRepositoryImpl) CountByRole(role models.UserRole) (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("role = ?", role).Count(&count).Error
	return count, err
}

func (r *UserRepositoryImpl) Create(user *models.User) error {
	var existing models.User
	if err := r.db.Where("email = ?", user.Email).First(&existing).Error; err == nil {
		return ErrUserAlreadyExists
	}
	return r.db.Create(user).Error
}

func (r *UserRepositoryImpl) Update(user *models.User) error {
	result := r.db.Model(&models.User{}).Where("id = ?", user.ID).Updates(map[string]interface{}{
		"email":           user.Email,
		"password_hash":   user.PasswordHash,
		"first_name":      user.FirstName,
		"middle_name":     user.MiddleName,
		"last_name":       user.LastName,
		"phone":           user.Phone,
		"role":            user.Role,
		"status":          user.Status,
		"profile_image":   user.ProfileImage,
		"branch_id":       user.BranchID,
		"last_updated_by": user.LastUpdatedBy,
		"updated_at":      time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) Delete(id uint) (*models.User, error) {
	user, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Delete(&models.User{}, id).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepositoryImpl) Search(term string) ([]models.User, error) {
	like := "%" + term + "%"
	var users []models.User
	err := r.db.
		Where("LOWER(first_name) LIKE LOWER(?)", like).
		Or("LOWER(middle_name) LIKE LOWER(?)", like).
		Or("LOWER(last_name) LIKE LOWER(?)", like).
		Or("LOWER(email) LIKE LOWER(?)", like).
		Or("phone LIKE ?", like).
		Or("LOWER(role) LIKE LOWER(?)", like).
		Or("LOWER(status) LIKE LOWER(?)", like).
		Order("id").
		Find(&users).Error
	return users, err
}

func (r *UserRepositoryImpl) UpdateRole(id uint, role models.UserRole) (*models.User, error) {
	result := r.db.Model(&models.User{}).Where("id = ?", id).Update("role", role)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrUserNotFound
	}
	return r.FindByID(id)
}

func (r *UserRepositoryImpl) PromoteFirstAdmin(id uint) (*models.User, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var adminCount int64
		if err := tx.Model(&models.User{}).Where("role = ?", models.UserRoleAdmin).Count(&adminCount).Error; err != nil {
			return err
		}
		if adminCount > 0 {
			return ErrAdminAlreadyExists
		}

		result := tx.Model(&models.User{}).Where("id = ?", id).Update("role", models.UserRoleAdmin)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrUserNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.FindByID(id)
}

func (r *UserRepositoryImpl) SetOTP(id uint, otp string, expiry time.Time) error {
	result := r.db.Model(&models.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"otp":        otp,
		"otp_expiry": expiry,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) MarkVerified(id uint) error {
	result := r.db.Model(&models.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"is_verified": true,
		"otp":         "",
		"otp_expiry":  nil,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) UpdatePassword(id uint, passwordHash string) error {
	result := r.db.Model(&models.User{}).Where("id = ?", id).Update("password_hash", passwordHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) FindLawyersBySpecialty() ([]LawyerSpecialty, error) {
	var rows []LawyerSpecialty
	err := r.db.Model(&models.LegalCase{}).
		Select("DISTINCT case_categories.id AS category_id, case_categories.name AS category_name, users.id AS user_id, users.first_name, users.middle_name, users.last_name").
		Joins("JOIN case_categories ON cases.category_id = case_categories.id").
		Joins("JOIN users ON cases.user_id = users.id").
		Order("category_id, first_name").
		Scan(&rows).Error
	return rows, err
}
