package models

import "time"

type User struct {
	BaseModel
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	FirstName    string     `gorm:"not null" json:"first_name"`
	MiddleName   string     `json:"middle_name"`
	LastName     string     `gorm:"not null" json:"last_name"`
	Phone        string     `json:"phone"`
	Role         UserRole   `gorm:"type:varchar(20);not null" json:"role"`
	Status       UserStatus `gorm:"type:varchar(20);default:'Active'" json:"status"`
	ProfileImage string     `json:"profile_image"`
	BranchID     *uint      `gorm:"index" json:"branch_id"`

	// Login verification (OTP second factor)
	IsVerified bool       `gorm:"default:false" json:"is_verified"`
	OTP        string     `json:"-"`
	OTPExpiry  *time.Time `json:"-"`

	CreatedBy     *uint `json:"created_by"`
	LastUpdatedBy *uint `json:"last_updated_by"`

	// Relations
	Branch *Branch `gorm:"foreignKey:BranchID" json:"branch,omitempty"`
}

// FullName joins the name parts, skipping an absent middle name.
func (u *User) FullName() string {
	if u.MiddleName == "" {
		return u.FirstName + " " + u.LastName
	}
	return u.FirstName + " " + u.MiddleName + " " + u.LastName
}

type Branch struct {
	BaseModel
	Name    string `gorm:"not null" json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}
