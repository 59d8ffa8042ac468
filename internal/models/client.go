package models

type Client struct {
	BaseModel
	FullName string `gorm:"not null" json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}
