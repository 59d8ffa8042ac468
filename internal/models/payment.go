package models

import "time"

type Payment struct {
	ID     uint        `gorm:"primaryKey" json:"payment_id"`
	CaseID uint        `gorm:"index;not null" json:"case_id"`
	UserID *uint       `gorm:"index" json:"user_id"`
	Amount float64     `gorm:"not null" json:"payment_amount"`
	Type   PaymentType `gorm:"type:varchar(20);not null" json:"payment_type"`

	// Cheque fields, populated only for cheque payments.
	ChequeName     string `json:"cheque_name"`
	ChequeNumber   string `json:"cheque_number"`
	ChequeBranch   string `json:"cheque_branch"`
	ChequeLocation string `json:"cheque_location"`

	PaymentDate time.Time `gorm:"autoCreateTime" json:"payment_date"`

	Case *LegalCase `gorm:"foreignKey:CaseID" json:"case,omitempty"`
	User *User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
