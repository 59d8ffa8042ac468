package models

import (
	"time"

	"gorm.io/datatypes"
)

// LegalCase is a client engagement. Named LegalCase because `case` is a
// keyword; the table keeps the short name.
type LegalCase struct {
	ID      uint    `gorm:"primaryKey" json:"case_id"`
	Status  string  `gorm:"not null;default:'Processing'" json:"case_status"`
	Fee     float64 `json:"case_fee"`
	Balance float64 `json:"case_balance"`
	Remarks string  `json:"case_remarks"`

	// Physical storage location of the paper file.
	Cabinet string `json:"case_cabinet"`
	Drawer  string `json:"case_drawer"`

	// Owning lawyer. NULL means the case is unassigned and visible to all
	// users for triage.
	UserID     *uint `gorm:"index" json:"user_id"`
	ClientID   *uint `gorm:"index" json:"client_id"`
	CategoryID *uint `gorm:"index" json:"cc_id"`
	TypeID     *uint `gorm:"index" json:"ct_id"`
	AssignedBy *uint `json:"assigned_by"`

	Tag     string         `json:"case_tag"`
	TagList datatypes.JSON `json:"case_tag_list"`
	Verdict string         `json:"case_verdict"`

	// Explicit allow-list of extra viewer user IDs, stored as a JSON int
	// array. NULL (not an empty array) means "no extra viewers"; it is NOT
	// the unassigned-case rule, which is keyed on UserID being NULL.
	AllowedViewers datatypes.JSON `json:"case_allowed_viewers"`

	CreatedAt     time.Time  `json:"case_date_created"`
	LastUpdated   *time.Time `json:"case_last_updated"`
	LastUpdatedBy *uint      `json:"last_updated_by"`

	// Relations
	Owner    *User         `gorm:"foreignKey:UserID" json:"owner,omitempty"`
	Client   *Client       `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Category *CaseCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Type     *CaseType     `gorm:"foreignKey:TypeID" json:"type,omitempty"`
}

func (LegalCase) TableName() string {
	return "cases"
}

// IsArchived reports whether the case reached either archived status.
func (c *LegalCase) IsArchived() bool {
	return c.Status == CaseStatusArchivedCompleted || c.Status == CaseStatusArchivedDismissed
}

// CaseCategory is the first level of the case taxonomy (e.g. Civil,
// Criminal).
type CaseCategory struct {
	ID   uint   `gorm:"primaryKey" json:"cc_id"`
	Name string `gorm:"not null" json:"cc_name"`
}

func (CaseCategory) TableName() string {
	return "case_categories"
}

// CaseType is the second level, under a category, with a formatted
// fee-range string (e.g. "₱10,000 - ₱50,000").
type CaseType struct {
	ID         uint   `gorm:"primaryKey" json:"ct_id"`
	Name       string `gorm:"not null" json:"ct_name"`
	FeeRange   string `json:"ct_fee"`
	CategoryID *uint  `gorm:"index" json:"cc_id"`

	Category *CaseCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

func (CaseType) TableName() string {
	return "case_types"
}
