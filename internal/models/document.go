package models

import (
	"time"

	"gorm.io/datatypes"
)

// Document is a case file: either a supporting document or a task handed
// to staff/paralegals. Two parallel lifecycle markers exist: the
// soft-delete markers drive the trash flow (Active -> Trashed -> restored
// or purged) and the legacy trash markers are kept for imported rows.
type Document struct {
	ID          uint         `gorm:"primaryKey" json:"doc_id"`
	Name        string       `gorm:"not null" json:"doc_name"`
	Type        DocumentType `gorm:"type:varchar(20);not null" json:"doc_type"`
	Description string       `json:"doc_description"`
	Task        string       `json:"doc_task"`

	// Stable path returned by the storage collaborator; never raw bytes.
	File string `json:"doc_file"`

	PrioLevel string     `json:"doc_prio_level"`
	DueDate   *time.Time `json:"doc_due_date"`
	Status    string     `json:"doc_status"`
	Tag       string     `json:"doc_tag"`

	// Optional open-password, bcrypt-hashed at rest.
	Password string `json:"-"`

	TaskedTo    *uint `gorm:"index" json:"doc_tasked_to"`
	TaskedBy    *uint `json:"doc_tasked_by"`
	SubmittedBy *uint `gorm:"index" json:"doc_submitted_by"`

	// Ordered, deduplicated set of reference file paths (JSON string
	// array). Column renamed because REFERENCES is a reserved word.
	References datatypes.JSON `gorm:"column:doc_reference" json:"doc_reference"`

	CaseID *uint `gorm:"index" json:"case_id"`

	// Soft-delete markers
	IsDeleted   bool       `gorm:"default:false;index" json:"is_deleted"`
	DeletedBy   *uint      `json:"deleted_by"`
	DeletedDate *time.Time `json:"deleted_date"`

	// Legacy trash markers
	IsTrashed   bool       `gorm:"default:false" json:"is_trashed"`
	TrashedBy   *uint      `json:"trashed_by"`
	TrashedDate *time.Time `json:"trashed_date"`

	CreatedAt     time.Time `json:"doc_date_created"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"doc_last_updated"`
	LastUpdatedBy *uint     `json:"doc_last_updated_by"`

	// Relations
	Case *LegalCase `gorm:"foreignKey:CaseID" json:"case,omitempty"`
}
