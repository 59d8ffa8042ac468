package models

import "time"

// CaseTag is one step in the case-progress taxonomy. Sequence numbers are
// independent integers: gaps and duplicates are allowed and never
// renumbered.
type CaseTag struct {
	ID          uint      `gorm:"primaryKey" json:"ctag_id"`
	Name        string    `gorm:"not null" json:"ctag_name"`
	SequenceNum *int      `json:"ctag_sequence_num"`
	CreatedBy   *uint     `json:"ctag_created_by"`
	CreatedAt   time.Time `json:"ctag_date_created"`
}
