package dto

import "time"

// CreateDocumentRequest files a document or task against a case. The
// file itself arrives as multipart alongside this payload.
type CreateDocumentRequest struct {
	Name        string     `json:"doc_name" validate:"required"`
	Type        string     `json:"doc_type" validate:"required,oneof=Support Task"`
	Description string     `json:"doc_description"`
	Task        string     `json:"doc_task"`
	PrioLevel   string     `json:"doc_prio_level"`
	DueDate     *time.Time `json:"doc_due_date"`
	Status      string     `json:"doc_status"`
	Tag         string     `json:"doc_tag"`
	Password    string     `json:"doc_password"`
	TaskedTo    *uint      `json:"doc_tasked_to"`
	TaskedBy    *uint      `json:"doc_tasked_by"`
	SubmittedBy *uint      `json:"doc_submitted_by"`
	CaseID      *uint      `json:"case_id"`
	References  []string   `json:"doc_reference"`
}

// UpdateDocumentRequest is a partial update: nil fields keep their
// stored values. References, when present, are merged into the stored
// set.
type UpdateDocumentRequest struct {
	Name        *string    `json:"doc_name"`
	Description *string    `json:"doc_description"`
	Task        *string    `json:"doc_task"`
	PrioLevel   *string    `json:"doc_prio_level"`
	DueDate     *time.Time `json:"doc_due_date"`
	Status      *string    `json:"doc_status"`
	Tag         *string    `json:"doc_tag"`
	Password    *string    `json:"doc_password"`
	TaskedTo    *uint      `json:"doc_tasked_to"`
	CaseID      *uint      `json:"case_id"`
	References  []string   `json:"doc_reference"`

	// Trash markers carried by imported rows; passed through on update.
	IsTrashed   *bool      `json:"is_trashed"`
	TrashedBy   *uint      `json:"trashed_by"`
	TrashedDate *time.Time `json:"trashed_date"`
}

// RemoveReferenceRequest drops one path from a document's reference
// set.
type RemoveReferenceRequest struct {
	Path string `json:"path" validate:"required"`
}

// DocumentCountsResponse feeds the dashboard widgets.
type DocumentCountsResponse struct {
	Todo         int64 `json:"todo"`
	Done         int64 `json:"done"`
	Approved     int64 `json:"approved"`
	PendingTasks int64 `json:"pending_tasks"`
	Processing   int64 `json:"processing"`
}
