package dto

// CreateCaseRequest opens a case. A missing lawyer leaves the case
// unassigned, which makes it visible to everyone.
type CreateCaseRequest struct {
	ClientID   *uint    `json:"client_id" validate:"required"`
	CategoryID *uint    `json:"case_category_id"`
	TypeID     *uint    `json:"case_type_id"`
	UserID     *uint    `json:"user_id"`
	Fee        float64  `json:"case_fee" validate:"gte=0"`
	Remarks    string   `json:"case_remarks"`
	Cabinet    string   `json:"case_cabinet"`
	Drawer     string   `json:"case_drawer"`
	Tag        string   `json:"case_tag"`
	TagList    []string `json:"case_tag_list"`
}

// UpdateCaseRequest is a partial update: nil fields keep their stored
// values.
type UpdateCaseRequest struct {
	Status     *string  `json:"case_status" validate:"omitempty,oneof='Processing' 'Archived (Completed)' 'Archived (Dismissed)'"`
	Fee        *float64 `json:"case_fee" validate:"omitempty,gte=0"`
	Balance    *float64 `json:"case_balance"`
	Remarks    *string  `json:"case_remarks"`
	Cabinet    *string  `json:"case_cabinet"`
	Drawer     *string  `json:"case_drawer"`
	UserID     *uint    `json:"user_id"`
	ClientID   *uint    `json:"client_id"`
	CategoryID *uint    `json:"case_category_id"`
	TypeID     *uint    `json:"case_type_id"`
	Tag        *string  `json:"case_tag"`
	TagList    []string `json:"case_tag_list"`
	Verdict    *string  `json:"case_verdict"`
}

// ShareAccessRequest replaces a case's allow-list wholesale. An empty
// list revokes all shared access.
type ShareAccessRequest struct {
	UserIDs []uint `json:"user_ids"`
}

// CreateCategoryRequest adds a practice-area category.
type CreateCategoryRequest struct {
	Name string `json:"case_category_name" validate:"required"`
}

// CreateTypeRequest adds a case type with its standard fee range.
type CreateTypeRequest struct {
	Name       string  `json:"case_type_name" validate:"required"`
	CategoryID *uint   `json:"case_category_id"`
	FeeMin     float64 `json:"fee_min" validate:"gte=0"`
	FeeMax     float64 `json:"fee_max" validate:"gtefield=FeeMin"`
}

// CaseCountsResponse feeds the dashboard widgets.
type CaseCountsResponse struct {
	Processing int64 `json:"processing"`
	Archived   int64 `json:"archived"`
	Total      int64 `json:"total"`
}
