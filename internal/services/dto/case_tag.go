package dto

// CreateCaseTagRequest registers a progress tag. Names are unique
// case-insensitively; sequence numbers may repeat or leave gaps.
type CreateCaseTagRequest struct {
	Name        string `json:"case_tag_name" validate:"required"`
	SequenceNum *int   `json:"sequence_num"`
}

// UpdateCaseTagRequest is a partial update of a progress tag.
type UpdateCaseTagRequest struct {
	Name        *string `json:"case_tag_name"`
	SequenceNum *int    `json:"sequence_num"`
}
