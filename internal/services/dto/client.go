package dto

// CreateClientRequest registers a client of the firm.
type CreateClientRequest struct {
	FullName string `json:"client_fullname" validate:"required"`
	Email    string `json:"client_email" validate:"omitempty,email"`
	Phone    string `json:"client_phone_number"`
	Address  string `json:"client_address"`
}

// UpdateClientRequest is a partial update: nil fields keep their stored
// values.
type UpdateClientRequest struct {
	FullName *string `json:"client_fullname"`
	Email    *string `json:"client_email" validate:"omitempty,email"`
	Phone    *string `json:"client_phone_number"`
	Address  *string `json:"client_address"`
}

// CreateBranchRequest registers an office branch.
type CreateBranchRequest struct {
	Name    string `json:"branch_name" validate:"required"`
	Address string `json:"branch_address"`
	Phone   string `json:"branch_phone_number"`
}

// UpdateBranchRequest is a partial update.
type UpdateBranchRequest struct {
	Name    *string `json:"branch_name"`
	Address *string `json:"branch_address"`
	Phone   *string `json:"branch_phone_number"`
}
