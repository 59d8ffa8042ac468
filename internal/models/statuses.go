package models

type UserRole string
type UserStatus string
type DocumentType string
type PaymentType string

const (
	UserRoleAdmin     UserRole = "Admin"
	UserRoleLawyer    UserRole = "Lawyer"
	UserRoleStaff     UserRole = "Staff"
	UserRoleParalegal UserRole = "Paralegal"

	UserStatusActive    UserStatus = "Active"
	UserStatusSuspended UserStatus = "Suspended"

	DocumentTypeSupport DocumentType = "Support"
	DocumentTypeTask    DocumentType = "Task"

	PaymentTypeCash   PaymentType = "Cash"
	PaymentTypeCheque PaymentType = "Cheque"
)

// Case statuses are free-form in the store but these are the values the
// dashboards count on.
const (
	CaseStatusProcessing        = "Processing"
	CaseStatusArchivedCompleted = "Archived (Completed)"
	CaseStatusArchivedDismissed = "Archived (Dismissed)"
)

// Document statuses used by the task workflow. The column itself is
// free-form.
const (
	DocStatusTodo     = "todo"
	DocStatusDone     = "done"
	DocStatusApproved = "approved"
)

// ValidRole reports whether the given role is one of the known roles.
func ValidRole(r UserRole) bool {
	switch r {
	case UserRoleAdmin, UserRoleLawyer, UserRoleStaff, UserRoleParalegal:
		return true
	}
	return false
}
