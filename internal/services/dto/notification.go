package dto

// CreateNotificationRequest pushes a message to a user's inbox.
type CreateNotificationRequest struct {
	UserID  uint   `json:"user_id" validate:"required"`
	Title   string `json:"notification_title" validate:"required"`
	Message string `json:"notification_message" validate:"required"`
}

// UnreadCountResponse backs the bell badge.
type UnreadCountResponse struct {
	Count int64 `json:"count"`
}
