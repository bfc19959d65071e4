package dto

// FeedbackRequest captures a portal feedback submission. Only the message
// is mandatory; the rest falls back to the sender's profile.
type FeedbackRequest struct {
	Message      string `json:"message" validate:"required"`
	FeedbackType string `json:"feedbackType"`
	Name         string `json:"name"`
	Enrollment   string `json:"enrollment"`
	Contact      string `json:"contact"`
}
