package models

const (
	VariantDefault     = "default"
	VariantDestructive = "destructive"
)

// Notification is a titled, fire-and-forget message for the shopper (a toast).
type Notification struct {
	Title       string `json:"title" example:"Review Submitted!"`
	Description string `json:"description" example:"Thank you for your feedback."`
	Variant     string `json:"variant" example:"default"`
}
