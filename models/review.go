package models

// DateLayout is the calendar-date format used for review dates.
const DateLayout = "2006-01-02"

// Review is a customer review of a catalog product. Reviews are created by
// submission and never updated or deleted.
type Review struct {
	ID        string `json:"id" yaml:"id"`
	ProductID string `json:"productId" yaml:"productId"`
	UserName  string `json:"userName" yaml:"userName"`
	Rating    int    `json:"rating" yaml:"rating" example:"5"`
	Comment   string `json:"comment" yaml:"comment"`
	Date      string `json:"date" yaml:"date" example:"2024-01-15"`
}

// ReviewRequest is the body of a review submission from the product page.
type ReviewRequest struct {
	Rating  int    `json:"rating" example:"5"`
	Comment string `json:"comment" example:"Great product"`
}
