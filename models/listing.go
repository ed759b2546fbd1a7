package models

// ListingRequest is the seller "list a product" form. Price stays a string so
// the form's raw input can be validated with a useful message.
type ListingRequest struct {
	Name        string   `form:"name" json:"name" example:"Canvas Tote"`
	Category    string   `form:"category" json:"category" example:"Accessories"`
	Price       string   `form:"price" json:"price" example:"39.99"`
	Description string   `form:"description" json:"description"`
	Features    []string `form:"features" json:"features"`
}

// ImageRef describes one accepted upload. Nothing is stored; the reference
// only exists for the lifetime of the request.
type ImageRef struct {
	Name        string `json:"name"`
	ContentType string `json:"contentType" example:"image/png"`
	Size        int64  `json:"size"`
	Main        bool   `json:"main"`
}

// ListingResponse echoes the accepted listing back to the seller.
type ListingResponse struct {
	Name        string     `json:"name"`
	Category    string     `json:"category"`
	Price       string     `json:"price"`
	Description string     `json:"description"`
	Features    []string   `json:"features"`
	Images      []ImageRef `json:"images"`
}
