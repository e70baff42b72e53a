package model

import "time"

// InquiryRequest represents a contact-form submission from the portal
type InquiryRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone,omitempty"`
	Message   string `json:"message" binding:"required"`
	ListingID *int64 `json:"listing_id,omitempty"`
}

// Inquiry is a stored contact-form submission
type Inquiry struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Phone     string    `json:"phone" db:"phone"`
	Message   string    `json:"message" db:"message"`
	ListingID *int64    `json:"listing_id,omitempty" db:"listing_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// InquiryResponse represents the inquiry submission result
type InquiryResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ListingFilters represents optional filters for the portal listing endpoints
type ListingFilters struct {
	Type     *string `form:"type" json:"type,omitempty"`
	Location *string `form:"location" json:"location,omitempty"`
}

// ListingPage represents a paginated listing response
type ListingPage struct {
	Results  []Listing `json:"results"`
	Total    int       `json:"total"`
	PageSize int       `json:"page_size"`
	Offset   int       `json:"offset"`
	HasMore  bool      `json:"has_more"`
}
