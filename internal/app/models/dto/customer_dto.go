package dto

// CustomerRequest is the customer upsert payload
type CustomerRequest struct {
	FirstName   string  `json:"first_name" binding:"required"`
	LastName    string  `json:"last_name" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	PhoneNumber *string `json:"phone_number"`
	CompanyName *string `json:"company_name"`
	Title       *string `json:"title"`
	Notes       *string `json:"notes"`
}

// CustomerResponse is a customer row projection for listing
type CustomerResponse struct {
	ID          int64   `json:"id"`
	UserID      int64   `json:"user_id"`
	Email       string  `json:"email"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	CompanyName *string `json:"company_name"`
	Title       *string `json:"title"`
	Notes       *string `json:"notes"`
}
