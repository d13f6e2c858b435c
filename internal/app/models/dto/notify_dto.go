package dto

// AdvisorNotifyRequest forwards an education-plan update to an advisor
type AdvisorNotifyRequest struct {
	Email        string `json:"email" binding:"required,email"`
	AdvisorEmail string `json:"advisorEmail" binding:"required,email"`
	Body         string `json:"body"`
	Phone        string `json:"phone"`
}

// EmailVerificationRequest asks for a verification mail
type EmailVerificationRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// EmailVerificationStatus reports whether an address is verified
type EmailVerificationStatus struct {
	Verified bool   `json:"verified"`
	Email    string `json:"email"`
}
