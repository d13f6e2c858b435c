package dto

// Envelope is the response wrapper used on every endpoint.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// NewSuccessEnvelope creates a success envelope
func NewSuccessEnvelope(data interface{}, message string) Envelope {
	return Envelope{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// NewErrorEnvelope creates a failure envelope with a user-visible message
func NewErrorEnvelope(message string) Envelope {
	return Envelope{
		Success: false,
		Message: message,
	}
}
