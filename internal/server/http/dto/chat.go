package dto

// ChatRequest is the body of POST /api/chat-order.
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
	UserID  string `json:"userId" binding:"required"`
}

// VoiceRequest is the body of POST /api/voice-order.
type VoiceRequest struct {
	Transcript string `json:"transcript" binding:"required"`
	UserID     string `json:"userId" binding:"required"`
}

// ChatResponse carries the reply text shown to the customer.
type ChatResponse struct {
	Response string `json:"response"`
}

// ErrorResponse describes a failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
