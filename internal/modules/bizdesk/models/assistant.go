package models

// ChatRequest is the POST /ai/chat body
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the assistant's answer. Success is false when the AI backend failed
// and Reply carries a fixed apology instead.
type ChatResponse struct {
	Reply   string `json:"reply"`
	Success bool   `json:"success"`
}
