package dto

// ChatMessage mirrors the OpenAI chat roles so the frontend history can be
// replayed verbatim.
type ChatMessage struct {
	Role    string `json:"role" validate:"required,oneof=system user assistant"`
	Content string `json:"content" validate:"required"`
}

type ChatRequest struct {
	Message string        `json:"message" validate:"required"`
	History []ChatMessage `json:"history" validate:"dive"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}
