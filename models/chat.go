package models

// ChatMessage is one turn of the concierge conversation. Only "user" and
// "assistant" roles are accepted from clients.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the payload coming from the frontend into /api/chat.
type ChatRequest struct {
	Messages []ChatMessage `json:"messages" binding:"required"`
	CheckIn  string        `json:"checkin,omitempty"`
	CheckOut string        `json:"checkout,omitempty"`
	Adults   int           `json:"adults,omitempty"`
	Currency string        `json:"currency,omitempty"`
}

// ChatReply is the assistant's answer, optionally with hotel cards to render.
type ChatReply struct {
	Message string        `json:"message"`
	Hotels  []HotelResult `json:"hotels,omitempty"`
}
