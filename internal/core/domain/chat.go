package domain

import "time"

// ChatMessage is one entry in a user's assistant transcript.
type ChatMessage struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Sender    string    `json:"sender"` // "user" or "assistant"
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

const (
	ChatSenderUser      = "user"
	ChatSenderAssistant = "assistant"
)
