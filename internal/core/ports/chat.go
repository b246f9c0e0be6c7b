package ports

import (
	"context"

	"github.com/flowiq/flowiq/internal/core/domain"
)

// ChatRepository persists assistant transcripts.
type ChatRepository interface {
	Append(ctx context.Context, msg *domain.ChatMessage) error
	History(ctx context.Context, userID string, limit int) ([]domain.ChatMessage, error)
}

// ChatService is the placeholder assistant: it stores the user's message
// and replies with a canned answer.
type ChatService interface {
	Send(ctx context.Context, userID, text string) (*domain.ChatMessage, error)
	History(ctx context.Context, userID string) ([]domain.ChatMessage, error)
}
