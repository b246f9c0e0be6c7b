package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/flowiq/flowiq/internal/core/domain"
	"github.com/flowiq/flowiq/internal/core/ports"
)

const historyLimit = 50

// ChatService is the placeholder assistant. It persists the transcript and
// answers from a small keyword table; there is no model behind it.
type ChatService struct {
	repo ports.ChatRepository
}

func NewChatService(repo ports.ChatRepository) *ChatService {
	return &ChatService{repo: repo}
}

func (s *ChatService) Send(ctx context.Context, userID, text string) (*domain.ChatMessage, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrMissingFields
	}

	now := time.Now().UTC()
	if err := s.repo.Append(ctx, &domain.ChatMessage{
		ID:        uuid.NewString(),
		UserID:    userID,
		Sender:    domain.ChatSenderUser,
		Text:      text,
		CreatedAt: now,
	}); err != nil {
		return nil, err
	}

	reply := &domain.ChatMessage{
		ID:        uuid.NewString(),
		UserID:    userID,
		Sender:    domain.ChatSenderAssistant,
		Text:      cannedReply(text),
		CreatedAt: now,
	}
	if err := s.repo.Append(ctx, reply); err != nil {
		return nil, err
	}
	return reply, nil
}

func (s *ChatService) History(ctx context.Context, userID string) ([]domain.ChatMessage, error) {
	return s.repo.History(ctx, userID, historyLimit)
}

func cannedReply(text string) string {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "sale"), strings.Contains(lower, "revenue"):
		return "You can review sales figures on the cash flow dashboard. Ask me about expenses or inventory too."
	case strings.Contains(lower, "expense"), strings.Contains(lower, "cost"):
		return "Expense totals for any period are available under Cash Flow. Try the summary report for a quick net figure."
	case strings.Contains(lower, "stock"), strings.Contains(lower, "inventory"):
		return "The inventory dashboard lists items that have fallen below their minimum stock level."
	case strings.Contains(lower, "forecast"):
		return "Forecasting is not available yet. The reports page shows historical trends in the meantime."
	default:
		return "I can help with questions about sales, expenses, inventory, and reports."
	}
}
