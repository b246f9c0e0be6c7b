package service

import (
	"context"
	"errors"
	"testing"

	"github.com/flowiq/flowiq/internal/core/domain"
)

type stubChatRepo struct {
	messages []domain.ChatMessage
}

func (r *stubChatRepo) Append(_ context.Context, msg *domain.ChatMessage) error {
	r.messages = append(r.messages, *msg)
	return nil
}

func (r *stubChatRepo) History(_ context.Context, userID string, limit int) ([]domain.ChatMessage, error) {
	var out []domain.ChatMessage
	for _, m := range r.messages {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	if len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

func TestChatService_SendStoresBothSides(t *testing.T) {
	repo := &stubChatRepo{}
	svc := NewChatService(repo)

	reply, err := svc.Send(context.Background(), "user-1", "How are my sales doing?")
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if reply.Sender != domain.ChatSenderAssistant {
		t.Fatalf("reply sender = %s", reply.Sender)
	}
	if reply.Text == "" {
		t.Fatalf("expected a reply body")
	}

	if len(repo.messages) != 2 {
		t.Fatalf("expected transcript of 2 messages, got %d", len(repo.messages))
	}
	if repo.messages[0].Sender != domain.ChatSenderUser {
		t.Fatalf("first message must be the user's")
	}

	history, err := svc.History(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("history length = %d, want 2", len(history))
	}
}

func TestChatService_RejectsEmptyMessage(t *testing.T) {
	svc := NewChatService(&stubChatRepo{})

	if _, err := svc.Send(context.Background(), "user-1", "   "); !errors.Is(err, domain.ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}
