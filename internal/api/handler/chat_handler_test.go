package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	appmiddleware "github.com/flowiq/flowiq/internal/api/middleware"
	"github.com/flowiq/flowiq/internal/core/domain"
)

type stubChatService struct {
	lastUserID string
	lastText   string
	history    []domain.ChatMessage
}

func (s *stubChatService) Send(ctx context.Context, userID, text string) (*domain.ChatMessage, error) {
	s.lastUserID, s.lastText = userID, text
	return &domain.ChatMessage{ID: "m1", UserID: userID, Sender: domain.ChatSenderAssistant, Text: "reply"}, nil
}

func (s *stubChatService) History(ctx context.Context, userID string) ([]domain.ChatMessage, error) {
	s.lastUserID = userID
	return s.history, nil
}

func chatContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, jsonBody(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestChatHandler_SendUsesSessionUser(t *testing.T) {
	svc := &stubChatService{}
	h := NewChatHandler(svc)

	c, rec := chatContext(http.MethodPost, "/chat", `{"message":"forecast next month"}`)
	c.Set(appmiddleware.CtxUserID, "u1")

	if err := h.Send(c); err != nil {
		t.Fatalf("send: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if svc.lastUserID != "u1" || svc.lastText != "forecast next month" {
		t.Fatalf("service saw %q / %q", svc.lastUserID, svc.lastText)
	}
}

func TestChatHandler_SendRequiresText(t *testing.T) {
	h := NewChatHandler(&stubChatService{})

	c, _ := chatContext(http.MethodPost, "/chat", `{}`)
	c.Set(appmiddleware.CtxUserID, "u1")

	err := h.Send(c)
	var he *echo.HTTPError
	if !asHTTPError(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty text, got %v", err)
	}
}

func TestChatHandler_HistoryScopedToSessionUser(t *testing.T) {
	svc := &stubChatService{history: []domain.ChatMessage{{ID: "m1", UserID: "u1"}}}
	h := NewChatHandler(svc)

	c, rec := chatContext(http.MethodGet, "/chat/history", "")
	c.Set(appmiddleware.CtxUserID, "u1")

	if err := h.History(c); err != nil {
		t.Fatalf("history: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if svc.lastUserID != "u1" {
		t.Fatalf("history must use the session user, got %q", svc.lastUserID)
	}
}
