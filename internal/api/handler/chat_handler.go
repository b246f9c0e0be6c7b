package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/flowiq/flowiq/internal/core/ports"
)

// ChatHandler exposes the forecasting assistant transcript.
type ChatHandler struct {
	chat ports.ChatService
}

func NewChatHandler(chat ports.ChatService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

type chatRequest struct {
	Message string `json:"message" validate:"required"`
}

func (h *ChatHandler) Send(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	reply, err := h.chat.Send(c.Request().Context(), userID, req.Message)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reply)
}

func (h *ChatHandler) History(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	messages, err := h.chat.History(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messages)
}
