package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/flowiq/flowiq/internal/api/metrics"
	"github.com/flowiq/flowiq/internal/api/session"
	"github.com/flowiq/flowiq/internal/core/domain"
	"github.com/flowiq/flowiq/internal/core/ports"
	"github.com/flowiq/flowiq/internal/core/rbac"
)

// AuthHandler covers registration, login, session introspection, refresh,
// and logout.
type AuthHandler struct {
	auth     ports.AuthService
	sessions *session.Manager
}

func NewAuthHandler(auth ports.AuthService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	User *domain.User `json:"user"`
}

type loginResponse struct {
	User     *domain.User `json:"user"`
	Redirect string       `json:"redirect"`
}

// Register creates an account. It does not log the user in; the client
// follows up with a login call, mirroring the register-then-login flow.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.auth.Register(c.Request().Context(), req.Email, req.Password, req.Name)
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues(registerOutcome(err)).Inc()
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusCreated, userResponse{User: user})
}

// Login verifies credentials, sets the session cookie, and tells the
// client which page fits the user's role.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, _, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues(loginOutcome(err)).Inc()
		return err
	}

	if err := h.sessions.Issue(c, user.ID, user.Email, user.Role); err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{
		User:     user,
		Redirect: rbac.LandingPath(user.Role),
	})
}

// Me resolves the current session to a user. The route is public; the
// handler owns its 401s so browsers polling it don't get redirected.
func (h *AuthHandler) Me(c echo.Context) error {
	claims := h.sessions.Claims(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	user, err := h.auth.GetUserByID(c.Request().Context(), claims.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		// Valid token for a deleted account: the cookie is useless now.
		h.sessions.Clear(c)
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	return c.JSON(http.StatusOK, userResponse{User: user})
}

// Refresh extends a valid session by a full lifetime.
func (h *AuthHandler) Refresh(c echo.Context) error {
	if claims := h.sessions.Refresh(c); claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	metrics.SessionRefreshesTotal.Inc()
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// Logout deletes the cookie. The token itself stays valid until expiry;
// there is no server-side session to revoke.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.sessions.Clear(c)
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

func registerOutcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrEmailTaken):
		return "duplicate_email"
	case errors.Is(err, domain.ErrMissingFields):
		return "invalid"
	default:
		return "error"
	}
}

func loginOutcome(err error) string {
	if errors.Is(err, domain.ErrInvalidCredentials) || errors.Is(err, domain.ErrMissingFields) {
		return "invalid_credentials"
	}
	return "error"
}
