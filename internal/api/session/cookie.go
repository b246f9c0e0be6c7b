// Package session moves the signed token in and out of the auth cookie.
// The token itself is stateless; the cookie is the only thing a logout can
// delete, so tokens stay valid until expiry once issued.
package session

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/flowiq/flowiq/internal/core/domain"
	"github.com/flowiq/flowiq/internal/core/token"
)

// CookieName is the auth cookie written on login.
const CookieName = "auth_token"

// Manager issues, reads, refreshes, and clears the session cookie.
type Manager struct {
	codec  *token.Codec
	secure bool
}

// NewManager builds a Manager. secure should be true whenever the app is
// served over TLS so the cookie never travels in clear text.
func NewManager(codec *token.Codec, secure bool) *Manager {
	return &Manager{codec: codec, secure: secure}
}

// Issue signs a token for the user and writes the cookie.
func (m *Manager) Issue(c echo.Context, userID, email string, role domain.Role) error {
	signed, err := m.codec.Issue(userID, email, role)
	if err != nil {
		return err
	}
	m.write(c, signed)
	return nil
}

// Claims reads and verifies the cookie. A missing cookie or a token that
// fails verification yields nil.
func (m *Manager) Claims(c echo.Context) *token.Claims {
	cookie, err := c.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	return m.codec.Verify(cookie.Value)
}

// Refresh re-issues the cookie with a fresh lifetime when the current
// session is valid. Returns nil without touching the cookie otherwise.
func (m *Manager) Refresh(c echo.Context) *token.Claims {
	claims := m.Claims(c)
	if claims == nil {
		return nil
	}
	signed, err := m.codec.Issue(claims.UserID, claims.Email, claims.Role)
	if err != nil {
		return nil
	}
	m.write(c, signed)
	return claims
}

// Clear deletes the cookie. Safe to call with no session present.
func (m *Manager) Clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   m.secure,
	})
}

func (m *Manager) write(c echo.Context, signed string) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(m.codec.TTL().Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   m.secure,
	})
}
