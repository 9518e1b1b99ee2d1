package httpserver

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/project_marketplace/internal/transport"
)

const (
	sessionHeader = transport.SessionHeader
	sessionCookie = transport.SessionCookie
	sessionMaxAge = 30 * 24 * time.Hour
	// cart_items.session_id is VARCHAR(100)
	maxSessionIDLen = 100
)

func usableSessionID(sid string) bool {
	return sid != "" && len(sid) <= maxSessionIDLen
}

// sessionID resolves the cart session from the header, then the cookie, and
// otherwise starts a new one and hands it back as a cookie. Ids that do not
// fit the column are ignored.
func sessionID(c echo.Context) string {
	if sid := c.Request().Header.Get(sessionHeader); usableSessionID(sid) {
		return sid
	}
	if ck, err := c.Cookie(sessionCookie); err == nil && usableSessionID(ck.Value) {
		return ck.Value
	}

	sid := uuid.NewString()
	c.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    sid,
		Path:     "/",
		Expires:  time.Now().Add(sessionMaxAge),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	c.Response().Header().Set(sessionHeader, sid)
	return sid
}
