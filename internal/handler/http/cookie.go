package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/rizzmaster/rizznova/models"
)

// sessionCookieName is the name of the cookie carrying the session credential.
const sessionCookieName = "rizznova_session"

// cookieValueSeparator joins the session identifier and its HMAC signature
// inside the cookie value: "<sessionID>.<signature>".
const cookieValueSeparator = "."

// encodeSessionCookie builds the signed cookie value for a session identifier.
func (h *Handler) encodeSessionCookie(sessionID string) string {
	return sessionID + cookieValueSeparator + h.cookieSigner.HashString(sessionID)
}

// decodeSessionCookie splits a cookie value into the session identifier and
// verifies its signature. The identifier is returned only when the signature
// checks out; everything else yields a sentinel error.
func (h *Handler) decodeSessionCookie(value string) (string, error) {
	sessionID, signature, found := strings.Cut(value, cookieValueSeparator)
	if !found || sessionID == "" || signature == "" {
		return "", ErrMalformedSessionCookie
	}

	if !h.cookieSigner.Equal(sessionID, signature) {
		return "", ErrBadCookieSignature
	}

	return sessionID, nil
}

// setSessionCookie attaches the signed session cookie to the response. The
// cookie lives exactly as long as the session record: its Max-Age is derived
// from the session's absolute expiry, never extended afterwards.
func (h *Handler) setSessionCookie(w http.ResponseWriter, session models.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    h.encodeSessionCookie(session.SessionID),
		Path:     "/",
		MaxAge:   int(time.Until(session.ExpiresAt).Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie instructs the client to drop the session cookie.
func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}
