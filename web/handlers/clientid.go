package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
)

const clientIDCookieName = "linechart-client-id"

// getClientID returns a stable identifier for the client using a cookie, so every browser gets its own tooltip.
// If the cookie is missing, it generates a new random identifier and sets it. Must be called before anything is
// written to w.
func getClientID(w http.ResponseWriter, r *http.Request) string {
	cookie, err := r.Cookie(clientIDCookieName)
	if err == nil && cookie.Value != "" {
		return cookie.Value
	}

	identifier := newClientID(r)
	http.SetCookie(w, &http.Cookie{
		Name:     clientIDCookieName,
		Value:    identifier,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return identifier
}

func newClientID(r *http.Request) string {
	var randomBytes [16]byte
	if _, err := rand.Read(randomBytes[:]); err != nil {
		return r.RemoteAddr
	}
	return hex.EncodeToString(randomBytes[:])
}
