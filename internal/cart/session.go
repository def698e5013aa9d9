package cart

import (
	"net/http"

	"github.com/google/uuid"
)

const CookieName = "snackmatch_session"

// SessionID returns the caller's session id, minting a cookie on first
// contact. Sessions carry no identity; they only scope cart state.
func SessionID(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(CookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
