// Package identity implements Zephyr's identity model: a cookie whose value
// is the raw username, plus bcrypt password hashing.
//
// The cookie-equals-username scheme is deliberately weak (no session token,
// no signature) but it is the wire contract the browser frontend reads with
// document.cookie, so it is kept as-is. Hardening it means changing the
// client too.
package identity

import (
	"net/http"

	"golang.org/x/crypto/bcrypt"
)

// CookieName is the identity cookie the frontend reads.
const CookieName = "username"

// bcryptCost matches the original system's cost factor.
const bcryptCost = 10

// HashPassword returns a bcrypt hash of the plain-text password.
func HashPassword(plain string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	return string(bytes), err
}

// CheckPassword compares a bcrypt hash against the plain-text candidate.
func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// SetCookie marks the client as logged in as username.
func SetCookie(w http.ResponseWriter, username string) {
	http.SetCookie(w, &http.Cookie{
		Name:  CookieName,
		Value: username,
		Path:  "/",
	})
}

// ClearCookie logs the client out.
func ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:   CookieName,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
}

// FromRequest returns the logged-in username, or "" when anonymous.
func FromRequest(r *http.Request) string {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return c.Value
}
