package models

import "github.com/golang-jwt/jwt/v5"

// SessionCookieName is the cookie carrying the session credential.
const SessionCookieName = "token"

// SessionClaims is the JWT payload of the session credential. Only the admin
// ID travels in the token; name and role are resolved per request.
type SessionClaims struct {
	AdminID string `json:"id"`
	jwt.RegisteredClaims
}
