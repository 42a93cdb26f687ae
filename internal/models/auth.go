package models

import "github.com/golang-jwt/jwt/v5"

// SessionClaims is the JWT payload for a role-selection session token.
// It carries the synthesized identity only; there is no credential backing it.
type SessionClaims struct {
	UserID string `json:"user_id"`
	Role   Role   `json:"role"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

// LoginResponse is returned after selecting a role.
type LoginResponse struct {
	User        User   `json:"user"`
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
}
