package dto

import "time"

// RegisterRequest payload for new accounts.
type RegisterRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// AuthResponse is the canonical session payload returned by both register
// and login.
type AuthResponse struct {
	UserID      string `json:"userId"`
	AccessToken string `json:"accessToken"`
	ClientID    string `json:"clientId"`
	Nickname    string `json:"nickname"`
	Avatar      string `json:"avatar"`
}

// AccountResponse describes the authenticated caller's profile.
type AccountResponse struct {
	UserID    string    `json:"userId"`
	Phone     string    `json:"phone"`
	Nickname  string    `json:"nickname"`
	Avatar    string    `json:"avatar"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}
