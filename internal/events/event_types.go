package events

import (
	"time"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventAccountRegistered EventType = "account_registered"
	EventLoginSucceeded    EventType = "login_succeeded"
)

// Event represents a user event emitted by the auth service for downstream
// consumers. Payloads never carry credentials.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	AccountID string      `json:"account_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// AccountRegisteredPayload payload.
type AccountRegisteredPayload struct {
	Phone       string `json:"phone"`
	DisplayName string `json:"display_name"`
	ClientID    string `json:"client_id"`
}

// LoginSucceededPayload payload.
type LoginSucceededPayload struct {
	Phone    string `json:"phone"`
	ClientID string `json:"client_id"`
}
