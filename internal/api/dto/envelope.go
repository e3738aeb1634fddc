package dto

import "time"

// Envelope is the uniform response shape every endpoint returns: a numeric
// code, a human message, an optional data payload and a millisecond
// timestamp. Success and failure differ only in code and message.
type Envelope struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// Success wraps data in a 200 envelope.
func Success(data any) Envelope {
	return Envelope{Code: 200, Message: "ok", Data: data, Timestamp: nowMillis()}
}

// SuccessMessage wraps data in a 200 envelope with a custom message.
func SuccessMessage(message string, data any) Envelope {
	return Envelope{Code: 200, Message: message, Data: data, Timestamp: nowMillis()}
}

// Failure builds an error envelope carrying the given code and message.
func Failure(code int, message string) Envelope {
	return Envelope{Code: code, Message: message, Timestamp: nowMillis()}
}

func nowMillis() int64 {
	return time.Now().UnixMilli()
}
