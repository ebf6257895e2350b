// Package api defines the transport response types shared by all handlers.
package api

import "time"

// ErrorResponse is the error body returned by every endpoint.
// Message is a fixed generic string per status class; Details carries the
// originating precondition message and is omitted for internal errors.
type ErrorResponse struct {
	StatusCode int       `json:"statusCode"`
	Message    string    `json:"message"`
	Details    string    `json:"details,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
	Path       string    `json:"path"`
}

// MessageResponse is a simple acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserResponse is returned by register and login.
type UserResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Token    string `json:"token"`
}
