// Package dto provides Data Transfer Objects for API requests and responses.
package dto

// RegisterRequest represents the request body for account registration.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// StatusResponse is the generic acknowledgment body. Error responses use
// it with Success set to false and a human-readable message.
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// MessageResponse is the bare-message body used by read endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}
