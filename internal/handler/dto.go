package handler

import "time"

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Status    int    `json:"status"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
}

// NewErrorResponse stamps the response with the current time in epoch milliseconds.
func NewErrorResponse(status int, message string) ErrorResponse {
	return ErrorResponse{
		Status:    status,
		Message:   message,
		Timestamp: time.Now().UnixMilli(),
	}
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}
