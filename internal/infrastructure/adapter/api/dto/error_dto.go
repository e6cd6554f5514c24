package dto

// ErrorResponse is the error body every endpoint returns: a stable numeric
// code from the domain error taxonomy plus a human-readable message
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
