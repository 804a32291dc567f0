// Package api holds the response envelopes shared by every HTTP handler.
package api

// ErrorResponse is the body returned for every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is returned by endpoints that have no payload of their own.
type MessageResponse struct {
	Message string `json:"message"`
}
