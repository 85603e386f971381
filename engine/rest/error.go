package rest

import (
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/patchline/patchline/engine/core"
)

// APIError represents an upstream error response. The JSON tags cover both
// the Mattermost envelope (id, message, request_id, status_code) and the
// Clockify envelope (message, code).
type APIError struct {
	ID            string `json:"id,omitempty"`
	Message       string `json:"message,omitempty"`
	DetailedError string `json:"detailed_error,omitempty"`
	RequestID     string `json:"request_id,omitempty"`
	Code          int    `json:"code,omitempty"`
	Status        int    `json:"-"`
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "upstream request failed"
	}
	if e.ID != "" {
		return fmt.Sprintf("%s: %s (status %d)", e.ID, msg, e.Status)
	}
	return fmt.Sprintf("%s (status %d)", msg, e.Status)
}

// handleResponse processes the response and surfaces upstream errors
func handleResponse(resp *resty.Response) error {
	if resp.StatusCode() < 400 {
		return nil
	}

	if apiErr, ok := resp.Error().(*APIError); ok && apiErr != nil && apiErr.Message != "" {
		apiErr.Status = resp.StatusCode()
		return apiErr
	}
	return &APIError{
		Message: core.RedactString(resp.String()),
		Status:  resp.StatusCode(),
	}
}
