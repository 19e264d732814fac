package util

import (
	"github.com/pocketbase/pocketbase/apis"
	"net/http"
)

// ErrorResponse is the body of every failed api request.
type ErrorResponse struct {
	Code    int            `json:"code"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
}

// NewErrorResponse reports a bad request. Only message reaches the client.
func NewErrorResponse(err error, message string) *apis.ApiError {
	return NewStatusErrorResponse(http.StatusBadRequest, err, message)
}

func NewStatusErrorResponse(status int, err error, message string) *apis.ApiError {
	return apis.NewApiError(status, message, err)
}
