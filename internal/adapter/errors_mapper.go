package adapter

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-artist-guesser/models"
	"github.com/go-resty/resty/v2"
)

func isSuccess(resp *resty.Response) bool {
	return resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices
}

// mapHTTPError returns nil for 2xx responses and an [*APIError] otherwise.
// The error payload is decoded best-effort so a proxy error page still maps
// to the status sentinel.
func mapHTTPError(resp *resty.Response) error {
	if isSuccess(resp) {
		return nil
	}

	var payload models.ErrorPayload
	_ = json.Unmarshal(resp.Body(), &payload)

	return newAPIError(resp.StatusCode(), payload)
}

func newAPIError(statusCode int, payload models.ErrorPayload) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Message:    payload.Message,
		ErrorText:  payload.Error.Text,
		kind:       statusKind(statusCode),
	}
}

func statusKind(statusCode int) error {
	switch {
	case statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices:
		return ErrApplication
	case statusCode == http.StatusBadRequest:
		return ErrBadRequest
	case statusCode == http.StatusNotFound:
		return ErrNotFound
	case statusCode == http.StatusInternalServerError:
		return ErrInternalServerError
	case statusCode == http.StatusBadGateway:
		return ErrBadGateway
	default:
		return ErrUnexpectedStatus
	}
}
