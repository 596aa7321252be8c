package backend

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// APIError carries the error payload of a rejected backend request.
// The backend reports failures as {"detail": "..."}.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("backend returned status %d", e.Status)
	}
	return e.Detail
}

// apiError decodes the response error payload, falling back to a generic
// message when the body is not the expected shape.
func apiError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return apiErr
	}

	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		apiErr.Detail = payload.Detail
	}
	return apiErr
}
