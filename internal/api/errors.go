package api

import (
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"
)

// Error is a non-success response from the backend API.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api: status %d", e.StatusCode)
}

// parseError extracts the backend's message field. The backend is
// inconsistent about casing ("message" vs "Message"), so both keys
// are checked.
func parseError(resp *resty.Response) *Error {
	apiErr := &Error{StatusCode: resp.StatusCode()}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return apiErr
	}

	raw, ok := body["message"]
	if !ok {
		raw, ok = body["Message"]
	}
	if ok {
		var msg string
		if err := json.Unmarshal(raw, &msg); err == nil {
			apiErr.Message = msg
		}
	}

	return apiErr
}
