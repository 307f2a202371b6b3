package apod

import (
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/exp/slices"
)

var (
	// ErrInvalidKey is returned when NASA rejects the API key.
	ErrInvalidKey = errors.New("invalid NASA API key")

	// ErrDateOutOfRange is returned for dates before the first picture or in the future.
	ErrDateOutOfRange = errors.New("date out of range")
)

// APIError is a non-200 response from the APOD API.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("apod api: %d %s: %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("apod api: %d: %s", e.Status, e.Message)
}

// keyCodes are the gateway codes that mean the key itself was refused.
var keyCodes = []string{"API_KEY_INVALID", "API_KEY_MISSING", "API_KEY_DISABLED", "API_KEY_UNAUTHORIZED"}

// Is lets errors.Is match ErrInvalidKey for rejected keys.
func (e *APIError) Is(target error) bool {
	return target == ErrInvalidKey && slices.Contains(keyCodes, e.Code)
}

// errorBody covers both error shapes NASA sends: the api.data.gov gateway
// ({"error":{"code","message"}}) and the APOD service itself ({"code","msg"}).
type errorBody struct {
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Code any    `json:"code"`
	Msg  string `json:"msg"`
}

func (b *errorBody) toAPIError(status int) *APIError {
	e := &APIError{Status: status}
	switch {
	case b.Error != nil:
		e.Code = b.Error.Code
		e.Message = b.Error.Message
	case b.Msg != "":
		e.Message = b.Msg
	default:
		e.Message = http.StatusText(status)
	}

	if e.Code == "" && b.Code != nil {
		e.Code = fmt.Sprint(b.Code)
	}
	return e
}
