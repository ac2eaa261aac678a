package provider

import (
	"errors"
	"fmt"
)

// Error is the tagged failure every provider call returns. Code and Status
// carry the upstream classification so the CLI edge can map it onto the user
// facing taxonomy without string matching.
type Error struct {
	Provider string
	Code     string
	Status   int
	Message  string
	Cause    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Provider != "" && e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Provider, e.Message)
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Provider != "" {
		return fmt.Sprintf("%s: error", e.Provider)
	}
	return "error"
}

func (e *Error) Unwrap() error { return e.Cause }

func IsRateLimited(err error) bool {
	var e *Error
	return errors.As(err, &e) && (e.Status == 429 || e.Code == "rate_limited" || e.Code == "insufficient_quota")
}

func IsAuth(err error) bool {
	var e *Error
	return errors.As(err, &e) && (e.Status == 401 || e.Status == 403 || e.Code == "unauthorized" || e.Code == "invalid_api_key")
}
