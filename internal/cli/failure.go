package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/harisaicharan3/openaictl/internal/provider"
)

// FailureKind is the flat taxonomy every run-ending error is classified
// into. There is exactly one classification point and one reporting point;
// no command carries its own catch ladder.
type FailureKind int

const (
	ConfigurationFailure FailureKind = iota
	TransientServiceFailure
	AuthenticationFailure
	ServiceFailure
	LocalIOFailure
	UnexpectedFailure
)

func (k FailureKind) String() string {
	switch k {
	case ConfigurationFailure:
		return "configuration"
	case TransientServiceFailure:
		return "transient_service"
	case AuthenticationFailure:
		return "authentication"
	case ServiceFailure:
		return "service"
	case LocalIOFailure:
		return "local_io"
	default:
		return "unexpected"
	}
}

// usageError covers bad invocations: missing arguments and enum validation
// failures. It maps to ConfigurationFailure.
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func usageErrorf(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// configError marks startup configuration problems (missing credential).
type configError struct {
	err error
}

func (e *configError) Error() string { return e.err.Error() }
func (e *configError) Unwrap() error { return e.err }

// readInputFile loads a user-supplied input file. A missing or unreadable
// input path is a bad invocation, not a local I/O failure; local I/O covers
// the write side (saving audio, embeddings documents).
func readInputFile(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, usageErrorf("Input file '%s' not found!", path)
	}
	if err != nil {
		return nil, usageErrorf("cannot read input file '%s': %v", path, err)
	}
	return raw, nil
}

// Classify maps any error onto the failure taxonomy.
func Classify(err error) FailureKind {
	var ue *usageError
	if errors.As(err, &ue) {
		return ConfigurationFailure
	}
	var ce *configError
	if errors.As(err, &ce) {
		return ConfigurationFailure
	}

	var pe *provider.Error
	if errors.As(err, &pe) {
		switch {
		case provider.IsRateLimited(err):
			return TransientServiceFailure
		case provider.IsAuth(err):
			return AuthenticationFailure
		default:
			return ServiceFailure
		}
	}

	var pathErr *fs.PathError
	if errors.As(err, &pathErr) || errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
		return LocalIOFailure
	}

	return UnexpectedFailure
}

// Report writes the human-readable failure message with remediation
// guidance. Every run-ending error passes through here exactly once.
func Report(w io.Writer, err error) {
	switch Classify(err) {
	case ConfigurationFailure:
		fmt.Fprintf(w, "ERROR: %v\n", err)
	case TransientServiceFailure:
		fmt.Fprintln(w, "ERROR: Rate limit or quota exceeded!")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "This means your account is out of credits or over its usage quota.")
		fmt.Fprintln(w, "To fix this:")
		fmt.Fprintln(w, "  1. Go to: https://platform.openai.com/account/billing")
		fmt.Fprintln(w, "  2. Add a payment method or purchase credits")
		fmt.Fprintf(w, "\nFull error: %v\n", err)
	case AuthenticationFailure:
		fmt.Fprintln(w, "ERROR: Authentication failed!")
		fmt.Fprintln(w, "Your API key may be invalid or expired.")
		fmt.Fprintln(w, "Get a valid key from: https://platform.openai.com/api-keys")
		fmt.Fprintf(w, "\nFull error: %v\n", err)
	case ServiceFailure:
		fmt.Fprintf(w, "ERROR: OpenAI API error occurred: %v\n", err)
	case LocalIOFailure:
		fmt.Fprintf(w, "ERROR: %v\n", err)
		fmt.Fprintln(w, "Check file paths and permissions.")
	default:
		fmt.Fprintf(w, "ERROR: Unexpected error: %v\n", err)
	}
}
