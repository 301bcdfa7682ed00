package cusp

import "fmt"

// ErrorKind classifies every failure the client can surface: invalid or missing
// credentials, a failed read, or a failed write. Controllers convert all three
// into user-visible notifications and nothing else.
type ErrorKind string

const (
	KindAuth     ErrorKind = "auth"
	KindFetch    ErrorKind = "fetch"
	KindMutation ErrorKind = "mutation"
)

type APIError struct {
	Kind    ErrorKind
	Status  int
	Message string
}

func (e APIError) Error() string {
	return e.Message
}

func ErrAuth(msg string) error {
	return APIError{Kind: KindAuth, Status: 401, Message: msg}
}

func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// KindOf reports the taxonomy class of err, defaulting transport-level failures
// on reads and writes to the kind the caller passed as fallback.
func KindOf(err error, fallback ErrorKind) ErrorKind {
	if apiErr, ok := err.(APIError); ok {
		return apiErr.Kind
	}
	return fallback
}
