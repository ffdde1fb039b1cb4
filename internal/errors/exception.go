package errors

import (
	"errors"
)

// Kind classifies a failure for the user-facing layer.
type Kind int

const (
	KindUnknown Kind = iota
	KindParse
	KindBounds
	KindPersistence
)

func (k Kind) String() string {
	switch k {
	case KindParse:
		return "parse"
	case KindBounds:
		return "bounds"
	case KindPersistence:
		return "persistence"
	default:
		return "unknown"
	}
}

type Exception struct {
	Message string
	Kind    Kind
	Err     error
}

func New(kind Kind, message string) *Exception {
	return &Exception{Message: message, Kind: kind}
}

func Wrap(kind Kind, message string, err error) *Exception {
	return &Exception{Message: message, Kind: kind, Err: err}
}

func (e *Exception) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Exception) Unwrap() error {
	return e.Err
}

func KindOf(err error) Kind {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

// MessageOf returns the message of the outermost Exception in err's chain,
// falling back to err.Error().
func MessageOf(err error) string {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
