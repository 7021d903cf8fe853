package client

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindTimeout
	KindTransport
	KindHTTPStatus
	KindSchema
)

func (k ErrorKind) String() string {
	switch k {
	case KindTimeout:
		return "timeout"
	case KindTransport:
		return "transport"
	case KindHTTPStatus:
		return "http_status"
	case KindSchema:
		return "schema"
	default:
		return "unknown"
	}
}

// WeatherError is the single failure type returned by every adapter. Error()
// yields the message shown to the user.
type WeatherError struct {
	Kind       ErrorKind
	Source     string
	Op         string
	Message    string
	StatusCode int
	Err        error
}

func (e *WeatherError) Error() string {
	if e.Op == "" {
		return e.Message
	}
	return e.Op + ": " + e.Message
}

func (e *WeatherError) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first WeatherError in err's chain, or
// KindUnknown when there is none.
func KindOf(err error) ErrorKind {
	var we *WeatherError
	if errors.As(err, &we) {
		return we.Kind
	}
	return KindUnknown
}

func newError(kind ErrorKind, source string, cause error, format string, args ...interface{}) *WeatherError {
	return &WeatherError{
		Kind:    kind,
		Source:  source,
		Message: fmt.Sprintf(format, args...),
		Err:     cause,
	}
}

// withOp attaches the user-facing operation prefix to err. Errors that are not
// a WeatherError are reported as KindUnknown.
func withOp(err error, source, op string) *WeatherError {
	var we *WeatherError
	if errors.As(err, &we) {
		out := *we
		out.Op = op
		if out.Source == "" {
			out.Source = source
		}
		return &out
	}
	return &WeatherError{
		Kind:    KindUnknown,
		Source:  source,
		Op:      op,
		Message: err.Error(),
		Err:     err,
	}
}
