// internal/domain/homework/errors.go
package homework

import "errors"

// Kind classifies recoverable failures of a poll cycle.
type Kind uint8

const (
	KindUnknown  Kind = iota
	KindResponse      // transport failure or non-200 answer from the API
	KindShape         // payload does not have the expected structure
	KindParse         // a homework record is missing fields or has an unknown status
)

func (k Kind) String() string {
	switch k {
	case KindResponse:
		return "response"
	case KindShape:
		return "shape"
	case KindParse:
		return "parse"
	default:
		return "unknown"
	}
}

// Error is the single error type produced by the homework API pipeline.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf reports the Kind of err, or KindUnknown if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func shapeError(msg string) error {
	return &Error{Kind: KindShape, Msg: msg}
}

func parseError(msg string) error {
	return &Error{Kind: KindParse, Msg: msg}
}

// NewResponseError wraps a failed API call.
func NewResponseError(msg string, cause error) error {
	return &Error{Kind: KindResponse, Msg: msg, Err: cause}
}

// NewShapeError reports a payload that could not be used.
func NewShapeError(msg string, cause error) error {
	return &Error{Kind: KindShape, Msg: msg, Err: cause}
}
