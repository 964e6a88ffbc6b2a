package types

import "github.com/pkg/errors"

// ErrorCode identifies a class of failure the codec can report. Every
// failure mode named in the ink dialect's parsing/canonicalization/emission
// pipeline has a distinct code so that callers can branch on it with
// errors.As instead of string-matching a message.
type ErrorCode string

// Structural errors.
const (
	ErrDuplicateContext  ErrorCode = "duplicate_context"
	ErrDuplicateBrush    ErrorCode = "duplicate_brush"
	ErrUnknownContext    ErrorCode = "unknown_context"
	ErrUnknownBrush      ErrorCode = "unknown_brush"
	ErrMissingChannel    ErrorCode = "missing_channel"
	ErrMissingBrush      ErrorCode = "missing_brush"
	ErrAmbiguousBrush    ErrorCode = "ambiguous_brush"
	ErrMalformedDocument ErrorCode = "malformed_document"
)

// Vocabulary errors.
const (
	ErrInvalidVocabulary ErrorCode = "invalid_vocabulary"
)

// Conversion errors.
const (
	ErrIncompatibleUnits ErrorCode = "incompatible_units"
	ErrInvalidNumber     ErrorCode = "invalid_number"
	ErrInvalidColor      ErrorCode = "invalid_color"
	ErrInvalidBoolean    ErrorCode = "invalid_boolean"
)

// Trace payload errors.
const (
	ErrUnexpectedChar    ErrorCode = "unexpected_char"
	ErrTruncatedSegment  ErrorCode = "truncated_segment"
	ErrUnexpectedTrailing ErrorCode = "unexpected_trailing"
	ErrMissingPrevious   ErrorCode = "missing_previous"
	ErrTypeMismatch      ErrorCode = "type_mismatch"
)

// Underlying errors.
const (
	ErrXML ErrorCode = "xml_error"
)

// Error is the codec's single tagged error type. Code identifies the
// failure class; Err, when set, is the lower-level cause (e.g. the
// encoding/xml error an ErrXML wraps).
type Error struct {
	Code ErrorCode
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return "inkml: " + e.Msg + ": " + e.Err.Error()
	}
	return "inkml: " + e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target has the same ErrorCode, so callers can write
// errors.Is(err, types.NewError(types.ErrDuplicateContext, "")).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewError builds an Error with a formatted message, in the style of the
// teacher's errors.Errorf call sites.
func NewError(code ErrorCode, format string, args ...interface{}) *Error {
	return &Error{Code: code, Msg: errors.Errorf(format, args...).Error()}
}

// WrapError builds an Error that wraps a lower-level cause (used for
// ErrXML, where the underlying tokenizer error is worth preserving).
func WrapError(code ErrorCode, cause error, format string, args ...interface{}) *Error {
	return &Error{Code: code, Msg: errors.Errorf(format, args...).Error(), Err: cause}
}

// CodeOf extracts the ErrorCode from err if it (or something it wraps) is
// an *Error, and reports whether one was found.
func CodeOf(err error) (ErrorCode, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Code, true
	}
	return "", false
}
