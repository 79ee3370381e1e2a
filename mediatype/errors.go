package mediatype

import (
	"errors"
	"fmt"

	"github.com/zostay/go-mediatype/internal/scanner"
)

// Errors that may be found inside a ParseError.
var (
	// ErrMissingType indicates the value does not start with a type token.
	ErrMissingType = errors.New("missing type")

	// ErrMissingSeparator indicates the type is not followed by a slash.
	ErrMissingSeparator = errors.New("missing / between type and subtype")

	// ErrMissingSubtype indicates there is no subtype token after the slash.
	ErrMissingSubtype = errors.New("missing subtype")

	// ErrInvalidParameterName indicates a parameter segment that does not
	// start with a token, such as "; =value".
	ErrInvalidParameterName = errors.New("invalid parameter name")

	// ErrUnterminatedQuote indicates a quoted-string parameter value that
	// runs to the end of the input.
	ErrUnterminatedQuote = scanner.ErrUnterminatedQuote

	// ErrInvalidValue indicates a parameter value given to New or Set that is
	// neither a token nor a single quoted-string.
	ErrInvalidValue = errors.New("invalid parameter value")

	// ErrInvalidToken indicates a value that must be a token is not one. It
	// is returned by New and Modify.
	ErrInvalidToken = scanner.ErrInvalidToken
)

// ParseError is returned by Parse and its variants when the input cannot be
// read as a media type. Err is one of the errors above, or the error returned
// by the underlying reader.
type ParseError struct {
	Offset int   // the number of characters consumed before the failure
	Err    error // the reason parsing failed
}

// Error returns the error message.
func (err *ParseError) Error() string {
	return fmt.Sprintf("media type: %v at offset %d", err.Err, err.Offset)
}

// Unwrap returns the underlying error.
func (err *ParseError) Unwrap() error {
	return err.Err
}
