// Package charset connects the charset parameter of a media type to the
// character encodings provided by golang.org/x/text. The mediatype package
// never validates charset names; this package is where a name is looked up
// and used.
package charset

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/zostay/go-mediatype/mediatype"
)

// ErrNoCharset is returned when the media type has no charset and no
// fallback was given.
var ErrNoCharset = errors.New("media type has no charset")

// UnsupportedCharsetError is returned when a charset name is not one that
// golang.org/x/text can encode or decode.
type UnsupportedCharsetError struct {
	Name string // the charset name as it was looked up
	Err  error  // the lookup error, if any
}

// Error returns the error message.
func (err *UnsupportedCharsetError) Error() string {
	if err.Err != nil {
		return fmt.Sprintf("unsupported charset %q: %v", err.Name, err.Err)
	}
	return fmt.Sprintf("unsupported charset %q", err.Name)
}

// Unwrap returns the lookup error.
func (err *UnsupportedCharsetError) Unwrap() error {
	return err.Err
}

// Lookup returns the encoding for the IANA charset name, matched without
// regard to case.
func Lookup(name string) (encoding.Encoding, error) {
	e, err := ianaindex.MIME.Encoding(name)
	if err != nil {
		return nil, &UnsupportedCharsetError{Name: name, Err: err}
	}

	// registered with IANA, but x/text has no implementation
	if e == nil {
		return nil, &UnsupportedCharsetError{Name: name}
	}

	return e, nil
}

// Name returns the charset named by mt, or fallback if mt has no charset
// parameter or its value is empty. It returns ErrNoCharset when both are
// empty.
func Name(mt *mediatype.MediaType, fallback string) (string, error) {
	if cs, ok := mt.Charset(); ok && cs != "" {
		return cs, nil
	}

	if fallback == "" {
		return "", ErrNoCharset
	}

	return fallback, nil
}

// ForMediaType returns the encoding for the charset of mt. See Name for the
// use of fallback.
func ForMediaType(mt *mediatype.MediaType, fallback string) (encoding.Encoding, error) {
	name, err := Name(mt, fallback)
	if err != nil {
		return nil, err
	}

	return Lookup(name)
}

// NewReader returns a reader that decodes r from the charset of mt into
// UTF-8.
func NewReader(mt *mediatype.MediaType, fallback string, r io.Reader) (io.Reader, error) {
	e, err := ForMediaType(mt, fallback)
	if err != nil {
		return nil, err
	}

	return e.NewDecoder().Reader(r), nil
}

// Decode transforms b from the charset of mt into a UTF-8 string.
func Decode(mt *mediatype.MediaType, fallback string, b []byte) (string, error) {
	e, err := ForMediaType(mt, fallback)
	if err != nil {
		return "", err
	}

	db, err := e.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}

	return string(db), nil
}

// Encode transforms s into the charset of mt.
func Encode(mt *mediatype.MediaType, fallback string, s string) ([]byte, error) {
	e, err := ForMediaType(mt, fallback)
	if err != nil {
		return nil, err
	}

	es, err := e.NewEncoder().String(s)
	if err != nil {
		return nil, err
	}

	return []byte(es), nil
}
