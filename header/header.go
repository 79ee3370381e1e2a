// Package header reads and writes media type header fields on a net/http
// Header.
package header

import (
	"errors"
	"net/http"

	"github.com/zostay/go-mediatype/mediatype"
)

// ContentType is the canonical name of the Content-Type header field.
const ContentType = "Content-Type"

// Errors returned by the header functions.
var (
	// ErrNoSuchField is returned when the named field is not set.
	ErrNoSuchField = errors.New("no such header field")

	// ErrManyFields is returned when the named field is set more than once.
	ErrManyFields = errors.New("many header fields found")
)

// GetMediaType parses the named header field as a media type.
//
// It returns nil and ErrNoSuchField if the field is not set. If the field is
// set more than once, it parses the first one and returns it with
// ErrManyFields. If the field cannot be parsed, the *mediatype.ParseError is
// returned.
func GetMediaType(h http.Header, name string) (*mediatype.MediaType, error) {
	vs := h.Values(name)
	if len(vs) == 0 {
		return nil, ErrNoSuchField
	}

	mt, err := mediatype.ParseString(vs[0])
	if err != nil {
		return nil, err
	}

	if len(vs) > 1 {
		return mt, ErrManyFields
	}

	return mt, nil
}

// GetContentType parses the Content-Type header field. See GetMediaType.
func GetContentType(h http.Header) (*mediatype.MediaType, error) {
	return GetMediaType(h, ContentType)
}

// SetMediaType replaces the named header field with the canonical form of
// mt.
func SetMediaType(h http.Header, name string, mt *mediatype.MediaType) {
	h.Set(name, mt.String())
}

// SetContentType replaces the Content-Type header field with the canonical
// form of mt.
func SetContentType(h http.Header, mt *mediatype.MediaType) {
	SetMediaType(h, ContentType, mt)
}
