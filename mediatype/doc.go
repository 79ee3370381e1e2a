// Package mediatype parses the media type found in a Content-type header
// (RFC 2616 section 3.7 as refined by RFC 9110) into a MediaType and writes
// it back out in a canonical form.
//
// Parsing is lenient about the things real-world headers get wrong: empty
// parameter segments, a trailing semicolon, parameter names in mixed case,
// and parameters with no value at all. A parameter without a value is kept so
// it can be looked up, but it is left out when the MediaType is written back
// out. Structural problems, such as a missing type or subtype or an
// unterminated quoted-string, fail the whole parse with a *ParseError.
//
// Parameter values are stored exactly as they were written, quotes and
// escapes included:
//
//	mt, _ := mediatype.ParseString(`text/plain; Charset="utf-8"; format=flowed`)
//	v, _ := mt.Parameter("charset") // `"utf-8"`
//	cs, _ := mt.Charset()           // `utf-8`
//	s := mt.String()                // `text/plain;charset="utf-8";format=flowed`
//
// A MediaType is immutable and safe for concurrent use once it has been
// returned.
package mediatype
