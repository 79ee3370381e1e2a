// Package mediatype is the home of github.com/zostay/go-mediatype, a library
// for reading the media type in a Content-type header and writing it back out
// the same way every time.
//
// The work is split by what you need to do with the header value:
//
// The mediatype package parses a single media type, such as
//
//	multipart/related; boundary=abc; Type="application/smil;charset=UTF-8"
//
// into its type, subtype, and parameters. The parser is forgiving about the
// sort of junk found in real headers (doubled semicolons, parameters with no
// value, names in odd case), but it refuses input that has no type and
// subtype or that leaves a quoted-string open. Parameters keep their order
// and their raw values, and the canonical form written by String() is stable
// for a given input.
//
// The charset package takes the charset parameter of a parsed media type and
// turns it into a character encoding from golang.org/x/text, for when you
// need to decode the body the header describes.
//
// The header package reads and writes media type fields on a net/http
// Header.
//
// Finally, the mtparse command in tools/mtparse is a small command-line
// front end for all of the above, which I use to check what the library
// makes of headers pulled out of logs.
package mediatype
