package mediatype

import (
	"strings"

	"github.com/zostay/go-mediatype/internal/scanner"
)

func (mt *MediaType) format(skipCharset bool) string {
	var b strings.Builder
	b.WriteString(mt.typ)
	b.WriteByte('/')
	b.WriteString(mt.subtype)

	for _, p := range mt.params {
		// a parameter without a value came from malformed input
		if p.Value == "" {
			continue
		}

		if skipCharset && p.Name == Charset {
			continue
		}

		b.WriteByte(';')
		b.WriteString(p.Name)
		b.WriteByte('=')
		b.WriteString(p.Value)
	}

	return b.String()
}

// String returns the canonical form of the media type: type and subtype
// followed by each parameter with a non-empty value, as ";name=value" with no
// whitespace.
func (mt *MediaType) String() string {
	return mt.format(false)
}

// StringNoCharset works like String, but leaves out the charset parameter.
func (mt *MediaType) StringNoCharset() string {
	return mt.format(true)
}

// Bytes returns String as a slice of bytes.
func (mt *MediaType) Bytes() []byte {
	return []byte(mt.String())
}

// Unquote returns the content of a quoted-string with the quotes removed and
// each backslash escape replaced by the character it escapes. Anything that
// is not a quoted-string is returned unchanged.
func Unquote(s string) string {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return s
	}

	var b strings.Builder
	escaped := false
	for _, c := range s[1 : len(s)-1] {
		if !escaped && c == '\\' {
			escaped = true
			continue
		}
		escaped = false
		b.WriteRune(c)
	}

	return b.String()
}

// Quote returns s unchanged if it is a token. Otherwise, it returns s as a
// quoted-string, escaping double quotes and backslashes.
func Quote(s string) string {
	if scanner.IsTokenString(s) {
		return s
	}

	var b strings.Builder
	b.WriteByte('"')
	for _, c := range s {
		if c == '"' || c == '\\' {
			b.WriteByte('\\')
		}
		b.WriteRune(c)
	}
	b.WriteByte('"')

	return b.String()
}
