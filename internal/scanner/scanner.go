// Package scanner provides the lexical primitives used to read parameterized
// header values: linear whitespace, tokens, and quoted-strings.
package scanner

import (
	"errors"
	"io"
	"strings"

	"golang.org/x/net/http/httpguts"
)

var (
	// ErrInvalidToken is returned by ReadToken when no token character is
	// found where a token is required.
	ErrInvalidToken = errors.New("invalid token")

	// ErrUnterminatedQuote is returned by ReadQuotedString when the input
	// ends before the closing double quote.
	ErrUnterminatedQuote = errors.New("unterminated quoted-string")

	// ErrNotQuoted is returned by ReadQuotedString when the next character
	// is not a double quote.
	ErrNotQuoted = errors.New("quoted-string must start with a double quote")
)

// IsLWS reports whether c is linear whitespace: space, tab, CR, or LF.
func IsLWS(c rune) bool {
	switch c {
	case ' ', '\t', '\r', '\n':
		return true
	}
	return false
}

// IsToken reports whether c may appear in a token. This excludes control
// characters, whitespace, non-ASCII characters and the separators
// ()<>@,;:\"/[]?={}.
func IsToken(c rune) bool {
	return httpguts.IsTokenRune(c)
}

// IsTokenString reports whether s is a non-empty token.
func IsTokenString(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if !IsToken(c) {
			return false
		}
	}
	return true
}

// Scanner reads tokens from a character stream that allows a single rune of
// pushback. It does not own the stream and never closes it.
type Scanner struct {
	r   io.RuneScanner
	off int
}

// New returns a Scanner reading from r.
func New(r io.RuneScanner) *Scanner {
	return &Scanner{r: r}
}

// Offset returns the number of runes consumed so far.
func (s *Scanner) Offset() int {
	return s.off
}

// Next consumes and returns the next rune. At the end of input it returns
// io.EOF.
func (s *Scanner) Next() (rune, error) {
	c, _, err := s.r.ReadRune()
	if err != nil {
		return 0, err
	}
	s.off++
	return c, nil
}

// Pushback returns the rune most recently read by Next to the stream. Only
// one rune may be pushed back between calls to Next.
func (s *Scanner) Pushback() error {
	if err := s.r.UnreadRune(); err != nil {
		return err
	}
	s.off--
	return nil
}

// Peek returns the next rune without consuming it.
func (s *Scanner) Peek() (rune, error) {
	c, err := s.Next()
	if err != nil {
		return 0, err
	}
	return c, s.Pushback()
}

// SkipLWS consumes any run of linear whitespace. Reaching the end of input is
// not an error.
func (s *Scanner) SkipLWS() error {
	for {
		c, err := s.Next()
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}

		if !IsLWS(c) {
			return s.Pushback()
		}
	}
}

// ReadToken consumes one or more token characters and returns them. The rune
// that ends the token is left on the stream. It returns ErrInvalidToken if the
// token would be empty.
func (s *Scanner) ReadToken() (string, error) {
	var b strings.Builder
	for {
		c, err := s.Next()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return "", err
		}

		if !IsToken(c) {
			if err := s.Pushback(); err != nil {
				return "", err
			}
			break
		}

		b.WriteRune(c)
	}

	if b.Len() == 0 {
		return "", ErrInvalidToken
	}

	return b.String(), nil
}

// ReadQuotedString consumes a quoted-string and returns it exactly as
// written, including the enclosing quotes and any backslash escapes.
// Delimiters inside the quotes are part of the value.
func (s *Scanner) ReadQuotedString() (string, error) {
	c, err := s.Next()
	if errors.Is(err, io.EOF) {
		return "", ErrNotQuoted
	} else if err != nil {
		return "", err
	}

	if c != '"' {
		if err := s.Pushback(); err != nil {
			return "", err
		}
		return "", ErrNotQuoted
	}

	var b strings.Builder
	b.WriteRune(c)

	escaped := false
	for {
		c, err := s.Next()
		if errors.Is(err, io.EOF) {
			return "", ErrUnterminatedQuote
		} else if err != nil {
			return "", err
		}

		b.WriteRune(c)
		switch {
		case escaped:
			escaped = false
		case c == '\\':
			escaped = true
		case c == '"':
			return b.String(), nil
		}
	}
}
