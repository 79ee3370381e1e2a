package mediatype

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/zostay/go-mediatype/internal/scanner"
)

// ParseString parses a media type from a header field value.
func ParseString(v string) (*MediaType, error) {
	return Parse(strings.NewReader(v))
}

// ParseReader parses a media type from r. If r is not already an
// io.RuneScanner, it is wrapped in a bufio.Reader, which may read past the
// end of the media type.
func ParseReader(r io.Reader) (*MediaType, error) {
	rs, ok := r.(io.RuneScanner)
	if !ok {
		rs = bufio.NewReader(r)
	}
	return Parse(rs)
}

// Parse reads a media type from r:
//
//	type "/" subtype *( ";" parameter )
//
// Linear whitespace (space, tab, CR, LF) is allowed around every delimiter.
// Parsing stops at the end of input, or at the first character after a
// parameter that is not a semicolon. Anything after that is left unread,
// apart from the one character needed to find it.
//
// Empty parameter segments are ignored. A parameter name with no "=" after it
// is stored with an empty value, as is a parameter whose value is neither a
// token nor a quoted-string. Parameter names are stored in lowercase. If the
// same name appears more than once, the last value is kept in the position
// of the first.
//
// On failure, the returned error is a *ParseError and no MediaType is
// returned. Parse never closes r.
func Parse(r io.RuneScanner) (*MediaType, error) {
	p := &parser{s: scanner.New(r)}
	mt, err := p.parse()
	if err != nil {
		return nil, &ParseError{Offset: p.s.Offset(), Err: err}
	}
	return mt, nil
}

type parser struct {
	s *scanner.Scanner
}

// peek returns the next significant character, skipping any linear
// whitespace. The boolean is false at the end of input.
func (p *parser) peek() (rune, bool, error) {
	if err := p.s.SkipLWS(); err != nil {
		return 0, false, err
	}

	c, err := p.s.Peek()
	if errors.Is(err, io.EOF) {
		return 0, false, nil
	} else if err != nil {
		return 0, false, err
	}

	return c, true, nil
}

// consume reads the rune that peek just returned.
func (p *parser) consume() error {
	_, err := p.s.Next()
	return err
}

// token reads a token after skipping whitespace and replaces the generic
// token error with missing.
func (p *parser) token(missing error) (string, error) {
	if err := p.s.SkipLWS(); err != nil {
		return "", err
	}

	tok, err := p.s.ReadToken()
	if errors.Is(err, scanner.ErrInvalidToken) {
		return "", missing
	}

	return tok, err
}

func (p *parser) parse() (*MediaType, error) {
	typ, err := p.token(ErrMissingType)
	if err != nil {
		return nil, err
	}

	c, ok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if !ok || c != '/' {
		return nil, ErrMissingSeparator
	}
	if err := p.consume(); err != nil {
		return nil, err
	}

	subtype, err := p.token(ErrMissingSubtype)
	if err != nil {
		return nil, err
	}

	mt := newMediaType(typ, subtype)
	for {
		c, ok, err := p.peek()
		if err != nil {
			return nil, err
		}

		// anything other than ; ends the media type
		if !ok || c != ';' {
			return mt, nil
		}
		if err := p.consume(); err != nil {
			return nil, err
		}

		c, ok, err = p.peek()
		if err != nil {
			return nil, err
		}

		// empty segment
		if !ok || c == ';' {
			continue
		}

		name, value, err := p.parameter()
		if err != nil {
			return nil, err
		}

		mt.set(name, value)
	}
}

// parameter reads a single name, optionally followed by "=" and a value.
func (p *parser) parameter() (string, string, error) {
	name, err := p.token(ErrInvalidParameterName)
	if err != nil {
		return "", "", err
	}

	c, ok, err := p.peek()
	if err != nil {
		return "", "", err
	}

	// a bare word with no value, e.g., "text/html; UTF-8"
	if !ok || c != '=' {
		return name, "", nil
	}
	if err := p.consume(); err != nil {
		return "", "", err
	}

	c, ok, err = p.peek()
	if err != nil || !ok {
		return name, "", err
	}

	if c == '"' {
		value, err := p.s.ReadQuotedString()
		return name, value, err
	}

	value, err := p.s.ReadToken()
	if errors.Is(err, scanner.ErrInvalidToken) {
		return name, "", nil
	}

	return name, value, err
}
