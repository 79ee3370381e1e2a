package scanner_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-mediatype/internal/scanner"
)

func TestIsToken(t *testing.T) {
	t.Parallel()

	for _, c := range "abcXYZ019!#$%&'*+-.^_`|~" {
		assert.Truef(t, scanner.IsToken(c), "%q is a token character", c)
	}

	for _, c := range "()<>@,;:\\\"/[]?={} \t\r\n\x00\x7fé" {
		assert.Falsef(t, scanner.IsToken(c), "%q is not a token character", c)
	}

	assert.True(t, scanner.IsTokenString("UTF-8"))
	assert.False(t, scanner.IsTokenString(""))
	assert.False(t, scanner.IsTokenString("text/html"))
}

func TestScanner_SkipLWS(t *testing.T) {
	t.Parallel()

	s := scanner.New(strings.NewReader(" \t\r\n x"))
	require.NoError(t, s.SkipLWS())
	assert.Equal(t, 5, s.Offset())

	c, err := s.Peek()
	require.NoError(t, err)
	assert.Equal(t, 'x', c)

	s = scanner.New(strings.NewReader("  "))
	require.NoError(t, s.SkipLWS())
	_, err = s.Peek()
	assert.ErrorIs(t, err, io.EOF)

	s = scanner.New(strings.NewReader(""))
	assert.NoError(t, s.SkipLWS())
}

func TestScanner_ReadToken(t *testing.T) {
	t.Parallel()

	s := scanner.New(strings.NewReader("text/html"))
	tok, err := s.ReadToken()
	require.NoError(t, err)
	assert.Equal(t, "text", tok)

	c, err := s.Next()
	require.NoError(t, err)
	assert.Equal(t, '/', c)

	tok, err = s.ReadToken()
	require.NoError(t, err)
	assert.Equal(t, "html", tok)

	_, err = s.ReadToken()
	assert.ErrorIs(t, err, scanner.ErrInvalidToken)

	s = scanner.New(strings.NewReader(";charset"))
	_, err = s.ReadToken()
	assert.ErrorIs(t, err, scanner.ErrInvalidToken)
	assert.Equal(t, 0, s.Offset())
}

func TestScanner_ReadQuotedString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
		rest  string
	}{
		{"simple", `"y" ;`, `"y"`, " ;"},
		{"empty", `""`, `""`, ""},
		{"escaped quote", `"w\"w";a=b`, `"w\"w"`, ";a=b"},
		{"delimiters", `"foo'bar,a=b;x=y"`, `"foo'bar,a=b;x=y"`, ""},
		{"escaped backslash", `"a\\"b`, `"a\\"`, "b"},
		{"whitespace kept", "\"UTF-8 \t\"", "\"UTF-8 \t\"", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := strings.NewReader(tt.input)
			s := scanner.New(r)
			got, err := s.ReadQuotedString()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			rest, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, tt.rest, string(rest))
		})
	}
}

func TestScanner_ReadQuotedStringErrors(t *testing.T) {
	t.Parallel()

	_, err := scanner.New(strings.NewReader(`"abc`)).ReadQuotedString()
	assert.ErrorIs(t, err, scanner.ErrUnterminatedQuote)

	_, err = scanner.New(strings.NewReader(`"abc\"`)).ReadQuotedString()
	assert.ErrorIs(t, err, scanner.ErrUnterminatedQuote)

	_, err = scanner.New(strings.NewReader(`"abc\`)).ReadQuotedString()
	assert.ErrorIs(t, err, scanner.ErrUnterminatedQuote)

	s := scanner.New(strings.NewReader("abc"))
	_, err = s.ReadQuotedString()
	assert.ErrorIs(t, err, scanner.ErrNotQuoted)
	assert.Equal(t, 0, s.Offset())

	_, err = scanner.New(strings.NewReader("")).ReadQuotedString()
	assert.ErrorIs(t, err, scanner.ErrNotQuoted)
}

type brokenReader struct {
	*strings.Reader
	failAt int
}

var errBroken = errors.New("broken")

func (r *brokenReader) ReadRune() (rune, int, error) {
	if r.Size()-int64(r.Len()) >= int64(r.failAt) {
		return 0, 0, errBroken
	}
	return r.Reader.ReadRune()
}

func TestScanner_ReadError(t *testing.T) {
	t.Parallel()

	s := scanner.New(&brokenReader{strings.NewReader("abc  def"), 4})
	tok, err := s.ReadToken()
	require.NoError(t, err)
	assert.Equal(t, "abc", tok)

	assert.ErrorIs(t, s.SkipLWS(), errBroken)

	s = scanner.New(&brokenReader{strings.NewReader(`"abc"`), 2})
	_, err = s.ReadQuotedString()
	assert.ErrorIs(t, err, errBroken)
}
