package charset_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/zostay/go-mediatype/charset"
	"github.com/zostay/go-mediatype/mediatype"
)

func mustParse(t *testing.T, v string) *mediatype.MediaType {
	t.Helper()
	mt, err := mediatype.ParseString(v)
	require.NoError(t, err)
	return mt
}

func TestLookup(t *testing.T) {
	t.Parallel()

	e, err := charset.Lookup("ISO-8859-1")
	require.NoError(t, err)
	assert.Equal(t, charmap.ISO8859_1, e)

	e, err = charset.Lookup("windows-1252")
	require.NoError(t, err)
	assert.Equal(t, charmap.Windows1252, e)

	_, err = charset.Lookup("x-no-such-charset")
	var uerr *charset.UnsupportedCharsetError
	require.True(t, errors.As(err, &uerr))
	assert.Equal(t, "x-no-such-charset", uerr.Name)
	assert.Contains(t, err.Error(), "x-no-such-charset")
}

func TestName(t *testing.T) {
	t.Parallel()

	name, err := charset.Name(mustParse(t, `text/plain; charset="latin1"`), "utf-8")
	require.NoError(t, err)
	assert.Equal(t, "latin1", name)

	name, err = charset.Name(mustParse(t, "text/plain"), "utf-8")
	require.NoError(t, err)
	assert.Equal(t, "utf-8", name)

	name, err = charset.Name(mustParse(t, "text/plain; charset"), "utf-8")
	require.NoError(t, err)
	assert.Equal(t, "utf-8", name)

	_, err = charset.Name(mustParse(t, "text/plain"), "")
	assert.ErrorIs(t, err, charset.ErrNoCharset)
}

func TestDecode(t *testing.T) {
	t.Parallel()

	latin1, err := charmap.ISO8859_1.NewEncoder().String("café")
	require.NoError(t, err)

	s, err := charset.Decode(mustParse(t, "text/plain; Charset=\"ISO-8859-1\""), "", []byte(latin1))
	require.NoError(t, err)
	assert.Equal(t, "café", s)

	s, err = charset.Decode(mustParse(t, "text/plain"), "UTF-8", []byte("café"))
	require.NoError(t, err)
	assert.Equal(t, "café", s)

	_, err = charset.Decode(mustParse(t, "text/plain; charset=bogus-42"), "", []byte("x"))
	var uerr *charset.UnsupportedCharsetError
	assert.True(t, errors.As(err, &uerr))
}

func TestEncode(t *testing.T) {
	t.Parallel()

	b, err := charset.Encode(mustParse(t, "text/plain; charset=windows-1252"), "", "€5")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x80, '5'}, b)

	_, err = charset.Encode(mustParse(t, "text/plain"), "", "x")
	assert.ErrorIs(t, err, charset.ErrNoCharset)
}

func TestNewReader(t *testing.T) {
	t.Parallel()

	r, err := charset.NewReader(mustParse(t, "text/plain; charset=windows-1252"), "",
		strings.NewReader("\x80 \xe9t\xe9"))
	require.NoError(t, err)

	b, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "€ été", string(b))
}
