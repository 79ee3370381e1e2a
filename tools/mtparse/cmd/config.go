package cmd

import "github.com/zostay/go-mediatype/mediatype"

// Config holds the settings shared by the mtparse commands. It is filled in
// from the command-line flags.
type Config struct {
	// Verbose turns on debug logging to stderr.
	Verbose bool

	// NoCharset leaves the charset parameter out of canonical output.
	NoCharset bool

	// Diff shows the difference between each input and its canonical form
	// rather than the canonical form itself.
	Diff bool

	// DefaultCharset is the charset assumed by decode when the media type
	// does not name one.
	DefaultCharset string
}

// DefaultConfig is the configuration before any flags are applied.
var DefaultConfig = Config{
	DefaultCharset: "us-ascii",
}

var cfg = DefaultConfig

// format returns the canonical output for a media type according to the
// configuration.
func (c *Config) format(mt *mediatype.MediaType) string {
	if c.NoCharset {
		return mt.StringNoCharset()
	}
	return mt.String()
}
