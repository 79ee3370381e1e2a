package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/zostay/go-mediatype/charset"
	"github.com/zostay/go-mediatype/mediatype"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <content-type> [file]",
	Short: "Decode a body into UTF-8 using the charset of its content type",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  RunDecode,
}

func init() {
	decodeCmd.Flags().StringVar(&cfg.DefaultCharset, "default-charset", DefaultConfig.DefaultCharset, "charset to assume when the content type has none")
}

func RunDecode(cmd *cobra.Command, args []string) error {
	mt, err := mediatype.ParseString(args[0])
	if err != nil {
		return fmt.Errorf("unable to parse %q: %w", args[0], err)
	}

	in := cmd.InOrStdin()
	if len(args) > 1 {
		f, err := os.Open(args[1])
		if err != nil {
			return fmt.Errorf("unable to open %q: %w", args[1], err)
		}
		defer func() { _ = f.Close() }()
		in = f
	}

	name, err := charset.Name(mt, cfg.DefaultCharset)
	if err != nil {
		return err
	}

	e, err := charset.Lookup(name)
	if err != nil {
		return err
	}
	logger.Debug("decoding body", "charset", name)

	r := e.NewDecoder().Reader(in)

	_, err = io.Copy(cmd.OutOrStdout(), r)
	if err != nil {
		return fmt.Errorf("unable to decode body: %w", err)
	}

	return nil
}
