package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zostay/go-mediatype/mediatype"
)

var parseCmd = &cobra.Command{
	Use:   "parse <value>...",
	Short: "Show the parts of one or more media types",
	Args:  cobra.MinimumNArgs(1),
	RunE:  RunParse,
}

func RunParse(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for i, v := range args {
		mt, err := mediatype.ParseString(v)
		if err != nil {
			return fmt.Errorf("unable to parse %q: %w", v, err)
		}

		logger.Debug("parsed media type",
			"input", v,
			"parameters", mt.ParameterCount())

		if i > 0 {
			_, _ = fmt.Fprintln(out)
		}

		_, _ = fmt.Fprintf(out, "type: %s\n", mt.Type())
		_, _ = fmt.Fprintf(out, "subtype: %s\n", mt.Subtype())
		for _, p := range mt.Parameters() {
			_, _ = fmt.Fprintf(out, "parameter: %s=%s\n", p.Name, p.Value)
		}

		if cs, ok := mt.Charset(); ok {
			_, _ = fmt.Fprintf(out, "charset: %s\n", cs)
		}

		_, _ = fmt.Fprintf(out, "string: %s\n", mt)
		_, _ = fmt.Fprintf(out, "no-charset: %s\n", mt.StringNoCharset())
	}

	return nil
}
