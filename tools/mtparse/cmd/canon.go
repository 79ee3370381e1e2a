package cmd

import (
	"bufio"
	"fmt"
	"io"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/zostay/go-mediatype/internal/scanner"
	"github.com/zostay/go-mediatype/mediatype"
)

var canonCmd = &cobra.Command{
	Use:   "canon [value...]",
	Short: "Print the canonical form of media types",
	Long: `Print the canonical form of each media type given as an argument. With no
arguments, header values are read from stdin, one per line. Lines starting
with a space or tab continue the previous value.`,
	RunE: RunCanon,
}

func init() {
	canonCmd.Flags().BoolVar(&cfg.NoCharset, "no-charset", false, "leave the charset parameter out")
	canonCmd.Flags().BoolVar(&cfg.Diff, "diff", false, "show how each value differs from its canonical form")
}

func RunCanon(cmd *cobra.Command, args []string) error {
	values := args
	if len(values) == 0 {
		var err error
		values, err = readValues(cmd.InOrStdin())
		if err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	dmp := diffmatchpatch.New()

	failed := 0
	for _, v := range values {
		mt, err := mediatype.ParseString(v)
		if err != nil {
			logger.Warn("skipping value that is not a media type",
				"input", v,
				"error", err)
			failed++
			continue
		}

		canon := cfg.format(mt)
		logger.Debug("canonicalized media type",
			"input", v,
			"output", canon)

		if !cfg.Diff {
			_, _ = fmt.Fprintln(out, canon)
			continue
		}

		diffs := dmp.DiffMain(v, canon, false)
		_, _ = fmt.Fprintln(out, dmp.DiffPrettyText(diffs))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d values could not be parsed", failed, len(values))
	}

	return nil
}

func readValues(r io.Reader) ([]string, error) {
	s := bufio.NewScanner(r)
	s.Split(scanner.SplitHeaderValues)

	var values []string
	for s.Scan() {
		values = append(values, s.Text())
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("unable to read header values: %w", err)
	}

	return values, nil
}
