package scanner

import (
	"bufio"
	"bytes"
)

// The bufio.Scanner stops as soon as the underlying reader reports EOF and the
// split function returns no token, even if it advanced and there is still
// data left to split. Skipping blank lines near the end of input would lose
// every value after them. MakeSplitFuncExitByAdvance keeps calling the
// wrapped split function until it produces a token, asks for more data, or
// consumes everything.

// MakeSplitFuncExitByAdvance wraps split so that advancing without returning a
// token does not end the scan early.
func MakeSplitFuncExitByAdvance(split bufio.SplitFunc) bufio.SplitFunc {
	return func(data []byte, atEOF bool) (int, []byte, error) {
		totalAdvance := 0
		for {
			advance, token, err := split(data, atEOF)

			// advance == 0 means the split func wants more input; returning
			// in that case also keeps us from spinning at EOF.
			if token != nil || advance == 0 || len(data)-advance <= 0 || err != nil {
				return totalAdvance + advance, token, err
			}

			data = data[advance:]
			totalAdvance += advance
		}
	}
}

// SplitHeaderValues is a bufio.SplitFunc that returns one header field value
// per token. A line starting with a space or tab continues the previous value
// and the fold is kept in the token, since folding whitespace is linear
// whitespace to the parser. Blank lines are skipped. The trailing line break
// is not part of the token.
var SplitHeaderValues = MakeSplitFuncExitByAdvance(splitHeaderValue)

func splitHeaderValue(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	end := -1
	for i, c := range data {
		if c != '\n' {
			continue
		}

		// need to see the next byte to know whether this is a fold
		if i+1 == len(data) {
			if !atEOF {
				return 0, nil, nil
			}
			end = i + 1
			break
		}

		if next := data[i+1]; next != ' ' && next != '\t' {
			end = i + 1
			break
		}
	}

	if end < 0 {
		if !atEOF {
			return 0, nil, nil
		}
		end = len(data)
	}

	line := bytes.TrimRight(data[:end], "\r\n")
	if len(bytes.TrimSpace(line)) == 0 {
		return end, nil, nil
	}

	return end, line, nil
}
