package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// maxPromptAttempts bounds how often an unrecognised answer is re-asked.
const maxPromptAttempts = 3

// errNoAnswer reports that input ended before a usable answer arrived.
var errNoAnswer = errors.New("no answer before end of input")

// confirm asks a yes/no question on out and reads the answer from in. An
// empty line takes the default; end of input without any answer does too,
// so `quizterm init < /dev/null` behaves like pressing enter.
func confirm(in io.Reader, out io.Writer, label string, defaultYes bool) (bool, error) {
	suffix := "y/N"
	if defaultYes {
		suffix = "Y/n"
	}
	scanner := bufio.NewScanner(in)
	for attempt := 1; ; attempt++ {
		fmt.Fprintf(out, "%s [%s]: ", label, suffix)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			if err := scanner.Err(); err != nil {
				return false, fmt.Errorf("read answer: %w", err)
			}
			if attempt == 1 {
				return defaultYes, nil
			}
			return false, errNoAnswer
		}
		switch answer := strings.ToLower(strings.TrimSpace(scanner.Text())); answer {
		case "":
			return defaultYes, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			if attempt == maxPromptAttempts {
				return false, fmt.Errorf("invalid answer %q", answer)
			}
			fmt.Fprintln(out, "Please answer yes or no.")
		}
	}
}
