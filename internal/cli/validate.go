package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"quizterm/internal/config"
	"quizterm/internal/question"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Also validate this config file")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if flags.NArg() != 1 {
			fmt.Fprintf(stderr, "expected one questions file, got %d arguments\n", flags.NArg())
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		if path := strings.TrimSpace(*configPath); path != "" {
			if _, err := config.Load(path); err != nil {
				fmt.Fprintf(stderr, "Validation failed:\n%s\n", err.Error())
				return ExitError
			}
			fmt.Fprintln(stdout, "Config OK")
		}

		set, err := question.LoadFile(flags.Arg(0))
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%s\n", err.Error())
			return ExitError
		}
		fmt.Fprintf(stdout, "Questions OK (%d questions, %d points)\n", len(set.Questions), set.TotalPoints())
		return ExitOK
	}
}
