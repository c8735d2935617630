package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"quizterm/internal/config"
)

// runInit builds the handler for the init command.
func runInit(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file (default: ./.quizterm/config.yml)")
		yes := flags.Bool("yes", false, "Do not ask for confirmation")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if flags.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		targetPath := strings.TrimSpace(*configPath)
		if targetPath == "" {
			wd, err := os.Getwd()
			if err != nil {
				fmt.Fprintf(stderr, "Init failed: %v\n", err)
				return ExitError
			}
			targetPath = config.ConfigPath(wd)
		}
		targetPath, err := filepath.Abs(targetPath)
		if err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}
		configDir := filepath.Dir(targetPath)
		questionsPath := filepath.Join(config.ProjectRoot(targetPath), "questions.json")

		if !*yes {
			in := initInput
			if in == nil {
				in = os.Stdin
			}
			ok, err := confirm(in, stdout, fmt.Sprintf("Initialize quizterm config in %s?", configDir), true)
			if err != nil {
				fmt.Fprintf(stderr, "Init failed: %v\n", err)
				return ExitError
			}
			if !ok {
				fmt.Fprintln(stderr, "Init cancelled.")
				return ExitError
			}
		}

		if err := config.Scaffold(targetPath); err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Wrote %s\n", targetPath)
		fmt.Fprintf(stdout, "Wrote %s\n", questionsPath)
		fmt.Fprintf(stdout, "Run \"quizterm serve\" and then \"quizterm play\" to start.\n")
		return ExitOK
	}
}

// initInput allows tests to override stdin for init prompts.
var initInput io.Reader = os.Stdin
