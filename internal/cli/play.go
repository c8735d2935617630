package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"quizterm/internal/config"
	"quizterm/internal/quiz"
	"quizterm/internal/source"
	"quizterm/internal/ui/live"
	"quizterm/internal/ui/plain"
	"quizterm/internal/verbose"
)

// Test seams for the two presentation shells.
var (
	runLive  = live.Run
	runPlain = plain.Run
)

// playInput allows tests to override stdin for the plain shell.
var playInput io.Reader = os.Stdin

// runPlay builds the handler for the play command.
func runPlay(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Path to config file (default: search for .quizterm/config.yml)")
		url := fs.String("url", "", "Question source URL")
		uiMode := fs.String("ui", "", "UI mode: auto|live|plain")
		lastQuestion := fs.String("last-question", "", "Last question policy: dynamic|fixed")
		secondsPerQuestion := fs.Int("seconds-per-question", 0, "Timer budget per question")
		noColor := fs.Bool("no-color", false, "Disable ANSI colors")
		logPath := fs.String("log", "", "Write verbose logs to a file")
		verboseFlag := fs.Bool("verbose", false, "Verbose logging")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if fs.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		cfg, ok := loadConfig(*configPath, stderr)
		if !ok {
			return ExitError
		}
		fs.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "url":
				cfg.Source.URL = *url
			case "ui":
				cfg.UI.Mode = *uiMode
			case "last-question":
				cfg.Quiz.LastQuestion = *lastQuestion
			case "seconds-per-question":
				cfg.Quiz.SecondsPerQuestion = *secondsPerQuestion
			case "no-color":
				cfg.UI.NoColor = *noColor
			case "log":
				cfg.Log.Path = *logPath
			case "verbose":
				cfg.Log.Verbose = *verboseFlag
			}
		})
		config.Normalize(&cfg)
		if err := config.Validate(&cfg); err != nil {
			fmt.Fprintf(stderr, "Invalid options:\n%v\n", err)
			return ExitUsage
		}

		var logFile io.WriteCloser
		if cfg.Log.Path != "" {
			dir := filepath.Dir(cfg.Log.Path)
			if dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					fmt.Fprintf(stderr, "Failed to create log directory: %v\n", err)
					return ExitError
				}
			}
			file, err := os.OpenFile(cfg.Log.Path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
			if err != nil {
				fmt.Fprintf(stderr, "Failed to open log file: %v\n", err)
				return ExitError
			}
			logFile = file
			defer func() { _ = logFile.Close() }()
		}

		decision, err := resolveUIMode(cfg.UI.Mode, cfg.Log.Verbose && logFile == nil, playInput, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		var logWriter io.Writer = stderr
		if logFile != nil {
			logWriter = logFile
		}
		logger := verbose.New(logWriter, cfg.Log.Verbose, cfg.UI.NoColor)
		machine := quiz.NewMachine(
			quiz.WithRules(cfg.Rules()),
			quiz.WithObserver(logger),
		)

		client := source.NewClient(cfg.Source.URL)
		client.Timeout = time.Duration(cfg.Source.TimeoutSeconds) * time.Second
		var fetchErr error
		fetch := func(ctx context.Context) ([]quiz.Question, error) {
			questions, err := client.Fetch(ctx)
			if err != nil && ctx.Err() == nil {
				logger.Errorf("Fetching questions failed: %v", err)
			}
			fetchErr = err
			return questions, err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logger.Logf(verbose.StyleSession, "Fetching questions from %s", cfg.Source.URL)
		if decision.useLive {
			err = runLive(ctx, machine, fetch, playInput, stdout, live.Options{NoColor: cfg.UI.NoColor})
		} else {
			err = runPlain(ctx, machine, fetch, playInput, stdout, plain.Options{})
		}
		if err != nil {
			fmt.Fprintf(stderr, "Quiz stopped: %v\n", err)
			return ExitError
		}

		final := machine.Snapshot()
		if final.Status == quiz.StatusError {
			if fetchErr != nil {
				fmt.Fprintf(stderr, "Failed to load questions: %v\n", fetchErr)
			} else {
				fmt.Fprintln(stderr, "Failed to load questions")
			}
			return ExitError
		}
		if final.HighScore > 0 {
			fmt.Fprintf(stdout, "High score: %d points\n", final.HighScore)
		}
		return ExitOK
	}
}
