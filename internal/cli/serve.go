package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"quizterm/internal/questionserver"
)

// serveQuestions is a test seam for running the question server.
var serveQuestions = questionserver.Serve

// runServe builds the handler for the serve command.
func runServe(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Path to config file (default: search for .quizterm/config.yml)")
		addr := fs.String("addr", "", "Address to listen on (default 127.0.0.1:8000)")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if fs.NArg() > 1 {
			fmt.Fprintln(stderr, "Too many arguments")
			return ExitUsage
		}

		cfg, ok := loadConfig(*configPath, stderr)
		if !ok {
			return ExitError
		}
		questionsPath := fs.Arg(0)
		if questionsPath == "" {
			questionsPath = cfg.Server.QuestionsFile
		}
		if questionsPath == "" {
			fmt.Fprintln(stderr, "Missing <questions.json|yml>")
			return ExitUsage
		}
		listen := cfg.Server.Addr
		if *addr != "" {
			listen = *addr
		}
		if _, err := os.Stat(questionsPath); err != nil {
			fmt.Fprintf(stderr, "Questions file not found: %v\n", err)
			return ExitError
		}

		serveCfg := questionserver.Config{
			Addr:          listen,
			QuestionsPath: questionsPath,
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		fmt.Fprintf(stdout, "Serving %s at http://%s/questions\n", questionsPath, serveCfg.Addr)
		if err := serveQuestions(ctx, serveCfg); err != nil {
			fmt.Fprintf(stderr, "Server error: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
