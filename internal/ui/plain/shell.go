// Package plain runs a quiz session over line-oriented input and output,
// for pipes and terminals without the live UI.
package plain

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"quizterm/internal/quiz"
)

// FetchFunc loads the question set once.
type FetchFunc func(ctx context.Context) ([]quiz.Question, error)

// Ticker is the part of time.Ticker the shell uses.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type timeTicker struct {
	*time.Ticker
}

func (t timeTicker) C() <-chan time.Time {
	return t.Ticker.C
}

// Options configures the plain shell.
type Options struct {
	TickInterval time.Duration
	// NewTicker replaces time.NewTicker, mainly for tests.
	NewTicker func(time.Duration) Ticker
}

// Shell reads commands, forwards them to a machine and prints each state change.
type Shell struct {
	machine   *quiz.Machine
	fetch     FetchFunc
	in        io.Reader
	out       io.Writer
	interval  time.Duration
	newTicker func(time.Duration) Ticker
	ticker    Ticker
	session   quiz.Session
}

type fetchResult struct {
	questions []quiz.Question
	err       error
}

// New constructs a plain shell.
func New(machine *quiz.Machine, fetch FetchFunc, in io.Reader, out io.Writer, opts Options) *Shell {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	interval := opts.TickInterval
	if interval <= 0 {
		interval = time.Second
	}
	newTicker := opts.NewTicker
	if newTicker == nil {
		newTicker = func(d time.Duration) Ticker { return timeTicker{time.NewTicker(d)} }
	}
	return &Shell{
		machine:   machine,
		fetch:     fetch,
		in:        in,
		out:       out,
		interval:  interval,
		newTicker: newTicker,
	}
}

// Run is New followed by Shell.Run.
func Run(ctx context.Context, machine *quiz.Machine, fetch FetchFunc, in io.Reader, out io.Writer, opts Options) error {
	return New(machine, fetch, in, out, opts).Run(ctx)
}

// Run loads the questions and processes input until quit, end of input or
// context cancellation. It returns the action error that stopped the
// shell, if any.
func (s *Shell) Run(ctx context.Context) error {
	if s.machine == nil {
		return errors.New("plain ui requires a machine")
	}
	if s.fetch == nil {
		return errors.New("plain ui requires a fetch function")
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer s.stopTimer()

	s.session = s.machine.Snapshot()
	lines := readLines(ctx, s.in)
	fetched := make(chan fetchResult, 1)

	if err := s.dispatch(quiz.BeginLoad()); err != nil {
		return err
	}
	go func() {
		questions, err := s.fetch(ctx)
		fetched <- fetchResult{questions: questions, err: err}
	}()

	// Lines typed before the questions arrive wait in pending and replay
	// once the load settles. End of input during the load waits for it.
	var pending []string
	eof := false
	for {
		select {
		case <-ctx.Done():
			return nil
		case result := <-fetched:
			if ctx.Err() != nil {
				return nil
			}
			action := quiz.LoadSucceeded(result.questions)
			if result.err != nil {
				action = quiz.LoadFailed(result.err)
			}
			if err := s.dispatch(action); err != nil {
				return err
			}
			for _, line := range pending {
				quit, err := s.handle(line)
				if err != nil || quit {
					return err
				}
			}
			pending = nil
			if eof {
				return nil
			}
		case <-s.tickC():
			if s.session.Status != quiz.StatusActive {
				continue
			}
			if err := s.dispatch(quiz.Tick()); err != nil {
				return err
			}
		case line, ok := <-lines:
			if !ok {
				if !s.loading() {
					return nil
				}
				eof = true
				lines = nil
				continue
			}
			if s.loading() && !isQuit(line) {
				pending = append(pending, line)
				continue
			}
			quit, err := s.handle(line)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		}
	}
}

func (s *Shell) loading() bool {
	return s.session.Status == quiz.StatusIdle || s.session.Status == quiz.StatusLoading
}

func isQuit(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "q", "quit", "exit":
		return true
	}
	return false
}

// handle maps one input line to an action for the current status.
func (s *Shell) handle(line string) (bool, error) {
	command := strings.ToLower(strings.TrimSpace(line))
	if command == "" {
		return false, nil
	}
	if isQuit(command) {
		return true, nil
	}
	switch command {
	case "?", "h", "help":
		s.printHelp()
		return false, nil
	}

	var action quiz.Action
	switch s.session.Status {
	case quiz.StatusReady:
		if command != "s" && command != "start" {
			return false, s.unavailable(command)
		}
		action = quiz.Start()
	case quiz.StatusActive:
		if index, ok := parseOption(command); ok {
			if s.session.Answered() {
				return false, s.unavailable(command)
			}
			action = quiz.SelectOption(index)
		} else if (command == "n" || command == "next") && s.session.Answered() {
			action = quiz.Advance()
		} else {
			return false, s.unavailable(command)
		}
	case quiz.StatusFinished:
		if command != "r" && command != "restart" {
			return false, s.unavailable(command)
		}
		action = quiz.Restart()
	default:
		return false, s.unavailable(command)
	}
	return false, s.dispatch(action)
}

// dispatch forwards an action, prints the new state and keeps the timer in
// step with the status.
func (s *Shell) dispatch(action quiz.Action) error {
	prev := s.session
	next, err := s.machine.Dispatch(action)
	if err != nil {
		return err
	}
	s.session = next
	switch {
	case next.Status == quiz.StatusActive && s.ticker == nil:
		s.ticker = s.newTicker(s.interval)
	case next.Status != quiz.StatusActive:
		s.stopTimer()
	}
	render(s.out, s.machine.Rules(), action, prev, next)
	return nil
}

func (s *Shell) stopTimer() {
	if s.ticker != nil {
		s.ticker.Stop()
		s.ticker = nil
	}
}

// tickC is nil while no timer runs, so the select never sees a stale tick.
func (s *Shell) tickC() <-chan time.Time {
	if s.ticker == nil {
		return nil
	}
	return s.ticker.C()
}

// unavailable reports a command the current status does not accept.
func (s *Shell) unavailable(command string) error {
	fmt.Fprintf(s.out, "%q is not available now. %s\n", command, hint(s.session))
	return nil
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, "Commands: start, 1-4 (or a-d), next, restart, quit")
}

// readLines scans r on its own goroutine and closes the channel at end of input.
func readLines(ctx context.Context, r io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return lines
}

// parseOption accepts 1-4 or a-d.
func parseOption(command string) (int, bool) {
	if len(command) != 1 {
		return 0, false
	}
	switch c := command[0]; {
	case c >= '1' && c <= '4':
		return int(c - '1'), true
	case c >= 'a' && c <= 'd':
		return int(c - 'a'), true
	}
	return 0, false
}
