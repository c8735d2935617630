package verbose

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"

	"quizterm/internal/quiz"
)

const prefix = "[verbose]"

const (
	ansiReset = "\x1b[0m"
	ansiBold  = "\x1b[1m"
	ansiDim   = "\x1b[2m"
	ansiGray  = "\x1b[90m"
	ansiGreen = "\x1b[32m"
	ansiRed   = "\x1b[31m"
	ansiBlue  = "\x1b[34m"
)

// Style selects the color of a log line.
type Style int

const (
	StyleDefault Style = iota
	StyleSession
	StyleScore
	StyleError
)

// Logger writes prefixed verbose lines. A nil or disabled Logger drops
// everything, so callers never need to check.
type Logger struct {
	mu      sync.Mutex
	w       io.Writer
	enabled bool
	palette palette
}

// New returns a logger writing to w when enabled.
func New(w io.Writer, enabled bool, noColor bool) *Logger {
	return &Logger{
		w:       w,
		enabled: enabled && w != nil,
		palette: paletteFor(w, noColor),
	}
}

// Enabled reports whether lines are written.
func (l *Logger) Enabled() bool {
	return l != nil && l.enabled
}

// Logf writes one formatted line in the given style.
func (l *Logger) Logf(style Style, format string, args ...any) {
	if !l.Enabled() {
		return
	}
	line := fmt.Sprintf(format, args...)
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, "%s %s\n", l.palette.prefix(prefix), l.palette.apply(style, line))
}

// Errorf writes an error line.
func (l *Logger) Errorf(format string, args ...any) {
	l.Logf(StyleError, format, args...)
}

// OnTransition logs an accepted session transition.
func (l *Logger) OnTransition(action quiz.Action, prev, next quiz.Session) {
	if !l.Enabled() {
		return
	}
	style := StyleDefault
	switch {
	case next.Status == quiz.StatusError:
		style = StyleError
	case prev.Status != next.Status:
		style = StyleSession
	case next.Score != prev.Score:
		style = StyleScore
	}
	if action.Kind == quiz.ActionTick && prev.Status == next.Status {
		return
	}
	l.Logf(style, "%s %s -> %s", action, prev.Status, next.Status)
	if details := describe(next); details != "" {
		l.Logf(StyleDefault, "  %s", details)
	}
}

// describe summarises the fields worth tracing for a session.
func describe(s quiz.Session) string {
	parts := make([]string, 0, 6)
	if s.AttemptID != "" {
		parts = append(parts, "attempt="+s.AttemptID)
	}
	if s.Status == quiz.StatusActive || s.Status == quiz.StatusFinished {
		parts = append(parts, fmt.Sprintf("question=%d/%d", s.CurrentIndex+1, len(s.Questions)))
		parts = append(parts, fmt.Sprintf("score=%d/%d", s.Score, s.TotalPoints()))
		parts = append(parts, fmt.Sprintf("remaining=%ds", s.SecondsRemaining))
	}
	if index, ok := s.SelectedOption.Get(); ok {
		parts = append(parts, fmt.Sprintf("selected=%d correct=%t", index, s.IsCorrect))
	}
	if s.HighScore > 0 {
		parts = append(parts, fmt.Sprintf("high=%d", s.HighScore))
	}
	return strings.Join(parts, " ")
}

type palette struct {
	enabled bool
}

func paletteFor(writer io.Writer, noColor bool) palette {
	if noColor {
		return palette{enabled: false}
	}
	return palette{enabled: shouldUseStyling(writer)}
}

func shouldUseStyling(writer io.Writer) bool {
	if writer == nil {
		return false
	}
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	if strings.EqualFold(os.Getenv("CLICOLOR"), "0") {
		return false
	}
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	if fder, ok := writer.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fder.Fd()))
	}
	return false
}

func (p palette) prefix(text string) string {
	if !p.enabled {
		return text
	}
	return ansiDim + ansiGray + text + ansiReset
}

func (p palette) apply(style Style, text string) string {
	if !p.enabled {
		return text
	}
	switch style {
	case StyleSession:
		return ansiBold + ansiBlue + text + ansiReset
	case StyleScore:
		return ansiBold + ansiGreen + text + ansiReset
	case StyleError:
		return ansiBold + ansiRed + text + ansiReset
	default:
		return text
	}
}
