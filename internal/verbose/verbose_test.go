package verbose

import (
	"bytes"
	"strings"
	"testing"

	"quizterm/internal/quiz"
)

func TestLoggerWritesPlainLines(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, true, false)
	logger.Logf(StyleScore, "score %d", 10)
	if got := buf.String(); got != "[verbose] score 10\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestDisabledAndNilLoggersDrop(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, false, false).Logf(StyleDefault, "hidden")
	var nilLogger *Logger
	nilLogger.Errorf("also hidden")
	nilLogger.OnTransition(quiz.Tick(), quiz.Session{}, quiz.Session{})
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

func TestLoggerObservesMachine(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, true, true)
	m := quiz.NewMachine(quiz.WithObserver(logger), quiz.WithAttemptIDs(func() string { return "a1" }))
	questions := []quiz.Question{{ID: "1", Text: "q", Options: []string{"a", "b", "c", "d"}, CorrectOption: 0, Points: 5}}
	for _, action := range []quiz.Action{quiz.BeginLoad(), quiz.LoadSucceeded(questions), quiz.Start(), quiz.Tick(), quiz.SelectOption(0)} {
		if _, err := m.Dispatch(action); err != nil {
			t.Fatalf("dispatch %s: %v", action, err)
		}
	}
	out := buf.String()
	for _, want := range []string{
		"begin-load idle -> loading",
		"load-succeeded(1 questions) loading -> ready",
		"start ready -> active",
		"attempt=a1",
		"select-option(0) active -> active",
		"score=5/5",
		"selected=0 correct=true",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "tick") {
		t.Fatalf("expected plain ticks to be skipped:\n%s", out)
	}
}
