package cli

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quizterm/internal/quiz"
	"quizterm/internal/testutil"
	"quizterm/internal/ui/live"
	"quizterm/internal/ui/plain"
)

// stubShells replaces both shells; plainFn handles plain runs and live runs fail the test.
func stubShells(t *testing.T, plainFn func(context.Context, *quiz.Machine, plain.FetchFunc) error) {
	t.Helper()
	origPlain, origLive := runPlain, runLive
	runPlain = func(ctx context.Context, machine *quiz.Machine, fetch plain.FetchFunc, _ io.Reader, _ io.Writer, _ plain.Options) error {
		return plainFn(ctx, machine, fetch)
	}
	runLive = func(context.Context, *quiz.Machine, live.FetchFunc, io.Reader, io.Writer, live.Options) error {
		t.Fatalf("live UI should not run without a TTY")
		return nil
	}
	t.Cleanup(func() { runPlain, runLive = origPlain, origLive })
}

func playThrough(ctx context.Context, machine *quiz.Machine, fetch plain.FetchFunc, answers ...int) error {
	if _, err := machine.Dispatch(quiz.BeginLoad()); err != nil {
		return err
	}
	questions, err := fetch(ctx)
	if err != nil {
		_, dispatchErr := machine.Dispatch(quiz.LoadFailed(err))
		return dispatchErr
	}
	if _, err := machine.Dispatch(quiz.LoadSucceeded(questions)); err != nil {
		return err
	}
	if _, err := machine.Dispatch(quiz.Start()); err != nil {
		return err
	}
	for _, answer := range answers {
		if _, err := machine.Dispatch(quiz.SelectOption(answer)); err != nil {
			return err
		}
		if _, err := machine.Dispatch(quiz.Advance()); err != nil {
			return err
		}
	}
	return nil
}

func TestPlayCommandAppliesFlagsOverConfig(t *testing.T) {
	server := testutil.StartQuestionServer(t, testutil.SampleSet(3))
	dir := t.TempDir()
	configPath := filepath.Join(dir, ".quizterm", "config.yml")
	writeFile(t, configPath, "version: 1\nsource:\n  url: http://127.0.0.1:1/questions\nquiz:\n  seconds_per_question: 30\nui:\n  mode: live\n")
	logPath := filepath.Join(dir, "logs", "play.log")

	var rules quiz.Rules
	stubShells(t, func(ctx context.Context, machine *quiz.Machine, fetch plain.FetchFunc) error {
		rules = machine.Rules()
		return playThrough(ctx, machine, fetch, 0, 1, 2)
	})

	var stdout, stderr bytes.Buffer
	code := Run([]string{"play",
		"--config", configPath,
		"--url", server.QuestionsURL,
		"--ui", "plain",
		"--last-question", "fixed",
		"--seconds-per-question", "5",
		"--verbose",
		"--no-color",
		"--log", logPath,
	}, &stdout, &stderr)
	require.Equal(t, ExitOK, code, stderr.String())

	assert.Equal(t, 5, rules.SecondsPerQuestion)
	assert.Equal(t, quiz.LastQuestionFixed, rules.LastQuestion)
	assert.Equal(t, quiz.DefaultFixedQuestionCount, rules.FixedQuestionCount)
	assert.Contains(t, stdout.String(), "High score: 60 points")

	logData, err := os.ReadFile(logPath)
	require.NoError(t, err)
	logText := string(logData)
	assert.Contains(t, logText, "[verbose] Fetching questions from "+server.QuestionsURL)
	assert.Contains(t, logText, "load-succeeded(3 questions) loading -> ready")
	assert.Contains(t, logText, "advance active -> finished")
	assert.NotContains(t, logText, "\x1b[")
}

func TestPlayCommandReportsFetchFailure(t *testing.T) {
	server := testutil.StartStatusServer(t, http.StatusInternalServerError, "boom")
	t.Chdir(t.TempDir())
	stubShells(t, func(ctx context.Context, machine *quiz.Machine, fetch plain.FetchFunc) error {
		return playThrough(ctx, machine, fetch)
	})

	var stdout, stderr bytes.Buffer
	code := Run([]string{"play", "--url", server.QuestionsURL}, &stdout, &stderr)
	require.Equal(t, ExitError, code)
	assert.Contains(t, stderr.String(), "Failed to load questions")
	assert.Contains(t, stderr.String(), "status")
}

func TestPlayCommandLogsFetchFailure(t *testing.T) {
	server := testutil.StartStatusServer(t, http.StatusServiceUnavailable, "down")
	dir := t.TempDir()
	t.Chdir(dir)
	logPath := filepath.Join(dir, "play.log")
	stubShells(t, func(ctx context.Context, machine *quiz.Machine, fetch plain.FetchFunc) error {
		return playThrough(ctx, machine, fetch)
	})

	var stdout, stderr bytes.Buffer
	code := Run([]string{"play", "--url", server.QuestionsURL, "--verbose", "--log", logPath}, &stdout, &stderr)
	require.Equal(t, ExitError, code)

	logData, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(logData), "[verbose] Fetching questions failed:")
	assert.Contains(t, string(logData), "503")
}

func TestPlayCommandStopsOnInvalidAction(t *testing.T) {
	t.Chdir(t.TempDir())
	stubShells(t, func(_ context.Context, machine *quiz.Machine, _ plain.FetchFunc) error {
		_, err := machine.Dispatch(quiz.Advance())
		return err
	})

	var stdout, stderr bytes.Buffer
	code := Run([]string{"play"}, &stdout, &stderr)
	require.Equal(t, ExitError, code)
	assert.Contains(t, stderr.String(), "Quiz stopped")
	assert.Contains(t, stderr.String(), "advance")
}

func TestPlayCommandRejectsInvalidOptions(t *testing.T) {
	t.Chdir(t.TempDir())
	stubShells(t, func(context.Context, *quiz.Machine, plain.FetchFunc) error {
		t.Fatalf("shell should not start")
		return nil
	})

	cases := [][]string{
		{"play", "--last-question", "sometimes"},
		{"play", "--ui", "fancy"},
		{"play", "--url", "ftp://example.com/questions"},
		{"play", "extra"},
	}
	for _, args := range cases {
		var stdout, stderr bytes.Buffer
		code := Run(args, &stdout, &stderr)
		assert.Equal(t, ExitUsage, code, strings.Join(args, " "))
	}
}

func TestPlayCommandUsesPlainShellForPipedAnswers(t *testing.T) {
	server := testutil.StartQuestionServer(t, testutil.SampleSet(2))
	t.Chdir(t.TempDir())
	answers := strings.NewReader("start\n")
	origInput, origTerminal := playInput, isTerminal
	playInput = answers
	isTerminal = func(stream any) bool { return stream != any(answers) }
	t.Cleanup(func() { playInput, isTerminal = origInput, origTerminal })

	ran := false
	stubShells(t, func(ctx context.Context, machine *quiz.Machine, fetch plain.FetchFunc) error {
		ran = true
		return playThrough(ctx, machine, fetch, 0)
	})

	var stdout, stderr bytes.Buffer
	code := Run([]string{"play", "--url", server.QuestionsURL, "--ui", "live"}, &stdout, &stderr)
	require.Equal(t, ExitOK, code, stderr.String())
	assert.True(t, ran)
	assert.Contains(t, stderr.String(), "stdin is not a TTY")
}
