package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"quizterm/internal/questionserver"
)

func stubServe(t *testing.T) *questionserver.Config {
	t.Helper()
	got := &questionserver.Config{}
	orig := serveQuestions
	serveQuestions = func(_ context.Context, cfg questionserver.Config) error {
		*got = cfg
		return nil
	}
	t.Cleanup(func() { serveQuestions = orig })
	return got
}

// TestServeCommandRequiresQuestionsFile verifies serve fails when no file is given or configured.
func TestServeCommandRequiresQuestionsFile(t *testing.T) {
	t.Chdir(t.TempDir())
	cmd := findCommand("serve")
	if cmd == nil {
		t.Fatalf("serve command not found")
	}
	var stdout, stderr bytes.Buffer
	exitCode := cmd.Run([]string{}, &stdout, &stderr)
	if exitCode != ExitUsage {
		t.Fatalf("expected usage exit, got %d: %s", exitCode, stderr.String())
	}
}

// TestServeCommandPassesConfig ensures serve forwards parsed config to the server layer.
func TestServeCommandPassesConfig(t *testing.T) {
	dir := t.TempDir()
	questionsPath := filepath.Join(dir, "questions.json")
	writeFile(t, questionsPath, validQuestions)
	got := stubServe(t)

	var stdout, stderr bytes.Buffer
	exitCode := findCommand("serve").Run([]string{"--addr", "127.0.0.1:5050", questionsPath}, &stdout, &stderr)
	if exitCode != ExitOK {
		t.Fatalf("expected exit ok, got %d: %s", exitCode, stderr.String())
	}
	if got.Addr != "127.0.0.1:5050" {
		t.Fatalf("unexpected addr: %s", got.Addr)
	}
	if got.QuestionsPath != questionsPath {
		t.Fatalf("unexpected questions path: %s", got.QuestionsPath)
	}
}

// TestServeCommandUsesConfigDefaults checks the configured file and address are used.
func TestServeCommandUsesConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "questions.json"), validQuestions)
	configPath := filepath.Join(dir, ".quizterm", "config.yml")
	writeFile(t, configPath, "version: 1\nserver:\n  addr: 127.0.0.1:9100\n  questions_file: questions.json\n")
	got := stubServe(t)

	var stdout, stderr bytes.Buffer
	exitCode := findCommand("serve").Run([]string{"--config", configPath}, &stdout, &stderr)
	if exitCode != ExitOK {
		t.Fatalf("expected exit ok, got %d: %s", exitCode, stderr.String())
	}
	if got.Addr != "127.0.0.1:9100" {
		t.Fatalf("unexpected addr: %s", got.Addr)
	}
	if got.QuestionsPath != filepath.Join(dir, "questions.json") {
		t.Fatalf("unexpected questions path: %s", got.QuestionsPath)
	}
}

func TestServeCommandMissingFile(t *testing.T) {
	t.Chdir(t.TempDir())
	var stdout, stderr bytes.Buffer
	exitCode := findCommand("serve").Run([]string{filepath.Join(t.TempDir(), "nope.json")}, &stdout, &stderr)
	if exitCode != ExitError {
		t.Fatalf("expected error exit, got %d", exitCode)
	}
}
