package config

import (
	"fmt"
	"net/url"
	"strings"

	"quizterm/internal/quiz"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// Validate checks a normalized config for correctness.
func Validate(cfg *Config) error {
	var issues []Issue
	add := func(field, message string) {
		issues = append(issues, Issue{Field: field, Message: message})
	}

	if cfg.Version == 0 {
		add("version", "is required")
	} else if cfg.Version != 1 {
		add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}

	if parsed, err := url.Parse(cfg.Source.URL); err != nil {
		add("source.url", fmt.Sprintf("invalid url: %v", err))
	} else if parsed.Scheme != "http" && parsed.Scheme != "https" {
		add("source.url", fmt.Sprintf("unsupported scheme %q", parsed.Scheme))
	} else if parsed.Host == "" {
		add("source.url", "host is required")
	}
	if cfg.Source.TimeoutSeconds < 0 {
		add("source.timeout_seconds", "must be >= 0")
	}

	if cfg.Quiz.SecondsPerQuestion < 0 {
		add("quiz.seconds_per_question", "must be >= 0")
	}
	if _, err := quiz.ParseLastQuestionPolicy(cfg.Quiz.LastQuestion); err != nil {
		add("quiz.last_question", fmt.Sprintf("unsupported policy %q (expected dynamic|fixed)", cfg.Quiz.LastQuestion))
	}
	if cfg.Quiz.FixedQuestionCount < 0 {
		add("quiz.fixed_question_count", "must be >= 0")
	}

	switch cfg.UI.Mode {
	case "auto", "live", "plain":
	default:
		add("ui.mode", fmt.Sprintf("unsupported mode %q (expected auto|live|plain)", cfg.UI.Mode))
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}
