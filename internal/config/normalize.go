package config

import (
	"strings"

	"quizterm/internal/quiz"
	"quizterm/internal/source"
)

const (
	DefaultServerAddr = "127.0.0.1:8000"
	DefaultUIMode     = "auto"
)

// Default returns the configuration used when no config file exists.
func Default() Config {
	cfg := Config{Version: 1}
	Normalize(&cfg)
	return cfg
}

// Normalize trims values and fills defaults.
func Normalize(cfg *Config) {
	cfg.Source.URL = strings.TrimSpace(cfg.Source.URL)
	if cfg.Source.URL == "" {
		cfg.Source.URL = source.DefaultURL
	}
	if cfg.Source.TimeoutSeconds == 0 {
		cfg.Source.TimeoutSeconds = int(source.DefaultTimeout.Seconds())
	}
	if cfg.Quiz.SecondsPerQuestion == 0 {
		cfg.Quiz.SecondsPerQuestion = quiz.DefaultSecondsPerQuestion
	}
	cfg.Quiz.LastQuestion = strings.ToLower(strings.TrimSpace(cfg.Quiz.LastQuestion))
	if cfg.Quiz.LastQuestion == "" {
		cfg.Quiz.LastQuestion = string(quiz.LastQuestionDynamic)
	}
	if cfg.Quiz.FixedQuestionCount == 0 {
		cfg.Quiz.FixedQuestionCount = quiz.DefaultFixedQuestionCount
	}
	cfg.UI.Mode = strings.ToLower(strings.TrimSpace(cfg.UI.Mode))
	if cfg.UI.Mode == "" {
		cfg.UI.Mode = DefaultUIMode
	}
	cfg.Log.Path = strings.TrimSpace(cfg.Log.Path)
	cfg.Server.Addr = strings.TrimSpace(cfg.Server.Addr)
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = DefaultServerAddr
	}
	cfg.Server.QuestionsFile = strings.TrimSpace(cfg.Server.QuestionsFile)
}

// Rules returns the quiz rules described by the config.
func (cfg Config) Rules() quiz.Rules {
	return quiz.Rules{
		SecondsPerQuestion: cfg.Quiz.SecondsPerQuestion,
		LastQuestion:       quiz.LastQuestionPolicy(cfg.Quiz.LastQuestion),
		FixedQuestionCount: cfg.Quiz.FixedQuestionCount,
	}
}
