package live

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"quizterm/internal/quiz"
)

// FetchFunc loads the question set once.
type FetchFunc func(ctx context.Context) ([]quiz.Question, error)

// loadMsg asks the model to begin the one-time fetch.
type loadMsg struct{}

// fetchedMsg carries the fetch outcome.
type fetchedMsg struct {
	questions []quiz.Question
	err       error
}

// tickMsg is one timer period. gen ties it to the timer that scheduled it.
type tickMsg struct {
	gen int
}

func requestLoad() tea.Msg {
	return loadMsg{}
}

// fetchQuestions runs the fetch off the update loop.
func fetchQuestions(ctx context.Context, fetch FetchFunc) tea.Cmd {
	return func() tea.Msg {
		questions, err := fetch(ctx)
		return fetchedMsg{questions: questions, err: err}
	}
}

// tick schedules the next timer period.
func tick(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg { return tickMsg{gen: gen} })
}
