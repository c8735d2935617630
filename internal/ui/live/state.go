package live

import "quizterm/internal/quiz"

// Attempt summarises one finished quiz attempt for the results table.
type Attempt struct {
	Number   int
	ID       string
	Score    int
	Total    int
	TimedOut bool
}

// recordAttempt appends an attempt when a transition finishes a session.
func recordAttempt(attempts []Attempt, prev, next quiz.Session) []Attempt {
	if prev.Status != quiz.StatusActive || next.Status != quiz.StatusFinished {
		return attempts
	}
	return append(attempts, Attempt{
		Number:   len(attempts) + 1,
		ID:       next.AttemptID,
		Score:    next.Score,
		Total:    next.TotalPoints(),
		TimedOut: next.SecondsRemaining == 0,
	})
}
