package plain

import (
	"fmt"
	"io"
	"math"
	"strings"

	"quizterm/internal/quiz"
)

// render prints the part of the session that changed.
func render(w io.Writer, rules quiz.Rules, action quiz.Action, prev, next quiz.Session) {
	switch action.Kind {
	case quiz.ActionTick:
		if next.Status == quiz.StatusFinished {
			fmt.Fprintln(w, "Time is up!")
			renderResult(w, next)
			return
		}
		if next.SecondsRemaining%30 == 0 || next.SecondsRemaining <= 5 {
			fmt.Fprintf(w, "Time remaining: %s\n", clock(next.SecondsRemaining))
		}
		return
	case quiz.ActionSelectOption:
		renderAnswer(w, rules, next)
		return
	}
	if prev.Status == next.Status && action.Kind != quiz.ActionAdvance {
		return
	}
	switch next.Status {
	case quiz.StatusLoading:
		fmt.Fprintln(w, "Loading questions...")
	case quiz.StatusError:
		fmt.Fprintln(w, "There was an error fetching the questions.")
	case quiz.StatusReady:
		fmt.Fprintf(w, "Welcome to the quiz!\n%d questions to test your mastery\n", len(next.Questions))
		if next.HighScore > 0 {
			fmt.Fprintf(w, "High score: %d points\n", next.HighScore)
		}
		fmt.Fprintln(w, hint(next))
	case quiz.StatusActive:
		renderQuestion(w, next)
	case quiz.StatusFinished:
		renderResult(w, next)
	}
}

func renderQuestion(w io.Writer, s quiz.Session) {
	q, ok := s.CurrentQuestion()
	if !ok {
		return
	}
	fmt.Fprintf(w, "\nQuestion %d/%d  %d/%d points  %s\n", s.CurrentIndex+1, len(s.Questions),
		s.Score, s.TotalPoints(), clock(s.SecondsRemaining))
	fmt.Fprintln(w, q.Text)
	for i, option := range q.Options {
		fmt.Fprintf(w, "  %d) %s\n", i+1, option)
	}
	fmt.Fprintln(w, hint(s))
}

func renderAnswer(w io.Writer, rules quiz.Rules, s quiz.Session) {
	q, ok := s.CurrentQuestion()
	if !ok {
		return
	}
	if s.IsCorrect {
		fmt.Fprintf(w, "Correct! +%d points\n", q.Points)
	} else {
		fmt.Fprintf(w, "Incorrect. The answer was %d) %s\n", q.CorrectOption+1, q.Options[q.CorrectOption])
	}
	if rules.IsLastQuestion(s) {
		fmt.Fprintln(w, "Type next to finish.")
		return
	}
	fmt.Fprintln(w, hint(s))
}

func renderResult(w io.Writer, s quiz.Session) {
	total := s.TotalPoints()
	percent := 0
	if total > 0 {
		percent = int(math.Ceil(float64(s.Score) / float64(total) * 100))
	}
	fmt.Fprintf(w, "\nYou scored %d out of %d (%d%%)\n", s.Score, total, percent)
	fmt.Fprintf(w, "High score: %d points\n", s.HighScore)
	fmt.Fprintln(w, hint(s))
}

// hint lists the commands the status accepts.
func hint(s quiz.Session) string {
	var commands []string
	switch s.Status {
	case quiz.StatusReady:
		commands = []string{"start"}
	case quiz.StatusActive:
		if s.Answered() {
			commands = []string{"next"}
		} else {
			commands = []string{"1-4"}
		}
	case quiz.StatusFinished:
		commands = []string{"restart"}
	}
	commands = append(commands, "quit")
	return "Commands: " + strings.Join(commands, ", ")
}

func clock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
