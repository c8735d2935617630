package live

import (
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"quizterm/internal/quiz"
)

var (
	colorTitle   = lipgloss.Color("33")
	colorMuted   = lipgloss.Color("244")
	colorCorrect = lipgloss.Color("42")
	colorWrong   = lipgloss.Color("196")
	colorPicked  = lipgloss.Color("220")
	colorTimer   = lipgloss.Color("39")
)

// renderHeader renders the title line.
func renderHeader(noColor bool) string {
	return stylize("quizterm", noColor, colorTitle) + "\n"
}

func renderLoading(spinner string) string {
	return spinner + " Loading questions...\n"
}

func renderError(noColor bool) string {
	return stylize("There was an error fetching the questions.", noColor, colorWrong) + "\n"
}

// renderStart renders the welcome screen.
func renderStart(s quiz.Session, noColor bool) string {
	var b strings.Builder
	b.WriteString("Welcome to the quiz!\n")
	b.WriteString(fmtInt(len(s.Questions)) + " questions to test your mastery\n")
	if s.HighScore > 0 {
		b.WriteString(stylize("High score: "+fmtInt(s.HighScore)+" points", noColor, colorMuted) + "\n")
	}
	return b.String()
}

// renderActive renders the current question with its options.
func renderActive(s quiz.Session, rules quiz.Rules, bar progress.Model, noColor bool) string {
	q, ok := s.CurrentQuestion()
	if !ok {
		return ""
	}
	total := len(s.Questions)
	var b strings.Builder
	b.WriteString(bar.ViewAs(ratio(s.AnsweredCount(), total)) + "\n")
	b.WriteString("Question " + fmtInt(s.CurrentIndex+1) + "/" + fmtInt(total) +
		"  " + fmtInt(s.Score) + "/" + fmtInt(s.TotalPoints()) + " points\n\n")
	b.WriteString(stylize(q.Text, noColor, colorTitle) + "\n\n")
	for i, option := range q.Options {
		b.WriteString(renderOption(s, q, i, option, noColor) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(stylize(formatClock(s.SecondsRemaining), noColor, colorTimer))
	if s.Answered() {
		b.WriteString("  " + renderVerdict(s, noColor))
		if rules.IsLastQuestion(s) {
			b.WriteString("  " + stylize("last question", noColor, colorMuted))
		}
	}
	return b.String() + "\n"
}

// renderOption renders one option line. After an answer the chosen option
// is marked and the correct option is revealed.
func renderOption(s quiz.Session, q quiz.Question, index int, option string, noColor bool) string {
	line := optionLabel(index) + ") " + option
	if !s.Answered() {
		return "  " + line
	}
	switch {
	case index == q.CorrectOption:
		return "✓ " + stylize(line, noColor, colorCorrect)
	case s.SelectedOption.Is(index):
		return "✗ " + stylize(line, noColor, colorWrong)
	default:
		return "  " + stylize(line, noColor, colorMuted)
	}
}

func renderVerdict(s quiz.Session, noColor bool) string {
	if s.IsCorrect {
		q, _ := s.CurrentQuestion()
		return stylize("Correct! +"+fmtInt(q.Points), noColor, colorCorrect)
	}
	return stylize("Incorrect", noColor, colorPicked)
}

// renderResult renders the finished screen.
func renderResult(s quiz.Session, attempts string, hasAttempts bool, noColor bool) string {
	total := s.TotalPoints()
	var b strings.Builder
	b.WriteString("You scored " + fmtInt(s.Score) + " out of " +
		fmtInt(total) + " (" + formatPercent(s.Score, total) + ")\n")
	b.WriteString(stylize("High score: "+fmtInt(s.HighScore)+" points", noColor, colorMuted) + "\n")
	if hasAttempts {
		b.WriteString("\n" + attempts + "\n")
	}
	return b.String()
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
