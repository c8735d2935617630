package question

import "quizterm/internal/quiz"

// Quiz converts the set into the questions the session machine plays.
func (set Set) Quiz() []quiz.Question {
	out := make([]quiz.Question, 0, len(set.Questions))
	for _, q := range set.Questions {
		out = append(out, quiz.Question{
			ID:            string(q.ID),
			Text:          q.Question,
			Options:       append([]string(nil), q.Options...),
			CorrectOption: q.CorrectOption,
			Points:        q.Points,
		})
	}
	return out
}

// TotalPoints sums the points of every question in the set.
func (set Set) TotalPoints() int {
	total := 0
	for _, q := range set.Questions {
		total += q.Points
	}
	return total
}
