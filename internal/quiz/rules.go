package quiz

import "fmt"

// LastQuestionPolicy decides which question index ends the quiz on advance.
type LastQuestionPolicy string

const (
	// LastQuestionDynamic finishes after the last loaded question.
	LastQuestionDynamic LastQuestionPolicy = "dynamic"
	// LastQuestionFixed finishes after FixedQuestionCount questions.
	LastQuestionFixed LastQuestionPolicy = "fixed"
)

const (
	DefaultSecondsPerQuestion = 60
	DefaultFixedQuestionCount = 15
)

// Rules parameterise the transition function.
type Rules struct {
	SecondsPerQuestion int
	LastQuestion       LastQuestionPolicy
	FixedQuestionCount int
}

// DefaultRules returns the standard rules: 60 seconds per question and a
// quiz that ends after the last loaded question.
func DefaultRules() Rules {
	return Rules{
		SecondsPerQuestion: DefaultSecondsPerQuestion,
		LastQuestion:       LastQuestionDynamic,
		FixedQuestionCount: DefaultFixedQuestionCount,
	}
}

// ParseLastQuestionPolicy parses a policy name; empty means dynamic.
func ParseLastQuestionPolicy(value string) (LastQuestionPolicy, error) {
	switch LastQuestionPolicy(value) {
	case "", LastQuestionDynamic:
		return LastQuestionDynamic, nil
	case LastQuestionFixed:
		return LastQuestionFixed, nil
	default:
		return "", fmt.Errorf("invalid last question policy %q (expected dynamic|fixed)", value)
	}
}

func (r Rules) secondsPerQuestion() int {
	if r.SecondsPerQuestion <= 0 {
		return DefaultSecondsPerQuestion
	}
	return r.SecondsPerQuestion
}

// IsLastQuestion reports whether advancing from the current index finishes
// the session. The fixed policy still stops at the end of the loaded
// questions so CurrentIndex stays in range.
func (r Rules) IsLastQuestion(s Session) bool {
	lastLoaded := s.CurrentIndex >= len(s.Questions)-1
	if r.LastQuestion != LastQuestionFixed {
		return lastLoaded
	}
	count := r.FixedQuestionCount
	if count <= 0 {
		count = DefaultFixedQuestionCount
	}
	return s.CurrentIndex >= count-1 || lastLoaded
}
