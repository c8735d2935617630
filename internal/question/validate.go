package question

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem in a question set.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("question validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// NormalizeSet trims whitespace and checks the invariants the quiz relies
// on: unique ids, non-empty text, distinct options, a correct option inside
// the option list and positive points.
func NormalizeSet(set Set) (Set, error) {
	collector := &issueCollector{}
	if len(set.Questions) == 0 {
		collector.add("questions", "must include at least one entry")
	}

	seenIDs := map[ID]struct{}{}
	questions := make([]Question, 0, len(set.Questions))
	for i, question := range set.Questions {
		prefix := fmt.Sprintf("questions[%d]", i)
		question.ID = ID(strings.TrimSpace(string(question.ID)))
		if question.ID == "" {
			collector.add(prefix+".id", "is required")
		} else if _, exists := seenIDs[question.ID]; exists {
			collector.add(prefix+".id", fmt.Sprintf("duplicate id %q", question.ID))
		} else {
			seenIDs[question.ID] = struct{}{}
		}

		question.Question = strings.TrimSpace(question.Question)
		if question.Question == "" {
			collector.add(prefix+".question", "is required")
		}

		question.Options = normalizeStringSlice(question.Options)
		if len(question.Options) == 0 {
			collector.add(prefix+".options", "must include at least one entry")
		}
		seenOptions := map[string]int{}
		for optionIndex, option := range question.Options {
			field := fmt.Sprintf("%s.options[%d]", prefix, optionIndex)
			if option == "" {
				collector.add(field, "is required")
				continue
			}
			key := normalizeText(option)
			if first, exists := seenOptions[key]; exists {
				collector.add(field, fmt.Sprintf("duplicates options[%d]", first))
				continue
			}
			seenOptions[key] = optionIndex
		}

		if question.CorrectOption < 0 || question.CorrectOption >= len(question.Options) {
			collector.add(prefix+".correctOption", fmt.Sprintf("index %d is outside options", question.CorrectOption))
		}
		if question.Points <= 0 {
			collector.add(prefix+".points", "must be > 0")
		}
		questions = append(questions, question)
	}

	if err := collector.result(); err != nil {
		return Set{}, err
	}
	return Set{Questions: questions}, nil
}

func normalizeStringSlice(values []string) []string {
	normalized := make([]string, 0, len(values))
	for _, value := range values {
		normalized = append(normalized, strings.TrimSpace(value))
	}
	return normalized
}
