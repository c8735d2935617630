//go:build cucumber

package quiz

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/cucumber/godog"
)

// TestQuizSessionScenarios runs the quiz session feature scenarios.
func TestQuizSessionScenarios(t *testing.T) {
	featurePath := filepath.Join("..", "..", "features", "quiz-session.feature")
	suite := godog.TestSuite{
		Name:                "quiz-session",
		ScenarioInitializer: InitializeSessionScenario,
		Options: &godog.Options{
			Format:    "pretty",
			Paths:     []string{featurePath},
			Strict:    true,
			TestingT:  t,
			Randomize: 0,
		},
	}
	if suite.Run() != 0 {
		t.Fatalf("non-zero godog status")
	}
}

// InitializeSessionScenario wires steps for quiz session scenarios.
func InitializeSessionScenario(ctx *godog.ScenarioContext) {
	state := &sessionScenarioState{}
	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		state.reset()
		return ctx, nil
	})

	ctx.Step(`^a fresh quiz session$`, state.givenFreshSession)
	ctx.Step(`^the questions load with correct options "([^"]*)" and points "([^"]*)"$`, state.givenQuestionsLoad)
	ctx.Step(`^each question allows (\d+) seconds$`, state.givenSecondsPerQuestion)
	ctx.Step(`^I dispatch "([^"]+)"$`, state.whenIDispatch)
	ctx.Step(`^I select option (\d+)$`, state.whenISelectOption)
	ctx.Step(`^the load fails$`, state.whenTheLoadFails)
	ctx.Step(`^the score is (\d+)$`, state.thenScoreIs)
	ctx.Step(`^the high score is (\d+)$`, state.thenHighScoreIs)
	ctx.Step(`^the current index is (\d+)$`, state.thenCurrentIndexIs)
	ctx.Step(`^the status is "([^"]+)"$`, state.thenStatusIs)
	ctx.Step(`^the correct option is revealed$`, state.thenCorrectOptionRevealed)
	ctx.Step(`^no questions are loaded$`, state.thenNoQuestions)
	ctx.Step(`^(\d+) questions are loaded$`, state.thenQuestionsLoaded)
	ctx.Step(`^(\d+) seconds remain$`, state.thenSecondsRemain)
	ctx.Step(`^dispatching "([^"]+)" is rejected$`, state.thenDispatchRejected)
}

type sessionScenarioState struct {
	rules   Rules
	session Session
}

// reset clears scenario state.
func (s *sessionScenarioState) reset() {
	s.rules = DefaultRules()
	s.session = NewSession()
}

func (s *sessionScenarioState) dispatch(action Action) error {
	next, err := s.rules.Apply(s.session, action)
	if err != nil {
		return err
	}
	s.session = next
	return nil
}

func (s *sessionScenarioState) givenFreshSession() error {
	s.session = NewSession()
	return nil
}

// givenQuestionsLoad builds questions from comma separated correct options and points.
func (s *sessionScenarioState) givenQuestionsLoad(correct, points string) error {
	correctValues, err := parseInts(correct)
	if err != nil {
		return err
	}
	pointValues, err := parseInts(points)
	if err != nil {
		return err
	}
	if len(correctValues) != len(pointValues) {
		return fmt.Errorf("expected %d point values, got %d", len(correctValues), len(pointValues))
	}
	questions := make([]Question, len(correctValues))
	for i := range questions {
		questions[i] = Question{
			ID:            strconv.Itoa(i + 1),
			Text:          fmt.Sprintf("Question %d", i+1),
			Options:       []string{"a", "b", "c", "d"},
			CorrectOption: correctValues[i],
			Points:        pointValues[i],
		}
	}
	if err := s.dispatch(BeginLoad()); err != nil {
		return err
	}
	return s.dispatch(LoadSucceeded(questions))
}

func (s *sessionScenarioState) givenSecondsPerQuestion(seconds int) error {
	s.rules.SecondsPerQuestion = seconds
	return nil
}

func (s *sessionScenarioState) whenIDispatch(name string) error {
	action, err := actionByName(name)
	if err != nil {
		return err
	}
	return s.dispatch(action)
}

func (s *sessionScenarioState) whenISelectOption(index int) error {
	return s.dispatch(SelectOption(index))
}

func (s *sessionScenarioState) whenTheLoadFails() error {
	return s.dispatch(LoadFailed(errors.New("connection refused")))
}

func (s *sessionScenarioState) thenScoreIs(expected int) error {
	if s.session.Score != expected {
		return fmt.Errorf("expected score %d, got %d", expected, s.session.Score)
	}
	return nil
}

func (s *sessionScenarioState) thenHighScoreIs(expected int) error {
	if s.session.HighScore != expected {
		return fmt.Errorf("expected high score %d, got %d", expected, s.session.HighScore)
	}
	return nil
}

func (s *sessionScenarioState) thenCurrentIndexIs(expected int) error {
	if s.session.CurrentIndex != expected {
		return fmt.Errorf("expected current index %d, got %d", expected, s.session.CurrentIndex)
	}
	return nil
}

func (s *sessionScenarioState) thenStatusIs(expected string) error {
	if string(s.session.Status) != expected {
		return fmt.Errorf("expected status %q, got %q", expected, s.session.Status)
	}
	return nil
}

func (s *sessionScenarioState) thenCorrectOptionRevealed() error {
	if !s.session.RevealIncorrect || s.session.IsCorrect {
		return fmt.Errorf("expected an incorrect answer with the correct option revealed")
	}
	return nil
}

func (s *sessionScenarioState) thenNoQuestions() error {
	if len(s.session.Questions) != 0 {
		return fmt.Errorf("expected no questions, got %d", len(s.session.Questions))
	}
	return nil
}

func (s *sessionScenarioState) thenQuestionsLoaded(expected int) error {
	if len(s.session.Questions) != expected {
		return fmt.Errorf("expected %d questions, got %d", expected, len(s.session.Questions))
	}
	return nil
}

func (s *sessionScenarioState) thenSecondsRemain(expected int) error {
	if s.session.SecondsRemaining != expected {
		return fmt.Errorf("expected %d seconds remaining, got %d", expected, s.session.SecondsRemaining)
	}
	return nil
}

func (s *sessionScenarioState) thenDispatchRejected(name string) error {
	action, err := actionByName(name)
	if err != nil {
		return err
	}
	before := s.session
	if err := s.dispatch(action); !errors.Is(err, ErrInvalidAction) {
		return fmt.Errorf("expected %s to be rejected, got %v", name, err)
	}
	if s.session.SecondsRemaining != before.SecondsRemaining || s.session.Status != before.Status {
		return fmt.Errorf("expected session to be unchanged")
	}
	return nil
}

func actionByName(name string) (Action, error) {
	for kind, actionName := range actionNames {
		if actionName == name {
			return Action{Kind: kind}, nil
		}
	}
	return Action{}, fmt.Errorf("unknown action name %q", name)
}

func parseInts(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	values := make([]int, 0, len(parts))
	for _, part := range parts {
		value, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", part, err)
		}
		values = append(values, value)
	}
	return values, nil
}
