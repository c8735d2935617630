//go:build cucumber

package cli

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cucumber/godog"
)

// TestUIModeScenarios runs the UI mode feature scenarios.
func TestUIModeScenarios(t *testing.T) {
	featurePath := filepath.Join("..", "..", "features", "ui-mode.feature")
	suite := godog.TestSuite{
		Name:                "ui-mode",
		ScenarioInitializer: InitializeUIModeScenario,
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

// InitializeUIModeScenario wires steps for UI mode scenarios.
func InitializeUIModeScenario(ctx *godog.ScenarioContext) {
	state := &uiModeScenarioState{}
	orig := isTerminal
	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		state.reset()
		isTerminal = func(stream any) bool {
			switch stream {
			case any(state.stdin):
				return state.stdinTTY
			case any(state.stdout):
				return state.stdoutTTY
			}
			return false
		}
		return ctx, nil
	})
	ctx.After(func(ctx context.Context, _ *godog.Scenario, _ error) (context.Context, error) {
		isTerminal = orig
		return ctx, nil
	})

	ctx.Step(`^a TTY stdout$`, state.givenTTY)
	ctx.Step(`^stdout is not a TTY$`, state.givenNonTTY)
	ctx.Step(`^stdin is piped$`, state.givenPipedStdin)
	ctx.Step(`^verbose logs go to the terminal$`, state.givenVerbose)
	ctx.Step(`^I play with ui mode "([^"]*)"$`, state.whenIPlay)
	ctx.Step(`^the live UI is shown$`, state.thenLive)
	ctx.Step(`^the output uses plain text$`, state.thenPlain)
	ctx.Step(`^a fallback warning is printed$`, state.thenWarning)
	ctx.Step(`^the warning mentions (stdin|stdout)$`, state.thenWarningNames)
	ctx.Step(`^no warning is printed$`, state.thenNoWarning)
	ctx.Step(`^the mode is rejected$`, state.thenRejected)
}

type uiModeScenarioState struct {
	stdin     *strings.Reader
	stdout    *bytes.Buffer
	stdinTTY  bool
	stdoutTTY bool
	verbose   bool
	decision  uiModeDecision
	err       error
}

// reset clears scenario state.
func (s *uiModeScenarioState) reset() {
	*s = uiModeScenarioState{stdin: strings.NewReader(""), stdout: &bytes.Buffer{}}
}

// givenTTY models an interactive terminal: keys arrive on the same TTY.
func (s *uiModeScenarioState) givenTTY() error {
	s.stdinTTY = true
	s.stdoutTTY = true
	return nil
}

func (s *uiModeScenarioState) givenNonTTY() error {
	s.stdinTTY = true
	s.stdoutTTY = false
	return nil
}

func (s *uiModeScenarioState) givenPipedStdin() error {
	s.stdinTTY = false
	return nil
}

func (s *uiModeScenarioState) givenVerbose() error {
	s.verbose = true
	return nil
}

func (s *uiModeScenarioState) whenIPlay(mode string) error {
	s.decision, s.err = resolveUIMode(mode, s.verbose, s.stdin, s.stdout)
	return nil
}

func (s *uiModeScenarioState) thenLive() error {
	if s.err != nil {
		return s.err
	}
	if !s.decision.useLive {
		return fmt.Errorf("expected live UI")
	}
	return nil
}

func (s *uiModeScenarioState) thenPlain() error {
	if s.err != nil {
		return s.err
	}
	if s.decision.useLive {
		return fmt.Errorf("expected plain output")
	}
	return nil
}

func (s *uiModeScenarioState) thenWarning() error {
	if s.decision.warning == "" {
		return fmt.Errorf("expected a warning")
	}
	return nil
}

func (s *uiModeScenarioState) thenWarningNames(stream string) error {
	if !strings.Contains(s.decision.warning, stream) {
		return fmt.Errorf("expected warning to mention %s, got %q", stream, s.decision.warning)
	}
	return nil
}

func (s *uiModeScenarioState) thenNoWarning() error {
	if s.decision.warning != "" {
		return fmt.Errorf("unexpected warning %q", s.decision.warning)
	}
	return nil
}

func (s *uiModeScenarioState) thenRejected() error {
	if s.err == nil {
		return fmt.Errorf("expected the mode to be rejected")
	}
	return nil
}
