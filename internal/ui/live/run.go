package live

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"quizterm/internal/quiz"
)

// Run drives a quiz session in the terminal until the user quits or ctx is
// cancelled. It returns the action error that stopped the UI, if any.
func Run(ctx context.Context, machine *quiz.Machine, fetch FetchFunc, stdin io.Reader, stdout io.Writer, opts Options) error {
	if machine == nil {
		return errors.New("live ui requires a machine")
	}
	if fetch == nil {
		return errors.New("live ui requires a fetch function")
	}
	if stdin == nil {
		stdin = os.Stdin
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := NewModel(ctx, machine, fetch, opts)
	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(stdin),
		tea.WithOutput(stdout),
		tea.WithAltScreen(),
	)
	final, err := program.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("live ui: %w", err)
	}
	if finished, ok := final.(Model); ok && finished.Err() != nil {
		return finished.Err()
	}
	return nil
}
