package live

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"quizterm/internal/quiz"
)

// Model renders a quiz session with Bubble Tea. Every key press, timer tick
// and fetch result passes through Update, so the machine sees one ordered
// stream of actions.
type Model struct {
	ctx          context.Context
	machine      *quiz.Machine
	fetch        FetchFunc
	session      quiz.Session
	attempts     []Attempt
	keys         keyMap
	spinner      spinner.Model
	progress     progress.Model
	table        table.Model
	help         help.Model
	tickInterval time.Duration
	tickGen      int
	noColor      bool
	err          error
}

// Options configures the live UI model.
type Options struct {
	NoColor      bool
	TickInterval time.Duration
}

// NewModel constructs a live UI model around a machine.
func NewModel(ctx context.Context, machine *quiz.Machine, fetch FetchFunc, opts Options) Model {
	tickInterval := opts.TickInterval
	if tickInterval <= 0 {
		tickInterval = time.Second
	}
	t := table.New(
		table.WithColumns(attemptColumns()),
		table.WithRows([]table.Row{}),
		table.WithFocused(false),
		table.WithHeight(5),
	)
	t.SetStyles(tableStyles(opts.NoColor))
	return Model{
		ctx:          ctx,
		machine:      machine,
		fetch:        fetch,
		session:      machine.Snapshot(),
		keys:         defaultKeyMap(),
		spinner:      spinner.New(spinner.WithSpinner(spinner.Dot)),
		progress:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(40), progress.WithoutPercentage()),
		table:        t,
		help:         help.New(),
		tickInterval: tickInterval,
		noColor:      opts.NoColor,
	}
}

// Session returns the last session snapshot the model rendered.
func (m Model) Session() quiz.Session {
	return m.session
}

// Err returns the action error that stopped the model, if any.
func (m Model) Err() error {
	return m.err
}

// Init starts the spinner and requests the question fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, requestLoad)
}

// Update consumes fetch results, timer ticks and key presses.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.progress.Width = max(min(typed.Width-4, 60), 10)
		m.help.Width = typed.Width
		return m, nil
	case loadMsg:
		if m.session.Status != quiz.StatusIdle {
			return m, nil
		}
		if !m.dispatch(quiz.BeginLoad()) {
			return m, tea.Quit
		}
		return m, fetchQuestions(m.ctx, m.fetch)
	case fetchedMsg:
		action := quiz.LoadSucceeded(typed.questions)
		if typed.err != nil {
			action = quiz.LoadFailed(typed.err)
		}
		if !m.dispatch(action) {
			return m, tea.Quit
		}
		return m, nil
	case tickMsg:
		if typed.gen != m.tickGen || m.session.Status != quiz.StatusActive {
			return m, nil
		}
		if !m.dispatch(quiz.Tick()) {
			return m, tea.Quit
		}
		return m, m.timerCmd()
	case spinner.TickMsg:
		if m.session.Status != quiz.StatusIdle && m.session.Status != quiz.StatusLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(typed)
		return m, cmd
	case tea.KeyMsg:
		return m.handleKey(typed)
	}
	return m, nil
}

// handleKey maps a key press to an action for the current status.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.stopTimer()
		return m, tea.Quit
	}
	var action quiz.Action
	switch m.session.Status {
	case quiz.StatusReady:
		if !key.Matches(msg, m.keys.Start) {
			return m, nil
		}
		action = quiz.Start()
	case quiz.StatusActive:
		if index, ok := m.keys.optionFor(msg); ok {
			if m.session.Answered() {
				return m, nil
			}
			action = quiz.SelectOption(index)
		} else if key.Matches(msg, m.keys.Next) && m.session.Answered() {
			action = quiz.Advance()
		} else {
			return m, nil
		}
	case quiz.StatusFinished:
		if !key.Matches(msg, m.keys.Restart) {
			return m, nil
		}
		action = quiz.Restart()
	default:
		return m, nil
	}

	wasActive := m.session.Status == quiz.StatusActive
	if !m.dispatch(action) {
		return m, tea.Quit
	}
	if !wasActive && m.session.Status == quiz.StatusActive {
		return m, m.startTimer()
	}
	return m, nil
}

// dispatch forwards an action to the machine. A rejected action is a
// programming error and stops the UI.
func (m *Model) dispatch(action quiz.Action) bool {
	prev := m.session
	next, err := m.machine.Dispatch(action)
	if err != nil {
		m.err = err
		m.stopTimer()
		return false
	}
	m.session = next
	m.attempts = recordAttempt(m.attempts, prev, next)
	if len(m.attempts) > 0 {
		m.table.SetRows(attemptRows(m.attempts))
	}
	if prev.Status == quiz.StatusActive && next.Status != quiz.StatusActive {
		m.stopTimer()
	}
	return true
}

// startTimer begins a new timer generation.
func (m *Model) startTimer() tea.Cmd {
	m.tickGen++
	return tick(m.tickInterval, m.tickGen)
}

// stopTimer invalidates ticks already scheduled.
func (m *Model) stopTimer() {
	m.tickGen++
}

// timerCmd schedules the next tick while the session stays active.
func (m Model) timerCmd() tea.Cmd {
	if m.session.Status != quiz.StatusActive {
		return nil
	}
	return tick(m.tickInterval, m.tickGen)
}

// View renders the screen for the current status.
func (m Model) View() string {
	var body string
	switch m.session.Status {
	case quiz.StatusIdle, quiz.StatusLoading:
		body = renderLoading(m.spinner.View())
	case quiz.StatusError:
		body = renderError(m.noColor)
	case quiz.StatusReady:
		body = renderStart(m.session, m.noColor)
	case quiz.StatusActive:
		body = renderActive(m.session, m.machine.Rules(), m.progress, m.noColor)
	case quiz.StatusFinished:
		body = renderResult(m.session, m.table.View(), len(m.attempts) > 0, m.noColor)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		renderHeader(m.noColor),
		body,
		m.help.ShortHelpView(m.bindings()),
	)
}

// bindings lists the keys that do something in the current status.
func (m Model) bindings() []key.Binding {
	switch m.session.Status {
	case quiz.StatusReady:
		return []key.Binding{m.keys.Start, m.keys.Quit}
	case quiz.StatusActive:
		if !m.session.Answered() {
			return []key.Binding{m.keys.Options[0], m.keys.Quit}
		}
		if m.machine.Rules().IsLastQuestion(m.session) {
			return []key.Binding{m.keys.Finish, m.keys.Quit}
		}
		return []key.Binding{m.keys.Next, m.keys.Quit}
	case quiz.StatusFinished:
		return []key.Binding{m.keys.Restart, m.keys.Quit}
	default:
		return []key.Binding{m.keys.Quit}
	}
}
