package quiz

import "fmt"

// ActionKind identifies the type of action applied to a session.
type ActionKind int

const (
	// ActionBeginLoad marks the start of the question fetch.
	ActionBeginLoad ActionKind = iota + 1
	// ActionLoadSucceeded delivers the fetched questions.
	ActionLoadSucceeded
	// ActionLoadFailed reports a failed fetch.
	ActionLoadFailed
	// ActionStart begins the quiz.
	ActionStart
	// ActionSelectOption answers the current question.
	ActionSelectOption
	// ActionAdvance moves to the next question.
	ActionAdvance
	// ActionTick counts one second down.
	ActionTick
	// ActionRestart resets a finished session.
	ActionRestart
)

var actionNames = map[ActionKind]string{
	ActionBeginLoad:     "begin-load",
	ActionLoadSucceeded: "load-succeeded",
	ActionLoadFailed:    "load-failed",
	ActionStart:         "start",
	ActionSelectOption:  "select-option",
	ActionAdvance:       "advance",
	ActionTick:          "tick",
	ActionRestart:       "restart",
}

// String returns the action name.
func (k ActionKind) String() string {
	if name, ok := actionNames[k]; ok {
		return name
	}
	return fmt.Sprintf("action(%d)", int(k))
}

// Action is a request to transition a session.
type Action struct {
	Kind      ActionKind
	Questions []Question
	Option    int
	AttemptID string
	Err       error
}

// String renders the action for logs.
func (a Action) String() string {
	switch a.Kind {
	case ActionLoadSucceeded:
		return fmt.Sprintf("%s(%d questions)", a.Kind, len(a.Questions))
	case ActionSelectOption:
		return fmt.Sprintf("%s(%d)", a.Kind, a.Option)
	case ActionLoadFailed:
		if a.Err != nil {
			return fmt.Sprintf("%s(%v)", a.Kind, a.Err)
		}
	}
	return a.Kind.String()
}

func BeginLoad() Action { return Action{Kind: ActionBeginLoad} }

func LoadSucceeded(questions []Question) Action {
	return Action{Kind: ActionLoadSucceeded, Questions: questions}
}

// LoadFailed carries the fetch error for logging; the session does not keep it.
func LoadFailed(err error) Action { return Action{Kind: ActionLoadFailed, Err: err} }

func Start() Action { return Action{Kind: ActionStart} }

func SelectOption(index int) Action { return Action{Kind: ActionSelectOption, Option: index} }

func Advance() Action { return Action{Kind: ActionAdvance} }

func Tick() Action { return Action{Kind: ActionTick} }

func Restart() Action { return Action{Kind: ActionRestart} }
