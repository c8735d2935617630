package quiz

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownAction is returned for action kinds the machine does not know.
	ErrUnknownAction = errors.New("unknown action")
	// ErrInvalidAction is returned for actions not accepted in the current status.
	ErrInvalidAction = errors.New("invalid action")
)

// ActionError reports a rejected action. Both causes indicate a shell bug.
type ActionError struct {
	Action Action
	Status Status
	Reason string
	Err    error
}

func (e *ActionError) Error() string {
	msg := fmt.Sprintf("%v: %s in status %s", e.Err, e.Action.Kind, e.Status)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *ActionError) Unwrap() error {
	return e.Err
}

func invalid(s Session, a Action, reason string) error {
	return &ActionError{Action: a, Status: s.Status, Reason: reason, Err: ErrInvalidAction}
}
