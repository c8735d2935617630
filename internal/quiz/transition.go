package quiz

// Transition applies an action to a session using DefaultRules.
func Transition(s Session, a Action) (Session, error) {
	return DefaultRules().Apply(s, a)
}

// Apply computes the next session for an action. It never mutates s; a
// rejected action returns s unchanged alongside an *ActionError.
func (r Rules) Apply(s Session, a Action) (Session, error) {
	switch a.Kind {
	case ActionBeginLoad:
		if s.Status != StatusIdle {
			return s, invalid(s, a, "")
		}
		s.Status = StatusLoading
		return s, nil

	case ActionLoadSucceeded:
		if s.Status != StatusLoading {
			return s, invalid(s, a, "")
		}
		s.Status = StatusReady
		s.Questions = Session{Questions: a.Questions}.Clone().Questions
		return s, nil

	case ActionLoadFailed:
		if s.Status != StatusLoading {
			return s, invalid(s, a, "")
		}
		s.Status = StatusError
		return s, nil

	case ActionStart:
		if s.Status != StatusReady {
			return s, invalid(s, a, "")
		}
		if len(s.Questions) == 0 {
			return s, invalid(s, a, "no questions loaded")
		}
		s.Status = StatusActive
		s.CurrentIndex = 0
		s.SecondsRemaining = len(s.Questions) * r.secondsPerQuestion()
		s.AttemptID = a.AttemptID
		return s, nil

	case ActionSelectOption:
		return r.selectOption(s, a)

	case ActionAdvance:
		if s.Status != StatusActive {
			return s, invalid(s, a, "")
		}
		last := r.IsLastQuestion(s)
		if last {
			s.Status = StatusFinished
		} else {
			s.CurrentIndex++
		}
		s.SelectedOption = Selection{}
		s.IsCorrect = false
		s.RevealIncorrect = false
		s.HighScore = max(s.HighScore, s.Score)
		return s, nil

	case ActionTick:
		if s.Status != StatusActive {
			return s, invalid(s, a, "")
		}
		s.SecondsRemaining--
		if s.SecondsRemaining <= 0 {
			s.SecondsRemaining = 0
			s.Status = StatusFinished
		}
		s.HighScore = max(s.HighScore, s.Score)
		return s, nil

	case ActionRestart:
		if s.Status != StatusFinished {
			return s, invalid(s, a, "")
		}
		return Session{
			Status:    StatusReady,
			Questions: s.Questions,
			HighScore: s.HighScore,
		}, nil
	}
	return s, &ActionError{Action: a, Status: s.Status, Err: ErrUnknownAction}
}

// selectOption answers the current question once; repeats are no-ops.
func (r Rules) selectOption(s Session, a Action) (Session, error) {
	if s.Status != StatusActive {
		return s, invalid(s, a, "")
	}
	if s.Answered() {
		return s, nil
	}
	question, ok := s.CurrentQuestion()
	if !ok {
		return s, invalid(s, a, "no current question")
	}
	if a.Option < 0 || a.Option >= len(question.Options) {
		return s, invalid(s, a, "option out of range")
	}
	s.SelectedOption = Select(a.Option)
	s.IsCorrect = a.Option == question.CorrectOption
	s.RevealIncorrect = !s.IsCorrect
	if s.IsCorrect {
		s.Score += question.Points
	}
	s.HighScore = max(s.HighScore, s.Score)
	return s, nil
}
