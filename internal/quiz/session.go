package quiz

// Status identifies the coarse phase of a quiz session.
type Status string

const (
	StatusIdle     Status = "idle"
	StatusLoading  Status = "loading"
	StatusReady    Status = "ready"
	StatusActive   Status = "active"
	StatusFinished Status = "finished"
	StatusError    Status = "error"
)

// Question is a single multiple-choice question.
type Question struct {
	ID            string
	Text          string
	Options       []string
	CorrectOption int
	Points        int
}

// Selection is the option chosen for the current question, if any.
type Selection struct {
	Index    int
	Selected bool
}

// Get returns the selected option index and whether one is set.
func (s Selection) Get() (int, bool) {
	return s.Index, s.Selected
}

// Is reports whether the given option index is the selected one.
func (s Selection) Is(index int) bool {
	return s.Selected && s.Index == index
}

// Select returns a selection holding index.
func Select(index int) Selection {
	return Selection{Index: index, Selected: true}
}

// Session is one quiz attempt's progress. Values are treated as immutable;
// Transition returns a new Session instead of editing its input.
type Session struct {
	Status           Status
	Questions        []Question
	CurrentIndex     int
	SelectedOption   Selection
	IsCorrect        bool
	RevealIncorrect  bool
	Score            int
	HighScore        int
	SecondsRemaining int
	AttemptID        string
}

// NewSession returns the initial idle session.
func NewSession() Session {
	return Session{Status: StatusIdle}
}

// CurrentQuestion returns the question at CurrentIndex.
func (s Session) CurrentQuestion() (Question, bool) {
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(s.Questions) {
		return Question{}, false
	}
	return s.Questions[s.CurrentIndex], true
}

// Answered reports whether the current question has a selected option.
func (s Session) Answered() bool {
	return s.SelectedOption.Selected
}

// AnsweredCount is the progress value: answered questions so far.
func (s Session) AnsweredCount() int {
	if s.Answered() {
		return s.CurrentIndex + 1
	}
	return s.CurrentIndex
}

// TotalPoints sums the points of every loaded question.
func (s Session) TotalPoints() int {
	total := 0
	for _, q := range s.Questions {
		total += q.Points
	}
	return total
}

// Clone returns a copy that shares no slices with s.
func (s Session) Clone() Session {
	if s.Questions == nil {
		return s
	}
	questions := make([]Question, len(s.Questions))
	for i, q := range s.Questions {
		q.Options = append([]string(nil), q.Options...)
		questions[i] = q
	}
	s.Questions = questions
	return s
}
