package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"quizterm/internal/question"
	"quizterm/internal/questionserver"
)

// ServerInstance represents a running HTTP test server.
type ServerInstance struct {
	BaseURL      string
	QuestionsURL string
	Close        func()
}

// StartQuestionServer serves set at /questions on an httptest server.
func StartQuestionServer(t testing.TB, set question.Set) *ServerInstance {
	t.Helper()
	return startServer(t, questionserver.NewSetHandler(set))
}

// StartStatusServer answers every request with status and body.
func StartStatusServer(t testing.TB, status int, body string) *ServerInstance {
	t.Helper()
	return startServer(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func startServer(t testing.TB, handler http.Handler) *ServerInstance {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return &ServerInstance{
		BaseURL:      server.URL,
		QuestionsURL: server.URL + "/questions",
		Close:        server.Close,
	}
}

// SampleSet builds count four-option questions. Question i has correct
// option i%4 and is worth (i+1)*10 points.
func SampleSet(count int) question.Set {
	questions := make([]question.Question, count)
	for i := range questions {
		questions[i] = question.Question{
			ID:            question.ID(fmt.Sprint(i + 1)),
			Question:      fmt.Sprintf("Question %d?", i+1),
			Options:       []string{"alpha", "bravo", "charlie", "delta"},
			CorrectOption: i % 4,
			Points:        (i + 1) * 10,
		}
	}
	return question.Set{Questions: questions}
}
