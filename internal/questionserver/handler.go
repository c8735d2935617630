package questionserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"quizterm/internal/question"
)

// NewHandler loads the configured question file and serves it.
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.QuestionsPath == "" {
		return nil, errors.New("questionserver: questions path is required")
	}
	set, err := question.LoadFile(cfg.QuestionsPath)
	if err != nil {
		return nil, err
	}
	return NewSetHandler(set), nil
}

// NewSetHandler serves an already loaded question set:
//
//	GET /questions       the full list
//	GET /questions/{id}  a single question
func NewSetHandler(set question.Set) http.Handler {
	byID := make(map[string]question.Question, len(set.Questions))
	for _, q := range set.Questions {
		byID[string(q.ID)] = q
	}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /questions", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, set.Questions)
	})
	mux.HandleFunc("GET /questions/{id}", func(w http.ResponseWriter, r *http.Request) {
		q, ok := byID[r.PathValue("id")]
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "question not found"})
			return
		}
		writeJSON(w, http.StatusOK, q)
	})
	return withCORS(mux)
}

// withCORS lets browser front ends on other ports read the questions.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		if r.Method == http.MethodOptions {
			w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
