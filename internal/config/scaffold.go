package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const defaultConfig = `version: 1
source:
  url: "http://localhost:8000/questions"
  timeout_seconds: 10

quiz:
  seconds_per_question: 60
  # dynamic: the quiz ends after the last loaded question.
  # fixed: the quiz ends after fixed_question_count questions.
  last_question: dynamic
  fixed_question_count: 15

ui:
  mode: auto
  no_color: false

log:
  path: ""
  verbose: false

server:
  addr: "127.0.0.1:8000"
  questions_file: "questions.json"
`

const sampleQuestions = `[
  {
    "id": 1,
    "question": "Which is the most popular JavaScript framework?",
    "options": ["Angular", "React", "Svelte", "Vue"],
    "correctOption": 1,
    "points": 10
  },
  {
    "id": 2,
    "question": "Which company invented React?",
    "options": ["Google", "Apple", "Netflix", "Facebook"],
    "correctOption": 3,
    "points": 10
  },
  {
    "id": 3,
    "question": "What's the fundamental building block of React apps?",
    "options": ["Components", "Blocks", "Elements", "Effects"],
    "correctOption": 0,
    "points": 10
  },
  {
    "id": 4,
    "question": "What's the name of the syntax we use to describe the UI in React components?",
    "options": ["FBJ", "Babel", "JSX", "ES2015"],
    "correctOption": 2,
    "points": 10
  },
  {
    "id": 5,
    "question": "How does data flow naturally in React apps?",
    "options": ["From parents to children", "From children to parents", "Both ways", "The developers decides"],
    "correctOption": 0,
    "points": 10
  },
  {
    "id": 6,
    "question": "How to pass data into a child component?",
    "options": ["State", "Props", "PropTypes", "Parameters"],
    "correctOption": 1,
    "points": 10
  },
  {
    "id": 7,
    "question": "When to use derived state?",
    "options": ["Whenever the state should not trigger a re-render", "To synchronize state with the URL", "When it can be computed from existing state", "Never"],
    "correctOption": 2,
    "points": 30
  },
  {
    "id": 8,
    "question": "What triggers a UI re-render in React?",
    "options": ["Running an effect", "Passing props", "Updating state", "Adding event listeners to DOM elements"],
    "correctOption": 2,
    "points": 20
  }
]
`

// Scaffold writes a default config file and, next to its directory, a
// sample questions file.
func Scaffold(configPath string) error {
	if configPath == "" {
		return fmt.Errorf("config path is required")
	}
	if err := ensureAbsent(configPath, "config"); err != nil {
		return err
	}
	root := ProjectRoot(configPath)
	questionsPath := filepath.Join(root, "questions.json")
	if err := ensureAbsent(questionsPath, "questions"); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(configPath, []byte(defaultConfig), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	if err := os.WriteFile(questionsPath, []byte(sampleQuestions), 0o644); err != nil {
		return fmt.Errorf("write questions file: %w", err)
	}
	return nil
}

func ensureAbsent(path, label string) error {
	info, err := os.Stat(path)
	if err == nil {
		if info.IsDir() {
			return fmt.Errorf("%s path %q is a directory", label, path)
		}
		return fmt.Errorf("%s file already exists at %q", label, path)
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat %s file: %w", label, err)
	}
	return nil
}
