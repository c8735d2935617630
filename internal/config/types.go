package config

// Config is the contents of .quizterm/config.yml.
type Config struct {
	Version int          `yaml:"version"`
	Source  SourceConfig `yaml:"source"`
	Quiz    QuizConfig   `yaml:"quiz"`
	UI      UIConfig     `yaml:"ui"`
	Log     LogConfig    `yaml:"log"`
	Server  ServerConfig `yaml:"server"`
}

type SourceConfig struct {
	URL            string `yaml:"url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type QuizConfig struct {
	SecondsPerQuestion int    `yaml:"seconds_per_question"`
	LastQuestion       string `yaml:"last_question"`
	FixedQuestionCount int    `yaml:"fixed_question_count"`
}

type UIConfig struct {
	Mode    string `yaml:"mode"`
	NoColor bool   `yaml:"no_color"`
}

type LogConfig struct {
	Path    string `yaml:"path"`
	Verbose bool   `yaml:"verbose"`
}

type ServerConfig struct {
	Addr          string `yaml:"addr"`
	QuestionsFile string `yaml:"questions_file"`
}
