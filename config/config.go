package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"golang.org/x/term"

	"github.com/qasrl/qasd/questions"
)

type Config struct {
	TemplatesPath    string
	Prepositions     []string
	PrepositionsPath string
	LogLevel         string
	LogFormat        string
}

// Load reads the configuration from the environment after applying the given
// dotenv files (".env" when none are named). Missing dotenv files are ignored
// and variables already set in the environment win.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load env file %q: %w", f, err)
		}
	}

	cfg := Config{
		TemplatesPath:    envOrDefault("QASD_TEMPLATES", "templates.txt"),
		Prepositions:     splitList(os.Getenv("QASD_PREPOSITIONS")),
		PrepositionsPath: os.Getenv("QASD_PREPOSITIONS_FILE"),
		LogLevel:         envOrDefault("QASD_LOG_LEVEL", "info"),
		LogFormat:        envOrDefault("QASD_LOG_FORMAT", "text"),
	}
	return cfg, nil
}

// Vocabulary resolves the preposition vocabulary: the inline list first, then
// the vocabulary file. A nil result means no expansion was configured.
func (c Config) Vocabulary() ([]string, error) {
	if len(c.Prepositions) > 0 {
		return append([]string(nil), c.Prepositions...), nil
	}
	if c.PrepositionsPath == "" {
		return nil, nil
	}
	words, err := questions.LoadVocabulary(c.PrepositionsPath)
	if err != nil {
		return nil, err
	}
	if words == nil {
		words = []string{}
	}
	return words, nil
}

// TemplateSet builds a question set for targetWord from the configured
// templates and vocabulary.
func (c Config) TemplateSet(targetWord string, logger *slog.Logger) (*questions.TemplateSet, error) {
	vocab, err := c.Vocabulary()
	if err != nil {
		return nil, err
	}
	opts := []questions.Option{questions.WithLogger(logger)}
	if vocab != nil {
		opts = append(opts, questions.WithPrepositions(vocab...))
	}
	return questions.New(targetWord, c.TemplatesPath, opts...), nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	case "info", "":
		return slog.LevelInfo, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", level)
	}
}

// NewLogger builds a logger writing to stderr. "text" uses tint, coloured
// only on a terminal; "json" uses the slog JSON handler.
func NewLogger(level, format string) (*slog.Logger, error) {
	slogLevel, err := parseLevel(level)
	if err != nil {
		return nil, err
	}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case "text", "":
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slogLevel,
			TimeFormat: time.Kitchen,
			NoColor:    !term.IsTerminal(int(os.Stderr.Fd())),
		})
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slogLevel})
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
	return slog.New(handler), nil
}
