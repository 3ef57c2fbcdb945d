package questions

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// promptNamespace scopes the name-based prompt IDs.
var promptNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/qasrl/qasd/prompts"))

// Prompt is a finished question together with its provenance.
type Prompt struct {
	// ID is stable for a given target word and question text.
	ID          uuid.UUID
	Text        string
	Line        int // 1-based line in the template file
	Template    string
	Preposition string // empty when the line was not expanded
}

// Option configures a TemplateSet
type Option func(*TemplateSet)

// WithPrepositions enables preposition expansion with the given vocabulary.
// The slice is copied. Calling it with no prepositions still enables
// expansion, which then leaves "<PREP>" lines as they are.
func WithPrepositions(prepositions ...string) Option {
	return func(s *TemplateSet) {
		s.expand = true
		s.prepositions = append([]string(nil), prepositions...)
	}
}

// WithLogger sets the logger used while building questions
func WithLogger(logger *slog.Logger) Option {
	return func(s *TemplateSet) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// TemplateSet turns a template file and a target word into questions.
// The templates are read on the first call to Questions or Prompts and the
// result, error included, is kept for the lifetime of the set. A TemplateSet
// is safe for concurrent use.
type TemplateSet struct {
	targetWord   string
	path         string
	prepositions []string
	expand       bool
	logger       *slog.Logger

	once    sync.Once
	prompts []Prompt
	err     error
}

// New creates a TemplateSet. Nothing is read until questions are requested.
func New(targetWord, templateFilePath string, opts ...Option) *TemplateSet {
	s := &TemplateSet{
		targetWord: targetWord,
		path:       templateFilePath,
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *TemplateSet) TargetWord() string {
	return s.targetWord
}

func (s *TemplateSet) TemplateFilePath() string {
	return s.path
}

// Questions returns the finished questions in order. The returned slice is
// a copy and may be modified by the caller.
func (s *TemplateSet) Questions() ([]string, error) {
	prompts, err := s.build()
	if err != nil {
		return nil, err
	}
	out := make([]string, len(prompts))
	for i, p := range prompts {
		out[i] = p.Text
	}
	return out, nil
}

// Prompts returns the same sequence as Questions with IDs and provenance.
func (s *TemplateSet) Prompts() ([]Prompt, error) {
	prompts, err := s.build()
	if err != nil {
		return nil, err
	}
	return append([]Prompt(nil), prompts...), nil
}

func (s *TemplateSet) build() ([]Prompt, error) {
	s.once.Do(func() {
		s.prompts, s.err = s.compute()
	})
	return s.prompts, s.err
}

func (s *TemplateSet) compute() ([]Prompt, error) {
	raw, err := Load(s.path)
	if err != nil {
		s.logger.Error("failed to load templates", slog.String("path", s.path), slog.Any("error", err))
		return nil, err
	}
	s.logger.Debug("templates loaded", slog.String("path", s.path), slog.Int("templates", len(raw)))

	instantiated := Instantiate(raw, s.targetWord)

	var vocabulary []string
	if s.expand {
		vocabulary = s.prepositions
		if len(vocabulary) == 0 {
			s.warnUnexpanded(instantiated)
		}
	}
	variants := expand(instantiated, vocabulary)

	prompts := make([]Prompt, len(variants))
	for i, v := range variants {
		prompts[i] = Prompt{
			ID:          promptID(s.targetWord, v.text),
			Text:        v.text,
			Line:        v.index + 1,
			Template:    raw[v.index],
			Preposition: v.preposition,
		}
	}
	s.logger.Debug("questions built",
		slog.String("target_word", s.targetWord),
		slog.Int("questions", len(prompts)),
		slog.Bool("expanded", s.expand))
	return prompts, nil
}

func (s *TemplateSet) warnUnexpanded(templates []string) {
	for i, tmpl := range templates {
		if strings.Contains(tmpl, PrepPlaceholder) {
			s.logger.Warn("empty preposition vocabulary, template left unexpanded",
				slog.String("path", s.path), slog.Int("line", i+1))
		}
	}
}

func promptID(targetWord, text string) uuid.UUID {
	return uuid.NewSHA1(promptNamespace, []byte(targetWord+"\x00"+text))
}
