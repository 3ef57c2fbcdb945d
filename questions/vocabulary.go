package questions

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadVocabulary reads a preposition vocabulary from path. Files ending in
// .yaml or .yml hold a YAML sequence of strings; anything else is read as one
// preposition per line, skipping blank lines and lines starting with "#".
// Order and duplicates are kept as written.
func LoadVocabulary(path string) ([]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return loadYAMLVocabulary(path)
	default:
		return loadLineVocabulary(path)
	}
}

func loadYAMLVocabulary(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vocabulary %q: %w", path, err)
	}
	var words []string
	if err := yaml.Unmarshal(data, &words); err != nil {
		return nil, fmt.Errorf("parse vocabulary %q: %w", path, err)
	}
	out := make([]string, 0, len(words))
	for _, w := range words {
		if w = strings.TrimSpace(w); w != "" {
			out = append(out, w)
		}
	}
	return out, nil
}

func loadLineVocabulary(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read vocabulary %q: %w", path, err)
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read vocabulary %q: %w", path, err)
	}
	return words, nil
}
