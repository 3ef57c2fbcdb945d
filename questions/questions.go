// Package questions builds candidate question strings for QA-SRL style
// annotation tasks from line-based templates.
//
// A template file holds one question template per line. Every "[W]" in a
// line is replaced by the target word, and, when a preposition vocabulary is
// supplied, every line carrying "<PREP>" is expanded into one question per
// preposition. Output order always follows file order.
package questions

import (
	"bufio"
	"os"
	"strings"
)

const (
	// TargetPlaceholder is replaced by the target word in every template line.
	TargetPlaceholder = "[W]"
	// PrepPlaceholder is replaced by each preposition of the vocabulary.
	PrepPlaceholder = "<PREP>"
)

// maxLineSize caps a single template line.
const maxLineSize = 1024 * 1024

// Load reads the template file at path, one template per line, in file order.
// Lines are not trimmed and blank lines are kept. An empty file yields an
// empty slice and no error.
func Load(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &TemplateFileError{Path: path, Err: err}
	}
	defer file.Close()

	templates := []string{}
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		templates = append(templates, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, &TemplateFileError{Path: path, Err: err}
	}
	return templates, nil
}

// Instantiate replaces every TargetPlaceholder in each template with
// targetWord. The replacement is literal and is never re-scanned.
func Instantiate(templates []string, targetWord string) []string {
	out := make([]string, len(templates))
	for i, tmpl := range templates {
		out[i] = strings.ReplaceAll(tmpl, TargetPlaceholder, targetWord)
	}
	return out
}

// ExpandPrepositions emits one line per preposition for every template that
// carries PrepPlaceholder, and every other template once. Template order is
// kept, variants follow vocabulary order. With an empty vocabulary, lines are
// passed through untouched.
func ExpandPrepositions(templates, prepositions []string) []string {
	expanded := expand(templates, prepositions)
	out := make([]string, len(expanded))
	for i, v := range expanded {
		out[i] = v.text
	}
	return out
}

// variant is one expanded line plus where it came from.
type variant struct {
	index       int
	preposition string
	text        string
}

func expand(templates, prepositions []string) []variant {
	out := make([]variant, 0, expandedLen(templates, prepositions))
	for i, tmpl := range templates {
		if len(prepositions) == 0 || !strings.Contains(tmpl, PrepPlaceholder) {
			out = append(out, variant{index: i, text: tmpl})
			continue
		}
		for _, prep := range prepositions {
			out = append(out, variant{
				index:       i,
				preposition: prep,
				text:        strings.ReplaceAll(tmpl, PrepPlaceholder, prep),
			})
		}
	}
	return out
}

func expandedLen(templates, prepositions []string) int {
	n := 0
	for _, tmpl := range templates {
		if len(prepositions) > 0 && strings.Contains(tmpl, PrepPlaceholder) {
			n += len(prepositions)
		} else {
			n++
		}
	}
	return n
}
