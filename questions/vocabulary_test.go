package questions

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadVocabularyLines(t *testing.T) {
	path := writeFile(t, "preps.txt", "# spatial\nin\n  on  \n\nat\nin\n")

	got, err := LoadVocabulary(path)
	if err != nil {
		t.Fatalf("LoadVocabulary failed: %v", err)
	}

	want := []string{"in", "on", "at", "in"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("vocabulary mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadVocabularyYAML(t *testing.T) {
	for _, name := range []string{"preps.yaml", "preps.YML"} {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, name, "- with\n- near\n- \"  by \"\n")

			got, err := LoadVocabulary(path)
			if err != nil {
				t.Fatalf("LoadVocabulary failed: %v", err)
			}

			want := []string{"with", "near", "by"}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("vocabulary mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadVocabularyInvalidYAML(t *testing.T) {
	path := writeFile(t, "preps.yaml", "prepositions: [in, on]\n")

	if _, err := LoadVocabulary(path); err == nil {
		t.Error("Expected error for a YAML mapping, got nil")
	}
}

func TestLoadVocabularyMissing(t *testing.T) {
	for _, name := range []string{"missing.txt", "missing.yaml"} {
		if _, err := LoadVocabulary(filepath.Join(t.TempDir(), name)); err == nil {
			t.Errorf("Expected error for %s, got nil", name)
		}
	}
}
