package locale

import (
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
)

// TestLocaleSyntax ensures all embedded TOML locale files are syntactically valid.
func TestLocaleSyntax(t *testing.T) {
	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		t.Fatalf("reading embedded locales dir: %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("no locale files embedded")
	}

	for _, e := range entries {
		name := e.Name()
		if !strings.HasSuffix(name, ".toml") {
			continue
		}

		t.Run(name, func(t *testing.T) {
			data, err := localeFS.ReadFile("locales/" + name)
			if err != nil {
				t.Fatalf("reading %s: %v", name, err)
			}

			var v map[string]interface{}
			if _, err := toml.Decode(string(data), &v); err != nil {
				t.Errorf("%s: invalid TOML syntax: %v", name, err)
			}
		})
	}
}

// TestLocaleCoverage ensures every locale defines the core phrase keys so no
// language silently falls back to English for the most visible strings.
func TestLocaleCoverage(t *testing.T) {
	required := []string{"justNow", "now", "yesterday", "today", "tomorrow"}

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		t.Fatalf("reading embedded locales dir: %v", err)
	}

	for _, e := range entries {
		name := e.Name()
		if !strings.HasSuffix(name, ".toml") {
			continue
		}

		t.Run(name, func(t *testing.T) {
			data, err := localeFS.ReadFile("locales/" + name)
			if err != nil {
				t.Fatalf("reading %s: %v", name, err)
			}

			var v map[string]interface{}
			if _, err := toml.Decode(string(data), &v); err != nil {
				t.Fatalf("%s: invalid TOML: %v", name, err)
			}

			rel, ok := v["reltime"].(map[string]interface{})
			if !ok {
				t.Fatalf("%s: missing [reltime] table", name)
			}
			for _, key := range required {
				if _, ok := rel[key]; !ok {
					t.Errorf("%s: missing reltime.%s", name, key)
				}
			}
		})
	}
}
