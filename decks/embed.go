package decks

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var DecksFS embed.FS

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

// Load reads a deck yaml by name, preferring a file on disk under decks/ so
// edits are picked up without rebuilding. Falls back to the embedded copy.
func Load(name string) ([]byte, error) {
	clean := cleanDeckPath(name)
	if data, err := os.ReadFile(diskDeckPath(clean)); err == nil {
		return data, nil
	}
	return DecksFS.ReadFile(clean)
}

// LoadScript reads a scoring script by name, with the same disk override.
func LoadScript(name string) ([]byte, error) {
	clean := cleanScriptPath(name)
	if data, err := os.ReadFile(filepath.Join("decks", filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	return ScriptsFS.ReadFile(clean)
}

func cleanDeckPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	s = strings.TrimPrefix(s, "decks/")
	if !strings.HasSuffix(s, ".yaml") && !strings.HasSuffix(s, ".yml") {
		s += ".yaml"
	}
	return s
}

func cleanScriptPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "decks/scripts/"); ok {
		s = after
	}
	if after, ok := strings.CutPrefix(s, "decks/"); ok {
		s = after
	}
	if after, ok := strings.CutPrefix(s, "scripts/"); ok {
		s = after
	}
	return fmt.Sprintf("scripts/%s", s)
}

func diskDeckPath(clean string) string {
	return filepath.Join("decks", filepath.FromSlash(clean))
}
