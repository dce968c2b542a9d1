// Package prompts holds the LLM prompt templates used by the analyzer, chat,
// and dashboard services. Templates live in embedded JSON files, one per
// service, each mapping prompt names to template text.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed *.json
var promptFiles embed.FS

var (
	mu     sync.Mutex
	loaded = make(map[string]map[string]string)
)

// Get returns the prompt named key from the given file (e.g. "chat.json").
func Get(file, key string) (string, error) {
	templates, err := load(file)
	if err != nil {
		return "", err
	}
	prompt, ok := templates[key]
	if !ok {
		return "", fmt.Errorf("prompt %q not found in %s", key, file)
	}
	return prompt, nil
}

// MustGet is Get for prompts the services cannot run without. A missing
// template is a broken build, not a bad request, so it panics.
func MustGet(file, key string) string {
	prompt, err := Get(file, key)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return prompt
}

// Format substitutes {{.Key}} placeholders in a template with values from
// data. Placeholders without a matching key are left in place.
func Format(template string, data map[string]string) string {
	out := template
	for key, value := range data {
		out = strings.ReplaceAll(out, "{{."+key+"}}", value)
	}
	return out
}

// load parses a prompt file once and caches it for the process lifetime.
// The files are embedded, so a parse failure can only come from a bad edit.
func load(file string) (map[string]string, error) {
	mu.Lock()
	defer mu.Unlock()

	if templates, ok := loaded[file]; ok {
		return templates, nil
	}

	data, err := promptFiles.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt file %s: %w", file, err)
	}

	var templates map[string]string
	if err := json.Unmarshal(data, &templates); err != nil {
		return nil, fmt.Errorf("failed to parse prompt file %s: %w", file, err)
	}

	loaded[file] = templates
	return templates, nil
}
