// Package prompts holds the tutor's system prompts and canned greetings,
// baked into the binary at compile time.
package prompts

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed system_prompts.yaml
var systemPromptsYAML []byte

// defaultTemplate answers for unknown template types
const defaultTemplate = "portfolio_website"

// Catalog resolves a project's template type to its system prompt
type Catalog struct {
	systemPrompts map[string]string
}

// Load parses the embedded system prompts
func Load() (*Catalog, error) {
	var parsed map[string]string
	if err := yaml.Unmarshal(systemPromptsYAML, &parsed); err != nil {
		return nil, fmt.Errorf("parse system prompts: %w", err)
	}
	if _, ok := parsed[defaultTemplate]; !ok {
		return nil, fmt.Errorf("system prompts missing %q entry", defaultTemplate)
	}
	return &Catalog{systemPrompts: parsed}, nil
}

// SystemPrompt returns the tutoring prompt for a template type, falling
// back to the portfolio one for unknown types
func (c *Catalog) SystemPrompt(templateType string) string {
	if p, ok := c.systemPrompts[templateType]; ok {
		return p
	}
	return c.systemPrompts[defaultTemplate]
}

// greetings are the canned first messages shown when a project opens
var greetings = map[string]string{
	"portfolio_website": "Welcome! I'm here to help you build your first portfolio website. Let's start by creating a simple HTML structure. What would you like to add first?",
	"todo_app":          "Hello! Ready to build your first interactive Todo app? We'll use HTML for structure, CSS for styling, and JavaScript for functionality. Where would you like to start?",
	"calculator":        "Hi there! Let's build a calculator together. We'll create buttons, handle clicks, and perform calculations. What's the first step you'd like to tackle?",
}

// InitialMessage returns the canned greeting for a template type, falling
// back to the portfolio one for unknown types
func InitialMessage(templateType string) string {
	if g, ok := greetings[templateType]; ok {
		return g
	}
	return greetings[defaultTemplate]
}
