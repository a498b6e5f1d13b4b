package commands

import (
	"fmt"
	"strings"
	"unicode"
)

// InputType represents the type of a command input parameter.
type InputType string

const (
	InputTypeString InputType = "string" // Text input (single word if rest=false, multi-word if rest=true)
	InputTypeNumber InputType = "number" // Integer
)

// InputSpec defines an input parameter that a command accepts from user input.
type InputSpec struct {
	Name     string    `json:"name"`
	Type     InputType `json:"type"`
	Required bool      `json:"required"`
	Rest     bool      `json:"rest"`              // If true, captures all remaining input
	Missing  string    `json:"missing,omitempty"` // Shown instead of the generic message when a required input is absent
}

// Command defines a command loaded from JSON.
type Command struct {
	Handler     string         `json:"handler"`
	Category    string         `json:"category"`
	Description string         `json:"description"`
	Aliases     []string       `json:"aliases,omitempty"`
	Config      map[string]any `json:"config"` // Config passed to handler, may contain templates
	Inputs      []InputSpec    `json:"inputs"` // User input parameters
}

func (c *Command) Validate() error {
	if c.Handler == "" {
		return fmt.Errorf("command handler not set")
	}

	for i, input := range c.Inputs {
		if input.Name == "" {
			return fmt.Errorf("input %d: name is required", i)
		}
		if input.Type == "" {
			return fmt.Errorf("input %q: type is required", input.Name)
		}
		switch input.Type {
		case InputTypeString, InputTypeNumber:
		default:
			return fmt.Errorf("input %q: unknown type %q", input.Name, input.Type)
		}
		// Only the last input can have rest=true
		if input.Rest && i != len(c.Inputs)-1 {
			return fmt.Errorf("input %q: only the last input can have rest=true", input.Name)
		}
	}

	for i, alias := range c.Aliases {
		if alias == "" || strings.ContainsFunc(alias, unicode.IsSpace) {
			return fmt.Errorf("alias %d: must be a single word", i)
		}
	}

	for k, v := range c.Config {
		if _, ok := v.(string); !ok {
			return fmt.Errorf("config %q: must be a string", k)
		}
	}

	return nil
}

// names returns the command id followed by its aliases, lowercased.
func (c *Command) names(id string) []string {
	names := []string{strings.ToLower(id)}
	for _, a := range c.Aliases {
		names = append(names, strings.ToLower(a))
	}
	return names
}

// Usage renders the command's inputs, e.g. "<x> <y>" or "[ticks]".
func (c *Command) Usage() string {
	usage := ""
	for _, in := range c.Inputs {
		name := in.Name
		if in.Rest {
			name += "..."
		}
		if in.Required {
			usage += fmt.Sprintf(" <%s>", name)
		} else {
			usage += fmt.Sprintf(" [%s]", name)
		}
	}
	return usage
}
