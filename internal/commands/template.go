package commands

import (
	"fmt"
	"maps"
	"strings"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/pixil98/go-adventure/internal/game"
)

// templateFuncs is sprig plus a few helpers for describing the game.
var templateFuncs = func() template.FuncMap {
	funcs := sprig.TxtFuncMap()
	maps.Copy(funcs, template.FuncMap{
		// plural picks the singular or plural noun for n.
		"plural": func(n int, one, many string) string {
			if n == 1 {
				return one
			}
			return many
		},
		"coord": func(f float64) string {
			return fmt.Sprintf("%.1f", f)
		},
	})
	return funcs
}()

// InputContext is used to expand config templates that reference inputs.
type InputContext struct {
	Inputs map[string]any // Parsed input values keyed by input name
}

// LookContext is the data available to the look command's format template.
type LookContext struct {
	Snapshot game.Snapshot
}

// parsed caches templates by source text. Command configs are expanded on every use.
var parsed sync.Map

func parseTemplate(text string) (*template.Template, error) {
	if t, ok := parsed.Load(text); ok {
		return t.(*template.Template), nil
	}
	t, err := template.New("").Funcs(templateFuncs).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}
	actual, _ := parsed.LoadOrStore(text, t)
	return actual.(*template.Template), nil
}

// ExpandTemplate executes tmplStr against data.
func ExpandTemplate(tmplStr string, data any) (string, error) {
	tmpl, err := parseTemplate(tmplStr)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	err = tmpl.Execute(&sb, data)
	if err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}

	return sb.String(), nil
}

// expandInputTemplate substitutes input values into a config string before handler execution.
func expandInputTemplate(tmplStr string, ctx *InputContext) (string, error) {
	if !strings.Contains(tmplStr, "{{") {
		return tmplStr, nil
	}
	return ExpandTemplate(tmplStr, ctx)
}
