package commands

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/pixil98/go-adventure/internal/display"
	"github.com/pixil98/go-adventure/internal/storage"
)

// HelpHandlerFactory creates handlers that display command help.
type HelpHandlerFactory struct {
	commands storage.Storer[*Command]
}

// NewHelpHandlerFactory creates a new HelpHandlerFactory.
func NewHelpHandlerFactory(commands storage.Storer[*Command]) *HelpHandlerFactory {
	return &HelpHandlerFactory{commands: commands}
}

func (f *HelpHandlerFactory) Spec() *HandlerSpec {
	return &HandlerSpec{
		Config: []ConfigRequirement{
			{Name: "command", Required: false},
		},
	}
}

func (f *HelpHandlerFactory) ValidateConfig(config map[string]any) error {
	return nil
}

func (f *HelpHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		command := cmdCtx.Config["command"]
		if command != "" {
			return f.showCommand(cmdCtx.Actor, command)
		}

		return f.listCommands(cmdCtx.Actor)
	}, nil
}

// listCommands displays all commands grouped by category.
func (f *HelpHandlerFactory) listCommands(actor Actor) error {
	groups := make(map[string][]string)
	for _, id := range f.commands.Keys() {
		category := f.commands.Get(id).Category
		if category == "" {
			category = "other"
		}
		groups[category] = append(groups[category], id)
	}

	categories := make([]string, 0, len(groups))
	for c := range groups {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	var sb strings.Builder
	for _, c := range categories {
		fmt.Fprintf(&sb, "%s:\n", display.Capitalize(c))
		for _, id := range groups[c] {
			cmd := f.commands.Get(id)
			fmt.Fprintf(&sb, "  %-24s %s\n", id+cmd.Usage(), cmd.Description)
		}
	}
	sb.WriteString("Type 'help <command>' for details.")

	return actor.Reply(sb.String())
}

// showCommand displays help for a single command.
func (f *HelpHandlerFactory) showCommand(actor Actor, name string) error {
	id, cmd := f.lookup(strings.ToLower(name))
	if cmd == nil {
		return NewUserError(fmt.Sprintf("No help available for %q.", name))
	}

	text := fmt.Sprintf("Usage: %s%s\n%s", id, cmd.Usage(), display.Capitalize(cmd.Description))
	if len(cmd.Aliases) > 0 {
		text += "\nAliases: " + strings.Join(cmd.Aliases, ", ")
	}
	return actor.Reply(display.Wrap(text))
}

// lookup finds a command by id or alias.
func (f *HelpHandlerFactory) lookup(name string) (string, *Command) {
	if cmd := f.commands.Get(name); cmd != nil {
		return name, cmd
	}
	for _, id := range f.commands.Keys() {
		cmd := f.commands.Get(id)
		if slices.Contains(cmd.names(id), name) {
			return id, cmd
		}
	}
	return "", nil
}
