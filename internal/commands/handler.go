package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/storage"
)

// Actor is the connection a command runs for.
type Actor interface {
	// Do runs fn against the actor's game on the game's own goroutine.
	Do(ctx context.Context, fn func(g *game.Session) error) error
	// Reply writes text straight back to the actor.
	Reply(text string) error
	// Quit ends the actor's connection after the current command.
	Quit()
}

// ParsedInput represents a validated and parsed command input.
type ParsedInput struct {
	Spec  *InputSpec
	Raw   string // Original player input
	Value any    // Parsed value: int for number, string for string
}

// CommandContext is everything a compiled command needs at run time.
type CommandContext struct {
	Actor  Actor
	Inputs map[string]any
	// Config holds the command's config strings with inputs already expanded.
	Config map[string]string
}

// CommandFunc is the signature for compiled command functions.
type CommandFunc func(ctx context.Context, cmdCtx *CommandContext) error

// ConfigRequirement names a config key a handler reads.
type ConfigRequirement struct {
	Name     string
	Required bool
	// Raw keys skip input expansion and reach the handler as written.
	Raw bool
}

// HandlerSpec describes the config a handler expects.
type HandlerSpec struct {
	Config []ConfigRequirement
}

// HandlerFactory creates CommandFuncs from command configurations.
type HandlerFactory interface {
	// Spec describes the handler's config. It may be nil.
	Spec() *HandlerSpec
	// ValidateConfig validates that the config contains required fields.
	ValidateConfig(config map[string]any) error
	// Create creates a CommandFunc.
	Create() (CommandFunc, error)
}

// compiledCommand holds a command that's been validated and compiled.
type compiledCommand struct {
	id      string
	cmd     *Command
	cmdFunc CommandFunc
	raw     map[string]bool
}

type Handler struct {
	store     storage.Storer[*Command]
	factories map[string]HandlerFactory
	compiled  map[string]*compiledCommand
}

func NewHandler(c storage.Storer[*Command]) *Handler {
	h := &Handler{
		store:     c,
		factories: make(map[string]HandlerFactory),
		compiled:  make(map[string]*compiledCommand),
	}

	// Register built-in handlers
	builtins := map[string]HandlerFactory{
		"key":      &KeyHandlerFactory{},
		"click":    &ClickHandlerFactory{},
		"interact": &InteractHandlerFactory{},
		"riddle":   &RiddleHandlerFactory{},
		"answer":   &AnswerHandlerFactory{},
		"buy":      &BuyHandlerFactory{},
		"rps":      &RPSHandlerFactory{},
		"close":    &CloseHandlerFactory{},
		"look":     &LookHandlerFactory{},
		"wait":     &WaitHandlerFactory{},
		"quit":     &QuitHandlerFactory{},
		"help":     NewHelpHandlerFactory(c),
	}
	for name, f := range builtins {
		_ = h.RegisterFactory(name, f)
	}

	return h
}

// RegisterFactory registers a handler factory by name.
// The name must match the "handler" field in command JSON definitions.
func (h *Handler) RegisterFactory(name string, factory HandlerFactory) error {
	if name == "" {
		return fmt.Errorf("handler name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("handler factory cannot be nil")
	}
	if _, exists := h.factories[name]; exists {
		return fmt.Errorf("handler factory %q already registered", name)
	}
	h.factories[name] = factory
	return nil
}

// CompileAll compiles all commands from the store.
// Call this after all handler factories have been registered.
func (h *Handler) CompileAll() error {
	for _, id := range h.store.Keys() {
		err := h.compile(id, h.store.Get(id))
		if err != nil {
			return fmt.Errorf("compiling command %q: %w", id, err)
		}
	}
	return nil
}

func (h *Handler) compile(id string, cmd *Command) error {
	factory, ok := h.factories[cmd.Handler]
	if !ok {
		return fmt.Errorf("unknown handler %q", cmd.Handler)
	}

	if spec := factory.Spec(); spec != nil {
		for _, req := range spec.Config {
			if _, ok := cmd.Config[req.Name]; req.Required && !ok {
				return fmt.Errorf("validating config: %q is required", req.Name)
			}
		}
	}

	if err := factory.ValidateConfig(cmd.Config); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}

	cmdFunc, err := factory.Create()
	if err != nil {
		return fmt.Errorf("creating handler: %w", err)
	}

	compiled := &compiledCommand{
		id:      id,
		cmd:     cmd,
		cmdFunc: cmdFunc,
		raw:     map[string]bool{},
	}
	if spec := factory.Spec(); spec != nil {
		for _, req := range spec.Config {
			if req.Raw {
				compiled.raw[req.Name] = true
			}
		}
	}
	for _, name := range cmd.names(id) {
		if other, ok := h.compiled[name]; ok {
			return fmt.Errorf("name %q is already used by command %q", name, other.id)
		}
		h.compiled[name] = compiled
	}
	return nil
}

// Exec parses a line of input and runs the command it names.
func (h *Handler) Exec(ctx context.Context, actor Actor, cmdName string, rawArgs ...string) error {
	compiled, ok := h.compiled[strings.ToLower(cmdName)]
	if !ok {
		return NewUserError(fmt.Sprintf("Unknown command: %s. Type 'help' for a list.", cmdName))
	}

	parsed, err := h.parseInputs(compiled.cmd.Inputs, rawArgs)
	if err != nil {
		return err
	}

	inputs := make(map[string]any, len(parsed))
	for _, in := range parsed {
		inputs[in.Spec.Name] = in.Value
	}

	config := make(map[string]string, len(compiled.cmd.Config))
	inputCtx := &InputContext{Inputs: inputs}
	for k, v := range compiled.cmd.Config {
		s, _ := v.(string)
		if compiled.raw[k] {
			config[k] = s
			continue
		}
		expanded, err := expandInputTemplate(s, inputCtx)
		if err != nil {
			return fmt.Errorf("expanding config %q: %w", k, err)
		}
		config[k] = expanded
	}

	err = compiled.cmdFunc(ctx, &CommandContext{
		Actor:  actor,
		Inputs: inputs,
		Config: config,
	})
	return userFacing(err)
}

// parseInputs validates raw string arguments against input specs.
func (h *Handler) parseInputs(specs []InputSpec, rawArgs []string) ([]ParsedInput, error) {
	// Count required inputs (rest inputs only need 1 word minimum)
	requiredCount := 0
	for _, spec := range specs {
		if spec.Required {
			requiredCount++
		}
	}

	if len(rawArgs) < requiredCount {
		if missing := specs[len(rawArgs)].Missing; missing != "" && specs[len(rawArgs)].Required {
			return nil, NewUserError(missing)
		}
		return nil, NewUserError(fmt.Sprintf("Expected at least %d argument(s), got %d.", requiredCount, len(rawArgs)))
	}

	// If no rest input, check we don't have too many args
	hasRest := len(specs) > 0 && specs[len(specs)-1].Rest
	if !hasRest && len(rawArgs) > len(specs) {
		return nil, NewUserError(fmt.Sprintf("Expected at most %d argument(s), got %d.", len(specs), len(rawArgs)))
	}

	inputs := make([]ParsedInput, 0, len(specs))
	argIndex := 0

	for i := range specs {
		spec := &specs[i]

		if argIndex >= len(rawArgs) {
			continue
		}

		var raw string
		if spec.Rest {
			// Consume all remaining args joined with spaces
			raw = strings.Join(rawArgs[argIndex:], " ")
			argIndex = len(rawArgs)
		} else {
			raw = rawArgs[argIndex]
			argIndex++
		}

		value, err := h.parseValue(spec.Type, raw)
		if err != nil {
			return nil, err
		}

		inputs = append(inputs, ParsedInput{
			Spec:  spec,
			Raw:   raw,
			Value: value,
		})
	}

	return inputs, nil
}

// parseValue parses a raw string into the appropriate type.
func (h *Handler) parseValue(inputType InputType, raw string) (any, error) {
	switch inputType {
	case InputTypeString:
		return raw, nil

	case InputTypeNumber:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, NewUserError(fmt.Sprintf("%q is not a valid number.", raw))
		}
		return n, nil

	default:
		return nil, fmt.Errorf("unknown parameter type %q", inputType)
	}
}
