package commands

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestCommand_Validate(t *testing.T) {
	tests := map[string]struct {
		cmd    Command
		expErr string
	}{
		"empty handler": {
			cmd:    Command{},
			expErr: "command handler not set",
		},
		"valid command with no inputs": {
			cmd: Command{
				Handler: "quit",
			},
		},
		"valid command with inputs": {
			cmd: Command{
				Handler: "answer",
				Inputs: []InputSpec{
					{Name: "text", Type: InputTypeString, Required: true, Rest: true},
				},
			},
		},
		"input missing name": {
			cmd: Command{
				Handler: "test",
				Inputs: []InputSpec{
					{Type: InputTypeString},
				},
			},
			expErr: "input 0: name is required",
		},
		"input missing type": {
			cmd: Command{
				Handler: "test",
				Inputs: []InputSpec{
					{Name: "foo"},
				},
			},
			expErr: `input "foo": type is required`,
		},
		"input unknown type": {
			cmd: Command{
				Handler: "test",
				Inputs: []InputSpec{
					{Name: "foo", Type: "bogus"},
				},
			},
			expErr: `input "foo": unknown type "bogus"`,
		},
		"rest input not last": {
			cmd: Command{
				Handler: "test",
				Inputs: []InputSpec{
					{Name: "first", Type: InputTypeString, Rest: true},
					{Name: "second", Type: InputTypeString},
				},
			},
			expErr: `input "first": only the last input can have rest=true`,
		},
		"blank alias": {
			cmd:    Command{Handler: "look", Aliases: []string{"l", ""}},
			expErr: "alias 1: must be a single word",
		},
		"alias with space": {
			cmd:    Command{Handler: "look", Aliases: []string{"look around"}},
			expErr: "alias 0: must be a single word",
		},
		"non-string config": {
			cmd: Command{
				Handler: "wait",
				Config:  map[string]any{"ticks": 5},
			},
			expErr: `config "ticks": must be a string`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.cmd.Validate()
			if tt.expErr == "" {
				testutil.AssertEqual(t, "error", err, nil)
				return
			}
			testutil.AssertErrorContains(t, err, tt.expErr)
		})
	}
}

func TestCommand_Usage(t *testing.T) {
	cmd := Command{
		Inputs: []InputSpec{
			{Name: "x", Type: InputTypeNumber, Required: true},
			{Name: "y", Type: InputTypeNumber, Required: true},
			{Name: "note", Type: InputTypeString, Rest: true},
		},
	}
	testutil.AssertEqual(t, "usage", cmd.Usage(), " <x> <y> [note...]")
}
