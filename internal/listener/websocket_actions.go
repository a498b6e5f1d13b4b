package listener

import (
	"encoding/json"
	"fmt"

	"github.com/pixil98/go-adventure/internal/camera"
	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/scene"
)

// clientEnvelope is a message from the browser.
type clientEnvelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// serverEnvelope is a message to the browser.
type serverEnvelope struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

type keyPayload struct {
	Code string `json:"code"`
}

type clickPayload struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type viewportPayload struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type interactPayload struct {
	Kind string `json:"kind"`
}

type riddlePayload struct {
	Category string `json:"category"`
}

type answerPayload struct {
	Text string `json:"text"`
}

type rpsPayload struct {
	Choice string `json:"choice"`
}

type helloPayload struct {
	Session string `json:"session"`
}

type textPayload struct {
	Text string `json:"text"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// decodeAction turns a client envelope into an action to run against the game. Unbound keys
// are ignored like any other key the game does not use.
func decodeAction(env clientEnvelope) (func(g *game.Session) error, error) {
	switch env.Type {
	case "key_down", "key_up":
		var p keyPayload
		if err := decodePayload(env, &p); err != nil {
			return nil, err
		}
		down := env.Type == "key_down"
		return func(g *game.Session) error {
			if down {
				g.KeyDown(p.Code)
			} else {
				g.KeyUp(p.Code)
			}
			return nil
		}, nil

	case "release_all":
		return func(g *game.Session) error {
			g.ReleaseAll()
			return nil
		}, nil

	case "viewport":
		var p viewportPayload
		if err := decodePayload(env, &p); err != nil {
			return nil, err
		}
		return func(g *game.Session) error {
			return g.SetViewport(camera.Viewport{Width: p.Width, Height: p.Height})
		}, nil

	case "click":
		var p clickPayload
		if err := decodePayload(env, &p); err != nil {
			return nil, err
		}
		return func(g *game.Session) error {
			if p.Width != 0 || p.Height != 0 {
				if err := g.SetViewport(camera.Viewport{Width: p.Width, Height: p.Height}); err != nil {
					return err
				}
			}
			_, err := g.Click(p.X, p.Y)
			return err
		}, nil

	case "interact":
		var p interactPayload
		if err := decodePayload(env, &p); err != nil {
			return nil, err
		}
		return func(g *game.Session) error {
			_, err := g.InteractKind(scene.Kind(p.Kind))
			return err
		}, nil

	case "riddle":
		var p riddlePayload
		if err := decodePayload(env, &p); err != nil {
			return nil, err
		}
		return func(g *game.Session) error {
			_, err := g.OpenRiddle(game.Category(p.Category))
			return err
		}, nil

	case "answer":
		var p answerPayload
		if err := decodePayload(env, &p); err != nil {
			return nil, err
		}
		return func(g *game.Session) error {
			_, err := g.SubmitAnswer(p.Text)
			return err
		}, nil

	case "buy":
		return func(g *game.Session) error {
			_, err := g.BuyKey()
			return err
		}, nil

	case "rps":
		var p rpsPayload
		if err := decodePayload(env, &p); err != nil {
			return nil, err
		}
		return func(g *game.Session) error {
			_, err := g.ChooseRPS(game.Choice(p.Choice))
			return err
		}, nil

	case "close":
		return func(g *game.Session) error {
			g.ClosePanel()
			return nil
		}, nil

	default:
		return nil, fmt.Errorf("%q: %w", env.Type, ErrUnknownMessage)
	}
}

func decodePayload(env clientEnvelope, v any) error {
	if len(env.Payload) == 0 {
		return fmt.Errorf("%s: missing payload: %w", env.Type, ErrBadPayload)
	}
	if err := json.Unmarshal(env.Payload, v); err != nil {
		return fmt.Errorf("%s: %w: %w", env.Type, ErrBadPayload, err)
	}
	return nil
}
