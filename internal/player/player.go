package player

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/pixil98/go-adventure/internal/commands"
	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/session"
)

const msgBuffer = 32

// Game is the running session a player drives.
type Game interface {
	Do(ctx context.Context, fn func(g *game.Session) error) error
	Done() <-chan struct{}
}

// Player is one text connection playing one game.
type Player struct {
	conn       io.ReadWriter
	game       Game
	cmdHandler *commands.Handler

	writeMu sync.Mutex
	msgs    chan string
	quit    bool
}

func NewPlayer(conn io.ReadWriter, g Game, cmd *commands.Handler) *Player {
	return &Player{
		conn:       conn,
		game:       g,
		cmdHandler: cmd,
		msgs:       make(chan string, msgBuffer),
	}
}

// Do implements commands.Actor.
func (p *Player) Do(ctx context.Context, fn func(g *game.Session) error) error {
	return p.game.Do(ctx, fn)
}

// Reply implements commands.Actor.
func (p *Player) Reply(text string) error {
	return p.writeLine(text)
}

// Quit implements commands.Actor.
func (p *Player) Quit() {
	p.quit = true
}

// Deliver queues a game message for display. It never blocks; messages are dropped when the
// player falls too far behind.
func (p *Player) Deliver(text string) {
	if text == "" {
		return
	}
	select {
	case p.msgs <- text:
	default:
		slog.Warn("dropping message for slow player", "message", text)
	}
}

// DeliverStatus decodes a status notice and queues it for display.
func (p *Player) DeliverStatus(data []byte) {
	var n game.Notice
	if err := json.Unmarshal(data, &n); err != nil {
		slog.Warn("decoding status notice", "error", err)
		return
	}
	if n.Level == game.LevelWarn {
		p.Deliver("! " + n.Text)
		return
	}
	p.Deliver("* " + n.Text)
}

func (p *Player) Play(ctx context.Context) error {
	// Start goroutine to read input lines into a channel
	inputChan := make(chan string)
	inputErrChan := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(p.conn)
		for scanner.Scan() {
			select {
			case inputChan <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		inputErrChan <- scanner.Err()
		close(inputChan)
	}()

	err := p.writeLine("Welcome! Type 'help' for a list of commands.")
	if err != nil {
		return err
	}
	err = p.exec(ctx, "look")
	if err != nil {
		return fmt.Errorf("initial look failed: %w", err)
	}
	err = p.prompt(ctx)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-p.game.Done():
			if err := p.writeLine("\nThe game has ended."); err != nil {
				slog.WarnContext(ctx, "failed to write disconnect message to player", "error", err)
			}
			return session.ErrClosed

		case msg := <-p.msgs:
			err = p.writeLine("\n" + msg)
			if err != nil {
				return err
			}
			err = p.prompt(ctx)
			if err != nil {
				return err
			}

		case line, ok := <-inputChan:
			if !ok {
				// Input channel closed (connection lost).
				select {
				case err := <-inputErrChan:
					return err
				default:
					return nil
				}
			}

			line = strings.TrimSpace(line)
			if line != "" {
				err = p.exec(ctx, line)
				if err != nil {
					return fmt.Errorf("command execution failed: %w", err)
				}
			}

			if p.quit {
				return nil
			}

			err = p.prompt(ctx)
			if err != nil {
				return err
			}
		}
	}
}

// exec runs one line of input. User errors are written back; anything else is returned.
func (p *Player) exec(ctx context.Context, line string) error {
	parts := strings.Fields(line)
	err := p.cmdHandler.Exec(ctx, p, parts[0], parts[1:]...)
	if err == nil {
		return nil
	}

	var userErr *commands.UserError
	if errors.As(err, &userErr) {
		return p.writeLine(userErr.Message)
	}
	return err
}

func (p *Player) prompt(ctx context.Context) error {
	prompt := "> "
	var inv game.Inventory
	err := p.game.Do(ctx, func(g *game.Session) error {
		inv = g.Inventory()
		return nil
	})
	if err == nil {
		prompt = fmt.Sprintf("[%d coins/%d keys] > ", inv.Coins, inv.Keys)
	}
	return p.write(prompt)
}

func (p *Player) writeLine(msg string) error {
	return p.write(msg + "\n\n")
}

func (p *Player) write(s string) error {
	p.writeMu.Lock()
	defer p.writeMu.Unlock()
	_, err := p.conn.Write([]byte(s))
	return err
}
