package listener

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pixil98/go-adventure/internal/messaging"
	"github.com/pixil98/go-adventure/internal/player"
	"github.com/pixil98/go-adventure/internal/session"
)

const shutdownTimeout = 5 * time.Second

// WebsocketListener serves the browser client: game traffic on /ws and, when a static directory
// is set, the client's files on every other path.
type WebsocketListener struct {
	port      uint16
	staticDir string
	gw        *WebsocketGateway
}

func NewWebsocketListener(port uint16, staticDir string, gw *WebsocketGateway) *WebsocketListener {
	return &WebsocketListener{
		port:      port,
		staticDir: staticDir,
		gw:        gw,
	}
}

func (l *WebsocketListener) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/ws", l.gw)
	if l.staticDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(l.staticDir)))
	}
	return mux
}

func (l *WebsocketListener) Start(ctx context.Context) error {
	connCtx, cancelConns := context.WithCancel(context.WithoutCancel(ctx))
	defer cancelConns()

	svr := &http.Server{
		Addr:        fmt.Sprintf(":%d", l.port),
		Handler:     l.Handler(),
		BaseContext: func(net.Listener) context.Context { return connCtx },
	}

	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			// Hijacked websocket connections are not tracked by Shutdown.
			cancelConns()
			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
			defer cancel()
			if err := svr.Shutdown(shutdownCtx); err != nil {
				slog.ErrorContext(ctx, "shutting down websocket listener", "error", err)
			}
		case <-done:
		}
	}()

	slog.InfoContext(ctx, "listening for websocket", "port", l.port, "static", l.staticDir)

	err := svr.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving websocket on port %d: %w", l.port, err)
	}
	return nil
}

// WebsocketGateway gives each websocket connection its own game session.
type WebsocketGateway struct {
	sessions player.Sessions
	subs     player.Subscriber
	upgrader websocket.Upgrader
}

func NewWebsocketGateway(sessions player.Sessions, subs player.Subscriber) *WebsocketGateway {
	return &WebsocketGateway{
		sessions: sessions,
		subs:     subs,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

type wsClient struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
}

func (c *wsClient) send(env serverEnvelope) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteJSON(env)
}

func (c *wsClient) sendError(err error) error {
	return c.send(serverEnvelope{Type: "error", Payload: errorPayload{Message: err.Error()}})
}

func (g *WebsocketGateway) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	conn, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.WarnContext(ctx, "websocket upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	defer func() { _ = conn.Close() }()

	if err := g.serve(ctx, &wsClient{conn: conn}); err != nil {
		slog.WarnContext(ctx, "websocket session", "remote", r.RemoteAddr, "error", err)
	}
}

func (g *WebsocketGateway) serve(ctx context.Context, client *wsClient) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	host, err := g.sessions.Open(ctx)
	if err != nil {
		if errors.Is(err, session.ErrFull) {
			return client.sendError(err)
		}
		return fmt.Errorf("opening session: %w", err)
	}
	defer func() {
		if err := g.sessions.Close(context.WithoutCancel(ctx), host.Id()); err != nil {
			slog.DebugContext(ctx, "closing session", "session", host.Id(), "error", err)
		}
	}()

	forward := func(kind string, wrap func([]byte) any) func([]byte) {
		return func(data []byte) {
			if err := client.send(serverEnvelope{Type: kind, Payload: wrap(data)}); err != nil {
				slog.DebugContext(ctx, "websocket write", "session", host.Id(), "error", err)
			}
		}
	}
	raw := func(data []byte) any { return json.RawMessage(data) }
	subs := map[string]func([]byte){
		messaging.SessionSubject(host.Id(), messaging.KindSnapshot): forward("snapshot", raw),
		messaging.SessionSubject(host.Id(), messaging.KindStatus):   forward("status", raw),
		messaging.SessionSubject(host.Id(), messaging.KindMessage): forward("message", func(data []byte) any {
			return textPayload{Text: string(data)}
		}),
	}
	for subject, handler := range subs {
		unsub, err := g.subs.Subscribe(subject, handler)
		if err != nil {
			return fmt.Errorf("subscribing to %s: %w", subject, err)
		}
		defer unsub()
	}

	if err := client.send(serverEnvelope{Type: "hello", Payload: helloPayload{Session: host.Id()}}); err != nil {
		return err
	}

	// Unblock the read loop when the session or server ends.
	go func() {
		select {
		case <-host.Done():
		case <-ctx.Done():
		}
		_ = client.conn.Close()
	}()

	for {
		_, data, err := client.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) && ctx.Err() == nil {
				return err
			}
			return nil
		}

		var env clientEnvelope
		if err := json.Unmarshal(data, &env); err != nil {
			if err := client.sendError(fmt.Errorf("%w: %w", ErrBadPayload, err)); err != nil {
				return err
			}
			continue
		}

		fn, err := decodeAction(env)
		if err == nil {
			err = host.Do(ctx, fn)
		}
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if err := client.sendError(err); err != nil {
				return err
			}
		}
	}
}
