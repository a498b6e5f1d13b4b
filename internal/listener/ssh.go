package listener

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync"

	"golang.org/x/crypto/ssh"
)

const sshBanner = "Find the coins, solve the riddles and open the hut.\r\n"

type SshListener struct {
	port    uint16
	cm      *ConnectionManager
	hostKey ssh.Signer
}

func NewSshListener(port uint16, cm *ConnectionManager, hostKey ssh.Signer) *SshListener {
	return &SshListener{
		port:    port,
		cm:      cm,
		hostKey: hostKey,
	}
}

func (l *SshListener) serverConfig() *ssh.ServerConfig {
	config := &ssh.ServerConfig{
		NoClientAuth:  true,
		ServerVersion: "SSH-2.0-adventure",
		BannerCallback: func(ssh.ConnMetadata) string {
			return sshBanner
		},
	}
	config.AddHostKey(l.hostKey)
	return config
}

func (l *SshListener) Start(ctx context.Context) error {
	config := l.serverConfig()

	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", fmt.Sprintf(":%d", l.port))
	if err != nil {
		return fmt.Errorf("listening on port %d: %w", l.port, err)
	}

	slog.InfoContext(ctx, "listening for ssh", "port", l.port)

	connCtx, cancelConns := context.WithCancel(context.WithoutCancel(ctx))
	var wg sync.WaitGroup
	defer func() {
		cancelConns()
		wg.Wait()
	}()

	go func() {
		<-ctx.Done()
		_ = ln.Close()
	}()

	for {
		conn, err := ln.Accept()
		if errors.Is(err, net.ErrClosed) {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("accepting ssh connections: %w", err)
		}
		if err != nil {
			slog.ErrorContext(ctx, "accepting ssh connection", "error", err)
			continue
		}

		wg.Go(func() {
			l.handleConnection(connCtx, conn, config)
		})
	}
}

func (l *SshListener) handleConnection(ctx context.Context, conn net.Conn, config *ssh.ServerConfig) {
	defer func() { _ = conn.Close() }()

	sshConn, chans, reqs, err := ssh.NewServerConn(conn, config)
	if err != nil {
		slog.WarnContext(ctx, "ssh handshake", "remote", conn.RemoteAddr(), "error", err)
		return
	}
	defer func() { _ = sshConn.Close() }()

	logger := slog.With("remote", conn.RemoteAddr().String(), "client", string(sshConn.ClientVersion()))
	logger.InfoContext(ctx, "ssh connection established")

	// Closing the connection ends the channel loop below.
	go func() {
		<-ctx.Done()
		_ = sshConn.Close()
	}()

	go ssh.DiscardRequests(reqs)

	// One game per connection; further session channels are turned away.
	played := false
	for newChan := range chans {
		if newChan.ChannelType() != "session" {
			_ = newChan.Reject(ssh.UnknownChannelType, "unknown channel type")
			continue
		}
		if played {
			_ = newChan.Reject(ssh.Prohibited, "one game per connection")
			continue
		}
		played = true

		l.playChannel(ctx, logger, newChan)
		_ = sshConn.Close()
	}

	logger.InfoContext(ctx, "ssh connection closed")
}

// playChannel waits for the client's shell request and then plays a game on the channel.
func (l *SshListener) playChannel(ctx context.Context, logger *slog.Logger, newChan ssh.NewChannel) {
	ch, requests, err := newChan.Accept()
	if err != nil {
		logger.ErrorContext(ctx, "accepting ssh channel", "error", err)
		return
	}
	defer func() { _ = ch.Close() }()

	// Clients hold back input until the shell request is answered.
	shellReady := make(chan struct{})
	var shellOnce sync.Once
	reqsDone := make(chan struct{})
	go func(in <-chan *ssh.Request) {
		defer close(reqsDone)
		for req := range in {
			switch req.Type {
			case "pty-req":
				// Without a pty the client keeps local echo and line editing.
				_ = req.Reply(false, nil)
			case "shell":
				_ = req.Reply(true, nil)
				shellOnce.Do(func() { close(shellReady) })
			case "exec":
				_ = req.Reply(false, nil)
				_, _ = fmt.Fprint(ch.Stderr(), "commands are not supported, connect without one to play\r\n")
				_ = ch.Close()
			default:
				_ = req.Reply(false, nil)
			}
		}
	}(requests)

	select {
	case <-shellReady:
	case <-reqsDone:
		return
	case <-ctx.Done():
		return
	}

	l.cm.AcceptConnection(ctx, newCRLFReadWriter(ch))
}
