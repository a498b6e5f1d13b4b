package command

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pixil98/go-adventure/internal/listener"
	"github.com/pixil98/go-errors"
	"golang.org/x/crypto/ssh"
)

type ListenerType int

const (
	ListenerTypeTelnet ListenerType = iota
	ListenerTypeSSH
	ListenerTypeWebsocket
)

var listenerTypeNames = map[ListenerType]string{
	ListenerTypeTelnet:    "telnet",
	ListenerTypeSSH:       "ssh",
	ListenerTypeWebsocket: "websocket",
}

func (lt ListenerType) String() string {
	if name, ok := listenerTypeNames[lt]; ok {
		return name
	}
	return fmt.Sprintf("ListenerType(%d)", int(lt))
}

func (lt *ListenerType) UnmarshalText(text []byte) error {
	switch string(text) {
	case "telnet":
		*lt = ListenerTypeTelnet
	case "ssh":
		*lt = ListenerTypeSSH
	case "websocket":
		*lt = ListenerTypeWebsocket
	default:
		return fmt.Errorf("unknown listener type: %s", text)
	}
	return nil
}

type ListenerConfig struct {
	Protocol    ListenerType `json:"protocol"`
	Port        uint16       `json:"port"`
	HostKeyPath string       `json:"host_key_path,omitempty"`
	StaticDir   string       `json:"static_dir,omitempty"`
}

func (cl *ListenerConfig) validate() error {
	el := errors.NewErrorList()

	if cl.Port == 0 {
		el.Add(fmt.Errorf("port must be set to a positive integer"))
	}
	if cl.HostKeyPath != "" && cl.Protocol != ListenerTypeSSH {
		el.Add(fmt.Errorf("host_key_path is only used by ssh listeners"))
	}
	if cl.StaticDir != "" {
		if cl.Protocol != ListenerTypeWebsocket {
			el.Add(fmt.Errorf("static_dir is only used by websocket listeners"))
		} else if fi, err := os.Stat(cl.StaticDir); err != nil {
			el.Add(fmt.Errorf("invalid static_dir %q: %w", cl.StaticDir, err))
		} else if !fi.IsDir() {
			el.Add(fmt.Errorf("static_dir %q is not a directory", cl.StaticDir))
		}
	}

	return el.Err()
}

type startable interface {
	Start(ctx context.Context) error
}

func (cl *ListenerConfig) BuildListener(cm *listener.ConnectionManager, gw *listener.WebsocketGateway) (startable, error) {
	switch cl.Protocol {
	case ListenerTypeTelnet:
		return listener.NewTelnetListener(cl.Port, cm), nil
	case ListenerTypeSSH:
		hostKey, err := cl.loadOrGenerateHostKey()
		if err != nil {
			return nil, fmt.Errorf("setting up ssh host key: %w", err)
		}
		return listener.NewSshListener(cl.Port, cm, hostKey), nil
	case ListenerTypeWebsocket:
		return listener.NewWebsocketListener(cl.Port, cl.StaticDir, gw), nil
	default:
		return nil, fmt.Errorf("unknown listener type: %v", cl.Protocol)
	}
}

// loadOrGenerateHostKey reads the ssh host key. A missing key file is created so the server
// keeps its identity across restarts; without a path the key lives only as long as the process.
func (cl *ListenerConfig) loadOrGenerateHostKey() (ssh.Signer, error) {
	if cl.HostKeyPath == "" {
		slog.Warn("no host_key_path configured for ssh listener, generating ephemeral key")
		_, signer, err := generateHostKey()
		return signer, err
	}

	keyBytes, err := os.ReadFile(cl.HostKeyPath)
	if os.IsNotExist(err) {
		return cl.createHostKey()
	}
	if err != nil {
		return nil, fmt.Errorf("reading host key %q: %w", cl.HostKeyPath, err)
	}

	signer, err := ssh.ParsePrivateKey(keyBytes)
	if err != nil {
		return nil, fmt.Errorf("parsing host key %q: %w", cl.HostKeyPath, err)
	}
	return signer, nil
}

func (cl *ListenerConfig) createHostKey() (ssh.Signer, error) {
	key, signer, err := generateHostKey()
	if err != nil {
		return nil, err
	}

	block, err := ssh.MarshalPrivateKey(key, "adventure ssh host key")
	if err != nil {
		return nil, fmt.Errorf("encoding host key: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(cl.HostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("creating host key directory: %w", err)
	}
	if err := os.WriteFile(cl.HostKeyPath, pem.EncodeToMemory(block), 0o600); err != nil {
		return nil, fmt.Errorf("writing host key %q: %w", cl.HostKeyPath, err)
	}

	slog.Info("generated ssh host key", "path", cl.HostKeyPath, "fingerprint", ssh.FingerprintSHA256(signer.PublicKey()))
	return signer, nil
}

func generateHostKey() (ed25519.PrivateKey, ssh.Signer, error) {
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("generating host key: %w", err)
	}
	signer, err := ssh.NewSignerFromKey(key)
	if err != nil {
		return nil, nil, fmt.Errorf("creating signer from host key: %w", err)
	}
	return key, signer, nil
}
