package command

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pixil98/go-adventure/internal/assets"
	"github.com/pixil98/go-adventure/internal/commands"
	"github.com/pixil98/go-adventure/internal/driver"
	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-testutil"
	"golang.org/x/crypto/ssh"
)

func validConfig() Config {
	return Config{
		Listeners: []ListenerConfig{{Protocol: ListenerTypeTelnet, Port: 4000}},
		Storage: StorageConfig{
			Commands: AssetConfig[*commands.Command]{Path: "../../../assets/commands"},
			Riddles:  AssetConfig[*game.Riddle]{Path: "../../../assets/riddles"},
			Models:   AssetConfig[*assets.ModelSpec]{Path: "../../../assets/models"},
		},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := map[string]struct {
		mutate func(c *Config)
		expErr string
	}{
		"valid": {
			mutate: func(c *Config) {},
		},
		"frame interval too short": {
			mutate: func(c *Config) { c.FrameInterval = "500us" },
			expErr: "frame_interval must be between 1ms and 1s",
		},
		"frame interval too long": {
			mutate: func(c *Config) { c.FrameInterval = "2s" },
			expErr: "frame_interval must be between 1ms and 1s",
		},
		"frame interval unparsable": {
			mutate: func(c *Config) { c.FrameInterval = "soon" },
			expErr: "parsing frame_interval",
		},
		"no listeners": {
			mutate: func(c *Config) { c.Listeners = nil },
			expErr: "at least one listener is required",
		},
		"listener without port": {
			mutate: func(c *Config) { c.Listeners[0].Port = 0 },
			expErr: "listener 0: port must be set to a positive integer",
		},
		"host key on telnet": {
			mutate: func(c *Config) { c.Listeners[0].HostKeyPath = "/tmp/key" },
			expErr: "host_key_path is only used by ssh listeners",
		},
		"missing static dir": {
			mutate: func(c *Config) {
				c.Listeners[0] = ListenerConfig{Protocol: ListenerTypeWebsocket, Port: 8080, StaticDir: "/does/not/exist"}
			},
			expErr: "invalid static_dir",
		},
		"missing storage path": {
			mutate: func(c *Config) { c.Storage.Riddles.Path = "" },
			expErr: "riddles: path is required",
		},
		"bad nats timeout": {
			mutate: func(c *Config) { c.Nats.StartTimeout = "-1s" },
			expErr: "start_timeout must be positive",
		},
		"negative queue size": {
			mutate: func(c *Config) { c.Session.QueueSize = -1 },
			expErr: "queue_size must not be negative",
		},
		"negative max sessions": {
			mutate: func(c *Config) { c.Session.MaxSessions = -2 },
			expErr: "max_sessions must not be negative",
		},
		"bad game config": {
			mutate: func(c *Config) { c.Game.DoorOpenDuration = "slowly" },
			expErr: "parsing door_open_duration",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(&c)

			err := c.Validate()
			if tt.expErr == "" {
				testutil.AssertEqual(t, "error", err, nil)
				return
			}
			testutil.AssertErrorContains(t, err, tt.expErr)
		})
	}
}

func TestConfig_frameLength(t *testing.T) {
	tests := map[string]struct {
		interval string
		exp      time.Duration
	}{
		"default":  {exp: driver.DefaultFrameLength},
		"explicit": {interval: "20ms", exp: 20 * time.Millisecond},
		"minimum":  {interval: "1ms", exp: time.Millisecond},
		"maximum":  {interval: "1s", exp: time.Second},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := Config{FrameInterval: tt.interval}
			got, err := c.frameLength()
			testutil.AssertEqual(t, "error", err, nil)
			testutil.AssertEqual(t, "frame length", got, tt.exp)
		})
	}
}

func TestListenerType_UnmarshalText(t *testing.T) {
	tests := map[string]struct {
		in     string
		exp    ListenerType
		expErr string
	}{
		"telnet":    {in: `{"protocol":"telnet"}`, exp: ListenerTypeTelnet},
		"ssh":       {in: `{"protocol":"ssh"}`, exp: ListenerTypeSSH},
		"websocket": {in: `{"protocol":"websocket"}`, exp: ListenerTypeWebsocket},
		"unknown":   {in: `{"protocol":"gopher"}`, expErr: "unknown listener type: gopher"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var lc ListenerConfig
			err := json.Unmarshal([]byte(tt.in), &lc)
			if tt.expErr != "" {
				testutil.AssertErrorContains(t, err, tt.expErr)
				return
			}
			testutil.AssertEqual(t, "error", err, nil)
			testutil.AssertEqual(t, "protocol", lc.Protocol, tt.exp)
		})
	}
}

func TestListenerConfig_BuildListener(t *testing.T) {
	dir := t.TempDir()
	keyPath := filepath.Join(dir, "host_key")
	if err := os.WriteFile(keyPath, []byte("not a key"), 0o600); err != nil {
		t.Fatalf("writing key: %v", err)
	}

	tests := map[string]struct {
		cfg    ListenerConfig
		expErr string
	}{
		"telnet":            {cfg: ListenerConfig{Protocol: ListenerTypeTelnet, Port: 4000}},
		"websocket":         {cfg: ListenerConfig{Protocol: ListenerTypeWebsocket, Port: 8080}},
		"ssh ephemeral key": {cfg: ListenerConfig{Protocol: ListenerTypeSSH, Port: 2222}},
		"ssh bad key": {
			cfg:    ListenerConfig{Protocol: ListenerTypeSSH, Port: 2222, HostKeyPath: keyPath},
			expErr: "parsing host key",
		},
		"ssh key directory": {
			cfg:    ListenerConfig{Protocol: ListenerTypeSSH, Port: 2222, HostKeyPath: dir},
			expErr: "reading host key",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			l, err := tt.cfg.BuildListener(nil, nil)
			if tt.expErr != "" {
				testutil.AssertErrorContains(t, err, tt.expErr)
				return
			}
			testutil.AssertEqual(t, "error", err, nil)
			if l == nil {
				t.Error("expected a listener")
			}
		})
	}
}

func TestListenerConfig_HostKeyPersisted(t *testing.T) {
	cl := ListenerConfig{Protocol: ListenerTypeSSH, Port: 2222, HostKeyPath: filepath.Join(t.TempDir(), "keys", "host_ed25519")}

	first, err := cl.loadOrGenerateHostKey()
	testutil.AssertEqual(t, "error", err, nil)

	info, err := os.Stat(cl.HostKeyPath)
	testutil.AssertEqual(t, "stat error", err, nil)
	testutil.AssertEqual(t, "mode", info.Mode().Perm(), os.FileMode(0o600))

	second, err := cl.loadOrGenerateHostKey()
	testutil.AssertEqual(t, "error", err, nil)
	testutil.AssertEqual(t, "fingerprint",
		ssh.FingerprintSHA256(second.PublicKey()), ssh.FingerprintSHA256(first.PublicKey()))
}

func TestListenerType_String(t *testing.T) {
	testutil.AssertEqual(t, "ssh", ListenerTypeSSH.String(), "ssh")
	testutil.AssertEqual(t, "unknown", ListenerType(9).String(), "ListenerType(9)")
}
