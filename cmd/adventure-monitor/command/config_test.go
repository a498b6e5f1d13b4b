package command

import (
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/pixil98/go-testutil"
)

func TestConfig_Validate(t *testing.T) {
	tests := map[string]struct {
		cfg        Config
		expErr     string
		expRefresh time.Duration
		expForget  time.Duration
		expURL     string
	}{
		"defaults": {
			expRefresh: defaultRefresh,
			expURL:     nats.DefaultURL,
		},
		"explicit": {
			cfg:        Config{NatsURL: "nats://10.0.0.5:4222", RefreshInterval: "1s", ForgetAfter: "5m"},
			expRefresh: time.Second,
			expForget:  5 * time.Minute,
			expURL:     "nats://10.0.0.5:4222",
		},
		"refresh too fast": {
			cfg:    Config{RefreshInterval: "1ms"},
			expErr: "refresh_interval must be at least 10ms",
		},
		"bad forget_after": {
			cfg:    Config{ForgetAfter: "never"},
			expErr: "parsing forget_after",
		},
		"negative forget_after": {
			cfg:    Config{ForgetAfter: "-1m"},
			expErr: "forget_after must be positive",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.expErr != "" {
				testutil.AssertErrorContains(t, err, tt.expErr)
				return
			}
			testutil.AssertEqual(t, "error", err, nil)

			refresh, _ := tt.cfg.refresh()
			forget, _ := tt.cfg.forgetAfter()
			testutil.AssertEqual(t, "refresh", refresh, tt.expRefresh)
			testutil.AssertEqual(t, "forget", forget, tt.expForget)
			testutil.AssertEqual(t, "url", tt.cfg.natsURL(), tt.expURL)
		})
	}
}
