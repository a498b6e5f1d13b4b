package command

import (
	"fmt"

	"github.com/pixil98/go-adventure/internal/driver"
	"github.com/pixil98/go-adventure/internal/listener"
	"github.com/pixil98/go-adventure/internal/messaging"
	"github.com/pixil98/go-adventure/internal/player"
	"github.com/pixil98/go-adventure/internal/session"
	"github.com/pixil98/go-service/service"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	frameLength, err := cfg.frameLength()
	if err != nil {
		return nil, err
	}

	gameCfg, err := cfg.Game.BuildGameConfig()
	if err != nil {
		return nil, fmt.Errorf("building game config: %w", err)
	}

	// Load assets
	riddles, err := cfg.Storage.BuildRiddleBook()
	if err != nil {
		return nil, err
	}
	loader, err := cfg.Storage.BuildLoader()
	if err != nil {
		return nil, err
	}
	cmdHandler, err := cfg.Storage.BuildCommandHandler()
	if err != nil {
		return nil, fmt.Errorf("building command handler: %w", err)
	}

	// Message bus
	natsServer, err := cfg.Nats.buildNatsServer()
	if err != nil {
		return nil, fmt.Errorf("creating nats server: %w", err)
	}

	// Sessions are ticked by the driver and publish over nats
	sessions := session.NewManager(gameCfg, riddles, loader, messaging.NewSessionPublisher(natsServer),
		cfg.Session.opts(frameLength)...)

	frameDriver := driver.NewFrameDriver([]driver.Manager{sessions}, driver.WithFrameLength(frameLength))

	// Create Listeners
	cm := listener.NewConnectionManager(player.NewPlayerManager(cmdHandler, sessions, natsServer))
	gw := listener.NewWebsocketGateway(sessions, natsServer)

	listeners := make(service.WorkerList, len(cfg.Listeners))
	for i, l := range cfg.Listeners {
		lst, err := l.BuildListener(cm, gw)
		if err != nil {
			return nil, fmt.Errorf("creating listener %d: %w", i, err)
		}
		listeners[fmt.Sprintf("listener-%d", i)] = lst
	}

	// Create a worker list
	return service.WorkerList{
		"nats":      natsServer,
		"sessions":  sessions,
		"driver":    frameDriver,
		"listeners": &listeners,
	}, nil
}
