package command

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nats-io/nats.go"
	"github.com/pixil98/go-adventure/internal/messaging"
	"github.com/pixil98/go-adventure/internal/monitor"
	"github.com/pixil98/go-service/service"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	refresh, err := cfg.refresh()
	if err != nil {
		return nil, err
	}
	forget, err := cfg.forgetAfter()
	if err != nil {
		return nil, err
	}

	board := monitor.NewBoard()
	return service.WorkerList{
		"monitor": &monitorWorker{
			url:       cfg.natsURL(),
			board:     board,
			dashboard: monitor.NewDashboard(board, refresh, forget),
		},
	}, nil
}

// monitorWorker feeds the board from the bus and draws it.
type monitorWorker struct {
	url       string
	board     *monitor.Board
	dashboard *monitor.Dashboard
}

func (w *monitorWorker) Start(ctx context.Context) error {
	nc, err := nats.Connect(w.url)
	if err != nil {
		return fmt.Errorf("connecting to nats at %s: %w", w.url, err)
	}
	defer nc.Close()

	handler := func(msg *nats.Msg) {
		if err := w.board.Update(msg.Subject, msg.Data); err != nil {
			slog.DebugContext(ctx, "ignoring bus message", "subject", msg.Subject, "error", err)
		}
	}

	for _, subject := range []string{
		messaging.AllSnapshots,
		messaging.SessionSubject("*", messaging.KindMessage),
	} {
		sub, err := nc.Subscribe(subject, handler)
		if err != nil {
			return fmt.Errorf("subscribing to %s: %w", subject, err)
		}
		defer func() { _ = sub.Unsubscribe() }()
	}

	return w.dashboard.Run(ctx)
}
