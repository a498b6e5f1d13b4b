package monitor

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

var columns = []string{"SESSION", "READY", "PHASE", "COINS", "KEYS", "FINAL KEY", "POSITION", "MESSAGE"}

// Dashboard draws a Board as a live terminal table.
type Dashboard struct {
	board   *Board
	refresh time.Duration
	maxAge  time.Duration

	app    *tview.Application
	table  *tview.Table
	footer *tview.TextView
}

func NewDashboard(board *Board, refresh, maxAge time.Duration) *Dashboard {
	d := &Dashboard{
		board:   board,
		refresh: refresh,
		maxAge:  maxAge,
		app:     tview.NewApplication(),
		table:   tview.NewTable().SetFixed(1, 1).SetSelectable(true, false),
		footer:  tview.NewTextView().SetDynamicColors(true),
	}

	d.table.SetBorder(true).SetTitle(" adventure sessions ")

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(d.table, 0, 1, true).
		AddItem(d.footer, 1, 0, false)

	d.app.SetRoot(layout, true).SetInputCapture(func(ev *tcell.EventKey) *tcell.EventKey {
		if ev.Key() == tcell.KeyEscape || ev.Rune() == 'q' {
			d.app.Stop()
			return nil
		}
		return ev
	})

	return d
}

// Run draws the board until ctx is done or the user quits.
func (d *Dashboard) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)

	go func() {
		ticker := time.NewTicker(d.refresh)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				d.app.Stop()
				return
			case <-done:
				return
			case <-ticker.C:
				d.app.QueueUpdateDraw(d.redraw)
			}
		}
	}()

	d.redraw()
	return d.app.Run()
}

func (d *Dashboard) redraw() {
	if d.maxAge > 0 {
		d.board.Prune(d.maxAge)
	}
	rows := d.board.Rows()
	fillTable(d.table, rows)
	d.footer.SetText(fmt.Sprintf("[yellow]%d[white] session(s)  q: quit", len(rows)))
}

func fillTable(t *tview.Table, rows []Row) {
	t.Clear()

	for c, name := range columns {
		t.SetCell(0, c, tview.NewTableCell(name).
			SetTextColor(tcell.ColorYellow).
			SetSelectable(false))
	}

	for r, row := range rows {
		snap := row.Snapshot

		ready := fmt.Sprintf("%d/%d", snap.Loaded, snap.Expected)
		if snap.Ready {
			ready = "yes"
		}
		phase := string(snap.Phase)
		color := tcell.ColorWhite
		if snap.Won {
			phase = "won"
			color = tcell.ColorGreen
		}
		finalKey := "no"
		if snap.Inventory.FinalKey {
			finalKey = "yes"
		}
		pos := snap.Player.Position

		cells := []string{
			shortID(row.ID),
			ready,
			phase,
			fmt.Sprint(snap.Inventory.Coins),
			fmt.Sprint(snap.Inventory.Keys),
			finalKey,
			fmt.Sprintf("%.1f, %.1f", pos.X, pos.Z),
			row.Message,
		}
		for c, text := range cells {
			t.SetCell(r+1, c, tview.NewTableCell(text).SetTextColor(color).SetExpansion(expansion(c)))
		}
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// expansion lets the message column take the spare width.
func expansion(col int) int {
	if col == len(columns)-1 {
		return 1
	}
	return 0
}
