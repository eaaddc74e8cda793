package sim

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/wingkey/internal/hal"
	"github.com/dshills/wingkey/internal/keymap"
)

// Releaser is the scanner-side hook the UI uses for panic release.
type Releaser interface {
	RequestReleaseAll()
}

// UI is the interactive matrix view: a grid of simulated switches
// toggled from the host keyboard, with the sink call trace alongside.
// The UI only touches the thread-safe Sim matrix and the release-all
// request hook; scan state stays owned by the pipeline.
type UI struct {
	matrix   *hal.Sim
	table    *keymap.Table
	releaser Releaser
	events   *EventLog
	tapHold  time.Duration

	screen tcell.Screen
	curRow int
	curCol int
}

// New creates the simulator UI. tapHold is how long a momentary tap
// keeps the switch closed; it must exceed the debounce window or taps
// are filtered as noise.
func New(matrix *hal.Sim, table *keymap.Table, releaser Releaser, events *EventLog, tapHold time.Duration) *UI {
	return &UI{
		matrix:   matrix,
		table:    table,
		releaser: releaser,
		events:   events,
		tapHold:  tapHold,
	}
}

// Run owns the terminal until the user quits or ctx is done.
func (u *UI) Run(ctx context.Context) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	u.screen = screen
	defer screen.Fini()

	events := make(chan tcell.Event, 8)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(33 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			u.draw()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				if u.handleKey(ev) {
					return nil
				}
			}
		}
	}
}

// handleKey processes one key event; true means quit.
func (u *UI) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		u.move(-1, 0)
	case tcell.KeyDown:
		u.move(1, 0)
	case tcell.KeyLeft:
		u.move(0, -1)
	case tcell.KeyRight:
		u.move(0, 1)
	case tcell.KeyEnter:
		u.tap()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case ' ':
			u.toggle()
		case 't':
			u.tap()
		case 'c':
			u.matrix.Clear()
		case 'r':
			u.releaser.RequestReleaseAll()
		}
	}
	return false
}

func (u *UI) move(dr, dc int) {
	r := u.curRow + dr
	c := u.curCol + dc
	if r >= 0 && r < u.matrix.Rows() {
		u.curRow = r
	}
	if c >= 0 && c < u.matrix.Cols() {
		u.curCol = c
	}
}

func (u *UI) toggle() {
	u.matrix.SetCell(u.curRow, u.curCol, !u.matrix.Held(u.curRow, u.curCol))
}

// tap closes the switch momentarily, long enough to clear debounce.
func (u *UI) tap() {
	row, col := u.curRow, u.curCol
	u.matrix.SetCell(row, col, true)
	time.AfterFunc(u.tapHold, func() {
		u.matrix.SetCell(row, col, false)
	})
}

func (u *UI) draw() {
	s := u.screen
	s.Clear()

	styleDefault := tcell.StyleDefault
	stylePressed := tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleCursor := tcell.StyleDefault.Reverse(true)
	styleDim := tcell.StyleDefault.Foreground(tcell.ColorGray)

	u.drawText(0, 0, styleDefault.Bold(true), "wingkey matrix simulator")
	u.drawText(0, 1, styleDim, "arrows move · space hold · t/enter tap · c clear · r release-all · q quit")

	const top = 3
	for r := 0; r < u.matrix.Rows(); r++ {
		for c := 0; c < u.matrix.Cols(); c++ {
			ch := '·'
			style := styleDim
			if u.matrix.Held(r, c) {
				ch = '#'
				style = stylePressed
			} else if !u.table.Resolve(r, c).IsEmpty() {
				ch = 'o'
				style = styleDefault
			}
			if r == u.curRow && c == u.curCol {
				style = styleCursor
			}
			s.SetContent(2+c*2, top+r, ch, nil, style)
		}
	}

	// Cursor cell detail.
	action := u.table.Resolve(u.curRow, u.curCol)
	u.drawText(0, top+u.matrix.Rows()+1, styleDefault,
		fmt.Sprintf("(%d,%d) %s", u.curRow, u.curCol, action))

	// Sink trace column, right of the grid.
	traceX := 2 + u.matrix.Cols()*2 + 4
	u.drawText(traceX, top-1, styleDim, "sink calls")
	for i, line := range u.events.Lines() {
		u.drawText(traceX, top+i, styleDefault, line)
	}

	s.Show()
}

func (u *UI) drawText(x, y int, style tcell.Style, text string) {
	for i, r := range text {
		u.screen.SetContent(x+i, y, r, nil, style)
	}
}
