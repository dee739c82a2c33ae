// Package term runs the particle header and the category filter in a
// terminal. One event loop owns all state; a ticker only posts interrupts
// into it.
package term

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/particle-header/internal/config"
	"github.com/iburimskiy/particle-header/internal/field"
	"github.com/iburimskiy/particle-header/internal/filter"
)

type Terminal struct {
	screen tcell.Screen
	cfg    *config.Config
	log    *slog.Logger

	surface  *cellSurface
	frames   field.FrameQueue
	animator *field.Animator
	board    *filter.Board

	width, height int
}

// New attaches a terminal host to an initialized screen.
func New(screen tcell.Screen, cfg *config.Config, board *filter.Board, log *slog.Logger) *Terminal {
	palette := field.NewPalette(cfg.Colors.Node, cfg.Colors.Line)
	t := &Terminal{
		screen:  screen,
		cfg:     cfg,
		log:     log.With("host", "terminal"),
		surface: newCellSurface(cfg.Header.CellW, cfg.Header.CellH, palette.Line),
		board:   board,
	}
	t.width, t.height = screen.Size()
	t.animator = field.New(t.surface, terminalHost{t}, &t.frames, field.Options{
		Palette:       &palette,
		ReducedMotion: cfg.ReducedMotion,
		Logger:        t.log,
	})
	return t
}

// Run opens the terminal and blocks until the user quits.
func Run(cfg *config.Config, board *filter.Board, log *slog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableFocus()

	t := New(screen, cfg, board, log)

	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(time.Second / time.Duration(cfg.Terminal.FPS))
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
			}
		}
	}()

	t.draw()
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return nil
		}
		if quit := t.HandleEvent(ev); quit {
			return nil
		}
	}
}

// HandleEvent applies one screen event and reports whether to quit.
func (t *Terminal) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		t.width, t.height = ev.Size()
		t.animator.HandleResize()
		t.screen.Sync()
	case *tcell.EventFocus:
		t.log.Debug("focus changed", "focused", ev.Focused)
		t.animator.SetHidden(!ev.Focused)
	case *tcell.EventInterrupt:
		if !t.frames.Run() {
			return false
		}
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return true
		}
		if ev.Key() != tcell.KeyRune {
			return false
		}
		switch r := ev.Rune(); {
		case r == 'q':
			return true
		case r == '0':
			t.activate(t.board.ActivateLabel(config.WildcardFilter))
		case r >= '1' && r <= '9':
			t.activate(t.board.Activate(int(r - '1')))
		}
	}
	t.draw()
	return false
}

func (t *Terminal) activate(err error) {
	if err != nil {
		t.log.Debug("filter key ignored", "error", err)
		return
	}
	t.log.Debug("filter activated", "label", t.board.ActiveLabel(), "visible", len(t.board.Visible()))
}

func (t *Terminal) headerRows() int {
	return min(t.cfg.Header.Rows, t.height)
}

func (t *Terminal) draw() {
	t.screen.Clear()
	t.surface.flush(t.screen, t.headerRows())

	row := t.headerRows()
	if row < t.height {
		t.drawFilters(row)
	}
	row += 2
	for _, it := range t.board.Visible() {
		if row >= t.height-1 {
			break
		}
		t.print(1, row, "▌ "+it.Title, tcell.StyleDefault.Bold(true))
		t.print(3+len([]rune(it.Title))+1, row, "["+it.Category+"]", tcell.StyleDefault.Dim(true))
		row++
	}
	t.print(0, t.height-1, "1-9: filter  0: all  q: quit", tcell.StyleDefault.Dim(true))
	t.screen.Show()
}

func (t *Terminal) drawFilters(row int) {
	x := 1
	for i, c := range t.board.Controls {
		label := fmt.Sprintf(" %d %s ", i+1, c.Label)
		style := tcell.StyleDefault
		if c.Active {
			style = style.Reverse(true)
		}
		t.print(x, row, label, style)
		x += len([]rune(label)) + 1
	}
}

func (t *Terminal) print(x, y int, s string, style tcell.Style) {
	if y < 0 || y >= t.height {
		return
	}
	for _, r := range s {
		if x >= t.width {
			return
		}
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// Text returns the characters of row y, for tests and diagnostics.
func (t *Terminal) Text(y int) string {
	var b strings.Builder
	for x := 0; x < t.width; x++ {
		r, _, _, _ := t.screen.GetContent(x, y)
		if r == 0 {
			r = ' '
		}
		b.WriteRune(r)
	}
	return strings.TrimRight(b.String(), " ")
}

// terminalHost measures the header in logical pixels from the cell grid.
type terminalHost struct {
	t *Terminal
}

func (h terminalHost) Bounds() (float64, float64) {
	cfg := h.t.cfg.Header
	return float64(h.t.width * cfg.CellW), float64(h.t.headerRows() * cfg.CellH)
}

func (h terminalHost) DevicePixelRatio() float64 { return 1 }
