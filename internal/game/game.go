package game

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/particle-header/internal/config"
	"github.com/iburimskiy/particle-header/internal/field"
	"github.com/iburimskiy/particle-header/internal/filter"
	"github.com/iburimskiy/particle-header/internal/viewport"
)

const debugCharWidth = 6 // ebitenutil debug font

type Game struct {
	cfg *config.Config
	log *slog.Logger

	// header
	canvas   *canvas
	frames   *field.FrameQueue
	animator *field.Animator
	palette  field.Palette

	// window: the screen is physical, ui is the logical layer for the
	// filter strip and cards
	view    viewport.Viewport
	ui      *ebiten.Image
	resized bool
	hidden  bool

	// filter
	board         *filter.Board
	hoveredButton int
	pressedButton int

	// input edge detection
	prevKey map[ebiten.Key]bool

	lastErr error
}

func NewGame(cfg *config.Config, board *filter.Board, log *slog.Logger) *Game {
	return &Game{
		cfg:           cfg,
		log:           log.With("host", "window"),
		canvas:        &canvas{},
		frames:        &field.FrameQueue{},
		palette:       field.NewPalette(cfg.Colors.Node, cfg.Colors.Line),
		view:          viewport.New(cfg.Window.Width, cfg.Window.Height, 1),
		board:         board,
		hoveredButton: -1,
		pressedButton: -1,
		prevKey:       map[ebiten.Key]bool{},
	}
}

// Run opens the window and blocks until it is closed.
func Run(cfg *config.Config, board *filter.Board, log *slog.Logger) error {
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := NewGame(cfg, board, log)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("running window: %w", err)
	}
	return nil
}

func (g *Game) Update() error {
	if g.animator == nil {
		g.animator = field.New(g.canvas, windowHost{g}, g.frames, field.Options{
			Palette:       &g.palette,
			ReducedMotion: g.cfg.ReducedMotion,
			Logger:        g.log,
		})
	} else if g.resized {
		g.animator.HandleResize()
	}
	g.resized = false

	hidden := ebiten.IsWindowMinimized() || (g.cfg.PauseUnfocused && !ebiten.IsFocused())
	if hidden != g.hidden {
		g.hidden = hidden
		g.log.Debug("visibility changed", "hidden", hidden)
		g.animator.SetHidden(hidden)
	}

	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	// Filter buttons: activate on release over the pressed button
	mouseX, mouseY := g.view.ToLogical(ebiten.CursorPosition())
	g.hoveredButton = g.buttonAt(mouseX, mouseY)
	if g.hoveredButton >= 0 && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.pressedButton = g.hoveredButton
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.pressedButton >= 0 && g.pressedButton == g.hoveredButton {
			if err := g.board.Activate(g.pressedButton); err != nil {
				g.lastErr = err
			} else {
				g.log.Debug("filter activated", "label", g.board.ActiveLabel(), "visible", len(g.board.Visible()))
			}
		}
		g.pressedButton = -1
	}

	if justPressed(ebiten.KeyO) {
		if err := g.openCatalogueDialog(); err != nil {
			g.lastErr = err
		}
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// The pending header frame, if any, renders into the canvas.
	g.frames.Run()

	screen.Fill(color.RGBA{R: 14, G: 16, B: 24, A: 255})
	g.drawHeaderBackground(screen)
	g.canvas.drawTo(screen, g.view.CanvasScale(g.canvas.scale))

	ui := g.uiLayer()
	ui.Clear()
	for i := range g.board.Controls {
		g.drawButton(ui, i)
	}
	g.drawCards(ui)

	status := "Click a filter - O: open catalogue, Esc/Q: quit"
	if g.cfg.ReducedMotion {
		status += " | reduced motion"
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(ui, status, 12, g.view.Height-20)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(g.view.Scale, g.view.Scale)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(ui, op)
}

// Layout keeps the screen at device resolution so the header's backing
// store is shown 1:1 on HiDPI monitors.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	v := viewport.New(outsideWidth, outsideHeight, ebiten.Monitor().DeviceScaleFactor())
	if v != g.view {
		g.view = v
		g.resized = true
	}
	return v.Physical()
}

func (g *Game) uiLayer() *ebiten.Image {
	if g.ui != nil {
		b := g.ui.Bounds()
		if b.Dx() == g.view.Width && b.Dy() == g.view.Height {
			return g.ui
		}
		g.ui.Deallocate()
	}
	g.ui = ebiten.NewImage(max(1, g.view.Width), max(1, g.view.Height))
	return g.ui
}

func (g *Game) drawHeaderBackground(screen *ebiten.Image) {
	w, _ := g.view.Physical()
	h := int(float64(g.cfg.Header.Height) * g.view.Scale)
	for y := 0; y < h; y++ {
		ratio := float64(y) / float64(h)
		c := color.RGBA{
			R: uint8(18 + 12*ratio),
			G: uint8(24 + 18*ratio),
			B: uint8(48 + 30*ratio),
			A: 255,
		}
		vector.StrokeLine(screen, 0, float32(y)+0.5, float32(w), float32(y)+0.5, 1, c, false)
	}
}

func (g *Game) buttonRect(i int) (x, y, w, h int) {
	x = config.ButtonMargin + i*(config.ButtonWidth+config.ButtonGap)
	y = g.cfg.Header.Height + config.ButtonMargin
	return x, y, config.ButtonWidth, config.ButtonHeight
}

func (g *Game) buttonAt(mx, my int) int {
	for i := range g.board.Controls {
		x, y, w, h := g.buttonRect(i)
		if mx >= x && mx <= x+w && my >= y && my <= y+h {
			return i
		}
	}
	return -1
}

func (g *Game) drawButton(screen *ebiten.Image, i int) {
	x, y, w, h := g.buttonRect(i)
	ctrl := g.board.Controls[i]

	var bgColor color.Color
	switch {
	case g.pressedButton == i:
		bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255} // Pressed
	case ctrl.Active:
		bgColor = color.RGBA{R: 120, G: 150, B: 210, A: 255} // Active
	case g.hoveredButton == i:
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255} // Hovered
	default:
		bgColor = color.RGBA{R: 100, G: 120, B: 160, A: 255} // Normal
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), bgColor, false)

	borderColor := color.RGBA{R: 150, G: 170, B: 200, A: 255}
	if ctrl.Active {
		borderColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 2, borderColor, false)

	text := truncate(ctrl.Label, w/debugCharWidth-2)
	textX := x + (w-len(text)*debugCharWidth)/2
	textY := y + (h-16)/2
	ebitenutil.DebugPrintAt(screen, text, textX, textY)
}

func (g *Game) drawCards(screen *ebiten.Image) {
	x := config.ButtonMargin
	y := g.cfg.Header.Height + 2*config.ButtonMargin + config.ButtonHeight
	w := g.view.Width - 2*config.ButtonMargin
	maxChars := (w - 24) / debugCharWidth

	for _, it := range g.board.Visible() {
		if y+config.CardHeight > g.view.Height-28 {
			break
		}
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), config.CardHeight, color.RGBA{R: 26, G: 30, B: 42, A: 255}, false)
		r, gv, b := hsvToRgb(categoryHue(it.Category), 0.6, 0.9)
		vector.DrawFilledRect(screen, float32(x), float32(y), 4, config.CardHeight, color.RGBA{R: r, G: gv, B: b, A: 255}, false)

		ebitenutil.DebugPrintAt(screen, truncate(it.Title, maxChars), x+14, y+6)
		ebitenutil.DebugPrintAt(screen, truncate("["+it.Category+"] "+it.Summary, maxChars), x+14, y+28)
		y += config.CardHeight + config.CardGap
	}
}

func (g *Game) openCatalogueDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Catalogue"),
		zenity.FileFilters{{
			Name:     "Catalogue",
			Patterns: []string{"*.yml", "*.yaml", "*.csv"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	board, err := filter.LoadCatalogue(filename)
	if err != nil {
		return err
	}
	g.board = board
	g.hoveredButton, g.pressedButton = -1, -1
	g.lastErr = nil
	g.log.Info("catalogue loaded", "path", filename, "items", len(board.Items), "filters", len(board.Controls))
	return nil
}
