package field

import (
	"log/slog"
	"math"
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/iburimskiy/particle-header/internal/config"
)

// Options configure an Animator.
type Options struct {
	// Palette colors the field. Nil uses DefaultPalette.
	Palette *Palette
	// ReducedMotion disables the animation for good: Start never schedules.
	ReducedMotion bool
	// Rand is the random source for populating the field. Nil seeds one
	// from the clock.
	Rand   *rand.Rand
	Logger *slog.Logger
}

// Animator owns the particle field of one header. All methods must be
// called from the host's frame loop.
type Animator struct {
	surface Surface
	host    Host
	sched   Scheduler
	palette Palette
	reduced bool
	rng     *rand.Rand
	log     *slog.Logger

	w, h      int
	dpr       float64
	particles []Particle
	running   bool
	frame     FrameID
	inert     bool
}

// New attaches an animator to surface, sizes and populates it, and starts
// it. A nil surface yields an inert animator whose methods do nothing.
func New(surface Surface, host Host, sched Scheduler, opts Options) *Animator {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	a := &Animator{log: log.With("component", "field")}

	if surface == nil || host == nil || sched == nil {
		a.inert = true
		a.log.Debug("no drawing target, field disabled")
		return a
	}

	rng := opts.Rand
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
	palette := DefaultPalette()
	if opts.Palette != nil {
		palette = *opts.Palette
	}

	a.surface = surface
	a.host = host
	a.sched = sched
	a.palette = palette
	a.reduced = opts.ReducedMotion
	a.rng = rng

	a.Resize()
	a.Populate()
	a.Start()
	return a
}

// Resize measures the host and sizes the surface's backing store to the
// logical size times the capped device pixel ratio.
func (a *Animator) Resize() {
	if a.inert {
		return
	}
	bw, bh := a.host.Bounds()
	a.w = max(1, int(math.Floor(bw)))
	a.h = max(1, int(math.Floor(bh)))

	a.dpr = clampRatio(a.host.DevicePixelRatio())
	a.surface.SetBackingSize(int(math.Floor(float64(a.w)*a.dpr)), int(math.Floor(float64(a.h)*a.dpr)))
	a.surface.SetScale(a.dpr)
}

func clampRatio(r float64) float64 {
	if r <= 0 || math.IsNaN(r) {
		return 1
	}
	return math.Max(1, math.Min(config.MaxPixelRatio, r))
}

// Populate discards the current particles and generates a new set sized
// to the field width.
func (a *Animator) Populate() {
	if a.inert {
		return
	}
	n := TargetCount(a.w)
	a.particles = a.particles[:0]
	for i := 0; i < n; i++ {
		a.particles = append(a.particles, newParticle(a.rng, a.w, a.h))
	}
	a.log.Debug("populated", "count", n, "width", a.w, "height", a.h)
}

// Step advances and draws one frame without scheduling another.
func (a *Animator) Step() {
	if a.inert {
		return
	}
	a.surface.Clear()

	w, h := float64(a.w), float64(a.h)
	for i := range a.particles {
		a.particles[i].advance(w, h)
	}

	for i := 0; i < len(a.particles); i++ {
		for j := i + 1; j < len(a.particles); j++ {
			pa, pb := a.particles[i].Pos, a.particles[j].Pos
			alpha, ok := LinkAlpha(r2.Norm(r2.Sub(pa, pb)))
			if !ok {
				continue
			}
			a.surface.StrokeLine(pa.X, pa.Y, pb.X, pb.Y, config.LinkThickness, withAlpha(a.palette.Line, alpha))
		}
	}

	for _, p := range a.particles {
		a.surface.FillCircle(p.Pos.X, p.Pos.Y, p.R, a.palette.Node)
	}
}

func (a *Animator) onFrame() {
	a.frame = 0
	if !a.running {
		return
	}
	a.Step()
	a.frame = a.sched.RequestFrame(a.onFrame)
}

// Start begins the animation. It does nothing if already running or if
// reduced motion was requested.
func (a *Animator) Start() {
	if a.inert || a.running || a.reduced {
		return
	}
	a.running = true
	a.frame = a.sched.RequestFrame(a.onFrame)
	a.log.Debug("started")
}

// Stop cancels the pending frame. It is safe to call repeatedly.
func (a *Animator) Stop() {
	if a.inert {
		return
	}
	wasRunning := a.running
	a.running = false
	if a.frame != 0 {
		a.sched.CancelFrame(a.frame)
	}
	a.frame = 0
	if wasRunning {
		a.log.Debug("stopped")
	}
}

// SetHidden follows host visibility: hidden stops, visible starts.
func (a *Animator) SetHidden(hidden bool) {
	if hidden {
		a.Stop()
		return
	}
	a.Start()
}

// HandleResize re-measures the host and regenerates the particles when
// either dimension moved by more than the resize hysteresis.
func (a *Animator) HandleResize() {
	if a.inert {
		return
	}
	prevW, prevH := a.w, a.h
	a.Resize()
	if abs(prevW-a.w) > config.ResizeHysteresis || abs(prevH-a.h) > config.ResizeHysteresis {
		a.log.Info("field resized", "from", [2]int{prevW, prevH}, "to", [2]int{a.w, a.h})
		a.Populate()
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Running reports whether a frame loop is active.
func (a *Animator) Running() bool { return a.running }

// Inert reports whether the animator was created without a drawing target.
func (a *Animator) Inert() bool { return a.inert }

// Size returns the logical field size.
func (a *Animator) Size() (w, h int) { return a.w, a.h }

// PixelRatio returns the capped device pixel ratio in use.
func (a *Animator) PixelRatio() float64 { return a.dpr }

// Count returns the number of particles.
func (a *Animator) Count() int { return len(a.particles) }

// Particles returns a copy of the current particles.
func (a *Animator) Particles() []Particle {
	out := make([]Particle, len(a.particles))
	copy(out, a.particles)
	return out
}
