package config

const (
	// Particle field
	BaseDensity      = 28   // particles per 1200 logical px of width
	MinParticles     = 12
	DensityWidth     = 1200.0
	SpeedMin         = 0.08 // px per frame (logical)
	SpeedMax         = 0.35
	RadiusMin        = 1.2 // px (logical)
	RadiusMax        = 2.6
	LinkDistance     = 140.0
	LinkThickness    = 1.0
	MaxPixelRatio    = 2.0
	BounceMargin     = 20.0
	ResizeHysteresis = 10

	// Terminal
	MaxFPS = 1000

	// Color tokens
	DefaultNodeColor = "rgba(255,255,255,0.75)"
	DefaultLineColor = "rgba(255,255,255,0.25)"

	// Filter
	WildcardFilter = "all"

	// Filter buttons
	ButtonWidth  = 120
	ButtonHeight = 32
	ButtonGap    = 12
	ButtonMargin = 20

	// Cards
	CardHeight = 56
	CardGap    = 10
)
