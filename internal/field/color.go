package field

import (
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/particle-header/internal/config"
)

// Palette holds the node and link colors.
type Palette struct {
	Node color.NRGBA
	Line color.NRGBA
}

// NewPalette resolves the two color tokens, falling back to the default
// literals for empty or unparsable values.
func NewPalette(node, line string) Palette {
	return Palette{
		Node: tokenOr(node, config.DefaultNodeColor),
		Line: tokenOr(line, config.DefaultLineColor),
	}
}

// DefaultPalette is NewPalette with both tokens unset.
func DefaultPalette() Palette {
	return NewPalette("", "")
}

func tokenOr(token, fallback string) color.NRGBA {
	if c, ok := ParseColor(token); ok {
		return c
	}
	c, _ := ParseColor(fallback)
	return c
}

// ParseColor parses a CSS-style color: #rgb, #rrggbb, rgb(r,g,b) or
// rgba(r,g,b,a) with a in [0,1].
func ParseColor(s string) (color.NRGBA, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "":
		return color.NRGBA{}, false
	case strings.HasPrefix(s, "#"):
		return parseHex(s)
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		return parseFunc(s[len("rgba("):len(s)-1], 4)
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		return parseFunc(s[len("rgb("):len(s)-1], 3)
	}
	return color.NRGBA{}, false
}

func parseHex(s string) (color.NRGBA, bool) {
	if len(s) == 4 {
		// expand #rgb shorthand
		s = string([]byte{'#', s[1], s[1], s[2], s[2], s[3], s[3]})
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, false
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, true
}

func parseFunc(args string, n int) (color.NRGBA, bool) {
	parts := strings.Split(args, ",")
	if len(parts) != n {
		return color.NRGBA{}, false
	}
	var ch [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
		if err != nil || math.IsNaN(v) || v < 0 || v > 255 {
			return color.NRGBA{}, false
		}
		ch[i] = uint8(math.Round(v))
	}
	alpha := uint8(255)
	if n == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || math.IsNaN(a) || a < 0 || a > 1 {
			return color.NRGBA{}, false
		}
		alpha = uint8(math.Round(a * 255))
	}
	return color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: alpha}, true
}

// withAlpha scales the color's alpha by f in [0,1].
func withAlpha(c color.NRGBA, f float64) color.NRGBA {
	c.A = uint8(math.Round(float64(c.A) * f))
	return c
}
