package game

import (
	"hash/fnv"
	"math"
	"strings"
)

// hsvToRgb converts HSV to RGB (hue: 0-360, saturation: 0-1, value: 0-1)
func hsvToRgb(h, s, v float64) (uint8, uint8, uint8) {
	h = math.Mod(h, 360)
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return uint8((r + m) * 255), uint8((g + m) * 255), uint8((b + m) * 255)
}

// categoryHue maps a category string to a stable hue so cards sharing a
// category share an accent color.
func categoryHue(category string) float64 {
	first, _, _ := strings.Cut(category, ",")
	h := fnv.New32a()
	h.Write([]byte(strings.ToLower(strings.TrimSpace(first))))
	return float64(h.Sum32() % 360)
}

// truncate shortens s to at most n runes, marking the cut with "..".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n || n < 3 {
		return s
	}
	return string(r[:n-2]) + ".."
}
