package widgets

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is stored as ARGB (0xAARRGGBB). The zero value means "unset".
type Color uint32

// RGBA8 constructs a Color from red, green, blue, alpha bytes (all 0-255).
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xFF)
}

// IsZero reports whether the color is unset.
func (c Color) IsZero() bool {
	return c == 0
}

// Hex returns the color as #rrggbb, or #rrggbbaa when not fully opaque.
func (c Color) Hex() string {
	r, g, b, a := uint8(c>>16), uint8(c>>8), uint8(c), uint8(c>>24)
	if a == 0xFF {
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}

func (c Color) String() string {
	return c.Hex()
}

// ResolveColor maps an SVG 1.1 color keyword ("steelblue") or a hex string
// ("#4682b4", "#4682b480") to a Color. Unknown names resolve to the zero
// Color.
func ResolveColor(name string) Color {
	c, _ := ParseColor(name)
	return c
}

// ParseColor is ResolveColor with an error for unrecognized input.
func ParseColor(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return 0, nil
	}
	if hex, ok := strings.CutPrefix(name, "#"); ok {
		return parseHex(hex)
	}
	named, ok := colornames.Map[name]
	if !ok {
		return 0, fmt.Errorf("unknown color %q", name)
	}
	return RGBA8(named.R, named.G, named.B, named.A), nil
}

func parseHex(hex string) (Color, error) {
	orig := "#" + hex
	switch len(hex) {
	case 6:
		hex += "ff"
	case 8:
	default:
		return 0, fmt.Errorf("invalid hex color %q", orig)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid hex color %q: %w", orig, err)
	}
	return RGBA8(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}
