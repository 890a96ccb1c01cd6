package control

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a packed 32-bit ARGB color. It serializes as a signed 32-bit
// integer, the form produced by Android's Color.toArgb.
type Color uint32

const (
	ColorBlack Color = 0xFF000000
	ColorWhite Color = 0xFFFFFFFF
	ColorGray  Color = 0xFF888888
)

// ARGB builds a Color from its components.
func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

func (c Color) Alpha() uint8 { return uint8(c >> 24) }
func (c Color) Red() uint8   { return uint8(c >> 16) }
func (c Color) Green() uint8 { return uint8(c >> 8) }
func (c Color) Blue() uint8  { return uint8(c) }

// WithAlpha returns c with its alpha channel replaced by a in [0, 1].
func (c Color) WithAlpha(a float64) Color {
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	alpha := uint32(a*255 + 0.5)
	return Color(alpha<<24 | uint32(c)&0x00FFFFFF)
}

// Colorful converts the RGB channels for blending and formatting.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.Red()) / 255,
		G: float64(c.Green()) / 255,
		B: float64(c.Blue()) / 255,
	}
}

// Hex formats the color as #AARRGGBB.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%s", c.Alpha(), strings.TrimPrefix(c.Colorful().Hex(), "#"))
}

func (c Color) String() string {
	return c.Hex()
}

// ParseColor accepts #RGB, #RRGGBB and #AARRGGBB. Colors without an alpha
// channel are opaque.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	alpha := uint8(0xFF)
	if len(hex) == 8 {
		a, err := strconv.ParseUint(hex[:2], 16, 8)
		if err != nil {
			return 0, fmt.Errorf("control: invalid color %q: %w", s, err)
		}
		alpha = uint8(a)
		hex = hex[2:]
	}
	rgb, err := colorful.Hex("#" + hex)
	if err != nil {
		return 0, fmt.Errorf("control: invalid color %q: %w", s, err)
	}
	r, g, b := rgb.RGB255()
	return ARGB(alpha, r, g, b), nil
}

// MarshalJSON writes the color as a signed ARGB integer.
func (c Color) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(int64(int32(c)), 10)), nil
}

// UnmarshalJSON reads a signed or unsigned ARGB integer; only the low
// 32 bits are kept.
func (c *Color) UnmarshalJSON(b []byte) error {
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("control: color must be an integer: %w", err)
	}
	v, err := n.Int64()
	if err != nil {
		return fmt.Errorf("control: color must be an integer: %w", err)
	}
	*c = Color(uint32(v))
	return nil
}
