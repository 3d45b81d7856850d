// Package csscolor resolves CSS color values - hex literals, named colors and
// functional notations (rgb(), hsl(), lab(), oklab(), oklch(), color()) - into
// a packed 32-bit RGBA value, and serializes that value back to text.
// Reference: https://www.w3.org/TR/css-color-4/
package csscolor

import (
	"math"
	"strconv"
	"strings"
)

// Color is a packed 32-bit color: R in bits 31-24, G in 23-16, B in 15-8 and
// A in 7-0. The alpha byte encodes opacity as a/255.
type Color uint32

// Transparent is the fallback value for unresolvable input.
const Transparent Color = 0

// Pack combines three 8-bit channels and a fractional alpha into a Color.
// The alpha fraction is clamped to [0,1] and rounded to the nearest byte.
func Pack(r, g, b uint8, alpha float64) Color {
	if alpha < 0 || math.IsNaN(alpha) {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	a := uint32(math.Round(alpha * 255))
	return Color(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | a)
}

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> 24) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 16) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c >> 8) }

// A returns the alpha channel.
func (c Color) A() uint8 { return uint8(c) }

// IsTransparent reports whether the alpha byte is zero.
func (c Color) IsTransparent() bool { return uint8(c) == 0 }

// String renders the color in functional notation: "rgb(R,G,B)" when fully
// opaque, otherwise "rgba(R,G,B,A)" with A as a decimal fraction of 255.
func (c Color) String() string {
	var sb strings.Builder
	if c.A() == 255 {
		sb.WriteString("rgb(")
	} else {
		sb.WriteString("rgba(")
	}
	sb.WriteString(strconv.Itoa(int(c.R())))
	sb.WriteByte(',')
	sb.WriteString(strconv.Itoa(int(c.G())))
	sb.WriteByte(',')
	sb.WriteString(strconv.Itoa(int(c.B())))
	if c.A() != 255 {
		sb.WriteByte(',')
		sb.WriteString(strconv.FormatFloat(float64(c.A())/255, 'g', -1, 64))
	}
	sb.WriteByte(')')
	return sb.String()
}

// Hex renders the color as a hash literal: "#rrggbb", or "#rrggbbaa" when the
// color is not fully opaque.
func (c Color) Hex() string {
	s := "#" + hexByte(c.R()) + hexByte(c.G()) + hexByte(c.B())
	if c.A() != 255 {
		s += hexByte(c.A())
	}
	return s
}

func hexByte(b uint8) string {
	const hex = "0123456789abcdef"
	return string([]byte{hex[b>>4], hex[b&0xf]})
}
