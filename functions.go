package csscolor

import (
	"math"
	"strings"
)

// decoder consumes a filtered argument-token sequence and produces a packed
// color. Decoders degrade quietly on value-shape problems; only the color()
// decoder can fail, and only for naming problems (unknown space, relative
// form).
type decoder func(args []Token, angles AngleResolver) (Color, error)

// colorFunctions is the function registry. rgb/rgba and hsl/hsla share a
// decoder. The map is never mutated after initialization.
var colorFunctions = map[string]decoder{
	"rgb":   decodeRGB,
	"rgba":  decodeRGB,
	"hsl":   decodeHSL,
	"hsla":  decodeHSL,
	"lab":   decodeLab,
	"oklab": decodeOKLab,
	"oklch": decodeOKLCH,
	"color": decodeColorSpace,
}

// filterArgs strips the separators (commas, the '/' before an alpha value,
// and whitespace) from a function's argument list, preserving order. Nested
// component values are dropped; downstream decoders treat a missing token as
// a zero channel.
func filterArgs(values []ComponentValue) []Token {
	args := make([]Token, 0, len(values))
	for _, v := range values {
		p, ok := v.(PreservedToken)
		if !ok {
			continue
		}
		switch p.Token.Type {
		case TokenWhitespace, TokenComma:
			continue
		case TokenDelim:
			if p.Token.Delim == '/' {
				continue
			}
		}
		args = append(args, p.Token)
	}
	return args
}

// rgbChannel interprets one rgb() channel token: a number is a literal 0-255
// value, a percentage is a fraction of 255. Either way the result is rounded
// and clamped to a byte.
func rgbChannel(tok Token) uint8 {
	switch tok.Type {
	case TokenNumber:
		return channel8(tok.NumValue / 255)
	case TokenPercentage:
		return channel8(tok.NumValue / 100)
	default:
		return 0
	}
}

// alphaValue interprets an optional alpha token against base 1: a percentage
// becomes a fraction, a number is used as-is. Any other shape means the
// default opaque alpha.
func alphaValue(tok Token) float64 {
	switch tok.Type {
	case TokenNumber:
		return tok.NumValue
	case TokenPercentage:
		return tok.NumValue / 100
	default:
		return 1
	}
}

// decodeRGB handles rgb() and rgba(). Anything other than 3 or 4 argument
// tokens yields fully transparent black rather than an error.
func decodeRGB(args []Token, _ AngleResolver) (Color, error) {
	if len(args) != 3 && len(args) != 4 {
		return 0, nil
	}
	alpha := 1.0
	if len(args) == 4 {
		alpha = alphaValue(args[3])
	}
	return Pack(rgbChannel(args[0]), rgbChannel(args[1]), rgbChannel(args[2]), alpha), nil
}

// decodeHSL handles hsl() and hsla(). The hue is normalized to [0,1): a bare
// number is degrees, anything else goes through the angle resolver and comes
// back in radians. Saturation and lightness must be percentages; other token
// shapes zero the channel.
func decodeHSL(args []Token, angles AngleResolver) (Color, error) {
	var h, s, l float64
	alpha := 1.0

	if len(args) > 0 {
		if args[0].Type == TokenNumber {
			h = args[0].NumValue / 360
		} else {
			h = angles(args[0]) / (2 * math.Pi)
		}
		h -= math.Floor(h)
	}
	if len(args) > 1 && args[1].Type == TokenPercentage {
		s = args[1].NumValue / 100
	}
	if len(args) > 2 && args[2].Type == TokenPercentage {
		l = args[2].NumValue / 100
	}
	if len(args) > 3 {
		alpha = alphaValue(args[3])
	}

	if s == 0 {
		v := channel8(l)
		return Pack(v, v, v, alpha), nil
	}

	var t2 float64
	if l <= 0.5 {
		t2 = l * (s + 1)
	} else {
		t2 = l + s - l*s
	}
	t1 := 2*l - t2

	r := hueChannel(t1, t2, h+1.0/3)
	g := hueChannel(t1, t2, h)
	b := hueChannel(t1, t2, h-1.0/3)
	return Pack(channel8(r), channel8(g), channel8(b), alpha), nil
}

// hueChannel derives one RGB channel from a normalized hue, interpolating
// across the six 1/6-wide hue bands.
func hueChannel(t1, t2, h float64) float64 {
	if h < 0 {
		h++
	}
	if h > 1 {
		h--
	}
	switch {
	case h < 1.0/6:
		return t1 + (t2-t1)*6*h
	case h < 1.0/2:
		return t2
	case h < 2.0/3:
		return t1 + (t2-t1)*(2.0/3-h)*6
	default:
		return t1
	}
}

// lightnessValue interprets an L token for the Lab family: a percentage is a
// fraction of 100, a number is used unscaled.
func lightnessValue(tok Token) float64 {
	switch tok.Type {
	case TokenPercentage:
		return tok.NumValue / 100
	case TokenNumber:
		return tok.NumValue
	default:
		return 0
	}
}

// axisValue interprets an a/b/chroma/hue token: number or dimension value,
// anything else zero. Percentages are deliberately not rescaled here; only
// the L channel is percentage-aware.
func axisValue(tok Token) float64 {
	switch tok.Type {
	case TokenNumber, TokenDimension:
		return tok.NumValue
	default:
		return 0
	}
}

// decodeLab handles lab(). The output alpha is always opaque; lab() alpha
// components are accepted by the grammar but not threaded through.
func decodeLab(args []Token, _ AngleResolver) (Color, error) {
	var l, a, b float64
	if len(args) > 0 {
		l = lightnessValue(args[0])
	}
	if len(args) > 1 {
		a = axisValue(args[1])
	}
	if len(args) > 2 {
		b = axisValue(args[2])
	}

	x, y, z := labToXYZ(l, a, b)
	lr, lg, lb := xyzToLinearSRGB.apply(x, y, z)
	return Pack(
		channel8(linearToGamma(lr)),
		channel8(linearToGamma(lg)),
		channel8(linearToGamma(lb)),
		1,
	), nil
}

// decodeOKLab handles oklab(). Alpha is fixed at 1, as for lab().
func decodeOKLab(args []Token, _ AngleResolver) (Color, error) {
	var l, a, b float64
	if len(args) > 0 {
		l = lightnessValue(args[0])
	}
	if len(args) > 1 {
		a = axisValue(args[1])
	}
	if len(args) > 2 {
		b = axisValue(args[2])
	}
	return packOKLab(l, a, b), nil
}

// decodeOKLCH handles oklch(): convert to OKLab first, then share the OKLab
// pipeline. The hue is taken as degrees whether bare or dimensioned.
func decodeOKLCH(args []Token, _ AngleResolver) (Color, error) {
	var l, c float64
	h := math.NaN()
	if len(args) > 0 {
		l = lightnessValue(args[0])
	}
	if len(args) > 1 {
		c = axisValue(args[1])
	}
	if len(args) > 2 && (args[2].Type == TokenNumber || args[2].Type == TokenDimension) {
		h = args[2].NumValue
	}
	return packOKLab(oklchToOKLab(l, c, h)), nil
}

// packOKLab finishes the OKLab pipeline: XYZ, linear sRGB, the signed gamma
// transfer, then an opaque packed color.
func packOKLab(l, a, b float64) Color {
	x, y, z := oklabToXYZ(l, a, b)
	lr, lg, lb := xyzToLinearSRGB.apply(x, y, z)
	return Pack(
		channel8(linearToGammaSigned(lr)),
		channel8(linearToGammaSigned(lg)),
		channel8(linearToGammaSigned(lb)),
		1,
	)
}

// decodeColorSpace handles color(). The first argument names a color space
// from a fixed table; the relative form color(from ...) and unknown space
// names are hard failures. Channel tokens must be bare numbers; absent or
// differently shaped tokens zero the channel.
func decodeColorSpace(args []Token, _ AngleResolver) (Color, error) {
	if len(args) == 0 || args[0].Type != TokenIdent {
		return Transparent, nil
	}
	space := strings.ToLower(args[0].Value)
	if space == "from" {
		return 0, ErrRelativeColor
	}

	var ch [3]float64
	for i := 0; i < 3 && i+1 < len(args); i++ {
		if args[i+1].Type == TokenNumber {
			ch[i] = args[i+1].NumValue
		}
	}
	alpha := 1.0
	if len(args) > 4 {
		alpha = alphaValue(args[4])
	}

	switch space {
	case "srgb":
		return Pack(channel8(ch[0]), channel8(ch[1]), channel8(ch[2]), alpha), nil
	case "srgb-linear":
		return Pack(
			channel8(linearToGamma(ch[0])),
			channel8(linearToGamma(ch[1])),
			channel8(linearToGamma(ch[2])),
			alpha,
		), nil
	case "xyz", "xyz-d50":
		// xyz-d50 is approximated as plain XYZ; no chromatic adaptation is
		// applied. The alpha argument is accepted but not threaded through
		// on this path.
		lr, lg, lb := xyzToLinearSRGB.apply(ch[0], ch[1], ch[2])
		return Pack(
			channel8(linearToGamma(lr)),
			channel8(linearToGamma(lg)),
			channel8(linearToGamma(lb)),
			1,
		), nil
	default:
		return 0, &UnsupportedColorSpaceError{Name: space}
	}
}
