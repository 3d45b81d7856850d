package csscolor

import (
	"math"
	"strings"
)

// AngleResolver turns an angle-shaped token into radians. The hsl() decoder
// routes every non-number hue token through the resolver, so callers with
// their own unit handling (or a calc() evaluator) can substitute one via
// ResolveWithAngles.
type AngleResolver func(tok Token) float64

// Radians is the default resolver. It accepts the CSS angle units deg, grad,
// rad and turn; a bare number is taken as degrees. Anything else resolves
// to zero.
func Radians(tok Token) float64 {
	switch tok.Type {
	case TokenNumber:
		return tok.NumValue * math.Pi / 180
	case TokenDimension:
		switch strings.ToLower(tok.Unit) {
		case "deg":
			return tok.NumValue * math.Pi / 180
		case "grad":
			return tok.NumValue * math.Pi / 200
		case "rad":
			return tok.NumValue
		case "turn":
			return tok.NumValue * 2 * math.Pi
		}
	}
	return 0
}
