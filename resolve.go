package csscolor

import "strings"

// Resolve resolves a single component value to a packed Color using the
// default angle resolver.
//
// Structural and naming problems fail loudly: an unregistered function name
// returns an UnsupportedFunctionError, and the color() decoder can return an
// UnsupportedColorSpaceError or ErrRelativeColor. Every other malformed
// input degrades to Transparent (or, for rgb() with a bad argument count, to
// fully transparent black) so that unrecognized-but-valid future syntax
// stays renderable.
func Resolve(cv ComponentValue) (Color, error) {
	return ResolveWithAngles(cv, Radians)
}

// ResolveWithAngles is Resolve with a caller-supplied angle resolver for
// hsl() hue components.
func ResolveWithAngles(cv ComponentValue, angles AngleResolver) (Color, error) {
	switch v := cv.(type) {
	case *Function:
		dec, ok := colorFunctions[strings.ToLower(v.Name)]
		if !ok {
			return 0, &UnsupportedFunctionError{Name: v.Name}
		}
		return dec(filterArgs(v.Values), angles)

	case PreservedToken:
		switch v.Token.Type {
		case TokenHash:
			switch len(v.Token.Value) {
			case 3, 4, 6, 8:
				return decodeHex(v.Token.Value), nil
			}
		case TokenIdent:
			if c, ok := namedColors[strings.ToLower(v.Token.Value)]; ok {
				return c, nil
			}
		}
	}

	return Transparent, nil
}

// Parse tokenizes a color string and resolves its first component value.
// It accepts the same grammar Resolve does: "#ff0000", "red",
// "rgb(255, 0, 0)", "oklch(0.63 0.26 29)" and so on.
func Parse(s string) (Color, error) {
	return Resolve(ReadComponentValue(NewTokenizer(s)))
}
