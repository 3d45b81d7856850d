package csscolor

import "math"

// Conversion kernel for the color-space pipelines:
// OKLCH -> OKLab -> XYZ, CIE Lab -> XYZ, XYZ -> linear sRGB, and the
// linear <-> gamma sRGB transfer functions.
// Reference: https://drafts.csswg.org/css-color/#color-conversion-code

type matrix3 [9]float64

func (m *matrix3) apply(a, b, c float64) (float64, float64, float64) {
	return m[0]*a + m[1]*b + m[2]*c,
		m[3]*a + m[4]*b + m[5]*c,
		m[6]*a + m[7]*b + m[8]*c
}

// D65 sRGB matrices and white point.
var (
	xyzToLinearSRGB = matrix3{
		3.2409699419045226, -1.537383177570094, -0.4986107602930034,
		-0.9692436362808796, 1.8759675015077202, 0.04155505740717559,
		0.05563007969699366, -0.20397695888897652, 1.0569715142428786,
	}

	// OKLab -> nonlinear LMS; the result is cubed before lmsToXYZ.
	oklabToLMS = matrix3{
		0.99999999845051981432, 0.39633779217376785678, 0.21580375806075880339,
		1.0000000088817607767, -0.1055613423236563494, -0.063854174771705903402,
		1.0000000546724109177, -0.089484182094965759684, -1.2914855378640917399,
	}
	lmsToXYZ = matrix3{
		1.2268798733741557, -0.5578149965554813, 0.28139105017721583,
		-0.04057576262431372, 1.1122868293970594, -0.07171106666151701,
		-0.07637294974672142, -0.4214933239627914, 1.5869240244272418,
	}
)

const (
	whiteX = 95.047 / 100
	whiteY = 100.0 / 100
	whiteZ = 108.883 / 100
)

// oklchToOKLab converts polar OKLCH to rectangular OKLab. A NaN hue
// contributes nothing: both axes collapse to zero.
func oklchToOKLab(l, c, h float64) (float64, float64, float64) {
	if math.IsNaN(h) {
		return l, 0, 0
	}
	rad := h * math.Pi / 180
	return l, c * math.Cos(rad), c * math.Sin(rad)
}

// oklabToXYZ maps OKLab to CIE XYZ through the cubed-LMS intermediate.
func oklabToXYZ(l, a, b float64) (float64, float64, float64) {
	l2, m2, s2 := oklabToLMS.apply(l, a, b)
	return lmsToXYZ.apply(l2*l2*l2, m2*m2*m2, s2*s2*s2)
}

// labToXYZ maps CIE Lab to XYZ with the cube-law inverse above the knee and
// a linear extension below it, scaled by the D65 reference white.
func labToXYZ(l, a, b float64) (float64, float64, float64) {
	fy := (l + 16) / 116
	fx := a/500 + fy
	fz := fy - b/200
	return labInv(fx) * whiteX, labInv(fy) * whiteY, labInv(fz) * whiteZ
}

func labInv(t float64) float64 {
	if t3 := t * t * t; t3 > 0.00885645167 {
		return t3
	}
	return (t - 16.0/116) / 7.787
}

// linearToGamma applies the sRGB transfer function to a linear-light value.
// Negative input clamps to zero first.
func linearToGamma(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		v = 0
	}
	if v <= 0.0031308 {
		return 12.92 * v
	}
	return 1.055*math.Pow(v, 1/2.4) - 0.055
}

// linearToGammaSigned is the signed form used by the OKLab pipelines: the
// curve is mirrored around zero instead of clamping.
func linearToGammaSigned(v float64) float64 {
	if abs := math.Abs(v); abs > 0.0031308 {
		return math.Copysign(1.055*math.Pow(abs, 1/2.4)-0.055, v)
	}
	return 12.92 * v
}

// gammaToLinear inverts the sRGB transfer function.
func gammaToLinear(v float64) float64 {
	if abs := math.Abs(v); abs <= 0.04045 {
		return v / 12.92
	} else {
		return math.Copysign(math.Pow((abs+0.055)/1.055, 2.4), v)
	}
}

// channel8 scales a 0-1 component to an 8-bit channel with round and clamp.
func channel8(v float64) uint8 {
	v = math.Round(v * 255)
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
