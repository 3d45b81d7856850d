package csscolor

import (
	"errors"
	"fmt"
	"testing"

	"github.com/mazznoer/csscolorparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		input string
		want  Color
	}{
		{"#f00", 0xff0000ff},
		{"#f00f", 0xff0000ff},
		{"#ff0000", 0xff0000ff},
		{"#ff000080", 0xff000080},
		{"#abc", 0xaabbccff},
		{"#ABCDEF", 0xabcdefff},
		{"#00000000", 0x00000000},
	}
	for _, tt := range tests {
		got, err := Parse(tt.input)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %08x, want %08x", tt.input, uint32(got), uint32(tt.want))
		}
	}
}

func TestParseHexBadLengthFallsThrough(t *testing.T) {
	for _, input := range []string{"#f", "#ff", "#fffff", "#fffffff", "#fffffffff"} {
		got, err := Parse(input)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error %v", input, err)
			continue
		}
		if got != Transparent {
			t.Errorf("Parse(%q) = %08x, want transparent", input, uint32(got))
		}
	}
}

func TestParseNamedCaseInsensitive(t *testing.T) {
	for _, input := range []string{"red", "RED", "Red", "rEd"} {
		got, err := Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q): %v", input, err)
		}
		if got != 0xff0000ff {
			t.Errorf("Parse(%q) = %08x, want ff0000ff", input, uint32(got))
		}
	}
}

func TestParseNamed(t *testing.T) {
	tests := []struct {
		input string
		want  Color
	}{
		{"black", 0x000000ff},
		{"white", 0xffffffff},
		{"rebeccapurple", 0x663399ff},
		{"transparent", 0x00000000},
	}
	for _, tt := range tests {
		got, err := Parse(tt.input)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %08x, want %08x", tt.input, uint32(got), uint32(tt.want))
		}
	}
}

func TestParseUnknownIdentIsTransparent(t *testing.T) {
	got, err := Parse("notacolorkeyword")
	require.NoError(t, err)
	assert.Equal(t, Transparent, got)
}

func TestParseFunctions(t *testing.T) {
	tests := []struct {
		input string
		want  Color
	}{
		{"rgb(255, 0, 0)", 0xff0000ff},
		{"rgb(255 0 0)", 0xff0000ff},
		{"rgb(255,0,0,1)", 0xff0000ff},
		{"rgba(0,0,0,0)", 0x00000000},
		{"rgba(255, 0, 0, 0.2)", 0xff000033},
		{"rgb(100%, 0%, 50%)", 0xff0080ff},
		{"rgb(255 0 0 / 20%)", 0xff000033},
		{"rgb(1,2)", 0x00000000},
		{"hsl(0, 0%, 50%)", 0x808080ff},
		{"hsl(120, 100%, 25%)", 0x008000ff},
		{"hsl(0.5turn, 100%, 50%)", 0x00ffffff},
		{"hsla(240, 100%, 50%, 0.2)", 0x0000ff33},
		{"lab(53.24 80.09 67.2)", 0xff0000ff},
		{"oklab(0.62796 0.22486 0.12585)", 0xff0000ff},
		{"oklch(0.62796 0.25768 29.2338)", 0xff0000ff},
		{"oklch(62.796% 0.25768 29.2338deg)", 0xff0000ff},
		{"color(srgb 1 0 0)", 0xff0000ff},
		{"color(srgb 1 0 0 / 0.2)", 0xff000033},
		{"color(srgb-linear 1 0 0)", 0xff0000ff},
		{"color(xyz 0 0 0)", 0x000000ff},
		{"RGB(255, 0, 0)", 0xff0000ff},
	}
	for _, tt := range tests {
		got, err := Parse(tt.input)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %08x, want %08x", tt.input, uint32(got), uint32(tt.want))
		}
	}
}

func TestParseUnsupportedFunction(t *testing.T) {
	_, err := Parse("lch(52.2% 72.2 50)")
	var fnErr *UnsupportedFunctionError
	require.ErrorAs(t, err, &fnErr)
	assert.Equal(t, "lch", fnErr.Name)

	_, err = Parse("light-dark(white, black)")
	require.ErrorAs(t, err, &fnErr)
	assert.Equal(t, "light-dark", fnErr.Name)
}

func TestParseUnsupportedColorSpace(t *testing.T) {
	_, err := Parse("color(display-p3 1 0 0)")
	var spaceErr *UnsupportedColorSpaceError
	require.ErrorAs(t, err, &spaceErr)
	assert.Equal(t, "display-p3", spaceErr.Name)
}

func TestParseRelativeColor(t *testing.T) {
	_, err := Parse("color(from white srgb r g b)")
	assert.True(t, errors.Is(err, ErrRelativeColor))
}

func TestResolveNonColorTokenIsTransparent(t *testing.T) {
	for _, input := range []string{"42", "50%", "10px", "/", "'red'", ""} {
		got, err := Parse(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, Transparent, got, "input %q", input)
	}
}

// Decoding a 6-digit hex literal and serializing the result must reproduce
// the parsed channel values exactly.
func TestHexStringRoundTrip(t *testing.T) {
	for _, c := range []Color{0x000000ff, 0xff0000ff, 0x123456ff, 0xfedcbaff} {
		got, err := Parse(c.Hex())
		require.NoError(t, err)
		require.Equal(t, c, got)
		assert.Equal(t, fmt.Sprintf("rgb(%d,%d,%d)", c.R(), c.G(), c.B()), got.String())
	}
}

// Serializing any resolved color and parsing it back is lossless: the rgb()
// form carries exact channel bytes and the rgba() alpha fraction survives
// the shortest-float round trip.
func TestStringParseRoundTrip(t *testing.T) {
	colors := []Color{0x00000000, 0xff0000ff, 0x12345678, 0xdeadbeef, 0x00000001}
	for _, c := range colors {
		got, err := Parse(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got, "round trip of %08x via %q", uint32(c), c.String())
	}
}

// csscolorparser is an independent implementation of the same CSS color
// grammar; both must agree on the shared subset.
func TestParseAgainstCSSColorParser(t *testing.T) {
	inputs := []string{
		"#fff",
		"#ff0000",
		"#ff000080",
		"red",
		"REBECCAPURPLE",
		"transparent",
		"rgb(1, 2, 3)",
		"rgb(255 128 0)",
		"rgba(10, 20, 30, 0.5)",
		"hsl(120, 100%, 25%)",
		"hsl(300, 50%, 50%)",
	}
	for _, input := range inputs {
		got, err := Parse(input)
		require.NoError(t, err, "input %q", input)

		want, err := csscolorparser.Parse(input)
		require.NoError(t, err, "oracle rejected %q", input)
		wr, wg, wb, wa := want.RGBA255()

		assert.InDelta(t, float64(wr), float64(got.R()), 1, "R of %q", input)
		assert.InDelta(t, float64(wg), float64(got.G()), 1, "G of %q", input)
		assert.InDelta(t, float64(wb), float64(got.B()), 1, "B of %q", input)
		assert.InDelta(t, float64(wa), float64(got.A()), 1, "A of %q", input)
	}
}

func TestResolveConcurrent(t *testing.T) {
	// The registry and named table are immutable; concurrent resolution
	// must be safe.
	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 1000; j++ {
				if c, err := Parse("hotpink"); err != nil || c != 0xff69b4ff {
					t.Errorf("concurrent Parse: %08x, %v", uint32(c), err)
					return
				}
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}

func FuzzParse(f *testing.F) {
	f.Add("#ff0000")
	f.Add("rebeccapurple")
	f.Add("rgb(255, 0, 0)")
	f.Add("hsl(0.5turn 100% 50% / 20%)")
	f.Add("oklch(0.62796 0.25768 29.2338deg)")
	f.Add("color(srgb-linear 0.5 0.5 0.5)")
	f.Add("color(from white srgb r g b)")

	f.Fuzz(func(t *testing.T, input string) {
		c, err := Parse(input)
		if err != nil {
			return
		}
		got, err := Parse(c.String())
		if err != nil {
			t.Fatalf("serialization of %08x did not re-parse: %v", uint32(c), err)
		}
		if got != c {
			t.Fatalf("round trip of %08x via %q gave %08x", uint32(c), c.String(), uint32(got))
		}
	})
}
