package csscolor

import "testing"

func TestPackChannelRoundTrip(t *testing.T) {
	samples := []uint8{0, 1, 17, 64, 127, 128, 200, 254, 255}
	for _, r := range samples {
		for _, g := range samples {
			for _, b := range samples {
				c := Pack(r, g, b, 1)
				if c.R() != r || c.G() != g || c.B() != b || c.A() != 255 {
					t.Fatalf("Pack(%d,%d,%d,1) = %08x: got channels (%d,%d,%d,%d)",
						r, g, b, uint32(c), c.R(), c.G(), c.B(), c.A())
				}
			}
		}
	}
}

func TestPackAlphaRounding(t *testing.T) {
	// Every byte-granular alpha fraction must survive pack exactly.
	for i := 0; i <= 255; i++ {
		c := Pack(10, 20, 30, float64(i)/255)
		if c.A() != uint8(i) {
			t.Errorf("Pack alpha %d/255: got alpha %d", i, c.A())
		}
	}
}

func TestPackAlphaClamped(t *testing.T) {
	if got := Pack(0, 0, 0, 1.5).A(); got != 255 {
		t.Errorf("alpha 1.5: got %d, want 255", got)
	}
	if got := Pack(0, 0, 0, -0.5).A(); got != 0 {
		t.Errorf("alpha -0.5: got %d, want 0", got)
	}
}

func TestPackLayout(t *testing.T) {
	if c := Pack(0x12, 0x34, 0x56, 1); c != 0x123456ff {
		t.Errorf("Pack(0x12,0x34,0x56,1) = %08x, want 123456ff", uint32(c))
	}
	if c := Pack(255, 0, 0, 0); c != 0xff000000 {
		t.Errorf("Pack(255,0,0,0) = %08x, want ff000000", uint32(c))
	}
}

func TestIsTransparent(t *testing.T) {
	if !Transparent.IsTransparent() {
		t.Error("Transparent must report transparent")
	}
	if !Color(0xff000000).IsTransparent() {
		t.Error("color with zero alpha must report transparent")
	}
	if Color(0xff000001).IsTransparent() {
		t.Error("color with nonzero alpha must not report transparent")
	}
}

func TestColorString(t *testing.T) {
	tests := []struct {
		color Color
		want  string
	}{
		{0xff0000ff, "rgb(255,0,0)"},
		{0x00ff00ff, "rgb(0,255,0)"},
		{0x123456ff, "rgb(18,52,86)"},
		{0x00000000, "rgba(0,0,0,0)"},
		{0xff000033, "rgba(255,0,0,0.2)"},
		{0xff000080, "rgba(255,0,0,0.5019607843137255)"},
	}
	for _, tt := range tests {
		if got := tt.color.String(); got != tt.want {
			t.Errorf("Color(%08x).String() = %q, want %q", uint32(tt.color), got, tt.want)
		}
	}
}

func TestColorHex(t *testing.T) {
	tests := []struct {
		color Color
		want  string
	}{
		{0xff0000ff, "#ff0000"},
		{0x123456ff, "#123456"},
		{0x11223344, "#11223344"},
		{0x00000000, "#00000000"},
	}
	for _, tt := range tests {
		if got := tt.color.Hex(); got != tt.want {
			t.Errorf("Color(%08x).Hex() = %q, want %q", uint32(tt.color), got, tt.want)
		}
	}
}
