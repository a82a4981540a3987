package img2braille

import "testing"

func TestPaletteTableLayout(t *testing.T) {
	t.Parallel()

	p := NewPalette(RGBMethod{})

	// System colors.
	if p.Color(0) != (RGB{0, 0, 0}) {
		t.Errorf("Index 0 should be black, got %v", p.Color(0))
	}
	if p.Color(15) != (RGB{255, 255, 255}) {
		t.Errorf("Index 15 should be white, got %v", p.Color(15))
	}

	// Cube corners.
	if p.Color(16) != (RGB{0, 0, 0}) {
		t.Errorf("Index 16 should be cube black, got %v", p.Color(16))
	}
	if p.Color(231) != (RGB{255, 255, 255}) {
		t.Errorf("Index 231 should be cube white, got %v", p.Color(231))
	}
	if got := p.Color(196); got != (RGB{255, 0, 0}) {
		t.Errorf("Index 196 should be pure red, got %v", got)
	}

	// Cube arithmetic: 16 + 36r + 6g + b.
	if got := p.Color(16 + 36*1 + 6*2 + 3); got != (RGB{95, 135, 175}) {
		t.Errorf("Cube index 67 should be (95,135,175), got %v", got)
	}

	// Grayscale ramp 8..238 in steps of 10.
	if p.Color(232) != (RGB{8, 8, 8}) {
		t.Errorf("Index 232 should be (8,8,8), got %v", p.Color(232))
	}
	if p.Color(255) != (RGB{238, 238, 238}) {
		t.Errorf("Index 255 should be (238,238,238), got %v", p.Color(255))
	}
}

func TestNearestExactEntriesTieBreak(t *testing.T) {
	t.Parallel()

	p := NewPalette(RGBMethod{})

	// Colors that appear more than once in the table resolve to the
	// lowest index (first encountered in the scan).
	tests := []struct {
		c    RGB
		want ColorIndex
	}{
		{RGB{0, 0, 0}, 0},        // also cube index 16
		{RGB{255, 255, 255}, 15}, // also cube index 231
		{RGB{255, 0, 0}, 9},      // system bright red before 196
		{RGB{0, 255, 0}, 10},
		{RGB{0, 0, 255}, 12},
		{RGB{95, 135, 175}, 67},
		{RGB{8, 8, 8}, 232},
	}
	for _, tt := range tests {
		if got := p.Nearest(tt.c); got != tt.want {
			t.Errorf("Nearest(%v) = %d, want %d", tt.c, got, tt.want)
		}
	}
}

func TestNearestDeterministic(t *testing.T) {
	t.Parallel()

	p := NewPalette(RGBMethod{})
	q := NewPalette(RGBMethod{})

	// Sample the RGB space coarsely; both palettes and repeated calls
	// must agree.
	for r := 0; r < 256; r += 17 {
		for g := 0; g < 256; g += 17 {
			for b := 0; b < 256; b += 17 {
				c := RGB{uint8(r), uint8(g), uint8(b)}
				first := p.Nearest(c)
				if again := p.Nearest(c); again != first {
					t.Fatalf("Nearest(%v) unstable: %d then %d", c, first, again)
				}
				if other := q.Nearest(c); other != first {
					t.Fatalf("Nearest(%v) differs across palettes: %d vs %d",
						c, first, other)
				}
			}
		}
	}
}

func TestNearestGrayscaleUsesRamp(t *testing.T) {
	t.Parallel()

	p := NewPalette(RGBMethod{})

	// Mid grays should land on the grayscale ramp, not the cube.
	for _, v := range []uint8{8, 58, 108, 148, 198, 238} {
		idx := p.Nearest(RGB{v, v, v})
		if idx < 232 {
			t.Errorf("Gray %d mapped to %d, expected a ramp index >= 232", v, idx)
		}
	}
}

func TestNearestAcrossMethods(t *testing.T) {
	t.Parallel()

	// Every method must produce a valid, deterministic index for
	// arbitrary colors.
	methods := []ColorDistanceMethod{RGBMethod{}, RedmeanMethod{}, LABMethod{}}
	probes := []RGB{
		{0, 0, 0}, {255, 255, 255}, {200, 30, 140}, {12, 200, 77},
	}
	for _, m := range methods {
		p := NewPalette(m)
		for _, c := range probes {
			first := p.Nearest(c)
			if again := p.Nearest(c); again != first {
				t.Errorf("%s: Nearest(%v) unstable", m.Name(), c)
			}
		}
		// Exact palette colors map to themselves under any metric.
		if got := p.Color(p.Nearest(RGB{95, 135, 175})); got != (RGB{95, 135, 175}) {
			t.Errorf("%s: exact palette color did not round-trip, got %v",
				m.Name(), got)
		}
	}
}

func TestMethodByName(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"rgb", "redmean", "lab"} {
		if _, ok := MethodByName(name); !ok {
			t.Errorf("MethodByName(%q) should resolve", name)
		}
	}
	if _, ok := MethodByName("cmyk"); ok {
		t.Error("MethodByName should reject unknown names")
	}
}
