package cli

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"honnef.co/go/mobius"
)

func TestParsePoint(t *testing.T) {
	tests := []struct {
		in   string
		want complex128
	}{
		{"2", 2},
		{"1.5-2i", 1.5 - 2i},
		{"(0+1i)", 1i},
		{" 3i ", 3i},
		{"inf", mobius.Infinity},
		{"∞", mobius.Infinity},
		{"Infinity", mobius.Infinity},
		{"-Inf+1i", mobius.Infinity},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parsePoint(tt.in)
			if err != nil {
				t.Fatalf("parsePoint(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("parsePoint(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	if _, err := parsePoint("nope"); err == nil {
		t.Error("parsePoint(\"nope\") should fail")
	}
}

func TestParseLFT(t *testing.T) {
	f, err := parseLFT("1, 2i, 0, 1")
	if err != nil {
		t.Fatal(err)
	}
	if want := (mobius.LFT{A: 1, B: 2i, C: 0, D: 1}); f != want {
		t.Errorf("parseLFT() = %v, want %v", f, want)
	}

	tests := []struct {
		in   string
		want error
	}{
		{"1,2,2,4", mobius.ErrSingular},
		{"1,inf,0,1", mobius.ErrNonFiniteCoefficient},
	}
	for _, tt := range tests {
		if _, err := parseLFT(tt.in); !errors.Is(err, tt.want) {
			t.Errorf("parseLFT(%q) error = %v, want %v", tt.in, err, tt.want)
		}
	}

	for _, in := range []string{"1,2,3", "1,2,x,4", ""} {
		if _, err := parseLFT(in); err == nil {
			t.Errorf("parseLFT(%q) should fail", in)
		}
	}
}

func TestParseVec3(t *testing.T) {
	v, err := parseVec3("1, -2.5, 0")
	if err != nil {
		t.Fatal(err)
	}
	if want := (mgl64.Vec3{1, -2.5, 0}); v != want {
		t.Errorf("parseVec3() = %v, want %v", v, want)
	}
	for _, in := range []string{"1,2", "a,b,c"} {
		if _, err := parseVec3(in); err == nil {
			t.Errorf("parseVec3(%q) should fail", in)
		}
	}
}

func TestFormatRoundTrip(t *testing.T) {
	for _, z := range []complex128{0, 1.25 - 3i, mobius.Infinity, 1e-300i} {
		got, err := parsePoint(formatPoint(z))
		if err != nil {
			t.Fatal(err)
		}
		if got != z {
			t.Errorf("round trip of %v gave %v", z, got)
		}
	}

	f := mobius.LFT{A: 0.1, B: -2i, C: 1, D: 3 + 4i}
	g, err := parseLFT(formatLFT(f))
	if err != nil {
		t.Fatal(err)
	}
	if f != g {
		t.Errorf("round trip of %v gave %v", f, g)
	}
}
