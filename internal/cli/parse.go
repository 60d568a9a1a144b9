package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"honnef.co/go/mobius"
)

// parsePoint parses a point of the extended complex plane.
func parsePoint(s string) (complex128, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "inf", "+inf", "-inf", "infinity", "∞":
		return mobius.Infinity, nil
	}
	z, err := strconv.ParseComplex(s, 128)
	if err != nil {
		return 0, fmt.Errorf("invalid point %q", s)
	}
	if mobius.IsInf(z) {
		return mobius.Infinity, nil
	}
	return z, nil
}

// parsePoints parses every element of args with parsePoint.
func parsePoints(args []string) ([]complex128, error) {
	out := make([]complex128, len(args))
	for i, arg := range args {
		z, err := parsePoint(arg)
		if err != nil {
			return nil, err
		}
		out[i] = z
	}
	return out, nil
}

// parseLFT parses a transformation written as "a,b,c,d".
func parseLFT(s string) (mobius.LFT, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return mobius.LFT{}, fmt.Errorf("invalid transformation %q: want 4 comma-separated coefficients, got %d", s, len(parts))
	}
	var c [4]complex128
	for i, part := range parts {
		// Coefficients are numbers, never the point at infinity, but we
		// let New report infinite ones.
		z, err := parsePoint(part)
		if err != nil {
			return mobius.LFT{}, fmt.Errorf("invalid transformation %q: %w", s, err)
		}
		c[i] = z
	}
	f, err := mobius.New(c[0], c[1], c[2], c[3])
	if err != nil {
		return mobius.LFT{}, fmt.Errorf("invalid transformation %q: %w", s, err)
	}
	return f, nil
}

// parseVec3 parses a vector written as "x,y,z".
func parseVec3(s string) (mgl64.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return mgl64.Vec3{}, fmt.Errorf("invalid vector %q: want 3 comma-separated components, got %d", s, len(parts))
	}
	var v mgl64.Vec3
	for i, part := range parts {
		x, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return mgl64.Vec3{}, fmt.Errorf("invalid vector %q", s)
		}
		v[i] = x
	}
	return v, nil
}

// formatPoint formats z so that parsePoint can read it back.
func formatPoint(z complex128) string {
	if mobius.IsInf(z) {
		return "inf"
	}
	return strconv.FormatComplex(z, 'g', -1, 128)
}

func formatVec3(v mgl64.Vec3) string {
	return fmt.Sprintf("%s,%s,%s",
		strconv.FormatFloat(v[0], 'g', -1, 64),
		strconv.FormatFloat(v[1], 'g', -1, 64),
		strconv.FormatFloat(v[2], 'g', -1, 64))
}

// formatLFT formats f so that parseLFT can read it back.
func formatLFT(f mobius.LFT) string {
	c := f.Coefficients()
	return fmt.Sprintf("%s,%s,%s,%s", formatPoint(c[0]), formatPoint(c[1]), formatPoint(c[2]), formatPoint(c[3]))
}
