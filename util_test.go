package mobius

import (
	"math/cmplx"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// assertNear fails unless got and want are within epsilon of each other,
// relative to the magnitude of want once it exceeds 1. Infinity only matches
// itself.
func assertNear(t *testing.T, got, want complex128, epsilon float64) {
	t.Helper()
	if IsInf(want) || IsInf(got) {
		if got != Infinity || !IsInf(want) {
			t.Fatalf("got %v, expected %v", got, want)
		}
		return
	}
	if d := cmplx.Abs(got - want); d > epsilon*max(1, cmplx.Abs(want)) {
		t.Fatalf("got %v, expected %v (off by %g)", got, want, d)
	}
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

// gaussInt returns a random Gaussian integer with components in [-n, n].
// Products of such numbers are exact in float64, which keeps exact equality
// meaningful in tests.
func gaussInt(r *rand.Rand, n int) complex128 {
	return complex(float64(r.IntN(2*n+1)-n), float64(r.IntN(2*n+1)-n))
}

func randLFT(r *rand.Rand) LFT {
	for {
		f, err := New(gaussInt(r, 5), gaussInt(r, 5), gaussInt(r, 5), gaussInt(r, 5))
		if err == nil {
			return f
		}
	}
}

func randPoint(r *rand.Rand) complex128 {
	return complex(r.NormFloat64()*3, r.NormFloat64()*3)
}
