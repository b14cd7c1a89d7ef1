package sph

import (
	"math"
	"testing"

	"github.com/pthm-cable/fluid65/vec"
)

func TestSeedDeterministic(t *testing.T) {
	a, err := New(testParams(100))
	if err != nil {
		t.Fatal(err)
	}
	b, _ := New(testParams(100))

	a.Seed(99)
	b.Seed(99)

	for i := range a.parts {
		if a.parts[i] != b.parts[i] {
			t.Fatalf("particle %d differs across identically seeded fluids", i)
		}
	}

	b.Seed(100)
	same := true
	for i := range a.parts {
		if a.parts[i].Position != b.parts[i].Position {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical clouds")
	}
}

func TestSeedInitialState(t *testing.T) {
	f, err := New(testParams(2000))
	if err != nil {
		t.Fatal(err)
	}
	f.Seed(5)

	var sum, sumSq float64
	for _, p := range f.parts {
		if !vec.IsZero(p.Velocity) {
			t.Fatal("seeded particle has non-zero velocity")
		}
		if p.Mass != f.params.ParticleMass {
			t.Fatalf("mass = %g, want %g", p.Mass, f.params.ParticleMass)
		}
		for _, c := range []float32{p.Position.X, p.Position.Y, p.Position.Z} {
			sum += float64(c)
			sumSq += float64(c) * float64(c)
		}
	}

	n := float64(3 * len(f.parts))
	mean := sum / n
	stddev := math.Sqrt(sumSq/n - mean*mean)

	// Loose statistical bounds: per-axis Gaussian, mean 0, stddev 5.
	if math.Abs(mean) > 0.5 {
		t.Errorf("sample mean = %g, want ~0", mean)
	}
	if stddev < 4 || stddev > 6 {
		t.Errorf("sample stddev = %g, want ~5", stddev)
	}
}
