package sph

import "math"

// Kernel holds the smoothing kernels for one support radius. The three
// families come from Müller et al. 2003: poly6 for density and color-field
// interpolation, spiky for pressure gradients (steep near r=0, so close
// particles still repel), and the viscosity kernel whose laplacian is
// non-negative over the whole support.
//
// Every evaluation is zero outside the support ball. Normalization constants
// are exact; field estimates are consumed in absolute units downstream.
type Kernel struct {
	h  float32
	h2 float32

	poly6Norm float32 // 315 / (64π h⁹)
	spikyNorm float32 // 15 / (π h⁶)
	viscNorm  float32 // 45 / (π h⁶)
}

// NewKernel precomputes normalization constants for support radius h.
func NewKernel(h float32) Kernel {
	h64 := float64(h)
	h6 := math.Pow(h64, 6)
	h9 := math.Pow(h64, 9)
	return Kernel{
		h:         h,
		h2:        h * h,
		poly6Norm: float32(315.0 / (64.0 * math.Pi * h9)),
		spikyNorm: float32(15.0 / (math.Pi * h6)),
		viscNorm:  float32(45.0 / (math.Pi * h6)),
	}
}

// H returns the support radius.
func (k Kernel) H() float32 { return k.h }

// Poly6 is the density/color interpolation weight at distance r.
func (k Kernel) Poly6(r float32) float32 {
	if r > k.h {
		return 0
	}
	d := k.h2 - r*r
	return k.poly6Norm * d * d * d
}

// Poly6Deriv is the radial derivative of Poly6 at distance r. Negative on
// the open support, zero at r=0 and beyond h.
func (k Kernel) Poly6Deriv(r float32) float32 {
	if r > k.h {
		return 0
	}
	d := k.h2 - r*r
	return k.poly6Norm * -2 * r * 3 * d * d
}

// Poly6Laplacian is the laplacian of Poly6 at distance r.
func (k Kernel) Poly6Laplacian(r float32) float32 {
	if r > k.h {
		return 0
	}
	r2 := r * r
	return k.poly6Norm * 6 * (k.h2 - r2) * (5*r2 - k.h2)
}

// Spiky is the pressure kernel weight at distance r.
func (k Kernel) Spiky(r float32) float32 {
	if r > k.h {
		return 0
	}
	d := k.h - r
	return k.spikyNorm * d * d * d
}

// SpikyDeriv is the radial derivative of Spiky at distance r. Negative on
// the support and, unlike Poly6Deriv, non-vanishing as r→0.
func (k Kernel) SpikyDeriv(r float32) float32 {
	if r > k.h {
		return 0
	}
	d := k.h - r
	return k.spikyNorm * -3 * d * d
}

// ViscosityLaplacian is the laplacian of the viscosity kernel at distance r.
// Non-negative and monotonically decreasing over the support.
func (k Kernel) ViscosityLaplacian(r float32) float32 {
	if r > k.h {
		return 0
	}
	return k.viscNorm * (k.h - r)
}
