// Copyright 2025 The dynamic-complex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"math"
	"math/big"
)

// The conversion lattice:
//
//	GaussInt ──(exact)──▶ GaussRat ──(rounds)──▶ Complex
//	GaussInt ──(exact up to float64 range)─────▶ Complex
//	GaussRat ──(Round: nearest integer)────────▶ GaussInt
//	Complex  ──(Round: nearest integer)────────▶ GaussInt
//	Complex  ──(Rat: bounded denominator)──────▶ GaussRat

// Rat returns z as a rational complex number; the conversion is exact.
func (z *GaussInt) Rat() *GaussRat {
	return &GaussRat{
		new(big.Rat).SetInt(z.re),
		new(big.Rat).SetInt(z.im),
	}
}

// Complex returns z with float64 components, exact while the components
// fit; larger components round, and components beyond the float64 range
// become infinities.
func (z *GaussInt) Complex() *Complex {
	re, _ := new(big.Float).SetInt(z.re).Float64()
	im, _ := new(big.Float).SetInt(z.im).Float64()
	return NewComplex(re, im)
}

// Complex returns z with float64 components, rounding each part to the
// nearest double.
func (z *GaussRat) Complex() *Complex {
	re, _ := z.re.Float64()
	im, _ := z.im.Float64()
	return NewComplex(re, im)
}

// Round returns the Gaussian integer nearest to z, rounding each
// component half away from zero. The rounding works on the numerator and
// denominator directly, so it is exact even for components far outside
// the float64 range.
func (z *GaussRat) Round() *GaussInt {
	return &GaussInt{roundRat(z.re), roundRat(z.im)}
}

// Round returns the Gaussian integer nearest to z, rounding each
// component half away from zero. Rounding a NaN or infinite component is
// a contract violation.
func (z *Complex) Round() *GaussInt {
	if z.IsNaN() || z.IsInf() {
		Errorf("cannot round %s to a gaussian integer", z)
	}
	return &GaussInt{roundFloat(real(z.v)), roundFloat(imag(z.v))}
}

// Rat returns a rational approximation of z in which each component's
// denominator is at most maxDenominator, found by walking the continued
// fraction convergents of the component. A non-positive maxDenominator,
// or a NaN or infinite component, is a contract violation.
func (z *Complex) Rat(maxDenominator int64) *GaussRat {
	if maxDenominator <= 0 {
		Errorf("max denominator must be positive; have %d", maxDenominator)
	}
	if z.IsNaN() || z.IsInf() {
		Errorf("cannot approximate %s as a rational", z)
	}
	maxDen := big.NewInt(maxDenominator)
	return &GaussRat{
		approxFloat(real(z.v), maxDen),
		approxFloat(imag(z.v), maxDen),
	}
}

// roundRat returns the integer nearest to r, half away from zero:
// for r = n/d with d > 0, sign(n)·⌊(2|n|+d)/2d⌋.
func roundRat(r *big.Rat) *big.Int {
	num := new(big.Int).Abs(r.Num())
	num.Mul(num, intTwo)
	num.Add(num, r.Denom())
	den := new(big.Int).Mul(r.Denom(), intTwo)
	num.Quo(num, den)
	if r.Sign() < 0 {
		num.Neg(num)
	}
	return num
}

// roundFloat returns the integer nearest to the finite x, half away from
// zero.
func roundFloat(x float64) *big.Int {
	i, _ := big.NewFloat(math.Round(x)).Int(nil)
	return i
}

// approxFloat returns the last continued fraction convergent of the
// finite x whose denominator does not exceed maxDen. The expansion is
// computed from the exact binary rational of x, so no rounding enters
// before the cutoff.
func approxFloat(x float64, maxDen *big.Int) *big.Rat {
	r := new(big.Rat).SetFloat64(x)
	neg := r.Sign() < 0

	num := new(big.Int).Abs(r.Num())
	den := new(big.Int).Set(r.Denom())

	// Convergents p/q; p0/q0 and p1/q1 are the two previous ones.
	p0, q0 := big.NewInt(0), big.NewInt(1)
	p1, q1 := big.NewInt(1), big.NewInt(0)
	for den.Sign() != 0 {
		a, rem := new(big.Int).QuoRem(num, den, new(big.Int))
		p := new(big.Int).Mul(a, p1)
		p.Add(p, p0)
		q := new(big.Int).Mul(a, q1)
		q.Add(q, q0)
		if q.Cmp(maxDen) > 0 {
			break
		}
		p0, q0, p1, q1 = p1, q1, p, q
		num, den = den, rem
	}

	result := new(big.Rat).SetFrac(p1, q1)
	if neg {
		result.Neg(result)
	}
	return result
}
