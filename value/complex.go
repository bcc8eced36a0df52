// Copyright 2025 The dynamic-complex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"math"
	"math/cmplx"
)

// Complex is a complex number with IEEE-754 double-precision components.
// Unlike the exact tiers it admits NaN and infinite components, which
// arithmetic propagates; use IsNaN and IsInf to detect them.
type Complex struct {
	v complex128
}

// NewComplex returns the complex number re + im·i.
func NewComplex(re, im float64) *Complex {
	return &Complex{complex(re, im)}
}

// Polar returns the complex number r·e**(iθ), that is,
// r·cos θ + i·r·sin θ.
func Polar(r, theta float64) *Complex {
	return &Complex{cmplx.Rect(r, theta)}
}

// Real returns the real part.
func (z *Complex) Real() float64 {
	return real(z.v)
}

// Imag returns the imaginary part.
func (z *Complex) Imag() float64 {
	return imag(z.v)
}

// Abs returns the magnitude √(re² + im²).
func (z *Complex) Abs() float64 {
	return cmplx.Abs(z.v)
}

// Arg returns the phase angle atan2(im, re), in [-π, π].
func (z *Complex) Arg() float64 {
	return cmplx.Phase(z.v)
}

// Add returns z + w.
func (z *Complex) Add(w *Complex) *Complex {
	return &Complex{z.v + w.v}
}

// Sub returns z - w.
func (z *Complex) Sub(w *Complex) *Complex {
	return &Complex{z.v - w.v}
}

// Mul returns z * w.
func (z *Complex) Mul(w *Complex) *Complex {
	return &Complex{z.v * w.v}
}

// Div returns z / w. Division by zero is a contract violation; division
// results that overflow or lose precision follow IEEE-754 arithmetic.
func (z *Complex) Div(w *Complex) *Complex {
	if w.IsZero() {
		Errorf("division of complex by zero")
	}
	return &Complex{z.v / w.v}
}

// Neg returns -z.
func (z *Complex) Neg() *Complex {
	return &Complex{-z.v}
}

// Conj returns the complex conjugate of z: for a+bi, a-bi.
func (z *Complex) Conj() *Complex {
	return &Complex{cmplx.Conj(z.v)}
}

// Equal reports whether z and w have equal components under IEEE-754
// comparison. A NaN component compares unequal to everything, including
// itself.
func (z *Complex) Equal(w *Complex) bool {
	return real(z.v) == real(w.v) && imag(z.v) == imag(w.v)
}

// IsZero reports whether z is 0 + 0i.
func (z *Complex) IsZero() bool {
	return real(z.v) == 0 && imag(z.v) == 0
}

// IsReal reports whether the imaginary part of z is zero.
func (z *Complex) IsReal() bool {
	return imag(z.v) == 0
}

// IsImag reports whether the real part of z is zero.
func (z *Complex) IsImag() bool {
	return real(z.v) == 0
}

// IsNaN reports whether either component of z is NaN.
func (z *Complex) IsNaN() bool {
	return math.IsNaN(real(z.v)) || math.IsNaN(imag(z.v))
}

// IsInf reports whether either component of z is infinite.
func (z *Complex) IsInf() bool {
	return math.IsInf(real(z.v), 0) || math.IsInf(imag(z.v), 0)
}

func (z *Complex) String() string {
	re, im := real(z.v), imag(z.v)
	return formatComplex(formatFloat(re), formatFloat(im),
		re == 0, im == 0, im == 1, im == -1, im < 0)
}
