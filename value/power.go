// Copyright 2025 The dynamic-complex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import "math/cmplx"

// Exp returns e**z.
func (z *Complex) Exp() *Complex {
	return &Complex{cmplx.Exp(z.v)}
}

// Log returns the principal natural logarithm of z; the imaginary part of
// the result lies in (-π, π]. Logarithm of zero is a contract violation.
func (z *Complex) Log() *Complex {
	if z.IsZero() {
		Errorf("logarithm of zero")
	}
	return &Complex{cmplx.Log(z.v)}
}

// Pow returns z**w on the principal branch.
func (z *Complex) Pow(w *Complex) *Complex {
	return &Complex{cmplx.Pow(z.v, w.v)}
}

// Sqrt returns the principal square root of z; the real part of the
// result is >= 0.
func (z *Complex) Sqrt() *Complex {
	return &Complex{cmplx.Sqrt(z.v)}
}
