// Copyright 2025 The dynamic-complex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import "math/cmplx"

// Circular and hyperbolic functions, delegated to the host complex-math
// library. NaN and infinity handling is whatever math/cmplx provides.

// Sin returns sin z.
func (z *Complex) Sin() *Complex {
	return &Complex{cmplx.Sin(z.v)}
}

// Cos returns cos z.
func (z *Complex) Cos() *Complex {
	return &Complex{cmplx.Cos(z.v)}
}

// Tan returns tan z.
func (z *Complex) Tan() *Complex {
	return &Complex{cmplx.Tan(z.v)}
}

// Sinh returns sinh z.
func (z *Complex) Sinh() *Complex {
	return &Complex{cmplx.Sinh(z.v)}
}

// Cosh returns cosh z.
func (z *Complex) Cosh() *Complex {
	return &Complex{cmplx.Cosh(z.v)}
}

// Tanh returns tanh z.
func (z *Complex) Tanh() *Complex {
	return &Complex{cmplx.Tanh(z.v)}
}
