// Copyright 2025 The dynamic-complex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package value implements complex-number arithmetic at three precisions:
//
//   - GaussInt: Gaussian integers, whose real and imaginary parts are
//     arbitrary-precision integers (math/big.Int).
//   - GaussRat: rational complex numbers, whose parts are exact reduced
//     fractions (math/big.Rat).
//   - Complex: floating-point complex numbers with IEEE-754 double
//     components (complex128).
//
// Values are immutable. Every operation returns a fresh value, and the
// big components handed to constructors or returned by accessors are
// copies, so no caller can alter a value after it is built. Immutable
// values are safe to share between goroutines.
//
// The tiers interoperate through an explicit conversion lattice.
// Widening (GaussInt to GaussRat) is exact; narrowing rounds or
// approximates and says so in its documentation. The one cross-tier
// arithmetic operation is GaussInt.Div, which returns a GaussRat: the
// Gaussian integers are not closed under division, and widening to the
// rational closure keeps the algebra exact instead of rounding silently.
//
// Each tier interns the five constants 0, 1, i, -1 and -i. Accessors such
// as GaussIntZero return the same value on every call, so constants may
// be compared by identity as well as by Equal.
//
// This is a pure value library: every failure is a contract violation
// (division by zero, logarithm of zero, a nil component) and is reported
// by panicking with an Error. There are no recoverable error returns.
package value

import "fmt"

// Error is the type with which this package panics on a contract
// violation.
type Error string

func (err Error) Error() string {
	return string(err)
}

// Errorf panics with the formatted message wrapped in an Error.
func Errorf(format string, args ...interface{}) {
	panic(Error(fmt.Sprintf(format, args...)))
}
