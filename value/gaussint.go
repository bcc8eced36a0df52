// Copyright 2025 The dynamic-complex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import "math/big"

// GaussInt is a Gaussian integer: a complex number whose real and
// imaginary parts are arbitrary-precision integers.
type GaussInt struct {
	re, im *big.Int
}

// NewGaussInt returns the Gaussian integer re + im·i.
func NewGaussInt(re, im int64) *GaussInt {
	return &GaussInt{big.NewInt(re), big.NewInt(im)}
}

// GaussIntFromBig returns the Gaussian integer re + im·i.
// The components are copied; the caller keeps ownership of the arguments.
func GaussIntFromBig(re, im *big.Int) *GaussInt {
	if re == nil || im == nil {
		Errorf("GaussIntFromBig: nil component")
	}
	return &GaussInt{new(big.Int).Set(re), new(big.Int).Set(im)}
}

// Real returns a copy of the real part.
func (z *GaussInt) Real() *big.Int {
	return new(big.Int).Set(z.re)
}

// Imag returns a copy of the imaginary part.
func (z *GaussInt) Imag() *big.Int {
	return new(big.Int).Set(z.im)
}

// Add returns z + w.
func (z *GaussInt) Add(w *GaussInt) *GaussInt {
	return &GaussInt{
		new(big.Int).Add(z.re, w.re),
		new(big.Int).Add(z.im, w.im),
	}
}

// Sub returns z - w.
func (z *GaussInt) Sub(w *GaussInt) *GaussInt {
	return &GaussInt{
		new(big.Int).Sub(z.re, w.re),
		new(big.Int).Sub(z.im, w.im),
	}
}

// Mul returns z * w by the schoolbook formula
//
//	(a+bi)(c+di) = (ac-bd) + (ad+bc)i
func (z *GaussInt) Mul(w *GaussInt) *GaussInt {
	ac := new(big.Int).Mul(z.re, w.re)
	bd := new(big.Int).Mul(z.im, w.im)
	ad := new(big.Int).Mul(z.re, w.im)
	bc := new(big.Int).Mul(z.im, w.re)
	return &GaussInt{ac.Sub(ac, bd), ad.Add(ad, bc)}
}

// Div returns z / w as a rational complex number. The Gaussian integers
// are not closed under division, so the quotient widens to the rational
// closure instead of rounding. Callers wanting an integer quotient convert
// back explicitly; GaussRat.IsGaussInt reports whether the division was
// exact. Division by zero is a contract violation.
func (z *GaussInt) Div(w *GaussInt) *GaussRat {
	if w.IsZero() {
		Errorf("division of gaussian integer by zero")
	}
	return z.Rat().Div(w.Rat())
}

// Neg returns -z.
func (z *GaussInt) Neg() *GaussInt {
	return &GaussInt{
		new(big.Int).Neg(z.re),
		new(big.Int).Neg(z.im),
	}
}

// Conj returns the complex conjugate of z: for a+bi, a-bi.
func (z *GaussInt) Conj() *GaussInt {
	return &GaussInt{
		new(big.Int).Set(z.re),
		new(big.Int).Neg(z.im),
	}
}

// Equal reports whether z and w have equal components.
func (z *GaussInt) Equal(w *GaussInt) bool {
	return z.re.Cmp(w.re) == 0 && z.im.Cmp(w.im) == 0
}

// IsZero reports whether z is 0 + 0i.
func (z *GaussInt) IsZero() bool {
	return z.re.Sign() == 0 && z.im.Sign() == 0
}

// IsReal reports whether the imaginary part of z is zero.
func (z *GaussInt) IsReal() bool {
	return z.im.Sign() == 0
}

// IsImag reports whether the real part of z is zero.
func (z *GaussInt) IsImag() bool {
	return z.re.Sign() == 0
}

func (z *GaussInt) String() string {
	return formatComplex(z.re.String(), z.im.String(),
		z.re.Sign() == 0, z.im.Sign() == 0,
		z.im.Cmp(intOne) == 0, z.im.Cmp(intNegOne) == 0,
		z.im.Sign() < 0)
}
