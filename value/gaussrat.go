// Copyright 2025 The dynamic-complex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import "math/big"

// GaussRat is a complex number whose real and imaginary parts are exact
// rationals. Components are always in lowest terms with a positive
// denominator; big.Rat maintains that form on every operation, so no
// reduction step is needed here.
type GaussRat struct {
	re, im *big.Rat
}

// NewGaussRat returns the rational complex number rnum/rden + (inum/iden)i.
// The denominators must be nonzero.
func NewGaussRat(rnum, rden, inum, iden int64) *GaussRat {
	if rden == 0 || iden == 0 {
		Errorf("NewGaussRat: zero denominator")
	}
	return &GaussRat{big.NewRat(rnum, rden), big.NewRat(inum, iden)}
}

// GaussRatFromBig returns the rational complex number re + im·i.
// The components are copied; the caller keeps ownership of the arguments.
func GaussRatFromBig(re, im *big.Rat) *GaussRat {
	if re == nil || im == nil {
		Errorf("GaussRatFromBig: nil component")
	}
	return &GaussRat{new(big.Rat).Set(re), new(big.Rat).Set(im)}
}

// Real returns a copy of the real part.
func (z *GaussRat) Real() *big.Rat {
	return new(big.Rat).Set(z.re)
}

// Imag returns a copy of the imaginary part.
func (z *GaussRat) Imag() *big.Rat {
	return new(big.Rat).Set(z.im)
}

// Add returns z + w.
func (z *GaussRat) Add(w *GaussRat) *GaussRat {
	return &GaussRat{
		new(big.Rat).Add(z.re, w.re),
		new(big.Rat).Add(z.im, w.im),
	}
}

// Sub returns z - w.
func (z *GaussRat) Sub(w *GaussRat) *GaussRat {
	return &GaussRat{
		new(big.Rat).Sub(z.re, w.re),
		new(big.Rat).Sub(z.im, w.im),
	}
}

// Mul returns z * w by the schoolbook formula
//
//	(a+bi)(c+di) = (ac-bd) + (ad+bc)i
func (z *GaussRat) Mul(w *GaussRat) *GaussRat {
	ac := new(big.Rat).Mul(z.re, w.re)
	bd := new(big.Rat).Mul(z.im, w.im)
	ad := new(big.Rat).Mul(z.re, w.im)
	bc := new(big.Rat).Mul(z.im, w.re)
	return &GaussRat{ac.Sub(ac, bd), ad.Add(ad, bc)}
}

// Div returns z / w using
//
//	(a+bi)/(c+di) = ((ac+bd) + (bc-ad)i) / (c²+d²)
//
// computed componentwise. Division by zero is a contract violation.
func (z *GaussRat) Div(w *GaussRat) *GaussRat {
	if w.IsZero() {
		Errorf("division of rational complex by zero")
	}
	c2 := new(big.Rat).Mul(w.re, w.re)
	d2 := new(big.Rat).Mul(w.im, w.im)
	denom := c2.Add(c2, d2)

	ac := new(big.Rat).Mul(z.re, w.re)
	bd := new(big.Rat).Mul(z.im, w.im)
	bc := new(big.Rat).Mul(z.im, w.re)
	ad := new(big.Rat).Mul(z.re, w.im)

	re := ac.Add(ac, bd)
	re.Quo(re, denom)
	im := bc.Sub(bc, ad)
	im.Quo(im, denom)
	return &GaussRat{re, im}
}

// Recip returns 1 / z. Reciprocal of zero is a contract violation.
func (z *GaussRat) Recip() *GaussRat {
	if z.IsZero() {
		Errorf("reciprocal of zero")
	}
	return GaussRatOne().Div(z)
}

// Neg returns -z.
func (z *GaussRat) Neg() *GaussRat {
	return &GaussRat{
		new(big.Rat).Neg(z.re),
		new(big.Rat).Neg(z.im),
	}
}

// Conj returns the complex conjugate of z: for a+bi, a-bi.
func (z *GaussRat) Conj() *GaussRat {
	return &GaussRat{
		new(big.Rat).Set(z.re),
		new(big.Rat).Neg(z.im),
	}
}

// Equal reports whether z and w have equal components.
func (z *GaussRat) Equal(w *GaussRat) bool {
	return z.re.Cmp(w.re) == 0 && z.im.Cmp(w.im) == 0
}

// IsZero reports whether z is 0 + 0i.
func (z *GaussRat) IsZero() bool {
	return z.re.Sign() == 0 && z.im.Sign() == 0
}

// IsReal reports whether the imaginary part of z is zero.
func (z *GaussRat) IsReal() bool {
	return z.im.Sign() == 0
}

// IsImag reports whether the real part of z is zero.
func (z *GaussRat) IsImag() bool {
	return z.re.Sign() == 0
}

// IsGaussInt reports whether both components have denominator 1, that is,
// whether z is in fact a Gaussian integer. Useful after GaussInt.Div to
// detect an exact integer quotient.
func (z *GaussRat) IsGaussInt() bool {
	return z.re.IsInt() && z.im.IsInt()
}

func (z *GaussRat) String() string {
	return formatComplex(z.re.RatString(), z.im.RatString(),
		z.re.Sign() == 0, z.im.Sign() == 0,
		z.im.Cmp(ratOne) == 0, z.im.Cmp(ratNegOne) == 0,
		z.im.Sign() < 0)
}
