// Copyright 2025 The dynamic-complex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"math/big"
	"sync"
)

// Each tier interns the constants 0, 1, i, -1 and -i. The accessors below
// always return the same value, so constants may be compared by identity.
// Publication is one-shot and safe under concurrent first use; the values
// themselves are immutable like any other.

var (
	gaussIntConstOnce sync.Once

	gaussIntZero   *GaussInt
	gaussIntOne    *GaussInt
	gaussIntI      *GaussInt
	gaussIntNegOne *GaussInt
	gaussIntNegI   *GaussInt
)

func initGaussIntConsts() {
	gaussIntZero = NewGaussInt(0, 0)
	gaussIntOne = NewGaussInt(1, 0)
	gaussIntI = NewGaussInt(0, 1)
	gaussIntNegOne = NewGaussInt(-1, 0)
	gaussIntNegI = NewGaussInt(0, -1)
}

// GaussIntZero returns the interned Gaussian integer 0.
func GaussIntZero() *GaussInt {
	gaussIntConstOnce.Do(initGaussIntConsts)
	return gaussIntZero
}

// GaussIntOne returns the interned Gaussian integer 1.
func GaussIntOne() *GaussInt {
	gaussIntConstOnce.Do(initGaussIntConsts)
	return gaussIntOne
}

// GaussIntI returns the interned Gaussian integer i.
func GaussIntI() *GaussInt {
	gaussIntConstOnce.Do(initGaussIntConsts)
	return gaussIntI
}

// GaussIntNegOne returns the interned Gaussian integer -1.
func GaussIntNegOne() *GaussInt {
	gaussIntConstOnce.Do(initGaussIntConsts)
	return gaussIntNegOne
}

// GaussIntNegI returns the interned Gaussian integer -i.
func GaussIntNegI() *GaussInt {
	gaussIntConstOnce.Do(initGaussIntConsts)
	return gaussIntNegI
}

var (
	gaussRatConstOnce sync.Once

	gaussRatZero   *GaussRat
	gaussRatOne    *GaussRat
	gaussRatI      *GaussRat
	gaussRatNegOne *GaussRat
	gaussRatNegI   *GaussRat
)

func initGaussRatConsts() {
	gaussRatZero = NewGaussRat(0, 1, 0, 1)
	gaussRatOne = NewGaussRat(1, 1, 0, 1)
	gaussRatI = NewGaussRat(0, 1, 1, 1)
	gaussRatNegOne = NewGaussRat(-1, 1, 0, 1)
	gaussRatNegI = NewGaussRat(0, 1, -1, 1)
}

// GaussRatZero returns the interned rational complex 0.
func GaussRatZero() *GaussRat {
	gaussRatConstOnce.Do(initGaussRatConsts)
	return gaussRatZero
}

// GaussRatOne returns the interned rational complex 1.
func GaussRatOne() *GaussRat {
	gaussRatConstOnce.Do(initGaussRatConsts)
	return gaussRatOne
}

// GaussRatI returns the interned rational complex i.
func GaussRatI() *GaussRat {
	gaussRatConstOnce.Do(initGaussRatConsts)
	return gaussRatI
}

// GaussRatNegOne returns the interned rational complex -1.
func GaussRatNegOne() *GaussRat {
	gaussRatConstOnce.Do(initGaussRatConsts)
	return gaussRatNegOne
}

// GaussRatNegI returns the interned rational complex -i.
func GaussRatNegI() *GaussRat {
	gaussRatConstOnce.Do(initGaussRatConsts)
	return gaussRatNegI
}

var (
	complexConstOnce sync.Once

	complexZero   *Complex
	complexOne    *Complex
	complexI      *Complex
	complexNegOne *Complex
	complexNegI   *Complex
)

func initComplexConsts() {
	complexZero = NewComplex(0, 0)
	complexOne = NewComplex(1, 0)
	complexI = NewComplex(0, 1)
	complexNegOne = NewComplex(-1, 0)
	complexNegI = NewComplex(0, -1)
}

// ComplexZero returns the interned floating complex 0.
func ComplexZero() *Complex {
	complexConstOnce.Do(initComplexConsts)
	return complexZero
}

// ComplexOne returns the interned floating complex 1.
func ComplexOne() *Complex {
	complexConstOnce.Do(initComplexConsts)
	return complexOne
}

// ComplexI returns the interned floating complex i.
func ComplexI() *Complex {
	complexConstOnce.Do(initComplexConsts)
	return complexI
}

// ComplexNegOne returns the interned floating complex -1.
func ComplexNegOne() *Complex {
	complexConstOnce.Do(initComplexConsts)
	return complexNegOne
}

// ComplexNegI returns the interned floating complex -i.
func ComplexNegI() *Complex {
	complexConstOnce.Do(initComplexConsts)
	return complexNegI
}

// Small shared big constants, read-only after creation.
var (
	intOne    = big.NewInt(1)
	intNegOne = big.NewInt(-1)
	intTwo    = big.NewInt(2)
	ratOne    = big.NewRat(1, 1)
	ratNegOne = big.NewRat(-1, 1)
)
