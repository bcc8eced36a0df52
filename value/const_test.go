// Copyright 2025 The dynamic-complex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGaussIntConstants(t *testing.T) {
	assert.True(t, GaussIntZero().Equal(NewGaussInt(0, 0)))
	assert.True(t, GaussIntOne().Equal(NewGaussInt(1, 0)))
	assert.True(t, GaussIntI().Equal(NewGaussInt(0, 1)))
	assert.True(t, GaussIntNegOne().Equal(NewGaussInt(-1, 0)))
	assert.True(t, GaussIntNegI().Equal(NewGaussInt(0, -1)))

	// Constants are interned: every call returns the identical value.
	assert.Same(t, GaussIntZero(), GaussIntZero())
	assert.Same(t, GaussIntOne(), GaussIntOne())
	assert.Same(t, GaussIntI(), GaussIntI())
	assert.Same(t, GaussIntNegOne(), GaussIntNegOne())
	assert.Same(t, GaussIntNegI(), GaussIntNegI())
}

func TestGaussRatConstants(t *testing.T) {
	assert.True(t, GaussRatZero().Equal(NewGaussRat(0, 1, 0, 1)))
	assert.True(t, GaussRatOne().Equal(NewGaussRat(1, 1, 0, 1)))
	assert.True(t, GaussRatI().Equal(NewGaussRat(0, 1, 1, 1)))
	assert.True(t, GaussRatNegOne().Equal(NewGaussRat(-1, 1, 0, 1)))
	assert.True(t, GaussRatNegI().Equal(NewGaussRat(0, 1, -1, 1)))

	assert.Same(t, GaussRatZero(), GaussRatZero())
	assert.Same(t, GaussRatOne(), GaussRatOne())
	assert.Same(t, GaussRatI(), GaussRatI())
	assert.Same(t, GaussRatNegOne(), GaussRatNegOne())
	assert.Same(t, GaussRatNegI(), GaussRatNegI())
}

func TestComplexConstants(t *testing.T) {
	assert.True(t, ComplexZero().Equal(NewComplex(0, 0)))
	assert.True(t, ComplexOne().Equal(NewComplex(1, 0)))
	assert.True(t, ComplexI().Equal(NewComplex(0, 1)))
	assert.True(t, ComplexNegOne().Equal(NewComplex(-1, 0)))
	assert.True(t, ComplexNegI().Equal(NewComplex(0, -1)))

	assert.Same(t, ComplexZero(), ComplexZero())
	assert.Same(t, ComplexI(), ComplexI())
}

// Concurrent accessors must all observe the same published singleton.
func TestConstantsConcurrentAccess(t *testing.T) {
	const n = 32
	ints := make([]*GaussInt, n)
	rats := make([]*GaussRat, n)
	cplx := make([]*Complex, n)

	var wg sync.WaitGroup
	for k := 0; k < n; k++ {
		wg.Add(1)
		go func(k int) {
			defer wg.Done()
			ints[k] = GaussIntI()
			rats[k] = GaussRatI()
			cplx[k] = ComplexI()
		}(k)
	}
	wg.Wait()

	for k := 1; k < n; k++ {
		assert.Same(t, ints[0], ints[k])
		assert.Same(t, rats[0], rats[k])
		assert.Same(t, cplx[0], cplx[k])
	}
}

// Arithmetic involving constants must never disturb them: results are
// always fresh values.
func TestConstantsUnchangedByArithmetic(t *testing.T) {
	one := GaussIntOne()
	sum := one.Add(GaussIntOne())
	assert.True(t, sum.Equal(NewGaussInt(2, 0)))
	assert.True(t, GaussIntOne().Equal(NewGaussInt(1, 0)))
	assert.NotSame(t, one, sum)

	rOne := GaussRatOne()
	_ = rOne.Neg()
	assert.True(t, GaussRatOne().Equal(NewGaussRat(1, 1, 0, 1)))
}
