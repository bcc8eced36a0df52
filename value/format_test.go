// Copyright 2025 The dynamic-complex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// The three tiers share one rendering table. Walk the same shapes through
// each tier and diff the whole batch at once.
func TestRenderingAcrossTiers(t *testing.T) {
	got := []string{
		NewGaussInt(0, 0).String(),
		NewGaussRat(0, 1, 0, 1).String(),
		NewComplex(0, 0).String(),

		NewGaussInt(7, 0).String(),
		NewGaussRat(7, 1, 0, 1).String(),
		NewComplex(7, 0).String(),

		NewGaussInt(0, 1).String(),
		NewGaussRat(0, 1, 1, 1).String(),
		NewComplex(0, 1).String(),

		NewGaussInt(0, -1).String(),
		NewGaussRat(0, 1, -1, 1).String(),
		NewComplex(0, -1).String(),

		NewGaussInt(2, -3).String(),
		NewGaussRat(2, 1, -3, 1).String(),
		NewComplex(2, -3).String(),

		NewGaussInt(-4, 1).String(),
		NewGaussRat(-4, 1, 1, 1).String(),
		NewComplex(-4, 1).String(),
	}
	want := []string{
		"0", "0", "0",
		"7", "7", "7",
		"i", "i", "i",
		"-i", "-i", "-i",
		"2-3i", "2-3i", "2-3i",
		"-4+i", "-4+i", "-4+i",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("rendering mismatch (-want +got):\n%s", diff)
	}
}

// No rendering may ever contain a double sign.
func TestRenderingNeverDoubleSigned(t *testing.T) {
	var all []string
	for re := int64(-2); re <= 2; re++ {
		for im := int64(-2); im <= 2; im++ {
			all = append(all,
				NewGaussInt(re, im).String(),
				NewGaussRat(re, 3, im, 3).String(),
				NewComplex(float64(re)/2, float64(im)/2).String(),
			)
		}
	}
	for _, s := range all {
		if strings.Contains(s, "+-") || strings.Contains(s, "-+") || strings.Contains(s, "++") {
			t.Errorf("double sign in %q", s)
		}
	}
}
