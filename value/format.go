// Copyright 2025 The dynamic-complex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import "strconv"

// formatComplex assembles the rendering of re + im·i from the decimal
// renderings of the two components. All three tiers share this case table:
//
//	0+0i          "0"
//	a+0i          "a"
//	0+1i          "i"
//	0-1i          "-i"
//	0+bi          "bi"
//	a+1i          "a+i"
//	a-1i          "a-i"
//	a+bi, b < 0   "abi"    (b carries its own minus sign)
//	a+bi, b > 0   "a+bi"
//
// A negative b must supply its own sign so that "+-" never appears.
func formatComplex(re, im string, reZero, imZero, imOne, imNegOne, imNeg bool) string {
	switch {
	case reZero && imZero:
		return "0"
	case imZero:
		return re
	case reZero:
		switch {
		case imOne:
			return "i"
		case imNegOne:
			return "-i"
		}
		return im + "i"
	case imOne:
		return re + "+i"
	case imNegOne:
		return re + "-i"
	case imNeg:
		return re + im + "i"
	}
	return re + "+" + im + "i"
}

// formatFloat renders a float64 component compactly: six significant
// digits, trailing zeros suppressed, scientific notation for very small
// or very large magnitudes.
func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', 6, 64)
}
