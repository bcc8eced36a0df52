// Copyright 2025 The dynamic-complex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Dcdemo walks through the three complex-number tiers and the conversion
// lattice between them.
package main

import (
	"fmt"
	"math"

	"github.com/fatih/color"

	"github.com/edadma/dynamic-complex/value"
)

var heading = color.New(color.FgCyan, color.Bold)

func section(name string) {
	fmt.Println()
	heading.Println(name)
}

func main() {
	section("Gaussian integers")
	a := value.NewGaussInt(3, 4)
	b := value.NewGaussInt(1, -2)
	fmt.Printf("(%v) + (%v) = %v\n", a, b, a.Add(b))
	fmt.Printf("(%v) - (%v) = %v\n", a, b, a.Sub(b))
	fmt.Printf("(%v) * (%v) = %v\n", a, b, a.Mul(b))
	fmt.Printf("conj(%v) = %v\n", a, a.Conj())

	q := a.Div(b)
	fmt.Printf("(%v) / (%v) = %v (gaussian integer: %v)\n", a, b, q, q.IsGaussInt())

	section("Rational complex numbers")
	c := value.NewGaussRat(1, 2, 1, 3)
	d := value.NewGaussRat(1, 4, 1, 6)
	fmt.Printf("(%v) + (%v) = %v\n", c, d, c.Add(d))
	fmt.Printf("(%v) * (%v) = %v\n", c, d, c.Mul(d))
	fmt.Printf("1 / (%v) = %v\n", c, c.Recip())
	fmt.Printf("((%v) / (%v)) * (%v) = %v\n", c, d, d, c.Div(d).Mul(d))

	section("Floating complex numbers")
	e := value.NewComplex(0, math.Pi/2).Exp()
	fmt.Printf("exp(iπ/2) = %v\n", e)
	fmt.Printf("sqrt(-1) = %v\n", value.NewComplex(-1, 0).Sqrt())
	z := value.NewComplex(3, 4)
	fmt.Printf("|%v| = %v, arg = %.5f\n", z, z.Abs(), z.Arg())
	fmt.Printf("polar(2, π/3) = %v\n", value.Polar(2, math.Pi/3))

	section("Conversions")
	fmt.Printf("%v as rational: %v\n", a, a.Rat())
	fmt.Printf("%v as floating: %v\n", a, a.Complex())
	f := value.NewComplex(3.7, 4.3)
	fmt.Printf("round(%v) = %v\n", f, f.Round())
	g := value.NewComplex(math.Pi, 0.5)
	fmt.Printf("%v approximated with denominators <= 120: %v\n", g, g.Rat(120))
}
