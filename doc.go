// Copyright 2024 The sifr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package sifr implements arbitrary-precision arithmetic over a
user-defined positional numeral system: any alphabet of digit glyphs, in
any base, with a caller-chosen separator and sign glyph.

A NumeralSystem fixes the alphabet, the separator, the sign glyph, a
target fractional precision, and a rounding mode:

	decimal, err := sifr.NewSystem("0123456789", '.', '-', 12, sifr.HalfAwayFromZero)
	hex, err := sifr.NewSystem("0123456789ABCDEF", '.', '-', 12, sifr.HalfAwayFromZero)

Number values are parsed against a NumeralSystem and are immutable: every
arithmetic method returns a new Number rather than mutating its receiver,
and operands must reference the same NumeralSystem value or the
operation fails with an InputError.

	a := sifr.MustNew(decimal, "219.8459")
	b := sifr.MustNew(decimal, "-31.261234")
	product, err := a.Mul(b)

Unlike decimal or binary floating point, every digit-sequence operation
in this package works in its own base: there is no hidden conversion
through machine ints or float64 at any point. Addition and subtraction
are exact; Mul and Quo round their result to the system's precision. The algorithms operate
directly on digit-glyph sequences (see kernel.go), the way the reference
Sifr system does, rather than on a fixed-radix Word mantissa.

A SeriesDriver sums or multiplies a sequence of Number terms over an
index range; the constants subpackage uses it to compute series
expansions of Pi and E to an arbitrary number of fractional digits in
any NumeralSystem. The preset subpackage supplies ready-made
NumeralSystem profiles (decimal, binary, octal, hexadecimal) through a
functional-options constructor.
*/
package sifr
