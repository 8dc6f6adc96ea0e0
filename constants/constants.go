// Copyright 2024 The sifr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package constants computes mathematical constants in a caller-chosen
// sifr.NumeralSystem, grounded on the reference implementation's
// Formulae and Constants classes (factorial, the BBP and Leibniz series
// for Pi). The series helpers (Pi, E, LeibnizPi) take terms, the upper
// bound of the series index; sifr.SeriesDriver's arithmetic series
// stop earlier on its own once a term rounds to zero at the system's
// precision.
package constants

import "github.com/aeross/sifr"

// guard recovers a panic raised by the must2 helper below,
// converting it back into a returned error. This mirrors db47h/decimal's
// Context methods, which catch an internal panic and
// store it as the Context's error rather than letting it propagate.
func guard(err *error) {
	if r := recover(); r != nil {
		if e, ok := r.(error); ok {
			*err = e
			return
		}
		panic(r)
	}
}

func must2(n sifr.Number, err error) sifr.Number {
	if err != nil {
		panic(err)
	}
	return n
}

// fromUint builds the Number value of n by repeated addition of the
// system's unit glyph; it never assumes n's digits look anything like
// the system's own alphabet.
func fromUint(sys *sifr.NumeralSystem, n uint) sifr.Number {
	unit := sifr.MustNew(sys, string(sys.Unit()))
	result := sifr.MustNew(sys, string(sys.Identity()))
	for i := uint(0); i < n; i++ {
		result = must2(result.Add(unit))
	}
	return result
}

func factorial(sys *sifr.NumeralSystem, k sifr.Number) sifr.Number {
	one := fromUint(sys, 1)
	acc, i := one, one
	for i.Le(k) {
		acc = must2(acc.Mul(i))
		i = must2(i.Add(one))
	}
	return acc
}

// E returns Euler's number, accumulated as the factorial-sum series
// sum(1/k!) for k from 0 to terms (reference implementation:
// Formulae.factorial plus the stubbed Constants.return_e it never
// completed).
func E(sys *sifr.NumeralSystem, terms uint) (e sifr.Number, err error) {
	defer guard(&err)
	driver := sifr.NewSeriesDriver(sys)
	lower, upper, step := fromUint(sys, 0), fromUint(sys, terms), fromUint(sys, 1)
	return driver.ArithmeticSeries(lower, upper, step, func(k sifr.Number) (sifr.Number, error) {
		return one(sys).Quo(factorial(sys, k))
	})
}

func one(sys *sifr.NumeralSystem) sifr.Number { return fromUint(sys, 1) }

// Pi returns pi, accumulated via the Bailey-Borwein-Plouffe series:
//
//	pi = sum_{k=0}^terms (1/16^k) * (4/(8k+1) - 2/(8k+4) - 1/(8k+5) - 1/(8k+6))
//
// grounded on the reference implementation's Constants.return_bbp_pi.
func Pi(sys *sifr.NumeralSystem, terms uint) (pi sifr.Number, err error) {
	defer guard(&err)
	driver := sifr.NewSeriesDriver(sys)
	lower, upper, step := fromUint(sys, 0), fromUint(sys, terms), fromUint(sys, 1)
	return driver.ArithmeticSeries(lower, upper, step, func(k sifr.Number) (sifr.Number, error) {
		sixteenToK := must2(fromUint(sys, 16).Pow(k))
		eightK := must2(fromUint(sys, 8).Mul(k))
		a := must2(fromUint(sys, 4).Quo(must2(eightK.Add(fromUint(sys, 1)))))
		b := must2(fromUint(sys, 2).Quo(must2(eightK.Add(fromUint(sys, 4)))))
		c := must2(one(sys).Quo(must2(eightK.Add(fromUint(sys, 5)))))
		d := must2(one(sys).Quo(must2(eightK.Add(fromUint(sys, 6)))))
		bracket := must2(must2(must2(a.Sub(b)).Sub(c)).Sub(d))
		return bracket.Quo(sixteenToK)
	})
}

// LeibnizPi returns pi, accumulated via the slower Leibniz series:
//
//	pi = 4 * sum_{k=0}^terms (-1)^k / (2k+1)
//
// grounded on the reference implementation's
// Constants.return_leibniz_pi. Prefer Pi, which converges far faster
// for the same term count; LeibnizPi is kept for parity with the
// reference implementation and for testing SeriesDriver against a
// second, independently-derived series for the same constant.
func LeibnizPi(sys *sifr.NumeralSystem, terms uint) (pi sifr.Number, err error) {
	defer guard(&err)
	driver := sifr.NewSeriesDriver(sys)
	lower, upper, step := fromUint(sys, 0), fromUint(sys, terms), fromUint(sys, 1)
	sum, serr := driver.ArithmeticSeries(lower, upper, step, func(k sifr.Number) (sifr.Number, error) {
		twoK := must2(fromUint(sys, 2).Mul(k))
		denom := must2(twoK.Add(fromUint(sys, 1)))
		val := must2(one(sys).Quo(denom))
		if k.IsOddInteger() {
			val = val.Neg()
		}
		return val, nil
	})
	if serr != nil {
		return sifr.Number{}, serr
	}
	return must2(fromUint(sys, 4).Mul(sum)), nil
}

// Phi returns the golden ratio via the fixed-point iteration
// x_{n+1} = 1 + 1/x_n, seeded at x_0 = 1 and run for iterations steps.
// Unlike Pi, E and LeibnizPi this is not a SeriesDriver sum or product:
// phi's continued fraction [1;1,1,1,...] does not fit that shape, so it
// is expressed directly in terms of Number operations (a feature the
// distilled specification omits; the reference implementation's
// Constants.return_phi was never completed either).
func Phi(sys *sifr.NumeralSystem, iterations uint) (phi sifr.Number, err error) {
	defer guard(&err)
	x := one(sys)
	for i := uint(0); i < iterations; i++ {
		x = must2(one(sys).Add(must2(one(sys).Quo(x))))
	}
	return x, nil
}
