// Copyright 2024 The sifr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sifr

// TermFunc computes the i-th term of a series for index i, an integer
// Number in the series' NumeralSystem.
type TermFunc func(i Number) (Number, error)

// SeriesDriver drives convergent series over a NumeralSystem: arithmetic
// (summed) series and rational (product) series, stepping an index from
// a lower to an upper bound. It is the engine behind the constants
// package's Pi, E and LeibnizPi (see constants/constants.go), grounded
// on the reference implementation's Xuarizm driver.
type SeriesDriver struct {
	sys   *NumeralSystem
	trace Trace
}

// NewSeriesDriver returns a SeriesDriver over sys.
func NewSeriesDriver(sys *NumeralSystem) *SeriesDriver {
	return &SeriesDriver{sys: sys}
}

// WithTrace returns a shallow copy of d with its step tracer replaced.
func (d *SeriesDriver) WithTrace(t Trace) *SeriesDriver {
	cp := *d
	cp.trace = t
	return &cp
}

func (s *NumeralSystem) zero() Number {
	return Number{sys: s, magnitude: string(s.Identity()) + string(s.separator) + string(s.Identity())}
}

func (s *NumeralSystem) one() Number {
	return Number{sys: s, magnitude: string(s.Unit()) + string(s.separator) + string(s.Identity())}
}

// ArithmeticSeries sums term(i) for i stepping from lower to upper by
// step, inclusive, stopping as soon as a term equals the additive
// identity (spec.md §4.4: convergent sums need not run to the nominal
// upper bound once a term vanishes).
func (d *SeriesDriver) ArithmeticSeries(lower, upper, step Number, term TermFunc) (Number, error) {
	if !d.sys.Same(lower.sys) || !d.sys.Same(upper.sys) || !d.sys.Same(step.sys) {
		return Number{}, incompatibleSystems("ArithmeticSeries")
	}
	sum := d.sys.zero()
	i := lower
	for count := 0; ; count++ {
		if i.Gt(upper) {
			break
		}
		t, err := term(i)
		if err != nil {
			return Number{}, err
		}
		if t.IsZero() {
			d.trace.step("arithmeticSeries", "term %d vanished at i=%s, stopping early", count, i)
			break
		}
		sum, err = sum.Add(t)
		if err != nil {
			return Number{}, err
		}
		i, err = i.Add(step)
		if err != nil {
			return Number{}, err
		}
		d.trace.step("arithmeticSeries", "term %d at i=%s, running sum=%s", count, i, sum)
	}
	return sum, nil
}

// RationalSeries multiplies term(i) for i stepping from lower to upper
// by step, inclusive. Unlike ArithmeticSeries it never exits early: a
// single zero-valued factor is meaningful to a product and must not be
// mistaken for convergence (spec.md §4.4).
func (d *SeriesDriver) RationalSeries(lower, upper, step Number, term TermFunc) (Number, error) {
	if !d.sys.Same(lower.sys) || !d.sys.Same(upper.sys) || !d.sys.Same(step.sys) {
		return Number{}, incompatibleSystems("RationalSeries")
	}
	product := d.sys.one()
	i := lower
	for count := 0; ; count++ {
		if i.Gt(upper) {
			break
		}
		t, err := term(i)
		if err != nil {
			return Number{}, err
		}
		product, err = product.Mul(t)
		if err != nil {
			return Number{}, err
		}
		i, err = i.Add(step)
		if err != nil {
			return Number{}, err
		}
		d.trace.step("rationalSeries", "term %d at i=%s, running product=%s", count, i, product)
	}
	return product, nil
}
