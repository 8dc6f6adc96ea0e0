// Copyright 2024 The sifr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sifr

import "testing"

func TestArithmeticSeriesSumsThroughUpperBound(t *testing.T) {
	s := decimalSystem(t)
	driver := NewSeriesDriver(s)
	lower := MustNew(s, "0")
	upper := MustNew(s, "4")
	step := MustNew(s, "1")
	one := MustNew(s, "1")

	got, err := driver.ArithmeticSeries(lower, upper, step, func(i Number) (Number, error) {
		return i.Add(one)
	})
	if err != nil {
		t.Fatalf("ArithmeticSeries: %v", err)
	}
	if want := "15.0"; got.String() != want {
		t.Fatalf("sum(1..5) = %s, want %s", got, want)
	}
}

func TestArithmeticSeriesStopsAtFirstVanishingTerm(t *testing.T) {
	s := decimalSystem(t)
	driver := NewSeriesDriver(s)
	lower := MustNew(s, "0")
	upper := MustNew(s, "9")
	step := MustNew(s, "1")

	got, err := driver.ArithmeticSeries(lower, upper, step, func(i Number) (Number, error) {
		return i, nil // term(0) == 0: must stop before accumulating anything
	})
	if err != nil {
		t.Fatalf("ArithmeticSeries: %v", err)
	}
	if !got.IsZero() {
		t.Fatalf("sum = %s, want 0", got)
	}
}

func TestRationalSeriesNeverStopsEarly(t *testing.T) {
	s := decimalSystem(t)
	driver := NewSeriesDriver(s)
	lower := MustNew(s, "0")
	upper := MustNew(s, "3")
	step := MustNew(s, "1")
	one := MustNew(s, "1")

	got, err := driver.RationalSeries(lower, upper, step, func(i Number) (Number, error) {
		return i.Add(one)
	})
	if err != nil {
		t.Fatalf("RationalSeries: %v", err)
	}
	if want := "24.0"; got.String() != want {
		t.Fatalf("product(1..4) = %s, want %s", got, want)
	}
}
