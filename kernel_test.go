// Copyright 2024 The sifr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sifr

import "testing"

func TestAddFull(t *testing.T) {
	s := decimalSystem(t)
	cases := []struct{ a, b, want string }{
		{"3.2", "5.5", "8.7"},
		{"0.96123724", "219.8459", "220.80713724"},
		{"9.9", "0.2", "10.1"},
	}
	for _, c := range cases {
		if got := s.addFull(c.a, c.b); got != c.want {
			t.Errorf("addFull(%s, %s) = %s, want %s", c.a, c.b, got, c.want)
		}
	}
}

func TestSubtractFull(t *testing.T) {
	s := decimalSystem(t)
	cases := []struct {
		a, b, want  string
		wantCrossed bool
	}{
		{"5.5", "3.2", "2.3", false},
		{"3.2", "5.5", "2.3", true},
		{"3.0", "5.0", "2.0", true},
		{"0.3", "0.5", "0.2", true},
	}
	for _, c := range cases {
		got, crossed := s.subtractFull(c.a, c.b)
		if got != c.want || crossed != c.wantCrossed {
			t.Errorf("subtractFull(%s, %s) = (%s, %v), want (%s, %v)", c.a, c.b, got, crossed, c.want, c.wantCrossed)
		}
	}
}

func TestBaseMultiply(t *testing.T) {
	s := decimalSystem(t)
	cases := []struct{ a, b, want string }{
		{"3", "4", "12.0"},
		{"0.5", "4", "2.0"},
	}
	for _, c := range cases {
		if got := s.baseMultiply(c.a, c.b); got != c.want {
			t.Errorf("baseMultiply(%s, %s) = %s, want %s", c.a, c.b, got, c.want)
		}
	}
}

func TestTimesInNum(t *testing.T) {
	s := decimalSystem(t)
	q, r := s.timesInNum("9", "4")
	if q != "2" || r != "1.0" {
		t.Fatalf("timesInNum(9, 4) = (%s, %s), want (2, 1.0)", q, r)
	}
	q, r = s.timesInNum("4", "4")
	if q != "1" || r != "0.0" {
		t.Fatalf("timesInNum(4, 4) = (%s, %s), want (1, 0.0)", q, r)
	}
}

func TestBaseDivide(t *testing.T) {
	s := decimalSystem(t)
	got, err := s.baseDivide("9", "4")
	if err != nil {
		t.Fatalf("baseDivide(9, 4): %v", err)
	}
	if got != "2.25" {
		t.Fatalf("baseDivide(9, 4) = %s, want 2.25", got)
	}
	if _, err := s.baseDivide("9", "0"); err == nil {
		t.Fatal("baseDivide(9, 0): expected OutOfScopeError, got nil")
	}
}

func TestIntegerExponent(t *testing.T) {
	s := decimalSystem(t)
	got, err := s.integerExponent("2", "3")
	if err != nil {
		t.Fatalf("integerExponent(2, 3): %v", err)
	}
	if got != "8.0" {
		t.Fatalf("integerExponent(2, 3) = %s, want 8.0", got)
	}
	if _, err := s.integerExponent("2", "3.5"); err == nil {
		t.Fatal("integerExponent(2, 3.5): expected OutOfScopeError, got nil")
	}
}

func TestMagnitudeCompare(t *testing.T) {
	s := decimalSystem(t)
	cases := []struct {
		a, b          string
		greater, equal bool
	}{
		{"3.2", "5.5", false, false},
		{"5.5", "3.2", true, false},
		{"5.50", "5.5", false, true},
		{"10.0", "9.0", true, false},
	}
	for _, c := range cases {
		g, e := s.magnitudeCompare(c.a, c.b)
		if g != c.greater || e != c.equal {
			t.Errorf("magnitudeCompare(%s, %s) = (%v, %v), want (%v, %v)", c.a, c.b, g, e, c.greater, c.equal)
		}
	}
}

func TestRoundHalfAwayFromZero(t *testing.T) {
	s := decimalSystem(t)
	cases := []struct {
		in   string
		l    uint
		want string
	}{
		{"1.005", 2, "1.01"},
		{"1.004", 2, "1.0"},
		{"9.995", 2, "10.0"},
		{"1.5", 0, "2.0"},
	}
	for _, c := range cases {
		if got := s.roundHalfAwayFromZero(c.in, c.l); got != c.want {
			t.Errorf("round(%s, %d) = %s, want %s", c.in, c.l, got, c.want)
		}
	}
}
