// Copyright 2024 The sifr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sifr

import "testing"

func decimalSystem(t *testing.T) *NumeralSystem {
	t.Helper()
	s, err := NewSystem("0123456789", '.', '-', 12, HalfAwayFromZero)
	if err != nil {
		t.Fatalf("NewSystem: %v", err)
	}
	return s
}

func TestNewSystemRejectsCollisions(t *testing.T) {
	cases := []struct {
		name      string
		alphabet  string
		separator rune
		sign      rune
	}{
		{"too short", "0", '.', '-'},
		{"duplicate glyph", "001", '.', '-'},
		{"separator in alphabet", "0123", '1', '-'},
		{"sign in alphabet", "0123", '.', '2'},
		{"separator equals sign", "0123", '.', '.'},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := NewSystem(c.alphabet, c.separator, c.sign, 10, HalfAwayFromZero); err == nil {
				t.Fatalf("expected ConfigError, got nil")
			}
		})
	}
}

func TestSuccessorPredecessorWrap(t *testing.T) {
	s := decimalSystem(t)
	g, carry, err := s.successor('9')
	if err != nil || g != '0' || !carry {
		t.Fatalf("successor('9') = (%q, %v, %v), want ('0', true, nil)", g, carry, err)
	}
	g, borrow, err := s.predecessor('0')
	if err != nil || g != '9' || !borrow {
		t.Fatalf("predecessor('0') = (%q, %v, %v), want ('9', true, nil)", g, borrow, err)
	}
	g, carry, err = s.successor('3')
	if err != nil || g != '4' || carry {
		t.Fatalf("successor('3') = (%q, %v, %v), want ('4', false, nil)", g, carry, err)
	}
}

func TestSplit(t *testing.T) {
	s := decimalSystem(t)
	integer, frac := s.split("12.345")
	if integer != "12" || frac != "345" {
		t.Fatalf("split(12.345) = (%q, %q)", integer, frac)
	}
	integer, frac = s.split("12")
	if integer != "12" || frac != "0" {
		t.Fatalf("split(12) = (%q, %q), want (12, 0)", integer, frac)
	}
}

func TestNormalize(t *testing.T) {
	cases := []struct{ in, want string }{
		{"007.1200", "7.12"},
		{"0.0", "0.0"},
		{"-0.0", "0.0"},
		{"000.000", "0.0"},
		{"10.0", "10.0"},
	}
	s := decimalSystem(t)
	for _, c := range cases {
		got, err := s.normalize(c.in)
		if err != nil {
			t.Fatalf("normalize(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestRaiseByBase(t *testing.T) {
	s := decimalSystem(t)
	if got := s.raiseByBase("1.2345", 2); got != "123.45" {
		t.Fatalf("raiseByBase(1.2345, 2) = %q, want 123.45", got)
	}
	if got := s.raiseByBase("1.2", 3); got != "1200.0" {
		t.Fatalf("raiseByBase(1.2, 3) = %q, want 1200.0", got)
	}
}

func TestPad(t *testing.T) {
	s := decimalSystem(t)
	a, b := s.pad("1", "234", padLeft)
	if a != "001" || b != "234" {
		t.Fatalf("pad left = (%q, %q)", a, b)
	}
	a, b = s.pad("1", "234", padRight)
	if a != "100" || b != "234" {
		t.Fatalf("pad right = (%q, %q)", a, b)
	}
}
