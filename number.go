// Copyright 2024 The sifr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sifr

import (
	"encoding"
	"fmt"
)

// Number is a signed value in a particular NumeralSystem: a sign flag
// and a canonical, non-negative magnitude produced by Kernel
// operations. The zero value is not a usable Number; construct one with
// New or MustNew.
type Number struct {
	sys       *NumeralSystem
	negative  bool
	magnitude string
}

var (
	_ fmt.Stringer             = Number{}
	_ encoding.TextMarshaler   = Number{}
	_ encoding.TextUnmarshaler = (*Number)(nil)
)

// New parses literal against sys: an optional leading sign glyph,
// followed by alphabet glyphs and at most one separator glyph. The
// result is always in canonical form (spec.md §3).
func New(sys *NumeralSystem, literal string) (Number, error) {
	if sys == nil {
		return Number{}, ConfigError{Reason: "nil numeral system"}
	}
	r := []rune(literal)
	if len(r) == 0 {
		return Number{}, InputError{Reason: "empty literal"}
	}
	neg := false
	if r[0] == sys.sign {
		neg = true
		r = r[1:]
	}
	if len(r) == 0 {
		return Number{}, InputError{Reason: "empty literal"}
	}
	seps := 0
	for _, g := range r {
		if g == sys.separator {
			seps++
			continue
		}
		if _, ok := sys.index[g]; !ok {
			return Number{}, InputError{Reason: "literal contains a glyph outside the alphabet: " + string(g)}
		}
	}
	if seps > 1 {
		return Number{}, InputError{Reason: "literal contains more than one separator"}
	}
	mag, err := sys.normalize(string(r))
	if err != nil {
		return Number{}, err
	}
	return Number{sys: sys, negative: neg, magnitude: mag}.canonical(), nil
}

// MustNew is New, panicking on error. It mirrors regexp.MustCompile's
// convenience for literals fixed at compile time.
func MustNew(sys *NumeralSystem, literal string) Number {
	n, err := New(sys, literal)
	if err != nil {
		panic(err)
	}
	return n
}

// canonical clears the sign flag on a zero magnitude, guaranteeing
// spec.md §3's unique, unsigned representation of zero.
func (n Number) canonical() Number {
	if n.sys != nil && n.sys.isZeroMagnitude(n.magnitude) {
		n.negative = false
	}
	return n
}

// System returns the NumeralSystem n was constructed against.
func (n Number) System() *NumeralSystem { return n.sys }

// IsNegative reports whether n is strictly less than zero.
func (n Number) IsNegative() bool { return n.negative }

// IsZero reports whether n is the canonical zero of its system.
func (n Number) IsZero() bool { return n.sys.isZeroMagnitude(n.magnitude) }

// String renders n in its NumeralSystem's alphabet.
func (n Number) String() string {
	if n.negative {
		return string(n.sys.sign) + n.magnitude
	}
	return n.magnitude
}

// MarshalText implements encoding.TextMarshaler.
func (n Number) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. n must already
// carry a NumeralSystem (set by a prior New/MustNew or copy); there is
// no way to recover one from text alone, since the alphabet is
// caller-defined rather than fixed by the type.
func (n *Number) UnmarshalText(text []byte) error {
	if n.sys == nil {
		return ConfigError{Reason: "UnmarshalText requires a Number with its NumeralSystem already set"}
	}
	parsed, err := New(n.sys, string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// addSignPolicy resolves the sign of a mixed-sign addition from the
// left operand's sign and whether the magnitude subtraction crossed
// zero (spec.md §4.3).
var addSignPolicy = map[struct{ negative, crossed bool }]bool{
	{false, false}: false,
	{false, true}:  true,
	{true, false}:  true,
	{true, true}:   false,
}

// mulSignPolicy resolves the sign of a product or quotient from its
// two operands' signs.
var mulSignPolicy = map[struct{ a, b bool }]bool{
	{false, false}: false,
	{false, true}:  true,
	{true, false}:  true,
	{true, true}:   false,
}

// Add returns n+o.
func (n Number) Add(o Number) (Number, error) {
	if !n.sys.Same(o.sys) {
		return Number{}, incompatibleSystems("Add")
	}
	if n.negative == o.negative {
		mag := n.sys.addFull(n.magnitude, o.magnitude)
		return Number{sys: n.sys, negative: n.negative, magnitude: mag}.canonical(), nil
	}
	mag, crossed := n.sys.subtractFull(n.magnitude, o.magnitude)
	neg := addSignPolicy[struct{ negative, crossed bool }{n.negative, crossed}]
	return Number{sys: n.sys, negative: neg, magnitude: mag}.canonical(), nil
}

// Sub returns n-o.
func (n Number) Sub(o Number) (Number, error) {
	return n.Add(o.Neg())
}

// Neg returns -n.
func (n Number) Neg() Number {
	n.negative = !n.negative
	return n.canonical()
}

// Pos returns +n (unary plus; n unchanged).
func (n Number) Pos() Number { return n }

// Abs returns |n|.
func (n Number) Abs() Number {
	n.negative = false
	return n
}

// Mul returns n*o.
func (n Number) Mul(o Number) (Number, error) {
	if !n.sys.Same(o.sys) {
		return Number{}, incompatibleSystems("Mul")
	}
	mag := n.sys.baseMultiply(n.magnitude, o.magnitude)
	neg := mulSignPolicy[struct{ a, b bool }{n.negative, o.negative}]
	return Number{sys: n.sys, negative: neg, magnitude: mag}.canonical(), nil
}

// Quo returns the true (fractional) quotient n/o, rounded to the
// system's precision. Division by zero is an OutOfScopeError.
func (n Number) Quo(o Number) (Number, error) {
	if !n.sys.Same(o.sys) {
		return Number{}, incompatibleSystems("Quo")
	}
	mag, err := n.sys.baseDivide(n.magnitude, o.magnitude)
	if err != nil {
		return Number{}, err
	}
	neg := mulSignPolicy[struct{ a, b bool }{n.negative, o.negative}]
	return Number{sys: n.sys, negative: neg, magnitude: mag}.canonical(), nil
}

// DivMod returns the floor quotient and modulus of n and o: quotient is
// floor(n/o) and modulus = n - quotient*o, with modulus always taking
// the sign of o (or zero). Mixed-sign operands are fixed up only when
// the truncated remainder is non-zero (spec.md §9): an exact division
// never needs the floor correction.
func (n Number) DivMod(o Number) (quotient, modulus Number, err error) {
	if !n.sys.Same(o.sys) {
		return Number{}, Number{}, incompatibleSystems("DivMod")
	}
	if n.sys.isZeroMagnitude(o.magnitude) {
		return Number{}, Number{}, OutOfScopeError{Reason: "division by zero"}
	}
	q0, rem := n.sys.timesInNum(n.magnitude, o.magnitude)
	sameSign := n.negative == o.negative
	remNonZero := !n.sys.isZeroMagnitude(rem)

	qMag, _ := n.sys.normalize(q0)
	qNeg := !sameSign
	modMag, modNeg := rem, o.negative

	if !sameSign && remNonZero {
		qMag = n.sys.addFull(q0, string(n.sys.Unit()))
		modMag, _ = n.sys.subtractFull(o.magnitude, rem)
	}

	quotient = Number{sys: n.sys, negative: qNeg, magnitude: qMag}.canonical()
	modulus = Number{sys: n.sys, negative: modNeg, magnitude: modMag}.canonical()
	return quotient, modulus, nil
}

// FloorQuo returns floor(n/o).
func (n Number) FloorQuo(o Number) (Number, error) {
	q, _, err := n.DivMod(o)
	return q, err
}

// Mod returns n modulo o, taking the sign of o (or zero).
func (n Number) Mod(o Number) (Number, error) {
	_, m, err := n.DivMod(o)
	return m, err
}

// IsOddInteger reports whether the integer value n encodes is odd. It
// is meaningful only when n has no fractional part.
func (n Number) IsOddInteger() bool { return n.sys.isOddInteger(n.magnitude) }

// isOddInteger reports whether the integer value encoded by magnitude
// is odd, computed generically as magnitude mod (unit+unit) != 0 so it
// holds regardless of the system's base.
func (s *NumeralSystem) isOddInteger(magnitude string) bool {
	two := s.addFull(string(s.Unit()), string(s.Unit()))
	_, rem := s.timesInNum(magnitude, two)
	return !s.isZeroMagnitude(rem)
}

// Pow returns n raised to the non-negative integer power exp. A
// negative or fractional exponent is an OutOfScopeError.
func (n Number) Pow(exp Number) (Number, error) {
	if !n.sys.Same(exp.sys) {
		return Number{}, incompatibleSystems("Pow")
	}
	if exp.negative {
		return Number{}, OutOfScopeError{Reason: "negative exponents are out of scope"}
	}
	mag, err := n.sys.integerExponent(n.magnitude, exp.magnitude)
	if err != nil {
		return Number{}, err
	}
	neg := n.negative && n.sys.isOddInteger(exp.magnitude)
	return Number{sys: n.sys, negative: neg, magnitude: mag}.canonical(), nil
}

// Round returns n rounded to L fractional digits using its system's
// rounding mode.
func (n Number) Round(L uint) Number {
	n.magnitude, _ = n.sys.normalize(n.sys.round(n.magnitude, L))
	return n.canonical()
}

// Cmp returns -1, 0, or 1 as n is less than, equal to, or greater than
// o. It errors if n and o belong to different NumeralSystems.
func (n Number) Cmp(o Number) (int, error) {
	if !n.sys.Same(o.sys) {
		return 0, incompatibleSystems("Cmp")
	}
	if n.negative != o.negative {
		if n.negative {
			return -1, nil
		}
		return 1, nil
	}
	greater, equal := n.sys.magnitudeCompare(n.magnitude, o.magnitude)
	if equal {
		return 0, nil
	}
	if n.negative {
		greater = !greater
	}
	if greater {
		return 1, nil
	}
	return -1, nil
}

// Eq, Lt, Le, Gt, Ge are Cmp convenience wrappers. Each returns false
// (rather than an error) when n and o belong to different
// NumeralSystems; use Cmp directly when that distinction matters.
func (n Number) Eq(o Number) bool { c, err := n.Cmp(o); return err == nil && c == 0 }
func (n Number) Lt(o Number) bool { c, err := n.Cmp(o); return err == nil && c < 0 }
func (n Number) Le(o Number) bool { c, err := n.Cmp(o); return err == nil && c <= 0 }
func (n Number) Gt(o Number) bool { c, err := n.Cmp(o); return err == nil && c > 0 }
func (n Number) Ge(o Number) bool { c, err := n.Cmp(o); return err == nil && c >= 0 }
