// Copyright 2024 The sifr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sifr

import "strings"

// RoundingMode selects how NumeralSystem.round trims a magnitude to a target
// fractional length. Only HalfAwayFromZero is implemented; the type
// exists so that additional modes can be added later without changing
// the signature of NumeralSystem or any operation that rounds (spec.md
// §9 names this as a deliberate, open hook).
type RoundingMode byte

const (
	// HalfAwayFromZero rounds a half-way digit (index >= ceil(base/2) in
	// the alphabet) up, away from zero. It is the only mode implemented
	// by this version.
	HalfAwayFromZero RoundingMode = iota
)

// roundFuncs is the rounding-mode dispatch table spec.md §4.2 calls for:
// additional modes are added here, not by branching in callers.
var roundFuncs = map[RoundingMode]func(*NumeralSystem, string, uint) string{
	HalfAwayFromZero: (*NumeralSystem).roundHalfAwayFromZero,
}

// NumeralSystem is an immutable positional numeral system: an ordered,
// duplicate-free alphabet of digit glyphs (whose length is the base), a
// fractional separator glyph, a negative-sign glyph, a target fractional
// precision, and a rounding-mode tag. See spec.md §3.
type NumeralSystem struct {
	alphabet  []rune
	index     map[rune]int
	separator rune
	sign      rune
	precision uint
	mode      RoundingMode
	trace     Trace
}

// NewSystem constructs a NumeralSystem from an alphabet (at least 2
// distinct glyphs), a separator glyph, a sign glyph, a target fractional
// precision, and a rounding mode. The separator and sign glyphs must not
// appear in the alphabet and must differ from each other. Construction
// fails with a ConfigError on any collision.
func NewSystem(alphabet string, separator, sign rune, precision uint, mode RoundingMode) (*NumeralSystem, error) {
	digits := []rune(alphabet)
	if len(digits) < 2 {
		return nil, ConfigError{Reason: "alphabet must contain at least 2 glyphs"}
	}
	index := make(map[rune]int, len(digits))
	for i, g := range digits {
		if _, dup := index[g]; dup {
			return nil, ConfigError{Reason: "duplicate glyph in alphabet: " + string(g)}
		}
		index[g] = i
	}
	if _, ok := index[separator]; ok {
		return nil, ConfigError{Reason: "separator glyph collides with alphabet"}
	}
	if _, ok := index[sign]; ok {
		return nil, ConfigError{Reason: "sign glyph collides with alphabet"}
	}
	if separator == sign {
		return nil, ConfigError{Reason: "separator and sign glyphs must differ"}
	}
	if _, ok := roundFuncs[mode]; !ok {
		return nil, ConfigError{Reason: "unknown rounding mode"}
	}
	return &NumeralSystem{
		alphabet:  digits,
		index:     index,
		separator: separator,
		sign:      sign,
		precision: precision,
		mode:      mode,
	}, nil
}

// WithTrace returns a shallow copy of s with its step tracer replaced.
// NumeralSystem remains otherwise immutable; this is the sole supported
// way to attach a Trace, keeping severity a per-system setting rather
// than a global toggle (spec.md §9).
func (s *NumeralSystem) WithTrace(t Trace) *NumeralSystem {
	cp := *s
	cp.trace = t
	return &cp
}

// Base returns the size of the alphabet.
func (s *NumeralSystem) Base() int { return len(s.alphabet) }

// Identity returns the additive-identity glyph (alphabet[0]).
func (s *NumeralSystem) Identity() rune { return s.alphabet[0] }

// Unit returns the multiplicative-identity glyph (alphabet[1]).
func (s *NumeralSystem) Unit() rune { return s.alphabet[1] }

// Precision returns the target fractional precision P.
func (s *NumeralSystem) Precision() uint { return s.precision }

// Separator returns the fractional-point glyph.
func (s *NumeralSystem) Separator() rune { return s.separator }

// Sign returns the negative-sign glyph.
func (s *NumeralSystem) Sign() rune { return s.sign }

// Same reports whether s and o are the very same NumeralSystem value,
// the compatibility test every binary Number operation performs first.
func (s *NumeralSystem) Same(o *NumeralSystem) bool { return s == o }

func (s *NumeralSystem) identityString(n int) string {
	return strings.Repeat(string(s.Identity()), n)
}

// successor returns the glyph one position higher than g in the
// alphabet, and whether advancing past the last glyph wrapped around to
// the identity glyph (a carry).
func (s *NumeralSystem) successor(g rune) (rune, bool, error) {
	i, ok := s.index[g]
	if !ok {
		return 0, false, InputError{Reason: "glyph not in alphabet: " + string(g)}
	}
	if i == len(s.alphabet)-1 {
		return s.Identity(), true, nil
	}
	return s.alphabet[i+1], false, nil
}

// predecessor is the mirror of successor: wrapping from the identity
// glyph yields the last glyph of the alphabet and a borrow.
func (s *NumeralSystem) predecessor(g rune) (rune, bool, error) {
	i, ok := s.index[g]
	if !ok {
		return 0, false, InputError{Reason: "glyph not in alphabet: " + string(g)}
	}
	if i == 0 {
		return s.alphabet[len(s.alphabet)-1], true, nil
	}
	return s.alphabet[i-1], false, nil
}

// split separates a non-negative magnitude string into its integer and
// fractional parts. If str carries no separator, the fractional part is
// the identity glyph.
func (s *NumeralSystem) split(str string) (integer, fractional string) {
	i := strings.IndexRune(str, s.separator)
	if i < 0 {
		return str, string(s.Identity())
	}
	return str[:i], str[i+len(string(s.separator)):]
}

type padSide int

const (
	padLeft padSide = iota
	padRight
)

// pad returns a and b extended to equal length with identity glyphs,
// prepended when side is padLeft or appended when side is padRight.
func (s *NumeralSystem) pad(a, b string, side padSide) (string, string) {
	ra, rb := []rune(a), []rune(b)
	n := len(ra)
	if len(rb) > n {
		n = len(rb)
	}
	id := s.Identity()
	for len(ra) < n {
		if side == padLeft {
			ra = append([]rune{id}, ra...)
		} else {
			ra = append(ra, id)
		}
	}
	for len(rb) < n {
		if side == padLeft {
			rb = append([]rune{id}, rb...)
		} else {
			rb = append(rb, id)
		}
	}
	return string(ra), string(rb)
}

// raiseByBase multiplies a non-negative magnitude by base**k, moving the
// separator k places to the right and appending identity glyphs past
// the end of the fractional part as needed.
func (s *NumeralSystem) raiseByBase(str string, k int) string {
	if k == 0 {
		return str
	}
	integer, fractional := s.split(str)
	ri, rf := []rune(integer), []rune(fractional)
	for i := 0; i < k; i++ {
		if len(rf) == 0 {
			ri = append(ri, s.Identity())
			continue
		}
		ri = append(ri, rf[0])
		rf = rf[1:]
	}
	if len(rf) == 0 {
		rf = []rune{s.Identity()}
	}
	return string(ri) + string(s.separator) + string(rf)
}

// normalize enforces the canonical form of spec.md §3: a single
// separator with at least one glyph on each side, no superfluous
// leading identity glyphs in the integer part, no superfluous trailing
// identity glyphs in the fractional part, and a unique, unsigned
// representation of zero.
func (s *NumeralSystem) normalize(str string) (string, error) {
	if str == "" {
		return "", InputError{Reason: "empty numeral"}
	}
	neg := false
	r := []rune(str)
	if r[0] == s.sign {
		neg = true
		r = r[1:]
	}
	integer, fractional := s.split(string(r))
	if integer == "" || fractional == "" {
		return "", InputError{Reason: "malformed numeral: " + str}
	}
	id := s.Identity()
	ri := []rune(integer)
	for len(ri) > 1 && ri[0] == id {
		ri = ri[1:]
	}
	rf := []rune(fractional)
	for len(rf) > 1 && rf[len(rf)-1] == id {
		rf = rf[:len(rf)-1]
	}
	isZero := string(ri) == string(id) && string(rf) == string(id)
	if isZero {
		neg = false
	}
	out := string(ri) + string(s.separator) + string(rf)
	if neg {
		out = string(s.sign) + out
	}
	return out, nil
}
