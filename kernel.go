// Copyright 2024 The sifr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the digit-sequence arithmetic kernel: positional
// add/subtract carry machines, the fractional-aware combiner, repeated-
// addition multiplication, subtract-based division, magnitude
// comparison and rounding. Every function here operates on non-negative
// magnitude strings; sign is handled entirely by Number (see number.go).

package sifr

import "strings"

// digitOp combines two equal-width, separator-free digit strings,
// returning the combined digits and whether the operation produced an
// out-carry (baseAdd) or out-borrow (baseSubtract) at the most
// significant position.
type digitOp func(a, b string) (string, bool)

// baseAdd adds a and b digit-by-digit, right to left, left-padding the
// shorter operand with identity glyphs first. The returned string has
// the same width as the padded operands; carry reports whether addition
// overflowed that width.
func (s *NumeralSystem) baseAdd(a, b string) (string, bool) {
	a, b = s.pad(a, b, padLeft)
	ra, rb := []rune(a), []rune(b)
	n := len(ra)
	result := make([]rune, n)
	carry := false
	for i := n - 1; i >= 0; i-- {
		d := ra[i]
		if carry {
			d, carry, _ = s.successor(d)
		}
		for _, g := range s.alphabet {
			if g == rb[i] {
				break
			}
			var c bool
			d, c, _ = s.successor(d)
			if c {
				carry = true
			}
		}
		result[i] = d
	}
	out := string(result)
	s.trace.step("baseAdd", "%s + %s -> %s carry=%v", a, b, out, carry)
	return out, carry
}

// baseSubtract mirrors baseAdd using predecessor; a final borrow of true
// means b's magnitude exceeds a's at the padded width.
func (s *NumeralSystem) baseSubtract(a, b string) (string, bool) {
	a, b = s.pad(a, b, padLeft)
	ra, rb := []rune(a), []rune(b)
	n := len(ra)
	result := make([]rune, n)
	borrow := false
	for i := n - 1; i >= 0; i-- {
		d := ra[i]
		if borrow {
			d, borrow, _ = s.predecessor(d)
		}
		for _, g := range s.alphabet {
			if g == rb[i] {
				break
			}
			var c bool
			d, c, _ = s.predecessor(d)
			if c {
				borrow = true
			}
		}
		result[i] = d
	}
	out := string(result)
	s.trace.step("baseSubtract", "%s - %s -> %s borrow=%v", a, b, out, borrow)
	return out, borrow
}

// decimalCombine glues the integer and fractional parts of two
// non-negative magnitudes together through op (baseAdd or baseSubtract),
// handling the fractional-to-integer carry/borrow and, for subtraction,
// the case where the logical result goes below zero. zeroCrossed
// reports that latter case: op was baseSubtract and a < b, so the
// returned magnitude is |a-b| rather than a-b.
func (s *NumeralSystem) decimalCombine(a, b string, op digitOp) (result string, zeroCrossed bool) {
	id := string(s.Identity())
	unit := string(s.Unit())
	n, _ := op(id, unit) // unit for addition, the last glyph for subtraction

	numA, fracA := s.split(a)
	numB, fracB := s.split(b)
	fracA, fracB = s.pad(fracA, fracB, padRight)

	frac, fcarry := op(fracA, fracB)

	var num string
	var carry bool
	if fcarry {
		tmp, tmpCarry := op(numA, unit)
		if tmpCarry {
			tmp = n + tmp
		}
		var tailCarry bool
		num, tailCarry = op(tmp, numB)
		if n == unit {
			// addition: tmpCarry already grew tmp by a real leading
			// digit, so only a further overflow past that width counts.
			carry = tailCarry
		} else {
			// subtraction: tmpCarry means the integer part borrowed
			// past its own width to absorb the fractional borrow; that
			// borrow is only masked, not resolved, if the op against
			// numB doesn't surface it on its own (e.g. numA and numB
			// both have a "0" integer part, as in 0.3 - 0.5).
			carry = tmpCarry || tailCarry
		}
	} else {
		num, carry = op(numA, numB)
	}

	switch {
	case carry && n == unit:
		out, _ := s.normalize(unit + num + string(s.separator) + frac)
		return out, false
	case carry:
		// op was baseSubtract and the logical value went below zero:
		// reflect both parts through their identity-run complement.
		diffFrac, fracBorrow := op(s.identityString(len([]rune(frac))), frac)
		diffNum, _ := op(s.identityString(len([]rune(num))), num)
		if fracBorrow {
			diffNum, _ = op(diffNum, unit)
		}
		out, _ := s.normalize(diffNum + string(s.separator) + diffFrac)
		return out, true
	default:
		out, _ := s.normalize(num + string(s.separator) + frac)
		return out, false
	}
}

// addFull adds two full (integer.fractional) non-negative magnitudes.
func (s *NumeralSystem) addFull(a, b string) string {
	out, _ := s.decimalCombine(a, b, s.baseAdd)
	return out
}

// subtractFull subtracts non-negative magnitude b from a; zeroCrossed
// reports that b > a, in which case the returned magnitude is |a-b|.
func (s *NumeralSystem) subtractFull(a, b string) (string, bool) {
	return s.decimalCombine(a, b, s.baseSubtract)
}

// knuthUp applies op, seeded at seed, once for every digit value at
// every position of multiplier, with base raised by the position index.
// Instantiated with (addFull, identity) it realizes multiplication by
// repeated addition; instantiated with (baseMultiply, unit) it realizes
// integer exponentiation by repeated multiplication. multiplier must be
// a plain (separator-free) digit string.
func (s *NumeralSystem) knuthUp(base, multiplier string, op func(a, b string) string, seed string) string {
	result := seed
	digits := []rune(multiplier)
	for i := len(digits) - 1; i >= 0; i-- {
		figCount := len(digits) - 1 - i
		shifted := s.raiseByBase(base, figCount)
		for _, g := range s.alphabet {
			if g == digits[i] {
				break
			}
			result = op(result, shifted)
		}
	}
	return result
}

// divideByBasePower divides a non-negative magnitude by base**k by
// moving its separator k digit positions to the left, padding with
// identity glyphs when k exceeds the width of the integer part.
func (s *NumeralSystem) divideByBasePower(magnitude string, k int) string {
	if k == 0 {
		return magnitude
	}
	integer, frac := s.split(magnitude)
	ri := []rune(integer)
	if k >= len(ri) {
		pad := strings.Repeat(string(s.Identity()), k-len(ri))
		return string(s.Identity()) + string(s.separator) + pad + string(ri) + frac
	}
	head, tail := string(ri[:len(ri)-k]), string(ri[len(ri)-k:])
	return head + string(s.separator) + tail + frac
}

// baseMultiply multiplies two non-negative magnitudes and rounds the
// result to the system's target precision.
func (s *NumeralSystem) baseMultiply(a, b string) string {
	aInt, aFrac := s.split(a)
	id := string(s.Identity())

	p1 := s.knuthUp(b, aInt, s.addFull, id)
	p2 := s.knuthUp(b, aFrac, s.addFull, id)
	p2Shifted := s.divideByBasePower(p2, len([]rune(aFrac)))

	result := s.addFull(p1, p2Shifted)
	out, _ := s.normalize(s.round(result, s.precision))
	s.trace.step("baseMultiply", "%s * %s -> %s", a, b, out)
	return out
}

// isZeroMagnitude reports whether m, a non-negative magnitude, is the
// identity value (zero).
func (s *NumeralSystem) isZeroMagnitude(m string) bool {
	integer, frac := s.split(m)
	return strings.Trim(integer, string(s.Identity())) == "" && strings.Trim(frac, string(s.Identity())) == ""
}

// timesInNum repeatedly adds denom to a running product and one unit to
// a running quotient until the next product would exceed numer,
// returning the integer quotient and the remainder numer-product.
func (s *NumeralSystem) timesInNum(numer, denom string) (quotientInt, remainder string) {
	id := string(s.Identity())
	unit := string(s.Unit())
	prod, quot := id, id
	for {
		newProd := s.addFull(prod, denom)
		newQuot := s.addFull(quot, unit)
		greater, equal := s.magnitudeCompare(newProd, numer)
		if greater && !equal {
			break
		}
		prod, quot = newProd, newQuot
	}
	remainder, _ = s.subtractFull(numer, prod)
	quotientInt, _ = s.split(quot)
	return quotientInt, remainder
}

// baseDivide divides non-negative magnitude numer by denom, producing a
// quotient with up to P fractional digits (rounded from P+1). denom
// equal to identity (division by zero) is rejected with OutOfScopeError
// before the subtract loop ever runs (spec.md §9 Open Question).
func (s *NumeralSystem) baseDivide(numer, denom string) (string, error) {
	if s.isZeroMagnitude(denom) {
		return "", OutOfScopeError{Reason: "division by zero"}
	}
	q0, r := s.timesInNum(numer, denom)
	digits := []rune(q0)
	for count := uint(0); !s.isZeroMagnitude(r) && count <= s.precision; count++ {
		r = s.raiseByBase(r, 1)
		var digit string
		digit, r = s.timesInNum(r, denom)
		digits = append(digits, []rune(digit)...)
	}
	integerLen := len([]rune(q0))
	fracDigits := string(digits[integerLen:])
	if fracDigits == "" {
		fracDigits = string(s.Identity())
	}
	raw := string(digits[:integerLen]) + string(s.separator) + fracDigits
	out, _ := s.normalize(s.round(raw, s.precision))
	s.trace.step("baseDivide", "%s / %s -> %s", numer, denom, out)
	return out, nil
}

// integerExponent raises base to the non-negative, non-fractional power
// exp via repeated multiplication. A non-zero fractional part in exp is
// rejected with OutOfScopeError.
func (s *NumeralSystem) integerExponent(base, exp string) (string, error) {
	expInt, expFrac := s.split(exp)
	if strings.Trim(expFrac, string(s.Identity())) != "" {
		return "", OutOfScopeError{Reason: "exponent must be an integer"}
	}
	out, _ := s.normalize(s.knuthUp(base, expInt, s.baseMultiply, string(s.Unit())))
	return out, nil
}

// magnitudeCompare canonicalises a and b and compares them as
// non-negative magnitudes.
func (s *NumeralSystem) magnitudeCompare(a, b string) (greater, equal bool) {
	na, _ := s.normalize(a)
	nb, _ := s.normalize(b)
	aInt, aFrac := s.split(na)
	bInt, bFrac := s.split(nb)
	if la, lb := len([]rune(aInt)), len([]rune(bInt)); la != lb {
		return la > lb, false
	}
	if g, e := s.compareDigits(aInt, bInt); !e {
		return g, false
	}
	aFrac, bFrac = s.pad(aFrac, bFrac, padRight)
	return s.compareDigits(aFrac, bFrac)
}

func (s *NumeralSystem) compareDigits(a, b string) (greater, equal bool) {
	ra, rb := []rune(a), []rune(b)
	for i := range ra {
		if ra[i] == rb[i] {
			continue
		}
		return s.index[ra[i]] > s.index[rb[i]], false
	}
	return false, true
}

// round trims magnitude to L fractional digits using s's rounding mode.
func (s *NumeralSystem) round(magnitude string, L uint) string {
	return roundFuncs[s.mode](s, magnitude, L)
}

// roundHalfAwayFromZero implements spec.md §4.2's rounding rule: the
// digit at fractional position L (0-indexed from the separator) rounds
// up, away from zero, when it lies in the upper half of the alphabet.
func (s *NumeralSystem) roundHalfAwayFromZero(magnitude string, L uint) string {
	integer, frac := s.split(magnitude)
	rf := []rune(frac)
	if uint(len(rf)) <= L {
		return magnitude
	}
	threshold := (s.Base() + 1) / 2
	roundUp := s.index[rf[L]] >= threshold

	keepFrac := string(s.Identity())
	if L > 0 {
		keepFrac = string(rf[:L])
	}
	truncated := integer + string(s.separator) + keepFrac
	if !roundUp {
		out, _ := s.normalize(truncated)
		return out
	}

	incrInt, incrFrac := string(s.Identity()), string(s.Identity())
	if L == 0 {
		incrInt = string(s.Unit())
	} else {
		incrFrac = strings.Repeat(string(s.Identity()), int(L)-1) + string(s.Unit())
	}
	bumped := s.addFull(truncated, incrInt+string(s.separator)+incrFrac)
	out, _ := s.normalize(bumped)
	return out
}
