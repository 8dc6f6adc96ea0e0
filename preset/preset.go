// Copyright 2024 The sifr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package preset supplies ready-made sifr.NumeralSystem profiles
// (decimal, binary, octal, hexadecimal) through a functional-options
// constructor, playing the role db47h/decimal's context.Context fluent
// builder (SetPrec/SetMode) plays for its Decimal type.
package preset

import "github.com/aeross/sifr"

const (
	defaultPrecision = 12
	defaultSeparator = '.'
	defaultSign      = '-'
)

// Option configures a NumeralSystem built by Decimal, Binary, Octal or
// Hex. Unset options fall back to a 12-digit precision, '.' separator,
// '-' sign, and HalfAwayFromZero rounding.
type Option func(*config)

type config struct {
	separator rune
	sign      rune
	precision uint
	mode      sifr.RoundingMode
}

// WithSeparator overrides the fractional separator glyph.
func WithSeparator(r rune) Option { return func(c *config) { c.separator = r } }

// WithSign overrides the negative-sign glyph.
func WithSign(r rune) Option { return func(c *config) { c.sign = r } }

// WithPrecision overrides the target fractional precision.
func WithPrecision(p uint) Option { return func(c *config) { c.precision = p } }

// WithRoundingMode overrides the rounding mode.
func WithRoundingMode(m sifr.RoundingMode) Option { return func(c *config) { c.mode = m } }

func build(alphabet string, opts ...Option) (*sifr.NumeralSystem, error) {
	c := config{
		separator: defaultSeparator,
		sign:      defaultSign,
		precision: defaultPrecision,
		mode:      sifr.HalfAwayFromZero,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return sifr.NewSystem(alphabet, c.separator, c.sign, c.precision, c.mode)
}

// Decimal returns a base-10 NumeralSystem using the glyphs 0-9.
func Decimal(opts ...Option) (*sifr.NumeralSystem, error) { return build("0123456789", opts...) }

// Binary returns a base-2 NumeralSystem using the glyphs 0-1.
func Binary(opts ...Option) (*sifr.NumeralSystem, error) { return build("01", opts...) }

// Octal returns a base-8 NumeralSystem using the glyphs 0-7.
func Octal(opts ...Option) (*sifr.NumeralSystem, error) { return build("01234567", opts...) }

// Hex returns a base-16 NumeralSystem using the glyphs 0-9 and A-F.
func Hex(opts ...Option) (*sifr.NumeralSystem, error) { return build("0123456789ABCDEF", opts...) }

func must(s *sifr.NumeralSystem, err error) *sifr.NumeralSystem {
	if err != nil {
		panic(err)
	}
	return s
}

// MustDecimal is Decimal, panicking on error.
func MustDecimal(opts ...Option) *sifr.NumeralSystem { return must(Decimal(opts...)) }

// MustBinary is Binary, panicking on error.
func MustBinary(opts ...Option) *sifr.NumeralSystem { return must(Binary(opts...)) }

// MustOctal is Octal, panicking on error.
func MustOctal(opts ...Option) *sifr.NumeralSystem { return must(Octal(opts...)) }

// MustHex is Hex, panicking on error.
func MustHex(opts ...Option) *sifr.NumeralSystem { return must(Hex(opts...)) }
