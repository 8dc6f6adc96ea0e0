// Copyright 2024 The sifr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sifr

import "github.com/phuslu/log"

// Trace controls step-level tracing of the digit-sequence algorithms
// (baseAdd, baseSubtract, baseMultiply, baseDivide) and of the
// SeriesDriver loops. The zero value is
// silent: a Logger only emits once it is attached through NewTrace, so
// a NumeralSystem or SeriesDriver that never calls WithTrace stays
// silent regardless of the phuslu/log zero value's own Level.
//
// Severity is attached to a NumeralSystem through WithTrace and never
// mutated for the duration of a call; this replaces the reference
// implementation's pattern of temporarily lowering a global logger's
// level around hot inner calls (spec.md §9), which is not safe for
// concurrent callers and leaves no way to trace one system without
// tracing all of them.
type Trace struct {
	Logger  log.Logger
	enabled bool
}

// NewTrace returns a Trace that emits step records through logger at
// Debug level or finer. Use it with NumeralSystem.WithTrace or
// SeriesDriver.WithTrace; without it, step is always a no-op.
func NewTrace(logger log.Logger) Trace {
	return Trace{Logger: logger, enabled: true}
}

func (t Trace) step(op, format string, args ...interface{}) {
	if !t.enabled || t.Logger.Level > log.DebugLevel {
		return
	}
	t.Logger.Debug().Str("op", op).Msgf(format, args...)
}
