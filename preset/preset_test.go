// Copyright 2024 The sifr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package preset

import (
	"testing"

	"github.com/aeross/sifr"
)

func TestDecimalDefaults(t *testing.T) {
	sys := MustDecimal()
	if sys.Base() != 10 {
		t.Fatalf("Base() = %d, want 10", sys.Base())
	}
	if sys.Precision() != defaultPrecision {
		t.Fatalf("Precision() = %d, want %d", sys.Precision(), defaultPrecision)
	}
	if sys.Separator() != '.' || sys.Sign() != '-' {
		t.Fatalf("Separator/Sign = %q/%q, want '.'/'-'", sys.Separator(), sys.Sign())
	}
}

func TestBinaryOctalHexBases(t *testing.T) {
	if got := MustBinary().Base(); got != 2 {
		t.Errorf("Binary Base() = %d, want 2", got)
	}
	if got := MustOctal().Base(); got != 8 {
		t.Errorf("Octal Base() = %d, want 8", got)
	}
	if got := MustHex().Base(); got != 16 {
		t.Errorf("Hex Base() = %d, want 16", got)
	}
}

func TestOptionsOverrideDefaults(t *testing.T) {
	sys := MustDecimal(WithPrecision(4), WithSeparator(','), WithSign('~'))
	if sys.Precision() != 4 {
		t.Errorf("Precision() = %d, want 4", sys.Precision())
	}
	if sys.Separator() != ',' {
		t.Errorf("Separator() = %q, want ','", sys.Separator())
	}
	if sys.Sign() != '~' {
		t.Errorf("Sign() = %q, want '~'", sys.Sign())
	}
}

func TestWithRoundingModeIsAccepted(t *testing.T) {
	sys := MustDecimal(WithRoundingMode(sifr.HalfAwayFromZero), WithPrecision(2))
	got, err := sifr.New(sys, "1.005")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if want := "1.01"; got.Round(2).String() != want {
		t.Fatalf("Round(1.005, 2) = %s, want %s", got.Round(2), want)
	}
}
