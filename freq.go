// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package socgen

import (
	"strconv"
)

// A Freq is a clock frequency in Hertz.
//
type Freq uint64

// Common frequency multiples.
//
const (
	Hz  Freq = 1
	KHz      = 1000 * Hz
	MHz      = 1000 * KHz
	GHz      = 1000 * MHz
)

func (f Freq) String() string {
	switch {
	case f >= MHz && f%MHz == 0:
		return strconv.FormatUint(uint64(f/MHz), 10) + " MHz"
	case f >= KHz && f%KHz == 0:
		return strconv.FormatUint(uint64(f/KHz), 10) + " kHz"
	default:
		return strconv.FormatUint(uint64(f), 10) + " Hz"
	}
}

// Period returns the clock period of f in picoseconds.
// It returns 0 for a zero frequency.
//
func (f Freq) Period() Period {
	if f == 0 {
		return 0
	}
	return Period(uint64(Picosecond) / uint64(f))
}

// A Period is a clock period expressed in picoseconds. Periods are kept
// integral so that exported constraints are reproducible across builds.
//
type Period uint64

// One second worth of picoseconds.
const Picosecond Period = 1e12

// Ns returns p as a decimal string in nanoseconds, the unit expected by
// timing constraint files.
//
func (p Period) Ns() string {
	ns := p / 1000
	frac := p % 1000
	return strconv.FormatUint(uint64(ns), 10) + "." + pad3(uint64(frac))
}

func pad3(v uint64) string {
	s := strconv.FormatUint(v, 10)
	for len(s) < 3 {
		s = "0" + s
	}
	return s
}

// A Phase is a clock phase offset in picoseconds, relative to the reference
// output of the synthesizer. Negative values lead the reference.
//
type Phase int64

// Derive computes the frequency obtained by multiplying ref by mul/div.
// The result must be an exact integer frequency: inexact ratios fail with
// a *RatioError rather than rounding, since a rounded frequency would leak
// into exported constraints and break build reproducibility.
//
func Derive(ref Freq, mul, div int) (Freq, error) {
	if div == 0 {
		return 0, &RatioError{Ref: ref, Mul: mul, Div: div, Reason: "zero divisor"}
	}
	if mul <= 0 || div < 0 {
		return 0, &RatioError{Ref: ref, Mul: mul, Div: div, Reason: "negative ratio"}
	}
	n := uint64(ref) * uint64(mul)
	if n%uint64(div) != 0 {
		return 0, &RatioError{Ref: ref, Mul: mul, Div: div, Reason: "inexact result"}
	}
	return Freq(n / uint64(div)), nil
}
