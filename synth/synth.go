// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package synth provides clock synthesizer implementations for the socgen
// composition core.
//
// A board configuration selects one concrete synthesizer variant (one per
// vendor PLL primitive); the composition core only ever sees the
// Synthesizer interface: reference frequency in, derived frequencies out.
//
package synth

import (
	"github.com/pkg/errors"

	"github.com/db47h/socgen"
)

// An OutputSpec describes one synthesizer output: the derived frequency is
// Mul/Div times the reference, offset by Phase.
//
type OutputSpec struct {
	Mul   int
	Div   int
	Phase socgen.Phase
}

// A Synthesizer derives clock frequencies from a single reference input.
//
type Synthesizer interface {
	// Outputs returns the number of clock outputs the primitive provides.
	Outputs() int
	// Synthesize computes the output frequency for each spec. It fails if
	// more outputs are requested than the primitive provides, or if any
	// ratio is invalid.
	Synthesize(ref socgen.Freq, outs []OutputSpec) ([]socgen.Freq, error)
}

// AltPLL is the Intel/Altera ALTPLL primitive. It provides five clock
// outputs sharing one reference input, each with an independent
// multiply/divide ratio and phase shift.
//
type AltPLL struct {
	// Target device family, e.g. "MAX 10". Recorded for the downstream
	// instantiation step, not interpreted here.
	Family string
	// Bandwidth type parameter, "AUTO" if empty.
	Bandwidth string
}

const altPLLOutputs = 5

// Outputs returns 5.
//
func (p *AltPLL) Outputs() int { return altPLLOutputs }

// Synthesize implements Synthesizer.
//
func (p *AltPLL) Synthesize(ref socgen.Freq, outs []OutputSpec) ([]socgen.Freq, error) {
	if len(outs) > altPLLOutputs {
		return nil, errors.Errorf("ALTPLL provides %d outputs, %d requested", altPLLOutputs, len(outs))
	}
	fs := make([]socgen.Freq, len(outs))
	for i, o := range outs {
		f, err := socgen.Derive(ref, o.Mul, o.Div)
		if err != nil {
			return nil, errors.Wrapf(err, "ALTPLL output %d", i)
		}
		fs[i] = f
	}
	return fs, nil
}

// Fixed is a pass-through synthesizer for boards whose reference oscillator
// already runs at the system frequency. It provides a single output that
// must use a 1/1 ratio and no phase shift.
//
type Fixed struct{}

// Outputs returns 1.
//
func (Fixed) Outputs() int { return 1 }

// Synthesize implements Synthesizer.
//
func (Fixed) Synthesize(ref socgen.Freq, outs []OutputSpec) ([]socgen.Freq, error) {
	if len(outs) > 1 {
		return nil, errors.Errorf("fixed clock provides 1 output, %d requested", len(outs))
	}
	fs := make([]socgen.Freq, len(outs))
	for i, o := range outs {
		if o.Mul != o.Div || o.Phase != 0 {
			return nil, errors.Errorf("fixed clock output %d cannot scale or shift the reference", i)
		}
		f, err := socgen.Derive(ref, o.Mul, o.Div)
		if err != nil {
			return nil, errors.Wrapf(err, "fixed clock output %d", i)
		}
		fs[i] = f
	}
	return fs, nil
}

// ForFamily returns the synthesizer variant for the given primitive name.
// Known primitives are "altpll" and "fixed".
//
func ForFamily(primitive, family string) (Synthesizer, error) {
	switch primitive {
	case "altpll":
		return &AltPLL{Family: family}, nil
	case "fixed", "":
		return Fixed{}, nil
	}
	return nil, errors.Errorf("unknown clock synthesizer primitive %q", primitive)
}
