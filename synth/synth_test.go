package synth_test

import (
	"testing"

	sg "github.com/db47h/socgen"
	"github.com/db47h/socgen/synth"
)

func TestAltPLL(t *testing.T) {
	pll := &synth.AltPLL{Family: "MAX 10"}
	if n := pll.Outputs(); n != 5 {
		t.Fatalf("Outputs() = %d, want 5", n)
	}

	// the c10lprefkit ratios: 12 MHz * 25/6 on both outputs, the second
	// phase shifted for the SDRAM clock.
	fs, err := pll.Synthesize(12*sg.MHz, []synth.OutputSpec{
		{Mul: 25, Div: 6},
		{Mul: 25, Div: 6, Phase: -10000},
	})
	if err != nil {
		t.Fatal(err)
	}
	for i, f := range fs {
		if f != 50*sg.MHz {
			t.Errorf("output %d = %v, want 50 MHz", i, f)
		}
	}

	if _, err := pll.Synthesize(12*sg.MHz, make([]synth.OutputSpec, 6)); err == nil {
		t.Error("6 outputs on a 5-output primitive did not fail")
	}
	if _, err := pll.Synthesize(12*sg.MHz, []synth.OutputSpec{{Mul: 25, Div: 0}}); err == nil {
		t.Error("zero divisor did not fail")
	}
}

func TestFixed(t *testing.T) {
	fs, err := synth.Fixed{}.Synthesize(50*sg.MHz, []synth.OutputSpec{{Mul: 1, Div: 1}})
	if err != nil {
		t.Fatal(err)
	}
	if fs[0] != 50*sg.MHz {
		t.Errorf("output = %v, want 50 MHz", fs[0])
	}
	if _, err := (synth.Fixed{}).Synthesize(50*sg.MHz, []synth.OutputSpec{{Mul: 2, Div: 1}}); err == nil {
		t.Error("scaling on a fixed clock did not fail")
	}
	if _, err := (synth.Fixed{}).Synthesize(50*sg.MHz, []synth.OutputSpec{{Mul: 1, Div: 1, Phase: -10000}}); err == nil {
		t.Error("phase shift on a fixed clock did not fail")
	}
}

func TestForFamily(t *testing.T) {
	td := []struct {
		primitive string
		fail      bool
	}{
		{"altpll", false},
		{"fixed", false},
		{"", false},
		{"mmcm", true},
	}
	for _, d := range td {
		s, err := synth.ForFamily(d.primitive, "")
		if d.fail {
			if err == nil {
				t.Errorf("ForFamily(%q) did not fail", d.primitive)
			}
			continue
		}
		if err != nil {
			t.Errorf("ForFamily(%q): %v", d.primitive, err)
		} else if s == nil {
			t.Errorf("ForFamily(%q) = nil", d.primitive)
		}
	}
}
