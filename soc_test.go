package socgen_test

import (
	"errors"
	"testing"

	sg "github.com/db47h/socgen"
)

func baseSoC(t *testing.T) *sg.SoC {
	t.Helper()
	soc := sg.New("base")
	mustDefine(t, soc.Clocks(), sg.DomainSpec{Name: "por", Freq: 12 * sg.MHz, Reset: sg.ResetLess})
	mustDefine(t, soc.Clocks(), sg.DomainSpec{Name: "sys", Freq: 50 * sg.MHz, Reset: sg.ResetSync, Source: "por"})
	mustRegister(t, soc.Mem(), sg.RegionSpec{Name: "core", Base: 0, Size: 0x1000})
	mustRegister(t, soc.Mem(), sg.RegionSpec{Name: "hyperram", Base: 0x2000_0000, Size: 8 << 20, Clock: "sys"})
	return soc
}

func TestSoC_Extend(t *testing.T) {
	base := baseSoC(t)

	// extending an unfrozen base must fail
	if _, err := base.Extend("eth"); err == nil {
		t.Error("extending unfrozen base did not fail")
	}
	if err := base.Freeze(); err != nil {
		t.Fatal(err)
	}

	ext, err := base.Extend("eth")
	if err != nil {
		t.Fatal(err)
	}
	mustRegister(t, ext.Mem(), sg.RegionSpec{Name: "ethmac", Base: 0xb000_0000, Size: 0x2000, Kind: sg.IO, Clock: "sys"})
	if err := ext.Freeze(); err != nil {
		t.Fatal(err)
	}

	// extended layout contains all three regions, sorted by base
	want := []string{"core", "hyperram", "ethmac"}
	l := ext.Mem().Layout()
	if len(l) != len(want) {
		t.Fatalf("%d regions, want %d", len(l), len(want))
	}
	for i, r := range l {
		if r.Name() != want[i] {
			t.Errorf("layout[%d] = %q, want %q", i, r.Name(), want[i])
		}
	}
	// the base is untouched
	if n := len(base.Mem().Layout()); n != 2 {
		t.Errorf("base grew to %d regions", n)
	}
	if _, ok := base.Clocks().Domain("eth_rx"); ok {
		t.Error("base grew a domain")
	}
}

func TestSoC_Extend_noRedefine(t *testing.T) {
	base := baseSoC(t)
	if err := base.Freeze(); err != nil {
		t.Fatal(err)
	}
	ext, err := base.Extend("eth")
	if err != nil {
		t.Fatal(err)
	}

	var dup *sg.DuplicateError
	if _, err := ext.Clocks().Define(sg.DomainSpec{Name: "sys", Freq: 100 * sg.MHz, Reset: sg.ResetSync, Source: "por"}); !errors.As(err, &dup) {
		t.Errorf("redefining base domain: got %v, want *DuplicateError", err)
	}
	if _, err := ext.Mem().Register(sg.RegionSpec{Name: "hyperram", Base: 0x5000_0000, Size: 0x1000}); !errors.As(err, &dup) {
		t.Errorf("redefining base region: got %v, want *DuplicateError", err)
	}
}

func TestSoC_Freeze(t *testing.T) {
	soc := baseSoC(t)
	if err := soc.Freeze(); err != nil {
		t.Fatal(err)
	}
	if !soc.Frozen() {
		t.Fatal("Frozen() = false after Freeze")
	}
	// idempotent
	if err := soc.Freeze(); err != nil {
		t.Fatal(err)
	}

	// frozen configurations reject any mutation
	if _, err := soc.Clocks().Define(sg.DomainSpec{Name: "x", Freq: sg.MHz, Reset: sg.ResetLess}); err == nil {
		t.Error("Define on frozen graph did not fail")
	}
	if err := soc.Clocks().AddPeriodConstraint("sys", 20000); err == nil {
		t.Error("AddPeriodConstraint on frozen graph did not fail")
	}
	if err := soc.Clocks().AddFalsePath("sys", "por"); err == nil {
		t.Error("AddFalsePath on frozen graph did not fail")
	}
	if _, err := soc.Mem().Register(sg.RegionSpec{Name: "x", Base: 0x9000_0000, Size: 0x1000}); err == nil {
		t.Error("Register on frozen space did not fail")
	}
}

func TestSoC_Freeze_clockBinding(t *testing.T) {
	soc := sg.New("bad")
	mustDefine(t, soc.Clocks(), sg.DomainSpec{Name: "por", Freq: 12 * sg.MHz, Reset: sg.ResetLess})
	mustRegister(t, soc.Mem(), sg.RegionSpec{Name: "sdram", Base: 0x4000_0000, Size: 0x1000, Clock: "sys"})
	if err := soc.Freeze(); err == nil {
		t.Fatal("freezing with a dangling clock binding did not fail")
	}
	if soc.Frozen() {
		t.Error("failed Freeze left the configuration frozen")
	}
}
