package board

import (
	"github.com/pkg/errors"

	"github.com/db47h/socgen"
	"github.com/db47h/socgen/synth"
)

// Name of the power-on-reset domain defined by BuildBase.
const PORDomain = "por"

// BuildBase assembles the base SoC configuration for a board: the
// power-on-reset domain clocked straight from the reference oscillator,
// the PLL-derived domains with their period constraints, and the board's
// memory regions. The returned configuration is frozen.
//
func BuildBase(d *Desc) (*socgen.SoC, error) {
	plat := NewPlatform(d)
	if _, err := plat.Request(d.RefClock.Pin); err != nil {
		return nil, errors.Wrap(err, "reference clock")
	}
	if d.ResetPin != "" {
		if _, err := plat.Request(d.ResetPin); err != nil {
			return nil, errors.Wrap(err, "reset")
		}
	}

	soc := socgen.New(d.Name)
	g := soc.Clocks()

	// The por domain runs directly off the reference and is never reset;
	// every other domain holds reset until por releases it.
	if _, err := g.Define(socgen.DomainSpec{
		Name:  PORDomain,
		Freq:  d.RefClock.Freq,
		Reset: socgen.ResetLess,
		Tags:  []string{"keep"},
	}); err != nil {
		return nil, err
	}

	syn, err := synth.ForFamily(d.PLL.Primitive, d.PLL.Family)
	if err != nil {
		return nil, err
	}
	outs := make([]synth.OutputSpec, len(d.PLL.Outputs))
	for i, o := range d.PLL.Outputs {
		outs[i] = synth.OutputSpec{Mul: o.Mul, Div: o.Div, Phase: o.Phase}
	}
	freqs, err := syn.Synthesize(d.RefClock.Freq, outs)
	if err != nil {
		return nil, errors.Wrap(err, d.Name)
	}
	for i, o := range d.PLL.Outputs {
		if _, err := g.Define(socgen.DomainSpec{
			Name:   o.Domain,
			Freq:   freqs[i],
			Phase:  o.Phase,
			Reset:  socgen.ResetSync,
			Source: PORDomain,
			Tags:   []string{"keep"},
		}); err != nil {
			return nil, err
		}
		if err := g.AddPeriodConstraint(o.Domain, freqs[i].Period()); err != nil {
			return nil, err
		}
	}

	for _, spec := range d.Regions {
		if _, err := soc.Mem().Register(spec); err != nil {
			return nil, err
		}
	}

	if err := soc.Freeze(); err != nil {
		return nil, err
	}
	return soc, nil
}

// BuildEthernet assembles the extended configuration: the base plus the
// networking peripheral set. The PHY receive and transmit domains are added
// with period constraints and declared asynchronous to the system domain
// via false paths, and the MAC control region is registered. The base
// configuration is built and frozen first and is not modified.
//
func BuildEthernet(d *Desc) (*socgen.SoC, error) {
	if d.Ethernet == nil {
		return nil, errors.Errorf("board %q has no ethernet description", d.Name)
	}
	base, err := BuildBase(d)
	if err != nil {
		return nil, err
	}
	return ExtendEthernet(base, d)
}

// ExtendEthernet layers the networking peripheral set of d on top of an
// already-frozen base configuration.
//
func ExtendEthernet(base *socgen.SoC, d *Desc) (*socgen.SoC, error) {
	eth := d.Ethernet
	if eth == nil {
		return nil, errors.Errorf("board %q has no ethernet description", d.Name)
	}
	if len(d.PLL.Outputs) == 0 {
		return nil, errors.Errorf("board %q has no system clock domain", d.Name)
	}
	plat := NewPlatform(d)
	for _, pin := range eth.Pins {
		if _, err := plat.Request(pin); err != nil {
			return nil, errors.Wrap(err, "ethernet")
		}
	}

	soc, err := base.Extend(d.Name + "-eth")
	if err != nil {
		return nil, err
	}
	g := soc.Clocks()
	for _, name := range []string{"eth_rx", "eth_tx"} {
		if _, err := g.Define(socgen.DomainSpec{
			Name:   name,
			Freq:   eth.Freq,
			Reset:  socgen.ResetSync,
			Source: PORDomain,
		}); err != nil {
			return nil, err
		}
		if err := g.AddPeriodConstraint(name, eth.Freq.Period()); err != nil {
			return nil, err
		}
	}
	// The PHY clocks are asynchronous to the system domain; exempt all
	// pairs between the three from timing analysis.
	sys := d.PLL.Outputs[0].Domain
	if err := g.AddFalsePath(sys, "eth_rx", "eth_tx"); err != nil {
		return nil, err
	}

	spec := eth.Region
	spec.Tags = append(spec.Tags, "csr", "irq")
	if _, err := soc.Mem().Register(spec); err != nil {
		return nil, err
	}

	if err := soc.Freeze(); err != nil {
		return nil, err
	}
	return soc, nil
}
