// Package board loads board description files and assembles socgen SoC
// configurations from them.
//
// A board description is data, not code: the reference oscillator, the PLL
// primitive and its ratios, the pin names, and the peripheral address
// placements all come from a YAML file. The build recipes in this package
// only wire that data into the composition core.
//
package board

import (
	"github.com/pkg/errors"

	"github.com/db47h/socgen"
)

// A Pin is an opaque handle to a board-level signal. The composition core
// attaches pins to domains and peripherals without inspecting electrical
// properties; Location is carried through for the downstream toolchain.
//
type Pin struct {
	Name     string
	Location string
}

// A RefClock names the board's reference oscillator pin and its frequency.
//
type RefClock struct {
	Pin  string
	Freq socgen.Freq
}

// A PLLOutput derives one clock domain from the reference.
//
type PLLOutput struct {
	Domain string
	Mul    int
	Div    int
	Phase  socgen.Phase
}

// A PLL selects the synthesizer primitive and its output ratios.
//
type PLL struct {
	Primitive string
	Family    string
	Outputs   []PLLOutput
}

// An Ethernet block describes the board's optional networking peripheral
// set: the PHY clock frequency, the pins it needs, and the MAC control
// region placement.
//
type Ethernet struct {
	Freq   socgen.Freq
	Pins   []string
	Region socgen.RegionSpec
}

// A Desc is a complete board description.
//
type Desc struct {
	Name     string
	RefClock RefClock
	ResetPin string
	Pins     map[string]Pin
	PLL      PLL
	Regions  []socgen.RegionSpec
	Ethernet *Ethernet
}

// A Platform hands out the board's pins. Each pin can be requested only
// once: two peripherals claiming the same signal is a board description
// bug, caught here rather than at synthesis.
//
type Platform struct {
	pins      map[string]Pin
	requested map[string]bool
}

// NewPlatform returns a Platform serving the pins of d.
//
func NewPlatform(d *Desc) *Platform {
	return &Platform{pins: d.Pins, requested: make(map[string]bool)}
}

// Request returns the named pin and marks it claimed.
//
func (p *Platform) Request(name string) (Pin, error) {
	pin, ok := p.pins[name]
	if !ok {
		return Pin{}, errors.Errorf("board has no pin %q", name)
	}
	if p.requested[name] {
		return Pin{}, errors.Errorf("pin %q already requested", name)
	}
	p.requested[name] = true
	return pin, nil
}
