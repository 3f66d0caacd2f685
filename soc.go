package socgen

import (
	"github.com/pkg/errors"
)

// A SoC bundles one clock domain graph and one address space under a name.
//
// A SoC starts mutable: domains, constraints and regions are added through
// Clocks and Mem while peripherals are composed. Freeze validates the
// configuration and makes it immutable. A frozen SoC can be extended into a
// new, independent configuration layering additional domains and regions on
// a copy of the base; the base itself is never mutated.
//
type SoC struct {
	name   string
	clocks *Graph
	mem    *AddrSpace
	frozen bool
}

// New returns a new, empty SoC configuration.
//
func New(name string) *SoC {
	return &SoC{
		name:   name,
		clocks: NewGraph(),
		mem:    NewAddrSpace(),
	}
}

// Name returns the configuration name.
func (s *SoC) Name() string { return s.name }

// Clocks returns the SoC clock domain graph.
func (s *SoC) Clocks() *Graph { return s.clocks }

// Mem returns the SoC address space.
func (s *SoC) Mem() *AddrSpace { return s.mem }

// Frozen reports whether the configuration has been frozen.
func (s *SoC) Frozen() bool { return s.frozen }

// Freeze validates the configuration and makes it immutable. Validation
// checks the cross-component invariant that every region bound to a clock
// names a defined domain. Freeze is idempotent.
//
func (s *SoC) Freeze() error {
	if s.frozen {
		return nil
	}
	for _, r := range s.mem.Layout() {
		if r.clock == "" {
			continue
		}
		if _, ok := s.clocks.Domain(r.clock); !ok {
			return errors.Errorf("region %q bound to undefined clock domain %q", r.name, r.clock)
		}
	}
	s.clocks.freeze()
	s.mem.freeze()
	s.frozen = true
	return nil
}

// Extend returns a new mutable configuration seeded with a copy of s.
// The receiver must be frozen first: an extension is always layered on a
// validated base. Extensions add domains and regions, never remove or
// replace them; redefining a name carried over from the base fails with
// the usual duplicate errors.
//
func (s *SoC) Extend(name string) (*SoC, error) {
	if !s.frozen {
		return nil, errors.Errorf("cannot extend %q: base configuration not frozen", s.name)
	}
	return &SoC{
		name:   name,
		clocks: s.clocks.clone(),
		mem:    s.mem.clone(),
	}, nil
}
