// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package socgen

import (
	"sort"

	"github.com/pkg/errors"
)

// A ResetPolicy states whether and how a clock domain's reset signal is
// synchronized.
//
type ResetPolicy int

// Reset policies.
//
const (
	// ResetLess domains have no reset signal at all, typically the
	// power-on-reset domain itself.
	ResetLess ResetPolicy = iota
	// ResetSync domains release their reset synchronously with their own
	// clock.
	ResetSync
	// ResetAsync domains assert reset asynchronously and release it
	// synchronously.
	ResetAsync
)

func (p ResetPolicy) String() string {
	switch p {
	case ResetLess:
		return "reset_less"
	case ResetSync:
		return "synchronous"
	case ResetAsync:
		return "asynchronous"
	}
	return "unknown"
}

// A DomainSpec describes a clock domain to be defined in a Graph.
//
type DomainSpec struct {
	// Domain name. Must be unique within the graph.
	Name string
	// Clock frequency. Usually the output of Derive or a Synthesizer.
	Freq Freq
	// Phase offset relative to the synthesizer reference output.
	Phase Phase
	// Reset policy for the domain.
	Reset ResetPolicy
	// Source names the domain whose logic drives this domain's reset.
	// Required unless Reset is ResetLess, in which case it must be empty.
	// The source must already be defined: domains are defined in reset
	// dependency order, which rules out reset cycles by construction.
	Source string
	// Tool directives attached to the domain.
	Tags []string
}

// A Domain is a clock domain registered in a Graph. Domains are immutable
// once defined.
//
type Domain struct {
	name   string
	freq   Freq
	phase  Phase
	reset  ResetPolicy
	source string
	tags   Tags
}

// Name returns the domain name.
func (d *Domain) Name() string { return d.name }

// Freq returns the domain clock frequency.
func (d *Domain) Freq() Freq { return d.freq }

// Phase returns the domain phase offset in picoseconds.
func (d *Domain) Phase() Phase { return d.phase }

// Reset returns the domain reset policy.
func (d *Domain) Reset() ResetPolicy { return d.reset }

// ResetSource returns the name of the domain driving this domain's reset,
// or the empty string for a reset-less domain.
func (d *Domain) ResetSource() string { return d.source }

// Tags returns the domain's tool directives.
func (d *Domain) Tags() Tags { return d.tags }

// falsePath is a canonical unordered domain pair, a < b.
type falsePath struct {
	a, b string
}

// A Graph is a clock domain graph: the set of clock domains of a SoC
// together with their timing constraints. The zero value is not usable,
// use NewGraph.
//
type Graph struct {
	domains map[string]*Domain
	periods map[string]Period
	paths   map[falsePath]struct{}
	frozen  bool
}

// NewGraph returns an empty clock domain graph.
//
func NewGraph() *Graph {
	return &Graph{
		domains: make(map[string]*Domain),
		periods: make(map[string]Period),
		paths:   make(map[falsePath]struct{}),
	}
}

// Define registers a new clock domain described by spec.
//
// It fails with a *DuplicateError if the domain name is already taken, and
// with a *ResetSourceError if the reset source is inconsistent with the
// reset policy: missing for a non-reset-less domain, set for a reset-less
// one, self-referencing, or naming a domain that has not been defined yet.
//
func (g *Graph) Define(spec DomainSpec) (*Domain, error) {
	if g.frozen {
		return nil, errors.Errorf("cannot define domain %q: clock graph is frozen", spec.Name)
	}
	if spec.Name == "" {
		return nil, errors.New("empty clock domain name")
	}
	if _, ok := g.domains[spec.Name]; ok {
		return nil, &DuplicateError{Kind: "clock domain", Name: spec.Name}
	}
	if spec.Reset == ResetLess {
		if spec.Source != "" {
			return nil, &ResetSourceError{Domain: spec.Name, Source: spec.Source,
				Reason: "reset-less domain cannot have a reset source"}
		}
	} else {
		if spec.Source == "" {
			return nil, &ResetSourceError{Domain: spec.Name, Source: spec.Source,
				Reason: "reset source required for " + spec.Reset.String() + " reset"}
		}
		if spec.Source == spec.Name {
			return nil, &ResetSourceError{Domain: spec.Name, Source: spec.Source,
				Reason: "domain cannot be its own reset source"}
		}
		if _, ok := g.domains[spec.Source]; !ok {
			return nil, &ResetSourceError{Domain: spec.Name, Source: spec.Source,
				Reason: "undefined domain"}
		}
	}
	d := &Domain{
		name:   spec.Name,
		freq:   spec.Freq,
		phase:  spec.Phase,
		reset:  spec.Reset,
		source: spec.Source,
		tags:   newTags(spec.Tags),
	}
	g.domains[spec.Name] = d
	return d, nil
}

// Domain returns the domain with the given name.
//
func (g *Graph) Domain(name string) (*Domain, bool) {
	d, ok := g.domains[name]
	return d, ok
}

// Domains returns all defined domains sorted by name.
//
func (g *Graph) Domains() []*Domain {
	ds := make([]*Domain, 0, len(g.domains))
	for _, d := range g.domains {
		ds = append(ds, d)
	}
	sort.Slice(ds, func(i, j int) bool { return ds[i].name < ds[j].name })
	return ds
}

// AddPeriodConstraint records the timing period for a domain's clock.
// Repeated calls overwrite the previous value, so repeating an identical
// call is a no-op. The domain must already be defined.
//
func (g *Graph) AddPeriodConstraint(domain string, p Period) error {
	if g.frozen {
		return errors.Errorf("cannot constrain domain %q: clock graph is frozen", domain)
	}
	if _, ok := g.domains[domain]; !ok {
		return errors.Errorf("period constraint on undefined domain %q", domain)
	}
	g.periods[domain] = p
	return nil
}

// AddFalsePath declares that timing paths between any two of the given
// domains are exempt from static timing analysis. The declaration is
// symmetric: argument order does not matter. All named domains must be
// defined and at least two are required.
//
func (g *Graph) AddFalsePath(domains ...string) error {
	if g.frozen {
		return errors.New("cannot add false path: clock graph is frozen")
	}
	if len(domains) < 2 {
		return errors.New("false path requires at least two domains")
	}
	for _, n := range domains {
		if _, ok := g.domains[n]; !ok {
			return errors.Errorf("false path on undefined domain %q", n)
		}
	}
	for i, a := range domains {
		for _, b := range domains[i+1:] {
			if a == b {
				return errors.Errorf("false path from domain %q to itself", a)
			}
			g.paths[newFalsePath(a, b)] = struct{}{}
		}
	}
	return nil
}

func newFalsePath(a, b string) falsePath {
	if b < a {
		a, b = b, a
	}
	return falsePath{a, b}
}

func (g *Graph) freeze() { g.frozen = true }

func (g *Graph) clone() *Graph {
	c := NewGraph()
	for n, d := range g.domains {
		cd := *d
		cd.tags = d.tags.clone()
		c.domains[n] = &cd
	}
	for n, p := range g.periods {
		c.periods[n] = p
	}
	for fp := range g.paths {
		c.paths[fp] = struct{}{}
	}
	return c
}

// ConstraintKind discriminates exported constraint records.
//
type ConstraintKind int

// Constraint kinds.
//
const (
	PeriodConstraint ConstraintKind = iota
	FalsePathConstraint
)

// A Constraint is one exported timing constraint record. For a
// PeriodConstraint, Domain and Period are set; for a FalsePathConstraint,
// From and To are set with From < To.
//
type Constraint struct {
	Kind   ConstraintKind
	Domain string
	Period Period
	From   string
	To     string
}

// Export returns all recorded constraints in a stable, insertion-independent
// order: period constraints sorted by domain name, then false paths sorted
// by their canonical pair. The order feeds reproducible build artifacts.
//
func (g *Graph) Export() []Constraint {
	cs := make([]Constraint, 0, len(g.periods)+len(g.paths))
	for n, p := range g.periods {
		cs = append(cs, Constraint{Kind: PeriodConstraint, Domain: n, Period: p})
	}
	sort.Slice(cs, func(i, j int) bool { return cs[i].Domain < cs[j].Domain })
	fps := make([]falsePath, 0, len(g.paths))
	for fp := range g.paths {
		fps = append(fps, fp)
	}
	sort.Slice(fps, func(i, j int) bool {
		if fps[i].a != fps[j].a {
			return fps[i].a < fps[j].a
		}
		return fps[i].b < fps[j].b
	})
	for _, fp := range fps {
		cs = append(cs, Constraint{Kind: FalsePathConstraint, From: fp.a, To: fp.b})
	}
	return cs
}
