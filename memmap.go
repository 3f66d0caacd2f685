// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package socgen

import (
	"math"
	"sort"

	"github.com/pkg/errors"
)

// A Kind distinguishes RAM-like memory regions from peripheral control
// register ranges.
//
type Kind int

// Region kinds.
//
const (
	Memory Kind = iota
	IO
)

func (k Kind) String() string {
	switch k {
	case Memory:
		return "memory"
	case IO:
		return "io"
	}
	return "unknown"
}

// A Peripheral is the bus interface a region decodes for. The composer
// keeps the association but never calls into it: peripheral behavior is
// owned elsewhere, only the address footprint is registered here.
//
type Peripheral interface{}

// A RegionSpec describes a memory region to be registered in an AddrSpace.
//
type RegionSpec struct {
	// Region name. Must be unique within the address space.
	Name string
	// Base address and size in bytes. The region covers the half-open
	// range [Base, Base+Size).
	Base uint64
	Size uint64
	// Memory or IO.
	Kind Kind
	// Clock optionally names the clock domain the peripheral behind this
	// region runs in. Checked against the clock graph when the SoC is
	// frozen.
	Clock string
	// Tool directives attached to the region.
	Tags []string
	// Bus interface decoding for this region, if any.
	Peripheral Peripheral
}

// A Region is a registered memory region. Regions are immutable once
// registered.
//
type Region struct {
	name   string
	base   uint64
	size   uint64
	kind   Kind
	clock  string
	tags   Tags
	periph Peripheral
}

// Name returns the region name.
func (r *Region) Name() string { return r.name }

// Base returns the region base address.
func (r *Region) Base() uint64 { return r.base }

// Size returns the region size in bytes.
func (r *Region) Size() uint64 { return r.size }

// End returns the first address past the region.
func (r *Region) End() uint64 { return r.base + r.size }

// Kind returns the region kind.
func (r *Region) Kind() Kind { return r.kind }

// Clock returns the name of the clock domain bound to the region, or the
// empty string.
func (r *Region) Clock() string { return r.clock }

// Tags returns the region's tool directives.
func (r *Region) Tags() Tags { return r.tags }

// Peripheral returns the bus interface bound to the region, or nil.
func (r *Region) Peripheral() Peripheral { return r.periph }

// contains reports whether addr falls within [base, base+size).
func (r *Region) contains(addr uint64) bool {
	return r.base <= addr && addr-r.base < r.size
}

// overlaps reports whether the two half-open ranges intersect.
func (r *Region) overlaps(base, size uint64) bool {
	return r.base < base+size && base < r.base+r.size
}

// An AddrSpace is the address-space composer: the registry of all memory
// regions decoded on a SoC bus. The zero value is not usable, use
// NewAddrSpace.
//
type AddrSpace struct {
	regions map[string]*Region
	frozen  bool
}

// NewAddrSpace returns an empty address space.
//
func NewAddrSpace() *AddrSpace {
	return &AddrSpace{regions: make(map[string]*Region)}
}

// Register adds the region described by spec to the address space.
//
// It fails with a *DuplicateError if the region name is already taken and
// with an *OverlapError, naming both regions, if the new range intersects
// any registered one. Insertion order does not affect overlap detection.
//
func (a *AddrSpace) Register(spec RegionSpec) (*Region, error) {
	if a.frozen {
		return nil, errors.Errorf("cannot register region %q: address space is frozen", spec.Name)
	}
	if spec.Name == "" {
		return nil, errors.New("empty memory region name")
	}
	if spec.Size == 0 {
		return nil, errors.Errorf("memory region %q has zero size", spec.Name)
	}
	if spec.Base > math.MaxUint64-spec.Size {
		return nil, errors.Errorf("memory region %q wraps the address space", spec.Name)
	}
	if _, ok := a.regions[spec.Name]; ok {
		return nil, &DuplicateError{Kind: "memory region", Name: spec.Name}
	}
	for _, r := range a.regions {
		if r.overlaps(spec.Base, spec.Size) {
			return nil, &OverlapError{Existing: r.name, New: spec.Name}
		}
	}
	r := &Region{
		name:   spec.Name,
		base:   spec.Base,
		size:   spec.Size,
		kind:   spec.Kind,
		clock:  spec.Clock,
		tags:   newTags(spec.Tags),
		periph: spec.Peripheral,
	}
	a.regions[spec.Name] = r
	return r, nil
}

// Region returns the region with the given name.
//
func (a *AddrSpace) Region(name string) (*Region, bool) {
	r, ok := a.regions[name]
	return r, ok
}

// Decode returns the region owning the given address. The boolean is false
// when the address is not mapped, which is a normal query outcome for
// addresses outside any peripheral. Containment is half-open: a region's
// base address decodes to the region, base+size does not.
//
func (a *AddrSpace) Decode(addr uint64) (*Region, bool) {
	for _, r := range a.regions {
		if r.contains(addr) {
			return r, true
		}
	}
	return nil, false
}

// Layout returns all registered regions sorted by base address, regardless
// of registration order. The result is the memory map consumed by
// documentation and linker-script generators.
//
func (a *AddrSpace) Layout() []*Region {
	rs := make([]*Region, 0, len(a.regions))
	for _, r := range a.regions {
		rs = append(rs, r)
	}
	sort.Slice(rs, func(i, j int) bool { return rs[i].base < rs[j].base })
	return rs
}

func (a *AddrSpace) freeze() { a.frozen = true }

func (a *AddrSpace) clone() *AddrSpace {
	c := NewAddrSpace()
	for n, r := range a.regions {
		cr := *r
		cr.tags = r.tags.clone()
		c.regions[n] = &cr
	}
	return c
}
