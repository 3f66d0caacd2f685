package socgen

import (
	"strconv"
)

// A DuplicateError reports an attempt to redefine an existing clock domain
// or memory region. Configurations only ever grow by adding new names;
// silently replacing an entry would let an extension shadow its base.
//
type DuplicateError struct {
	Kind string // "clock domain" or "memory region"
	Name string
}

func (e *DuplicateError) Error() string {
	return e.Kind + " " + strconv.Quote(e.Name) + " already defined"
}

// A ResetSourceError reports an invalid reset source in a domain definition:
// a missing source for a domain that needs one, a source naming an undefined
// domain, or a domain sourcing its own reset.
//
type ResetSourceError struct {
	Domain string
	Source string
	Reason string
}

func (e *ResetSourceError) Error() string {
	return "domain " + strconv.Quote(e.Domain) + ": invalid reset source " +
		strconv.Quote(e.Source) + ": " + e.Reason
}

// A RatioError reports a frequency derivation that cannot produce an exact
// integer result.
//
type RatioError struct {
	Ref      Freq
	Mul, Div int
	Reason   string
}

func (e *RatioError) Error() string {
	return "invalid ratio " + e.Ref.String() + " * " + strconv.Itoa(e.Mul) +
		"/" + strconv.Itoa(e.Div) + ": " + e.Reason
}

// An OverlapError reports two memory regions with intersecting address
// ranges. Existing names the region already registered, New the rejected
// one. Overlaps are caught at registration time: on real hardware a silent
// overlap aliases two peripherals onto the same addresses.
//
type OverlapError struct {
	Existing string
	New      string
}

func (e *OverlapError) Error() string {
	return "memory region " + strconv.Quote(e.New) + " overlaps " +
		strconv.Quote(e.Existing)
}
