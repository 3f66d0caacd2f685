package socgen

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/pkg/errors"
)

// WriteSDC writes the graph's timing constraints to w in SDC syntax:
// one create_clock per period constraint and a pair of set_false_path
// directives (one per direction) per false-path exemption. Output order
// follows Export and is therefore stable across builds.
//
func WriteSDC(w io.Writer, g *Graph) error {
	for _, c := range g.Export() {
		var err error
		switch c.Kind {
		case PeriodConstraint:
			_, err = fmt.Fprintf(w, "create_clock -name %s -period %s [get_clocks %s]\n",
				c.Domain, c.Period.Ns(), c.Domain)
		case FalsePathConstraint:
			_, err = fmt.Fprintf(w,
				"set_false_path -from [get_clocks %s] -to [get_clocks %s]\nset_false_path -from [get_clocks %s] -to [get_clocks %s]\n",
				c.From, c.To, c.To, c.From)
		default:
			err = errors.Errorf("unknown constraint kind %d", c.Kind)
		}
		if err != nil {
			return errors.Wrap(err, "write constraints")
		}
	}
	return nil
}

// WriteMemoryMap writes the address space layout to w as an aligned text
// table, one region per line, sorted by base address.
//
func WriteMemoryMap(w io.Writer, a *AddrSpace) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "name\tbase\tend\tsize\tkind")
	for _, r := range a.Layout() {
		fmt.Fprintf(tw, "%s\t0x%08x\t0x%08x\t0x%x\t%s\n",
			r.Name(), r.Base(), r.End(), r.Size(), r.Kind())
	}
	return errors.Wrap(tw.Flush(), "write memory map")
}
