// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package soctest provides utility functions for smoke-testing board
// configurations: every variant a board description supports must build
// and export usable artifacts.
//
package soctest

import (
	"bytes"
	"testing"

	"github.com/db47h/socgen"
	"github.com/db47h/socgen/board"
)

// CheckBoard loads the board description at path and builds every
// configuration variant it supports, failing t on any build error or empty
// export. It returns the built configurations, base first.
//
func CheckBoard(t *testing.T, path string) []*socgen.SoC {
	t.Helper()
	d, err := board.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	base, err := board.BuildBase(d)
	if err != nil {
		t.Fatalf("%s: base: %v", d.Name, err)
	}
	socs := []*socgen.SoC{base}
	checkSoC(t, base)
	if d.Ethernet != nil {
		eth, err := board.ExtendEthernet(base, d)
		if err != nil {
			t.Fatalf("%s: ethernet: %v", d.Name, err)
		}
		socs = append(socs, eth)
		checkSoC(t, eth)
	}
	return socs
}

func checkSoC(t *testing.T, soc *socgen.SoC) {
	t.Helper()
	if !soc.Frozen() {
		t.Errorf("%s: configuration not frozen after build", soc.Name())
	}
	var sdc, mmap bytes.Buffer
	if err := socgen.WriteSDC(&sdc, soc.Clocks()); err != nil {
		t.Fatalf("%s: %v", soc.Name(), err)
	}
	if sdc.Len() == 0 {
		t.Errorf("%s: empty constraints export", soc.Name())
	}
	if err := socgen.WriteMemoryMap(&mmap, soc.Mem()); err != nil {
		t.Fatalf("%s: %v", soc.Name(), err)
	}
	if len(soc.Mem().Layout()) == 0 {
		t.Errorf("%s: empty memory layout", soc.Name())
	}
	// layout must be strictly increasing and overlap free
	var end uint64
	for _, r := range soc.Mem().Layout() {
		if r.Base() < end {
			t.Errorf("%s: region %s starts at 0x%x before previous region end 0x%x",
				soc.Name(), r.Name(), r.Base(), end)
		}
		end = r.End()
	}
}
