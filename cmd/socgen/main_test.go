package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRootCmd(t *testing.T) {
	board := filepath.Join("..", "..", "board", "testdata", "c10lprefkit.yaml")

	td := []struct {
		name string
		args []string
		sdc  string // expected artifact names in the output dir
		mmap string
	}{
		{"base", nil, "c10lprefkit.sdc", "c10lprefkit.map"},
		{"ethernet", []string{"--with-ethernet"}, "c10lprefkit-eth.sdc", "c10lprefkit-eth.map"},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			out := t.TempDir()
			cmd := newRootCmd()
			cmd.SetArgs(append([]string{"--board", board, "--out", out}, d.args...))
			if err := cmd.Execute(); err != nil {
				t.Fatal(err)
			}
			sdc, err := os.ReadFile(filepath.Join(out, d.sdc))
			if err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(string(sdc), "create_clock -name sys -period 20.000") {
				t.Errorf("missing sys clock in %s:\n%s", d.sdc, sdc)
			}
			mmap, err := os.ReadFile(filepath.Join(out, d.mmap))
			if err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(string(mmap), "hyperram") {
				t.Errorf("missing hyperram in %s:\n%s", d.mmap, mmap)
			}
		})
	}
}

func TestRootCmd_missingBoard(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--board", filepath.Join(t.TempDir(), "nx.yaml")})
	if err := cmd.Execute(); err == nil {
		t.Error("missing board file did not fail")
	}
}
