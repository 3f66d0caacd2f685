package soctest_test

import (
	"path/filepath"
	"testing"

	"github.com/db47h/socgen/soctest"
)

// Smoke test: every bundled board description must build all of its
// variants and export non-empty artifacts.
func TestBoards(t *testing.T) {
	boards, err := filepath.Glob(filepath.Join("..", "board", "testdata", "*.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if len(boards) == 0 {
		t.Fatal("no board descriptions found")
	}
	for _, path := range boards {
		path := path
		t.Run(filepath.Base(path), func(t *testing.T) {
			socs := soctest.CheckBoard(t, path)
			if len(socs) == 0 {
				t.Fatal("no configurations built")
			}
		})
	}
}
