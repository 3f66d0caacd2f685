// Command socgen builds the clock and memory composition artifacts for a
// board: a timing constraints file and a memory map.
//
//	socgen --board boards/c10lprefkit.yaml --out build [--with-ethernet]
//
package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/db47h/socgen"
	"github.com/db47h/socgen/board"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		boardPath    string
		outDir       string
		withEthernet bool
		debug        bool
	)

	cmd := &cobra.Command{
		Use:           "socgen",
		Short:         "socgen — SoC clock/memory composition generator",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			level := slog.LevelInfo
			if debug {
				level = slog.LevelDebug
			}
			log := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

			soc, err := build(boardPath, withEthernet)
			if err != nil {
				log.Error("build failed", "board", boardPath, "err", err.Error())
				return err
			}
			log.Info("configuration built", "soc", soc.Name(),
				"domains", len(soc.Clocks().Domains()),
				"regions", len(soc.Mem().Layout()))

			if err := writeArtifacts(outDir, soc); err != nil {
				log.Error("export failed", "soc", soc.Name(), "err", err.Error())
				return err
			}
			log.Debug("artifacts written", "dir", outDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&boardPath, "board", "", "board description file")
	cmd.Flags().StringVar(&outDir, "out", "build", "output directory")
	cmd.Flags().BoolVar(&withEthernet, "with-ethernet", false, "enable Ethernet support")
	cmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")
	_ = cmd.MarkFlagRequired("board")
	return cmd
}

func build(path string, withEthernet bool) (*socgen.SoC, error) {
	d, err := board.Load(path)
	if err != nil {
		return nil, err
	}
	if withEthernet {
		return board.BuildEthernet(d)
	}
	return board.BuildBase(d)
}

func writeArtifacts(dir string, soc *socgen.SoC) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "create output directory")
	}
	if err := writeFile(filepath.Join(dir, soc.Name()+".sdc"), func(f *os.File) error {
		return socgen.WriteSDC(f, soc.Clocks())
	}); err != nil {
		return err
	}
	return writeFile(filepath.Join(dir, soc.Name()+".map"), func(f *os.File) error {
		return socgen.WriteMemoryMap(f, soc.Mem())
	})
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
