package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mhr3/bracelet/dbngen"
)

var (
	genShort bool
	genDir   string
)

var genCmd = &cobra.Command{
	Use:   "gen <bit-count> <one-count>",
	Short: "Enumerate bracelet sequences into a cache file",
	Long: `Enumerates every cyclic sequence of the given length whose sliding
windows are all distinct and writes them to dbn_<bits>_<ones>[_short].bin
as a little-endian 64-bit stream terminated by a zero word.

A one-count of zero lifts the population constraint. With --short, no
window may be all zeros or all ones. The deck search reads dbn_52_26 for
the suit axes and dbn_52_28 for the value axes.`,
	Args: cobra.ExactArgs(2),
	RunE: runGen,
}

func init() {
	genCmd.Flags().BoolVarP(&genShort, "short", "s", false, "reject all-zero and all-one windows")
	genCmd.Flags().StringVarP(&genDir, "dir", "d", ".", "output directory")
}

func runGen(cmd *cobra.Command, args []string) error {
	bitCount, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("bit-count %q is not a number", args[0])
	}
	oneCount, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("one-count %q is not a number", args[1])
	}

	g, err := dbngen.New(bitCount, oneCount, genShort)
	if err != nil {
		return err
	}

	path := filepath.Join(genDir, dbngen.FileName(bitCount, oneCount, genShort))
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	start := time.Now()
	n, err := dbngen.WriteAll(f, g)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	logger.Info("enumeration complete",
		zap.String("file", path),
		zap.Int("sequences", n),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}
