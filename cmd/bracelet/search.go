package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/mhr3/bracelet/bitseq"
	"github.com/mhr3/bracelet/dbngen"
	"github.com/mhr3/bracelet/search"
	"github.com/mhr3/bracelet/seqcache"
)

const dbnPathEnv = "DBNPATH"

var (
	searchOpts    search.Options
	searchProfile string
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search cached primitives for candidate axis bundles",
	Long: `Combines cached primitive sequences into candidate bundles: an HD/CD
suit pair splitting the deck into four 13-card suits with a bracelet-valid
HC derivative, an odd axis splitting every suit 7/6, and a 7K axis whose
joint histogram with the other axes decodes to a legal deck. With --c8k
and --c4t the secondary value axes are synthesized before a bundle is
emitted.

Cache files are resolved under the directory named by the DBNPATH
environment variable: dbn_52_26[_short].bin for the suit axes and
dbn_52_28[_short].bin for the value axes. Candidate tuples are written to
stdout in the text format consumed by "bracelet decks".

The skip counts replay a previous run's position; each applies to the
first pass of its loop only. A YAML profile given with --profile is
loaded first, explicit flags override it.`,
	RunE: runSearch,
}

func init() {
	f := searchCmd.Flags()
	f.IntVarP(&searchOpts.SkipRed, "red", "r", 0, "skip this many HD (red) sequences")
	f.IntVarP(&searchOpts.SkipCD, "cd", "c", 0, "skip this many CD sequences")
	f.IntVarP(&searchOpts.SkipOdd, "odd", "o", 0, "skip this many odd sequences")
	f.IntVarP(&searchOpts.Skip7K, "c7k", "k", 0, "skip this many 7K sequences")
	f.BoolVarP(&searchOpts.StrictSuits, "suitshort", "s", false, "use the strict suit enumeration (no uniform windows)")
	f.BoolVarP(&searchOpts.StrictValues, "valshort", "n", false, "use the strict value enumeration (no uniform windows)")
	f.BoolVarP(&searchOpts.With8K, "c8k", "e", false, "synthesize an 8K axis for every bundle")
	f.BoolVarP(&searchOpts.SevensApart, "sep", "p", false, "require the four sevens at least a window apart (with --c8k)")
	f.BoolVarP(&searchOpts.With4T, "c4t", "t", false, "synthesize a 4T axis for every bundle")
	f.StringVar(&searchProfile, "profile", "", "YAML search profile to load before flags")
}

func runSearch(cmd *cobra.Command, args []string) error {
	if searchProfile != "" {
		if err := loadProfile(cmd, searchProfile); err != nil {
			return err
		}
	}
	for _, s := range []struct {
		name  string
		count int
	}{
		{"red", searchOpts.SkipRed}, {"cd", searchOpts.SkipCD},
		{"odd", searchOpts.SkipOdd}, {"c7k", searchOpts.Skip7K},
	} {
		if s.count < 0 {
			return fmt.Errorf("the %s start count must not be negative", s.name)
		}
	}

	dir := os.Getenv(dbnPathEnv)
	if dir == "" {
		return fmt.Errorf("environment variable %q does not name the sequence cache directory", dbnPathEnv)
	}

	suitPath := filepath.Join(dir, dbngen.FileName(bitseq.Length, 26, searchOpts.StrictSuits))
	valuePath := filepath.Join(dir, dbngen.FileName(bitseq.Length, 28, searchOpts.StrictValues))

	logger.Info("search starting",
		zap.String("suit_file", suitPath),
		zap.String("value_file", valuePath),
		zap.Any("options", searchOpts))

	cache := seqcache.New()
	red, err := openCached(cache, suitPath)
	if err != nil {
		return err
	}
	defer red.Close()
	cd, err := openCached(cache, suitPath)
	if err != nil {
		return err
	}
	defer cd.Close()
	odd, err := openCached(cache, valuePath)
	if err != nil {
		return err
	}
	defer odd.Close()
	c7k, err := openCached(cache, valuePath)
	if err != nil {
		return err
	}
	defer c7k.Close()

	s := search.New(searchOpts, red, cd, odd, c7k, logger)
	return s.Run(search.NewTextSink(os.Stdout))
}

// openCached opens a handle on path, reading the file only on the first
// open; sibling handles share the loaded array.
func openCached(cache *seqcache.Cache, path string) (*seqcache.Handle, error) {
	if cache.Len(path) > 0 {
		return cache.Open(path, nil)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return cache.Open(path, f)
}

// loadProfile fills searchOpts from a YAML file, then re-applies any flag
// the user set explicitly on the command line.
func loadProfile(cmd *cobra.Command, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read profile: %w", err)
	}

	var fromFile search.Options
	if err := yaml.Unmarshal(data, &fromFile); err != nil {
		return fmt.Errorf("parse profile %s: %w", path, err)
	}

	flagged := searchOpts
	searchOpts = fromFile
	for flag, apply := range map[string]func(){
		"red":       func() { searchOpts.SkipRed = flagged.SkipRed },
		"cd":        func() { searchOpts.SkipCD = flagged.SkipCD },
		"odd":       func() { searchOpts.SkipOdd = flagged.SkipOdd },
		"c7k":       func() { searchOpts.Skip7K = flagged.Skip7K },
		"suitshort": func() { searchOpts.StrictSuits = flagged.StrictSuits },
		"valshort":  func() { searchOpts.StrictValues = flagged.StrictValues },
		"c8k":       func() { searchOpts.With8K = flagged.With8K },
		"sep":       func() { searchOpts.SevensApart = flagged.SevensApart },
		"c4t":       func() { searchOpts.With4T = flagged.With4T },
	} {
		if cmd.Flags().Changed(flag) {
			apply()
		}
	}
	return nil
}
