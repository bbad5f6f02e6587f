package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mhr3/bracelet/bitseq"
	"github.com/mhr3/bracelet/deck"
)

var (
	decksSkip     int
	decksAll      bool
	decksCut      bool
	decksEightMin bool
	decksInput    bool
	decksLayout   string
)

var decksCmd = &cobra.Command{
	Use:   "decks <sequence-file>",
	Short: "Realize candidate bundles into scored deck orders",
	Long: `Reads candidate tuples produced by "bracelet search", realizes each
into a concrete deck order and prints the best-scoring arrangement: the
supported-predicate count weighted above the value spread.

Every tuple leaves 32 cards ambiguous between two values; all 65536
settlements are tried. With --all the strange value subsets (primes,
Fibonacci, Lucas and friends) are tested as well.

The umake layout reads the 7K/8K/4T value axes as-is; the uplus2 layout
reinterprets the same file labels as the 92/T2/6Q axes, shifting every
value range up by two.`,
	Args: cobra.ExactArgs(1),
	RunE: runDecks,
}

func init() {
	f := decksCmd.Flags()
	f.IntVarP(&decksSkip, "skip", "s", 0, "skip this many candidate records")
	f.BoolVarP(&decksAll, "all", "a", false, "also test the special value subsets")
	f.BoolVarP(&decksCut, "cut", "c", false, "cut the nine of diamonds to the bottom for display")
	f.BoolVarP(&decksEightMin, "eight", "e", false, "only display decks supporting at least 8 sequences")
	f.BoolVarP(&decksInput, "input", "i", false, "display the input sequences, rotated to match the deck")
	f.StringVarP(&decksLayout, "layout", "l", "umake", "value decode layout (umake or uplus2)")
}

func runDecks(cmd *cobra.Command, args []string) error {
	layout, ok := deck.Layouts[decksLayout]
	if !ok {
		return fmt.Errorf("unknown layout %q", decksLayout)
	}

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	r := deck.NewReader(f, logger)
	groups := 0
	for {
		rec, err := r.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if errors.Is(err, deck.ErrMalformedRecord) {
			logger.Warn("skipping malformed record", zap.Error(err))
			continue
		}
		if err != nil {
			return err
		}

		groups++
		if groups&0xff == 0 {
			logger.Debug("records processed", zap.Int("count", groups))
		}
		if groups <= decksSkip {
			continue
		}

		res, err := deck.FindBest(rec, layout, decksAll, logger)
		switch {
		case errors.Is(err, deck.ErrIllegalCode), errors.Is(err, deck.ErrAmbiguityLayout):
			logger.Warn("skipping undecodable record", zap.Error(err))
			continue
		case err != nil:
			// A sequence failing bracelet validation means the file is
			// corrupt; stop.
			return err
		}

		if decksEightMin && res.MajorCount() < 8 {
			continue
		}
		printResult(rec, res, layout)
	}
}

func printResult(rec deck.Record, res *deck.Result, layout *deck.Layout) {
	fmt.Printf("Major sequence count = %d\n", res.MajorCount())
	fmt.Printf("Deck spread score = %d\n\n", 65535-res.SpreadScore())

	top := 0
	if decksCut {
		top = res.Deck.TopCardIndex()
	}

	if decksInput {
		for _, axis := range []struct {
			name string
			seq  bitseq.Seq
		}{
			{layout.AxisNames[2], rec.Z},
			{layout.AxisNames[0], rec.X},
			{layout.AxisNames[1], rec.Y},
			{"ODD", rec.Odd},
			{"RED", rec.Red},
			{"CD", rec.CD},
			{"HC", rec.HC},
		} {
			fmt.Printf("%3s sequence:  %s\n", axis.name, bitseq.FormatFrom(axis.seq, top))
		}
		fmt.Println()
	}

	for _, name := range res.Bits.Names() {
		fmt.Printf("%3s sequence is supported.\n", name)
	}
	fmt.Println()

	fmt.Print(res.Deck.StringFrom(top))
}
