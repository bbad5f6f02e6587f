package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mhr3/bracelet/deck"
)

var verifyAll bool

var verifyCmd = &cobra.Command{
	Use:   "verify [deck-file]",
	Short: "Test an existing deck order for bracelet codes",
	Long: `Reads a deck listing (card names like "QH, 7C, 10S" separated by
commas or whitespace) from the given file or from stdin and reports every
predicate in the catalog whose indicator sequence is bracelet-valid on
that order, plus the base-4 suitability code formed by runs of three
consecutive suits.

Nothing is assumed about how the deck was built; the suit axes are tested
from the actual cards like any other predicate.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().BoolVarP(&verifyAll, "all", "a", false, "also test the special value subsets")
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	var in io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	text, err := io.ReadAll(in)
	if err != nil {
		return err
	}

	d, err := deck.ParseStack(string(text))
	if err != nil {
		return err
	}

	bits := deck.TestBracelets(&d, verifyAll)
	for _, name := range bits.Names() {
		fmt.Printf("%s sequence found\n", name)
	}
	if deck.Suitable(&d) {
		fmt.Println("Suitability supported")
	}
	return nil
}
