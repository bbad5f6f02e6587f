package search

import (
	"fmt"
	"io"

	"github.com/mhr3/bracelet/bitseq"
)

// TextSink writes candidate tuples in the line format consumed by the deck
// realizer: progress marker lines, one labelled 52-digit line per axis,
// and a blank line terminating each bundle.
type TextSink struct {
	w io.Writer
}

// NewTextSink returns a sink writing to w.
func NewTextSink(w io.Writer) *TextSink {
	return &TextSink{w: w}
}

func (t *TextSink) SuitPair(hd, cd, hc bitseq.Seq) error {
	_, err := fmt.Fprintf(t.w, "Found suit sequences.\n")
	return err
}

func (t *TextSink) OddCandidate(odd bitseq.Seq) error {
	_, err := fmt.Fprintf(t.w, "Found odd sequence candidate.\n")
	return err
}

func (t *TextSink) Bundle(b Bundle) error {
	if err := t.line(" 7K", b.C7K); err != nil {
		return err
	}
	if b.Has8K {
		if err := t.line(" 8K", b.C8K); err != nil {
			return err
		}
	}
	if b.Has4T {
		if err := t.line(" 4T", b.C4T); err != nil {
			return err
		}
	}
	if err := t.line("ODD", b.Odd); err != nil {
		return err
	}
	if err := t.line("RED", b.HD); err != nil {
		return err
	}
	if err := t.line(" CD", b.CD); err != nil {
		return err
	}
	if err := t.line(" HC", b.HC); err != nil {
		return err
	}
	_, err := fmt.Fprintln(t.w)
	return err
}

func (t *TextSink) line(name string, s bitseq.Seq) error {
	_, err := fmt.Fprintf(t.w, "%s sequence:  %s\n", name, bitseq.Format(s))
	return err
}
