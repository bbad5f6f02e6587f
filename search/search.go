// Package search locates compound sequence bundles: tuples of bracelet
// sequences that jointly encode a legal 52-card deck. Suit-axis candidates
// (population 26) and value-axis candidates (population 28) are drawn from
// replayed enumeration caches and filtered by overlap, per-suit density and
// joint-histogram constraints; accepted bundles are handed to a Sink,
// optionally after the secondary 8K and 4T axes have been synthesized.
package search

import (
	"go.uber.org/zap"

	"github.com/mhr3/bracelet/bitseq"
	"github.com/mhr3/bracelet/seqcache"
)

// Options configures one search run. The skip counts discard that many
// candidates from a generator before the search starts; each applies once,
// to the first pass of its own loop (inner loops restart from zero after
// that), so interrupted runs can resume at a known point. The struct round-trips through YAML profile files.
type Options struct {
	SkipRed int `yaml:"skip_red"`
	SkipCD  int `yaml:"skip_cd"`
	SkipOdd int `yaml:"skip_odd"`
	Skip7K  int `yaml:"skip_7k"`

	// StrictSuits and StrictValues select the "_short" enumeration files
	// (no uniform windows). They are consumed by the driver that opens the
	// cache files, not by the search itself.
	StrictSuits  bool `yaml:"strict_suits"`
	StrictValues bool `yaml:"strict_values"`

	With8K      bool `yaml:"with_8k"`
	SevensApart bool `yaml:"sevens_apart"`
	With4T      bool `yaml:"with_4t"`
}

// Bundle is an accepted axis tuple. C8K and C4T are only meaningful when
// their Has flags are set.
type Bundle struct {
	HD  bitseq.Seq
	CD  bitseq.Seq
	HC  bitseq.Seq
	Odd bitseq.Seq
	C7K bitseq.Seq

	C8K   bitseq.Seq
	Has8K bool
	C4T   bitseq.Seq
	Has4T bool
}

// Sink receives search progress. The three calls mirror the stable text
// contract consumed by the deck realizer: SuitPair and OddCandidate mark
// progress lines, Bundle delivers a complete candidate tuple.
type Sink interface {
	SuitPair(hd, cd, hc bitseq.Seq) error
	OddCandidate(odd bitseq.Seq) error
	Bundle(Bundle) error
}

// Search drives the nested candidate loops over four cache handles: two
// cursors on the suit enumeration (HD, CD) and two on the value
// enumeration (ODD, 7K).
type Search struct {
	opt Options
	red *seqcache.Handle
	cd  *seqcache.Handle
	odd *seqcache.Handle
	c7k *seqcache.Handle
	log *zap.Logger
}

// New returns a search over the four handles. A nil logger disables
// logging.
func New(opt Options, red, cd, odd, c7k *seqcache.Handle, log *zap.Logger) *Search {
	if log == nil {
		log = zap.NewNop()
	}
	return &Search{opt: opt, red: red, cd: cd, odd: odd, c7k: c7k, log: log}
}

// Run walks the candidate space in the canonical deterministic order and
// reports every accepted bundle to sink. It returns the first sink error,
// or nil once the HD stream is exhausted.
func (s *Search) Run(sink Sink) error {
	// The skip counts fire once per run: inner loops restart from zero
	// after their first pass.
	skipRed, skipCD, skipOdd, skip7K := s.opt.SkipRed, s.opt.SkipCD, s.opt.SkipOdd, s.opt.Skip7K

	s.red.Skip(skipRed)

	for {
		st, ok := s.nextRed()
		if !ok {
			s.log.Info("processed all HD sequences")
			return nil
		}

		s.cd.Reset()
		s.cd.Skip(skipCD)
		skipCD = 0

		for {
			cd := bitseq.Seq(s.cd.Next())
			if cd == 0 {
				break
			}
			if !st.splitSuits(cd) {
				continue
			}
			if !bitseq.Valid(st.hc) {
				continue
			}
			s.log.Debug("suit pair located",
				zap.String("hd", st.red.String()),
				zap.String("cd", st.cd.String()))
			if err := sink.SuitPair(st.red, st.cd, st.hc); err != nil {
				return err
			}

			s.odd.Reset()
			s.odd.Skip(skipOdd)
			skipOdd = 0

			for {
				odd := bitseq.Seq(s.odd.Next())
				if odd == 0 {
					break
				}
				if !st.oddPartitions(odd) {
					continue
				}
				st.odd = odd
				if err := sink.OddCandidate(odd); err != nil {
					return err
				}

				s.c7k.Reset()
				s.c7k.Skip(skip7K)
				skip7K = 0

				for {
					c7k := bitseq.Seq(s.c7k.Next())
					if c7k == 0 {
						break
					}
					if !st.sevenKOverlaps(c7k) {
						continue
					}
					st.c7k = c7k
					if !st.deckHistogram() {
						continue
					}

					b := Bundle{HD: st.red, CD: st.cd, HC: st.hc, Odd: st.odd, C7K: st.c7k}
					if s.opt.With8K {
						if !st.solve8K(s.opt.SevensApart) {
							continue
						}
						b.C8K, b.Has8K = st.c8k, true
					}
					if s.opt.With4T {
						if !st.solve4T() {
							continue
						}
						b.C4T, b.Has4T = st.c4t, true
					}

					s.log.Info("bundle found",
						zap.String("hd", b.HD.String()),
						zap.String("odd", b.Odd.String()),
						zap.String("c7k", b.C7K.String()))
					if err := sink.Bundle(b); err != nil {
						return err
					}
				}
			}
		}
	}
}

// nextRed draws HD candidates, discarding any with a uniform 6-bit window;
// such a sequence cannot pair with anything downstream.
func (s *Search) nextRed() (*state, bool) {
	for {
		red := bitseq.Seq(s.red.Next())
		if red == 0 {
			return nil, false
		}
		if bitseq.HasLongRun(red) {
			continue
		}
		return &state{red: red}, true
	}
}
