package deck

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	segascii "github.com/segmentio/asm/ascii"
	"go.uber.org/zap"

	"github.com/mhr3/bracelet/bitseq"
)

// Record is one candidate tuple read back from the search output: the
// three suit sequences, the odd axis and the three value axes under their
// file labels (7K, 8K, 4T).
type Record struct {
	Red bitseq.Seq
	CD  bitseq.Seq
	HC  bitseq.Seq
	Odd bitseq.Seq
	X   bitseq.Seq // 7K label
	Y   bitseq.Seq // 8K label
	Z   bitseq.Seq // 4T label
}

// ErrMalformedRecord marks a candidate block that could not be parsed;
// the record is skippable, the reader stays usable.
var ErrMalformedRecord = errors.New("deck: malformed record")

// Reader parses the line-oriented candidate files written by the search.
// Lines containing "Found" are progress markers and are discarded; lines
// of the form "<LABEL>:  <52 binary digits>" accumulate into the current
// block; a line without a colon ends the block and yields a record.
type Reader struct {
	s    *bufio.Scanner
	log  *zap.Logger
	line int
}

// NewReader returns a reader over r. A nil logger disables logging.
func NewReader(r io.Reader, log *zap.Logger) *Reader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Reader{s: bufio.NewScanner(r), log: log}
}

// Next returns the next candidate record. It returns io.EOF when the
// input is exhausted and an error wrapping ErrMalformedRecord for a
// skippable bad block.
func (r *Reader) Next() (Record, error) {
	fields := make(map[string]string)

	flush := func() (Record, error) {
		rec, err := buildRecord(fields)
		if err != nil {
			return Record{}, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
		}
		return rec, nil
	}

	for r.s.Scan() {
		r.line++
		line := r.s.Text()

		if strings.Contains(line, "Found") {
			continue
		}

		colon := strings.IndexByte(line, ':')
		if colon < 0 {
			// Block separator.
			if len(fields) == 0 {
				continue
			}
			return flush()
		}

		if !segascii.ValidString(line) {
			return Record{}, fmt.Errorf("%w: non-ASCII input at line %d", ErrMalformedRecord, r.line)
		}

		// The label is the leading alphanumeric run: " 7K sequence:" -> "7K".
		head := strings.TrimLeft(line[:colon], " ")
		end := 0
		for end < len(head) && isAlnum(head[end]) {
			end++
		}
		label := head[:end]
		value := strings.TrimLeft(line[colon+1:], " ")
		switch label {
		case "RED", "CD", "HC", "ODD", "7K", "8K", "4T":
			fields[label] = value
		default:
			r.log.Warn("unknown sequence label", zap.String("label", label), zap.Int("line", r.line))
		}
	}
	if err := r.s.Err(); err != nil {
		return Record{}, err
	}
	if len(fields) > 0 {
		return flush()
	}
	return Record{}, io.EOF
}

func isAlnum(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z'
}

func buildRecord(fields map[string]string) (Record, error) {
	var rec Record
	for _, f := range []struct {
		label string
		dst   *bitseq.Seq
	}{
		{"RED", &rec.Red},
		{"CD", &rec.CD},
		{"HC", &rec.HC},
		{"ODD", &rec.Odd},
		{"7K", &rec.X},
		{"8K", &rec.Y},
		{"4T", &rec.Z},
	} {
		text, ok := fields[f.label]
		if !ok {
			return Record{}, fmt.Errorf("missing %s sequence", f.label)
		}
		s, err := bitseq.Parse(text)
		if err != nil {
			return Record{}, fmt.Errorf("%s sequence: %v", f.label, err)
		}
		*f.dst = s
	}
	return rec, nil
}
