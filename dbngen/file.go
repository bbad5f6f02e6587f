package dbngen

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
)

// FileName returns the canonical cache-file name for an enumeration:
// dbn_<length>_<ones>[_short].bin, "_short" marking the strict variant.
func FileName(length, ones int, strict bool) string {
	if strict {
		return fmt.Sprintf("dbn_%d_%d_short.bin", length, ones)
	}
	return fmt.Sprintf("dbn_%d_%d.bin", length, ones)
}

// WriteAll drains the generator into w as a little-endian uint64 stream
// terminated by a zero word, the on-disk format replayed by the sequence
// cache. It returns the number of sequences written, the terminator
// excluded.
func WriteAll(w io.Writer, g *Generator) (int, error) {
	bw := bufio.NewWriter(w)

	var buf [8]byte
	n := 0
	for {
		v := g.Next()
		binary.LittleEndian.PutUint64(buf[:], v)
		if _, err := bw.Write(buf[:]); err != nil {
			return n, err
		}
		if v == 0 {
			break
		}
		n++
	}
	return n, bw.Flush()
}
