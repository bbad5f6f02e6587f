// Package seqcache replays enumerated sequence files. A file is read once
// into memory and shared by every handle opened under the same name; the
// compound search opens the suit file twice and the value file twice and
// walks the four cursors independently.
//
// The cache is a plain value owned by whoever drives the search. Readers
// never mutate the shared arrays, so after loading, handles may be walked
// from concurrent goroutines as long as each handle stays on one.
package seqcache

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Cache maps names to loaded sequence arrays with reference counts.
type Cache struct {
	entries map[string]*entry
}

type entry struct {
	values []uint64
	refs   int
}

// Handle is one cursor over a shared sequence array.
type Handle struct {
	cache *Cache
	name  string
	e     *entry
	pos   int
}

// New returns an empty cache.
func New() *Cache {
	return &Cache{entries: make(map[string]*entry)}
}

// Open returns a handle on the sequence stream registered under name. The
// first open for a name loads src completely; subsequent opens share the
// loaded array and may pass a nil src. The stream is a little-endian
// uint64 sequence terminated by a zero word; everything from the first
// zero word on is ignored.
func (c *Cache) Open(name string, src io.Reader) (*Handle, error) {
	e, ok := c.entries[name]
	if !ok {
		if src == nil {
			return nil, fmt.Errorf("seqcache: %s not loaded and no source given", name)
		}
		values, err := load(src)
		if err != nil {
			return nil, fmt.Errorf("seqcache: load %s: %w", name, err)
		}
		e = &entry{values: values}
		c.entries[name] = e
	}
	e.refs++
	return &Handle{cache: c, name: name, e: e}, nil
}

// Len returns the number of sequences loaded under name.
func (c *Cache) Len(name string) int {
	if e, ok := c.entries[name]; ok {
		return len(e.values)
	}
	return 0
}

func load(src io.Reader) ([]uint64, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}
	if len(data)%8 != 0 {
		return nil, fmt.Errorf("truncated stream: %d trailing bytes", len(data)%8)
	}

	values := make([]uint64, 0, len(data)/8)
	for off := 0; off < len(data); off += 8 {
		v := binary.LittleEndian.Uint64(data[off:])
		if v == 0 {
			return values, nil
		}
		values = append(values, v)
	}
	return values, nil
}

// Next returns the sequence under the cursor and advances it, or 0 once
// the stream is exhausted.
func (h *Handle) Next() uint64 {
	if h.e == nil || h.pos >= len(h.e.values) {
		return 0
	}
	v := h.e.values[h.pos]
	h.pos++
	return v
}

// Reset rewinds this handle without affecting its siblings.
func (h *Handle) Reset() {
	h.pos = 0
}

// Skip advances the cursor past n sequences, stopping early at the end of
// the stream. It supports the resumable start counts of the search loops.
func (h *Handle) Skip(n int) {
	for i := 0; i < n; i++ {
		if h.Next() == 0 {
			return
		}
	}
}

// Close releases the handle; the shared array is dropped from the cache
// when its last handle closes. Close is idempotent.
func (h *Handle) Close() {
	if h.e == nil {
		return
	}
	h.e.refs--
	if h.e.refs <= 0 {
		delete(h.cache.entries, h.name)
	}
	h.e = nil
}
