package engine

import "bytes"

// Aggregate is the running summary for one key. Min, Max, and Sum are
// tenths-scaled integers.
type Aggregate struct {
	Min   int64
	Max   int64
	Sum   int64
	Count uint64
}

// entry is one slot of the open-addressing table. A nil key marks an empty
// slot. The key slice is an owned copy taken on first insert; during the
// scan only borrowed views of the mapped file reach upsert.
type entry struct {
	hash  uint64
	key   []byte
	min   int64
	max   int64
	sum   int64
	count uint64
}

// Table is an open-addressing hash table from key bytes to an Aggregate,
// probed linearly with a precomputed 64-bit hash. It is not safe for
// concurrent use; each worker owns one.
type Table struct {
	entries []entry
	mask    uint64
	used    int
}

// DefaultTableSlots pre-sizes worker tables for the expected key
// cardinality (~10K distinct keys at 0.5 load factor) so the hot loop
// never rehashes.
const DefaultTableSlots = 1 << 15

// NewTable creates a table with capacity for at least slots entries,
// rounded up to a power of two.
func NewTable(slots int) *Table {
	n := 16
	for n < slots {
		n <<= 1
	}
	return &Table{
		entries: make([]entry, n),
		mask:    uint64(n - 1),
	}
}

// Len returns the number of distinct keys.
func (t *Table) Len() int { return t.used }

// Rows returns the total number of observations across all keys.
func (t *Table) Rows() uint64 {
	var rows uint64
	for i := range t.entries {
		rows += t.entries[i].count
	}
	return rows
}

// Get returns the aggregate for key, if present.
func (t *Table) Get(key []byte) (Aggregate, bool) {
	hash := hashKey(key)
	i := hash & t.mask
	for {
		e := &t.entries[i]
		if e.key == nil {
			return Aggregate{}, false
		}
		if e.hash == hash && bytes.Equal(e.key, key) {
			return Aggregate{Min: e.min, Max: e.max, Sum: e.sum, Count: e.count}, true
		}
		i = (i + 1) & t.mask
	}
}

// upsert records one observation of key with the tenths-scaled value v.
// key may be a borrowed view; it is copied if this is the first occurrence.
func (t *Table) upsert(hash uint64, key []byte, v int64) {
	i := hash & t.mask
	for {
		e := &t.entries[i]
		if e.key == nil {
			t.entries[i] = entry{
				hash:  hash,
				key:   append([]byte(nil), key...),
				min:   v,
				max:   v,
				sum:   v,
				count: 1,
			}
			t.used++
			if 2*t.used > len(t.entries) {
				t.grow()
			}
			return
		}
		if e.hash == hash && bytes.Equal(e.key, key) {
			if v < e.min {
				e.min = v
			}
			if v > e.max {
				e.max = v
			}
			e.sum += v
			e.count++
			return
		}
		i = (i + 1) & t.mask
	}
}

// fold merges all of src into t. Owned key slices move over instead of
// being re-copied. src must not be used afterwards.
func (t *Table) fold(src *Table) {
	for i := range src.entries {
		e := &src.entries[i]
		if e.key == nil {
			continue
		}
		t.foldEntry(e)
	}
}

func (t *Table) foldEntry(e *entry) {
	i := e.hash & t.mask
	for {
		d := &t.entries[i]
		if d.key == nil {
			t.entries[i] = *e
			t.used++
			if 2*t.used > len(t.entries) {
				t.grow()
			}
			return
		}
		if d.hash == e.hash && bytes.Equal(d.key, e.key) {
			if e.min < d.min {
				d.min = e.min
			}
			if e.max > d.max {
				d.max = e.max
			}
			d.sum += e.sum
			d.count += e.count
			return
		}
		i = (i + 1) & t.mask
	}
}

// grow doubles the slot count and reinserts every entry by its stored hash.
func (t *Table) grow() {
	old := t.entries
	t.entries = make([]entry, 2*len(old))
	t.mask = uint64(len(t.entries) - 1)
	for i := range old {
		e := &old[i]
		if e.key == nil {
			continue
		}
		j := e.hash & t.mask
		for t.entries[j].key != nil {
			j = (j + 1) & t.mask
		}
		t.entries[j] = *e
	}
}
