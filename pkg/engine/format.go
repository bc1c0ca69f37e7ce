package engine

import (
	"bytes"
	"sort"
)

// sortedEntries returns the occupied slots ordered by byte-lexicographic
// key order.
func (t *Table) sortedEntries() []*entry {
	out := make([]*entry, 0, t.used)
	for i := range t.entries {
		if t.entries[i].key != nil {
			out = append(out, &t.entries[i])
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return bytes.Compare(out[i].key, out[j].key) < 0
	})
	return out
}

// AppendResult appends the result line to dst:
//
//	{key1=min1/mean1/max1, key2=min2/mean2/max2, ...}\n
//
// Keys ascend in byte order; every value carries exactly one fractional
// digit, with a sign only when negative. Means are rendered via meanScaled,
// never through floating division.
func AppendResult(dst []byte, t *Table) []byte {
	dst = append(dst, '{')
	for i, e := range t.sortedEntries() {
		if i > 0 {
			dst = append(dst, ',', ' ')
		}
		dst = append(dst, e.key...)
		dst = append(dst, '=')
		dst = appendScaled(dst, e.min)
		dst = append(dst, '/')
		dst = appendScaled(dst, meanScaled(e.sum, e.count))
		dst = append(dst, '/')
		dst = appendScaled(dst, e.max)
	}
	return append(dst, '}', '\n')
}
