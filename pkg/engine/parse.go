package engine

// Input format bytes. The delimiter never appears inside a key.
const (
	delim      = ';'
	terminator = '\n'
)

// MaxKeyLen is the longest key the input format allows.
const MaxKeyLen = 100

// FNV-1a 64-bit parameters. The key hash is computed in the same loop that
// locates the delimiter, so each record is hashed exactly once; the table
// reuses it for probing and equality short-circuiting.
const (
	fnvOffset64 uint64 = 14695981039346656037
	fnvPrime64  uint64 = 1099511628211
)

// hashKey returns the FNV-1a hash of key. The scan loop inlines the same
// computation; this exists for lookups that start from a whole key.
func hashKey(key []byte) uint64 {
	h := fnvOffset64
	for _, b := range key {
		h ^= uint64(b)
		h *= fnvPrime64
	}
	return h
}

// scanPartition aggregates every record in data[start:end) into t.
// start and end must sit on record boundaries. The key bytes passed to the
// table are borrowed views into data; the table copies them on first insert.
func scanPartition(data []byte, start, end int, t *Table) error {
	pos := start
	for pos < end {
		// Locate the delimiter and hash the key in a single pass.
		hash := fnvOffset64
		sep := pos
		for {
			if sep >= end || data[sep] == terminator {
				return &MalformedRecordError{Offset: int64(pos), Line: lineAt(data, pos)}
			}
			b := data[sep]
			if b == delim {
				break
			}
			hash ^= uint64(b)
			hash *= fnvPrime64
			sep++
		}
		if sep == pos || sep-pos > MaxKeyLen {
			return &MalformedRecordError{Offset: int64(pos), Line: lineAt(data, pos)}
		}

		v, next, ok := parseValue(data, sep+1, end)
		if !ok {
			return &MalformedRecordError{Offset: int64(pos), Line: lineAt(data, pos)}
		}

		t.upsert(hash, data[pos:sep], v)
		pos = next
	}
	return nil
}

// parseValue parses the value bytes starting at i: an optional minus sign,
// one or more integer digits, a decimal point, and exactly one fractional
// digit, followed by a line terminator or the end of the range. It returns
// the tenths-scaled value and the position after the terminator.
func parseValue(data []byte, i, end int) (v int64, next int, ok bool) {
	if i >= end {
		return 0, 0, false
	}

	neg := data[i] == '-'
	if neg {
		i++
	}

	digits := 0
	for i < end && data[i] >= '0' && data[i] <= '9' {
		v = v*10 + int64(data[i]-'0')
		i++
		digits++
	}
	if digits == 0 || i >= end || data[i] != '.' {
		return 0, 0, false
	}
	i++

	if i >= end || data[i] < '0' || data[i] > '9' {
		return 0, 0, false
	}
	v = v*10 + int64(data[i]-'0')
	i++

	// Exactly one fractional digit: the record must end here.
	if i < end {
		if data[i] != terminator {
			return 0, 0, false
		}
		i++
	}

	if neg {
		v = -v
	}
	return v, i, true
}
