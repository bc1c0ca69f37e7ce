// Package sysmem detects total system memory.
//
// The engine maps the whole input file, so knowing total RAM lets it warn
// when the working set cannot stay resident.
package sysmem

// Total returns the total system memory in bytes. The second return value
// is false when platform-specific detection is unavailable or failed, in
// which case the byte count is zero and callers should skip any
// memory-based heuristics.
func Total() (uint64, bool) {
	return totalSystemMemory()
}
