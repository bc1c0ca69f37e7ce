//go:build !linux && !darwin

package sysmem

// totalSystemMemory reports no value on platforms without a detection path.
func totalSystemMemory() (uint64, bool) {
	return 0, false
}
