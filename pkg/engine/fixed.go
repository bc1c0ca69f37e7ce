package engine

import "strconv"

// Values are carried as tenths-scaled integers: 12.3 is stored as 123.
// Summing scaled integers keeps aggregates exact across any number of
// additions and any merge order, which a binary float accumulator cannot.

// meanScaled returns sum/count in tenths, rounded half up toward positive
// infinity. This matches the reference challenge's published rounding of
// means (Java Math.round semantics), not banker's rounding.
func meanScaled(sum int64, count uint64) int64 {
	c := int64(count)
	return floorDiv(2*sum+c, 2*c)
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// appendScaled renders a tenths-scaled integer with exactly one fractional
// digit, e.g. -55 -> "-5.5".
func appendScaled(dst []byte, v int64) []byte {
	if v < 0 {
		dst = append(dst, '-')
		v = -v
	}
	dst = strconv.AppendInt(dst, v/10, 10)
	return append(dst, '.', byte('0'+v%10))
}
