// Package humanfmt provides human-readable formatting for bytes, durations,
// counts, and rates used in log output.
package humanfmt

import (
	"fmt"
	"strconv"
	"time"
)

// Binary (IEC) units for bytes.
const (
	KiB = 1024
	MiB = 1024 * KiB
	GiB = 1024 * MiB
	TiB = 1024 * GiB
)

func iec(v float64, suffix string) string {
	switch {
	case v >= TiB:
		return fmt.Sprintf("%.2f TiB%s", v/TiB, suffix)
	case v >= GiB:
		return fmt.Sprintf("%.2f GiB%s", v/GiB, suffix)
	case v >= MiB:
		return fmt.Sprintf("%.2f MiB%s", v/MiB, suffix)
	case v >= KiB:
		return fmt.Sprintf("%.2f KiB%s", v/KiB, suffix)
	default:
		return fmt.Sprintf("%.0f B%s", v, suffix)
	}
}

// Bytes formats a byte count using IEC binary units, like "1.23 GiB".
func Bytes(b int64) string {
	if b < 0 || b < KiB {
		return fmt.Sprintf("%d B", b)
	}
	return iec(float64(b), "")
}

// Duration formats a duration with a unit suited to its magnitude,
// like "1.23s", "45.6ms", "1m30s", or "2h15m".
func Duration(d time.Duration) string {
	if d < 0 {
		return d.String()
	}

	switch {
	case d >= time.Hour:
		h := d / time.Hour
		m := (d % time.Hour) / time.Minute
		if m == 0 {
			return fmt.Sprintf("%dh", h)
		}
		return fmt.Sprintf("%dh%dm", h, m)
	case d >= time.Minute:
		m := d / time.Minute
		s := (d % time.Minute) / time.Second
		if s == 0 {
			return fmt.Sprintf("%dm", m)
		}
		return fmt.Sprintf("%dm%ds", m, s)
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d)/float64(time.Millisecond))
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fµs", float64(d)/float64(time.Microsecond))
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}

// Throughput formats bytes per duration as a rate like "123.4 MiB/s".
func Throughput(bytes int64, d time.Duration) string {
	if d <= 0 {
		return "∞"
	}
	return iec(float64(bytes)/d.Seconds(), "/s")
}

// Count formats a count with decimal suffixes, like "1.23M" or "456.00K".
func Count(n int64) string {
	const (
		thousand = 1000
		million  = 1000 * thousand
		billion  = 1000 * million
	)

	switch {
	case n >= billion:
		return fmt.Sprintf("%.2fB", float64(n)/billion)
	case n >= million:
		return fmt.Sprintf("%.2fM", float64(n)/million)
	case n >= thousand:
		return fmt.Sprintf("%.2fK", float64(n)/thousand)
	default:
		return strconv.FormatInt(n, 10)
	}
}

// Rate formats items per duration as a rate like "13.2M/s".
func Rate(n int64, d time.Duration) string {
	if d <= 0 {
		return "∞"
	}
	return Count(int64(float64(n)/d.Seconds())) + "/s"
}
