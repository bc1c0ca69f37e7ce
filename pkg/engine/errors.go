package engine

import "fmt"

// MalformedRecordError reports a record that violates the input format.
// The run aborts on the first one; partial aggregates are never reported.
type MalformedRecordError struct {
	// Offset is the byte offset of the start of the offending record.
	Offset int64
	// Line is the offending record, truncated for display.
	Line string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record at byte offset %d: %q", e.Offset, e.Line)
}

// lineAt returns the record starting at pos, truncated for error messages.
func lineAt(data []byte, pos int) string {
	const maxExcerpt = 120
	end := pos
	for end < len(data) && data[end] != terminator && end-pos < maxExcerpt {
		end++
	}
	return string(data[pos:end])
}
