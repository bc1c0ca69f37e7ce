package engine

import "bytes"

// span is a contiguous, line-aligned byte range [start, end) of the input.
type span struct {
	start int
	end   int
}

// partitions splits data into n contiguous spans whose union is the whole
// input. Every cut except the last sits immediately after a line
// terminator, so no record straddles two spans. When n exceeds the number
// of lines, trailing spans collapse to zero length.
func partitions(data []byte, n int) []span {
	if n < 1 {
		n = 1
	}

	spans := make([]span, 0, n)
	prev := 0
	for i := 1; i <= n; i++ {
		cut := len(data)
		if i < n {
			cut = i * len(data) / n
			if cut < prev {
				cut = prev
			}
			if j := bytes.IndexByte(data[cut:], terminator); j >= 0 {
				cut += j + 1
			} else {
				cut = len(data)
			}
		}
		spans = append(spans, span{start: prev, end: cut})
		prev = cut
	}
	return spans
}
