package engine

import (
	"errors"
	"strings"
	"testing"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"8.5\n", 85},
		{"-6.9\n", -69},
		{"42.3\n", 423},
		{"-86.1\n", -861},
		{"0.0\n", 0},
		{"-0.0\n", 0},
		{"99.9\n", 999},
		{"8.5", 85}, // no trailing terminator at end of input
	}

	for _, tt := range tests {
		data := []byte(tt.in)
		v, next, ok := parseValue(data, 0, len(data))
		if !ok {
			t.Errorf("parseValue(%q) failed", tt.in)
			continue
		}
		if v != tt.want {
			t.Errorf("parseValue(%q) = %d, want %d", tt.in, v, tt.want)
		}
		if next != len(data) {
			t.Errorf("parseValue(%q) consumed %d bytes, want %d", tt.in, next, len(data))
		}
	}
}

func TestParseValueMalformed(t *testing.T) {
	cases := []string{
		"",
		"\n",
		"-\n",
		".5\n",
		"5\n",     // no decimal point
		"5.\n",    // missing fractional digit
		"5.55\n",  // more than one fractional digit
		"5,5\n",   // wrong separator
		"x.5\n",   // non-digit integer part
		"5.x\n",   // non-digit fraction
		"--5.5\n", // double sign
	}

	for _, in := range cases {
		data := []byte(in)
		if _, _, ok := parseValue(data, 0, len(data)); ok {
			t.Errorf("parseValue(%q) succeeded, want failure", in)
		}
	}
}

func TestScanPartition(t *testing.T) {
	data := []byte("A;10.0\nB;-5.5\nA;20.0\n")
	tab := NewTable(16)
	if err := scanPartition(data, 0, len(data), tab); err != nil {
		t.Fatalf("scanPartition failed: %v", err)
	}

	a, ok := tab.Get([]byte("A"))
	if !ok {
		t.Fatal("key A missing")
	}
	want := Aggregate{Min: 100, Max: 200, Sum: 300, Count: 2}
	if a != want {
		t.Errorf("A = %+v, want %+v", a, want)
	}

	b, ok := tab.Get([]byte("B"))
	if !ok {
		t.Fatal("key B missing")
	}
	want = Aggregate{Min: -55, Max: -55, Sum: -55, Count: 1}
	if b != want {
		t.Errorf("B = %+v, want %+v", b, want)
	}
}

func TestScanPartitionNoTrailingNewline(t *testing.T) {
	data := []byte("A;10.0\nB;2.5")
	tab := NewTable(16)
	if err := scanPartition(data, 0, len(data), tab); err != nil {
		t.Fatalf("scanPartition failed: %v", err)
	}
	if tab.Len() != 2 {
		t.Errorf("Len() = %d, want 2", tab.Len())
	}
}

func TestScanPartitionMalformed(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		wantOffs int64
	}{
		{"missing delimiter", "A;10.0\nB10.0\n", 7},
		{"bad value", "A;10.0\nB;bad\n", 7},
		{"empty key", ";10.0\n", 0},
		{"empty line", "A;10.0\n\n", 7},
		{"two fraction digits", "A;10.05\n", 0},
		{"overlong key", strings.Repeat("k", 101) + ";1.0\n", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := []byte(tt.data)
			err := scanPartition(data, 0, len(data), NewTable(16))
			if err == nil {
				t.Fatal("expected error")
			}
			var merr *MalformedRecordError
			if !errors.As(err, &merr) {
				t.Fatalf("expected MalformedRecordError, got %T: %v", err, err)
			}
			if merr.Offset != tt.wantOffs {
				t.Errorf("Offset = %d, want %d", merr.Offset, tt.wantOffs)
			}
		})
	}
}

func TestScanPartitionKeyOwnership(t *testing.T) {
	// Keys are borrowed during the scan and must be copied on insert: the
	// source buffer may be released before the result is formatted.
	data := []byte("Oslo;3.2\n")
	tab := NewTable(16)
	if err := scanPartition(data, 0, len(data), tab); err != nil {
		t.Fatal(err)
	}

	for i := range data {
		data[i] = 'x'
	}

	if _, ok := tab.Get([]byte("Oslo")); !ok {
		t.Error("key lost after source buffer was clobbered")
	}
}

func TestHashKeyMatchesScanHash(t *testing.T) {
	// The inline hash in scanPartition must agree with hashKey, or Get
	// would miss entries the scan inserted.
	data := []byte("Reykjavík;1.5\n")
	tab := NewTable(16)
	if err := scanPartition(data, 0, len(data), tab); err != nil {
		t.Fatal(err)
	}
	if _, ok := tab.Get([]byte("Reykjavík")); !ok {
		t.Error("lookup by hashKey missed a scanned entry")
	}
}
