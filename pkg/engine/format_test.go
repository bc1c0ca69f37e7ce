package engine

import (
	"sort"
	"strings"
	"testing"
)

func TestAppendResultOrder(t *testing.T) {
	data := []byte("Zagreb;1.0\nAthens;2.0\nMinsk;3.0\nÅlesund;4.0\n")
	tab, err := Run(testCtx(), data, Config{Workers: 2})
	if err != nil {
		t.Fatal(err)
	}

	out := string(AppendResult(nil, tab))
	if !strings.HasPrefix(out, "{") || !strings.HasSuffix(out, "}\n") {
		t.Fatalf("bad framing: %q", out)
	}

	body := strings.TrimSuffix(strings.TrimPrefix(out, "{"), "}\n")
	parts := strings.Split(body, ", ")
	if len(parts) != 4 {
		t.Fatalf("got %d entries: %q", len(parts), out)
	}

	keys := make([]string, len(parts))
	for i, p := range parts {
		keys[i] = p[:strings.IndexByte(p, '=')]
	}
	// Byte-lexicographic, so multi-byte UTF-8 keys (Å = 0xC3 0x85) sort
	// after all ASCII.
	if !sort.StringsAreSorted(keys) {
		t.Errorf("keys not in byte order: %v", keys)
	}
	if keys[len(keys)-1] != "Ålesund" {
		t.Errorf("UTF-8 key sorted as %v", keys)
	}
}

func TestAppendResultRounding(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{
			"mean rounds half up",
			"a;0.7\na;0.8\n", // sum 15, count 2 -> mean 0.8
			"{a=0.7/0.8/0.8}\n",
		},
		{
			"negative mean rounds toward positive infinity",
			"a;-0.7\na;-0.8\n", // sum -15, count 2 -> mean -0.7
			"{a=-0.8/-0.7/-0.7}\n",
		},
		{
			"single observation",
			"b;-5.5\n",
			"{b=-5.5/-5.5/-5.5}\n",
		},
		{
			"mean lands on exact tenth",
			"c;10.0\nc;20.0\n",
			"{c=10.0/15.0/20.0}\n",
		},
		{
			"small negatives average to unsigned zero",
			"d;-0.1\nd;0.1\n",
			"{d=-0.1/0.0/0.1}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tab, err := Run(testCtx(), []byte(tt.data), Config{Workers: 1})
			if err != nil {
				t.Fatal(err)
			}
			got := string(AppendResult(nil, tab))
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAppendResultNoDuplicateKeys(t *testing.T) {
	data := []byte(strings.Repeat("dup;1.0\n", 50) + "other;2.0\n")
	tab, err := Run(testCtx(), data, Config{Workers: 8})
	if err != nil {
		t.Fatal(err)
	}

	out := string(AppendResult(nil, tab))
	if strings.Count(out, "dup=") != 1 {
		t.Errorf("duplicate key in output: %q", out)
	}
}
