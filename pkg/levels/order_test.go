package levels

import (
	"testing"

	apperrors "github.com/matzehuels/eulerpath/pkg/errors"
)

func TestParseOrder(t *testing.T) {
	tests := []struct {
		in      string
		want    Order
		wantErr bool
	}{
		{"", OrderLIFO, false},
		{"lifo", OrderLIFO, false},
		{"LIFO", OrderLIFO, false},
		{" insertion ", OrderInsertion, false},
		{"lowest", OrderLowestDestination, false},
		{"random", OrderLIFO, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOrder(tt.in)
			if tt.wantErr {
				if !apperrors.Is(err, apperrors.ErrCodeInvalidOrder) {
					t.Fatalf("ParseOrder(%q) error = %v, want INVALID_ORDER", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseOrder(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseOrder(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestOrderRoundTrip(t *testing.T) {
	for _, name := range OrderNames() {
		o, err := ParseOrder(name)
		if err != nil {
			t.Fatalf("ParseOrder(%q): %v", name, err)
		}
		if o.String() != name {
			t.Errorf("String() = %q, want %q", o.String(), name)
		}
	}
	if Order(99).String() != "unknown" {
		t.Error("out-of-range order should print as unknown")
	}
}

func TestOrderSequenceLeavesLevelIntact(t *testing.T) {
	conns := []Connection{{From: 1, To: 3}, {From: 1, To: 2}, {From: 1, To: 2}}
	l := &Level{id: 1, outgoing: []int{0, 1, 2}}

	if got := OrderLIFO.sequence(l, conns); !equalInts(got, []int{2, 1, 0}) {
		t.Errorf("lifo sequence = %v", got)
	}
	if got := OrderInsertion.sequence(l, conns); !equalInts(got, []int{0, 1, 2}) {
		t.Errorf("insertion sequence = %v", got)
	}
	if got := OrderLowestDestination.sequence(l, conns); !equalInts(got, []int{1, 2, 0}) {
		t.Errorf("lowest sequence = %v", got)
	}
	if !equalInts(l.outgoing, []int{0, 1, 2}) {
		t.Errorf("outgoing mutated: %v", l.outgoing)
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
