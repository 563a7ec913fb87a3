package levels

import (
	"cmp"
	"slices"
	"strings"

	apperrors "github.com/matzehuels/eulerpath/pkg/errors"
)

// Order decides which unused outgoing teleporter the traversal takes next
// when a level has more than one.
type Order int

const (
	// OrderLIFO takes the most recently added teleporter first.
	OrderLIFO Order = iota
	// OrderInsertion takes the earliest added teleporter first.
	OrderInsertion
	// OrderLowestDestination takes the teleporter with the smallest target
	// level first. Ties keep insertion order.
	OrderLowestDestination
)

var orderNames = map[Order]string{
	OrderLIFO:              "lifo",
	OrderInsertion:         "insertion",
	OrderLowestDestination: "lowest",
}

// String returns the flag/config spelling of the order.
func (o Order) String() string {
	if s, ok := orderNames[o]; ok {
		return s
	}
	return "unknown"
}

// OrderNames lists the accepted spellings for [ParseOrder].
func OrderNames() []string {
	return []string{OrderLIFO.String(), OrderInsertion.String(), OrderLowestDestination.String()}
}

// ParseOrder parses "lifo", "insertion" or "lowest" (case-insensitive).
// The empty string selects [OrderLIFO].
func ParseOrder(s string) (Order, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return OrderLIFO, nil
	}
	for o, name := range orderNames {
		if name == s {
			return o, nil
		}
	}
	return OrderLIFO, apperrors.New(apperrors.ErrCodeInvalidOrder,
		"unknown edge order %q (want one of %s)", s, strings.Join(OrderNames(), ", "))
}

// sequence returns the arena indices of l's outgoing connections in the
// order the traversal should consume them. The level's own list is not
// modified.
func (o Order) sequence(l *Level, conns []Connection) []int {
	seq := slices.Clone(l.outgoing)
	switch o {
	case OrderInsertion:
	case OrderLowestDestination:
		slices.SortStableFunc(seq, func(a, b int) int {
			return cmp.Compare(conns[a].To, conns[b].To)
		})
	default:
		slices.Reverse(seq)
	}
	return seq
}
