package levels

import (
	"slices"
	"strconv"
	"strings"
)

const (
	// ImpossibleLabel is how a missing path is rendered.
	ImpossibleLabel = "IMPOSSIBLE"
	// Separator joins level IDs in a rendered path.
	Separator = " -> "
)

// Path is the result of a search.
//
// When Found is true, Levels holds EdgeCount()+1 level IDs starting at 1 and
// Connections holds the arena index of each teleporter taken between
// consecutive levels. When Found is false both are nil.
type Path struct {
	Levels      []int
	Connections []int
	Found       bool
}

// Impossible is the result for a graph with no Eulerian path from 1 to N.
var Impossible = Path{}

// String renders the path as "1 -> 2 -> 3", or "IMPOSSIBLE".
func (p Path) String() string {
	if !p.Found {
		return ImpossibleLabel
	}
	var b strings.Builder
	for i, id := range p.Levels {
		if i > 0 {
			b.WriteString(Separator)
		}
		b.WriteString(strconv.Itoa(id))
	}
	return b.String()
}

func (p Path) clone() Path {
	p.Levels = slices.Clone(p.Levels)
	p.Connections = slices.Clone(p.Connections)
	return p
}

// Len returns the number of levels visited, counting repeats.
func (p Path) Len() int { return len(p.Levels) }

// IsCircuit reports whether the path returns to its starting level.
func (p Path) IsCircuit() bool {
	return p.Found && len(p.Levels) > 1 && p.Levels[0] == p.Levels[len(p.Levels)-1]
}

// Hops returns the path as consecutive (from, to) pairs.
func (p Path) Hops() []Edge {
	if !p.Found || len(p.Levels) < 2 {
		return nil
	}
	hops := make([]Edge, 0, len(p.Levels)-1)
	for i := 1; i < len(p.Levels); i++ {
		hops = append(hops, Edge{From: p.Levels[i-1], To: p.Levels[i]})
	}
	return hops
}
