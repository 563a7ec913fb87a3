package levels

import "slices"

// Level is one vertex of the level graph.
//
// Outgoing and incoming teleporters are stored as indices into the owning
// graph's connection arena, in the order they were added. OutDegree and
// InDegree always equal the lengths of those lists.
type Level struct {
	id       int
	outgoing []int
	incoming []int
}

// ID returns the level number in [1, N].
func (l *Level) ID() int { return l.id }

// Outgoing returns the arena indices of connections leaving this level.
// The returned slice is a copy.
func (l *Level) Outgoing() []int { return slices.Clone(l.outgoing) }

// Incoming returns the arena indices of connections entering this level.
// The returned slice is a copy.
func (l *Level) Incoming() []int { return slices.Clone(l.incoming) }

// OutDegree returns the number of teleporters leaving this level.
func (l *Level) OutDegree() int { return len(l.outgoing) }

// InDegree returns the number of teleporters arriving at this level.
func (l *Level) InDegree() int { return len(l.incoming) }

// Balance returns OutDegree minus InDegree.
func (l *Level) Balance() int { return len(l.outgoing) - len(l.incoming) }

func (l *Level) addOutgoing(conn int) { l.outgoing = append(l.outgoing, conn) }

func (l *Level) addIncoming(conn int) { l.incoming = append(l.incoming, conn) }
