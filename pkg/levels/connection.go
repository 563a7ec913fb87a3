package levels

import "fmt"

// Edge is a teleporter as supplied by callers: a directed pair of level IDs.
type Edge struct {
	From int `json:"from_level" toml:"from_level"`
	To   int `json:"to_level" toml:"to_level"`
}

// String formats the edge as "from->to".
func (e Edge) String() string { return fmt.Sprintf("%d->%d", e.From, e.To) }

// Connection is a teleporter stored in a graph's arena.
//
// Traversed starts false and flips to true exactly once, when path
// reconstruction walks the connection. [Graph.Reset] clears it again.
type Connection struct {
	From      int
	To        int
	Traversed bool
}

// Edge returns the endpoints of the connection.
func (c Connection) Edge() Edge { return Edge{From: c.From, To: c.To} }
