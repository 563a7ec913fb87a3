package levels

import (
	"errors"
	"fmt"
	"slices"

	apperrors "github.com/matzehuels/eulerpath/pkg/errors"
)

var (
	// ErrInvalidLevelCount is returned by [New] when fewer than one level
	// is requested.
	ErrInvalidLevelCount = errors.New("invalid level count")

	// ErrInvalidEdge is returned by [Graph.Build] when a teleporter endpoint
	// lies outside [1, N]. The graph is left without any connections.
	ErrInvalidEdge = errors.New("invalid edge")

	// ErrAlreadyBuilt is returned by [Graph.Build] on a graph that already
	// has its connections.
	ErrAlreadyBuilt = errors.New("graph already built")

	// ErrNotBuilt is returned by [Graph.FindEulerianPath] before Build.
	ErrNotBuilt = errors.New("graph not built")

	// ErrPathNotComputed is returned by [Graph.Visualize] before
	// FindEulerianPath. It is distinct from a computed [Impossible] result.
	ErrPathNotComputed = errors.New("path not computed")
)

// Option configures a [Graph].
type Option func(*Graph)

// WithOrder selects the tie-break used when a level has several unused
// outgoing teleporters. The default is [OrderLIFO].
func WithOrder(o Order) Option {
	return func(g *Graph) { g.order = o }
}

// WithObserver installs an observer for lifecycle and traversal events.
// A nil observer is ignored.
func WithObserver(o Observer) Option {
	return func(g *Graph) {
		if o != nil {
			g.observer = o
		}
	}
}

// Graph is a directed multigraph of levels 1..N joined by teleporters.
//
// The zero value is not usable - use [New]. Graph is not safe for
// concurrent use.
type Graph struct {
	levels []Level      // levels[id-1]
	conns  []Connection // arena, in insertion order
	state  State
	path   Path

	order    Order
	observer Observer
}

// New creates a graph with levels 1..numLevels and no connections.
// It returns an INVALID_LEVEL_COUNT error if numLevels < 1.
func New(numLevels int, opts ...Option) (*Graph, error) {
	if err := apperrors.ValidateLevelCount(numLevels); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLevelCount, err)
	}
	g := &Graph{
		levels:   make([]Level, numLevels),
		observer: NoopObserver{},
	}
	for i := range g.levels {
		g.levels[i].id = i + 1
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Build adds the teleporters in input order. Self-loops and parallel
// teleporters are allowed.
//
// Every edge is validated before anything is added, so on an
// INVALID_EDGE error the graph stays in [StateUnbuilt] with no connections.
// Calling Build a second time returns an ALREADY_BUILT error.
func (g *Graph) Build(edges []Edge) error {
	if g.state != StateUnbuilt {
		return fmt.Errorf("%w: %w", ErrAlreadyBuilt,
			apperrors.New(apperrors.ErrCodeAlreadyBuilt, "build called in state %s", g.state))
	}
	n := len(g.levels)
	for i, e := range edges {
		if err := apperrors.ValidateEdge(i, e.From, e.To, n); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidEdge, err)
		}
	}

	g.conns = make([]Connection, 0, len(edges))
	for _, e := range edges {
		g.addConnection(e.From, e.To)
	}
	g.transition(StateBuilt)
	return nil
}

func (g *Graph) addConnection(from, to int) {
	idx := len(g.conns)
	g.conns = append(g.conns, Connection{From: from, To: to})
	g.levels[from-1].addOutgoing(idx)
	g.levels[to-1].addIncoming(idx)
}

// HasEulerianPath reports whether the degree balance allows an Eulerian
// path from level 1 to level N:
//   - at most one level has out-degree - in-degree = 1, and it is level 1;
//   - at most one level has in-degree - out-degree = 1, and it is level N;
//   - every other level is balanced.
//
// It does not check connectivity; [Graph.FindEulerianPath] does that by
// path length.
func (g *Graph) HasEulerianPath() bool {
	start, end := 1, len(g.levels)
	var starts, ends int
	for i := range g.levels {
		l := &g.levels[i]
		switch b := l.Balance(); {
		case b == 1:
			if starts > 0 || l.id != start {
				return false
			}
			starts++
		case b == -1:
			if ends > 0 || l.id != end {
				return false
			}
			ends++
		case b != 0:
			return false
		}
	}
	return true
}

// FindEulerianPath computes and stores the Eulerian path from level 1.
// The returned Path is a copy; the stored result never changes until
// [Graph.Reset].
//
// It returns [Impossible] when the degree check fails or when the walk does
// not cover every connection (a disconnected graph). A graph already in
// [StatePathComputed] returns its stored result unchanged. Calling it before
// [Graph.Build] returns a GRAPH_NOT_BUILT error.
func (g *Graph) FindEulerianPath() (Path, error) {
	switch g.state {
	case StateUnbuilt:
		return Impossible, fmt.Errorf("%w: %w", ErrNotBuilt,
			apperrors.New(apperrors.ErrCodeGraphNotBuilt, "find path called before build"))
	case StatePathComputed:
		return g.path.clone(), nil
	}

	if !g.HasEulerianPath() {
		g.finish(Impossible)
	} else {
		g.finish(g.traverse())
	}
	return g.path.clone(), nil
}

// traverse runs Hierholzer's algorithm from level 1 with an explicit stack.
// Each level gets its own cursor into the order-specific sequence of its
// outgoing connections; the adjacency lists themselves are left intact.
func (g *Graph) traverse() Path {
	seqs := make([][]int, len(g.levels))
	for i := range g.levels {
		seqs[i] = g.order.sequence(&g.levels[i], g.conns)
	}
	cursor := make([]int, len(g.levels))

	// via[i] is the connection that brought stack[i] onto the stack.
	stack := []int{1}
	via := []int{-1}
	var levelsOut, connsOut []int

	for len(stack) > 0 {
		u := stack[len(stack)-1]
		if next := cursor[u-1]; next < len(seqs[u-1]) {
			cursor[u-1]++
			ci := seqs[u-1][next]
			c := &g.conns[ci]
			c.Traversed = true
			stack = append(stack, c.To)
			via = append(via, ci)
			g.observer.OnStep(Step{Kind: StepTraverse, Level: c.To, Connection: ci, Depth: len(stack)})
			continue
		}

		top := len(stack) - 1
		levelsOut = append(levelsOut, u)
		if via[top] >= 0 {
			connsOut = append(connsOut, via[top])
		}
		stack, via = stack[:top], via[:top]
		g.observer.OnStep(Step{Kind: StepBacktrack, Level: u, Connection: -1, Depth: len(stack)})
	}

	if len(levelsOut) != len(g.conns)+1 {
		return Impossible
	}
	slices.Reverse(levelsOut)
	slices.Reverse(connsOut)
	return Path{Levels: levelsOut, Connections: connsOut, Found: true}
}

func (g *Graph) finish(p Path) {
	g.path = p
	g.transition(StatePathComputed)
}

func (g *Graph) transition(to State) {
	from := g.state
	g.state = to
	g.observer.OnTransition(from, to)
}

// Reset clears traversal flags and the stored path, returning a solved
// graph to [StateBuilt]. It is a no-op in any other state.
func (g *Graph) Reset() {
	if g.state != StatePathComputed {
		return
	}
	for i := range g.conns {
		g.conns[i].Traversed = false
	}
	g.path = Path{}
	g.transition(StateBuilt)
}

// SetOrder changes the edge order used by the next traversal.
func (g *Graph) SetOrder(o Order) { g.order = o }

// Order returns the edge order in use.
func (g *Graph) Order() Order { return g.order }

// Visualize renders the computed path as "1 -> 2 -> 3" or "IMPOSSIBLE".
// Before [Graph.FindEulerianPath] it returns a PATH_NOT_COMPUTED error.
func (g *Graph) Visualize() (string, error) {
	if g.state != StatePathComputed {
		return "", fmt.Errorf("%w: %w", ErrPathNotComputed,
			apperrors.New(apperrors.ErrCodePathNotComputed, "visualize called in state %s", g.state))
	}
	return g.path.String(), nil
}

// Path returns a copy of the stored result and whether it has been computed.
func (g *Graph) Path() (Path, bool) {
	return g.path.clone(), g.state == StatePathComputed
}

// State returns the current lifecycle state.
func (g *Graph) State() State { return g.state }

// NumLevels returns N.
func (g *Graph) NumLevels() int { return len(g.levels) }

// EdgeCount returns the number of connections.
func (g *Graph) EdgeCount() int { return len(g.conns) }

// Level returns the level with the given ID.
func (g *Graph) Level(id int) (*Level, bool) {
	if id < 1 || id > len(g.levels) {
		return nil, false
	}
	return &g.levels[id-1], true
}

// Levels returns all levels ordered by ID.
func (g *Graph) Levels() []*Level {
	out := make([]*Level, len(g.levels))
	for i := range g.levels {
		out[i] = &g.levels[i]
	}
	return out
}

// Connections returns a copy of the connection arena in insertion order.
func (g *Graph) Connections() []Connection { return slices.Clone(g.conns) }

// Connection returns the connection at arena index i.
func (g *Graph) Connection(i int) (Connection, bool) {
	if i < 0 || i >= len(g.conns) {
		return Connection{}, false
	}
	return g.conns[i], true
}
