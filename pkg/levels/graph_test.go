package levels

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/matzehuels/eulerpath/pkg/errors"
)

func edges(pairs ...[2]int) []Edge {
	out := make([]Edge, len(pairs))
	for i, p := range pairs {
		out[i] = Edge{From: p[0], To: p[1]}
	}
	return out
}

func mustBuild(t *testing.T, n int, es []Edge, opts ...Option) *Graph {
	t.Helper()
	g, err := New(n, opts...)
	require.NoError(t, err)
	require.NoError(t, g.Build(es))
	return g
}

func TestSolve(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		edges []Edge
		want  []int // nil means impossible
	}{
		{"single level no edges", 1, nil, []int{1}},
		{"simple chain", 3, edges([2]int{1, 2}, [2]int{2, 3}), []int{1, 2, 3}},
		{"start has excess two", 3, edges([2]int{1, 2}, [2]int{2, 3}, [2]int{1, 3}), nil},
		{"triangle circuit", 3, edges([2]int{1, 2}, [2]int{2, 3}, [2]int{3, 1}), []int{1, 2, 3, 1}},
		{"two balanced components", 4, edges([2]int{1, 2}, [2]int{2, 1}, [2]int{3, 4}, [2]int{4, 3}), nil},
		{"second excess-out level", 3, edges([2]int{1, 3}, [2]int{2, 3}), nil},
		{"excess-out not at start", 3, edges([2]int{2, 3}), nil},
		{"excess-in not at end", 3, edges([2]int{1, 2}), nil},
		{"self loop on the way", 2, edges([2]int{1, 1}, [2]int{1, 2}), []int{1, 1, 2}},
		{"parallel teleporters", 2, edges([2]int{1, 2}, [2]int{2, 1}, [2]int{1, 2}), []int{1, 2, 1, 2}},
		{"start isolated from edges", 3, edges([2]int{2, 3}, [2]int{3, 2}), nil},
		{"single level self loops", 1, edges([2]int{1, 1}, [2]int{1, 1}), []int{1, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Solve(tt.n, tt.edges)
			require.NoError(t, err)
			if tt.want == nil {
				assert.False(t, p.Found)
				assert.Equal(t, Impossible, p)
				assert.Equal(t, ImpossibleLabel, p.String())
				return
			}
			require.True(t, p.Found)
			assert.Equal(t, tt.want, p.Levels)
			assert.Len(t, p.Connections, len(tt.edges))
		})
	}
}

func TestHasEulerianPath(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		edges []Edge
		want  bool
	}{
		{"empty single", 1, nil, true},
		{"chain", 3, edges([2]int{1, 2}, [2]int{2, 3}), true},
		{"excess two at start", 3, edges([2]int{1, 2}, [2]int{2, 3}, [2]int{1, 3}), false},
		{"disconnected but balanced", 4, edges([2]int{1, 2}, [2]int{2, 1}, [2]int{3, 4}, [2]int{4, 3}), true},
		{"excess-in at middle", 3, edges([2]int{1, 2}), false},
		{"excess-out at middle", 3, edges([2]int{2, 3}), false},
		{"reversed chain", 3, edges([2]int{3, 2}, [2]int{2, 1}), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustBuild(t, tt.n, tt.edges)
			assert.Equal(t, tt.want, g.HasEulerianPath())
		})
	}
}

func TestNewRejectsLevelCount(t *testing.T) {
	for _, n := range []int{0, -1} {
		g, err := New(n)
		require.Error(t, err)
		assert.Nil(t, g)
		assert.True(t, errors.Is(err, ErrInvalidLevelCount))
		assert.True(t, apperrors.Is(err, apperrors.ErrCodeInvalidLevelCount))
	}
}

func TestBuildRejectsInvalidEdge(t *testing.T) {
	tests := []struct {
		name  string
		edges []Edge
	}{
		{"target above range", edges([2]int{1, 2}, [2]int{2, 4})},
		{"source zero", edges([2]int{0, 1})},
		{"negative target", edges([2]int{1, -3})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(3)
			require.NoError(t, err)

			err = g.Build(tt.edges)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidEdge))
			assert.Equal(t, apperrors.ErrCodeInvalidEdge, apperrors.GetCode(err))

			// No partial state is retained.
			assert.Equal(t, StateUnbuilt, g.State())
			assert.Equal(t, 0, g.EdgeCount())
			for _, l := range g.Levels() {
				assert.Zero(t, l.OutDegree())
				assert.Zero(t, l.InDegree())
			}
		})
	}
}

func TestBuildTwice(t *testing.T) {
	g := mustBuild(t, 2, edges([2]int{1, 2}))
	err := g.Build(edges([2]int{2, 1}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAlreadyBuilt))
	assert.Equal(t, 1, g.EdgeCount())
}

func TestBuildDegrees(t *testing.T) {
	es := edges([2]int{1, 2}, [2]int{1, 2}, [2]int{2, 2}, [2]int{2, 3}, [2]int{3, 1})
	g := mustBuild(t, 3, es)

	require.Equal(t, len(es), g.EdgeCount())
	require.Len(t, g.Connections(), len(es))

	l1, _ := g.Level(1)
	assert.Equal(t, []int{0, 1}, l1.Outgoing())
	assert.Equal(t, []int{4}, l1.Incoming())

	l2, _ := g.Level(2)
	assert.Equal(t, []int{2, 3}, l2.Outgoing())
	assert.Equal(t, []int{0, 1, 2}, l2.Incoming())

	for _, l := range g.Levels() {
		assert.Equal(t, len(l.Outgoing()), l.OutDegree())
		assert.Equal(t, len(l.Incoming()), l.InDegree())
	}

	_, ok := g.Level(0)
	assert.False(t, ok)
	_, ok = g.Level(4)
	assert.False(t, ok)
}

func TestFindBeforeBuild(t *testing.T) {
	g, err := New(2)
	require.NoError(t, err)

	p, err := g.FindEulerianPath()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotBuilt))
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeGraphNotBuilt))
	assert.False(t, p.Found)
}

func TestVisualize(t *testing.T) {
	g := mustBuild(t, 3, edges([2]int{1, 2}, [2]int{2, 3}))

	_, err := g.Visualize()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPathNotComputed))
	assert.True(t, apperrors.Is(err, apperrors.ErrCodePathNotComputed))

	_, err = g.FindEulerianPath()
	require.NoError(t, err)

	s, err := g.Visualize()
	require.NoError(t, err)
	assert.Equal(t, "1 -> 2 -> 3", s)

	g = mustBuild(t, 3, edges([2]int{1, 3}, [2]int{1, 2}))
	_, err = g.FindEulerianPath()
	require.NoError(t, err)
	s, err = g.Visualize()
	require.NoError(t, err)
	assert.Equal(t, ImpossibleLabel, s)
}

func TestFindIsIdempotent(t *testing.T) {
	g := mustBuild(t, 3, edges([2]int{1, 2}, [2]int{2, 1}, [2]int{1, 3}))

	first, err := g.FindEulerianPath()
	require.NoError(t, err)
	require.True(t, first.Found)

	second, err := g.FindEulerianPath()
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, StatePathComputed, g.State())
}

func TestStoredPathIsIsolated(t *testing.T) {
	g := mustBuild(t, 3, edges([2]int{1, 2}, [2]int{2, 3}))

	p, err := g.FindEulerianPath()
	require.NoError(t, err)
	p.Levels[1] = 99
	p.Connections[0] = 7

	stored, ok := g.Path()
	require.True(t, ok)
	stored.Levels[0] = 42

	s, err := g.Visualize()
	require.NoError(t, err)
	assert.Equal(t, "1 -> 2 -> 3", s)

	again, err := g.FindEulerianPath()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, again.Levels)
	assert.Equal(t, []int{0, 1}, again.Connections)

	l1, _ := g.Level(1)
	assert.Equal(t, 1, l1.ID())
	assert.True(t, g.HasEulerianPath())
}

func TestAdjacencySurvivesTraversal(t *testing.T) {
	es := edges([2]int{1, 2}, [2]int{2, 3}, [2]int{3, 1}, [2]int{1, 3})
	g := mustBuild(t, 3, es)

	p, err := g.FindEulerianPath()
	require.NoError(t, err)
	require.True(t, p.Found)

	for _, c := range g.Connections() {
		assert.True(t, c.Traversed, "connection %v not traversed", c.Edge())
	}
	l1, _ := g.Level(1)
	assert.Equal(t, []int{0, 3}, l1.Outgoing())
	assert.Equal(t, 2, l1.OutDegree())
}

func TestReset(t *testing.T) {
	es := edges([2]int{1, 3}, [2]int{3, 1}, [2]int{1, 2}, [2]int{2, 1})
	g := mustBuild(t, 3, es, WithOrder(OrderInsertion))

	p, err := g.FindEulerianPath()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 1, 2, 1}, p.Levels)

	g.Reset()
	assert.Equal(t, StateBuilt, g.State())
	_, computed := g.Path()
	assert.False(t, computed)
	for _, c := range g.Connections() {
		assert.False(t, c.Traversed)
	}

	g.SetOrder(OrderLowestDestination)
	p, err = g.FindEulerianPath()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 1, 3, 1}, p.Levels)
}

func TestOrders(t *testing.T) {
	es := edges([2]int{1, 3}, [2]int{3, 1}, [2]int{1, 2}, [2]int{2, 1})
	tests := []struct {
		order Order
		want  []int
	}{
		{OrderLIFO, []int{1, 2, 1, 3, 1}},
		{OrderInsertion, []int{1, 3, 1, 2, 1}},
		{OrderLowestDestination, []int{1, 2, 1, 3, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.order.String(), func(t *testing.T) {
			p, err := Solve(3, es, WithOrder(tt.order))
			require.NoError(t, err)
			require.True(t, p.Found)
			assert.Equal(t, tt.want, p.Levels)
			assert.True(t, p.IsCircuit())
		})
	}
}

func TestCircuitWhenBalanced(t *testing.T) {
	es := edges([2]int{1, 2}, [2]int{2, 3}, [2]int{3, 1}, [2]int{1, 4}, [2]int{4, 1}, [2]int{2, 2})
	for _, o := range []Order{OrderLIFO, OrderInsertion, OrderLowestDestination} {
		p, err := Solve(4, es, WithOrder(o))
		require.NoError(t, err)
		require.True(t, p.Found)
		assert.Equal(t, p.Levels[0], p.Levels[len(p.Levels)-1])
		assert.Len(t, p.Levels, len(es)+1)
	}
}

// randomTrail returns the edges of a random walk from 1 that ends at n.
// The walk itself is an Eulerian path of the resulting multigraph.
func randomTrail(r *rand.Rand, n, steps int) []Edge {
	cur := 1
	var es []Edge
	for range steps {
		next := r.IntN(n) + 1
		es = append(es, Edge{From: cur, To: next})
		cur = next
	}
	if cur != n {
		es = append(es, Edge{From: cur, To: n})
	}
	r.Shuffle(len(es), func(i, j int) { es[i], es[j] = es[j], es[i] })
	return es
}

func TestRandomTrailsAreRecovered(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	for trial := range 200 {
		n := r.IntN(6) + 2
		es := randomTrail(r, n, r.IntN(25))

		for _, o := range []Order{OrderLIFO, OrderInsertion, OrderLowestDestination} {
			g := mustBuild(t, n, es, WithOrder(o))
			require.True(t, g.HasEulerianPath(), "trial %d", trial)

			p, err := g.FindEulerianPath()
			require.NoError(t, err)
			require.True(t, p.Found, "trial %d order %s: %v", trial, o, es)
			require.Len(t, p.Levels, len(es)+1)
			assert.Equal(t, 1, p.Levels[0])
			if len(es) > 0 {
				assert.Equal(t, n, p.Levels[len(p.Levels)-1])
			}

			// Every connection used exactly once, matching the hops.
			used := slices.Clone(p.Connections)
			slices.Sort(used)
			for i, ci := range used {
				require.Equal(t, i, ci)
			}
			for i, hop := range p.Hops() {
				c, ok := g.Connection(p.Connections[i])
				require.True(t, ok)
				assert.Equal(t, hop, c.Edge())
			}
		}
	}
}

type recorder struct {
	transitions [][2]State
	steps       []Step
}

func (r *recorder) OnTransition(from, to State) { r.transitions = append(r.transitions, [2]State{from, to}) }
func (r *recorder) OnStep(s Step)               { r.steps = append(r.steps, s) }

func TestObserver(t *testing.T) {
	rec := &recorder{}
	es := edges([2]int{1, 2}, [2]int{2, 3})
	g := mustBuild(t, 3, es, WithObserver(Observers{NoopObserver{}, rec}))

	_, err := g.FindEulerianPath()
	require.NoError(t, err)
	g.Reset()

	assert.Equal(t, [][2]State{
		{StateUnbuilt, StateBuilt},
		{StateBuilt, StatePathComputed},
		{StatePathComputed, StateBuilt},
	}, rec.transitions)

	want := []Step{
		{Kind: StepTraverse, Level: 2, Connection: 0, Depth: 2},
		{Kind: StepTraverse, Level: 3, Connection: 1, Depth: 3},
		{Kind: StepBacktrack, Level: 3, Connection: -1, Depth: 2},
		{Kind: StepBacktrack, Level: 2, Connection: -1, Depth: 1},
		{Kind: StepBacktrack, Level: 1, Connection: -1, Depth: 0},
	}
	assert.Equal(t, want, rec.steps)
}

func TestObserverSkipsTraversalWhenUnbalanced(t *testing.T) {
	rec := &recorder{}
	g := mustBuild(t, 3, edges([2]int{1, 3}, [2]int{1, 2}), WithObserver(rec))

	p, err := g.FindEulerianPath()
	require.NoError(t, err)
	assert.False(t, p.Found)
	assert.Empty(t, rec.steps)
}

func TestWithNilObserver(t *testing.T) {
	g := mustBuild(t, 2, edges([2]int{1, 2}), WithObserver(nil))
	p, err := g.FindEulerianPath()
	require.NoError(t, err)
	assert.Equal(t, "1 -> 2", p.String())
}
