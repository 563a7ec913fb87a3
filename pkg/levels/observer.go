package levels

// State is a position in the graph lifecycle.
type State int

const (
	// StateUnbuilt is a graph with levels but no connections yet.
	StateUnbuilt State = iota
	// StateBuilt is a graph whose connections are in place.
	StateBuilt
	// StatePathComputed is a graph whose result is fixed.
	StatePathComputed
)

// String returns a lower-case name for the state.
func (s State) String() string {
	switch s {
	case StateUnbuilt:
		return "unbuilt"
	case StateBuilt:
		return "built"
	case StatePathComputed:
		return "path-computed"
	}
	return "unknown"
}

// StepKind distinguishes the two moves of the traversal.
type StepKind int

const (
	// StepTraverse walks an unused connection and pushes its target.
	StepTraverse StepKind = iota
	// StepBacktrack pops a level with no unused connections onto the output.
	StepBacktrack
)

// String returns "traverse" or "backtrack".
func (k StepKind) String() string {
	if k == StepBacktrack {
		return "backtrack"
	}
	return "traverse"
}

// Step describes one move of the traversal.
type Step struct {
	Kind StepKind
	// Level is the level pushed (traverse) or popped (backtrack).
	Level int
	// Connection is the arena index walked on a traverse step, -1 otherwise.
	Connection int
	// Depth is the stack size after the move.
	Depth int
}

// Observer receives lifecycle and traversal notifications from a [Graph].
// Implementations must not call back into the graph.
type Observer interface {
	OnTransition(from, to State)
	OnStep(s Step)
}

// NoopObserver ignores every notification.
type NoopObserver struct{}

func (NoopObserver) OnTransition(State, State) {}
func (NoopObserver) OnStep(Step)               {}

// Observers fans notifications out to several observers in order.
type Observers []Observer

func (obs Observers) OnTransition(from, to State) {
	for _, o := range obs {
		o.OnTransition(from, to)
	}
}

func (obs Observers) OnStep(s Step) {
	for _, o := range obs {
		o.OnStep(s)
	}
}
