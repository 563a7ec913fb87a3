package levels

// Solve builds a graph of numLevels levels from edges and returns its
// Eulerian path from level 1 to level numLevels.
//
// A graph without such a path yields [Impossible] and a nil error. Errors
// are reserved for malformed input: numLevels < 1 (INVALID_LEVEL_COUNT) or
// an endpoint outside [1, numLevels] (INVALID_EDGE).
func Solve(numLevels int, edges []Edge, opts ...Option) (Path, error) {
	g, err := New(numLevels, opts...)
	if err != nil {
		return Impossible, err
	}
	if err := g.Build(edges); err != nil {
		return Impossible, err
	}
	return g.FindEulerianPath()
}
