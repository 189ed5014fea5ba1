package dijkstra

import "github.com/katalvlaran/spgraph/core"

// Route is the result of a single source→target query.
//
// Unlike PathSize, it tells a zero-cost route apart from no route at all.
type Route[W core.Weight] struct {
	// Vertices lists the path from source to target, both included.
	// Nil when Reachable is false.
	Vertices []int

	// Cost is the total weight of the path; zero when Reachable is false.
	Cost W

	// Reachable reports whether target can be reached from source.
	Reachable bool
}

// Route runs a fresh query and returns the shortest route source→target.
// Panics with core.ErrVertexOutOfRange on an out-of-range index.
func (sp *ShortestPath[L, W]) Route(source, target int) Route[W] {
	core.CheckVertex(sp.g.VertexCount(), target)
	t := sp.Tree(source)
	path, ok := t.PathTo(target)
	if !ok {
		sp.logUnreachable(source, target)
		return Route[W]{}
	}
	cost, _ := t.Distance(target)

	return Route[W]{Vertices: path, Cost: cost, Reachable: true}
}

// Path returns the vertices of a shortest path from source to target.
//
// An unreachable target yields the degenerate one-element slice {target};
// callers must treat any result shorter than two vertices with
// source != target as "no path". Use Route for an explicit flag.
// Panics with core.ErrVertexOutOfRange on an out-of-range index.
func (sp *ShortestPath[L, W]) Path(source, target int) []int {
	r := sp.Route(source, target)
	if !r.Reachable {
		return []int{target}
	}

	return r.Vertices
}

// PathSize re-runs Path and sums EdgeValue over consecutive path vertices.
//
// It returns core.NoPath (-1) when that sum is exactly zero. Zero therefore
// stands for "no path", and also for source == target and for any route made
// only of zero-weight edges; Route.Reachable is the unambiguous test.
func (sp *ShortestPath[L, W]) PathSize(source, target int) W {
	path := sp.Path(source, target)
	var sum W
	for i := 0; i+1 < len(path); i++ {
		sum += sp.g.EdgeValue(path[i], path[i+1])
	}
	if sum == 0 {
		return core.NoPath[W]()
	}

	return sum
}

func (sp *ShortestPath[L, W]) logUnreachable(source, target int) {
	if sp.options.Logger == nil {
		return
	}
	sp.options.Logger.Debug("no path", "source", source, "target", target)
}
