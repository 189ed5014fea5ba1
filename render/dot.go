package render

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/awalterschulze/gographviz"

	"github.com/katalvlaran/spgraph/core"
)

// ErrBadRoute indicates a route that leaves the graph: an out-of-range
// vertex or a hop with no edge behind it.
var ErrBadRoute = errors.New("render: route is not a path in the graph")

const (
	dotGraphName      = "spgraph"
	dotColorRoute     = "steelblue2"
	dotColorRouteNode = "lightblue"
	dotColorEdge      = "black"
	dotColorNode      = "seashell2"
)

// DOT renders g as a Graphviz digraph. Each vertex becomes a node named by
// its index and each edge carries its weight as label. Edges between
// consecutive vertices of route, and the route's vertices, are highlighted.
// A nil or single-vertex route highlights at most that vertex.
func DOT[L any, W core.Weight](g core.Graph[L, W], route []int) (string, error) {
	n := g.VertexCount()
	onRoute := make(map[[2]int]bool, len(route))
	inRoute := make(map[int]bool, len(route))
	for i, v := range route {
		if v < 0 || v >= n {
			return "", fmt.Errorf("%w: vertex %d not in [0,%d)", ErrBadRoute, v, n)
		}
		inRoute[v] = true
		if i > 0 {
			u := route[i-1]
			if !g.Adjacent(u, v) {
				return "", fmt.Errorf("%w: no edge %d→%d", ErrBadRoute, u, v)
			}
			onRoute[[2]int{u, v}] = true
		}
	}

	graph := gographviz.NewGraph()
	if err := graph.SetName(dotGraphName); err != nil {
		return "", err
	}
	if err := graph.SetDir(true); err != nil {
		return "", err
	}
	for _, kv := range [][2]string{{"rankdir", "LR"}, {"nodesep", "0.5"}} {
		if err := graph.AddAttr(dotGraphName, kv[0], kv[1]); err != nil {
			return "", err
		}
	}

	for x := 0; x < n; x++ {
		attrs := map[string]string{
			"shape":     "circle",
			"style":     "filled",
			"fillcolor": dotColorNode,
		}
		if inRoute[x] {
			attrs["fillcolor"] = dotColorRouteNode
			attrs["penwidth"] = "2"
		}
		if err := graph.AddNode(dotGraphName, strconv.Itoa(x), attrs); err != nil {
			return "", err
		}
	}
	for x := 0; x < n; x++ {
		for _, nb := range g.Neighbors(x) {
			attrs := map[string]string{
				"label": strconv.Quote(fmt.Sprint(nb.Weight)),
				"color": dotColorEdge,
			}
			if onRoute[[2]int{x, nb.Vertex}] {
				attrs["color"] = dotColorRoute
				attrs["penwidth"] = "2"
			}
			if err := graph.AddEdge(strconv.Itoa(x), strconv.Itoa(nb.Vertex), true, attrs); err != nil {
				return "", err
			}
		}
	}

	return graph.String(), nil
}
