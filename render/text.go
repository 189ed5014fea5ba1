package render

import (
	"fmt"
	"io"

	"github.com/katalvlaran/spgraph/core"
)

// Text writes a listing of g to w:
//
//	<title>
//	Number of vertices: V
//	Number of edges: E
//	V0: [1, w7] [2, w9]
//	...
//
// The title line is omitted when title is empty. Vertices without outgoing
// edges still get their "V<i>:" line.
func Text[L any, W core.Weight](w io.Writer, title string, g core.Graph[L, W]) error {
	ew := &errWriter{w: w}
	if title != "" {
		ew.printf("%s\n", title)
	}
	ew.printf("Number of vertices: %d\n", g.VertexCount())
	ew.printf("Number of edges: %d\n", g.EdgeCount())
	for x := 0; x < g.VertexCount(); x++ {
		ew.printf("V%d:", x)
		for _, nb := range g.Neighbors(x) {
			ew.printf(" [%d, w%v]", nb.Vertex, nb.Weight)
		}
		ew.printf("\n")
	}

	return ew.err
}

// errWriter keeps the first write error and turns later writes into no-ops.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
