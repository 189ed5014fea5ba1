package simulation

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/spgraph/core"
	"github.com/katalvlaran/spgraph/matrix"
)

// Backend selects the graph representation a scenario runs on.
type Backend string

const (
	// BackendList stores edges in per-vertex adjacency lists.
	BackendList Backend = "list"
	// BackendMatrix stores edges in a dense V×V matrix.
	BackendMatrix Backend = "matrix"
)

// ParseBackend maps a case-insensitive name to a Backend. The empty name
// selects BackendList.
func ParseBackend(name string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(name))); b {
	case "":
		return BackendList, nil
	case BackendList, BackendMatrix:
		return b, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
}

// Scenario describes one experiment.
type Scenario struct {
	Name      string  `json:"name" toml:"name"`
	Backend   Backend `json:"backend" toml:"backend"`
	Vertices  int     `json:"vertices" toml:"vertices"`
	Density   float64 `json:"density" toml:"density"`
	MinWeight float64 `json:"min_weight" toml:"min_weight"`
	MaxWeight float64 `json:"max_weight" toml:"max_weight"`
}

// DefaultScenarios returns the two reference experiments: 50 vertices at
// densities 0.2 and 0.4, weights uniform in [1,10).
func DefaultScenarios() []Scenario {
	return []Scenario{
		{Name: "sparse", Backend: BackendList, Vertices: 50, Density: 0.2, MinWeight: 1, MaxWeight: 10},
		{Name: "dense", Backend: BackendList, Vertices: 50, Density: 0.4, MinWeight: 1, MaxWeight: 10},
	}
}

// Validate checks the scenario fields Run depends on. Density is left to
// the builder, which reports builder.ErrInvalidProbability.
func (s Scenario) Validate() error {
	if s.Vertices < 1 {
		return fmt.Errorf("%w: vertices=%d", ErrTooFewVertices, s.Vertices)
	}
	if s.MinWeight < 0 || s.MaxWeight < s.MinWeight {
		return fmt.Errorf("%w: [%g,%g]", ErrBadWeightRange, s.MinWeight, s.MaxWeight)
	}
	if _, err := ParseBackend(string(s.Backend)); err != nil {
		return err
	}

	return nil
}

// newGraph allocates an empty graph of the scenario's backend.
func (s Scenario) newGraph() core.Graph[struct{}, float64] {
	if s.Backend == BackendMatrix {
		return matrix.New[struct{}, float64](s.Vertices)
	}

	return core.NewAdjacencyList[struct{}, float64](s.Vertices)
}
