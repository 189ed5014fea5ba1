// Package simulation runs the Monte Carlo average-path-length experiment:
// generate a random undirected graph of a given size and edge density, then
// average the shortest-path cost from vertex 0 to every other reachable vertex.
//
// A Scenario names the backend ("list" or "matrix"), the vertex count, the
// density and the uniform weight range. Run executes one scenario and returns
// a Report tagged with a fresh run ID; RunAll executes several in order,
// sharing one RNG so that a seed reproduces the whole batch.
//
// Randomness is explicit: pass WithSeed or WithRand for reproducible runs.
// Without either, Run seeds from the clock.
package simulation
