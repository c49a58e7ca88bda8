package builder

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/grava/core"
)

var (
	// ErrTooFewNodes means a constructor received a node count below the
	// minimum its topology needs.
	ErrTooFewNodes = errors.New("builder: too few nodes for topology")

	// ErrBadProbability means an edge probability fell outside [0, 1].
	ErrBadProbability = errors.New("builder: probability outside [0, 1]")
)

// defaultSeed fixes the PRNG when the caller does not choose one, keeping
// unseeded builds reproducible.
const defaultSeed = 1

// Constructor applies one deterministic topology mutation to g. A
// constructor validates its parameters first and returns a sentinel error
// without partial cleanup; Build stops at the first failure.
type Constructor func(g *core.Graph, cfg builderConfig) error

// builderConfig is the resolved build configuration shared by every
// constructor in one Build call.
type builderConfig struct {
	rng      *rand.Rand
	weightFn func(*rand.Rand) float64
}

// BuilderOption adjusts the build configuration.
type BuilderOption func(*builderConfig)

// WithSeed fixes the PRNG seed used by stochastic constructors and weight
// functions.
func WithSeed(seed uint64) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithWeightFn sets the function producing edge weights on weighted
// graphs. The default assigns weight 1 to every edge.
func WithWeightFn(fn func(*rand.Rand) float64) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.weightFn = fn
	}
}

// Build creates a graph with the given graph options, resolves the build
// configuration, and applies the constructors in order. The first
// constructor error aborts the build.
//
// Complexity: the sum of the constructors' costs.
func Build(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := builderConfig{
		rng:      rand.New(rand.NewPCG(defaultSeed, defaultSeed)),
		weightFn: func(*rand.Rand) float64 { return 1 },
	}
	for _, opt := range bopts {
		opt(&cfg)
	}
	for _, con := range cons {
		if err := con(g, cfg); err != nil {
			return nil, fmt.Errorf("builder: %w", err)
		}
	}

	return g, nil
}

// addEdge inserts one edge respecting the graph's weight mode.
func addEdge(g *core.Graph, cfg builderConfig, u, v uint32) error {
	if g.Weighted() {
		return g.AddEdgeWeight(u, v, cfg.weightFn(cfg.rng))
	}

	return g.AddEdge(u, v)
}
