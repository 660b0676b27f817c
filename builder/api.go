// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/shortpath/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate their parameters before touching g and
// return wrapped sentinel errors instead of panicking.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves the builder configuration from
// bopts, and applies cons in order. The first failing constructor aborts the
// build; its error is wrapped as "BuildGraph: ...".
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	if err := apply(g, newBuilderConfig(bopts...), cons); err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuildGraph, err)
	}

	return g, nil
}

// Extend applies cons to an existing graph. It is the composition point for
// fixtures that need different options per part, typically WithKeyBase to keep
// key ranges disjoint. A failing constructor may leave g partially extended.
func Extend(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("%s: nil graph: %w", methodExtend, ErrConstructFailed)
	}
	if err := apply(g, newBuilderConfig(bopts...), cons); err != nil {
		return fmt.Errorf("%s: %w", methodExtend, err)
	}

	return nil
}

func apply(g *core.Graph, cfg builderConfig, cons []Constructor) error {
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return err
		}
	}

	return nil
}

// addNodes inserts n nodes with keys cfg.keyFn(0..n-1) and returns the keys in
// index order.
func addNodes(method string, g *core.Graph, cfg builderConfig, n int) ([]core.NodeKey, error) {
	keys := make([]core.NodeKey, n)
	for i := 0; i < n; i++ {
		keys[i] = cfg.keyFn(i)
		if err := g.AddNode(keys[i]); err != nil {
			return nil, fmt.Errorf("%s: AddNode(%d): %w: %w", method, keys[i], ErrConstructFailed, err)
		}
	}

	return keys, nil
}

// addEdge inserts a single directed edge with the next configured weight.
func addEdge(method string, g *core.Graph, cfg builderConfig, from, to core.NodeKey) error {
	w := cfg.weight()
	if _, err := g.AddEdge(from, to, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d->%d, w=%d): %w: %w", method, from, to, w, ErrConstructFailed, err)
	}

	return nil
}

// addBoth inserts from->to and to->from, each with its own weight draw.
func addBoth(method string, g *core.Graph, cfg builderConfig, a, b core.NodeKey) error {
	if err := addEdge(method, g, cfg, a, b); err != nil {
		return err
	}

	return addEdge(method, g, cfg, b, a)
}
