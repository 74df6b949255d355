package graph

import (
	"fmt"
	"sort"
)

// CycleError reports a directed cycle in the dependency graph. Node is the
// first node whose visit re-entered itself.
type CycleError struct {
	Node string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("circular dependency detected involving: %s", e.Node)
}

// Sort returns the graph's nodes in dependency-first order: every declared
// dependency present in the graph precedes its dependent. Dangling
// dependencies are skipped; only the external compiler can decide what to do
// about missing sources. Roots are visited in sorted name order so the
// resulting compile command line is stable across runs.
func Sort(g Graph) ([]string, error) {
	order := make([]string, 0, len(g))
	done := make(map[string]bool, len(g))
	onStack := make(map[string]bool, len(g))

	var visit func(name string) error
	visit = func(name string) error {
		if onStack[name] {
			return &CycleError{Node: name}
		}
		if done[name] {
			return nil
		}
		onStack[name] = true

		for _, dep := range g[name].Deps {
			if _, ok := g[dep]; !ok {
				continue
			}
			if err := visit(dep); err != nil {
				return err
			}
		}

		delete(onStack, name)
		done[name] = true
		order = append(order, name)
		return nil
	}

	names := make([]string, 0, len(g))
	for name := range g {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := visit(name); err != nil {
			return nil, err
		}
	}
	return order, nil
}
