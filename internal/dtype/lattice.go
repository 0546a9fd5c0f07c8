package dtype

import (
	"fmt"
	"sync"
)

// nodeSet is a set of lattice node names.
type nodeSet map[string]struct{}

// promotionLattice returns the type promotion DAG, mapping each lattice node
// to its immediate upper neighbors. The shape follows JAX's promotion lattice:
// unsigned ints promote into the next wider signed/unsigned pair, 64-bit ints
// promote only into the weak float category, and the weak float category fans
// out into the 16-bit floats and the weak complex category.
func promotionLattice() map[string][]string {
	return map[string][]string{
		"bool":       {"int"},
		"uint8":      {"int16", "uint16"},
		"uint16":     {"int32", "uint32"},
		"uint32":     {"int64", "uint64"},
		"uint64":     {"float"},
		"int":        {"uint8", "int8"},
		"int8":       {"int16"},
		"int16":      {"int32"},
		"int32":      {"int64"},
		"int64":      {"float"},
		"float":      {"bfloat16", "float16", "complex"},
		"bfloat16":   {"float32"},
		"float16":    {"float32"},
		"float32":    {"float64", "complex64"},
		"float64":    {"complex128"},
		"complex":    {"complex64"},
		"complex64":  {"complex128"},
		"complex128": {},
	}
}

// upperBoundsOf computes, for every node of the given lattice, the set of all
// nodes reachable upward, including the node itself. Each closure is grown to
// a fixed point; a node re-entering its own closure through iteration means
// the edge table has a cycle.
func upperBoundsOf(lattice map[string][]string) (map[string]nodeSet, error) {
	upperBounds := make(map[string]nodeSet, len(lattice))
	for node := range lattice {
		upperBounds[node] = nodeSet{node: {}}
	}
	for node := range lattice {
		for {
			next := nodeSet{}
			for bound := range upperBounds[node] {
				for _, above := range lattice[bound] {
					next[above] = struct{}{}
				}
			}
			if _, ok := next[node]; ok {
				return nil, fmt.Errorf("%w: node %q", ErrCycleDetected, node)
			}
			grew := false
			for above := range next {
				if _, ok := upperBounds[node][above]; !ok {
					upperBounds[node][above] = struct{}{}
					grew = true
				}
			}
			if !grew {
				break
			}
		}
	}
	return upperBounds, nil
}

// latticeUpperBounds returns the upward closure of the production lattice,
// built once on first use. A cycle here is a defect in the edge table above,
// never a runtime condition, so it is fatal.
var latticeUpperBounds = sync.OnceValue(func() map[string]nodeSet {
	upperBounds, err := upperBoundsOf(promotionLattice())
	if err != nil {
		panic(err)
	}
	return upperBounds
})
