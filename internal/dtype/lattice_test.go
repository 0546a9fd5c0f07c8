package dtype

import (
	"errors"
	"strings"
	"testing"
)

func TestLatticeCoversVocabulary(t *testing.T) {
	lattice := promotionLattice()
	for _, name := range AllowedDTypes() {
		if _, ok := lattice[name]; !ok {
			t.Errorf("lattice has no node for dtype %q", name)
		}
	}
	for _, name := range weakTypes {
		if _, ok := lattice[name]; !ok {
			t.Errorf("lattice has no node for weak category %q", name)
		}
	}
	if got, want := len(lattice), len(allowedDTypes)+len(weakTypes); got != want {
		t.Errorf("lattice has %d nodes, want %d", got, want)
	}
}

func TestLatticeEdgesStayInVocabulary(t *testing.T) {
	lattice := promotionLattice()
	for node, ups := range lattice {
		for _, up := range ups {
			if _, ok := lattice[up]; !ok {
				t.Errorf("edge %s -> %s leaves the lattice", node, up)
			}
		}
	}
}

func TestUpperBoundsReflexive(t *testing.T) {
	for node, bounds := range latticeUpperBounds() {
		if _, ok := bounds[node]; !ok {
			t.Errorf("upper bounds of %q do not contain %q itself", node, node)
		}
	}
}

func TestUpperBoundsContainNeighborClosures(t *testing.T) {
	lattice := promotionLattice()
	upperBounds := latticeUpperBounds()
	for node, ups := range lattice {
		for _, up := range ups {
			if !containsAll(upperBounds[node], upperBounds[up]) {
				t.Errorf("upper bounds of %q do not contain the closure of neighbor %q", node, up)
			}
		}
	}
}

func TestUpperBoundsTerminal(t *testing.T) {
	bounds := latticeUpperBounds()["complex128"]
	if len(bounds) != 1 {
		t.Errorf("complex128 should be terminal, got upper bounds %v", bounds)
	}
}

func TestCycleDetection(t *testing.T) {
	cyclic := map[string][]string{
		"a": {"b"},
		"b": {"c"},
		"c": {"a"},
	}
	_, err := upperBoundsOf(cyclic)
	if !errors.Is(err, ErrCycleDetected) {
		t.Fatalf("upperBoundsOf(cyclic) error = %v, want ErrCycleDetected", err)
	}
	if !strings.Contains(err.Error(), "node") {
		t.Errorf("cycle error %q does not name the offending node", err)
	}
}

func TestSelfLoopDetection(t *testing.T) {
	if _, err := upperBoundsOf(map[string][]string{"a": {"a"}}); !errors.Is(err, ErrCycleDetected) {
		t.Fatalf("self loop not detected, error = %v", err)
	}
}
