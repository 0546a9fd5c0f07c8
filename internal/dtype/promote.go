package dtype

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/loom-ml/loom/internal/config"
)

// Pure-function memo caches. Entries are never evicted or rewritten, so
// concurrent duplicate computation is harmless and reads need no locking.
var (
	lubCache         sync.Map // sorted node-set key -> dtype name
	weakResolveCache sync.Map // "dtype precision" key -> dtype name
)

// leastUpperBound computes the least upper bound of the given nodes on the
// promotion lattice. Results are memoized on the unordered node set.
func leastUpperBound(nodes ...string) (string, error) {
	set := make(nodeSet, len(nodes))
	for _, n := range nodes {
		set[n] = struct{}{}
	}
	uniq := make([]string, 0, len(set))
	for n := range set {
		uniq = append(uniq, n)
	}
	sort.Strings(uniq)
	key := strings.Join(uniq, " ")
	if cached, ok := lubCache.Load(key); ok {
		return cached.(string), nil
	}

	out, err := leastUpperBoundIn(latticeUpperBounds(), uniq)
	if err != nil {
		return "", err
	}
	lubCache.LoadOrStore(key, out)
	return out, nil
}

// leastUpperBoundIn solves the LUB over an arbitrary upper-bound table.
//
// With UB(n) the set of upper bounds of n, the common upper bounds of a node
// set N are CUB(N) = intersection of UB(n) for n in N, and the least upper
// bound is the unique c in CUB(N) with CUB(N) a subset of UB(c). Since every
// n in N satisfies CUB(N) subset of UB(n), any input node that is itself a
// common upper bound is the answer (fast path).
func leastUpperBoundIn(upperBounds map[string]nodeSet, nodes []string) (string, error) {
	if len(nodes) == 0 {
		return "", fmt.Errorf("%w: least upper bound of an empty node set", ErrInvalidArgument)
	}
	bounds := make([]nodeSet, len(nodes))
	for i, n := range nodes {
		b, ok := upperBounds[n]
		if !ok {
			return "", fmt.Errorf("%w: %q is not a valid dtype for type promotion", ErrInvalidDType, n)
		}
		bounds[i] = b
	}

	cub := nodeSet{}
	for c := range bounds[0] {
		shared := true
		for _, b := range bounds[1:] {
			if _, ok := b[c]; !ok {
				shared = false
				break
			}
		}
		if shared {
			cub[c] = struct{}{}
		}
	}

	var lub []string
	for _, n := range nodes {
		if _, ok := cub[n]; ok {
			lub = append(lub, n)
		}
	}
	if len(lub) == 0 {
		for c := range cub {
			if containsAll(upperBounds[c], cub) {
				lub = append(lub, c)
			}
		}
	}

	switch len(lub) {
	case 1:
		return lub[0], nil
	case 0:
		return "", fmt.Errorf("%w: input dtypes %v have no common supertype on the promotion lattice; cast inputs to the desired type explicitly", ErrNoPromotionPath, nodes)
	default:
		sort.Strings(lub)
		return "", fmt.Errorf("%w: %v do not have a unique least upper bound, candidates are %v", ErrIllFormedLattice, nodes, lub)
	}
}

// containsAll reports whether every member of sub is in super.
func containsAll(super, sub nodeSet) bool {
	for n := range sub {
		if _, ok := super[n]; !ok {
			return false
		}
	}
	return true
}

// respectWeakType maps a (dtype, weak) pair onto its promotion lattice node.
// Booleans never weaken; weak floats and ints collapse into their weak
// category nodes.
func respectWeakType(dt string, weak bool) (string, error) {
	if !weak {
		return dt, nil
	}
	switch {
	case dt == "bool":
		return dt, nil
	case strings.Contains(dt, "float"):
		return "float", nil
	case strings.Contains(dt, "int"):
		return "int", nil
	}
	return "", fmt.Errorf("%w: expected one of %v, received %q", ErrInvalidDType, AllowedDTypes(), dt)
}

// resolveWeakType resolves a weak lattice node back into a concrete dtype at
// the given bit precision ("16", "32" or "64"). Memoized.
func resolveWeakType(dt, precision string) (string, error) {
	key := dt + " " + precision
	if cached, ok := weakResolveCache.Load(key); ok {
		return cached.(string), nil
	}
	if !IsAllowed(dt) && !isWeakName(dt) {
		return "", fmt.Errorf("%w: expected one of %v or a weak category %v, received %q", ErrInvalidArgument, AllowedDTypes(), weakTypes, dt)
	}
	switch precision {
	case "16", "32", "64":
	default:
		return "", fmt.Errorf("%w: expected precision \"16\", \"32\" or \"64\", received %q", ErrInvalidArgument, precision)
	}

	// bfloat16 would otherwise read as boolean-family from its first letter.
	indicator := dt[:1]
	if dt == "bfloat16" {
		indicator = "f"
	}

	var out string
	switch indicator {
	case "b":
		out = "bool"
	case "i":
		out = "int" + precision
	case "u":
		out = "uint" + precision
	default:
		out = "float" + precision
	}
	weakResolveCache.LoadOrStore(key, out)
	return out, nil
}

func isWeakName(dt string) bool {
	for _, w := range weakTypes {
		if dt == w {
			return true
		}
	}
	return false
}

// dtypeAndWeakType classifies a dtype-like value into a (dtype, weak) pair.
func dtypeAndWeakType(value any) (string, bool, error) {
	if w, ok := value.(WeakType); ok {
		return w.strong(), true, nil
	}
	dt, err := Standardize(value)
	return dt, false, err
}

// ResultType returns the dtype produced by combining the given values under
// the framework's promotion rules. Each value may be a dtype name, a
// DataType, a weak marker (WeakInt, WeakFloat), or nil for the configured
// floatx. With no arguments it returns the configured floatx.
func ResultType(values ...any) (string, error) {
	return ResultTypeWith(config.FloatX(), values...)
}

// ResultTypeWith is ResultType with an explicit default float dtype in place
// of the process-wide floatx setting. Callers that must not observe global
// configuration changes pass their own.
func ResultTypeWith(floatx string, values ...any) (string, error) {
	if len(values) == 0 {
		return floatx, nil
	}

	dts := make([]string, len(values))
	weaks := make([]bool, len(values))
	for i, v := range values {
		if v == nil {
			v = floatx
		}
		dt, weak, err := dtypeAndWeakType(v)
		if err != nil {
			return "", err
		}
		dts[i], weaks[i] = dt, weak
	}

	allSame, allWeak := true, true
	for i := range dts {
		if dts[i] != dts[0] {
			allSame = false
		}
		if !weaks[i] {
			allWeak = false
		}
	}

	var outDtype string
	var outWeak bool
	var err error
	switch {
	case len(dts) == 1:
		outDtype, outWeak = dts[0], weaks[0]
	case allSame && !allWeak:
		// Trivial promotion. This also lets identical extended dtypes
		// through without forcing them onto the lattice.
		outDtype, outWeak = dts[0], false
	case allWeak:
		// Bound the strongly-typed counterparts and re-apply weakness at
		// the end; promoting the weak category nodes directly would route
		// through non-canonical weak widths such as weak int16.
		outDtype, err = leastUpperBound(dts...)
		if err != nil {
			return "", err
		}
		outWeak = true
	default:
		nodes := make([]string, len(dts))
		for i := range dts {
			nodes[i], err = respectWeakType(dts[i], weaks[i])
			if err != nil {
				return "", err
			}
		}
		outDtype, err = leastUpperBound(nodes...)
		if err != nil {
			return "", err
		}
		outWeak = isWeakName(outDtype)
	}

	if outDtype == "bool" {
		outWeak = false
	}
	if outWeak {
		outDtype, err = resolveWeakType(outDtype, floatx[len(floatx)-2:])
		if err != nil {
			return "", err
		}
	}
	return outDtype, nil
}

// Bit-width narrowing tables used by mixed precision utilities to downcast
// promotion results onto a reduced-precision compute dtype.
var (
	bit64ToBit32 = map[string]string{
		"int64":      "int32",
		"uint64":     "uint32",
		"float64":    "float32",
		"complex128": "complex64",
	}
	bit64ToBit16 = map[string]string{
		"int32":   "int16",
		"int64":   "int16",
		"uint32":  "uint16",
		"uint64":  "uint16",
		"float32": "float16",
		"float64": "float16",
	}
)

// DowncastTo32 returns the 32-bit counterpart of a 64-bit dtype name.
// The second result is false when the dtype has no 32-bit narrowing.
func DowncastTo32(dt string) (string, bool) {
	out, ok := bit64ToBit32[dt]
	return out, ok
}

// DowncastTo16 returns the 16-bit counterpart of a 32- or 64-bit dtype name.
// The second result is false when the dtype has no 16-bit narrowing.
func DowncastTo16(dt string) (string, bool) {
	out, ok := bit64ToBit16[dt]
	return out, ok
}
