package dtype

import (
	"fmt"
	"sort"

	"github.com/loom-ml/loom/internal/config"
)

// Dtype name groups. The union of these groups is the closed vocabulary every
// promotion and policy decision is made over.
var (
	boolTypes    = []string{"bool"}
	intTypes     = []string{"uint8", "uint16", "uint32", "uint64", "int8", "int16", "int32", "int64"}
	floatTypes   = []string{"bfloat16", "float16", "float32", "float64"}
	complexTypes = []string{"complex64", "complex128"}

	// Weak category names used as lattice nodes for untyped literals.
	weakTypes = []string{"int", "float", "complex"}
)

var allowedDTypes = func() map[string]struct{} {
	set := make(map[string]struct{})
	for _, group := range [][]string{boolTypes, intTypes, floatTypes, complexTypes} {
		for _, name := range group {
			set[name] = struct{}{}
		}
	}
	return set
}()

// AllowedDTypes returns the sorted list of canonical dtype names.
func AllowedDTypes() []string {
	names := make([]string, 0, len(allowedDTypes))
	for name := range allowedDTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsAllowed reports whether name is a canonical dtype name.
func IsAllowed(name string) bool {
	_, ok := allowedDTypes[name]
	return ok
}

// WeakType marks an operand whose dtype comes from an untyped numeric literal
// and is unconstrained until unified with the other operands.
type WeakType int

// Weak markers. They stand in for the untyped integer and float literals of
// the host language; there is no weak complex literal, the weak complex
// category is only reachable through the promotion lattice.
const (
	WeakInt WeakType = iota
	WeakFloat
)

// String returns the weak category name used on the promotion lattice.
func (w WeakType) String() string {
	switch w {
	case WeakInt:
		return "int"
	case WeakFloat:
		return "float"
	default:
		return "unknown"
	}
}

// strong returns the strongly-typed counterpart of the weak marker.
func (w WeakType) strong() string {
	switch w {
	case WeakInt:
		return "int64"
	case WeakFloat:
		return "float64"
	default:
		panic("unknown weak type")
	}
}

// Standardize normalizes a dtype-like value into a canonical vocabulary name.
// It accepts a dtype name string, a DataType, a weak marker (standardized to
// its strong counterpart), or nil (standardized to the configured floatx).
func Standardize(value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return config.FloatX(), nil
	case string:
		if IsAllowed(v) {
			return v, nil
		}
		return "", fmt.Errorf("%w: expected one of %v, received %q", ErrInvalidDType, AllowedDTypes(), v)
	case DataType:
		return v.String(), nil
	case WeakType:
		return v.strong(), nil
	}
	return "", fmt.Errorf("%w: cannot interpret %v (%T) as a dtype", ErrInvalidDType, value, value)
}
