package policy

import (
	"fmt"

	"github.com/loom-ml/loom/internal/dtype"
)

// Class names used in serialized policy descriptors.
const (
	ClassFloat     = "FloatDTypePolicy"
	ClassQuantized = "QuantizedDTypePolicy"
)

// classRegistry maps descriptor class names to constructors. "DTypePolicy"
// is accepted as an alias for the float class for descriptors written by
// older versions.
var classRegistry = map[string]func(name string) (Policy, error){
	ClassFloat:     func(name string) (Policy, error) { return NewFloatDTypePolicy(name) },
	"DTypePolicy":  func(name string) (Policy, error) { return NewFloatDTypePolicy(name) },
	ClassQuantized: func(name string) (Policy, error) { return NewQuantizedDTypePolicy(name) },
}

// Serialize returns the JSON-compatible descriptor for a policy.
func Serialize(p Policy) map[string]any {
	class := ClassFloat
	if _, ok := p.(*QuantizedDTypePolicy); ok {
		class = ClassQuantized
	}
	return map[string]any{
		"class_name": class,
		"config":     map[string]any{"name": p.Name()},
	}
}

// Deserialize reconstructs a policy from a descriptor produced by Serialize.
func Deserialize(descriptor map[string]any) (Policy, error) {
	class, _ := descriptor["class_name"].(string)
	build, ok := classRegistry[class]
	if !ok {
		return nil, fmt.Errorf("%w: unknown policy class %q in descriptor %v", dtype.ErrInvalidArgument, class, descriptor)
	}
	cfg, _ := descriptor["config"].(map[string]any)
	name, _ := cfg["name"].(string)
	if name == "" {
		return nil, fmt.Errorf("%w: policy descriptor %v has no config name", dtype.ErrInvalidArgument, descriptor)
	}
	return build(name)
}
