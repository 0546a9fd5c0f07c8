// Copyright 2025 Loom ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package policy

import (
	"github.com/loom-ml/loom/internal/policy"
)

// Type aliases for public API

// Policy determines the compute and variable dtypes used by a computational unit.
type Policy = policy.Policy

// FloatDTypePolicy is a floating-point precision policy.
type FloatDTypePolicy = policy.FloatDTypePolicy

// QuantizedDTypePolicy is a quantized policy of the form "<mode>_from_<policy>".
type QuantizedDTypePolicy = policy.QuantizedDTypePolicy

// Quantization modes.
const (
	ModeInt8   = policy.ModeInt8
	ModeFloat8 = policy.ModeFloat8
)

// Constructors

// NewFloatDTypePolicy parses a policy name such as "float32" or
// "mixed_float16" into a float policy.
func NewFloatDTypePolicy(name string) (*FloatDTypePolicy, error) {
	return policy.NewFloatDTypePolicy(name)
}

// NewQuantizedDTypePolicy parses a quantized policy name such as
// "int8_from_float32".
func NewQuantizedDTypePolicy(name string) (*QuantizedDTypePolicy, error) {
	return policy.NewQuantizedDTypePolicy(name)
}

// Resolution

// Get resolves a policy identifier (nil, a Policy, a descriptor map, or a
// policy name string) into a Policy.
func Get(identifier any) (Policy, error) {
	return policy.Get(identifier)
}

// GetWith is Get with an explicit policy used for a nil identifier in place
// of the process default.
func GetWith(fallback Policy, identifier any) (Policy, error) {
	return policy.GetWith(fallback, identifier)
}

// Default returns the process-wide default dtype policy.
func Default() Policy {
	return policy.Default()
}

// SetDefault sets the process-wide default dtype policy. Passing nil reverts
// to the floatx-derived default.
func SetDefault(p Policy) {
	policy.SetDefault(p)
}

// Serialization

// Serialize returns the JSON-compatible descriptor for a policy.
func Serialize(p Policy) map[string]any {
	return policy.Serialize(p)
}

// Deserialize reconstructs a policy from a descriptor produced by Serialize.
func Deserialize(descriptor map[string]any) (Policy, error) {
	return policy.Deserialize(descriptor)
}
