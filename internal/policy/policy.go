// Package policy implements dtype policies: bundles of compute and variable
// precision, optionally quantized, resolved from user-facing identifiers.
package policy

import (
	"fmt"
	"strings"

	"github.com/loom-ml/loom/internal/dtype"
)

// Policy determines the compute and variable dtypes used by a computational
// unit such as a layer or a variable.
type Policy interface {
	// Name returns the canonical policy name, e.g. "float32" or "mixed_float16".
	Name() string
	// ComputeDType returns the dtype computations are performed in.
	ComputeDType() string
	// VariableDType returns the dtype variables are stored in.
	VariableDType() string
}

// FloatDTypePolicy is a floating-point precision policy. Mixed policies
// compute in reduced precision while keeping variables in float32.
type FloatDTypePolicy struct {
	name     string
	compute  string
	variable string
}

// NewFloatDTypePolicy parses a policy name into a float policy. Valid names
// are "mixed_float16", "mixed_bfloat16", and any canonical dtype name, which
// yields a uniform policy.
func NewFloatDTypePolicy(name string) (*FloatDTypePolicy, error) {
	compute, variable, err := parsePolicyName(name)
	if err != nil {
		return nil, err
	}
	return &FloatDTypePolicy{name: name, compute: compute, variable: variable}, nil
}

func parsePolicyName(name string) (compute, variable string, err error) {
	switch name {
	case "mixed_float16":
		return "float16", "float32", nil
	case "mixed_bfloat16":
		return "bfloat16", "float32", nil
	}
	dt, err := dtype.Standardize(name)
	if err != nil {
		return "", "", fmt.Errorf("%w: cannot convert %q to a dtype policy; valid policies are a dtype name, \"mixed_float16\" or \"mixed_bfloat16\"", dtype.ErrInvalidArgument, name)
	}
	return dt, dt, nil
}

// Name returns the policy name.
func (p *FloatDTypePolicy) Name() string { return p.name }

// ComputeDType returns the compute dtype.
func (p *FloatDTypePolicy) ComputeDType() string { return p.compute }

// VariableDType returns the variable storage dtype.
func (p *FloatDTypePolicy) VariableDType() string { return p.variable }

// String implements fmt.Stringer.
func (p *FloatDTypePolicy) String() string { return p.name }

// Quantization modes supported by QuantizedDTypePolicy.
const (
	ModeInt8   = "int8"
	ModeFloat8 = "float8"
)

// QuantizedDTypePolicy is a quantized policy of the form
// "<mode>_from_<policy>". The source float policy governs the non-quantized
// parts of a computational unit.
type QuantizedDTypePolicy struct {
	name   string
	mode   string
	source *FloatDTypePolicy
}

// NewQuantizedDTypePolicy parses a quantized policy name such as
// "int8_from_float32" or "int8_from_mixed_bfloat16".
func NewQuantizedDTypePolicy(name string) (*QuantizedDTypePolicy, error) {
	mode, sourceName, ok := strings.Cut(name, "_from_")
	if !ok || (mode != ModeInt8 && mode != ModeFloat8) {
		return nil, fmt.Errorf("%w: cannot convert %q to a quantized dtype policy; expected \"<mode>_from_<policy>\" with mode %q or %q", dtype.ErrInvalidArgument, name, ModeInt8, ModeFloat8)
	}
	source, err := NewFloatDTypePolicy(sourceName)
	if err != nil {
		return nil, err
	}
	return &QuantizedDTypePolicy{name: name, mode: mode, source: source}, nil
}

// Name returns the policy name.
func (p *QuantizedDTypePolicy) Name() string { return p.name }

// ComputeDType returns the compute dtype of the source float policy.
func (p *QuantizedDTypePolicy) ComputeDType() string { return p.source.ComputeDType() }

// VariableDType returns the variable storage dtype of the source float policy.
func (p *QuantizedDTypePolicy) VariableDType() string { return p.source.VariableDType() }

// QuantizationMode returns the quantization mode, "int8" or "float8".
func (p *QuantizedDTypePolicy) QuantizationMode() string { return p.mode }

// String implements fmt.Stringer.
func (p *QuantizedDTypePolicy) String() string { return p.name }
