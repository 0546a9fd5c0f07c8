package policy

import (
	"fmt"
	"strings"
	"sync"

	"github.com/loom-ml/loom/internal/config"
	"github.com/loom-ml/loom/internal/dtype"
)

var (
	defaultMu     sync.RWMutex
	defaultPolicy Policy
)

// Default returns the process-wide default dtype policy. Unless overridden
// with SetDefault, it is a uniform policy at the configured floatx.
func Default() Policy {
	defaultMu.RLock()
	p := defaultPolicy
	defaultMu.RUnlock()
	if p != nil {
		return p
	}
	// floatx values are always valid uniform policy names.
	p, err := NewFloatDTypePolicy(config.FloatX())
	if err != nil {
		panic(err)
	}
	return p
}

// SetDefault sets the process-wide default dtype policy. Passing nil reverts
// to the floatx-derived default.
func SetDefault(p Policy) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultPolicy = p
}

// Get resolves a policy identifier into a Policy:
//   - nil returns the process default,
//   - a Policy is returned unchanged,
//   - a map descriptor is deserialized,
//   - a string containing "int8" becomes a quantized policy,
//   - any other string becomes a float policy,
//   - anything else is standardized as a dtype name and wrapped.
func Get(identifier any) (Policy, error) {
	return GetWith(nil, identifier)
}

// GetWith is Get with an explicit policy returned for a nil identifier in
// place of the process default. A nil fallback means the process default.
func GetWith(fallback Policy, identifier any) (Policy, error) {
	switch v := identifier.(type) {
	case nil:
		if fallback != nil {
			return fallback, nil
		}
		return Default(), nil
	case Policy:
		return v, nil
	case map[string]any:
		return Deserialize(v)
	case string:
		if strings.Contains(v, "int8") {
			return NewQuantizedDTypePolicy(v)
		}
		return NewFloatDTypePolicy(v)
	}
	dt, err := dtype.Standardize(identifier)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot interpret dtype policy identifier; expected a string, a policy instance or a policy descriptor, received %v (%T)", dtype.ErrInvalidArgument, identifier, identifier)
	}
	return NewFloatDTypePolicy(dt)
}
