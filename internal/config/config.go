// Package config holds process-wide framework configuration: the default
// float dtype, the numeric fuzz factor, and the active backend name.
//
// The values are ordinary global settings mutated only by explicit user
// action. Reads and writes are guarded, but callers mutating configuration
// while computations are in flight own the resulting ordering hazard.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// Defaults applied until a setter or a settings file overrides them.
const (
	DefaultFloatX  = "float32"
	DefaultEpsilon = 1e-7
	DefaultBackend = "cpu"
)

var (
	mu          sync.RWMutex
	floatx      = DefaultFloatX
	epsilon     = DefaultEpsilon
	backendName = DefaultBackend
)

// FloatX returns the default float dtype.
func FloatX() string {
	mu.RLock()
	defer mu.RUnlock()
	return floatx
}

// SetFloatX sets the default float dtype. Valid values are "bfloat16",
// "float16", "float32" and "float64".
func SetFloatX(value string) error {
	switch value {
	case "bfloat16", "float16", "float32", "float64":
	default:
		return fmt.Errorf("invalid floatx %q: expected one of bfloat16, float16, float32, float64", value)
	}
	mu.Lock()
	defer mu.Unlock()
	floatx = value
	return nil
}

// Epsilon returns the fuzz factor used to avoid division by zero in
// numeric code.
func Epsilon() float64 {
	mu.RLock()
	defer mu.RUnlock()
	return epsilon
}

// SetEpsilon sets the fuzz factor.
func SetEpsilon(value float64) {
	mu.Lock()
	defer mu.Unlock()
	epsilon = value
}

// Backend returns the active backend name. This package only stores the
// name; backend runtimes interpret it.
func Backend() string {
	mu.RLock()
	defer mu.RUnlock()
	return backendName
}

// SetBackend sets the active backend name.
func SetBackend(value string) {
	mu.Lock()
	defer mu.Unlock()
	backendName = value
}

// Settings is the on-disk JSON form of the process configuration.
type Settings struct {
	FloatX  string  `json:"floatx"`  // Default float dtype
	Epsilon float64 `json:"epsilon"` // Numeric fuzz factor
	Backend string  `json:"backend"` // Active backend name
}

// Snapshot returns the current configuration values.
func Snapshot() Settings {
	mu.RLock()
	defer mu.RUnlock()
	return Settings{FloatX: floatx, Epsilon: epsilon, Backend: backendName}
}

// LoadFile reads a settings file from path and applies it.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	s := Snapshot()
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	if err := SetFloatX(s.FloatX); err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	SetEpsilon(s.Epsilon)
	SetBackend(s.Backend)
	return nil
}

// SaveFile writes the current settings to path.
func SaveFile(path string) error {
	data, err := json.MarshalIndent(Snapshot(), "", "    ")
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
