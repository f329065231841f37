package environ

import (
	"os"
	"strings"
	"sync"
)

// osEnvironment reads and writes the real process environment.
type osEnvironment struct{}

// OS returns the Environment backed by the process environment.
func OS() Environment {
	return osEnvironment{}
}

func (osEnvironment) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

func (osEnvironment) Set(key, value string) error {
	return os.Setenv(key, value)
}

func (osEnvironment) Environ() map[string]string {
	vars := os.Environ()
	out := make(map[string]string, len(vars))
	for _, kv := range vars {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			continue
		}
		out[name] = value
	}
	return out
}

// Map is an in-memory Environment. It is safe for concurrent use.
type Map struct {
	mu   sync.RWMutex
	vars map[string]string
}

// NewMap returns a Map seeded with a copy of initial.
func NewMap(initial map[string]string) *Map {
	vars := make(map[string]string, len(initial))
	for k, v := range initial {
		vars[k] = v
	}
	return &Map{vars: vars}
}

// Lookup returns the value of key and whether it is set.
func (m *Map) Lookup(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.vars[key]
	return v, ok
}

// Set assigns value to key.
func (m *Map) Set(key, value string) error {
	if key == "" || strings.ContainsAny(key, "=\x00") {
		return ErrInvalidName
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.vars[key] = value
	return nil
}

// Environ returns a copy of all variables.
func (m *Map) Environ() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string]string, len(m.vars))
	for k, v := range m.vars {
		out[k] = v
	}
	return out
}

// SplitTargets splits a comma-separated list, trimming blanks and dropping
// empty entries.
func SplitTargets(list string) []string {
	parts := strings.Split(list, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
