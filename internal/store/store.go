// Package store holds the key/value context threaded through one command
// run. Values are read by templates and exported to spawned processes.
package store

import (
	"os"
	"sort"
	"strings"

	"github.com/joho/godotenv"
)

// Store is a mutable string environment. Keys are added or overwritten,
// never removed.
type Store interface {
	// Get returns the value of key and whether it is set.
	Get(key string) (string, bool)
	// Set records a value.
	Set(key, value string)
	// Each calls fn for every locally set key in sorted order.
	Each(fn func(key, value string))
	// Environ returns the environment to export to a child process: the
	// process environment with the store's own values on top.
	Environ() []string
	// Clone returns an independent copy.
	Clone() Store
}

// MapStore is the map-backed Store.
type MapStore struct {
	vars    map[string]string
	inherit bool
}

// New creates an empty store. When inherit is true, keys absent from the
// store are looked up in the process environment. Environ always starts from
// the process environment, whatever inherit says.
func New(inherit bool) *MapStore {
	return &MapStore{
		vars:    make(map[string]string),
		inherit: inherit,
	}
}

// Get implements Store.
func (s *MapStore) Get(key string) (string, bool) {
	if v, ok := s.vars[key]; ok {
		return v, true
	}
	if s.inherit {
		return os.LookupEnv(key)
	}
	return "", false
}

// Set implements Store.
func (s *MapStore) Set(key, value string) {
	s.vars[key] = value
}

// Each implements Store.
func (s *MapStore) Each(fn func(key, value string)) {
	for _, k := range s.keys() {
		fn(k, s.vars[k])
	}
}

// Environ implements Store.
func (s *MapStore) Environ() []string {
	var env []string
	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if _, shadowed := s.vars[name]; shadowed {
			continue
		}
		env = append(env, kv)
	}
	s.Each(func(k, v string) {
		env = append(env, k+"="+v)
	})
	return env
}

// Clone implements Store.
func (s *MapStore) Clone() Store {
	c := New(s.inherit)
	for k, v := range s.vars {
		c.vars[k] = v
	}
	return c
}

// Len returns the number of locally set keys.
func (s *MapStore) Len() int {
	return len(s.vars)
}

func (s *MapStore) keys() []string {
	keys := make([]string, 0, len(s.vars))
	for k := range s.vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// LoadEnvFile reads KEY=VALUE pairs from a dotenv file into s.
func LoadEnvFile(s Store, path string) error {
	vars, err := godotenv.Read(path)
	if err != nil {
		return err
	}
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		s.Set(k, vars[k])
	}
	return nil
}
