package nonlin

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/heath/nengo/pkg/log"
)

var (
	// ErrKindExists reports a second registration under the same kind.
	ErrKindExists = errors.New("nonlinearity kind already registered")
	// ErrKindNotFound reports construction of an unregistered kind.
	ErrKindNotFound = errors.New("nonlinearity kind not registered")
)

// Factory builds one population instance from its parameter map.
type Factory func(params Params) (Nonlinearity, error)

type registeredKind struct {
	factory Factory
}

var kindRegistry = struct {
	mu sync.RWMutex
	m  map[string]registeredKind
}{
	m: make(map[string]registeredKind),
}

func init() {
	registerBuiltinKinds()
}

func registerBuiltinKinds() {
	MustRegister(KindCustom, newCustomFromParams)
}

// Register makes a population kind constructible by name. Kinds are
// global; register them before building models that use them.
func Register(kind string, factory Factory) error {
	if kind == "" {
		return errors.New("nonlinearity kind is required")
	}
	if factory == nil {
		return errors.New("nonlinearity factory is required")
	}

	kindRegistry.mu.Lock()
	defer kindRegistry.mu.Unlock()

	if _, exists := kindRegistry.m[kind]; exists {
		return fmt.Errorf("%w: %s", ErrKindExists, kind)
	}
	kindRegistry.m[kind] = registeredKind{factory: factory}
	log.Debugf("registered nonlinearity kind %q", kind)
	return nil
}

// MustRegister is Register for init-time wiring; it panics on error.
func MustRegister(kind string, factory Factory) {
	if err := Register(kind, factory); err != nil {
		panic(err)
	}
}

// New constructs a population of the named kind from params.
func New(kind string, params Params) (Nonlinearity, error) {
	kindRegistry.mu.RLock()
	entry, ok := kindRegistry.m[kind]
	kindRegistry.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrKindNotFound, kind)
	}
	nl, err := entry.factory(params)
	if err != nil {
		return nil, fmt.Errorf("build %s nonlinearity: %w", kind, err)
	}
	return nl, nil
}

// Registered reports whether a kind can be constructed.
func Registered(kind string) bool {
	kindRegistry.mu.RLock()
	defer kindRegistry.mu.RUnlock()

	_, ok := kindRegistry.m[kind]
	return ok
}

// Kinds returns every registered kind, sorted.
func Kinds() []string {
	kindRegistry.mu.RLock()
	defer kindRegistry.mu.RUnlock()

	kinds := make([]string, 0, len(kindRegistry.m))
	for kind := range kindRegistry.m {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

func resetKindRegistryForTests() {
	kindRegistry.mu.Lock()
	kindRegistry.m = make(map[string]registeredKind)
	kindRegistry.mu.Unlock()

	registerBuiltinKinds()
}
