package duplo

import (
	"reflect"
	"sync"
)

var (
	plans   = make(map[reflect.Type]*typePlan)
	plansMu sync.RWMutex

	engines   = make(map[reflect.Type]any)
	enginesMu sync.RWMutex
)

// planFor returns the cached plan for a struct type, building it on first
// use.
func planFor(rt reflect.Type) (*typePlan, error) {
	// Fast path: read-lock cache check
	plansMu.RLock()
	if cached, ok := plans[rt]; ok {
		plansMu.RUnlock()
		return cached, nil
	}
	plansMu.RUnlock()

	// Slow path: build and cache with write-lock
	plansMu.Lock()
	defer plansMu.Unlock()

	// Double-check pattern
	if cached, ok := plans[rt]; ok {
		return cached, nil
	}

	plan, err := buildPlan(rt)
	if err != nil {
		return nil, err
	}

	plans[rt] = plan
	return plan, nil
}

// storePlan caches a plan built outside planFor (engine construction).
func storePlan(rt reflect.Type, plan *typePlan) {
	plansMu.Lock()
	defer plansMu.Unlock()
	plans[rt] = plan
}

// Use returns a cached default-configuration engine for T, building one on
// first use. Engines needing options go through NewEngine directly.
func Use[T any]() (*Engine[T], error) {
	rt := reflect.TypeFor[T]()

	// Fast path: read-lock cache check
	enginesMu.RLock()
	if cached, ok := engines[rt]; ok {
		enginesMu.RUnlock()
		return cached.(*Engine[T]), nil
	}
	enginesMu.RUnlock()

	// Slow path: build and cache with write-lock
	enginesMu.Lock()
	defer enginesMu.Unlock()

	// Double-check pattern
	if cached, ok := engines[rt]; ok {
		return cached.(*Engine[T]), nil
	}

	eng, err := NewEngine[T]()
	if err != nil {
		return nil, err
	}

	engines[rt] = eng
	return eng, nil
}

// Reset clears the engine and plan caches.
// This is primarily useful for test isolation.
func Reset() {
	enginesMu.Lock()
	engines = make(map[reflect.Type]any)
	enginesMu.Unlock()

	plansMu.Lock()
	plans = make(map[reflect.Type]*typePlan)
	plansMu.Unlock()
}
