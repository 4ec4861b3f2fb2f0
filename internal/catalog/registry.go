package catalog

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"soliddojo/internal/logging"
)

// Registry holds the available showcases and provides lookup and
// execution. It is thread-safe and supports registration at runtime.
type Registry struct {
	mu        sync.RWMutex
	showcases map[string]*Showcase
}

// NewRegistry creates a new empty showcase registry.
func NewRegistry() *Registry {
	return &Registry{
		showcases: make(map[string]*Showcase),
	}
}

// Register adds a showcase to the registry.
// Returns an error if a showcase with the same id already exists.
func (r *Registry) Register(sc *Showcase) error {
	if err := sc.Validate(); err != nil {
		return fmt.Errorf("invalid showcase: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.showcases[sc.ID]; exists {
		return fmt.Errorf("%w: %s", ErrShowcaseAlreadyRegistered, sc.ID)
	}

	r.showcases[sc.ID] = sc

	logging.CatalogDebug("Registered showcase: %s (order=%d)", sc.ID, sc.Order)
	return nil
}

// MustRegister registers a showcase and panics on error.
// Use this for static registration at init time.
func (r *Registry) MustRegister(sc *Showcase) {
	if err := r.Register(sc); err != nil {
		panic(fmt.Sprintf("failed to register showcase %s: %v", sc.ID, err))
	}
}

// Get returns a showcase by id, or nil if not found.
func (r *Registry) Get(id string) *Showcase {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.showcases[id]
}

// Has returns true if a showcase with the given id is registered.
func (r *Registry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.showcases[id]
	return ok
}

// All returns all registered showcases, sorted by Order.
func (r *Registry) All() []*Showcase {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Showcase, 0, len(r.showcases))
	for _, sc := range r.showcases {
		result = append(result, sc)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Order < result[j].Order
	})
	return result
}

// IDs returns the registered showcase ids, sorted by Order.
func (r *Registry) IDs() []string {
	all := r.All()
	ids := make([]string, 0, len(all))
	for _, sc := range all {
		ids = append(ids, sc.ID)
	}
	return ids
}

// Count returns the number of registered showcases.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.showcases)
}

// Run executes a showcase by id and returns its transcript.
// Returns ErrShowcaseNotFound if the id is not registered. The
// transcript is returned even when the demo itself failed, so callers
// can report partial output.
func (r *Registry) Run(ctx context.Context, id string) (*Transcript, error) {
	sc := r.Get(id)
	if sc == nil {
		return nil, fmt.Errorf("%w: %s", ErrShowcaseNotFound, id)
	}

	tr := NewTranscript(sc.ID)

	logging.CatalogDebug("Running showcase: %s", sc.ID)
	err := sc.Run(ctx, tr)

	tr.Duration = time.Since(tr.StartedAt)
	tr.Err = err
	logging.CatalogDebug("Showcase %s completed in %v (ok=%v, steps=%d, failures=%d)",
		sc.ID, tr.Duration, err == nil, len(tr.Steps), tr.Failures())

	if err != nil {
		return tr, fmt.Errorf("showcase %s: %w", sc.ID, err)
	}
	return tr, nil
}

// Global registry instance for convenience.
var defaultRegistry = NewRegistry()

// Default returns the process-wide showcase registry.
func Default() *Registry {
	return defaultRegistry
}
