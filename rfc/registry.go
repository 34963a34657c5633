package rfc

import (
	"context"
	"sync"

	"github.com/wippyai/rfc-runtime/errors"
	"github.com/wippyai/rfc-runtime/metadata"
	"github.com/wippyai/rfc-runtime/sdk"
)

// registry caches function descriptions per connection. Entries live until
// the connection closes; they are never shared across connections because
// different sessions may resolve the same name differently.
type registry struct {
	mu     sync.RWMutex
	byName map[string]*metadata.FunctionDescription
}

func newRegistry() *registry {
	return &registry{byName: make(map[string]*metadata.FunctionDescription)}
}

func (r *registry) getOrFetch(ctx context.Context, binding sdk.Binding, conn sdk.ConnectionHandle, name string) (*metadata.FunctionDescription, error) {
	r.mu.RLock()
	if desc, ok := r.byName[name]; ok {
		r.mu.RUnlock()
		return desc, nil
	}
	r.mu.RUnlock()

	desc, info := binding.DescribeFunction(ctx, conn, name)
	if info != nil {
		return nil, mapError(errors.PhaseLookup, info)
	}

	r.mu.Lock()
	// Another lookup may have raced us; keep the first cached description so
	// shared references stay stable.
	if cached, ok := r.byName[name]; ok {
		desc = cached
	} else {
		r.byName[name] = desc
	}
	r.mu.Unlock()
	return desc, nil
}

func (r *registry) clear() {
	r.mu.Lock()
	r.byName = make(map[string]*metadata.FunctionDescription)
	r.mu.Unlock()
}

func (r *registry) size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byName)
}
