package rfc

import (
	"sync"

	"github.com/wippyai/rfc-runtime/errors"
	"github.com/wippyai/rfc-runtime/sdk"
)

// environment accounts for the process-wide SDK state behind each binding.
// The SDK is initialized lazily when the first connection over a binding is
// opened and torn down when the last one is closed. Reference counts are kept
// per binding so independent bindings (a cgo binding and a test binding, for
// example) do not interfere.
type environment struct {
	mu   sync.Mutex
	refs map[sdk.Binding]int
}

var env = &environment{refs: make(map[sdk.Binding]int)}

func (e *environment) acquire(b sdk.Binding) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.refs[b] == 0 {
		if info := b.Init(); info != nil {
			return mapError(errors.PhaseConnect, info)
		}
		Logger().Debug("sdk environment initialized")
	}
	e.refs[b]++
	return nil
}

func (e *environment) release(b sdk.Binding) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	n := e.refs[b]
	if n == 0 {
		return nil
	}
	if n == 1 {
		delete(e.refs, b)
		if info := b.Teardown(); info != nil {
			return mapError(errors.PhaseClose, info)
		}
		Logger().Debug("sdk environment torn down")
		return nil
	}
	e.refs[b] = n - 1
	return nil
}
