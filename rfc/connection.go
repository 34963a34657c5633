package rfc

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/wippyai/rfc-runtime/errors"
	"github.com/wippyai/rfc-runtime/metadata"
	"github.com/wippyai/rfc-runtime/params"
	"github.com/wippyai/rfc-runtime/sdk"
)

// Connection owns one RFC session with a SAP system. It is created by
// Connect and released by Close. After Close, every operation except another
// Close fails, and all function calls and views derived from the connection
// become invalid.
type Connection struct {
	id       string
	binding  sdk.Binding
	handle   sdk.ConnectionHandle
	params   params.Params
	registry *registry
	log      *zap.Logger

	mu     sync.Mutex
	closed bool
}

// Connect opens a session with the given logon parameters. The process-wide
// SDK environment is initialized on the first connection over a binding.
//
// The call blocks until the SDK reports success or failure; no retries are
// performed. A failed Connect leaves nothing to clean up.
func Connect(ctx context.Context, binding sdk.Binding, p params.Params) (*Connection, error) {
	if err := env.acquire(binding); err != nil {
		return nil, err
	}

	handle, info := binding.OpenConnection(ctx, p.Slice())
	if info != nil {
		// Opening failed, so this connection never held an environment ref.
		_ = env.release(binding)
		return nil, mapError(errors.PhaseConnect, info)
	}

	id := uuid.NewString()
	c := &Connection{
		id:       id,
		binding:  binding,
		handle:   handle,
		params:   p.Clone(),
		registry: newRegistry(),
		log:      Logger().With(zap.String("conn", id)),
	}
	c.log.Debug("connection opened", zap.Any("params", p.Redacted()))
	return c, nil
}

// ID returns the connection's correlation id used in log output.
func (c *Connection) ID() string { return c.id }

// IsOpen reports whether the connection has not been closed.
func (c *Connection) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.closed
}

func (c *Connection) ensureOpen() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return errors.InvalidState("connection is closed")
	}
	return nil
}

// Ping checks that the backend is still reachable over this session.
func (c *Connection) Ping(ctx context.Context) error {
	if err := c.ensureOpen(); err != nil {
		return err
	}
	return mapError(errors.PhaseConnect, c.binding.Ping(ctx, c.handle))
}

// Attributes reports the read-only session attributes of the open
// connection.
func (c *Connection) Attributes() (*sdk.ConnectionAttributes, error) {
	if err := c.ensureOpen(); err != nil {
		return nil, err
	}
	attrs, info := c.binding.ConnectionAttributes(c.handle)
	if info != nil {
		return nil, mapError(errors.PhaseConnect, info)
	}
	return attrs, nil
}

// LookupFunction returns the metadata of the named function module. The
// first lookup per name queries the backend dictionary; the description is
// then cached for the connection's lifetime and shared read-only.
func (c *Connection) LookupFunction(ctx context.Context, name string) (*metadata.FunctionDescription, error) {
	if err := c.ensureOpen(); err != nil {
		return nil, err
	}
	desc, err := c.registry.getOrFetch(ctx, c.binding, c.handle, name)
	if err != nil {
		c.log.Debug("function lookup failed", zap.String("function", name), zap.Error(err))
		return nil, err
	}
	return desc, nil
}

// Call looks up the named function module and binds a fresh FunctionCall to
// it. The caller owns the returned call and releases it with its Close.
func (c *Connection) Call(ctx context.Context, name string) (*FunctionCall, error) {
	desc, err := c.LookupFunction(ctx, name)
	if err != nil {
		return nil, err
	}

	handle, info := c.binding.CreateFunction(c.handle, name)
	if info != nil {
		return nil, mapError(errors.PhaseInvoke, info)
	}

	c.log.Debug("function call created", zap.String("function", name))
	return &FunctionCall{
		conn:   c,
		desc:   desc,
		handle: handle,
		state:  stateCreated,
	}, nil
}

// Close releases the session. It is idempotent: the first call tears the
// session down and drops the cached metadata, later calls return nil. When
// this was the last connection over its binding, the process-wide SDK
// environment is torn down as well.
func (c *Connection) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.mu.Unlock()

	c.registry.clear()

	var err error
	if info := c.binding.CloseConnection(c.handle); info != nil {
		err = mapError(errors.PhaseClose, info)
	}
	err = multierr.Append(err, env.release(c.binding))

	c.log.Debug("connection closed", zap.Error(err))
	return err
}
