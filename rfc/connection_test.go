package rfc

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/rfc-runtime/errors"
	"github.com/wippyai/rfc-runtime/params"
	"github.com/wippyai/rfc-runtime/rfctest"
)

func testParams() params.Params {
	return params.Params{}.
		Set(params.KeyAppHost, "sap.example.com").
		Set(params.KeySysNr, "00").
		Set(params.KeyClient, "100").
		Set(params.KeyUser, "TESTER").
		Set(params.KeyPassword, "secret")
}

func connect(t *testing.T, b *rfctest.Binding) *Connection {
	t.Helper()
	c, err := Connect(context.Background(), b, testParams())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestConnect(t *testing.T) {
	b := rfctest.NewBinding()
	c := connect(t, b)

	assert.True(t, c.IsOpen())
	assert.NotEmpty(t, c.ID())
	assert.Equal(t, 1, b.InitCount())
	assert.Equal(t, 1, b.OpenConnections())
}

func TestConnect_MissingHost(t *testing.T) {
	b := rfctest.NewBinding()
	p := testParams()
	delete(p, params.KeyAppHost)

	_, err := Connect(context.Background(), b, p)
	assert.True(t, stderrors.Is(err, &errors.Error{Phase: errors.PhaseConnect, Kind: errors.KindInvalidParameters}),
		"got %v", err)

	// The failed connect must not leak an environment reference.
	assert.Equal(t, b.InitCount(), b.TeardownCount())
}

func TestConnect_UnreachableHost(t *testing.T) {
	b := rfctest.NewBinding()
	b.OpenError = rfctest.CommunicationError("partner 'sap.example.com:3300' not reached")

	_, err := Connect(context.Background(), b, testParams())
	assert.True(t, stderrors.Is(err, &errors.Error{Phase: errors.PhaseConnect, Kind: errors.KindNetworkFailure}),
		"got %v", err)
}

func TestEnvironmentLifecycle(t *testing.T) {
	b := rfctest.NewBinding()

	c1, err := Connect(context.Background(), b, testParams())
	require.NoError(t, err)
	c2, err := Connect(context.Background(), b, testParams())
	require.NoError(t, err)

	// One environment init serves both connections.
	assert.Equal(t, 1, b.InitCount())
	assert.Equal(t, 0, b.TeardownCount())

	require.NoError(t, c1.Close())
	assert.Equal(t, 0, b.TeardownCount(), "environment lives while a connection remains")

	require.NoError(t, c2.Close())
	assert.Equal(t, 1, b.TeardownCount(), "last close tears the environment down")
}

func TestClose_Idempotent(t *testing.T) {
	b := rfctest.NewBinding()
	c := connect(t, b)

	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
	assert.Equal(t, 1, b.TeardownCount())
	assert.False(t, c.IsOpen())
}

func TestClosedConnectionRejectsOperations(t *testing.T) {
	b := rfctest.NewBinding()
	rfctest.RegisterConnectionEcho(b)
	c := connect(t, b)
	require.NoError(t, c.Close())

	invalidState := &errors.Error{Phase: errors.PhaseState, Kind: errors.KindInvalidState}

	err := c.Ping(context.Background())
	assert.True(t, stderrors.Is(err, invalidState), "Ping: %v", err)

	_, err = c.Attributes()
	assert.True(t, stderrors.Is(err, invalidState), "Attributes: %v", err)

	_, err = c.LookupFunction(context.Background(), "STFC_CONNECTION")
	assert.True(t, stderrors.Is(err, invalidState), "LookupFunction: %v", err)

	_, err = c.Call(context.Background(), "STFC_CONNECTION")
	assert.True(t, stderrors.Is(err, invalidState), "Call: %v", err)
}

func TestPing(t *testing.T) {
	b := rfctest.NewBinding()
	c := connect(t, b)

	require.NoError(t, c.Ping(context.Background()))

	b.PingError = rfctest.CommunicationError("connection broken")
	err := c.Ping(context.Background())
	assert.True(t, stderrors.Is(err, &errors.Error{Phase: errors.PhaseConnect, Kind: errors.KindNetworkFailure}),
		"got %v", err)
}

func TestAttributes(t *testing.T) {
	b := rfctest.NewBinding()
	c := connect(t, b)

	attrs, err := c.Attributes()
	require.NoError(t, err)
	assert.Equal(t, "sap.example.com", attrs.PartnerHost)
	assert.Equal(t, "00", attrs.SysNumber)
	assert.Equal(t, "100", attrs.Client)
	assert.Equal(t, "TESTER", attrs.User)
}

func TestLookupFunction_Caching(t *testing.T) {
	b := rfctest.NewBinding()
	rfctest.RegisterConnectionEcho(b)
	c := connect(t, b)

	d1, err := c.LookupFunction(context.Background(), "STFC_CONNECTION")
	require.NoError(t, err)
	d2, err := c.LookupFunction(context.Background(), "STFC_CONNECTION")
	require.NoError(t, err)

	assert.Same(t, d1, d2, "repeated lookups share one cached description")
	assert.Equal(t, 1, c.registry.size())
}

func TestLookupFunction_NotFound(t *testing.T) {
	b := rfctest.NewBinding()
	c := connect(t, b)

	_, err := c.LookupFunction(context.Background(), "Z_DOES_NOT_EXIST")
	assert.True(t, stderrors.Is(err, &errors.Error{Phase: errors.PhaseLookup, Kind: errors.KindFunctionNotFound}),
		"got %v", err)
}

func TestRegistryClearedOnClose(t *testing.T) {
	b := rfctest.NewBinding()
	rfctest.RegisterConnectionEcho(b)
	c := connect(t, b)

	_, err := c.LookupFunction(context.Background(), "STFC_CONNECTION")
	require.NoError(t, err)
	require.Equal(t, 1, c.registry.size())

	require.NoError(t, c.Close())
	assert.Equal(t, 0, c.registry.size())
}
