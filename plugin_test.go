package riptide

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityPlugin_PassesSupplierThrough(t *testing.T) {
	resp := &Response{StatusCode: 200}
	next := ResponseSupplier(func(ctx context.Context) *Future[*Response] {
		return Completed(resp)
	})

	got, err := IdentityPlugin(RequestArguments{}, next)(context.Background()).Get(context.Background())
	require.NoError(t, err)
	assert.Same(t, resp, got)
}

func TestComposePlugins_EmptyListReturnsInnermost(t *testing.T) {
	resp := &Response{StatusCode: 200}
	innermost := ResponseSupplier(func(ctx context.Context) *Future[*Response] {
		return Completed(resp)
	})

	supplier := composePlugins(RequestArguments{}, nil, innermost)
	got, err := supplier(context.Background()).Get(context.Background())
	require.NoError(t, err)
	assert.Same(t, resp, got)
}

func TestComposePlugins_FirstPluginIsOutermost(t *testing.T) {
	var order []string
	record := func(name string) Plugin {
		return func(args RequestArguments, next ResponseSupplier) ResponseSupplier {
			return func(ctx context.Context) *Future[*Response] {
				order = append(order, name)
				return next(ctx)
			}
		}
	}

	innermost := ResponseSupplier(func(ctx context.Context) *Future[*Response] {
		order = append(order, "transport")
		return Completed(&Response{StatusCode: 200})
	})

	supplier := composePlugins(RequestArguments{}, []Plugin{record("first"), record("second")}, innermost)
	_, err := supplier(context.Background()).Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "transport"}, order)
}

func TestComposePlugins_CanShortCircuit(t *testing.T) {
	sentinel := &Response{StatusCode: 599}
	shortCircuit := Plugin(func(args RequestArguments, next ResponseSupplier) ResponseSupplier {
		return func(ctx context.Context) *Future[*Response] {
			return Completed(sentinel)
		}
	})

	called := false
	innermost := ResponseSupplier(func(ctx context.Context) *Future[*Response] {
		called = true
		return Completed(&Response{StatusCode: 200})
	})

	supplier := composePlugins(RequestArguments{}, []Plugin{shortCircuit}, innermost)
	got, err := supplier(context.Background()).Get(context.Background())
	require.NoError(t, err)
	assert.Same(t, sentinel, got)
	assert.False(t, called)
}
