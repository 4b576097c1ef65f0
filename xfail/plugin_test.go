package xfail

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zalando-go/riptide"
)

func TestTemporaryExceptionPlugin_ClassifiesTransportFailure(t *testing.T) {
	// S5 from spec.md: a socket timeout surfaced through TransportError is
	// reclassified as TemporaryError.
	cause := fakeTimeoutError{}
	next := func(ctx context.Context) *riptide.Future[*riptide.Response] {
		return riptide.Failed[*riptide.Response](&riptide.TransportError{Cause: cause})
	}

	plugin := TemporaryExceptionPlugin(DefaultClassifier())
	wrapped := plugin(riptide.RequestArguments{}, next)

	_, err := wrapped(context.Background()).Get(context.Background())
	require.Error(t, err)
	assert.True(t, IsTemporary(err))

	var tempErr *TemporaryError
	require.ErrorAs(t, err, &tempErr)
	assert.Equal(t, cause, tempErr.Cause)
}

func TestTemporaryExceptionPlugin_LeavesPermanentFailuresUnchanged(t *testing.T) {
	// S6 from spec.md: an unrecognised failure (e.g. a malformed URL)
	// propagates unchanged, not reclassified as temporary.
	wantErr := errors.New("malformed url")
	next := func(ctx context.Context) *riptide.Future[*riptide.Response] {
		return riptide.Failed[*riptide.Response](&riptide.TransportError{Cause: wantErr})
	}

	plugin := TemporaryExceptionPlugin(DefaultClassifier())
	wrapped := plugin(riptide.RequestArguments{}, next)

	_, err := wrapped(context.Background()).Get(context.Background())
	require.Error(t, err)
	assert.False(t, IsTemporary(err))

	var transportErr *riptide.TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, wantErr, transportErr.Cause)
}

func TestTemporaryExceptionPlugin_IdempotentWrapDepth(t *testing.T) {
	// Applying the plugin twice must not nest TemporaryError inside
	// itself: the second pass sees an already-classified failure and
	// passes it through.
	cause := &net.DNSError{Err: "no such host", Name: "example.invalid"}
	next := func(ctx context.Context) *riptide.Future[*riptide.Response] {
		return riptide.Failed[*riptide.Response](&riptide.TransportError{Cause: cause})
	}

	classifier := DefaultClassifier()
	once := TemporaryExceptionPlugin(classifier)(riptide.RequestArguments{}, next)
	twice := TemporaryExceptionPlugin(classifier)(riptide.RequestArguments{}, once)

	_, err := twice(context.Background()).Get(context.Background())
	require.Error(t, err)

	var tempErr *TemporaryError
	require.ErrorAs(t, err, &tempErr)
	// Cause must be the original DNS error, not another *TemporaryError.
	assert.Equal(t, cause, tempErr.Cause)
}

func TestTemporaryExceptionPlugin_SuccessPassesThrough(t *testing.T) {
	resp := &riptide.Response{StatusCode: 200}
	next := func(ctx context.Context) *riptide.Future[*riptide.Response] {
		return riptide.Completed(resp)
	}

	plugin := TemporaryExceptionPlugin(DefaultClassifier())
	wrapped := plugin(riptide.RequestArguments{}, next)

	got, err := wrapped(context.Background()).Get(context.Background())
	require.NoError(t, err)
	assert.Same(t, resp, got)
}
