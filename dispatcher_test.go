package riptide

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResponse(status int, header http.Header, body string) *Response {
	if header == nil {
		header = http.Header{}
	}
	return &Response{
		StatusCode: status,
		Reason:     http.StatusText(status),
		Header:     header,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestDispatch_ContentTypeRouting(t *testing.T) {
	// S2 from spec.md.
	header := http.Header{"Content-Type": {"text/plain"}}
	resp := newTestResponse(200, header, "It works!")

	var captured string
	route, err := Dispatch[MediaType](
		Navigators.ContentType(),
		On(MediaType{Type: "text", Subtype: "plain"}).Call(func(ctx context.Context, r *Response) error {
			data, _ := io.ReadAll(r.Body)
			captured = string(data)
			return nil
		}),
		On(MediaType{Type: "application", Subtype: "json"}).Call(func(ctx context.Context, r *Response) error {
			return errors.New("should not run")
		}),
	)
	require.NoError(t, err)

	future := route(context.Background(), resp)
	_, err = future.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "It works!", captured)
}

func TestDispatch_StatusRouting(t *testing.T) {
	// S3 from spec.md.
	resp := newTestResponse(404, nil, "Not found")

	var ran string
	route, err := Dispatch[int](
		Navigators.StatusCode(),
		On(200).Call(func(ctx context.Context, r *Response) error {
			ran = "200"
			return nil
		}),
		On(404).Call(func(ctx context.Context, r *Response) error {
			ran = "404"
			return nil
		}),
	)
	require.NoError(t, err)

	route(context.Background(), resp)
	assert.Equal(t, "404", ran)
}

func TestDispatch_NoMatch(t *testing.T) {
	// S4 from spec.md: no wildcard configured, no binding matches.
	header := http.Header{"Content-Type": {"application/json"}}
	resp := newTestResponse(200, header, "{}")

	route, err := Dispatch[MediaType](
		Navigators.ContentType(),
		On(MediaType{Type: "text", Subtype: "plain"}).Route(Pass()),
		On(MediaType{Type: "application", Subtype: "xml"}).Route(Pass()),
	)
	require.NoError(t, err)

	future := route(context.Background(), resp)
	_, err = future.Get(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoRouteMatched)
}

func TestDispatch_SeriesWildcard(t *testing.T) {
	resp := newTestResponse(503, nil, "")

	var matchedSeries Series
	route, err := Dispatch[Series](
		Navigators.Series(),
		On(SeriesSuccessful).Route(Pass()),
		AnySeries().Call(func(ctx context.Context, r *Response) error {
			matchedSeries, _ = seriesOf(r.StatusCode)
			return nil
		}),
	)
	require.NoError(t, err)

	route(context.Background(), resp)
	assert.Equal(t, SeriesServerError, matchedSeries)
}

func TestDispatch_InvokesExactlyOneRoute(t *testing.T) {
	resp := newTestResponse(200, nil, "")

	calls := 0
	route, err := Dispatch[int](
		Navigators.StatusCode(),
		On(200).Call(func(ctx context.Context, r *Response) error {
			calls++
			return nil
		}),
		AnyStatusCode().Call(func(ctx context.Context, r *Response) error {
			calls++
			return nil
		}),
	)
	require.NoError(t, err)

	route(context.Background(), resp)
	assert.Equal(t, 1, calls)
}

func TestDispatch_RouteErrorPropagates(t *testing.T) {
	resp := newTestResponse(200, nil, "")
	wantErr := errors.New("boom")

	route, err := Dispatch[int](
		Navigators.StatusCode(),
		On(200).Call(func(ctx context.Context, r *Response) error {
			return wantErr
		}),
	)
	require.NoError(t, err)

	_, err = route(context.Background(), resp).Get(context.Background())
	require.Error(t, err)
	var routeErr *RouteError
	require.ErrorAs(t, err, &routeErr)
	assert.Equal(t, wantErr, routeErr.Cause)
}

func TestDispatch_BuildErrorIsSynchronous(t *testing.T) {
	_, err := Dispatch[int](
		Navigators.StatusCode(),
		On(200).Route(Pass()),
		On(200).Route(Pass()),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateAttribute)
}
