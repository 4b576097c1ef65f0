package riptide

import "context"

// Route is a terminal response handler: "apply this handler to this
// response." It is opaque to the routing layer (RoutingTree, Dispatcher)
// and pure with respect to it — a Route never mutates a RoutingTree or
// Binding, only whatever state the caller's own handler closes over.
//
// A Route must not be invoked more than once per dispatch, since the
// Response it receives has a single-consumption body. Errors raised
// synchronously inside a Route are captured into the returned Future as
// a *RouteError, never propagated out of band.
type Route func(ctx context.Context, resp *Response) *Future[any]

// Pass is a no-op Route: it succeeds immediately without reading the
// response, yielding nil.
func Pass() Route {
	return func(ctx context.Context, resp *Response) *Future[any] {
		return Completed[any](nil)
	}
}

// Call adapts a side-effecting consumer into a Route. Its error, if any,
// is captured as a *RouteError.
func Call(handler func(ctx context.Context, resp *Response) error) Route {
	return func(ctx context.Context, resp *Response) *Future[any] {
		if err := handler(ctx, resp); err != nil {
			return Failed[any](&RouteError{Cause: err})
		}
		return Completed[any](nil)
	}
}

// Capture returns a Route that yields the raw *Response wrapper itself as
// the future's value, performing no decoding.
func Capture() Route {
	return func(ctx context.Context, resp *Response) *Future[any] {
		return Completed[any](any(resp))
	}
}

// Consume decodes the response body into T using conv, invokes handler,
// and yields nil — the fire-and-forget counterpart to Map.
func Consume[T any](conv Converter, handler func(ctx context.Context, payload T) error) Route {
	return func(ctx context.Context, resp *Response) *Future[any] {
		var payload T
		if err := conv.Convert(resp, &payload); err != nil {
			return Failed[any](&RouteError{Cause: err})
		}
		if err := handler(ctx, payload); err != nil {
			return Failed[any](&RouteError{Cause: err})
		}
		return Completed[any](nil)
	}
}

// Map decodes the response body into T using conv, invokes fn, and yields
// fn's result as the Route's output.
func Map[T, R any](conv Converter, fn func(ctx context.Context, payload T) (R, error)) Route {
	return func(ctx context.Context, resp *Response) *Future[any] {
		var payload T
		if err := conv.Convert(resp, &payload); err != nil {
			return Failed[any](&RouteError{Cause: err})
		}
		result, err := fn(ctx, payload)
		if err != nil {
			return Failed[any](&RouteError{Cause: err})
		}
		return Completed[any](any(result))
	}
}
