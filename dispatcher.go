package riptide

import (
	"context"
	"fmt"
)

// Dispatch builds a RoutingTree from bindings and returns a Route that,
// when invoked on a response, performs navigation: extract the attribute,
// select a branch, and invoke the matched Route — spec.md §4.4. It never
// introspects the matched Route's return value, staying transparent the
// way the teacher's Router.Process stays transparent to handler return
// values beyond error/success.
//
// Dispatch is itself synchronous and fails fast: a malformed binding set
// (duplicate keys, multiple wildcards) returns its error immediately
// rather than deferring it to the first invocation, matching spec.md
// §7's "construction-time errors are synchronous and fatal."
func Dispatch[A comparable](navigator Navigator[A], bindings ...Binding[A]) (Route, error) {
	tree, err := NewRoutingTree(bindings...)
	if err != nil {
		return nil, err
	}

	return func(ctx context.Context, resp *Response) *Future[any] {
		attr, ok := navigator.Extract(ctx, resp)
		route, found := navigator.Select(attr, ok, tree)
		if !found {
			return Failed[any](&noRouteError{attribute: attributeString(attr, ok)})
		}
		return route(ctx, resp)
	}, nil
}

// MustDispatch panics if Dispatch fails to build the routing tree. Useful
// at package-init time for statically-known binding sets, mirroring the
// fail-fast posture spec.md demands of construction-time errors.
func MustDispatch[A comparable](navigator Navigator[A], bindings ...Binding[A]) Route {
	route, err := Dispatch(navigator, bindings...)
	if err != nil {
		panic(err)
	}
	return route
}

func attributeString(a any, ok bool) string {
	if !ok {
		return "<absent>"
	}
	return fmt.Sprint(a)
}
