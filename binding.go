package riptide

import "context"

// Binding pairs an attribute key — or the wildcard, when Concrete is
// false — with a Route. Two varieties of convenience constructor are
// offered, per spec.md §3: the package-level ConsumeBinding/MapBinding
// for the common decode-then-invoke shape, and On(attribute).Call/.Route
// for a handler or direct Route reuse.
type Binding[A any] struct {
	Key      A
	Concrete bool
	Handler  Route
}

// partialBinding is the receiver returned by On/Any, deferring the choice
// of terminal Route the way the original Java Bindings.on()/PartialBinding
// pattern does (see original_source/riptide-core/Bindings.java).
type partialBinding[A any] struct {
	key      A
	concrete bool
}

// On starts a binding for the given concrete attribute value.
func On[A any](attribute A) partialBinding[A] {
	return partialBinding[A]{key: attribute, concrete: true}
}

// Any starts a wildcard binding for attribute type A. Any is the single
// generic primitive every AnyXxx convenience (AnyStatus, AnySeries, ...)
// is built from.
func Any[A any]() partialBinding[A] {
	var zero A
	return partialBinding[A]{key: zero, concrete: false}
}

// Route completes the binding with an existing Route value.
func (p partialBinding[A]) Route(route Route) Binding[A] {
	return Binding[A]{Key: p.key, Concrete: p.concrete, Handler: route}
}

// Call completes the binding with a side-effecting handler.
func (p partialBinding[A]) Call(handler func(ctx context.Context, resp *Response) error) Binding[A] {
	return p.Route(Call(handler))
}

// Pass completes the binding with a no-op success Route.
func (p partialBinding[A]) Pass() Binding[A] {
	return p.Route(Pass())
}

// Capture completes the binding with a Route that yields the raw Response.
func (p partialBinding[A]) Capture() Binding[A] {
	return p.Route(Capture())
}

// ConsumeBinding completes a partialBinding[A] with a decode-then-invoke
// handler over payload type T. It is a package-level function, not a
// method on partialBinding, for the same reason the teacher's Register is
// package-level (router.go): Go methods cannot introduce type parameters
// independent of the receiver's.
func ConsumeBinding[A any, T any](p partialBinding[A], conv Converter, handler func(ctx context.Context, payload T) error) Binding[A] {
	return p.Route(Consume[T](conv, handler))
}

// MapBinding completes a partialBinding[A] with a decode-invoke-map
// handler over payload type T producing result type R. Package-level for
// the same reason as ConsumeBinding.
func MapBinding[A, T, R any](p partialBinding[A], conv Converter, fn func(ctx context.Context, payload T) (R, error)) Binding[A] {
	return p.Route(Map[T, R](conv, fn))
}
