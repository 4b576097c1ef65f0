// Package riptide is a client-side HTTP response router: given a
// completed HTTP response, it selects exactly one handler by dispatching
// on some observable attribute of that response — status code, status
// family, content type, reason phrase, or any user-supplied function of
// the response.
//
// # Quick Start
//
// Build a Rest instance, issue a request, and dispatch the response by
// status family:
//
//	rest := riptide.NewRest(riptide.WithBaseURL("https://api.example.com"))
//
//	future := riptide.Send(ctx, rest.Get("/users/{id}", 42), riptide.Navigators.Series(),
//	    riptide.MapBinding(riptide.On(riptide.SeriesSuccessful), riptide.DefaultConverter,
//	        func(ctx context.Context, u User) (User, error) { return u, nil }),
//	    riptide.AnySeries().Call(func(ctx context.Context, resp *riptide.Response) error {
//	        return fmt.Errorf("unexpected status: %d", resp.StatusCode)
//	    }),
//	)
//
//	result, err := future.Get(ctx)
//
// # Design Philosophy
//
// The package separates concerns into two tightly-coupled layers:
//
//   - RoutingTree + Navigator: a generic, type-indexed map from an
//     attribute value to a Route, with an explicit wildcard fallback, and
//     the pluggable strategy that extracts an attribute from a response
//     and selects a branch.
//   - Rest + Plugin chain: how each outbound request is wrapped in an
//     ordered chain of plugins that observe and transform the eventual
//     response future, terminating in the Dispatcher built from a
//     Navigator and a set of Bindings.
//
// This separation allows:
//   - Routing on any attribute of a response, not just status code
//   - A single dispatch expression shared across many request call sites
//   - Plugins that add cross-cutting behavior (the xfail subpackage's
//     TemporaryException classification is one example) without the core
//     dispatch algebra knowing about them
//   - Transport-agnostic Route handlers, since RequestFactory and
//     Converter are both external collaborator interfaces
//
// # Binding Pattern
//
// Every dispatch expression is built from Binding values: a concrete
// attribute value or the wildcard, paired with a Route.
//
//  1. On(attribute) — start a binding for a concrete value
//  2. Any[A]() (or AnyStatus/AnySeries/AnyContentType/...) — start a
//     wildcard binding
//  3. .Call/.Pass/.Capture/.Route, or the package-level ConsumeBinding/
//     MapBinding helpers, to attach the terminal handler
//
// RoutingTree construction rejects duplicate concrete keys and more than
// one wildcard at build time, synchronously, before any response is ever
// routed.
package riptide
