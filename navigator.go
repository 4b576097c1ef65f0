package riptide

import "context"

// Navigator is the pluggable strategy that extracts an attribute from a
// response and selects a branch of a RoutingTree, per spec.md §4.3. It is
// the response-routing analogue of the teacher's Discriminator/Source
// two-method strategy (Discriminator.Match(View) / Source.Parse).
type Navigator[A comparable] interface {
	// Extract computes the attribute for resp. The second return value
	// is false when the attribute is absent (missing header, unparseable
	// value); DefaultSelect maps that to the wildcard.
	Extract(ctx context.Context, resp *Response) (A, bool)

	// Select returns the matching Route for the given (possibly absent)
	// attribute against tree, or reports absence.
	Select(attr A, ok bool, tree *RoutingTree[A]) (Route, bool)
}

// DefaultSelect implements spec.md §3's default Navigator.select:
// absent attribute maps straight to the wildcard, otherwise Lookup
// (which itself falls back to the wildcard, then to absence).
func DefaultSelect[A comparable](attr A, ok bool, tree *RoutingTree[A]) (Route, bool) {
	if !ok {
		return tree.Wildcard()
	}
	return tree.Lookup(attr)
}

// EqualityNavigator provides the default Select for any comparable
// attribute type, ported from original_source/riptide-core/
// EqualityNavigator.java. Every built-in navigator embeds it; a caller
// implementing a custom Navigator can too, needing only to supply
// Extract.
type EqualityNavigator[A comparable] struct{}

// Select implements Navigator by delegating to DefaultSelect.
func (EqualityNavigator[A]) Select(attr A, ok bool, tree *RoutingTree[A]) (Route, bool) {
	return DefaultSelect(attr, ok, tree)
}

// NavigatorFunc adapts a plain extraction function into a full Navigator
// using EqualityNavigator's default Select — the equivalent of the
// teacher's SourceFunc for callers who want a Navigator without declaring
// a named type.
type NavigatorFunc[A comparable] struct {
	EqualityNavigator[A]
	ExtractFunc func(ctx context.Context, resp *Response) (A, bool)
}

// Extract implements Navigator.
func (n NavigatorFunc[A]) Extract(ctx context.Context, resp *Response) (A, bool) {
	return n.ExtractFunc(ctx, resp)
}
