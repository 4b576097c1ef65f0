package riptide

import "fmt"

// RoutingTree is an immutable attribute→Route map with one optional
// wildcard, built from a non-empty set of Binding[A]. It is the generic,
// type-indexed structure spec.md §2 calls out as the hard engineering
// core, generalising the teacher's Router.handlers map[string]invoker to
// an arbitrary comparable attribute type.
type RoutingTree[A comparable] struct {
	routes   map[A]Route
	wildcard Route
	hasWild  bool
}

// NewRoutingTree builds a RoutingTree from bindings, per the construction
// algorithm in spec.md §4.2:
//  1. partition into concrete and wildcard bindings;
//  2. reject duplicate concrete keys with *duplicateAttributeError;
//  3. reject more than one wildcard with ErrMultipleWildcards;
//  4. freeze the result.
//
// bindings must be non-empty.
func NewRoutingTree[A comparable](bindings ...Binding[A]) (*RoutingTree[A], error) {
	if len(bindings) == 0 {
		return nil, fmt.Errorf("riptide: NewRoutingTree requires at least one binding")
	}

	routes := make(map[A]Route, len(bindings))
	var duplicates []A
	seenDuplicate := make(map[A]bool)
	var wildcard Route
	hasWild := false
	wildcardCount := 0

	for _, b := range bindings {
		if !b.Concrete {
			wildcardCount++
			wildcard = b.Handler
			hasWild = true
			continue
		}
		if _, exists := routes[b.Key]; exists {
			if !seenDuplicate[b.Key] {
				duplicates = append(duplicates, b.Key)
				seenDuplicate[b.Key] = true
			}
			continue
		}
		routes[b.Key] = b.Handler
	}

	if len(duplicates) > 0 {
		keys := make([]string, len(duplicates))
		for i, k := range duplicates {
			keys[i] = fmt.Sprint(k)
		}
		return nil, &duplicateAttributeError{keys: keys}
	}
	if wildcardCount > 1 {
		return nil, ErrMultipleWildcards
	}

	return &RoutingTree[A]{routes: routes, wildcard: wildcard, hasWild: hasWild}, nil
}

// Lookup returns the Route bound to a, falling back to the wildcard, and
// reporting absence otherwise — the exact/then-wildcard/then-absent
// semantics of spec.md §3.
func (t *RoutingTree[A]) Lookup(a A) (Route, bool) {
	if route, ok := t.routes[a]; ok {
		return route, true
	}
	return t.Wildcard()
}

// Wildcard returns the tree's wildcard Route, if configured.
func (t *RoutingTree[A]) Wildcard() (Route, bool) {
	if t.hasWild {
		return t.wildcard, true
	}
	return nil, false
}

// HasWildcard reports whether the tree was built with a wildcard binding.
func (t *RoutingTree[A]) HasWildcard() bool {
	return t.hasWild
}

// Len returns the number of concrete bindings in the tree (excluding the
// wildcard).
func (t *RoutingTree[A]) Len() int {
	return len(t.routes)
}
