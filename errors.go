package riptide

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMultipleWildcards is returned by NewRoutingTree when more than one
// wildcard binding is supplied.
var ErrMultipleWildcards = errors.New("riptide: multiple wildcard bindings")

// ErrNoRouteMatched is returned (wrapped with the attribute) by the
// Dispatcher when no binding matches and no wildcard is configured.
var ErrNoRouteMatched = errors.New("riptide: no route matched")

// duplicateAttributeError names every attribute key bound more than once
// in a single RoutingTree construction. The message enumerates all
// offending keys, per spec.
type duplicateAttributeError struct {
	keys []string
}

func (e *duplicateAttributeError) Error() string {
	return fmt.Sprintf("riptide: duplicate attribute value(s): %s", strings.Join(e.keys, ", "))
}

// Is allows errors.Is(err, ErrDuplicateAttribute) to succeed for any
// duplicateAttributeError, regardless of which keys it names.
func (e *duplicateAttributeError) Is(target error) bool {
	return target == ErrDuplicateAttribute
}

// ErrDuplicateAttribute is the sentinel matched by errors.Is against any
// duplicate-attribute construction failure. Use errors.As with
// *duplicateAttributeError (via DuplicateKeys) to inspect the offending
// keys.
var ErrDuplicateAttribute = errors.New("riptide: duplicate attribute value")

// DuplicateKeys extracts the offending attribute keys from err, if err (or
// one of its wrapped causes) is a duplicate-attribute construction error.
func DuplicateKeys(err error) ([]string, bool) {
	var d *duplicateAttributeError
	if errors.As(err, &d) {
		return d.keys, true
	}
	return nil, false
}

// noRouteError carries the unmatched attribute's string representation
// alongside ErrNoRouteMatched.
type noRouteError struct {
	attribute string
}

func (e *noRouteError) Error() string {
	return fmt.Sprintf("%s: %s", ErrNoRouteMatched.Error(), e.attribute)
}

func (e *noRouteError) Unwrap() error { return ErrNoRouteMatched }

// RouteError wraps an error raised synchronously inside a Route handler so
// it travels through the returned Future as a typed failure rather than
// escaping the dispatch call out of band.
type RouteError struct {
	Cause error
}

func (e *RouteError) Error() string { return "riptide: route failed: " + e.Cause.Error() }
func (e *RouteError) Unwrap() error { return e.Cause }

// TransportError wraps any network, I/O, or protocol error surfaced by a
// RequestFactory. It is the input the exception classifier inspects.
type TransportError struct {
	Cause error
}

func (e *TransportError) Error() string { return "riptide: transport failed: " + e.Cause.Error() }
func (e *TransportError) Unwrap() error { return e.Cause }
