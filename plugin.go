package riptide

import "context"

// ResponseSupplier lazily produces a Future[*Response] — the transport
// call (or a plugin's substitute for it) happens only when the supplier
// is invoked, per spec.md §4.5's "plugin invocation is lazy" rule.
type ResponseSupplier func(ctx context.Context) *Future[*Response]

// Plugin decorates a ResponseSupplier, observing or transforming the
// eventual response future. Composition is right-to-left: the innermost
// plugin (last in the configured list) sits nearest the transport.
//
// Plugins may short-circuit by returning a supplier that never calls
// next, observe completion by attaching a continuation to next's result,
// or substitute/transform the response or the failure entirely.
type Plugin func(args RequestArguments, next ResponseSupplier) ResponseSupplier

// IdentityPlugin passes the supplier through unchanged.
func IdentityPlugin(args RequestArguments, next ResponseSupplier) ResponseSupplier {
	return next
}

// composePlugins right-folds plugins over innermost, the raw transport
// supplier, per spec.md §4.6: "the chain is right-fold over the plugin
// list with the raw transport supplier as the seed." Plugin N's returned
// supplier becomes the next argument passed to plugin N-1, so plugins[0]
// (outermost, configured first) is the one actually invoked by the
// caller.
func composePlugins(args RequestArguments, plugins []Plugin, innermost ResponseSupplier) ResponseSupplier {
	supplier := innermost
	for i := len(plugins) - 1; i >= 0; i-- {
		supplier = plugins[i](args, supplier)
	}
	return supplier
}
