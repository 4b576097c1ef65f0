package riptide

import "context"

// OnDispatchFunc is called just before the outbound request is handed to
// the request factory.
type OnDispatchFunc func(ctx context.Context, method, url string)

// OnRouteMatchedFunc is called once a Route has been selected for a
// response and has finished running without error. It does not fire on
// an ErrNoRouteMatched response (see OnNoRouteFunc) or when the Route
// itself fails.
type OnRouteMatchedFunc func(ctx context.Context, statusCode int)

// OnNoRouteFunc is called when no Route matches and no wildcard is
// configured. Return nil to substitute success (and no error propagates
// from Send), or return an error to use in its place.
type OnNoRouteFunc func(ctx context.Context, err error) error

// OnPluginErrorFunc is called when a plugin-wrapped supplier fails before
// reaching the Dispatcher.
type OnPluginErrorFunc func(ctx context.Context, err error)

// hooks holds every configured hook, mirroring the teacher's hooks
// struct in hooks.go (router.go's Router embeds it the same way Rest
// does here).
type hooks struct {
	onDispatch     []OnDispatchFunc
	onRouteMatched []OnRouteMatchedFunc
	onNoRoute      []OnNoRouteFunc
	onPluginError  []OnPluginErrorFunc
}

// RestOption configures a Rest's hooks and plugins at build time. Riptide
// deliberately ships no logging library of its own — exactly the
// teacher's own choice — so structured observability is wired in by the
// caller through these hooks, not baked in.
type RestOption func(*Rest)

// WithOnDispatch adds a hook called just before the outbound request is
// issued.
func WithOnDispatch(fn OnDispatchFunc) RestOption {
	return func(r *Rest) { r.hooks.onDispatch = append(r.hooks.onDispatch, fn) }
}

// WithOnRouteMatched adds a hook called once a Route is selected and has
// run to completion without error.
func WithOnRouteMatched(fn OnRouteMatchedFunc) RestOption {
	return func(r *Rest) { r.hooks.onRouteMatched = append(r.hooks.onRouteMatched, fn) }
}

// WithOnNoRoute adds a hook called when no Route matches. Multiple hooks
// run in order; the first non-nil return wins.
func WithOnNoRoute(fn OnNoRouteFunc) RestOption {
	return func(r *Rest) { r.hooks.onNoRoute = append(r.hooks.onNoRoute, fn) }
}

// WithOnPluginError adds a hook called when the plugin-wrapped supplier
// fails before the Dispatcher ever sees a response.
func WithOnPluginError(fn OnPluginErrorFunc) RestOption {
	return func(r *Rest) { r.hooks.onPluginError = append(r.hooks.onPluginError, fn) }
}

// WithPlugins appends plugins to the Rest instance's chain, in the order
// given (plugins[0] ends up outermost).
func WithPlugins(plugins ...Plugin) RestOption {
	return func(r *Rest) { r.plugins = append(r.plugins, plugins...) }
}

// WithRequestFactory overrides the default StdlibRequestFactory.
func WithRequestFactory(f RequestFactory) RestOption {
	return func(r *Rest) { r.requestFactory = f }
}

// WithBaseURL sets the base URL every relative request path is resolved
// against.
func WithBaseURL(base string) RestOption {
	return func(r *Rest) { r.baseURL = base }
}

// WithConverter sets the Converter returned by Rest.Converter (JSONConverter
// by default). Send and the binding constructors do not consult it:
// ConsumeBinding and MapBinding always take their Converter as an argument.
func WithConverter(c Converter) RestOption {
	return func(r *Rest) { r.converter = c }
}

func (h *hooks) callOnDispatch(ctx context.Context, method, url string) {
	for _, fn := range h.onDispatch {
		fn(ctx, method, url)
	}
}

func (h *hooks) callOnRouteMatched(ctx context.Context, statusCode int) {
	for _, fn := range h.onRouteMatched {
		fn(ctx, statusCode)
	}
}

func (h *hooks) callOnNoRoute(ctx context.Context, err error) error {
	if len(h.onNoRoute) == 0 {
		return err
	}
	for _, fn := range h.onNoRoute {
		if result := fn(ctx, err); result != nil {
			return result
		}
	}
	return nil
}

func (h *hooks) callOnPluginError(ctx context.Context, err error) {
	for _, fn := range h.onPluginError {
		fn(ctx, err)
	}
}
