package riptide

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Rest is the request pipeline of spec.md §4.5: base URL, request
// factory, ordered plugin chain, and a default Converter, all configured
// once via RestOption and immutable thereafter. It plays the same role
// for outbound HTTP requests that the teacher's Router plays for inbound
// messages: a long-lived, reusable entry point that per-call state
// (RequestBuilder) is built against.
type Rest struct {
	baseURL        string
	requestFactory RequestFactory
	plugins        []Plugin
	converter      Converter
	hooks          hooks
}

// NewRest builds a Rest instance from options. By default it uses
// StdlibRequestFactory and JSONConverter.
func NewRest(opts ...RestOption) *Rest {
	r := &Rest{
		requestFactory: NewStdlibRequestFactory(nil),
		converter:      DefaultConverter,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Converter returns the Rest instance's configured Converter
// (DefaultConverter unless set with WithConverter). Bindings do not fall
// back to it automatically.
func (r *Rest) Converter() Converter {
	return r.converter
}

// RequestBuilder accumulates method, URI template, path variables, query
// parameters, headers, and body for one outbound request, per spec.md
// §4.5. It is intentionally not reusable across requests — a fresh
// RequestBuilder is obtained from Rest.Get/Post/etc. for every call.
type RequestBuilder struct {
	rest     *Rest
	method   string
	path     string
	pathVars []any
	query    url.Values
	header   http.Header
	body     io.Reader
}

func (r *Rest) newRequestBuilder(method, path string, pathVars []any) *RequestBuilder {
	return &RequestBuilder{
		rest:     r,
		method:   method,
		path:     path,
		pathVars: pathVars,
		query:    url.Values{},
		header:   http.Header{},
	}
}

// Get starts a GET request builder for the given URI template, e.g.
// rest.Get("/users/{id}", 42).
func (r *Rest) Get(path string, pathVars ...any) *RequestBuilder {
	return r.newRequestBuilder(http.MethodGet, path, pathVars)
}

// Post starts a POST request builder.
func (r *Rest) Post(path string, pathVars ...any) *RequestBuilder {
	return r.newRequestBuilder(http.MethodPost, path, pathVars)
}

// Put starts a PUT request builder.
func (r *Rest) Put(path string, pathVars ...any) *RequestBuilder {
	return r.newRequestBuilder(http.MethodPut, path, pathVars)
}

// Patch starts a PATCH request builder.
func (r *Rest) Patch(path string, pathVars ...any) *RequestBuilder {
	return r.newRequestBuilder(http.MethodPatch, path, pathVars)
}

// Delete starts a DELETE request builder.
func (r *Rest) Delete(path string, pathVars ...any) *RequestBuilder {
	return r.newRequestBuilder(http.MethodDelete, path, pathVars)
}

// Head starts a HEAD request builder.
func (r *Rest) Head(path string, pathVars ...any) *RequestBuilder {
	return r.newRequestBuilder(http.MethodHead, path, pathVars)
}

// Header adds a request header.
func (b *RequestBuilder) Header(key, value string) *RequestBuilder {
	b.header.Add(key, value)
	return b
}

// Query adds a query parameter.
func (b *RequestBuilder) Query(key, value string) *RequestBuilder {
	b.query.Add(key, value)
	return b
}

// Body sets the request body.
func (b *RequestBuilder) Body(body io.Reader) *RequestBuilder {
	b.body = body
	return b
}

// build freezes the RequestBuilder's accumulated state into
// RequestArguments, per spec.md §4.5 step 1.
func (b *RequestBuilder) build(ctx context.Context) (RequestArguments, error) {
	resolved, err := expandURITemplate(b.path, b.pathVars)
	if err != nil {
		return RequestArguments{}, err
	}

	full, err := resolveURL(b.rest.baseURL, resolved, b.query)
	if err != nil {
		return RequestArguments{}, fmt.Errorf("riptide: resolve request URL: %w", err)
	}

	return RequestArguments{
		Method:  b.method,
		URL:     full,
		Header:  b.header,
		Body:    b.body,
		Context: ctx,
	}, nil
}

// expandURITemplate substitutes "{name}" placeholders in path with vars,
// in order of appearance, the way a fluent request builder's path
// variables are conventionally resolved.
func expandURITemplate(path string, vars []any) (string, error) {
	var b strings.Builder
	varIdx := 0
	i := 0
	for i < len(path) {
		if path[i] == '{' {
			end := strings.IndexByte(path[i:], '}')
			if end < 0 {
				return "", fmt.Errorf("riptide: unterminated path variable in %q", path)
			}
			if varIdx >= len(vars) {
				return "", fmt.Errorf("riptide: not enough path variables for %q", path)
			}
			b.WriteString(stringifyPathVar(vars[varIdx]))
			varIdx++
			i += end + 1
			continue
		}
		b.WriteByte(path[i])
		i++
	}
	return b.String(), nil
}

func stringifyPathVar(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

// resolveURL resolves path (and its query parameters) against base.
func resolveURL(base, path string, query url.Values) (*url.URL, error) {
	ref, err := url.Parse(path)
	if err != nil {
		return nil, err
	}

	full := ref
	if base != "" {
		baseURL, err := url.Parse(base)
		if err != nil {
			return nil, err
		}
		full = baseURL.ResolveReference(ref)
	}

	if len(query) > 0 {
		q := full.Query()
		for k, values := range query {
			for _, v := range values {
				q.Add(k, v)
			}
		}
		full.RawQuery = q.Encode()
	}

	return full, nil
}

// Send executes the request described by b, then dispatches the response
// through a RoutingTree built from navigator and bindings — spec.md
// §4.5's steps 2-6. It is a package-level function, not a method on
// RequestBuilder, for the same generics reason as ConsumeBinding/
// MapBinding and the teacher's own Register (router.go): a method cannot
// introduce a type parameter the receiver doesn't already have.
func Send[A comparable](ctx context.Context, b *RequestBuilder, navigator Navigator[A], bindings ...Binding[A]) *Future[any] {
	route, err := Dispatch(navigator, bindings...)
	if err != nil {
		return Failed[any](err)
	}

	args, err := b.build(ctx)
	if err != nil {
		return Failed[any](err)
	}

	rest := b.rest
	innermost := ResponseSupplier(func(ctx context.Context) *Future[*Response] {
		return rest.requestFactory.Execute(args)
	})
	supplier := composePlugins(args, rest.plugins, innermost)

	rest.hooks.callOnDispatch(ctx, args.Method, args.URL.String())

	out, complete := newFuture[any]()
	go func() {
		resp, err := supplier(ctx).Get(ctx)
		if err != nil {
			rest.hooks.callOnPluginError(ctx, err)
			complete(nil, err)
			return
		}

		result, rerr := route(ctx, resp).Get(ctx)
		if rerr != nil && errors.Is(rerr, ErrNoRouteMatched) {
			rerr = rest.hooks.callOnNoRoute(ctx, rerr)
		} else if rerr == nil {
			rest.hooks.callOnRouteMatched(ctx, resp.StatusCode)
		}
		complete(result, rerr)
	}()
	return out
}
