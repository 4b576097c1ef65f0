package riptide

import (
	"context"
	"mime"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
)

// Navigators groups the constructors for every built-in Navigator, mirroring
// the way the teacher groups its own constructors under Bindings/Discriminator
// factory functions rather than scattering top-level names.
var Navigators = navigators{}

type navigators struct{}

// StatusCode routes on the raw HTTP status code (100-599).
func (navigators) StatusCode() Navigator[int] {
	return NavigatorFunc[int]{ExtractFunc: func(ctx context.Context, resp *Response) (int, bool) {
		if resp.StatusCode < 100 || resp.StatusCode > 599 {
			return 0, false
		}
		return resp.StatusCode, true
	}}
}

// Status routes on the status code reified as a named Status value (an
// enum in spec.md's original design), distinct from the plain int
// StatusCode navigator so callers can bind against, say, StatusNotFound
// without the two navigators' RoutingTrees ever being confusable.
func (navigators) Status() Navigator[Status] {
	return NavigatorFunc[Status]{ExtractFunc: func(ctx context.Context, resp *Response) (Status, bool) {
		if resp.StatusCode < 100 || resp.StatusCode > 599 {
			return 0, false
		}
		return Status(resp.StatusCode), true
	}}
}

// Series routes on the HTTP status family (1xx-5xx).
func (navigators) Series() Navigator[Series] {
	return NavigatorFunc[Series]{ExtractFunc: func(ctx context.Context, resp *Response) (Series, bool) {
		return seriesOf(resp.StatusCode)
	}}
}

// ReasonPhrase routes on the response's reason phrase string (e.g. "Not
// Found"). Absent (empty) reason phrases report false.
func (navigators) ReasonPhrase() Navigator[string] {
	return NavigatorFunc[string]{ExtractFunc: func(ctx context.Context, resp *Response) (string, bool) {
		if resp.Reason == "" {
			return "", false
		}
		return resp.Reason, true
	}}
}

// ContentType routes on the response's Content-Type header, matching
// type, subtype, and every parameter exactly. This is the "exact match
// including parameters" resolution of spec.md §9's open question.
func (navigators) ContentType() Navigator[MediaType] {
	return NavigatorFunc[MediaType]{ExtractFunc: extractContentType(true)}
}

// ContentTypeIgnoringParams routes on the response's Content-Type header,
// matching only type and subtype and ignoring any parameters (e.g.
// charset). This is the alternate policy spec.md §9 asks implementers to
// expose alongside the exact-match default.
func (navigators) ContentTypeIgnoringParams() Navigator[MediaType] {
	return NavigatorFunc[MediaType]{ExtractFunc: extractContentType(false)}
}

func extractContentType(withParams bool) func(ctx context.Context, resp *Response) (MediaType, bool) {
	return func(ctx context.Context, resp *Response) (MediaType, bool) {
		header := resp.Header.Get("Content-Type")
		if header == "" {
			return MediaType{}, false
		}
		value, params, err := mime.ParseMediaType(header)
		if err != nil {
			return MediaType{}, false
		}
		typ, subtype, ok := strings.Cut(value, "/")
		if !ok {
			return MediaType{}, false
		}
		mt := MediaType{Type: typ, Subtype: subtype}
		if withParams {
			mt.Params = canonicalParams(params)
		}
		return mt, true
	}
}

// canonicalParams renders a Content-Type parameter map into a
// deterministic, order-independent string so MediaType stays a plain,
// comparable struct usable directly as a RoutingTree map key — total and
// deterministic equality, per spec.md §3's Attribute contract.
func canonicalParams(params map[string]string) string {
	if len(params) == 0 {
		return ""
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+params[k])
	}
	return strings.Join(parts, ";")
}

// BodyField routes on a single field of a JSON response body, extracted
// via a gjson path, without requiring a full decode. It supplements
// spec.md's fixed navigator table with a "user-supplied function of the
// response" navigator grounded in the teacher's JSON field-inspection
// machinery (inspector.go's jsonView/JSONInspector), useful for routing
// on e.g. an error envelope's "error.code" field.
func (navigators) BodyField(path string) Navigator[string] {
	return NavigatorFunc[string]{ExtractFunc: func(ctx context.Context, resp *Response) (string, bool) {
		data, err := resp.Peek()
		if err != nil {
			return "", false
		}
		result := gjson.GetBytes(data, path)
		if !result.Exists() {
			return "", false
		}
		return result.String(), true
	}}
}
