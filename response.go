package riptide

import (
	"bytes"
	"io"
	"net/http"
	"strings"
)

func httpStatusText(code int) string {
	if text := http.StatusText(code); text != "" {
		return text
	}
	return "Unknown"
}

// Response is riptide's response wrapper: the attribute source every
// Navigator extracts from and every Route consumes. It is deliberately a
// thin adapter over *http.Response rather than a reimplementation of one —
// the underlying transport (an external collaborator per spec.md §1) keeps
// owning HTTP semantics.
type Response struct {
	StatusCode int
	Reason     string
	Header     http.Header
	Body       io.ReadCloser

	peeked []byte
	isPeek bool
}

// NewResponse wraps a raw *http.Response for dispatch.
func NewResponse(r *http.Response) *Response {
	_, reason, found := strings.Cut(r.Status, " ")
	if !found {
		reason = r.Status
	}
	return &Response{
		StatusCode: r.StatusCode,
		Reason:     reason,
		Header:     r.Header,
		Body:       r.Body,
	}
}

// Peek reads and buffers the entire body, returning the buffered bytes,
// and resets Body to a fresh reader over those bytes so later consumers
// (a Converter, a Route) still observe the full single-consumption
// stream spec.md requires. Safe to call multiple times; the buffer is
// only read from the wire once.
func (r *Response) Peek() ([]byte, error) {
	if r.isPeek {
		return r.peeked, nil
	}
	if r.Body == nil {
		r.isPeek = true
		return nil, nil
	}
	data, err := io.ReadAll(r.Body)
	_ = r.Body.Close()
	if err != nil {
		return nil, err
	}
	r.peeked = data
	r.isPeek = true
	r.Body = io.NopCloser(bytes.NewReader(data))
	return data, nil
}

// Status is an HTTP status code reified as a named value, the "status
// enum" navigator attribute of spec.md §4.3, distinct from the plain int
// StatusCode attribute so the two navigators' bindings can't be mixed up
// by accident.
type Status int

// Well-known statuses for use in bindings, e.g. On(riptide.StatusNotFound).
const (
	StatusOK                  Status = 200
	StatusCreated             Status = 201
	StatusNoContent           Status = 204
	StatusMovedPermanently    Status = 301
	StatusFound               Status = 302
	StatusNotModified         Status = 304
	StatusBadRequest          Status = 400
	StatusUnauthorized        Status = 401
	StatusForbidden           Status = 403
	StatusNotFound            Status = 404
	StatusConflict            Status = 409
	StatusUnprocessableEntity Status = 422
	StatusTooManyRequests     Status = 429
	StatusInternalServerError Status = 500
	StatusBadGateway          Status = 502
	StatusServiceUnavailable  Status = 503
	StatusGatewayTimeout      Status = 504
)

func (s Status) String() string {
	return httpStatusText(int(s))
}

// Series is the HTTP status-family classification: statusCode / 100.
type Series int

const (
	SeriesInformational Series = 1
	SeriesSuccessful    Series = 2
	SeriesRedirection   Series = 3
	SeriesClientError   Series = 4
	SeriesServerError   Series = 5
)

func (s Series) String() string {
	switch s {
	case SeriesInformational:
		return "INFORMATIONAL"
	case SeriesSuccessful:
		return "SUCCESSFUL"
	case SeriesRedirection:
		return "REDIRECTION"
	case SeriesClientError:
		return "CLIENT_ERROR"
	case SeriesServerError:
		return "SERVER_ERROR"
	default:
		return "UNKNOWN"
	}
}

// seriesOf classifies a status code into its Series, or false if the
// status code is out of the valid HTTP range (100-599).
func seriesOf(statusCode int) (Series, bool) {
	if statusCode < 100 || statusCode > 599 {
		return 0, false
	}
	return Series(statusCode / 100), true
}

// MediaType is riptide's comparable representation of a parsed
// Content-Type value: Type and Subtype hold the media type's two parts,
// Params holds a canonical, order-independent serialisation of its
// parameters (see canonicalParams in navigators.go). Being a plain
// three-string struct, MediaType is a valid, hashable RoutingTree key —
// resolving spec.md §9's open question by folding parameter comparison
// into attribute equality rather than into a bespoke Select.
type MediaType struct {
	Type    string
	Subtype string
	Params  string
}

func (m MediaType) String() string {
	s := m.Type + "/" + m.Subtype
	if m.Params != "" {
		s += ";" + m.Params
	}
	return s
}
