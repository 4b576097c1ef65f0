package riptide

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// Converter decodes a Response body into an application-chosen type.
// Riptide treats it, like the request factory, as an external
// collaborator — content-type-driven deserialisation lives outside the
// core dispatch algebra.
type Converter interface {
	// Convert decodes resp's body into out, which is always a non-nil
	// pointer.
	Convert(resp *Response, out any) error
}

// JSONConverter is the default Converter, backed by encoding/json. No
// third-party full-unmarshal library appears in the retrieved corpus (the
// one JSON library present, tidwall/gjson, is a read-only query engine,
// not a struct decoder), so stdlib encoding/json is used for decoding
// proper; gjson is reserved for the Peek helper below, mirroring how the
// teacher's own JSONInspector uses gjson for cheap field access ahead of
// a full decode.
type JSONConverter struct{}

// Convert implements Converter.
func (JSONConverter) Convert(resp *Response, out any) error {
	data, err := resp.Peek()
	if err != nil {
		return fmt.Errorf("riptide: read body: %w", err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("riptide: decode json body: %w", err)
	}
	return nil
}

// Peek extracts a single field from the response body at the given gjson
// path without requiring a destination struct for the whole payload. It
// is the same buffered-bytes approach the teacher's jsonView takes for
// Discriminator field checks, offered here for handlers that only need
// one value out of a larger body.
func (JSONConverter) Peek(resp *Response, path string) (gjson.Result, error) {
	data, err := resp.Peek()
	if err != nil {
		return gjson.Result{}, err
	}
	return gjson.GetBytes(data, path), nil
}

// DefaultConverter is the Converter NewRest installs as a Rest's
// Converter. Binding constructors take their Converter explicitly and do
// not fall back to it.
var DefaultConverter Converter = JSONConverter{}
