/*
Copyright 2026 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package request holds the immutable request descriptors the fanout
// dispatcher operates on. A descriptor is fully validated when it is
// built: the verb must belong to the supported set, the url must parse,
// and the body must encode to JSON. Anything that would fail later is
// rejected here, so a descriptor that exists can always be dispatched.
package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"net/http"
	"net/url"
	"slices"
)

// Method is the HTTP verb a request descriptor is dispatched with.
type Method string

// The verbs a descriptor can be built with. The set is closed: the
// dispatcher routes exactly these and New rejects everything else.
const (
	MethodGet     Method = http.MethodGet
	MethodPost    Method = http.MethodPost
	MethodPut     Method = http.MethodPut
	MethodPatch   Method = http.MethodPatch
	MethodOptions Method = http.MethodOptions
	MethodDelete  Method = http.MethodDelete
)

var (
	// ErrMissingURL is returned by New when no url was provided.
	ErrMissingURL = errors.New("request url must not be empty")

	// ErrUnsupportedMethod is returned by New when the verb is not part
	// of the supported method set.
	ErrUnsupportedMethod = errors.New("unsupported http method")
)

var methodSet = map[Method]struct{}{
	MethodGet:     {},
	MethodPost:    {},
	MethodPut:     {},
	MethodPatch:   {},
	MethodOptions: {},
	MethodDelete:  {},
}

// Methods returns the supported verb set.
func Methods() []Method {
	return []Method{
		MethodGet, MethodPost, MethodPut,
		MethodPatch, MethodOptions, MethodDelete,
	}
}

// Known returns true when m belongs to the supported verb set.
func (m Method) Known() bool {
	_, ok := methodSet[m]
	return ok
}

// Request describes a single HTTP call: a verb, a url and optionally a
// JSON body, extra query parameters and headers. Requests are immutable
// once built and safe to reuse across dispatch calls, including
// concurrent ones.
type Request struct {
	method      Method
	url         string
	target      string
	body        map[string]any
	payload     []byte
	queryParams map[string]string
	headers     map[string]string
}

// Option configures a Request while it is being built by New.
type Option func(*Request)

// WithBody sets the JSON body. A nil map means no payload is sent, a
// non-nil map (even an empty one) is encoded and sent as JSON.
func WithBody(body map[string]any) Option {
	return func(r *Request) {
		r.body = body
	}
}

// WithQueryParams sets query parameters that are merged into the url's
// query string.
func WithQueryParams(params map[string]string) Option {
	return func(r *Request) {
		r.queryParams = params
	}
}

// WithHeaders sets the headers sent with the request.
func WithHeaders(headers map[string]string) Option {
	return func(r *Request) {
		r.headers = headers
	}
}

// New validates and builds a request descriptor. The url and verb are
// checked and the JSON payload and effective target url are computed
// here, once, so every construction problem surfaces before anything is
// dispatched.
func New(method Method, rawURL string, opts ...Option) (*Request, error) {
	if rawURL == "" {
		return nil, ErrMissingURL
	}
	if !method.Known() {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMethod, string(method))
	}

	r := &Request{
		method: method,
		url:    rawURL,
	}
	for _, opt := range opts {
		opt(r)
	}

	// Detach the option maps from the caller so later mutations on the
	// caller's side cannot reach into the descriptor.
	r.body = maps.Clone(r.body)
	r.queryParams = maps.Clone(r.queryParams)
	r.headers = maps.Clone(r.headers)

	target, err := buildTarget(rawURL, r.queryParams)
	if err != nil {
		return nil, fmt.Errorf("parsing url %s: %w", rawURL, err)
	}
	r.target = target

	if r.body != nil {
		payload, err := json.Marshal(r.body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		r.payload = payload
	}

	return r, nil
}

// buildTarget merges the query parameters into the url query string.
func buildTarget(rawURL string, params map[string]string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	if len(params) == 0 {
		return rawURL, nil
	}

	query := u.Query()
	for k, v := range params {
		query.Set(k, v)
	}
	u.RawQuery = query.Encode()

	return u.String(), nil
}

// Method returns the verb the request is dispatched with.
func (r *Request) Method() Method {
	return r.method
}

// URL returns the url the request was built with, without the merged
// query parameters.
func (r *Request) URL() string {
	return r.url
}

// Target returns the effective url the request is sent to, with the
// query parameters merged into the query string.
func (r *Request) Target() string {
	return r.target
}

// HasBody returns true when the request carries a JSON payload.
func (r *Request) HasBody() bool {
	return r.body != nil
}

// Body returns a copy of the body map, nil when the request has none.
func (r *Request) Body() map[string]any {
	return maps.Clone(r.body)
}

// Payload returns a copy of the encoded JSON body, nil when the request
// has none.
func (r *Request) Payload() []byte {
	return slices.Clone(r.payload)
}

// QueryParams returns a copy of the query parameters.
func (r *Request) QueryParams() map[string]string {
	return maps.Clone(r.queryParams)
}

// Headers returns a copy of the request headers.
func (r *Request) Headers() map[string]string {
	return maps.Clone(r.headers)
}

// String returns the verb and target of the request.
func (r *Request) String() string {
	return fmt.Sprintf("%s %s", r.method, r.target)
}
