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

package fanout

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate
//go:generate /usr/bin/env bash -c "cat ../scripts/boilerplate/boilerplate.generatego.txt fanoutfakes/fake_transport_implementation.go > fanoutfakes/_fake_transport_implementation.go && mv fanoutfakes/_fake_transport_implementation.go fanoutfakes/fake_transport_implementation.go"

// TransportImplementation is the set of verb-level send operations the
// dispatcher routes requests to. GET deliberately takes no payload, all
// other verbs do.
//
//counterfeiter:generate . TransportImplementation
type TransportImplementation interface {
	SendGetRequest(ctx context.Context, client *http.Client, url string, headers map[string]string) (*http.Response, error)
	SendPostRequest(ctx context.Context, client *http.Client, url string, payload []byte, headers map[string]string) (*http.Response, error)
	SendPutRequest(ctx context.Context, client *http.Client, url string, payload []byte, headers map[string]string) (*http.Response, error)
	SendPatchRequest(ctx context.Context, client *http.Client, url string, payload []byte, headers map[string]string) (*http.Response, error)
	SendOptionsRequest(ctx context.Context, client *http.Client, url string, payload []byte, headers map[string]string) (*http.Response, error)
	SendDeleteRequest(ctx context.Context, client *http.Client, url string, payload []byte, headers map[string]string) (*http.Response, error)
}

type defaultTransportImplementation struct{}

// SendGetRequest performs the actual GET request.
func (impl *defaultTransportImplementation) SendGetRequest(
	ctx context.Context, client *http.Client, url string, headers map[string]string,
) (*http.Response, error) {
	return send(ctx, client, http.MethodGet, url, nil, headers)
}

// SendPostRequest sends the payload in a POST request to the url.
func (impl *defaultTransportImplementation) SendPostRequest(
	ctx context.Context, client *http.Client, url string, payload []byte, headers map[string]string,
) (*http.Response, error) {
	return send(ctx, client, http.MethodPost, url, payload, headers)
}

// SendPutRequest sends the payload in a PUT request to the url.
func (impl *defaultTransportImplementation) SendPutRequest(
	ctx context.Context, client *http.Client, url string, payload []byte, headers map[string]string,
) (*http.Response, error) {
	return send(ctx, client, http.MethodPut, url, payload, headers)
}

// SendPatchRequest sends the payload in a PATCH request to the url.
func (impl *defaultTransportImplementation) SendPatchRequest(
	ctx context.Context, client *http.Client, url string, payload []byte, headers map[string]string,
) (*http.Response, error) {
	return send(ctx, client, http.MethodPatch, url, payload, headers)
}

// SendOptionsRequest sends an OPTIONS request, including the payload
// when one is set.
func (impl *defaultTransportImplementation) SendOptionsRequest(
	ctx context.Context, client *http.Client, url string, payload []byte, headers map[string]string,
) (*http.Response, error) {
	return send(ctx, client, http.MethodOptions, url, payload, headers)
}

// SendDeleteRequest sends a DELETE request, including the payload when
// one is set.
func (impl *defaultTransportImplementation) SendDeleteRequest(
	ctx context.Context, client *http.Client, url string, payload []byte, headers map[string]string,
) (*http.Response, error) {
	return send(ctx, client, http.MethodDelete, url, payload, headers)
}

// send builds and performs one HTTP request. A nil payload means no
// request body at all, a non-nil payload is sent as JSON unless the
// caller set an explicit content type.
func send(
	ctx context.Context, client *http.Client, method, url string, payload []byte, headers map[string]string,
) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("building %s request for %s: %w", method, url, err)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if payload != nil && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", jsonContentType)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending %s request to %s: %w", method, url, err)
	}

	return resp, nil
}

// Connection pool tuning for the per-dispatch client.
const (
	connectTimeout        = 2 * time.Second
	connectKeepAlive      = 30 * time.Second
	maxIdleConns          = 100
	maxIdleConnsPerHost   = 10
	idleConnTimeout       = 90 * time.Second
	tlsHandshakeTimeout   = 2 * time.Second
	expectContinueTimeout = 1 * time.Second
)

// newPooledClient returns the shared connection pool a single dispatch
// call runs over. There is no client-level timeout: cancellation flows
// through the dispatch context.
func newPooledClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   connectTimeout,
				KeepAlive: connectKeepAlive,
			}).DialContext,
			MaxIdleConns:          maxIdleConns,
			MaxIdleConnsPerHost:   maxIdleConnsPerHost,
			IdleConnTimeout:       idleConnTimeout,
			TLSHandshakeTimeout:   tlsHandshakeTimeout,
			ExpectContinueTimeout: expectContinueTimeout,
		},
	}
}
