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
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	method      string
	body        string
	contentType string
	headers     http.Header
}

func newRecordingServer(t *testing.T) (*httptest.Server, *recordedRequest) {
	t.Helper()
	recorded := &recordedRequest{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		recorded.method = r.Method
		recorded.body = string(body)
		recorded.contentType = r.Header.Get("Content-Type")
		recorded.headers = r.Header.Clone()
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(`{}`)); err != nil {
			t.Error(err)
		}
	}))
	t.Cleanup(server.Close)
	return server, recorded
}

func TestSendRequestMethods(t *testing.T) {
	t.Parallel()

	impl := &defaultTransportImplementation{}
	payload := []byte(`{"foo": "bar"}`)

	for _, tc := range []struct {
		method string
		send   func(ctx context.Context, client *http.Client, url string) (*http.Response, error)
	}{
		{
			method: http.MethodGet,
			send: func(ctx context.Context, client *http.Client, url string) (*http.Response, error) {
				return impl.SendGetRequest(ctx, client, url, nil)
			},
		},
		{
			method: http.MethodPost,
			send: func(ctx context.Context, client *http.Client, url string) (*http.Response, error) {
				return impl.SendPostRequest(ctx, client, url, payload, nil)
			},
		},
		{
			method: http.MethodPut,
			send: func(ctx context.Context, client *http.Client, url string) (*http.Response, error) {
				return impl.SendPutRequest(ctx, client, url, payload, nil)
			},
		},
		{
			method: http.MethodPatch,
			send: func(ctx context.Context, client *http.Client, url string) (*http.Response, error) {
				return impl.SendPatchRequest(ctx, client, url, payload, nil)
			},
		},
		{
			method: http.MethodOptions,
			send: func(ctx context.Context, client *http.Client, url string) (*http.Response, error) {
				return impl.SendOptionsRequest(ctx, client, url, payload, nil)
			},
		},
		{
			method: http.MethodDelete,
			send: func(ctx context.Context, client *http.Client, url string) (*http.Response, error) {
				return impl.SendDeleteRequest(ctx, client, url, payload, nil)
			},
		},
	} {
		t.Run(tc.method, func(t *testing.T) {
			server, recorded := newRecordingServer(t)

			resp, err := tc.send(context.Background(), server.Client(), server.URL)
			require.NoError(t, err)
			require.NoError(t, resp.Body.Close())

			require.Equal(t, tc.method, recorded.method)
			if tc.method == http.MethodGet {
				// GET cannot carry a payload.
				assert.Empty(t, recorded.body)
				assert.Empty(t, recorded.contentType)
			} else {
				assert.Equal(t, string(payload), recorded.body)
				assert.Equal(t, "application/json", recorded.contentType)
			}
		})
	}
}

func TestSendRequestHeaders(t *testing.T) {
	t.Parallel()

	impl := &defaultTransportImplementation{}
	server, recorded := newRecordingServer(t)

	resp, err := impl.SendPostRequest(
		context.Background(), server.Client(), server.URL,
		[]byte(`{}`), map[string]string{
			"X-Test":       "Test",
			"Content-Type": "application/vnd.api+json",
		},
	)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	assert.Equal(t, "Test", recorded.headers.Get("X-Test"))
	// An explicit content type wins over the payload default.
	assert.Equal(t, "application/vnd.api+json", recorded.contentType)
}

func TestSendRequestContextCanceled(t *testing.T) {
	t.Parallel()

	impl := &defaultTransportImplementation{}
	server, _ := newRecordingServer(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resp, err := impl.SendGetRequest(ctx, server.Client(), server.URL, nil) //nolint: bodyclose // the request fails, there is no body
	require.Error(t, err)
	require.ErrorIs(t, err, context.Canceled)
	require.Nil(t, resp)
}

func TestSendRequestInvalidURL(t *testing.T) {
	t.Parallel()

	impl := &defaultTransportImplementation{}

	resp, err := impl.SendGetRequest( //nolint: bodyclose // the request fails, there is no body
		context.Background(), http.DefaultClient, "http://host:port-is-not-numeric/", nil,
	)
	require.Error(t, err)
	require.Contains(t, err.Error(), "building GET request")
	require.Nil(t, resp)
}

func TestSendRequestConnectionRefused(t *testing.T) {
	t.Parallel()

	impl := &defaultTransportImplementation{}
	server, _ := newRecordingServer(t)
	url := server.URL
	server.Close()

	resp, err := impl.SendGetRequest( //nolint: bodyclose // the request fails, there is no body
		context.Background(), http.DefaultClient, url, nil,
	)
	require.Error(t, err)
	require.Contains(t, err.Error(), "sending GET request")
	require.Nil(t, resp)
}

func TestNewPooledClient(t *testing.T) {
	t.Parallel()

	client := newPooledClient()
	require.NotNil(t, client)

	// Deadlines come from the dispatch context, never from the client.
	require.Zero(t, client.Timeout)

	transport, ok := client.Transport.(*http.Transport)
	require.True(t, ok)
	assert.Equal(t, maxIdleConns, transport.MaxIdleConns)
	assert.Equal(t, maxIdleConnsPerHost, transport.MaxIdleConnsPerHost)
	assert.Equal(t, idleConnTimeout, transport.IdleConnTimeout)
	assert.NotNil(t, transport.DialContext)
	assert.NotNil(t, transport.Proxy)
}
