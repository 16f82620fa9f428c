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

package fanout_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sigs.k8s.io/fanout-utils/fanout"
	"sigs.k8s.io/fanout-utils/internal/testserver"
	"sigs.k8s.io/fanout-utils/request"
)

func TestDispatchCollectAgainstServer(t *testing.T) {
	t.Parallel()

	server := testserver.New()
	t.Cleanup(server.Close)

	// Alternate plain GETs with POST echoes carrying the batch index,
	// so every outcome can be traced back to its request.
	reqs := make([]*request.Request, 0, 100)
	for i := 0; i < 100; i++ {
		var (
			req *request.Request
			err error
		)
		if i%2 == 0 {
			req, err = request.New(request.MethodGet, server.URL+"/")
		} else {
			req, err = request.New(
				request.MethodPost, server.URL+"/foo",
				request.WithBody(map[string]any{"foo": "bar", "index": i}),
			)
		}
		require.NoError(t, err)
		reqs = append(reqs, req)
	}

	outcomes, err := fanout.NewDispatcher().DispatchCollect(context.Background(), reqs)
	require.NoError(t, err)
	require.Len(t, outcomes, len(reqs))
	require.Equal(t, len(reqs), outcomes.Succeeded())
	require.Zero(t, outcomes.HardFailures())

	for i, outcome := range outcomes {
		require.True(t, outcome.Succeeded())
		require.Equal(t, http.StatusOK, outcome.StatusCode)
		require.Same(t, reqs[i], outcome.Request)

		if i%2 == 0 {
			assert.Equal(t, "Hello, world!", outcome.Body["message"])
			continue
		}

		echo := struct {
			Foo   string `mapstructure:"foo"`
			Index int    `mapstructure:"index"`
		}{}
		require.NoError(t, mapstructure.Decode(outcome.Body, &echo))
		assert.Equal(t, "bar", echo.Foo)
		assert.Equal(t, i, echo.Index)
		assert.Equal(t, "Test", outcome.Headers["X-Test"])
	}
}

func TestDispatchCollectAbortedConnection(t *testing.T) {
	t.Parallel()

	server := testserver.New()
	t.Cleanup(server.Close)

	const broken = 50
	urls := make([]string, 101)
	for i := range urls {
		urls[i] = server.URL + "/"
	}
	urls[broken] = server.URL + "/exception"
	reqs := buildGetRequests(t, urls)

	outcomes, err := fanout.NewDispatcher().DispatchCollect(context.Background(), reqs)
	require.NoError(t, err)
	require.Len(t, outcomes, len(reqs))
	require.Equal(t, 1, outcomes.HardFailures())
	require.Equal(t, len(reqs)-1, outcomes.Succeeded())

	failed := outcomes[broken]
	require.True(t, failed.Failed())
	require.Equal(t, fanout.DefaultFailureStatusCode, failed.StatusCode)
	require.Same(t, reqs[broken], failed.Request)
	require.Nil(t, failed.Body)
}

func TestDispatchFailFastAgainstServer(t *testing.T) {
	t.Parallel()

	server := testserver.New()
	t.Cleanup(server.Close)

	reqs := buildGetRequests(t, []string{
		server.URL + "/", server.URL + "/exception", server.URL + "/",
	})

	outcomes, err := fanout.NewDispatcher().Dispatch(context.Background(), reqs)
	require.Error(t, err)
	require.Contains(t, err.Error(), "dispatching GET")
	require.Nil(t, outcomes)
}

func TestDispatchCollectDeliveredServerError(t *testing.T) {
	t.Parallel()

	server := testserver.New()
	t.Cleanup(server.Close)

	reqs := buildGetRequests(t, []string{server.URL + "/error"})

	outcomes, err := fanout.NewDispatcher().DispatchCollect(context.Background(), reqs)
	require.NoError(t, err)
	require.Len(t, outcomes, 1)

	// A delivered 500 is not a hard failure, just a response whose
	// text body survives under the fallback key.
	outcome := outcomes[0]
	require.False(t, outcome.Failed())
	require.True(t, outcome.DecodeFallback())
	require.Equal(t, http.StatusInternalServerError, outcome.StatusCode)
	require.Contains(t, outcome.Body[fanout.TextBodyKey], "Internal Server Error")
	require.Zero(t, outcomes.HardFailures())
}

func TestDispatchCollectTextResponse(t *testing.T) {
	t.Parallel()

	server := testserver.New()
	t.Cleanup(server.Close)

	reqs := buildGetRequests(t, []string{server.URL + "/text"})

	outcomes, err := fanout.NewDispatcher().DispatchCollect(context.Background(), reqs)
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	require.True(t, outcomes[0].DecodeFallback())
	require.Equal(t, http.StatusOK, outcomes[0].StatusCode)
	require.Equal(t, "Hello, world!", outcomes[0].Body[fanout.TextBodyKey])
	require.ErrorIs(t, outcomes[0].Err, fanout.ErrNonJSONContentType)
}

func TestDispatchOrderWithSlowRequest(t *testing.T) {
	t.Parallel()

	server := testserver.New()
	t.Cleanup(server.Close)

	slow, err := request.New(
		request.MethodGet, server.URL+"/slow",
		request.WithQueryParams(map[string]string{"delay": "150ms"}),
	)
	require.NoError(t, err)
	fast := buildGetRequests(t, []string{server.URL + "/", server.URL + "/text"})
	reqs := []*request.Request{slow, fast[0], fast[1]}

	outcomes, err := fanout.NewDispatcher().DispatchCollect(context.Background(), reqs)
	require.NoError(t, err)
	require.Len(t, outcomes, 3)

	assert.Equal(t, "slow", outcomes[0].Body["message"])
	assert.Equal(t, "Hello, world!", outcomes[1].Body["message"])
	assert.Equal(t, "Hello, world!", outcomes[2].Body[fanout.TextBodyKey])
}

func TestDispatchTimeoutAgainstSlowServer(t *testing.T) {
	t.Parallel()

	server := testserver.New()
	t.Cleanup(server.Close)

	slow, err := request.New(
		request.MethodGet, server.URL+"/slow",
		request.WithQueryParams(map[string]string{"delay": "500ms"}),
	)
	require.NoError(t, err)

	dispatcher := fanout.NewDispatcher().WithTimeout(50 * time.Millisecond)
	outcomes, err := dispatcher.DispatchCollect(context.Background(), []*request.Request{slow})
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	require.True(t, outcomes[0].Failed())
	require.ErrorIs(t, outcomes[0].Err, context.DeadlineExceeded)
}

func TestDispatchSplitAgainstServer(t *testing.T) {
	t.Parallel()

	server := testserver.New()
	t.Cleanup(server.Close)

	reqs := buildGetRequests(t, []string{
		server.URL + "/",
		server.URL + "/exception",
		server.URL + "/text",
	})

	delivered, errs, err := fanout.NewDispatcher().DispatchSplit(context.Background(), reqs)
	require.NoError(t, err)
	require.Len(t, delivered, 2)
	require.Len(t, errs, 1)

	require.True(t, delivered[0].Succeeded())
	require.True(t, delivered[1].DecodeFallback())
	require.Contains(t, errs[0].Error(), "/exception")
}

func TestDispatchWithSharedClient(t *testing.T) {
	t.Parallel()

	server := testserver.New()
	t.Cleanup(server.Close)

	dispatcher := fanout.NewDispatcher().WithClient(server.Client())
	reqs := buildGetRequests(t, []string{server.URL + "/", server.URL + "/"})

	// The caller owned client survives multiple dispatch calls.
	for i := 0; i < 3; i++ {
		outcomes, err := dispatcher.DispatchCollect(context.Background(), reqs)
		require.NoError(t, err)
		require.Equal(t, len(reqs), outcomes.Succeeded())
	}
}
