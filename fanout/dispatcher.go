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
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/nozzle/throttler"
	"github.com/sirupsen/logrus"

	"sigs.k8s.io/fanout-utils/request"
)

var (
	// ErrUnroutableMethod is returned when a descriptor's verb has no
	// transport operation. Descriptors built through request.New cannot
	// trigger it; a zero-value or hand-rolled descriptor can. This is a
	// defect in the batch, so it aborts the whole call instead of being
	// absorbed into a per-request outcome.
	ErrUnroutableMethod = errors.New("no transport operation for method")

	// ErrNilRequest is returned when a batch contains a nil descriptor.
	ErrNilRequest = errors.New("nil request descriptor")
)

// Dispatcher fans batches of requests out over a shared connection pool.
type Dispatcher struct {
	options *dispatcherOptions
	TransportImplementation
}

// dispatcherOptions has the configurable bits of the dispatcher.
type dispatcherOptions struct {
	MaxParallel       int           // Maximum in-flight requests per dispatch, <= 0 means one worker per request
	Timeout           time.Duration // Overall deadline for a whole dispatch call, 0 means none
	FailureStatusCode int           // Status recorded on outcomes that never got a response
	Client            *http.Client  // Caller-owned client overriding the per-dispatch pool
}

// String returns a string representation of the options.
func (do *dispatcherOptions) String() string {
	return fmt.Sprintf(
		"fanout.Dispatcher options: MaxParallel: %d - Timeout: %s - FailureStatusCode: %d",
		do.MaxParallel, do.Timeout, do.FailureStatusCode,
	)
}

var defaultDispatcherOptions = dispatcherOptions{
	MaxParallel:       0,
	Timeout:           0,
	FailureStatusCode: DefaultFailureStatusCode,
}

// NewDispatcher returns a new dispatcher with default options.
func NewDispatcher() *Dispatcher {
	options := defaultDispatcherOptions
	return &Dispatcher{
		options:                 &options,
		TransportImplementation: &defaultTransportImplementation{},
	}
}

// SetImplementation sets the transport implementation.
func (d *Dispatcher) SetImplementation(impl TransportImplementation) {
	d.TransportImplementation = impl
}

// WithMaxParallel caps how many requests are in flight at once. Values
// of zero or less remove the cap: every request in the batch gets its
// own worker.
func (d *Dispatcher) WithMaxParallel(workers int) *Dispatcher {
	d.options.MaxParallel = workers
	return d
}

// WithTimeout sets an overall deadline for each dispatch call.
func (d *Dispatcher) WithTimeout(timeout time.Duration) *Dispatcher {
	d.options.Timeout = timeout
	return d
}

// WithFailureStatusCode changes the status recorded on hard-failure
// outcomes.
func (d *Dispatcher) WithFailureStatusCode(code int) *Dispatcher {
	d.options.FailureStatusCode = code
	return d
}

// WithClient makes dispatch calls run over the given client instead of
// the built-in pool. The dispatcher never closes a caller-owned client.
func (d *Dispatcher) WithClient(client *http.Client) *Dispatcher {
	d.options.Client = client
	return d
}

// operation sends one request through the transport implementation.
type operation func(
	ctx context.Context, impl TransportImplementation, client *http.Client, req *request.Request,
) (*http.Response, error)

// operations routes each verb to its transport call. The keys mirror
// request.Methods(): only GET drops the payload.
var operations = map[request.Method]operation{
	request.MethodGet: func(ctx context.Context, impl TransportImplementation, client *http.Client, req *request.Request) (*http.Response, error) {
		return impl.SendGetRequest(ctx, client, req.Target(), req.Headers())
	},
	request.MethodPost: func(ctx context.Context, impl TransportImplementation, client *http.Client, req *request.Request) (*http.Response, error) {
		return impl.SendPostRequest(ctx, client, req.Target(), req.Payload(), req.Headers())
	},
	request.MethodPut: func(ctx context.Context, impl TransportImplementation, client *http.Client, req *request.Request) (*http.Response, error) {
		return impl.SendPutRequest(ctx, client, req.Target(), req.Payload(), req.Headers())
	},
	request.MethodPatch: func(ctx context.Context, impl TransportImplementation, client *http.Client, req *request.Request) (*http.Response, error) {
		return impl.SendPatchRequest(ctx, client, req.Target(), req.Payload(), req.Headers())
	},
	request.MethodOptions: func(ctx context.Context, impl TransportImplementation, client *http.Client, req *request.Request) (*http.Response, error) {
		return impl.SendOptionsRequest(ctx, client, req.Target(), req.Payload(), req.Headers())
	},
	request.MethodDelete: func(ctx context.Context, impl TransportImplementation, client *http.Client, req *request.Request) (*http.Response, error) {
		return impl.SendDeleteRequest(ctx, client, req.Target(), req.Payload(), req.Headers())
	},
}

// route resolves the transport operation for one descriptor.
func route(req *request.Request) (operation, error) {
	if req == nil {
		return nil, ErrNilRequest
	}
	op, ok := operations[req.Method()]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnroutableMethod, string(req.Method()))
	}
	return op, nil
}

// Dispatch sends all requests concurrently and fails fast: the first
// hard failure fails the whole call, the shared context is canceled and
// in-flight siblings are abandoned. On success the outcomes are aligned
// with the request batch. Which failure is "first" under concurrency is
// not deterministic.
func (d *Dispatcher) Dispatch(ctx context.Context, reqs []*request.Request) (Outcomes, error) {
	return d.dispatch(ctx, reqs, false)
}

// DispatchCollect sends all requests concurrently and collects every
// result: the returned outcomes have the same length and order as the
// batch, with hard failures inlined as sentinel outcomes. The error
// return is reserved for batch-level defects such as unroutable
// descriptors, never for per-request failures.
func (d *Dispatcher) DispatchCollect(ctx context.Context, reqs []*request.Request) (Outcomes, error) {
	return d.dispatch(ctx, reqs, true)
}

// DispatchSplit behaves like DispatchCollect but partitions the result:
// delivered outcomes on one side, hard-failure errors on the other. The
// two lengths add up to the batch size; alignment is not preserved.
func (d *Dispatcher) DispatchSplit(ctx context.Context, reqs []*request.Request) (Outcomes, []error, error) {
	outcomes, err := d.dispatch(ctx, reqs, true)
	if err != nil {
		return nil, nil, err
	}
	delivered, errs := outcomes.Split()
	return delivered, errs, nil
}

// dispatch is the shared engine behind all entry points.
func (d *Dispatcher) dispatch(ctx context.Context, reqs []*request.Request, collect bool) (Outcomes, error) {
	if len(reqs) == 0 {
		return Outcomes{}, nil
	}

	// Resolve every operation before spawning anything. A miss here is
	// a logic error in the batch and never becomes an outcome.
	ops := make([]operation, len(reqs))
	for i, req := range reqs {
		op, err := route(req)
		if err != nil {
			return nil, fmt.Errorf("routing request %d: %w", i, err)
		}
		ops[i] = op
	}

	var cancel context.CancelFunc
	if d.options.Timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, d.options.Timeout)
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}
	defer cancel()

	client := d.options.Client
	if client == nil {
		client = newPooledClient()
		defer client.CloseIdleConnections()
	}

	workers := d.options.MaxParallel
	if workers <= 0 || workers > len(reqs) {
		workers = len(reqs)
	}

	logrus.Debugf("Dispatching %d requests with %d workers", len(reqs), workers)

	outcomes := make(Outcomes, len(reqs))
	var (
		m        sync.Mutex
		failOnce sync.Once
		firstErr error
	)

	t := throttler.New(workers, len(reqs))
	for i := range reqs {
		go func(i int, req *request.Request, op operation) {
			outcome := d.execute(ctx, client, req, op)

			m.Lock()
			outcomes[i] = outcome
			m.Unlock()

			if !collect && outcome.Failed() {
				failOnce.Do(func() {
					firstErr = fmt.Errorf("dispatching %s: %w", req, outcome.Err)
					cancel()
				})
			}
			t.Done(outcome.Err)
		}(i, reqs[i], ops[i])

		// The throttler blocks here once all workers are busy and, on
		// the last request, until the whole batch has completed.
		t.Throttle()
	}

	if !collect && firstErr != nil {
		return nil, firstErr
	}
	return outcomes, nil
}

// execute runs one request's unit of work end to end: send, buffer,
// decode, assemble. Everything that goes wrong in here is contained in
// the returned outcome.
func (d *Dispatcher) execute(
	ctx context.Context, client *http.Client, req *request.Request, op operation,
) Outcome {
	logrus.Debugf("Sending %s request to %s", req.Method(), req.Target())

	resp, err := op(ctx, d.TransportImplementation, client, req)
	if err != nil {
		logrus.Debugf("Request to %s failed: %v", req.Target(), err)
		return Outcome{
			Request:    req,
			StatusCode: d.options.FailureStatusCode,
			Err:        err,
		}
	}
	defer resp.Body.Close()

	// The body is buffered in full before decoding so the raw text is
	// still around when the decode falls back.
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Outcome{
			Request:    req,
			StatusCode: d.options.FailureStatusCode,
			Err:        fmt.Errorf("reading response from %s: %w", req.Target(), err),
		}
	}

	body, decodeErr := decodeBody(resp.Header.Get("Content-Type"), raw)
	if decodeErr != nil {
		logrus.Warnf("Keeping body of %s as text: %v", req.Target(), decodeErr)
	}

	return Outcome{
		Request:    req,
		StatusCode: resp.StatusCode,
		Body:       body,
		Headers:    flattenHeaders(resp.Header),
		Err:        decodeErr,
	}
}

// flattenHeaders reduces response headers to single values, keeping the
// first value of each key.
func flattenHeaders(header http.Header) map[string]string {
	flat := make(map[string]string, len(header))
	for k, values := range header {
		if len(values) > 0 {
			flat[k] = values[0]
		}
	}
	return flat
}
