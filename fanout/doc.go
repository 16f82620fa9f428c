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

/*
Package fanout dispatches batches of independent HTTP requests
concurrently and aggregates their outcomes.

# Dispatch Modes

Every request in a batch runs as its own unit of work over one shared
connection pool. There are two failure disciplines, kept as separate
entry points so callers never have to guess which one they got:

	Dispatch(ctx, reqs)        fail fast: the first hard failure fails the
	                           whole call and in-flight siblings are
	                           abandoned through context cancellation
	DispatchCollect(ctx, reqs) collect: every request produces an outcome,
	                           failures included, in input order

DispatchCollect guarantees full cardinality and alignment: outcome i
belongs to request i, always. DispatchSplit renders the same collect run
in a partitioned shape, delivered outcomes on one side and hard-failure
errors on the other. The split shape pairs well with errors.Join for
callers that only care whether anything failed:

	delivered, errs, err := d.DispatchSplit(ctx, reqs)
	if err != nil {
		return err
	}
	if err := errors.Join(errs...); err != nil {
		// at least one request produced no response
	}

Which failure wins the race in fail-fast mode is not deterministic; when
several requests fail around the same time any of their errors may be
the one returned.

# Outcomes

An Outcome pairs the original descriptor with the status code, the
decoded body, the response headers and an error slot. Exactly one of
three states holds:

	clean success    real status, decoded JSON body, Err == nil
	decode fallback  real status, body {"text": raw}, Err is a *DecodeError
	hard failure     sentinel status, no body, Err describes the transport

A response that is not JSON, by content type or by content, still counts
as delivered: the raw text is preserved under the TextBodyKey key and
the decode problem is recorded without discarding the response.

# Transport

The verb-level sends live behind the TransportImplementation interface
so tests can swap them out:

	d := fanout.NewDispatcher()
	d.SetImplementation(&fanoutfakes.FakeTransportImplementation{})

The dispatcher options follow the usual chain style:

	d := fanout.NewDispatcher().WithMaxParallel(10).WithTimeout(30 * time.Second)

By default there is no parallelism cap (every request gets a worker) and
no deadline.
*/
package fanout
