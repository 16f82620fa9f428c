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
	"errors"
	"net/http"

	"sigs.k8s.io/fanout-utils/request"
)

// DefaultFailureStatusCode is recorded on hard-failure outcomes, where
// the request never produced an HTTP response and there is no real
// status to report. It can be changed per dispatcher with
// WithFailureStatusCode.
const DefaultFailureStatusCode = http.StatusTeapot

// Outcome pairs one request descriptor with its result. Exactly one of
// three states holds: clean success (Err nil), decode fallback (Err is a
// *DecodeError, status and headers are real) or hard failure (Err
// describes the transport problem, StatusCode carries the configured
// failure status and there is no body).
type Outcome struct {
	// Request is the descriptor this outcome answers.
	Request *request.Request

	// StatusCode is the HTTP status of the response, or the failure
	// status code when no response was produced.
	StatusCode int

	// Body is the decoded JSON object, or {TextBodyKey: raw} when the
	// body was preserved as text. Nil on hard failure.
	Body map[string]any

	// Headers are the response headers flattened to single values.
	// Nil on hard failure.
	Headers map[string]string

	// Err is nil on clean success, a *DecodeError on fallback and the
	// transport error on hard failure.
	Err error
}

// Succeeded returns true when the request was delivered and its body
// decoded cleanly.
func (o Outcome) Succeeded() bool {
	return o.Err == nil
}

// DecodeFallback returns true when the response was delivered but its
// body was kept as raw text instead of decoded JSON.
func (o Outcome) DecodeFallback() bool {
	var decodeErr *DecodeError
	return errors.As(o.Err, &decodeErr)
}

// Failed returns true when the request produced no response at all.
func (o Outcome) Failed() bool {
	return o.Err != nil && !o.DecodeFallback()
}

// Outcomes is the aggregate result of one dispatch call. In the aligned
// shapes it has the same length and order as the request batch.
type Outcomes []Outcome

// Errors returns the hard-failure errors in batch order. Decode
// fallbacks are not included, they live on their delivered outcomes.
func (o Outcomes) Errors() []error {
	var errs []error
	for _, outcome := range o {
		if outcome.Failed() {
			errs = append(errs, outcome.Err)
		}
	}
	return errs
}

// HardFailures returns how many outcomes failed without a response.
func (o Outcomes) HardFailures() int {
	return len(o.Errors())
}

// Succeeded returns how many outcomes decoded cleanly.
func (o Outcomes) Succeeded() int {
	count := 0
	for _, outcome := range o {
		if outcome.Succeeded() {
			count++
		}
	}
	return count
}

// Split partitions the aggregate into delivered outcomes (clean and
// fallback) and the hard-failure errors, both in batch order. Alignment
// with the request batch is not preserved; the two cardinalities add up
// to the batch size.
func (o Outcomes) Split() (Outcomes, []error) {
	delivered := make(Outcomes, 0, len(o))
	var errs []error
	for _, outcome := range o {
		if outcome.Failed() {
			errs = append(errs, outcome.Err)
			continue
		}
		delivered = append(delivered, outcome)
	}
	return delivered, errs
}
