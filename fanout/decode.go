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
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"strings"
)

const jsonContentType = "application/json"

// TextBodyKey is the body map key that holds the raw response text when
// the JSON decode falls back.
const TextBodyKey = "text"

// ErrNonJSONContentType is the DecodeError cause when a response did not
// declare a JSON content type.
var ErrNonJSONContentType = errors.New("response content type is not JSON")

// DecodeError records a response body that could not be interpreted as a
// JSON object. It marks the decode-fallback outcome state: the response
// itself was delivered, only its body was preserved as raw text instead
// of being decoded.
type DecodeError struct {
	// ContentType is the content type the response declared.
	ContentType string

	cause error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf(
		"decoding response body (content type %q): %v", e.ContentType, e.cause,
	)
}

func (e *DecodeError) Unwrap() error {
	return e.cause
}

// isJSONContentType reports whether the content type declares JSON,
// either application/json or a +json suffixed media type.
func isJSONContentType(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == jsonContentType || strings.HasSuffix(mediaType, "+json")
}

// decodeBody interprets a buffered response body as a JSON object. The
// content type is checked first: a non-JSON declaration falls back
// without attempting a parse. On any fallback the returned map holds
// the raw text under TextBodyKey and the error is a *DecodeError.
func decodeBody(contentType string, raw []byte) (map[string]any, error) {
	if !isJSONContentType(contentType) {
		return map[string]any{TextBodyKey: string(raw)}, &DecodeError{
			ContentType: contentType,
			cause:       ErrNonJSONContentType,
		}
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return map[string]any{}, nil
	}

	body := map[string]any{}
	if err := json.Unmarshal(raw, &body); err != nil {
		return map[string]any{TextBodyKey: string(raw)}, &DecodeError{
			ContentType: contentType,
			cause:       err,
		}
	}

	return body, nil
}
