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

// Package testserver runs the HTTP fixture server the integration tests
// dispatch against. Its routes cover every outcome state the engine can
// produce: clean JSON responses, non-JSON bodies, delivered server
// errors, aborted connections and slow answers.
package testserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gorilla/mux"
)

const defaultSlowDelay = 100 * time.Millisecond

// New starts a fixture server. The caller owns it and must Close it.
func New() *httptest.Server {
	return httptest.NewServer(Handler())
}

// Handler returns the route handler backing the fixture server.
func Handler() http.Handler {
	router := mux.NewRouter()
	router.HandleFunc("/", home).Methods(http.MethodGet)
	router.HandleFunc("/foo", echo).Methods(http.MethodPost)
	router.HandleFunc("/exception", abort).Methods(http.MethodGet)
	router.HandleFunc("/error", serverError).Methods(http.MethodGet)
	router.HandleFunc("/text", plainText).Methods(http.MethodGet)
	router.HandleFunc("/slow", slow).Methods(http.MethodGet)
	return router
}

func home(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"message": "Hello, world!"})
}

// echo answers POSTs with the JSON object it received plus an x-test
// marker header.
func echo(w http.ResponseWriter, r *http.Request) {
	body := map[string]any{}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("x-test", "Test")
	writeJSON(w, body)
}

// abort kills the connection without writing a response, so clients see
// a transport-level failure rather than a status code.
func abort(w http.ResponseWriter, r *http.Request) {
	panic(http.ErrAbortHandler)
}

func serverError(w http.ResponseWriter, r *http.Request) {
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

func plainText(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("Hello, world!"))
}

// slow sleeps for the duration given in the delay query parameter, or
// 100ms when absent, before answering.
func slow(w http.ResponseWriter, r *http.Request) {
	delay := defaultSlowDelay
	if raw := r.URL.Query().Get("delay"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		delay = parsed
	}
	time.Sleep(delay)
	writeJSON(w, map[string]string{"message": "slow"})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
