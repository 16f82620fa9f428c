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

package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/moby/term"
	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"sigs.k8s.io/fanout-utils/env"
	"sigs.k8s.io/fanout-utils/fanout"
	"sigs.k8s.io/fanout-utils/request"
	"sigs.k8s.io/fanout-utils/util"
)

type sendOptions struct {
	file        string
	collect     bool
	split       bool
	jsonOutput  bool
	maxParallel int
	failureCode int
	timeout     time.Duration
}

// batchEntry is one request descriptor inside a batch file.
type batchEntry struct {
	URL         string            `mapstructure:"url"`
	Method      string            `mapstructure:"method"`
	Body        map[string]any    `mapstructure:"body"`
	QueryParams map[string]string `mapstructure:"queryParams"`
	Headers     map[string]string `mapstructure:"headers"`
}

func newSendCommand() *cobra.Command {
	opts := &sendOptions{}

	cmd := &cobra.Command{
		Use:   "send [URL...]",
		Short: "Send a batch of requests and report the outcomes",
		Long: `send dispatches the requests listed in a batch file, plus any URLs
passed as arguments, and prints one outcome per request in batch order.

The batch file is a JSON array of request descriptors:

  [
    {"url": "https://example.com/api"},
    {
      "url": "https://example.com/api",
      "method": "POST",
      "body": {"foo": "bar"},
      "queryParams": {"page": "1"},
      "headers": {"X-Token": "secret"}
    }
  ]

The method defaults to GET. Passing "-" as the file reads the batch
from stdin.

By default the dispatch fails fast: the first request that produces no
response aborts the whole call. With --collect or --split every request
runs to completion and failures are reported next to the delivered
responses.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSend(cmd, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "JSON batch file holding the request descriptors, - for stdin")
	cmd.Flags().BoolVar(&opts.collect, "collect", false, "run all requests to completion instead of failing fast")
	cmd.Flags().BoolVar(&opts.split, "split", false, "like --collect, but report delivered responses and failures separately")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "print outcomes as JSON instead of a table")
	cmd.Flags().IntVar(&opts.maxParallel, "max-parallel", env.Int(envMaxParallel, 0), "maximum number of parallel requests, 0 means one worker per request")
	cmd.Flags().IntVar(&opts.failureCode, "failure-code", fanout.DefaultFailureStatusCode, "status code recorded for requests that produced no response")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", env.Duration(envTimeout, 0), "overall deadline for the whole batch, 0 means no deadline")
	cmd.MarkFlagsMutuallyExclusive("collect", "split")

	return cmd
}

func runSend(cmd *cobra.Command, opts *sendOptions, args []string) error {
	reqs, err := buildBatch(cmd, opts.file, args)
	if err != nil {
		return err
	}
	if len(reqs) == 0 {
		return errors.New("no requests to send, provide a batch file or URLs")
	}

	dispatcher := fanout.NewDispatcher().
		WithMaxParallel(opts.maxParallel).
		WithTimeout(opts.timeout).
		WithFailureStatusCode(opts.failureCode)

	ctx := cmd.Context()

	switch {
	case opts.split:
		delivered, errs, err := dispatcher.DispatchSplit(ctx, reqs)
		if err != nil {
			return fmt.Errorf("dispatching batch: %w", err)
		}
		if err := printSplit(cmd, opts, delivered, errs); err != nil {
			return err
		}
		if len(errs) > 0 {
			return fmt.Errorf("%d of %d requests failed", len(errs), len(reqs))
		}

		return nil
	case opts.collect:
		outcomes, err := dispatcher.DispatchCollect(ctx, reqs)
		if err != nil {
			return fmt.Errorf("dispatching batch: %w", err)
		}
		if err := printOutcomes(cmd, opts, outcomes); err != nil {
			return err
		}
		if failures := outcomes.HardFailures(); failures > 0 {
			return fmt.Errorf("%d of %d requests failed", failures, len(reqs))
		}

		return nil
	default:
		outcomes, err := dispatcher.Dispatch(ctx, reqs)
		if err != nil {
			return fmt.Errorf("dispatching batch: %w", err)
		}

		return printOutcomes(cmd, opts, outcomes)
	}
}

func buildBatch(cmd *cobra.Command, file string, urls []string) ([]*request.Request, error) {
	entries := []batchEntry{}

	if file != "" {
		var (
			data []byte
			err  error
		)
		if file == "-" {
			data, err = io.ReadAll(cmd.InOrStdin())
		} else {
			data, err = os.ReadFile(file)
		}
		if err != nil {
			return nil, fmt.Errorf("reading batch file: %w", err)
		}

		raw := []map[string]any{}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parsing batch file: %w", err)
		}

		for i, rawEntry := range raw {
			entry := batchEntry{}
			if err := mapstructure.Decode(rawEntry, &entry); err != nil {
				return nil, fmt.Errorf("decoding batch entry %d: %w", i, err)
			}
			entries = append(entries, entry)
		}
	}

	for _, url := range urls {
		entries = append(entries, batchEntry{URL: url})
	}

	reqs := make([]*request.Request, 0, len(entries))
	for i, entry := range entries {
		req, err := buildRequest(entry)
		if err != nil {
			return nil, fmt.Errorf("building request %d: %w", i, err)
		}
		reqs = append(reqs, req)
	}

	return reqs, nil
}

func buildRequest(entry batchEntry) (*request.Request, error) {
	method := request.MethodGet
	if entry.Method != "" {
		method = request.Method(strings.ToUpper(entry.Method))
	}

	opts := []request.Option{}
	if entry.Body != nil {
		opts = append(opts, request.WithBody(entry.Body))
	}
	if entry.QueryParams != nil {
		opts = append(opts, request.WithQueryParams(entry.QueryParams))
	}
	if entry.Headers != nil {
		opts = append(opts, request.WithHeaders(entry.Headers))
	}

	return request.New(method, entry.URL, opts...)
}

// outcomeReport is the JSON projection of a single outcome.
type outcomeReport struct {
	Method     string            `json:"method"`
	URL        string            `json:"url"`
	StatusCode int               `json:"statusCode"`
	State      string            `json:"state"`
	Body       map[string]any    `json:"body,omitempty"`
	Headers    map[string]string `json:"headers,omitempty"`
	Error      string            `json:"error,omitempty"`
}

func report(outcome fanout.Outcome) outcomeReport {
	r := outcomeReport{
		Method:     string(outcome.Request.Method()),
		URL:        outcome.Request.Target(),
		StatusCode: outcome.StatusCode,
		Body:       outcome.Body,
		Headers:    outcome.Headers,
	}

	switch {
	case outcome.Succeeded():
		r.State = "success"
	case outcome.DecodeFallback():
		r.State = "fallback"
		r.Error = outcome.Err.Error()
	default:
		r.State = "failure"
		r.Error = outcome.Err.Error()
	}

	return r
}

func printOutcomes(cmd *cobra.Command, opts *sendOptions, outcomes fanout.Outcomes) error {
	if opts.jsonOutput {
		reports := make([]outcomeReport, 0, len(outcomes))
		for _, outcome := range outcomes {
			reports = append(reports, report(outcome))
		}

		return encodeJSON(cmd.OutOrStdout(), reports)
	}

	return renderTable(cmd.OutOrStdout(), outcomes)
}

func printSplit(cmd *cobra.Command, opts *sendOptions, delivered fanout.Outcomes, errs []error) error {
	if opts.jsonOutput {
		reports := make([]outcomeReport, 0, len(delivered))
		for _, outcome := range delivered {
			reports = append(reports, report(outcome))
		}
		failures := make([]string, 0, len(errs))
		for _, err := range errs {
			failures = append(failures, err.Error())
		}

		return encodeJSON(cmd.OutOrStdout(), struct {
			Delivered []outcomeReport `json:"delivered"`
			Failures  []string        `json:"failures"`
		}{reports, failures})
	}

	if err := renderTable(cmd.OutOrStdout(), delivered); err != nil {
		return err
	}
	for _, err := range errs {
		logrus.Errorf("Request failed: %v", err)
	}

	return nil
}

func encodeJSON(writer io.Writer, payload any) error {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(payload); err != nil {
		return fmt.Errorf("encoding outcomes: %w", err)
	}

	return nil
}

func renderTable(writer io.Writer, outcomes fanout.Outcomes) error {
	opts := []tablewriter.Option{
		tablewriter.WithHeader([]string{"#", "Method", "URL", "Status", "State", "Detail"}),
	}
	if width := terminalWidth(); width > 0 {
		opts = append(opts, tablewriter.WithMaxWidth(width))
	}
	table := util.NewTableWriter(writer, opts...)

	for i, outcome := range outcomes {
		r := report(outcome)
		detail := r.Error
		if outcome.Succeeded() {
			detail = compactBody(outcome.Body)
		}
		if err := table.Append([]string{
			strconv.Itoa(i),
			r.Method,
			r.URL,
			strconv.Itoa(r.StatusCode),
			r.State,
			truncate(detail, 48),
		}); err != nil {
			return fmt.Errorf("appending outcome row: %w", err)
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering outcome table: %w", err)
	}

	return nil
}

func compactBody(body map[string]any) string {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Sprintf("%v", body)
	}

	return string(data)
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}

	return s[:limit-3] + "..."
}

// terminalWidth returns the current width of stdout, or 0 when it is
// not a terminal.
func terminalWidth() int {
	fd := os.Stdout.Fd()
	if !term.IsTerminal(fd) {
		return 0
	}

	ws, err := term.GetWinsize(fd)
	if err != nil || ws.Width == 0 {
		return 0
	}

	return int(ws.Width)
}
