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

// Package util contains shared helpers.
package util

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

const defaultTableMaxWidth = 80

// NewTableWriter returns a table bound to the writer with the shared
// defaults applied. Options passed by the caller are applied after the
// defaults and take precedence.
func NewTableWriter(writer io.Writer, opts ...tablewriter.Option) *tablewriter.Table {
	options := append(
		[]tablewriter.Option{tablewriter.WithMaxWidth(defaultTableMaxWidth)},
		opts...,
	)
	return tablewriter.NewTable(writer, options...)
}
