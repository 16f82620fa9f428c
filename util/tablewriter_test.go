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

package util

import (
	"bytes"
	"strings"
	"testing"

	"github.com/olekukonko/tablewriter"
	"github.com/stretchr/testify/require"
)

// requireCells asserts that the rendered table contains every cell
// value, ignoring the case changes applied by auto formatting.
func requireCells(t *testing.T, output string, cells ...string) {
	t.Helper()

	for _, cell := range cells {
		require.Contains(
			t, strings.ToUpper(output), strings.ToUpper(cell),
			"Rendered table misses cell: %s", cell,
		)
	}
}

func TestNewTableWriter(t *testing.T) {
	t.Parallel()

	t.Run("NoOptions", func(t *testing.T) {
		t.Parallel()

		var output bytes.Buffer

		table := NewTableWriter(&output)

		require.NotNil(t, table)
		require.IsType(t, &tablewriter.Table{}, table)

		table.Header("Name", "Age")
		require.NoError(t, table.Append([]string{"John", "30"}))
		require.NoError(t, table.Render())

		requireCells(t, output.String(), "Name", "Age", "John", "30")
	})

	t.Run("WithSingleOption", func(t *testing.T) {
		t.Parallel()

		var output bytes.Buffer

		table := NewTableWriter(&output, tablewriter.WithMaxWidth(40))

		require.NotNil(t, table)
		require.IsType(t, &tablewriter.Table{}, table)

		table.Header("Name", "Age")
		require.NoError(t, table.Append([]string{"John", "30"}))
		require.NoError(t, table.Render())

		requireCells(t, output.String(), "John", "30")
	})

	t.Run("WithMultipleOptions", func(t *testing.T) {
		t.Parallel()

		var output bytes.Buffer

		table := NewTableWriter(&output,
			tablewriter.WithHeader([]string{"Name", "Age"}),
			tablewriter.WithMaxWidth(40),
		)

		require.NotNil(t, table)
		require.IsType(t, &tablewriter.Table{}, table)

		require.NoError(t, table.Append([]string{"John", "30"}))
		require.NoError(t, table.Render())

		requireCells(t, output.String(), "Name", "John")
	})

	t.Run("WithFooterOption", func(t *testing.T) {
		t.Parallel()

		var output bytes.Buffer

		table := NewTableWriter(&output, tablewriter.WithFooter([]string{"Total", "1"}))

		require.NotNil(t, table)
		require.IsType(t, &tablewriter.Table{}, table)

		table.Header("Name", "Age")
		require.NoError(t, table.Append([]string{"John", "30"}))
		require.NoError(t, table.Render())

		requireCells(t, output.String(), "John", "Total", "1")
	})

	t.Run("EmptyTable", func(t *testing.T) {
		t.Parallel()

		var output bytes.Buffer

		table := NewTableWriter(&output)

		require.NotNil(t, table)
		require.IsType(t, &tablewriter.Table{}, table)

		table.Header("Name", "Age")
		require.NoError(t, table.Render())

		requireCells(t, output.String(), "Name", "Age")
	})

	t.Run("MultipleRows", func(t *testing.T) {
		t.Parallel()

		var output bytes.Buffer

		table := NewTableWriter(&output)

		require.NotNil(t, table)
		require.IsType(t, &tablewriter.Table{}, table)

		table.Header("Name", "Age", "City")
		require.NoError(t, table.Append([]string{"John", "30", "New York"}))
		require.NoError(t, table.Append([]string{"Jane", "25", "Boston"}))
		require.NoError(t, table.Append([]string{"Bob", "35", "Chicago"}))
		require.NoError(t, table.Render())

		requireCells(
			t, output.String(),
			"John", "New York", "Jane", "Boston", "Bob", "Chicago",
		)
	})
}
