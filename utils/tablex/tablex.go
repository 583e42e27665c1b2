// File: tablex.go
// Title: Table Transformer
// Description: Implements conversion between grouped parallel-array column
//              representations and row-oriented tables, plus reduction of
//              two-column tables into associative maps.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial implementation

package tablex

import (
	bizerror "github.com/msto63/bizcore/core/error"
	"github.com/msto63/bizcore/utils/mapx"
)

// GroupToTable converts a column-oriented grouped representation into rows.
// keys selects and orders the columns; nil selects every column of grouped
// in lexical order. The row count is the longest selected column's length;
// shorter columns are padded with nil. An empty selection yields an empty
// table.
func GroupToTable(grouped map[string][]interface{}, keys []string) []map[string]interface{} {
	if keys == nil {
		keys = mapx.SortedKeys(grouped)
	}
	if len(keys) == 0 {
		return []map[string]interface{}{}
	}

	rows := 0
	for _, key := range keys {
		if l := len(grouped[key]); l > rows {
			rows = l
		}
	}

	table := make([]map[string]interface{}, 0, rows)
	for i := 0; i < rows; i++ {
		row := make(map[string]interface{}, len(keys))
		for _, key := range keys {
			column := grouped[key]
			if i < len(column) {
				row[key] = column[i]
			} else {
				row[key] = nil
			}
		}
		table = append(table, row)
	}

	return table
}

// TableToAssociative reduces a table of two-column rows into a map of first
// cell to second cell. Any row whose length is not exactly 2 fails with an
// INVALID_ROW error naming the row index.
func TableToAssociative(table [][]interface{}) (map[interface{}]interface{}, error) {
	result := make(map[interface{}]interface{}, len(table))

	for i, row := range table {
		if len(row) != 2 {
			return nil, bizerror.Newf("row %d has %d columns, expected 2", i, len(row)).
				WithCode(bizerror.CodeInvalidRow).
				WithOperation("tablex.TableToAssociative").
				WithDetail("row", i).
				WithDetail("columns", len(row))
		}
		result[row[0]] = row[1]
	}

	return result, nil
}
