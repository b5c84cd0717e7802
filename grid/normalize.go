// SPDX-License-Identifier: MIT
// Package: xychain/grid
//
// normalize.go — canonical form shared by Decode and Encode.

package grid

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Normalize returns the canonical form of a grid text:
//
//  1. leading and trailing blank lines are dropped,
//  2. every row is right-trimmed,
//  3. every row is padded with blanks to the widest row.
//
// Trailing spaces and surrounding blank lines carry no meaning, so grids are
// always compared in this form. Normalize is idempotent.
// Complexity: O(len(s)).
func Normalize(s string) string {
	return strings.Join(normalizeRows(s), "\n")
}

func normalizeRows(s string) []string {
	rows := strings.Split(s, "\n")
	for i := range rows {
		rows[i] = strings.TrimRightFunc(rows[i], unicode.IsSpace)
	}
	for len(rows) > 0 && rows[0] == "" {
		rows = rows[1:]
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}

	width := 0
	for _, row := range rows {
		width = max(width, utf8.RuneCountInString(row))
	}
	for i, row := range rows {
		if pad := width - utf8.RuneCountInString(row); pad > 0 {
			rows[i] = row + strings.Repeat(string(Blank), pad)
		}
	}

	return rows
}
