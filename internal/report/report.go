// =============================================================================
// Usage Translator - Report Module
// =============================================================================
//
// This module formats the two audit logs of a run:
//
//   log-errors.txt   one line per skipped row, in original row order
//   log-success.txt  a header line, then one running-total line per
//                    accepted row, grouped by product
//
// and, on request, the same information as an XLSX workbook (workbook.go).
//
// =============================================================================

package report

import (
	"fmt"
	"strings"

	"github.com/ginjaninja78/usagetranslator/internal/types"
)

// SuccessHeader is the first line of the running-total log.
const SuccessHeader = "Product, ItemCount, RunningTotal, RowNo"

// SuccessLines returns the running-total log: SuccessHeader followed by one
// "Product, ItemCount, RunningTotal, RowNo" line per entry, in the given order.
func SuccessLines(totals []types.RunningTotal) []string {
	lines := make([]string, 0, len(totals)+1)
	lines = append(lines, SuccessHeader)
	for _, t := range totals {
		lines = append(lines, fmt.Sprintf("%s, %d, %d, %d", t.Product, t.ItemCount, t.Cumulative, t.RowNo))
	}
	return lines
}

// ErrorLines returns the skip messages of skipped, in the given order.
func ErrorLines(skipped []types.SkippedRow) []string {
	lines := make([]string, 0, len(skipped))
	for _, s := range skipped {
		lines = append(lines, s.Message)
	}
	return lines
}

// JoinLines terminates every line with "\n" and concatenates them. No lines
// yields the empty string.
func JoinLines(lines []string) string {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return b.String()
}
