// =============================================================================
// Usage Translator - CSV Parser Module
// =============================================================================
//
// This module is responsible for turning raw lines of the usage report into
// positional field slices. It deliberately does not use encoding/csv: the
// report format is a plain comma split with no quoting rules, and the field
// count check has to report the count produced by that split.
//
// FEATURES:
//   - Strict structural validation (exactly 11 fields per line)
//   - Whitespace trimming of every field
//   - Streaming line reader with constant memory per raw line
//   - UTF-8 byte order mark removal on the first line
//
// =============================================================================

package csvparser

import (
	"fmt"
	"strings"

	"github.com/ginjaninja78/usagetranslator/internal/types"
)

// =============================================================================
// ROW PARSING
// =============================================================================

// ParseRow validates a single raw line and splits it into trimmed fields.
//
// PARAMETERS:
//   - line: The raw line, without its line terminator.
//   - rowNumber: The 1-based row number of the line, used in error messages.
//
// RETURNS:
//   - A slice of exactly types.FieldCount trimmed fields.
//   - An error wrapping types.ErrInvalidRow if the row number is negative,
//     the line is empty, or the split does not produce 11 fields.
//
// ParseRow has no side effects.
func ParseRow(line string, rowNumber int) ([]string, error) {
	if rowNumber < 0 {
		return nil, fmt.Errorf("%w: rowNumber must be 0 or more", types.ErrInvalidRow)
	}

	if line == "" {
		return nil, fmt.Errorf("%w #%d: empty row encountered", types.ErrInvalidRow, rowNumber)
	}

	fields := strings.Split(line, ",")
	if len(fields) != types.FieldCount {
		return nil, fmt.Errorf("%w #%d: a row must contain exactly %d fields and actually %d fields found",
			types.ErrInvalidRow, rowNumber, types.FieldCount, len(fields))
	}

	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	return fields, nil
}
