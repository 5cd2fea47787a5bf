package converter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// =============================================================================
// USAGE TABLE
// =============================================================================

// defaultDivisors is the built-in countToUsage table: the number of raw items
// that make up one usage unit for a part number.
var defaultDivisors = map[string]int{
	"EA000001GB0O": 1000,
	"PMQ00005GB0R": 5000,
	"SSX006NR":     1000,
	"SPQ00001MB0R": 2000,
}

// UsageTable maps upper-cased part numbers to the divisor that converts an
// item count into usage units. A UsageTable is immutable once built and is
// safe to share.
type UsageTable struct {
	divisors map[string]int
}

// DefaultUsageTable returns the built-in table.
func DefaultUsageTable() UsageTable {
	t, _ := NewUsageTable(defaultDivisors)
	return t
}

// NewUsageTable builds a table from divisors.
//
// PARAMETERS:
//   - divisors: part number -> divisor. Keys are trimmed and upper-cased.
//
// RETURNS:
//   - The table, holding its own copy of the entries.
//   - An error listing every empty key, duplicate key (after upper-casing)
//     and non-positive divisor.
func NewUsageTable(divisors map[string]int) (UsageTable, error) {
	var result *multierror.Error
	table := make(map[string]int, len(divisors))

	// Sorted so that error output is stable.
	keys := make([]string, 0, len(divisors))
	for k := range divisors {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		divisor := divisors[k]
		key := strings.ToUpper(strings.TrimSpace(k))

		if key == "" {
			result = multierror.Append(result, fmt.Errorf("usage table: empty part number"))
			continue
		}
		if divisor <= 0 {
			result = multierror.Append(result, fmt.Errorf("usage table: divisor for %s must be positive, got %d", key, divisor))
			continue
		}
		if _, dup := table[key]; dup {
			result = multierror.Append(result, fmt.Errorf("usage table: duplicate part number %s", key))
			continue
		}

		table[key] = divisor
	}

	if err := result.ErrorOrNil(); err != nil {
		return UsageTable{}, err
	}

	return UsageTable{divisors: table}, nil
}

// Divisor returns the divisor registered for partNumber, matched
// case-insensitively.
func (t UsageTable) Divisor(partNumber string) (int, bool) {
	d, ok := t.divisors[strings.ToUpper(partNumber)]
	return d, ok
}

// Len returns the number of entries.
func (t UsageTable) Len() int {
	return len(t.divisors)
}

// ConvertItemCount converts a raw item count into usage units.
//
// RETURNS:
//   - nil when partNumber is nil or empty, or itemCount is nil.
//   - itemCount unchanged when the part number has no divisor.
//   - itemCount / divisor (truncated) otherwise.
func (t UsageTable) ConvertItemCount(partNumber *string, itemCount *int) *int {
	if partNumber == nil || *partNumber == "" || itemCount == nil {
		return nil
	}

	divisor, ok := t.Divisor(*partNumber)
	if !ok {
		v := *itemCount
		return &v
	}

	v := *itemCount / divisor
	return &v
}
