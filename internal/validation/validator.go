// =============================================================================
// Usage Translator - Record Classifier
// =============================================================================
//
// This module applies the business rules that decide what happens to each
// parsed data row. Every row ends in exactly one of three outcomes:
//
//   - Excluded: the partner is in the exclusion set. Dropped, nothing logged.
//   - Skipped:  the row cannot be billed. Dropped with a log message.
//   - Accepted: the row becomes a chargeable record.
//
// RULE ORDER (first match wins):
//   1. partner is excluded                 -> Excluded
//   2. part number is empty                -> Skipped
//   3. part number has no product mapping  -> Skipped
//   4. item count is zero or negative      -> Skipped
//   5. otherwise                           -> Accepted
//
// ERROR HANDLING:
//   Skips are not errors. A malformed partner ID, item count or account GUID,
//   or an accepted row without a domain, is fatal: Classify returns a
//   *types.RowError and the run must stop.
//
// =============================================================================

package validation

import (
	"fmt"
	"strings"

	"github.com/ginjaninja78/usagetranslator/internal/converter"
	"github.com/ginjaninja78/usagetranslator/internal/types"
)

// =============================================================================
// OUTCOMES
// =============================================================================

// Outcome is the result category of a classified row.
type Outcome int

const (
	// Accepted rows produce a chargeable record.
	Accepted Outcome = iota

	// Excluded rows belong to an excluded partner and are dropped silently.
	Excluded

	// Skipped rows are dropped with a log message.
	Skipped
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Accepted:
		return "accepted"
	case Excluded:
		return "excluded"
	case Skipped:
		return "skipped"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Decision is the classification of a single row.
type Decision struct {
	// Outcome is the category of the row.
	Outcome Outcome

	// Message is the log line for a Skipped row; empty otherwise.
	Message string

	// Record is the chargeable record of an Accepted row.
	Record types.ChargeableRecord

	// Domain is the (non-empty) domain of an Accepted row.
	Domain string

	// ItemCount is the raw item count of an Accepted row, nil when the
	// field was empty.
	ItemCount *int
}

// =============================================================================
// CLASSIFIER
// =============================================================================

// Classifier applies the row rules against a product mapping, an exclusion
// set and a usage table. It holds no per-run state.
type Classifier struct {
	mapping    map[string]string
	exclusions ExclusionSet
	usage      converter.UsageTable
}

// NewClassifier creates a Classifier. The mapping is read, never modified.
func NewClassifier(mapping map[string]string, exclusions ExclusionSet, usage converter.UsageTable) *Classifier {
	return &Classifier{
		mapping:    mapping,
		exclusions: exclusions,
		usage:      usage,
	}
}

// Classify decides the outcome of one parsed data row.
//
// PARAMETERS:
//   - fields: The trimmed fields returned by csvparser.ParseRow.
//   - row: The row number, used in messages and errors.
//
// RETURNS:
//   - The Decision for the row.
//   - A *types.RowError when the row makes the whole run fail.
func (c *Classifier) Classify(fields []string, row int) (Decision, error) {
	if len(fields) != types.FieldCount {
		return Decision{}, &types.RowError{
			Row: row,
			Err: fmt.Errorf("%w: expected %d fields, got %d", types.ErrInvalidRow, types.FieldCount, len(fields)),
		}
	}

	partnerID, err := converter.ParseOptionalInt(fields[types.FieldPartnerID])
	if err != nil {
		return Decision{}, &types.RowError{Row: row, Err: fmt.Errorf("partnerID: %w", err)}
	}

	if c.exclusions.IsExcluded(partnerID) {
		return Decision{Outcome: Excluded}, nil
	}

	partNumber := fields[types.FieldPartNumber]
	if partNumber == "" {
		return skip(fmt.Sprintf("Row #%d was skipped because of missing PartNumber", row)), nil
	}

	product, ok := c.mapping[partNumber]
	if !ok {
		return skip(fmt.Sprintf("Row #%d was skipped because of missing PartNumber '%s'", row, partNumber)), nil
	}

	itemCount, err := converter.ParseOptionalInt(fields[types.FieldItemCount])
	if err != nil {
		return Decision{}, &types.RowError{Row: row, Err: fmt.Errorf("itemCount: %w", err)}
	}

	// An empty item count is not "non-positive": the row is billed with a
	// NULL usage.
	if itemCount != nil && *itemCount <= 0 {
		return skip(fmt.Sprintf("Row #%d was skipped because of non-positive itemCount", row)), nil
	}

	accountGUID, err := converter.ParseOptionalGUID(fields[types.FieldAccountGUID])
	if err != nil {
		return Decision{}, &types.RowError{Row: row, Err: fmt.Errorf("accountGuid: %w", err)}
	}

	domain := fields[types.FieldDomain]
	if domain == "" {
		return Decision{}, &types.RowError{Row: row, Err: fmt.Errorf("%w: domain cannot be empty", types.ErrInvalidRow)}
	}

	record := types.ChargeableRecord{
		PartnerID:              partnerID,
		Product:                optionalString(strings.TrimSpace(product)),
		PartnerPurchasedPlanID: converter.NormalizeGUID(accountGUID),
		Plan:                   optionalString(fields[types.FieldPlan]),
		Usage:                  c.usage.ConvertItemCount(&partNumber, itemCount),
	}

	return Decision{
		Outcome:   Accepted,
		Record:    record,
		Domain:    domain,
		ItemCount: itemCount,
	}, nil
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

func skip(message string) Decision {
	return Decision{Outcome: Skipped, Message: message}
}

// optionalString maps a blank string to nil.
func optionalString(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
