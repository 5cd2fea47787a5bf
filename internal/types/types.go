// =============================================================================
// Usage Translator - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - csvparser
//   - validation
//   - aggregate
//   - sqlwriter
//   - report
//   - pipeline
//
// =============================================================================

package types

// =============================================================================
// ROW SCHEMA
// =============================================================================

// FieldCount is the number of comma-separated fields every data row carries.
const FieldCount = 11

// Positional meaning of the fields of a usage report row.
const (
	FieldPartnerID   = 0  // int -> partnerID
	FieldPartnerGUID = 1  // guid
	FieldAccountID   = 2  // int
	FieldAccountGUID = 3  // guid -> partnerPurchasedPlanID
	FieldUsername    = 4  // string
	FieldDomain      = 5  // string -> domains table key
	FieldItemName    = 6  // string
	FieldPlan        = 7  // string -> plan
	FieldItemType    = 8  // int
	FieldPartNumber  = 9  // string -> product key
	FieldItemCount   = 10 // int -> usage
)

// HeaderRow is the row number of the header line. Row numbers are the
// 1-based physical line numbers of the input file.
const HeaderRow = 1

// =============================================================================
// OUTPUT RECORDS
// =============================================================================

// ChargeableRecord is one billing usage row derived from an accepted CSV row.
// A nil field is rendered as SQL NULL.
type ChargeableRecord struct {
	// PartnerID is the billing partner identifier (field 0).
	PartnerID *int

	// Product is the internal product identifier the part number maps to.
	Product *string

	// PartnerPurchasedPlanID is the normalized 32-character account GUID.
	PartnerPurchasedPlanID *string

	// Plan is the plan name (field 7).
	Plan *string

	// Usage is the item count converted to usage units.
	Usage *int
}

// DomainRecord pairs a domain with the plan ID of the first accepted row
// that carried it.
type DomainRecord struct {
	Domain                 string
	PartnerPurchasedPlanID *string
}

// RunningTotal is one line of the per-product audit trail.
type RunningTotal struct {
	// RowNo is the original row number in the input file.
	RowNo int

	// Product is the mapped product identifier.
	Product string

	// ItemCount is the raw item count of the row (before usage conversion).
	ItemCount int

	// Cumulative is the running sum of ItemCount for Product up to and
	// including RowNo.
	Cumulative int
}

// SkippedRow is a data row dropped with a log message.
type SkippedRow struct {
	RowNo   int
	Message string
}

// =============================================================================
// HELPERS
// =============================================================================

// StringPtr returns a pointer to s.
func StringPtr(s string) *string { return &s }

// IntPtr returns a pointer to n.
func IntPtr(n int) *int { return &n }
