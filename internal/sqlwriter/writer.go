// =============================================================================
// Usage Translator - SQL Writer Module
// =============================================================================
//
// This module renders accepted records as multi-row SQL INSERT statements.
//
// STATEMENT STRUCTURE:
//
//   INSERT INTO chargeable (partnerID, product, partnerPurchasedPlanID, [plan], usage) VALUES
//   (26392,'core.chargeable.adsync','9b5b4a2e1f7e4d3c9a7f0c2b1d3e4f50','Plan A',2),
//   (26392,NULL,NULL,'Plan B',7);
//
//   INSERT INTO domains (domain, partnerPurchasedPlanID) VALUES
//   ('example.com','9b5b4a2e1f7e4d3c9a7f0c2b1d3e4f50'),
//   ('example.org',NULL);
//
// LITERAL RULES:
//   - nil or blank strings          -> NULL
//   - other strings                 -> 'trimmed value', embedded ' doubled
//   - integers                      -> unquoted, NULL when nil
//   - the domain key                -> always quoted
//
// A statement with no rows renders as the empty string, since
// "INSERT ... VALUES;" is not valid SQL.
//
// =============================================================================

package sqlwriter

import (
	"strconv"
	"strings"

	"github.com/ginjaninja78/usagetranslator/internal/types"
)

// =============================================================================
// STATEMENT HEADERS
// =============================================================================

const (
	// ChargeableHeader opens the chargeable statement.
	ChargeableHeader = "INSERT INTO chargeable (partnerID, product, partnerPurchasedPlanID, [plan], usage) VALUES\n"

	// DomainsHeader opens the domains statement.
	DomainsHeader = "INSERT INTO domains (domain, partnerPurchasedPlanID) VALUES\n"

	// Null is the SQL NULL literal.
	Null = "NULL"

	rowSeparator = ",\n"
	terminator   = ";"
)

// =============================================================================
// STATEMENT BUILDER
// =============================================================================

// Statement accumulates the value tuples of one INSERT statement. Tuples are
// rendered as they are appended, so records need not be retained.
type Statement struct {
	header string
	body   strings.Builder
	rows   int
}

// NewChargeableStatement returns an empty chargeable statement.
func NewChargeableStatement() *Statement {
	return &Statement{header: ChargeableHeader}
}

// NewDomainsStatement returns an empty domains statement.
func NewDomainsStatement() *Statement {
	return &Statement{header: DomainsHeader}
}

// AppendChargeable renders rec as the next tuple.
func (s *Statement) AppendChargeable(rec types.ChargeableRecord) {
	s.appendTuple(
		IntLiteral(rec.PartnerID),
		StringLiteral(rec.Product),
		StringLiteral(rec.PartnerPurchasedPlanID),
		StringLiteral(rec.Plan),
		IntLiteral(rec.Usage),
	)
}

// AppendDomain renders d as the next tuple.
func (s *Statement) AppendDomain(d types.DomainRecord) {
	s.appendTuple(
		quote(d.Domain),
		StringLiteral(d.PartnerPurchasedPlanID),
	)
}

// String returns the complete statement, or "" when no tuple was appended.
func (s *Statement) String() string {
	if s.rows == 0 {
		return ""
	}
	return s.header + s.body.String() + terminator
}

func (s *Statement) appendTuple(values ...string) {
	if s.rows > 0 {
		s.body.WriteString(rowSeparator)
	}
	s.body.WriteByte('(')
	s.body.WriteString(strings.Join(values, ","))
	s.body.WriteByte(')')
	s.rows++
}

// =============================================================================
// CONVENIENCE RENDERERS
// =============================================================================

// RenderDomains renders the domain table, in order, as one domains statement.
func RenderDomains(domains []types.DomainRecord) string {
	s := NewDomainsStatement()
	for _, d := range domains {
		s.AppendDomain(d)
	}
	return s.String()
}

// =============================================================================
// LITERALS
// =============================================================================

// StringLiteral renders an optional string as a SQL literal.
func StringLiteral(s *string) string {
	if s == nil {
		return Null
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return Null
	}
	return quote(trimmed)
}

// IntLiteral renders an optional integer as a SQL literal.
func IntLiteral(n *int) string {
	if n == nil {
		return Null
	}
	return strconv.Itoa(*n)
}

// quote wraps s in single quotes, doubling any embedded single quote.
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
