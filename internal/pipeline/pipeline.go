// =============================================================================
// Usage Translator - Translation Pipeline
// =============================================================================
//
// This module orchestrates a single translation pass over a usage report.
// It ties together the line reader, the row parser, the classifier, the
// aggregator and the SQL renderer.
//
// PIPELINE STEPS:
//   1. Read the report line by line; row #1 is the header and is discarded
//   2. Parse each data row into 11 trimmed fields
//   3. Classify the row (accepted, excluded or skipped)
//   4. For an accepted row:
//      a. Append the chargeable record to the INSERT statement
//      b. Register its domain (first occurrence wins)
//      c. Record its item count for the running totals
//   5. Render both statements and both logs
//
// ERROR HANDLING:
//   The first fatal row error stops the pass. Run then returns the error and
//   no Result, so callers never see partial output.
//
// =============================================================================

package pipeline

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/ginjaninja78/usagetranslator/internal/aggregate"
	"github.com/ginjaninja78/usagetranslator/internal/converter"
	"github.com/ginjaninja78/usagetranslator/internal/csvparser"
	"github.com/ginjaninja78/usagetranslator/internal/report"
	"github.com/ginjaninja78/usagetranslator/internal/sqlwriter"
	"github.com/ginjaninja78/usagetranslator/internal/types"
	"github.com/ginjaninja78/usagetranslator/internal/validation"
)

// =============================================================================
// TRANSLATOR STRUCTURE
// =============================================================================

// Options configures a Translator.
type Options struct {
	// Mapping maps part numbers to product names.
	Mapping map[string]string

	// Exclusions lists the partners whose rows are dropped silently.
	Exclusions validation.ExclusionSet

	// Usage is the divisor table used to convert item counts.
	Usage converter.UsageTable

	// Logger receives debug and summary entries. Nil disables logging.
	Logger *zap.Logger
}

// Translator runs translation passes. It keeps no state between runs, so
// the same Translator may be reused.
type Translator struct {
	classifier *validation.Classifier
	logger     *zap.Logger
}

// Stats counts the rows of a pass.
type Stats struct {
	// RowsRead is the number of data rows, the header excluded.
	RowsRead int
	Accepted int
	Skipped  int
	Excluded int

	// Domains is the number of distinct domains.
	Domains int
}

// Result holds everything a successful pass produces.
type Result struct {
	// ChargeableSQL is the content of insert-chargeable.sql.
	ChargeableSQL string

	// DomainsSQL is the content of insert-domains.sql.
	DomainsSQL string

	// ErrorLog holds one line per skipped row, in row order.
	ErrorLog []string

	// Skipped holds the skipped rows behind ErrorLog.
	Skipped []types.SkippedRow

	// RunningTotals holds the per-product running totals in report order.
	RunningTotals []types.RunningTotal

	// Stats counts the rows of the pass.
	Stats Stats
}

// New creates a Translator.
func New(opts Options) *Translator {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Translator{
		classifier: validation.NewClassifier(opts.Mapping, opts.Exclusions, opts.Usage),
		logger:     logger,
	}
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run translates the usage report read from r.
//
// PARAMETERS:
//   - r: The usage report, header line first.
//
// RETURNS:
//   - The Result of the pass.
//   - An error if reading fails or any row is fatal. Every row error
//     wraps one of the sentinels in package types.
func (t *Translator) Run(r io.Reader) (*Result, error) {
	lines := csvparser.NewLineReader(r)
	chargeable := sqlwriter.NewChargeableStatement()
	agg := aggregate.New()

	result := &Result{}

	for lines.Next() {
		row := lines.Row()
		if row == types.HeaderRow {
			continue
		}
		result.Stats.RowsRead++

		// ParseRow errors already carry the row number.
		fields, err := csvparser.ParseRow(lines.Line(), row)
		if err != nil {
			return nil, err
		}

		decision, err := t.classifier.Classify(fields, row)
		if err != nil {
			return nil, err
		}

		switch decision.Outcome {
		case validation.Excluded:
			result.Stats.Excluded++

		case validation.Skipped:
			result.Stats.Skipped++
			result.Skipped = append(result.Skipped, types.SkippedRow{RowNo: row, Message: decision.Message})
			t.logger.Debug("row skipped", zap.Int("row", row), zap.String("reason", decision.Message))

		case validation.Accepted:
			result.Stats.Accepted++
			rec := decision.Record

			chargeable.AppendChargeable(rec)
			if !agg.AddDomain(decision.Domain, rec.PartnerPurchasedPlanID) {
				t.logger.Debug("domain already registered", zap.Int("row", row), zap.String("domain", decision.Domain))
			}

			if rec.Product != nil && decision.ItemCount != nil {
				agg.AddUsage(row, *rec.Product, *decision.ItemCount)
			}

		default:
			return nil, fmt.Errorf("row #%d: unexpected outcome %s", row, decision.Outcome)
		}
	}

	if err := lines.Err(); err != nil {
		return nil, err
	}

	domains := agg.Domains()

	result.ChargeableSQL = chargeable.String()
	result.DomainsSQL = sqlwriter.RenderDomains(domains)
	result.ErrorLog = report.ErrorLines(result.Skipped)
	result.RunningTotals = agg.RunningTotals()
	result.Stats.Domains = len(domains)

	t.logger.Info("translation finished",
		zap.Int("rows", result.Stats.RowsRead),
		zap.Int("accepted", result.Stats.Accepted),
		zap.Int("skipped", result.Stats.Skipped),
		zap.Int("excluded", result.Stats.Excluded),
		zap.Int("domains", result.Stats.Domains),
	)

	return result, nil
}

// SuccessLog returns the lines of log-success.txt, header included.
func (r *Result) SuccessLog() []string {
	return report.SuccessLines(r.RunningTotals)
}
