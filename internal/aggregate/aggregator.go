// =============================================================================
// Usage Translator - Aggregator
// =============================================================================
//
// The Aggregator accumulates the two derived outputs that depend on more
// than one row:
//
//   - The domain table: domain -> partnerPurchasedPlanID, keep-first. The
//     first accepted row that carries a domain decides its plan ID; later
//     rows with the same domain are ignored. Insertion order is preserved.
//
//   - The running totals: one entry per accepted row with a product and an
//     item count, rendered grouped by product with a cumulative sum.
//
// An Aggregator is owned by a single processing pass and is not safe for
// concurrent use.
//
// =============================================================================

package aggregate

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ginjaninja78/usagetranslator/internal/types"
)

// entry is a running-total contribution before cumulation.
type entry struct {
	rowNo     int
	product   string
	itemCount int
}

// Aggregator collects domains and running-total entries.
type Aggregator struct {
	domainIndex map[string]int
	domains     []types.DomainRecord
	entries     []entry
}

// New returns an empty Aggregator.
func New() *Aggregator {
	return &Aggregator{
		domainIndex: make(map[string]int),
	}
}

// =============================================================================
// DOMAIN TABLE
// =============================================================================

// AddDomain records domain with its plan ID unless the domain is already
// known. It reports whether the domain was inserted.
func (a *Aggregator) AddDomain(domain string, planID *string) bool {
	if _, ok := a.domainIndex[domain]; ok {
		return false
	}

	a.domainIndex[domain] = len(a.domains)
	a.domains = append(a.domains, types.DomainRecord{
		Domain:                 domain,
		PartnerPurchasedPlanID: planID,
	})
	return true
}

// Domains returns the domain table in insertion order.
func (a *Aggregator) Domains() []types.DomainRecord {
	out := make([]types.DomainRecord, len(a.domains))
	copy(out, a.domains)
	return out
}

// =============================================================================
// RUNNING TOTALS
// =============================================================================

// AddUsage records the item count of an accepted row for product.
func (a *Aggregator) AddUsage(rowNo int, product string, itemCount int) {
	a.entries = append(a.entries, entry{
		rowNo:     rowNo,
		product:   product,
		itemCount: itemCount,
	})
}

// RunningTotals returns one RunningTotal per recorded row, ordered
// alphabetically by product and then by row number, with Cumulative reset
// for each product. Products are compared with the root collation, so
// "alpha" < "Alpha" < "beta" < "Zeta".
//
// The ordering is computed here and does not depend on the order in which
// AddUsage was called.
func (a *Aggregator) RunningTotals() []types.RunningTotal {
	sorted := make([]entry, len(a.entries))
	copy(sorted, a.entries)

	coll := collate.New(language.Und)
	sort.SliceStable(sorted, func(i, j int) bool {
		if c := compareProducts(coll, sorted[i].product, sorted[j].product); c != 0 {
			return c < 0
		}
		return sorted[i].rowNo < sorted[j].rowNo
	})

	totals := make([]types.RunningTotal, 0, len(sorted))
	cumulative := 0
	for i, e := range sorted {
		if i == 0 || e.product != sorted[i-1].product {
			cumulative = 0
		}
		cumulative += e.itemCount

		totals = append(totals, types.RunningTotal{
			RowNo:      e.rowNo,
			Product:    e.product,
			ItemCount:  e.itemCount,
			Cumulative: cumulative,
		})
	}

	return totals
}

// compareProducts orders two product names alphabetically. Distinct names
// the collation treats as equal fall back to byte order so that every
// product stays in one contiguous group.
func compareProducts(coll *collate.Collator, a, b string) int {
	if a == b {
		return 0
	}
	if c := coll.CompareString(a, b); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}
