// =============================================================================
// Usage Translator - Field Converters
// =============================================================================
//
// This module converts trimmed report fields into typed values. Every
// converter is nullable: an empty field yields nil rather than an error,
// while a present but malformed value yields a typed error the caller can
// match with errors.Is:
//
//   - ParseOptionalInt   -> types.ErrMalformedInteger
//   - ParseOptionalGUID  -> types.ErrMalformedGUID
//
// NormalizeGUID and UsageTable.ConvertItemCount cannot fail.
//
// =============================================================================

package converter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/ginjaninja78/usagetranslator/internal/types"
)

// NormalizedGUIDLength is the length of a partnerPurchasedPlanID.
const NormalizedGUIDLength = 32

// =============================================================================
// INTEGER FIELDS
// =============================================================================

// ParseOptionalInt converts s to a 32-bit integer.
//
// RETURNS:
//   - nil, nil when s is empty.
//   - the parsed value when s is a valid integer.
//   - an error wrapping types.ErrMalformedInteger otherwise, including
//     values outside the 32-bit range.
func ParseOptionalInt(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}

	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: wrong integer encountered: '%s'", types.ErrMalformedInteger, s)
	}

	v := int(n)
	return &v, nil
}

// =============================================================================
// GUID FIELDS
// =============================================================================

// ParseOptionalGUID converts s to a UUID.
//
// Accepted forms are those of uuid.Parse: the hyphenated form, the 32 digit
// form, the braced form and the urn:uuid: form. The urn:uuid: form is
// accepted here although stricter GUID parsers reject it, and the
// {0x00000000,0x0000,0x0000,{0x00,...}} hex form is rejected. Usage reports
// carry the hyphenated form only.
func ParseOptionalGUID(s string) (*uuid.UUID, error) {
	if s == "" {
		return nil, nil
	}

	g, err := uuid.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("%w: wrong guid encountered: '%s'", types.ErrMalformedGUID, s)
	}

	return &g, nil
}

// NormalizeGUID renders g as a partnerPurchasedPlanID.
//
// The canonical text of the GUID is reduced to its alphanumeric characters
// and fitted to NormalizedGUIDLength by normalizeGUIDText. A nil GUID yields nil.
func NormalizeGUID(g *uuid.UUID) *string {
	if g == nil {
		return nil
	}

	s := normalizeGUIDText(g.String())
	return &s
}

// normalizeGUIDText strips every non-alphanumeric character from s, then:
//   - returns the result as is when it has exactly 32 characters,
//   - returns only the characters from index 32 onward when it is longer,
//   - right-pads it with '0' to 32 characters when it is shorter.
//
// The "longer" branch keeps the suffix, not the prefix. Existing consumers
// of the plan IDs depend on that behaviour, so it is kept as is.
func normalizeGUIDText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9') {
			b.WriteByte(c)
		}
	}
	stripped := b.String()

	switch {
	case len(stripped) == NormalizedGUIDLength:
		return stripped
	case len(stripped) > NormalizedGUIDLength:
		return stripped[NormalizedGUIDLength:]
	default:
		return stripped + strings.Repeat("0", NormalizedGUIDLength-len(stripped))
	}
}
