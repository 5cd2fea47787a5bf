package validation

// ExclusionSet holds the partner IDs whose rows are dropped without a log
// entry. The zero value excludes nothing.
type ExclusionSet struct {
	ids map[int]struct{}
}

// NewExclusionSet builds a set from a list of partner IDs. Duplicates are
// ignored.
func NewExclusionSet(ids []int) ExclusionSet {
	set := ExclusionSet{ids: make(map[int]struct{}, len(ids))}
	for _, id := range ids {
		set.ids[id] = struct{}{}
	}
	return set
}

// IsExcluded reports whether rows of partnerID are dropped. A nil partner ID
// is never excluded.
func (s ExclusionSet) IsExcluded(partnerID *int) bool {
	if partnerID == nil {
		return false
	}
	_, ok := s.ids[*partnerID]
	return ok
}

// Len returns the number of excluded partners.
func (s ExclusionSet) Len() int {
	return len(s.ids)
}
