// Package match implements ANIME's candidate matcher and match store: the
// dual-tree traversal over a source and target spatial index, the
// angle/distance/overlap gates, shared-length computation, and the
// ordered, single-assignment table the results accumulate into.
package match

// Candidate is one match between a target feature and a source feature:
// the source feature's index and the accumulated shared length between
// them.
type Candidate struct {
	SourceIndex int
	SharedLen   float64
}

// Entry is one row of the match store: a target feature index and its
// match candidates, in first-encounter order.
type Entry struct {
	TargetIndex int
	Candidates  []Candidate
}

// Store is the ordered, single-assignment match table described in
// §4.5/§9: a two-state tagged value (Unset / Set) rather than a lazily
// filled slot, so every read path can check IsSet explicitly instead of
// inferring state from a nil or empty slice.
type Store struct {
	entries []Entry
	isSet   bool
}

// Set populates the store. It succeeds only once; subsequent calls return
// false and leave the store unchanged.
func (s *Store) Set(entries []Entry) bool {
	if s.isSet {
		return false
	}
	s.entries = entries
	s.isSet = true
	return true
}

// Get returns the store's entries in ascending target-index order, or
// (nil, false) if the store has not been populated yet.
func (s *Store) Get() ([]Entry, bool) {
	if !s.isSet {
		return nil, false
	}
	return s.entries, true
}

// IsSet reports whether the store has been populated.
func (s *Store) IsSet() bool { return s.isSet }

// Find returns the candidate list for the given target index, or nil if
// the target has no recorded candidates. The store must already be set.
func (s *Store) Find(targetIndex int) []Candidate {
	// Entries are sorted by TargetIndex, so this could binary search; a
	// linear scan is simpler and the match lists this method is used from
	// are themselves small, so it isn't worth the extra code.
	for _, e := range s.entries {
		if e.TargetIndex == targetIndex {
			return e.Candidates
		}
	}
	return nil
}
