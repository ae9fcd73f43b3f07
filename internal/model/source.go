// Package model defines the data structures for route reachability checks.
package model

// Path represents a file system path.
type Path string

// ExemptionSet is a caller-supplied allowlist of raw targets that are
// considered reachable regardless of the declared route table.
// Membership is tested against the raw target, never the normalized one.
type ExemptionSet map[string]struct{}

// NewExemptionSet builds an ExemptionSet from raw target strings.
func NewExemptionSet(targets ...string) ExemptionSet {
	set := make(ExemptionSet, len(targets))
	for _, target := range targets {
		set[target] = struct{}{}
	}

	return set
}

// Contains reports whether raw is exempted. Exact match only.
func (s ExemptionSet) Contains(raw string) bool {
	_, ok := s[raw]
	return ok
}
