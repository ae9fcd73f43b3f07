package domain

import (
	"sort"

	m "github.com/mouse-blink/routelint/internal/model"
)

// Partition is the outcome of reconciling references against declared routes.
type Partition struct {
	Reachable   []m.ReferenceGroup
	Unreachable []m.ReferenceGroup
	// Exempted counts reachable groups that no declared route covers.
	Exempted int
}

// GroupReferences groups refs by normalized target. Groups are sorted by
// target; occurrences keep their input order.
func GroupReferences(refs []m.Reference) []m.ReferenceGroup {
	index := make(map[string]int)

	var groups []m.ReferenceGroup

	for _, ref := range refs {
		i, ok := index[ref.NormalizedTarget]
		if !ok {
			i = len(groups)
			index[ref.NormalizedTarget] = i
			groups = append(groups, m.ReferenceGroup{NormalizedTarget: ref.NormalizedTarget})
		}

		groups[i].Occurrences = append(groups[i].Occurrences, ref)
	}

	sort.Slice(groups, func(i, j int) bool { return groups[i].NormalizedTarget < groups[j].NormalizedTarget })

	return groups
}

// CheckReachability partitions refs into reachable and unreachable groups.
// A group is reachable when its normalized target is declared, or when any
// of its occurrences uses an exempted raw target. Reachability is decided
// once per group.
func CheckReachability(routes *m.DeclaredRouteSet, refs []m.Reference, exemptions m.ExemptionSet) Partition {
	var p Partition

	for _, group := range GroupReferences(refs) {
		switch {
		case routes.Contains(group.NormalizedTarget):
			p.Reachable = append(p.Reachable, group)
		case hasExemptedOccurrence(group, exemptions):
			p.Reachable = append(p.Reachable, group)
			p.Exempted++
		default:
			p.Unreachable = append(p.Unreachable, group)
		}
	}

	return p
}

func hasExemptedOccurrence(group m.ReferenceGroup, exemptions m.ExemptionSet) bool {
	for _, ref := range group.Occurrences {
		if exemptions.Contains(ref.RawTarget) {
			return true
		}
	}

	return false
}
