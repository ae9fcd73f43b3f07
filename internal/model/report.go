package model

// BrokenLink is an unreachable reference group and its suggested fix.
type BrokenLink struct {
	Group      ReferenceGroup
	Suggestion *DeclaredRoute // nil when no declared route shares a segment
}

// BrokenLinkReport is the outcome of one reachability check.
type BrokenLinkReport struct {
	Root   Path
	Router Path
	Broken []BrokenLink

	DeclaredRoutes     int
	DistinctReferences int
	TotalReferences    int
	ExemptedGroups     int
}

// HasBroken reports whether any reference group is unreachable.
func (r BrokenLinkReport) HasBroken() bool {
	return len(r.Broken) > 0
}

// NoRoutesDeclared reports whether the router source yielded no routes.
func (r BrokenLinkReport) NoRoutesDeclared() bool {
	return r.DeclaredRoutes == 0
}
