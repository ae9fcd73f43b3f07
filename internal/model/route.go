package model

// RouteShape identifies the declaration form a route was extracted from.
type RouteShape string

const (
	// ShapeRoute is a route-path declaration, e.g. <Route path="/user/:id">.
	ShapeRoute RouteShape = "route"
	// ShapeRedirect is a redirect destination, e.g. <Navigate to="/home">.
	ShapeRedirect RouteShape = "redirect"
)

// DeclaredRoute is a path pattern registered as a valid destination.
type DeclaredRoute struct {
	RawPattern        string
	NormalizedPattern string
	Shape             RouteShape
	Line              int // line in the router source, 1-based
}

// DeclaredRouteSet is the immutable set of declared routes, kept in
// construction order and indexed by normalized pattern.
type DeclaredRouteSet struct {
	routes []DeclaredRoute
	index  map[string]struct{}
}

// NewDeclaredRouteSet builds a set from routes in construction order.
// Routes repeating an earlier raw pattern are dropped.
func NewDeclaredRouteSet(routes []DeclaredRoute) *DeclaredRouteSet {
	set := &DeclaredRouteSet{
		routes: make([]DeclaredRoute, 0, len(routes)),
		index:  make(map[string]struct{}, len(routes)),
	}

	seen := make(map[string]struct{}, len(routes))

	for _, route := range routes {
		if _, dup := seen[route.RawPattern]; dup {
			continue
		}

		seen[route.RawPattern] = struct{}{}
		set.routes = append(set.routes, route)
		set.index[route.NormalizedPattern] = struct{}{}
	}

	return set
}

// Contains reports whether normalized is a declared pattern.
func (s *DeclaredRouteSet) Contains(normalized string) bool {
	if s == nil {
		return false
	}

	_, ok := s.index[normalized]

	return ok
}

// Routes returns a copy of the declared routes in construction order.
func (s *DeclaredRouteSet) Routes() []DeclaredRoute {
	if s == nil {
		return nil
	}

	out := make([]DeclaredRoute, len(s.routes))
	copy(out, s.routes)

	return out
}

// Len returns the number of distinct declared raw patterns.
func (s *DeclaredRouteSet) Len() int {
	if s == nil {
		return 0
	}

	return len(s.routes)
}
