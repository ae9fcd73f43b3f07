package domain

import (
	"strings"

	m "github.com/mouse-blink/routelint/internal/model"
)

// Suggest proposes the declared route sharing the most exact path segments
// with target. Ties keep the first route in construction order; no shared
// segment yields nil. This is a best-effort hint: segments are compared as
// exact strings, never by edit distance.
func Suggest(target string, routes []m.DeclaredRoute) *m.DeclaredRoute {
	want := segmentSet(target)
	if len(want) == 0 {
		return nil
	}

	var (
		best      *m.DeclaredRoute
		bestScore int
	)

	for i := range routes {
		score := 0

		for seg := range segmentSet(routes[i].NormalizedPattern) {
			if _, ok := want[seg]; ok {
				score++
			}
		}

		if score > bestScore {
			bestScore = score
			best = &routes[i]
		}
	}

	if best == nil {
		return nil
	}

	suggestion := *best

	return &suggestion
}

// segmentSet returns the distinct non-empty "/"-delimited segments of path.
func segmentSet(path string) map[string]struct{} {
	set := make(map[string]struct{})

	for _, seg := range strings.Split(path, "/") {
		if seg != "" {
			set[seg] = struct{}{}
		}
	}

	return set
}
