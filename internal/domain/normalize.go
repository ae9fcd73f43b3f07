package domain

import (
	"regexp"
	"strings"
)

// Wildcard is the canonical token substituted for every dynamic segment.
const Wildcard = ":param"

var (
	uuidSegment    = regexp.MustCompile(`(?i)^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
	numericSegment = regexp.MustCompile(`^[0-9]+$`)
)

// Normalize rewrites a path so that structurally equivalent paths compare
// equal. Trailing slashes are dropped (except for "/"), and parameter,
// template placeholder, UUID and numeric segments become Wildcard.
//
// Normalize is total and idempotent; "" normalizes to "".
func Normalize(path string) string {
	for len(path) > 1 && strings.HasSuffix(path, "/") {
		path = path[:len(path)-1]
	}

	if path == "" || path == "/" {
		return path
	}

	segments := strings.Split(path, "/")
	for i, seg := range segments {
		if isDynamicSegment(seg) {
			segments[i] = Wildcard
		}
	}

	return strings.Join(segments, "/")
}

func isDynamicSegment(seg string) bool {
	switch {
	case seg == "":
		return false
	case strings.HasPrefix(seg, ":"):
		return true
	case strings.HasPrefix(seg, "${") && strings.HasSuffix(seg, "}"):
		return true
	case uuidSegment.MatchString(seg):
		return true
	default:
		return numericSegment.MatchString(seg)
	}
}
