package model

// ReferenceKind is the syntactic form a navigation reference was found in.
type ReferenceKind string

const (
	// KindLinkTarget is a declarative "navigate to" attribute: to="/path".
	KindLinkTarget ReferenceKind = "link"
	// KindImperativeNavigate is an imperative call: navigate("/path").
	KindImperativeNavigate ReferenceKind = "navigate"
	// KindHrefAttribute is a hyperlink attribute: href="/path".
	KindHrefAttribute ReferenceKind = "href"
)

// Reference is one occurrence of a navigation target in source text.
type Reference struct {
	RawTarget        string
	NormalizedTarget string
	File             Path // relative to the scan root, slash separated
	Line             int  // 1-based
	Column           int  // 1-based byte offset of the match
	Kind             ReferenceKind
	Snippet          string
}

// ReferenceGroup collects every occurrence sharing a normalized target,
// in file-then-line order.
type ReferenceGroup struct {
	NormalizedTarget string
	Occurrences      []Reference
}

// RawTargets returns the distinct raw spellings in first-seen order.
func (g ReferenceGroup) RawTargets() []string {
	seen := make(map[string]struct{}, len(g.Occurrences))

	var raws []string

	for _, ref := range g.Occurrences {
		if _, ok := seen[ref.RawTarget]; ok {
			continue
		}

		seen[ref.RawTarget] = struct{}{}
		raws = append(raws, ref.RawTarget)
	}

	return raws
}
