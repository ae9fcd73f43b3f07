package domain

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/mouse-blink/routelint/internal/adapter"
	m "github.com/mouse-blink/routelint/internal/model"
)

// RouteTableBuilder extracts the declared route set from a router source.
type RouteTableBuilder interface {
	Build(router m.Path) (*m.DeclaredRouteSet, error)
}

// jsxAttrs skips the attributes ahead of the one matched. Brace
// expressions may nest one level and contain ">" as in element={<Home />}.
const jsxAttrs = `(?:[^>{]|\{[^{}]*(?:\{[^{}]*\}[^{}]*)*\})*?`

// quotedPattern captures a non-empty literal in one group per quote style.
const quotedPattern = `(?:"([^"]+)"|'([^']+)'|` + "`([^`]+)`)"

var (
	routePathDecl = regexp.MustCompile(`<Route\b` + jsxAttrs + `\bpath\s*=\s*\{?\s*` + quotedPattern)
	redirectDecl  = regexp.MustCompile(`<Navigate\b` + jsxAttrs + `\bto\s*=\s*\{?\s*` + quotedPattern)
)

type routeTableBuilder struct {
	fsAdapter adapter.SourceFSAdapter
	log       *zap.Logger
}

// NewRouteTableBuilder constructs a RouteTableBuilder reading router
// sources through fsAdapter.
func NewRouteTableBuilder(fsAdapter adapter.SourceFSAdapter, log *zap.Logger) RouteTableBuilder {
	if log == nil {
		log = zap.NewNop()
	}

	return &routeTableBuilder{fsAdapter: fsAdapter, log: log}
}

// Build reads router and returns its declared routes. A source that cannot
// be read fails with ErrSourceUnavailable; a source without routes yields
// an empty set and a warning.
func (b *routeTableBuilder) Build(router m.Path) (*m.DeclaredRouteSet, error) {
	content, err := b.fsAdapter.ReadFile(router)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, router, err)
	}

	set := m.NewDeclaredRouteSet(ExtractRoutes(content))
	if set.Len() == 0 {
		b.log.Warn("no routes declared", zap.String("router", string(router)))
	} else {
		b.log.Debug("route table built", zap.String("router", string(router)), zap.Int("routes", set.Len()))
	}

	return set, nil
}

type routeMatch struct {
	offset int
	route  m.DeclaredRoute
}

// ExtractRoutes returns every route path and redirect destination declared
// in content, in textual order. Duplicates are kept; the route set drops them.
func ExtractRoutes(content []byte) []m.DeclaredRoute {
	var matches []routeMatch

	text := string(content)
	collect := func(re *regexp.Regexp, shape m.RouteShape) {
		for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
			raw, start := firstGroup(text, loc[2:])
			if shape == m.ShapeRedirect {
				raw = stripQuery(raw)
			}

			matches = append(matches, routeMatch{
				offset: loc[0],
				route: m.DeclaredRoute{
					RawPattern:        raw,
					NormalizedPattern: Normalize(raw),
					Shape:             shape,
					Line:              strings.Count(text[:start], "\n") + 1,
				},
			})
		}
	}

	collect(routePathDecl, m.ShapeRoute)
	collect(redirectDecl, m.ShapeRedirect)

	sort.SliceStable(matches, func(i, j int) bool { return matches[i].offset < matches[j].offset })

	routes := make([]m.DeclaredRoute, 0, len(matches))
	for _, match := range matches {
		routes = append(routes, match.route)
	}

	return routes
}
