// Package domain implements route reachability checking: route table
// extraction, reference scanning, normalization, reconciliation and
// suggestions.
package domain

import (
	"go.uber.org/zap"

	m "github.com/mouse-blink/routelint/internal/model"
)

// CheckArgs configures a reachability check.
type CheckArgs struct {
	Root       m.Path
	Router     m.Path
	Scan       ScanOptions
	Exemptions []string
}

// RoutesArgs configures a declared route listing.
type RoutesArgs struct {
	Router m.Path
}

// Workflow runs the route reachability pipeline.
type Workflow interface {
	Check(args CheckArgs) (m.BrokenLinkReport, error)
	Routes(args RoutesArgs) ([]m.DeclaredRoute, error)
}

type workflow struct {
	builder RouteTableBuilder
	scanner ReferenceScanner
	log     *zap.Logger
}

// NewWorkflow creates a Workflow from its collaborators.
func NewWorkflow(builder RouteTableBuilder, scanner ReferenceScanner, log *zap.Logger) Workflow {
	if log == nil {
		log = zap.NewNop()
	}

	return &workflow{builder: builder, scanner: scanner, log: log}
}

// Check builds the route table, scans the tree and reports every
// unreachable reference group with its suggestion. An unreadable router
// source aborts before scanning.
func (w *workflow) Check(args CheckArgs) (m.BrokenLinkReport, error) {
	routes, err := w.builder.Build(args.Router)
	if err != nil {
		return m.BrokenLinkReport{}, err
	}

	refs, err := w.scanner.Scan(args.Root, args.Scan)
	if err != nil {
		return m.BrokenLinkReport{}, err
	}

	partition := CheckReachability(routes, refs, m.NewExemptionSet(args.Exemptions...))
	declared := routes.Routes()

	report := m.BrokenLinkReport{
		Root:               args.Root,
		Router:             args.Router,
		Broken:             make([]m.BrokenLink, 0, len(partition.Unreachable)),
		DeclaredRoutes:     routes.Len(),
		DistinctReferences: len(partition.Reachable) + len(partition.Unreachable),
		TotalReferences:    len(refs),
		ExemptedGroups:     partition.Exempted,
	}

	for _, group := range partition.Unreachable {
		report.Broken = append(report.Broken, m.BrokenLink{
			Group:      group,
			Suggestion: Suggest(group.NormalizedTarget, declared),
		})
	}

	w.log.Debug("check complete",
		zap.Int("declared", report.DeclaredRoutes),
		zap.Int("distinct", report.DistinctReferences),
		zap.Int("broken", len(report.Broken)))

	return report, nil
}

// Routes returns the declared route table in construction order.
func (w *workflow) Routes(args RoutesArgs) ([]m.DeclaredRoute, error) {
	routes, err := w.builder.Build(args.Router)
	if err != nil {
		return nil, err
	}

	return routes.Routes(), nil
}
