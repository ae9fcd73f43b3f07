package controller

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	m "github.com/mouse-blink/routelint/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// palette decorates report fragments. The plain palette returns text as is.
type palette struct {
	heading    func(...string) string
	target     func(...string) string
	suggestion func(...string) string
	warning    func(...string) string
	faint      func(...string) string
}

func plain(strs ...string) string {
	return strings.Join(strs, " ")
}

func plainPalette() palette {
	return palette{heading: plain, target: plain, suggestion: plain, warning: plain, faint: plain}
}

// SimpleUI implements UI using plain text written to the command's output.
type SimpleUI struct {
	cmd     *cobra.Command
	cfg     Config
	palette palette
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command, options ...Option) *SimpleUI {
	return &SimpleUI{cmd: cmd, cfg: newConfig(options...), palette: plainPalette()}
}

// DisplayReport prints every broken group with provenance and a summary.
func (s *SimpleUI) DisplayReport(report m.BrokenLinkReport) (bool, error) {
	p := s.palette

	if report.NoRoutesDeclared() {
		s.printf("%s\n\n", p.warning(fmt.Sprintf(
			"warning: no routes declared in %s; every non-exempt reference is reported as broken", report.Router)))
	}

	if report.HasBroken() {
		s.printf("%s\n\n", p.heading("Broken route references"))

		for _, link := range report.Broken {
			s.printBroken(link)
		}
	} else {
		s.printf("%s\n\n", p.suggestion("No broken route references found."))
	}

	s.printf("%s", s.summaryTable(report))

	return report.HasBroken(), nil
}

func (s *SimpleUI) printBroken(link m.BrokenLink) {
	p := s.palette
	group := link.Group
	occurrences := group.Occurrences

	s.printf("%s %s\n", p.target("BROKEN"), p.target(group.NormalizedTarget))
	s.printf("  raw: %s\n", strings.Join(group.RawTargets(), ", "))
	s.printf("  occurrences (%d):\n", len(occurrences))

	shown := min(len(occurrences), s.cfg.maxOccurrences)
	for _, ref := range occurrences[:shown] {
		s.printf("    - %s:%d [%s]\n", ref.File, ref.Line, ref.Kind)
		s.printf("      %s\n", p.faint(ref.Snippet))
	}

	if rest := len(occurrences) - shown; rest > 0 {
		s.printf("    ... and %d more\n", rest)
	}

	if link.Suggestion != nil {
		s.printf("  suggestion: %s\n\n", p.suggestion(link.Suggestion.RawPattern))
	} else {
		s.printf("  suggestion: none\n\n")
	}
}

func (s *SimpleUI) summaryTable(report m.BrokenLinkReport) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Summary", "Count"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	table.Append([]string{"Declared routes", strconv.Itoa(report.DeclaredRoutes)})
	table.Append([]string{"Distinct references", strconv.Itoa(report.DistinctReferences)})
	table.Append([]string{"Total references", strconv.Itoa(report.TotalReferences)})
	table.Append([]string{"Exempted groups", strconv.Itoa(report.ExemptedGroups)})
	table.Append([]string{"Broken groups", strconv.Itoa(len(report.Broken))})

	table.Render()

	return buf.String()
}

// DisplayRoutes prints the declared route table in construction order.
func (s *SimpleUI) DisplayRoutes(routes []m.DeclaredRoute) error {
	if len(routes) == 0 {
		s.printf("%s\n", s.palette.warning("No routes declared"))
		return nil
	}

	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Line", "Shape", "Pattern", "Normalized"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, route := range routes {
		table.Append([]string{strconv.Itoa(route.Line), string(route.Shape), route.RawPattern, route.NormalizedPattern})
	}

	table.SetFooter([]string{"", "", fmt.Sprintf("Total routes %d", len(routes)), ""})
	table.Render()
	s.printf("%s", buf.String())

	return nil
}

// DisplayChecking announces a rerun in watch mode.
func (s *SimpleUI) DisplayChecking(root m.Path) {
	s.printf("%s\n", s.palette.faint(fmt.Sprintf("checking %s...", root)))
}

// DisplayWatching announces that watch mode is active.
func (s *SimpleUI) DisplayWatching(root m.Path) {
	s.printf("%s\n", s.palette.faint(fmt.Sprintf("watching %s for changes (Ctrl+C to stop)", root)))
}

// DisplayError prints a non-fatal error to the command's error stream.
func (s *SimpleUI) DisplayError(err error) {
	if err == nil {
		return
	}

	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), "%s\n", s.palette.warning("error: "+err.Error()))
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
