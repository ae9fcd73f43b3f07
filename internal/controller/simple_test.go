package controller

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	m "github.com/mouse-blink/routelint/internal/model"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCommand() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	return cmd, &out, &errOut
}

func occurrences(target string, n int) []m.Reference {
	refs := make([]m.Reference, 0, n)
	for i := range n {
		refs = append(refs, m.Reference{
			RawTarget:        target,
			NormalizedTarget: target,
			File:             "pages/Home.tsx",
			Line:             i + 1,
			Kind:             m.KindLinkTarget,
			Snippet:          `to="` + target + `"`,
		})
	}

	return refs
}

func TestSimpleUI_DisplayReport_Broken(t *testing.T) {
	cmd, out, _ := newTestCommand()
	ui := NewSimpleUI(cmd)

	suggestion := m.DeclaredRoute{RawPattern: "/user/:id", NormalizedPattern: "/user/:param"}
	report := m.BrokenLinkReport{
		Router: "src/App.tsx",
		Broken: []m.BrokenLink{
			{Group: m.ReferenceGroup{NormalizedTarget: "/settings", Occurrences: occurrences("/settings", 1)}},
			{Group: m.ReferenceGroup{NormalizedTarget: "/user/:param/edit", Occurrences: occurrences("/user/:param/edit", 2)}, Suggestion: &suggestion},
		},
		DeclaredRoutes:     3,
		DistinctReferences: 4,
		TotalReferences:    6,
	}

	broken, err := ui.DisplayReport(report)
	require.NoError(t, err)
	assert.True(t, broken)

	output := out.String()

	for _, want := range []string{
		"Broken route references",
		"BROKEN /settings",
		"pages/Home.tsx:1 [link]",
		`to="/settings"`,
		"suggestion: none",
		"BROKEN /user/:param/edit",
		"occurrences (2):",
		"pages/Home.tsx:2 [link]",
		"suggestion: /user/:id",
		"SUMMARY",
		"Declared routes",
		"Broken groups",
	} {
		assert.Containsf(t, output, want, "output missing %q\noutput:\n%s", want, output)
	}

	assert.Equal(t, 1, strings.Count(output, "BROKEN /settings"), "group must be listed once")
	assert.NotContains(t, output, "warning: no routes declared")
}

func TestSimpleUI_DisplayReport_OverflowCount(t *testing.T) {
	cmd, out, _ := newTestCommand()
	ui := NewSimpleUI(cmd, WithMaxOccurrences(2))

	report := m.BrokenLinkReport{
		DeclaredRoutes: 1,
		Broken: []m.BrokenLink{
			{Group: m.ReferenceGroup{NormalizedTarget: "/gone", Occurrences: occurrences("/gone", 7)}},
		},
	}

	_, err := ui.DisplayReport(report)
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "occurrences (7):")
	assert.Contains(t, output, "pages/Home.tsx:2 [link]")
	assert.NotContains(t, output, "pages/Home.tsx:3 [link]")
	assert.Contains(t, output, "... and 5 more")
}

func TestSimpleUI_DisplayReport_Clean(t *testing.T) {
	cmd, out, _ := newTestCommand()
	ui := NewSimpleUI(cmd)

	broken, err := ui.DisplayReport(m.BrokenLinkReport{DeclaredRoutes: 2, DistinctReferences: 2, TotalReferences: 5})
	require.NoError(t, err)

	assert.False(t, broken)
	assert.Contains(t, out.String(), "No broken route references found.")
	assert.NotContains(t, out.String(), "BROKEN")
}

func TestSimpleUI_DisplayReport_NoRoutesDeclared(t *testing.T) {
	cmd, out, _ := newTestCommand()
	ui := NewSimpleUI(cmd)

	_, err := ui.DisplayReport(m.BrokenLinkReport{Router: "src/App.tsx"})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "warning: no routes declared in src/App.tsx")
}

func TestSimpleUI_DisplayRoutes(t *testing.T) {
	cmd, out, _ := newTestCommand()
	ui := NewSimpleUI(cmd)

	err := ui.DisplayRoutes([]m.DeclaredRoute{
		{RawPattern: "/", NormalizedPattern: "/", Shape: m.ShapeRoute, Line: 3},
		{RawPattern: "/user/:id", NormalizedPattern: "/user/:param", Shape: m.ShapeRoute, Line: 4},
		{RawPattern: "/home", NormalizedPattern: "/home", Shape: m.ShapeRedirect, Line: 9},
	})
	require.NoError(t, err)

	output := out.String()
	for _, want := range []string{"PATTERN", "NORMALIZED", "/user/:id", "/user/:param", "redirect", "TOTAL ROUTES 3"} {
		assert.Containsf(t, output, want, "output missing %q\noutput:\n%s", want, output)
	}
}

func TestSimpleUI_DisplayRoutes_Empty(t *testing.T) {
	cmd, out, _ := newTestCommand()

	require.NoError(t, NewSimpleUI(cmd).DisplayRoutes(nil))

	assert.Equal(t, "No routes declared\n", out.String())
}

func TestSimpleUI_DisplayErrorAndWatching(t *testing.T) {
	cmd, out, errOut := newTestCommand()
	ui := NewSimpleUI(cmd)

	ui.DisplayChecking("src")
	ui.DisplayWatching("src")
	ui.DisplayError(errors.New("boom"))
	ui.DisplayError(nil)

	assert.Equal(t, "checking src...\nwatching src for changes (Ctrl+C to stop)\n", out.String())
	assert.Equal(t, "error: boom\n", errOut.String())
}

func TestStyledUI_DisplayReport_KeepsContent(t *testing.T) {
	cmd, out, _ := newTestCommand()
	ui := NewStyledUI(cmd)

	broken, err := ui.DisplayReport(m.BrokenLinkReport{
		DeclaredRoutes: 1,
		Broken: []m.BrokenLink{
			{Group: m.ReferenceGroup{NormalizedTarget: "/settings", Occurrences: occurrences("/settings", 1)}},
		},
	})
	require.NoError(t, err)

	assert.True(t, broken)
	assert.Contains(t, out.String(), "/settings")
	assert.Contains(t, out.String(), "pages/Home.tsx:1 [link]")
}
