package controller

import (
	"strings"

	m "github.com/mouse-blink/routelint/internal/model"
)

// Message types.
type checkingMsg struct {
	root m.Path
}

type reportMsg struct {
	report m.BrokenLinkReport
}

type errorMsg struct {
	err error
}

type watchingMsg struct {
	root m.Path
}

type routesMsg struct {
	routes []m.DeclaredRoute
}

// List item types.
type brokenItem struct {
	link m.BrokenLink
}

func (i brokenItem) FilterValue() string {
	return i.link.Group.NormalizedTarget + " " + strings.Join(i.link.Group.RawTargets(), " ")
}
