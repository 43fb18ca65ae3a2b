package ui

import (
	"fmt"
	"strings"

	"fractals/pkg/core"
)

// panelLines lays out the HUD text: a title, one header per parameter group
// followed by its "label  value" rows, and a progress line.
func panelLines(kind core.Kind, snap core.ParameterSnapshot, played, total int) []string {
	lines := []string{strings.ToUpper(string(kind))}
	for _, g := range snap.Groups {
		lines = append(lines, "", g.Name)
		for _, p := range g.Params {
			lines = append(lines, fmt.Sprintf("  %-16s %s", p.Label, p.Value))
		}
	}
	lines = append(lines, "", progressLine(played, total))
	return lines
}

func progressLine(played, total int) string {
	if total <= 0 {
		return "Progress  empty"
	}
	pct := 100 * played / total
	return fmt.Sprintf("Progress  %d/%d (%d%%)", played, total, pct)
}
