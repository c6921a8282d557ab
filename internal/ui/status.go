package ui

import (
	"fmt"

	"golife/pkg/core"
)

// StatusLine summarizes the simulation in a single row.
func StatusLine(sim core.Sim, paused bool) string {
	line := fmt.Sprintf("%s  gen %d  pop %d", sim.Name(), sim.Generation(), sim.Population())
	if paused {
		line += "  [paused]"
	}
	return line
}

// StatusLines returns the status row followed by the sim's parameter
// snapshot, when it exposes one.
func StatusLines(sim core.Sim, paused bool) []string {
	lines := []string{StatusLine(sim, paused)}
	if provider, ok := sim.(core.ParameterProvider); ok {
		lines = append(lines, provider.Parameters().Lines()...)
	}
	return lines
}

// KeyHelp lists the controls shared by the front-ends.
const KeyHelp = "space: reseed  p: pause  n: step  c: clear  r: reset  h: hud  q: quit"
