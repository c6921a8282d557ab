package app

// WindowTitle names the window after the running sim.
func WindowTitle(sim string) string {
	return "golife - " + sim
}

// cellAt maps a cursor position in pixels to grid coordinates. Positions
// left of or above the grid report false; integer division would otherwise
// fold them onto row or column zero.
func cellAt(mx, my, scale int) (int, int, bool) {
	if mx < 0 || my < 0 || scale < 1 {
		return 0, 0, false
	}
	return mx / scale, my / scale, true
}
