package life

import "golang.org/x/sync/errgroup"

// Step advances the grid by one generation. Every cell is evaluated against
// the previous generation only; the new generation is built in the spare
// buffer and swapped in once complete.
func (l *Life) Step() {
	h := l.cur.Size().H
	workers := min(l.workers, h)
	if workers <= 1 {
		l.stepRows(0, h)
	} else {
		var g errgroup.Group
		g.SetLimit(workers)
		band := (h + workers - 1) / workers
		for y0 := 0; y0 < h; y0 += band {
			y1 := min(y0+band, h)
			g.Go(func() error {
				l.stepRows(y0, y1)
				return nil
			})
		}
		_ = g.Wait()
	}
	l.cur.Swap(l.nxt)
	l.generation++
}

// stepRows writes the next state of rows [y0, y1) into the spare buffer.
func (l *Life) stepRows(y0, y1 int) {
	w := l.cur.Size().W
	cur := l.cur.Cells()
	nxt := l.nxt.Cells()
	for y := y0; y < y1; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			nxt[idx] = nextState(cur[idx], l.neighbors(x, y))
		}
	}
}

// neighbors counts the alive cells around (x, y). Positions outside the grid
// are skipped.
func (l *Life) neighbors(x, y int) int {
	size := l.cur.Size()
	w, h := size.W, size.H
	cur := l.cur.Cells()
	count := 0
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 || ny >= h {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := x + dx
			if nx < 0 || nx >= w {
				continue
			}
			if cur[ny*w+nx] {
				count++
			}
		}
	}
	return count
}

// nextState is the B3/S23 rule.
func nextState(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}
