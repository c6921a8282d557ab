// Package term drives a simulation inside a terminal using tcell. Two grid
// rows share one terminal row via the upper half block glyph.
package term

import (
	"context"
	"time"

	"golife/internal/ui"
	"golife/pkg/core"

	"github.com/gdamore/tcell/v2"
)

const halfBlock = '▀'

var (
	aliveColor = tcell.ColorWhite
	deadColor  = tcell.ColorBlack
)

type cellEditor interface {
	Clear()
}

// Options tunes the terminal loop. TPS may exceed FPS: each frame runs every
// step that came due since the previous one.
type Options struct {
	TPS    int
	FPS    int
	Seed   int64
	Status bool

	// Clock overrides time.Now for the step gate.
	Clock func() time.Time
}

// Runner owns the terminal loop for one simulation.
type Runner struct {
	screen tcell.Screen
	sim    core.Sim
	gate   *core.FixedStep
	frame  time.Duration

	// maxSteps bounds the steps run by a single Tick.
	maxSteps int

	seed     int64
	paused   bool
	tickOnce bool
	status   bool
}

// NewRunner binds sim to an initialized screen.
func NewRunner(screen tcell.Screen, sim core.Sim, opts Options) *Runner {
	fps := opts.FPS
	if fps <= 0 {
		fps = 30
	}
	tps := opts.TPS
	if tps <= 0 {
		tps = 30
	}
	perFrame := (tps + fps - 1) / fps
	gate := core.NewFixedStepWithClock(tps, opts.Clock)
	gate.SetMaxBacklog(perFrame + 1)
	return &Runner{
		screen:   screen,
		sim:      sim,
		gate:     gate,
		frame:    time.Second / time.Duration(fps),
		maxSteps: perFrame + 1,
		seed:     opts.Seed,
		status:   opts.Status,
	}
}

// Run processes input and advances the simulation until the user quits or ctx
// is cancelled. A user quit returns nil.
func (r *Runner) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go r.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(r.frame)
	defer ticker.Stop()

	r.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if r.HandleEvent(ev) {
				return nil
			}
			r.Draw()
		case <-ticker.C:
			r.Tick()
			r.Draw()
		}
	}
}

// Tick runs the steps that came due since the previous frame.
func (r *Runner) Tick() {
	if r.tickOnce {
		r.sim.Step()
		r.tickOnce = false
		return
	}
	if r.paused {
		return
	}
	for i := 0; i < r.maxSteps && r.gate.ShouldStep(); i++ {
		r.sim.Step()
	}
}

// HandleEvent applies a single input event and reports whether the loop
// should exit.
func (r *Runner) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		r.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return true
			case ' ':
				r.sim.Seed()
			case 'p':
				r.paused = !r.paused
				if !r.paused {
					r.gate.Reset()
				}
			case 'n':
				r.tickOnce = true
			case 'r':
				r.sim.Reset(r.seed)
			case 'c':
				if editor, ok := r.sim.(cellEditor); ok {
					editor.Clear()
				}
			case 'h':
				r.status = !r.status
			}
		}
	}
	return false
}

// Paused reports whether automatic stepping is suspended.
func (r *Runner) Paused() bool { return r.paused }

// Draw paints the current generation, clipped to the screen.
func (r *Runner) Draw() {
	r.screen.Clear()
	cols, rows := r.screen.Size()
	gridRows := rows
	if r.status && rows > 1 {
		gridRows = rows - 1
	}

	size := r.sim.Size()
	cells := r.sim.Cells()
	for ty := 0; ty < gridRows && 2*ty < size.H; ty++ {
		top := 2 * ty
		for x := 0; x < cols && x < size.W; x++ {
			fg, bg := deadColor, deadColor
			if cells[top*size.W+x] {
				fg = aliveColor
			}
			if top+1 < size.H && cells[(top+1)*size.W+x] {
				bg = aliveColor
			}
			r.screen.SetContent(x, ty, halfBlock, nil, tcell.StyleDefault.Foreground(fg).Background(bg))
		}
	}

	if r.status && rows > 1 {
		style := tcell.StyleDefault.Foreground(tcell.ColorYellow)
		for i, ch := range []rune(ui.StatusLine(r.sim, r.paused)) {
			if i >= cols {
				break
			}
			r.screen.SetContent(i, rows-1, ch, nil, style)
		}
	}
	r.screen.Show()
}
