package term

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"golife/pkg/sims/life"

	"github.com/gdamore/tcell/v2"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func newLife(t *testing.T, w, h int) *life.Life {
	t.Helper()
	l, err := life.New(w, h)
	if err != nil {
		t.Fatalf("life.New: %v", err)
	}
	return l
}

func colorsAt(s tcell.SimulationScreen, x, y int) (rune, tcell.Color, tcell.Color) {
	ch, _, style, _ := s.GetContent(x, y)
	fg, bg, _ := style.Decompose()
	return ch, fg, bg
}

func TestDrawPacksTwoRowsPerLine(t *testing.T) {
	s := newScreen(t, 10, 5)
	sim := newLife(t, 3, 3)
	_ = sim.Set(0, 0, true)
	_ = sim.Set(1, 1, true)
	_ = sim.Set(2, 2, true)

	r := NewRunner(s, sim, Options{})
	r.Draw()

	cases := []struct {
		x, y   int
		fg, bg tcell.Color
	}{
		{0, 0, aliveColor, deadColor},
		{1, 0, deadColor, aliveColor},
		{2, 0, deadColor, deadColor},
		{2, 1, aliveColor, deadColor},
		{0, 1, deadColor, deadColor},
	}
	for _, c := range cases {
		ch, fg, bg := colorsAt(s, c.x, c.y)
		if ch != halfBlock || fg != c.fg || bg != c.bg {
			t.Fatalf("cell (%d,%d) = %q fg=%v bg=%v, expected fg=%v bg=%v", c.x, c.y, ch, fg, bg, c.fg, c.bg)
		}
	}
	if ch, _, _ := colorsAt(s, 3, 0); ch == halfBlock {
		t.Fatal("nothing should be drawn right of the grid")
	}
}

func TestDrawStatusLine(t *testing.T) {
	s := newScreen(t, 40, 4)
	sim := newLife(t, 4, 4)
	r := NewRunner(s, sim, Options{Status: true})
	r.Draw()

	var b strings.Builder
	for x := 0; x < 40; x++ {
		ch, _, _, _ := s.GetContent(x, 3)
		b.WriteRune(ch)
	}
	if got := strings.TrimSpace(b.String()); got != "life  gen 0  pop 0" {
		t.Fatalf("status row %q", got)
	}
}

func TestHandleEventKeys(t *testing.T) {
	s := newScreen(t, 10, 10)
	sim := newLife(t, 5, 5)
	r := NewRunner(s, sim, Options{Seed: 3})

	key := func(ch rune) *tcell.EventKey { return tcell.NewEventKey(tcell.KeyRune, ch, tcell.ModNone) }

	if r.HandleEvent(key(' ')) {
		t.Fatal("space must not quit")
	}
	if sim.Population() == 0 {
		t.Fatal("space should reseed the grid")
	}

	r.HandleEvent(key('c'))
	if sim.Population() != 0 {
		t.Fatal("c should clear the grid")
	}

	r.HandleEvent(key('p'))
	if !r.Paused() {
		t.Fatal("p should pause")
	}
	r.Tick()
	if sim.Generation() != 0 {
		t.Fatal("paused runner must not step")
	}
	r.HandleEvent(key('n'))
	r.Tick()
	if sim.Generation() != 1 {
		t.Fatalf("n should single-step, generation=%d", sim.Generation())
	}

	r.HandleEvent(key('r'))
	first := append([]bool(nil), sim.Cells()...)
	r.HandleEvent(key('r'))
	for i, c := range sim.Cells() {
		if c != first[i] {
			t.Fatal("r should reseed deterministically from the configured seed")
		}
	}

	if !r.HandleEvent(key('q')) {
		t.Fatal("q should quit")
	}
	if !r.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Fatal("escape should quit")
	}
}

func TestRunStopsOnQuitKey(t *testing.T) {
	s := newScreen(t, 20, 10)
	sim := newLife(t, 8, 8)
	r := NewRunner(s, sim, Options{TPS: 1000, FPS: 1000})

	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := r.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	s := newScreen(t, 20, 10)
	sim := newLife(t, 8, 8)
	sim.Reset(11)
	r := NewRunner(s, sim, Options{TPS: 1000, FPS: 1000})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := r.Run(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Run err=%v, expected deadline exceeded", err)
	}
	if sim.Generation() == 0 {
		t.Fatal("expected the loop to advance the simulation")
	}
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func TestTickKeepsRateAfterPause(t *testing.T) {
	s := newScreen(t, 10, 10)
	sim := newLife(t, 16, 16)
	sim.Reset(5)
	clock := &fakeClock{t: time.Unix(1000, 0)}
	r := NewRunner(s, sim, Options{TPS: 10, FPS: 30, Clock: clock.now})
	frame := time.Second / 30
	key := tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone)

	for i := 0; i < 3; i++ {
		clock.t = clock.t.Add(frame)
		r.Tick()
	}
	r.HandleEvent(key)
	clock.t = clock.t.Add(time.Minute)
	r.HandleEvent(key)
	if r.Paused() {
		t.Fatal("second p should resume")
	}

	before := sim.Generation()
	for i := 0; i < 30; i++ {
		clock.t = clock.t.Add(frame)
		r.Tick()
	}
	if got := sim.Generation() - before; got != 10 {
		t.Fatalf("stepped %d times in the second after resuming at 10 tps, expected 10", got)
	}
}

func TestTickRunsEveryDueStepWhenTPSExceedsFPS(t *testing.T) {
	s := newScreen(t, 10, 10)
	sim := newLife(t, 16, 16)
	clock := &fakeClock{t: time.Unix(1000, 0)}
	r := NewRunner(s, sim, Options{TPS: 120, FPS: 30, Clock: clock.now})
	frame := time.Second / 30

	for i := 0; i < 30; i++ {
		clock.t = clock.t.Add(frame)
		r.Tick()
	}
	if got := sim.Generation(); got < 115 || got > 121 {
		t.Fatalf("stepped %d times in one second at 120 tps and 30 fps, expected about 120", got)
	}
}
