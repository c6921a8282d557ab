package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters shared by the front-ends.
type Config struct {
	Sim     string
	Width   int
	Height  int
	Scale   int
	TPS     int
	Seed    int64
	Workers int
	HUD     bool
}

// NewConfig returns the classic 800x600 setup: 160x120 cells at five pixels
// each, stepped 30 times per second.
func NewConfig() *Config {
	return &Config{Sim: "life", Width: 160, Height: 120, Scale: 5, TPS: 30, Workers: 1}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for reset (0 picks a random seed)")
	fs.IntVar(&c.Workers, "workers", c.Workers, "row bands per step (0 = one per CPU)")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the status overlay at start")
}

// SimMap converts the grid-related flags into the key/value form consumed by
// simulation factories.
func (c *Config) SimMap() map[string]string {
	return map[string]string{
		"w":       strconv.Itoa(c.Width),
		"h":       strconv.Itoa(c.Height),
		"seed":    strconv.FormatInt(c.Seed, 10),
		"workers": strconv.Itoa(c.Workers),
	}
}
