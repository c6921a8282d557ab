package main

import (
	"fmt"
	"hash/fnv"
	"time"

	"golife/pkg/sims/life"
)

type scenario struct {
	width   int
	height  int
	workers int
}

func (s scenario) String() string {
	return fmt.Sprintf("%dx%d workers=%d", s.width, s.height, s.workers)
}

type scenarioResult struct {
	scenario   scenario
	steps      int
	elapsed    time.Duration
	population int
	checksum   uint64
	err        error
}

func (r scenarioResult) gensPerSecond() float64 {
	if r.elapsed <= 0 {
		return 0
	}
	return float64(r.steps) / r.elapsed.Seconds()
}

func runScenario(sc scenario, seed int64, steps int) scenarioResult {
	cfg := life.DefaultConfig()
	cfg.Width = sc.width
	cfg.Height = sc.height
	cfg.Workers = sc.workers
	cfg.Seed = seed

	sim, err := life.NewWithConfig(cfg)
	if err != nil {
		return scenarioResult{scenario: sc, err: err}
	}
	sim.Reset(seed)

	start := time.Now()
	for i := 0; i < steps; i++ {
		sim.Step()
	}
	elapsed := time.Since(start)

	return scenarioResult{
		scenario:   sc,
		steps:      steps,
		elapsed:    elapsed,
		population: sim.Population(),
		checksum:   checksum(sim.Cells()),
	}
}

func checksum(cells []bool) uint64 {
	h := fnv.New64a()
	buf := make([]byte, 0, 4096)
	for _, c := range cells {
		b := byte(0)
		if c {
			b = 1
		}
		buf = append(buf, b)
		if len(buf) == cap(buf) {
			h.Write(buf)
			buf = buf[:0]
		}
	}
	h.Write(buf)
	return h.Sum64()
}

// mismatches returns results whose final grid differs from the single-band
// result of the same size. Sizes without a single-band run are compared
// against their first result.
func mismatches(results []scenarioResult) []scenarioResult {
	ref := map[[2]int]uint64{}
	for _, r := range results {
		if r.scenario.workers == 1 {
			ref[[2]int{r.scenario.width, r.scenario.height}] = r.checksum
		}
	}
	for _, r := range results {
		key := [2]int{r.scenario.width, r.scenario.height}
		if _, ok := ref[key]; !ok {
			ref[key] = r.checksum
		}
	}
	var bad []scenarioResult
	for _, r := range results {
		if r.checksum != ref[[2]int{r.scenario.width, r.scenario.height}] {
			bad = append(bad, r)
		}
	}
	return bad
}
