package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

func main() {
	steps := flag.Int("steps", 200, "generations to simulate per scenario")
	seed := flag.Int64("seed", 1337, "seed shared by every scenario")
	sizes := flag.String("sizes", "160x120,512x512,1024x768", "comma separated WxH grid sizes")
	workerList := flag.String("workers", "1,2,4,"+strconv.Itoa(runtime.NumCPU()), "comma separated row-band counts to compare")
	parallel := flag.Int("parallel", 1, "scenarios run at once (timings are only comparable at 1)")
	flag.Parse()

	dims, err := parseSizes(*sizes)
	if err != nil {
		log.Fatalf("parse -sizes: %v", err)
	}
	counts, err := parseInts(*workerList)
	if err != nil {
		log.Fatalf("parse -workers: %v", err)
	}

	var sets []scenario
	for _, d := range dims {
		for _, n := range counts {
			sets = append(sets, scenario{width: d[0], height: d[1], workers: n})
		}
	}

	fmt.Printf("Benchmarking %d scenarios (%d at once, %d steps)\n", len(sets), *parallel, *steps)

	jobs := make(chan scenario)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < max(*parallel, 1); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				results <- runScenario(sc, *seed, *steps)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, sc := range sets {
			jobs <- sc
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		if res.err != nil {
			log.Fatalf("%s: %v", res.scenario, res.err)
		}
		all = append(all, res)
	}

	if bad := mismatches(all); len(bad) > 0 {
		for _, res := range bad {
			fmt.Printf("MISMATCH %s checksum=%016x\n", res.scenario, res.checksum)
		}
		log.Fatalf("%d scenarios disagree with the serial result", len(bad))
	}

	sort.Slice(all, func(i, j int) bool {
		a, b := all[i].scenario, all[j].scenario
		if a.width*a.height != b.width*b.height {
			return a.width*a.height < b.width*b.height
		}
		return a.workers < b.workers
	})

	fmt.Printf("\nResults (elapsed %s):\n", time.Since(start).Round(time.Millisecond))
	for _, res := range all {
		fmt.Printf("%-24s gens/s=%9.1f pop=%7d checksum=%016x\n",
			res.scenario, res.gensPerSecond(), res.population, res.checksum)
	}
}

func parseSizes(s string) ([][2]int, error) {
	var out [][2]int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		ws, hs, ok := strings.Cut(part, "x")
		if !ok {
			return nil, fmt.Errorf("size %q is not WxH", part)
		}
		w, err := strconv.Atoi(ws)
		if err != nil {
			return nil, fmt.Errorf("size %q: %w", part, err)
		}
		h, err := strconv.Atoi(hs)
		if err != nil {
			return nil, fmt.Errorf("size %q: %w", part, err)
		}
		out = append(out, [2]int{w, h})
	}
	return out, nil
}

func parseInts(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}
