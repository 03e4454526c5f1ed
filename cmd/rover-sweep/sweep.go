package main

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"lunar-rover/internal/core"
	"lunar-rover/internal/flight"
	"lunar-rover/internal/terrain"
)

type job struct {
	seed      int64
	padChance float64
}

type scenarioResult struct {
	job
	scrolled   float64
	pads       int
	meanGap    float64
	minY       float64
	maxY       float64
	violations int
	firstError string

	burnTick     uint64
	burnDistance float64
}

// density is pads per thousand world units scrolled.
func (r scenarioResult) density() float64 {
	if r.scrolled <= 0 {
		return 0
	}
	return float64(r.pads) * 1000 / r.scrolled
}

// runScenario scrolls a fresh terrain window distance units in increments of
// step, verifying the window after every advance.
func runScenario(cfg terrain.Config, j job, distance, step float64) scenarioResult {
	cfg.PadChance = j.padChance
	g := terrain.New(cfg, core.NewRNG(j.seed))
	g.Initialize()

	res := scenarioResult{job: j, minY: math.Inf(1), maxY: math.Inf(-1)}
	lastPad := math.Inf(-1)
	var gapSum float64
	var gaps int

	observe := func() {
		for _, p := range g.Points() {
			res.minY = math.Min(res.minY, p.Y)
			res.maxY = math.Max(res.maxY, p.Y)
		}
		for _, p := range g.Pads() {
			abs := p.X + res.scrolled
			if abs <= lastPad+1e-6 {
				continue
			}
			if !math.IsInf(lastPad, -1) {
				gapSum += abs - lastPad
				gaps++
			}
			lastPad = abs
			res.pads++
		}
		if err := g.Verify(); err != nil {
			res.violations++
			if res.firstError == "" {
				res.firstError = err.Error()
			}
		}
	}

	observe()
	if step <= 0 {
		step = 1
	}
	for res.scrolled < distance {
		d := math.Min(step, distance-res.scrolled)
		g.Advance(d)
		res.scrolled += d
		observe()
	}
	if gaps > 0 {
		res.meanGap = gapSum / float64(gaps)
	}
	return res
}

// runBurn holds thrust from a tilted start until the tank is empty and
// reports the tick it ran dry and the distance covered.
func runBurn(tcfg terrain.Config, p flight.Params, j job, angle float64, tps int, limit int) (uint64, float64) {
	tcfg.PadChance = j.padChance
	g := terrain.New(tcfg, core.NewRNG(j.seed))
	g.Initialize()
	start := flight.Vehicle{X: g.Config().ScreenWidth / 2, Y: g.Config().MinY - 1e6, Angle: angle, Fuel: p.MaxFuel}
	r := flight.NewResolver(p, g, nil, start)
	clock := core.NewFixedStep(tps)
	for i := 0; i < limit; i++ {
		r.Update(core.Input{Thrust: true}, clock.Advance())
		if r.Vehicle().Fuel == 0 || r.State() == flight.Crashed {
			break
		}
	}
	return clock.Ticks(), r.Distance()
}

// parseChances reads a comma-separated list of probabilities in [0, 1].
func parseChances(s string) ([]float64, error) {
	var out []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("pad chance %q: %w", part, err)
		}
		if v < 0 || v > 1 {
			return nil, fmt.Errorf("pad chance %v outside [0, 1]", v)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no pad chances given")
	}
	return out, nil
}

func buildJobs(seed0 int64, seeds int, chances []float64) []job {
	jobs := make([]job, 0, seeds*len(chances))
	for _, c := range chances {
		for i := 0; i < seeds; i++ {
			jobs = append(jobs, job{seed: seed0 + int64(i), padChance: c})
		}
	}
	return jobs
}

type summary struct {
	padChance  float64
	runs       int
	density    float64
	meanGap    float64
	minY       float64
	maxY       float64
	violations int
	burnTicks  float64
	burnDist   float64
}

// summarize averages results per pad chance, in ascending chance order.
func summarize(results []scenarioResult) []summary {
	by := map[float64]*summary{}
	for _, r := range results {
		s, ok := by[r.padChance]
		if !ok {
			s = &summary{padChance: r.padChance, minY: math.Inf(1), maxY: math.Inf(-1)}
			by[r.padChance] = s
		}
		s.runs++
		s.density += r.density()
		s.meanGap += r.meanGap
		s.minY = math.Min(s.minY, r.minY)
		s.maxY = math.Max(s.maxY, r.maxY)
		s.violations += r.violations
		s.burnTicks += float64(r.burnTick)
		s.burnDist += r.burnDistance
	}
	out := make([]summary, 0, len(by))
	for _, s := range by {
		n := float64(s.runs)
		s.density /= n
		s.meanGap /= n
		s.burnTicks /= n
		s.burnDist /= n
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].padChance < out[j].padChance })
	return out
}
