package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"sync"
	"time"

	"lunar-rover/internal/config"
	"lunar-rover/internal/logging"
)

func main() {
	configPath := flag.String("config", "", "YAML config file for terrain and flight defaults")
	seeds := flag.Int("seeds", 16, "seeds per pad chance")
	seed0 := flag.Int64("seed0", 1, "first seed")
	chanceList := flag.String("chances", "0.05,0.1,0.2", "comma-separated pad chances to sweep")
	distance := flag.Float64("distance", 20000, "world units to scroll per scenario")
	step := flag.Float64("step", 0.39, "scroll per tick")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	burn := flag.Bool("burn", false, "also run the continuous-thrust fuel scenario")
	burnAngle := flag.Float64("burn-angle", 45, "vehicle tilt in degrees for the burn scenario")
	level := flag.String("log-level", "info", "log level")
	flag.Parse()

	log, err := logging.New(logging.Config{Level: *level, Pretty: true}, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("could not load config")
	}
	chances, err := parseChances(*chanceList)
	if err != nil {
		log.Fatal().Err(err).Msg("bad -chances")
	}
	if *workers <= 0 {
		*workers = 1
	}

	sets := buildJobs(*seed0, *seeds, chances)
	log.Info().Int("scenarios", len(sets)).Int("workers", *workers).Float64("distance", *distance).Msg("sweeping")

	jobs := make(chan job)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				res := runScenario(cfg.Terrain, j, *distance, *step)
				if *burn {
					res.burnTick, res.burnDistance = runBurn(cfg.Terrain, cfg.Flight, j, *burnAngle, cfg.Window.TPS, 1_000_000)
				}
				results <- res
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, j := range sets {
			jobs <- j
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		all = append(all, res)
		if res.violations > 0 {
			log.Warn().Int64("seed", res.seed).Float64("pad_chance", res.padChance).
				Int("violations", res.violations).Str("first", res.firstError).Msg("window invariant broken")
		}
		log.Debug().Int64("seed", res.seed).Float64("pad_chance", res.padChance).Int("pads", res.pads).Msg("scenario done")
	}
	elapsed := time.Since(start)

	fmt.Printf("\nResults over %d seeds (elapsed %s):\n", *seeds, elapsed.Round(time.Millisecond))
	for _, s := range summarize(all) {
		fmt.Printf("chance=%.3f pads/1000=%.2f gap=%.1f y[%.1f,%.1f] violations=%d",
			s.padChance, s.density, s.meanGap, s.minY, s.maxY, s.violations)
		if *burn {
			fmt.Printf(" burn: empty@%.0f ticks dist=%.1f", s.burnTicks, s.burnDist)
		}
		fmt.Println()
	}

	for _, r := range all {
		if r.violations > 0 {
			os.Exit(1)
		}
	}
}
