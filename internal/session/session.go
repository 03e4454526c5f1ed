package session

import (
	"context"
	"time"

	"lunar-rover/internal/config"
	"lunar-rover/internal/core"
	"lunar-rover/internal/flight"
	"lunar-rover/internal/logging"
	"lunar-rover/internal/scores"
	"lunar-rover/internal/terrain"

	"github.com/rs/zerolog"
)

// Mode is the top-level screen the session is on.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
)

func (m Mode) String() string {
	if m == ModePlaying {
		return "playing"
	}
	return "menu"
}

// spawnClearance keeps a fresh vehicle this far above the highest terrain.
const spawnClearance = 48

const storeTimeout = 2 * time.Second

// Session owns one player's game: the menu, the current run and the high
// score carried between runs.
type Session struct {
	cfg   config.Config
	rule  flight.LandingRule
	store scores.Store
	log   zerolog.Logger
	ticks zerolog.Logger

	params flight.Params

	mode     Mode
	seed     int64
	runs     int64
	runSeed  int64
	ground   *terrain.Generator
	resolver *flight.Resolver
	high     flight.HighScore
	newBest  bool
	last     flight.Event
	landings int
	clock    *core.FixedStep
}

// New builds a session in the menu. A nil rule resolves cfg.Variant, falling
// back to the pad rule; a nil store keeps scores in memory.
func New(cfg config.Config, rule flight.LandingRule, store scores.Store, log zerolog.Logger) *Session {
	if rule == nil {
		r, err := flight.Rule(cfg.Variant)
		if err != nil {
			log.Warn().Err(err).Msg("falling back to pad landing rule")
			r = flight.PadRule{}
		}
		rule = r
	}
	if store == nil {
		store = scores.NewMemory()
	}
	s := &Session{
		cfg:    cfg,
		rule:   rule,
		store:  store,
		log:    log.With().Str("component", "session").Str("rule", rule.Name()).Logger(),
		params: cfg.Flight,
		high:   flight.NewHighScore(0),
		clock:  core.NewFixedStep(cfg.Window.TPS),
	}
	s.ticks = logging.Sampled(s.log, 5, 10*time.Second, 600)
	s.Reset(cfg.Seed)
	return s
}

// Name implements core.Sim.
func (s *Session) Name() string { return "lunar-rover" }

// Size implements core.Sim.
func (s *Session) Size() core.Size {
	return core.Size{W: s.cfg.Window.Width, H: s.cfg.Window.Height}
}

// Reset returns to the menu with a fresh seed. The stored best is folded into
// the high score; a reset never lowers it.
func (s *Session) Reset(seed int64) {
	s.mode = ModeMenu
	s.seed = seed
	s.runs = 0
	s.last = flight.Event{}
	s.landings = 0

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	best, err := s.store.Best(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("could not load high score")
	} else {
		s.high.Observe(best)
	}
	s.prepare(seed)
}

// Step implements core.Sim.
func (s *Session) Step(in core.Input, dt time.Duration) {
	switch s.mode {
	case ModeMenu:
		if in.Start {
			s.start()
		}
	case ModePlaying:
		s.play(in, dt)
	}
}

func (s *Session) start() {
	s.runs++
	s.prepare(s.seed + s.runs)
	s.mode = ModePlaying
	s.last = flight.Event{}
	s.landings = 0
	s.newBest = false
	s.clock = core.NewFixedStep(s.cfg.Window.TPS)
	s.log.Info().Int64("seed", s.runSeed).Int64("run", s.runs).Float64("best", s.high.Best()).Msg("run started")
}

// prepare builds terrain as wide as the window and a parked vehicle for seed.
// The menu shows this scene behind its text.
func (s *Session) prepare(seed int64) {
	s.runSeed = seed
	tcfg := s.cfg.Terrain
	tcfg.ScreenWidth = float64(s.cfg.Window.Width)
	s.ground = terrain.New(tcfg, core.NewRNG(seed))
	s.ground.Initialize()

	tcfg = s.ground.Config()
	start := flight.Vehicle{
		X:    tcfg.ScreenWidth / 2,
		Y:    min(float64(s.cfg.Window.Height)/2, tcfg.MinY-spawnClearance),
		Fuel: s.params.MaxFuel,
	}
	s.resolver = flight.NewResolver(s.params, s.ground, s.rule, start)
}

func (s *Session) play(in core.Input, dt time.Duration) {
	s.clock.Advance()
	ev := s.resolver.Update(in, dt)
	if ev.Kind != flight.EventNone {
		s.last = ev
	}
	if s.high.Observe(s.resolver.Distance()) && !s.newBest {
		s.newBest = true
		s.log.Info().Float64("distance", s.resolver.Distance()).Msg("new high score")
	}
	s.ticks.Debug().
		Uint64("tick", s.clock.Ticks()).
		Float64("fuel", s.resolver.Vehicle().Fuel).
		Float64("distance", s.resolver.Distance()).
		Msg("tick")

	switch ev.Kind {
	case flight.EventLiftoff:
		s.log.Debug().Float64("fuel", s.resolver.Vehicle().Fuel).Msg("liftoff")
	case flight.EventLanded:
		s.landings++
		s.log.Info().Float64("speed", ev.Speed).Float64("pad_x", ev.Pad.X).Int("landings", s.landings).Msg("landed")
	case flight.EventCrashed:
		s.finish(ev)
	}
}

func (s *Session) finish(ev flight.Event) {
	run := scores.Run{
		Variant:  s.rule.Name(),
		Seed:     s.runSeed,
		Distance: s.resolver.Distance(),
		Landings: s.landings,
		Ticks:    s.clock.Ticks(),
	}
	s.log.Info().
		Float64("speed", ev.Speed).
		Float64("distance", run.Distance).
		Int("landings", run.Landings).
		Uint64("ticks", run.Ticks).
		Msg("crashed")

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	if err := s.store.Record(ctx, run); err != nil {
		s.log.Error().Err(err).Msg("could not record run")
	}
	s.mode = ModeMenu
}

// Mode reports the current screen.
func (s *Session) Mode() Mode { return s.mode }

// Terrain exposes the current ground window for drawing.
func (s *Session) Terrain() *terrain.Generator { return s.ground }

// Vehicle returns the current kinematic state.
func (s *Session) Vehicle() flight.Vehicle { return s.resolver.Vehicle() }

// FlightState reports whether the vehicle is flying, landed or crashed.
func (s *Session) FlightState() flight.State { return s.resolver.State() }

// Distance is how far the current or last run scrolled.
func (s *Session) Distance() float64 { return s.resolver.Distance() }

// HighScore is the best distance across runs, including stored ones.
func (s *Session) HighScore() float64 { return s.high.Best() }

// Speed is the vehicle's total speed.
func (s *Session) Speed() float64 { return s.resolver.Vehicle().Speed() }

// LastEvent is the most recent non-empty event of the current run.
func (s *Session) LastEvent() flight.Event { return s.last }

// Landings counts successful landings in the current run.
func (s *Session) Landings() int { return s.landings }

// Seed is the seed the current terrain was generated from.
func (s *Session) Seed() int64 { return s.runSeed }

// Params returns the live flight tunables.
func (s *Session) Params() flight.Params { return s.resolver.Params() }

// Rule returns the landing rule in use.
func (s *Session) Rule() flight.LandingRule { return s.rule }

// Parameters reports the HUD snapshot: the flight tunables plus run facts.
func (s *Session) Parameters() core.ParameterSnapshot {
	snap := s.resolver.Parameters()
	snap.Groups = append(snap.Groups, core.ParameterGroup{
		Name: "Run",
		Params: []core.Parameter{
			core.IntParam("seed", "Seed", s.runSeed),
			core.IntParam("run", "Run", s.runs),
			core.IntParam("landings", "Landings", int64(s.landings)),
		},
		Summary: s.mode.String(),
	})
	return snap
}

// ParameterControls lists the HUD-adjustable tunables.
func (s *Session) ParameterControls() []core.ParameterControl {
	return s.resolver.ParameterControls()
}

// SetFloatParameter adjusts a tunable for this and every later run.
func (s *Session) SetFloatParameter(key string, value float64) bool {
	if !s.resolver.SetFloatParameter(key, value) {
		return false
	}
	s.params = s.resolver.Params()
	s.log.Debug().Str("key", key).Float64("value", value).Msg("parameter changed")
	return true
}

// Recent returns the newest stored runs.
func (s *Session) Recent(n int) ([]scores.Run, error) {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	return s.store.Recent(ctx, n)
}
