package pedometer

import (
	"fmt"
	"io"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/robfig/cron/v3"

	"github.com/vovakirdan/furnace-pets/internal/config"
)

// Simulated fakes a walking user: it starts at a random count and gains a
// few random steps on every scheduled tick.
type Simulated struct {
	mu       sync.Mutex
	steps    int
	maxInc   int
	schedule string
	rng      *rand.Rand
	onTick   func(int)

	cron    *cron.Cron
	logger  *log.Logger
	running bool
}

type simOptions struct {
	rng    *rand.Rand
	logger *log.Logger
}

// Option configures a Simulated source.
type Option func(*simOptions)

// WithRand sets the random source, for reproducible runs.
func WithRand(r *rand.Rand) Option {
	return func(o *simOptions) { o.rng = r }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(o *simOptions) { o.logger = l }
}

// NewSimulated creates a simulator; call Start to begin ticking.
func NewSimulated(cfg config.PedometerConfig, opts ...Option) *Simulated {
	o := simOptions{logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		seed := uint64(time.Now().UnixNano())
		o.rng = rand.New(rand.NewPCG(seed, seed>>1))
	}

	s := &Simulated{
		maxInc:   cfg.MaxIncrement,
		schedule: cfg.Schedule,
		rng:      o.rng,
		cron:     cron.New(),
		logger:   o.logger,
	}

	lo, hi := max(0, cfg.MinStart), max(0, cfg.MaxStart)
	if hi < lo {
		hi = lo
	}
	s.steps = lo + s.rng.IntN(hi-lo+1)
	return s
}

// Steps returns the current reading.
func (s *Simulated) Steps() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.steps
}

// Add moves the reading by delta, clamped at zero.
func (s *Simulated) Add(delta int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.steps = max(0, s.steps+delta)
	return s.steps
}

// OnTick registers a callback run with the new reading after every tick.
func (s *Simulated) OnTick(fn func(int)) {
	s.mu.Lock()
	s.onTick = fn
	s.mu.Unlock()
}

// Tick advances the simulation once and returns the new reading.
func (s *Simulated) Tick() int {
	s.mu.Lock()
	if s.maxInc > 0 {
		s.steps += s.rng.IntN(s.maxInc)
	}
	steps, fn := s.steps, s.onTick
	s.mu.Unlock()

	if fn != nil {
		fn(steps)
	}
	return steps
}

// Start registers the tick on the configured schedule and starts the cron.
func (s *Simulated) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return nil
	}
	if _, err := s.cron.AddFunc(s.schedule, func() { s.Tick() }); err != nil {
		return fmt.Errorf("pedometer: invalid schedule %q: %w", s.schedule, err)
	}
	s.cron.Start()
	s.running = true
	s.logger.Debug("step simulator started", "schedule", s.schedule, "steps", s.steps)
	return nil
}

// Stop halts ticking and waits for a running tick to finish.
func (s *Simulated) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.mu.Unlock()

	<-s.cron.Stop().Done()
	s.logger.Debug("step simulator stopped")
}
