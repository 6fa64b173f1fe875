package tui

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/furnace-pets/internal/config"
	"github.com/vovakirdan/furnace-pets/internal/game"
	"github.com/vovakirdan/furnace-pets/internal/pedometer"
	"github.com/vovakirdan/furnace-pets/internal/storage"
)

// Session bundles one player's engine with its step source.
type Session struct {
	Slot       string
	Engine     *game.Engine
	Source     pedometer.Source
	ManualStep int // +/- adjustment of the step override

	store  *storage.Store
	sim    *pedometer.Simulated
	logger *log.Logger

	done      chan struct{}
	closeOnce sync.Once
}

// OpenSession hydrates the engine for slot. A nil store keeps the game in
// memory only.
func OpenSession(store *storage.Store, slot string, cfg config.Config, logger *log.Logger) (*Session, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	catalog, err := cfg.Catalog()
	if err != nil {
		return nil, err
	}

	opts := []game.Option{
		game.WithPetConfig(cfg.Pet),
		game.WithCatalog(catalog),
		game.WithLogger(logger.With("slot", slot)),
	}

	var backing game.Store = game.NewMemoryStore()
	initial := 0
	if store != nil {
		s := store.Slot(slot)
		backing = s
		opts = append(opts, game.WithJournal(s))

		initial, err = store.ManualSteps(slot)
		if err != nil {
			logger.Warn("could not load manual steps", "slot", slot, "error", err)
			initial = 0
		}
	}

	sess := &Session{
		Slot:       slot,
		Engine:     game.New(backing, opts...),
		ManualStep: cfg.Pedometer.ManualStep,
		store:      store,
		logger:     logger,
		done:       make(chan struct{}),
	}

	sess.Source = pedometer.New(cfg.Pedometer, initial, pedometer.WithLogger(logger))
	if sim, ok := sess.Source.(*pedometer.Simulated); ok {
		sess.sim = sim
	}
	return sess, nil
}

// Start begins ticking a simulated step source. Manual sources need no
// background work.
func (s *Session) Start() error {
	if s.sim == nil {
		return nil
	}
	return s.sim.Start()
}

// Steps returns the current raw step reading.
func (s *Session) Steps() int {
	return s.Source.Steps()
}

// OnSteps registers fn to run with the new reading after every simulated
// tick. Manual sources never call it.
func (s *Session) OnSteps(fn func(int)) {
	if s.sim != nil {
		s.sim.OnTick(fn)
	}
}

// Done is closed when the session closes.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// AdjustSteps moves the step reading by n manual steps.
func (s *Session) AdjustSteps(n int) int {
	steps := s.Source.Add(n * s.ManualStep)
	s.saveManualSteps()
	return steps
}

// SetSteps replaces the step reading.
func (s *Session) SetSteps(n int) int {
	steps := s.Source.Add(n - s.Source.Steps())
	s.saveManualSteps()
	return steps
}

func (s *Session) saveManualSteps() {
	if s.store == nil || s.sim != nil {
		return
	}
	if err := s.store.SetManualSteps(s.Slot, s.Source.Steps()); err != nil {
		s.logger.Warn("could not save manual steps", "slot", s.Slot, "error", err)
	}
}

// Close stops the simulator, stores the manual reading and flushes the
// engine.
func (s *Session) Close() error {
	s.closeOnce.Do(func() { close(s.done) })
	if s.sim != nil {
		s.sim.Stop()
		s.sim.OnTick(nil)
	}
	s.Engine.OnMoodChange(nil)
	s.saveManualSteps()
	return s.Engine.Close()
}
