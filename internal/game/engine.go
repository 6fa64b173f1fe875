package game

import (
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/furnace-pets/internal/activity"
	"github.com/vovakirdan/furnace-pets/internal/config"
	"github.com/vovakirdan/furnace-pets/internal/economy"
	"github.com/vovakirdan/furnace-pets/internal/pet"
	"github.com/vovakirdan/furnace-pets/internal/shop"
)

// Engine is the single authority over one player's game state. Every
// mutating call updates the in-memory state first and then schedules a
// full re-serialization to the store.
type Engine struct {
	mu        sync.Mutex
	state     State
	lastStamp int64 // last millisecond stamp handed to an inventory id

	pet     config.PetConfig
	catalog *shop.Catalog
	mood    *pet.MoodController
	clock   Clock
	logger  *log.Logger
	journal Journal
	saver   *saver
}

type options struct {
	pet       config.PetConfig
	catalog   *shop.Catalog
	clock     Clock
	logger    *log.Logger
	journal   Journal
	afterFunc pet.AfterFunc
}

// Option configures an Engine.
type Option func(*options)

// WithPetConfig overrides the pet tuning.
func WithPetConfig(cfg config.PetConfig) Option {
	return func(o *options) { o.pet = cfg }
}

// WithCatalog sets the shop catalog used by PurchaseByID.
func WithCatalog(c *shop.Catalog) Option {
	return func(o *options) { o.catalog = c }
}

// WithClock sets the time source.
func WithClock(c Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithJournal records engine events to j.
func WithJournal(j Journal) Option {
	return func(o *options) { o.journal = j }
}

// WithAfterFunc sets how mood reverts are scheduled.
func WithAfterFunc(f pet.AfterFunc) Option {
	return func(o *options) { o.afterFunc = f }
}

// New creates an engine hydrated from store. A load failure is logged and
// the engine starts from the first-run state.
func New(store Store, opts ...Option) *Engine {
	def := config.DefaultConfig()
	o := options{
		pet:    def.Pet,
		clock:  RealClock{},
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.catalog == nil {
		c, err := def.Catalog()
		if err != nil {
			o.logger.Error("default shop catalog is invalid, shop is empty", "error", err)
			c, _ = shop.NewCatalog(nil)
		}
		o.catalog = c
	}

	e := &Engine{
		state:   NewState(),
		pet:     o.pet,
		catalog: o.catalog,
		mood:    pet.NewMoodController(o.afterFunc),
		clock:   o.clock,
		logger:  o.logger,
		journal: o.journal,
		saver:   newSaver(store, o.logger),
	}
	e.hydrate(store)
	return e
}

func (e *Engine) hydrate(store Store) {
	blob, err := store.Load()
	if err != nil {
		e.logger.Warn("could not load game state, starting fresh", "error", err)
		return
	}
	if blob == nil {
		e.logger.Debug("no saved game, starting fresh")
		return
	}
	st, err := Unmarshal(blob)
	if err != nil {
		e.logger.Warn("saved game is unreadable, starting fresh", "error", err)
		return
	}
	e.state = st
	e.logger.Debug("game loaded", "currency", st.TotalCurrency, "level", st.PetLevel, "items", len(st.Inventory))
}

// commitLocked installs next as the canonical state and schedules a save.
// After Close nothing can be persisted, so the change is refused with
// ErrStorage and the state is left as it was. Callers hold e.mu.
func (e *Engine) commitLocked(next State) error {
	if e.saver.isClosed() {
		e.logger.Warn("engine is closed, change discarded")
		return fmt.Errorf("%w: %w", ErrStorage, errSaverClosed)
	}
	e.state = next
	blob, err := Marshal(next)
	if err != nil {
		e.logger.Error("could not encode game state", "error", err)
		return nil
	}
	e.saver.schedule(blob)
	return nil
}

// record appends events to the journal. Failures are logged only.
func (e *Engine) record(events ...Event) {
	if e.journal == nil {
		return
	}
	for _, ev := range events {
		if err := e.journal.Record(ev); err != nil {
			e.logger.Warn("could not journal event", "kind", ev.Kind, "error", err)
		}
	}
}

// Convert turns the steps accrued since the last conversion into currency.
// rawSteps is the current reading of the step source. It returns the
// amount credited, or ErrNothingToConvert when no steps accrued.
func (e *Engine) Convert(rawSteps int) (int, error) {
	e.mu.Lock()
	cur := e.state
	eligible := activity.ConvertibleSteps(rawSteps, cur.LastConversionStepCount)
	if eligible == 0 {
		e.mu.Unlock()
		return 0, ErrNothingToConvert
	}
	amount, err := economy.Convert(eligible)
	if err != nil {
		e.mu.Unlock()
		return 0, err
	}

	now := e.clock.Now().UTC()
	next := cur.Clone()
	next.TotalCurrency += amount
	next.TotalStepsConverted += eligible
	next.LastConversionStepCount = rawSteps
	next.LastConversionTime = &now

	gained := pet.LevelsGained(cur.TotalStepsConverted, next.TotalStepsConverted, e.pet.LevelThreshold, e.pet.LevelingMode())
	next.PetLevel += gained

	if err := e.commitLocked(next); err != nil {
		e.mu.Unlock()
		return 0, err
	}
	e.mu.Unlock()

	e.mood.Trigger(pet.MoodHappy, e.pet.HappyDwell)

	e.logger.Info("steps converted", "steps", eligible, "amount", amount, "balance", next.TotalCurrency)
	events := []Event{{Kind: EventConvert, Amount: amount, Detail: stepsDetail(eligible), At: now}}
	if gained > 0 {
		e.logger.Info("pet leveled up", "level", next.PetLevel)
		events = append(events, Event{Kind: EventLevelUp, Amount: next.PetLevel, At: now})
	}
	e.record(events...)

	return amount, nil
}

// TapPet makes the pet playful for the playful dwell window.
func (e *Engine) TapPet() {
	e.mood.Trigger(pet.MoodPlayful, e.pet.PlayfulDwell)
}

// ResetCurrency sets the balance to zero. Development helper.
func (e *Engine) ResetCurrency() {
	e.mu.Lock()
	next := e.state.Clone()
	prev := next.TotalCurrency
	next.TotalCurrency = 0
	if err := e.commitLocked(next); err != nil {
		e.mu.Unlock()
		return
	}
	e.mu.Unlock()

	e.logger.Info("currency reset", "previous", prev)
	e.record(Event{Kind: EventResetCurrency, Amount: prev, At: e.clock.Now().UTC()})
}

// State returns a copy of the current state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Clone()
}

// Mood returns the current transient mood.
func (e *Engine) Mood() pet.Mood {
	return e.mood.Mood()
}

// OnMoodChange registers a callback run after each mood change.
func (e *Engine) OnMoodChange(fn func(pet.Mood)) {
	e.mood.OnChange(fn)
}

// ConvertibleSteps returns how many steps a Convert(rawSteps) would use.
func (e *Engine) ConvertibleSteps(rawSteps int) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return activity.ConvertibleSteps(rawSteps, e.state.LastConversionStepCount)
}

// Category returns the pet's look for the current weekly total.
func (e *Engine) Category() pet.Category {
	e.mu.Lock()
	defer e.mu.Unlock()
	return pet.CategoryFor(e.state.WeeklySteps.Total(), e.pet.SadBelow, e.pet.CheerfulAbove)
}

// PetName returns the configured pet name.
func (e *Engine) PetName() string {
	return e.pet.Name
}

// Catalog returns the shop catalog.
func (e *Engine) Catalog() *shop.Catalog {
	return e.catalog
}

// Snapshot is a consistent read-only view for the presentation layer.
type Snapshot struct {
	State       State
	Mood        pet.Mood
	Category    pet.Category
	WeeklyTotal int
	Convertible int
	Preview     int // currency Convert would credit right now
}

// Snapshot returns the current view given the step source reading.
func (e *Engine) Snapshot(rawSteps int) Snapshot {
	e.mu.Lock()
	st := e.state.Clone()
	e.mu.Unlock()

	convertible := activity.ConvertibleSteps(rawSteps, st.LastConversionStepCount)
	preview, _ := economy.Convert(convertible)
	total := st.WeeklySteps.Total()

	return Snapshot{
		State:       st,
		Mood:        e.mood.Mood(),
		Category:    pet.CategoryFor(total, e.pet.SadBelow, e.pet.CheerfulAbove),
		WeeklyTotal: total,
		Convertible: convertible,
		Preview:     preview,
	}
}

// Flush writes any pending state synchronously.
func (e *Engine) Flush() error {
	return e.saver.flush()
}

// Close cancels the pending mood revert and performs the final flush.
func (e *Engine) Close() error {
	e.mood.Stop()
	return e.saver.close()
}

func stepsDetail(steps int) string {
	return strconv.Itoa(steps) + " steps"
}
