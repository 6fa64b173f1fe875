package pedometer

import (
	"math/rand/v2"
	"testing"

	"github.com/vovakirdan/furnace-pets/internal/config"
)

func simConfig() config.PedometerConfig {
	return config.PedometerConfig{
		Mode:         config.PedometerSimulated,
		Schedule:     "@every 3s",
		MaxIncrement: 5,
		MinStart:     3000,
		MaxStart:     18000,
	}
}

func TestManualClampsAtZero(t *testing.T) {
	m := NewManual(-10)
	if m.Steps() != 0 {
		t.Errorf("Expected 0, got %d", m.Steps())
	}

	if got := m.Add(500); got != 500 {
		t.Errorf("Add(500) = %d, want 500", got)
	}
	if got := m.Add(-2000); got != 0 {
		t.Errorf("Add(-2000) = %d, want 0", got)
	}

	m.Set(12345)
	if m.Steps() != 12345 {
		t.Errorf("Expected 12345, got %d", m.Steps())
	}
}

func TestSimulatedStartsInRange(t *testing.T) {
	for seed := uint64(0); seed < 50; seed++ {
		s := NewSimulated(simConfig(), WithRand(rand.New(rand.NewPCG(seed, 7))))
		if got := s.Steps(); got < 3000 || got > 18000 {
			t.Fatalf("seed %d: start %d outside [3000, 18000]", seed, got)
		}
	}
}

func TestSimulatedTickIncrements(t *testing.T) {
	s := NewSimulated(simConfig(), WithRand(rand.New(rand.NewPCG(1, 2))))

	var seen []int
	s.OnTick(func(steps int) { seen = append(seen, steps) })

	prev := s.Steps()
	for i := 0; i < 100; i++ {
		next := s.Tick()
		if d := next - prev; d < 0 || d >= 5 {
			t.Fatalf("tick %d: increment %d outside [0, 5)", i, d)
		}
		prev = next
	}
	if len(seen) != 100 {
		t.Errorf("Expected 100 tick callbacks, got %d", len(seen))
	}
}

func TestSimulatedAddClamps(t *testing.T) {
	s := NewSimulated(simConfig(), WithRand(rand.New(rand.NewPCG(3, 4))))
	if got := s.Add(-1_000_000); got != 0 {
		t.Errorf("Add() = %d, want 0", got)
	}
}

func TestSimulatedInvalidSchedule(t *testing.T) {
	cfg := simConfig()
	cfg.Schedule = "every now and then"

	s := NewSimulated(cfg)
	if err := s.Start(); err == nil {
		s.Stop()
		t.Fatal("Expected error for invalid schedule")
	}
}

func TestSimulatedStartStop(t *testing.T) {
	s := NewSimulated(simConfig())
	if err := s.Start(); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	if err := s.Start(); err != nil {
		t.Fatalf("second Start() failed: %v", err)
	}
	s.Stop()
	s.Stop()
}

func TestNewSelectsMode(t *testing.T) {
	if _, ok := New(config.PedometerConfig{Mode: config.PedometerManual}, 42).(*Manual); !ok {
		t.Error("manual mode should build a Manual source")
	}
	if _, ok := New(simConfig(), 0).(*Simulated); !ok {
		t.Error("simulated mode should build a Simulated source")
	}
}
