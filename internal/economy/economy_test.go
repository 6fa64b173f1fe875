package economy

import (
	"errors"
	"testing"
)

func TestConvertFloors(t *testing.T) {
	tests := []struct {
		steps int
		want  int
	}{
		{0, 0},
		{99, 0},
		{100, 1},
		{4500, 45},
		{4599, 45},
		{123456, 1234},
	}

	for _, tt := range tests {
		got, err := Convert(tt.steps)
		if err != nil {
			t.Fatalf("Convert(%d) failed: %v", tt.steps, err)
		}
		if got != tt.want {
			t.Errorf("Convert(%d) = %d, want %d", tt.steps, got, tt.want)
		}
	}
}

func TestConvertMatchesRate(t *testing.T) {
	for s := 0; s < 5000; s += 7 {
		got, err := Convert(s)
		if err != nil {
			t.Fatalf("Convert(%d) failed: %v", s, err)
		}
		if want := s / StepsPerCoin; got != want {
			t.Fatalf("Convert(%d) = %d, want %d", s, got, want)
		}
	}
}

func TestConvertRejectsNegative(t *testing.T) {
	_, err := Convert(-1)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("Expected ErrInvalidInput, got %v", err)
	}
}

func TestCanAfford(t *testing.T) {
	if !CanAfford(30, 30) {
		t.Error("Balance equal to price should be affordable")
	}
	if CanAfford(10, 50) {
		t.Error("Balance below price should not be affordable")
	}
	if !CanAfford(200, 15) {
		t.Error("Balance above price should be affordable")
	}
}

func TestStepsForCoins(t *testing.T) {
	if got := StepsForCoins(45); got != 4500 {
		t.Errorf("StepsForCoins(45) = %d, want 4500", got)
	}
	if got := StepsForCoins(-3); got != 0 {
		t.Errorf("StepsForCoins(-3) = %d, want 0", got)
	}
}
