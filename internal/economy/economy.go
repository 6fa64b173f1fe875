// Package economy holds the pure currency rules: how steps turn into coins
// and whether a balance covers a price.
package economy

import (
	"errors"
	"fmt"
)

// StepsPerCoin is the fixed conversion rate: every 100 steps earn one coin.
const StepsPerCoin = 100

// ErrInvalidInput is returned when a negative step count reaches Convert.
var ErrInvalidInput = errors.New("economy: invalid input")

// Convert returns floor(steps / StepsPerCoin).
func Convert(steps int) (int, error) {
	if steps < 0 {
		return 0, fmt.Errorf("%w: negative step count %d", ErrInvalidInput, steps)
	}
	return steps / StepsPerCoin, nil
}

// CanAfford reports whether balance covers price.
func CanAfford(balance, price int) bool {
	return balance >= price
}

// StepsForCoins returns how many steps are needed to earn coins.
func StepsForCoins(coins int) int {
	if coins <= 0 {
		return 0
	}
	return coins * StepsPerCoin
}
