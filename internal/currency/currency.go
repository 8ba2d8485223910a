package currency

import "math"

// DisplayRate converts canonical (backend) prices into the display currency.
// It is a fixed multiplier, not a live exchange rate.
const DisplayRate = 75.0

// ToDisplay converts a canonical price to its display-currency value.
// The result keeps full precision; rounding happens once, at presentation.
func ToDisplay(price float64) float64 {
	return price * DisplayRate
}

// Round2 rounds a value to two decimal places for final display output.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
