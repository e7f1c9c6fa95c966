package planner

import "github.com/shopspring/decimal"

// Tolerance is the largest accepted gap between the allocated total and the load, in MW.
const Tolerance = 0.1

// RoundToTenth quantizes a power value to the 0.1 MW billing step,
// rounding half away from zero.
func RoundToTenth(x float64) float64 {
	return decimal.NewFromFloat(x).Round(1).InexactFloat64()
}

// RoundCost rounds a euro/MWh cost to the cent for display.
func RoundCost(c float64) float64 {
	return decimal.NewFromFloat(c).Round(2).InexactFloat64()
}
