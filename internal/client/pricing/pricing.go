// Package pricing computes service charges client-side. Every calculator is
// pure and total: malformed numeric input prices as zero, never as an error.
package pricing

import (
	"math"
	"strconv"

	"github.com/Rhymond/go-money"
)

// Rate table, in EUR. BasePrice fields of submitted records mirror these.
const (
	// ForkliftBlockRate is charged per 20-minute block per unit.
	ForkliftBlockRate = 30
	// ForkliftBlockMinutes is the length of one billable forklift block.
	ForkliftBlockMinutes = 20
	// ManliftUnitRate is charged per selected manlift unit.
	ManliftUnitRate = 60
	// ScaffoldUnitRate is charged per scaffold section.
	ScaffoldUnitRate = 10
	// ElectricityRate is charged per consumed kWh.
	ElectricityRate = 0.5
	// WaterRate is charged per consumed cubic meter.
	WaterRate = 0.5
)

// ForkliftDurations are the selectable usage durations, in minutes.
var ForkliftDurations = []int{20, 40, 60, 80, 100}

// ParseQuantity reads a whole-unit quantity from free-form text.
// Empty or non-numeric input counts as zero.
func ParseQuantity(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// ParseReading reads a meter value (kWh, m3) from free-form text.
// Empty or non-numeric input counts as zero.
func ParseReading(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return f
}

// ForkliftQty converts a duration/quantity selection into the billable
// quantity submitted to the ERP: one unit per 20-minute block.
func ForkliftQty(minutes int, quantity string) float64 {
	return float64(minutes) / ForkliftBlockMinutes * float64(ParseQuantity(quantity))
}

// Forklift prices a forklift usage of the given duration and quantity.
func Forklift(minutes int, quantity string) *money.Money {
	return eur(ForkliftQty(minutes, quantity) * ForkliftBlockRate)
}

// Manlift prices a manlift usage by the number of selected units.
func Manlift(units []string) *money.Money {
	return eur(float64(len(units)) * ManliftUnitRate)
}

// Scaffold prices scaffolding by the total section count across all
// length categories.
func Scaffold(counts map[int]int) *money.Money {
	total := 0
	for _, n := range counts {
		total += n
	}
	return eur(float64(total) * ScaffoldUnitRate)
}

// Metered prices a consumption reading at the given per-unit rate.
func Metered(reading string, rate float64) *money.Money {
	return eur(ParseReading(reading) * rate)
}

// Electricity prices consumed electricity in kWh.
func Electricity(reading string) *money.Money {
	return Metered(reading, ElectricityRate)
}

// Water prices consumed water in cubic meters.
func Water(reading string) *money.Money {
	return Metered(reading, WaterRate)
}

func eur(amount float64) *money.Money {
	return money.New(int64(math.Round(amount*100)), money.EUR)
}
