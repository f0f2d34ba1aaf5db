package workflow

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/google/uuid"

	"github.com/MustafaTekin48/marine-field-app/internal/client/pricing"
)

// Service identifiers assigned by the ERP. Deployment-specific; these are
// the test-environment values.
var (
	forkliftServiceID    = uuid.MustParse("f90c1239-af58-4ef5-9c81-08dc15bacf13")
	manliftServiceID     = uuid.MustParse("a6bedc3d-9139-47f9-920a-08dc2189810a")
	scaffoldServiceID    = uuid.MustParse("3c2a9f41-77d0-4b1e-b6cd-08dc2189810b")
	electricityServiceID = uuid.MustParse("8d4e1b72-5a3f-4c96-a1e4-08dc2189810c")
	waterServiceID       = uuid.MustParse("b51f0d83-2e68-4da7-9352-08dc2189810d")
)

var forkliftDurations = pricing.ForkliftDurations

// Configs returns the five service configurations, keyed by workflow ID.
// Every flow bills against a contract, so all of them require resolution
// before submission.
func Configs() map[ID]Config {
	return map[ID]Config{
		Forklift:    ForkliftConfig(),
		Manlift:     ManliftConfig(),
		Scaffold:    ScaffoldConfig(),
		Electricity: ElectricityConfig(),
		Water:       WaterConfig(),
	}
}

// ForkliftConfig bills forklift usage per 20-minute block per unit.
func ForkliftConfig() Config {
	return Config{
		ID:               Forklift,
		Title:            "Forklift usage",
		ServiceID:        forkliftServiceID.String(),
		Unit:             "hrs",
		BasePrice:        pricing.ForkliftBlockRate,
		RequiresContract: true,
		Quote:            func(f *FormState) *money.Money { return pricing.Forklift(f.Minutes(), f.Quantity()) },
		Qty:              func(f *FormState) float64 { return pricing.ForkliftQty(f.Minutes(), f.Quantity()) },
		Description:      func(f *FormState) string { return f.Note() },
		HasInput:         func(f *FormState) bool { return pricing.ParseQuantity(f.Quantity()) > 0 },
	}
}

// ManliftConfig bills one day rate per selected manlift unit.
func ManliftConfig() Config {
	return Config{
		ID:               Manlift,
		Title:            "Manlift usage",
		ServiceID:        manliftServiceID.String(),
		Unit:             "days",
		BasePrice:        pricing.ManliftUnitRate,
		RequiresContract: true,
		Quote:            func(f *FormState) *money.Money { return pricing.Manlift(f.Units()) },
		Qty:              func(f *FormState) float64 { return float64(len(f.Units())) },
		Description: func(f *FormState) string {
			return fmt.Sprintf("Note: %s | Units: %s", noteOrDash(f), strings.Join(f.Units(), ", "))
		},
		HasInput: func(f *FormState) bool { return len(f.Units()) > 0 },
	}
}

// ScaffoldConfig bills per scaffold section across the length categories.
func ScaffoldConfig() Config {
	return Config{
		ID:               Scaffold,
		Title:            "Scaffolding",
		ServiceID:        scaffoldServiceID.String(),
		Unit:             "pcs",
		BasePrice:        pricing.ScaffoldUnitRate,
		RequiresContract: true,
		Quote:            func(f *FormState) *money.Money { return pricing.Scaffold(f.Counts()) },
		Qty:              func(f *FormState) float64 { return float64(f.TotalCount()) },
		Description: func(f *FormState) string {
			return fmt.Sprintf("Note: %s | Sections: %s", noteOrDash(f), sectionSummary(f.Counts()))
		},
		HasInput: func(f *FormState) bool { return f.TotalCount() > 0 },
	}
}

// ElectricityConfig bills consumed kWh.
func ElectricityConfig() Config {
	return meteredConfig(Electricity, "Electricity", electricityServiceID, "kwh", pricing.ElectricityRate)
}

// WaterConfig bills consumed cubic meters.
func WaterConfig() Config {
	return meteredConfig(Water, "Water", waterServiceID, "m3", pricing.WaterRate)
}

func meteredConfig(id ID, title string, serviceID uuid.UUID, unit string, rate float64) Config {
	return Config{
		ID:               id,
		Title:            title,
		ServiceID:        serviceID.String(),
		Unit:             unit,
		BasePrice:        rate,
		RequiresContract: true,
		Quote:            func(f *FormState) *money.Money { return pricing.Metered(f.Reading(), rate) },
		Qty:              func(f *FormState) float64 { return pricing.ParseReading(f.Reading()) },
		Description:      func(f *FormState) string { return f.Note() },
		HasInput:         func(f *FormState) bool { return pricing.ParseReading(f.Reading()) > 0 },
	}
}

func noteOrDash(f *FormState) string {
	if f.Note() == "" {
		return "-"
	}
	return f.Note()
}

func sectionSummary(counts map[int]int) string {
	lengths := make([]int, 0, len(counts))
	for l, n := range counts {
		if n > 0 {
			lengths = append(lengths, l)
		}
	}
	sort.Ints(lengths)

	parts := make([]string, 0, len(lengths))
	for _, l := range lengths {
		parts = append(parts, fmt.Sprintf("%dm x%d", l, counts[l]))
	}
	return strings.Join(parts, ", ")
}
