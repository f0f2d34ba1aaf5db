package workflow

import (
	"time"

	"github.com/MustafaTekin48/marine-field-app/internal/client/models"
	"github.com/MustafaTekin48/marine-field-app/internal/client/services"
)

// ManliftUnits are the selectable manlift identifiers.
var ManliftUnits = []string{"T1", "T2", "T3", "T4", "T5", "T6", "T7", "T8", "T9", "T10", "T11"}

// ScaffoldLengths are the scaffold section categories, in meters.
var ScaffoldLengths = []int{2, 3, 4, 5, 6, 7, 8, 9, 10}

const defaultQuantity = "1"
const defaultMinutes = 20

// FormState is the transient draft of one usage submission. It is mutated
// only through the named transitions below and reset as a whole on
// successful submission. Fields not used by a given service stay at their
// defaults.
type FormState struct {
	boats    []models.Boat
	search   string
	boat     *models.Boat
	contract *models.Contract

	date     time.Time
	quantity string
	minutes  int
	units    map[string]bool
	counts   map[int]int
	reading  string
	note     string
}

// NewFormState builds an empty draft over the fetched boat list.
func NewFormState(boats []models.Boat) *FormState {
	f := &FormState{boats: boats}
	f.reset()
	return f
}

func (f *FormState) reset() {
	f.search = ""
	f.boat = nil
	f.contract = nil
	f.date = time.Time{}
	f.quantity = defaultQuantity
	f.minutes = defaultMinutes
	f.units = make(map[string]bool)
	f.counts = make(map[int]int)
	f.reading = ""
	f.note = ""
}

// Reset returns every draft field to its initial default, re-showing the
// full unfiltered boat list. The fetched boat list itself is kept.
func (f *FormState) Reset() { f.reset() }

// Boats returns the full fetched boat list.
func (f *FormState) Boats() []models.Boat { return f.boats }

// SetSearch updates the filter query.
func (f *FormState) SetSearch(query string) { f.search = query }

// Search returns the current filter query.
func (f *FormState) Search() string { return f.search }

// Visible returns the boats matching the current search text, a stable
// subsequence of the fetched list.
func (f *FormState) Visible() []models.Boat {
	return services.FilterBoats(f.boats, f.search)
}

// SelectBoat records the boat selection and drops any contract resolved
// for a previous selection.
func (f *FormState) SelectBoat(b models.Boat) {
	f.boat = &b
	f.contract = nil
}

// Boat returns the selected boat, or nil.
func (f *FormState) Boat() *models.Boat { return f.boat }

// SetContract installs the contract resolved for the selected boat.
func (f *FormState) SetContract(c *models.Contract) { f.contract = c }

// Contract returns the resolved contract, or nil.
func (f *FormState) Contract() *models.Contract { return f.contract }

// SetDate records the service date.
func (f *FormState) SetDate(d time.Time) { f.date = d }

// Date returns the service date; zero means unset.
func (f *FormState) Date() time.Time { return f.date }

// SetQuantity records the free-form quantity text (forklift).
func (f *FormState) SetQuantity(q string) { f.quantity = q }

// Quantity returns the quantity text.
func (f *FormState) Quantity() string { return f.quantity }

// SetMinutes selects the forklift usage duration. Values outside the fixed
// duration set are ignored.
func (f *FormState) SetMinutes(minutes int) {
	for _, m := range forkliftDurations {
		if m == minutes {
			f.minutes = minutes
			return
		}
	}
}

// Minutes returns the selected forklift duration.
func (f *FormState) Minutes() int { return f.minutes }

// ToggleUnit flips the selection of a manlift unit. Unknown units are
// ignored; toggling twice restores the original selection.
func (f *FormState) ToggleUnit(unit string) {
	if !validUnit(unit) {
		return
	}
	if f.units[unit] {
		delete(f.units, unit)
	} else {
		f.units[unit] = true
	}
}

func validUnit(unit string) bool {
	for _, u := range ManliftUnits {
		if u == unit {
			return true
		}
	}
	return false
}

// Units returns the selected manlift units in the fixed display order.
func (f *FormState) Units() []string {
	selected := make([]string, 0, len(f.units))
	for _, u := range ManliftUnits {
		if f.units[u] {
			selected = append(selected, u)
		}
	}
	return selected
}

// IncrementCount adds one scaffold section of the given length category.
func (f *FormState) IncrementCount(length int) {
	if !validLength(length) {
		return
	}
	f.counts[length]++
}

// DecrementCount removes one scaffold section, flooring at zero.
func (f *FormState) DecrementCount(length int) {
	if f.counts[length] > 0 {
		f.counts[length]--
	}
}

func validLength(length int) bool {
	for _, l := range ScaffoldLengths {
		if l == length {
			return true
		}
	}
	return false
}

// Counts returns the scaffold section counts per length category.
func (f *FormState) Counts() map[int]int { return f.counts }

// TotalCount sums scaffold sections across all categories.
func (f *FormState) TotalCount() int {
	total := 0
	for _, n := range f.counts {
		total += n
	}
	return total
}

// SetReading records the free-form meter reading text (electricity, water).
func (f *FormState) SetReading(r string) { f.reading = r }

// Reading returns the meter reading text.
func (f *FormState) Reading() string { return f.reading }

// SetNote records the free-form description.
func (f *FormState) SetNote(n string) { f.note = n }

// Note returns the description text.
func (f *FormState) Note() string { return f.note }
