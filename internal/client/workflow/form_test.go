package workflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MustafaTekin48/marine-field-app/internal/client/models"
)

func testBoats() []models.Boat {
	return []models.Boat{
		{ID: "1", Name: "Aurora"},
		{ID: "2", Name: "Black Pearl"},
		{ID: "3", Name: "Calypso"},
	}
}

func TestToggleUnit_Idempotent(t *testing.T) {
	f := NewFormState(nil)

	f.ToggleUnit("T3")
	f.ToggleUnit("T7")
	assert.Equal(t, []string{"T3", "T7"}, f.Units())

	f.ToggleUnit("T3")
	f.ToggleUnit("T3")
	assert.Equal(t, []string{"T3", "T7"}, f.Units(), "double toggle restores the selection")

	f.ToggleUnit("T99")
	assert.Equal(t, []string{"T3", "T7"}, f.Units(), "unknown units are ignored")
}

func TestUnits_FixedDisplayOrder(t *testing.T) {
	f := NewFormState(nil)
	f.ToggleUnit("T10")
	f.ToggleUnit("T2")
	f.ToggleUnit("T1")
	assert.Equal(t, []string{"T1", "T2", "T10"}, f.Units())
}

func TestScaffoldCounts_FloorAtZero(t *testing.T) {
	f := NewFormState(nil)

	f.DecrementCount(5)
	assert.Equal(t, 0, f.Counts()[5])

	f.IncrementCount(5)
	f.IncrementCount(5)
	f.DecrementCount(5)
	f.DecrementCount(5)
	f.DecrementCount(5)
	assert.Equal(t, 0, f.Counts()[5])
	assert.Equal(t, 0, f.TotalCount())
}

func TestIncrementCount_UnknownLengthIgnored(t *testing.T) {
	f := NewFormState(nil)
	f.IncrementCount(11)
	assert.Equal(t, 0, f.TotalCount())
}

func TestSetMinutes_OnlyFixedDurations(t *testing.T) {
	f := NewFormState(nil)
	assert.Equal(t, 20, f.Minutes())

	f.SetMinutes(40)
	assert.Equal(t, 40, f.Minutes())

	f.SetMinutes(30)
	assert.Equal(t, 40, f.Minutes(), "off-grid durations are ignored")
}

func TestVisible_SubsequenceOfFetchedList(t *testing.T) {
	f := NewFormState(testBoats())

	f.SetSearch("a")
	visible := f.Visible()
	require.NotEmpty(t, visible)
	for _, b := range visible {
		assert.Contains(t, f.Boats(), b)
	}

	f.SetSearch("pearl")
	visible = f.Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, "Black Pearl", visible[0].Name)
}

func TestSelectBoat_ReplacesContract(t *testing.T) {
	f := NewFormState(testBoats())

	f.SelectBoat(testBoats()[0])
	f.SetContract(&models.Contract{ID: "c1", BoatID: "1", Status: "contracted"})
	require.NotNil(t, f.Contract())

	f.SelectBoat(testBoats()[1])
	assert.Nil(t, f.Contract(), "contract is replaced, not merged, on reselection")
}

func TestReset_RestoresDefaultsKeepsBoatList(t *testing.T) {
	f := NewFormState(testBoats())

	f.SetSearch("aur")
	f.SelectBoat(testBoats()[0])
	f.SetContract(&models.Contract{ID: "c1"})
	f.SetDate(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	f.SetQuantity("7")
	f.SetMinutes(100)
	f.ToggleUnit("T5")
	f.IncrementCount(4)
	f.SetReading("12.5")
	f.SetNote("note")

	f.Reset()

	assert.Empty(t, f.Search())
	assert.Nil(t, f.Boat())
	assert.Nil(t, f.Contract())
	assert.True(t, f.Date().IsZero())
	assert.Equal(t, "1", f.Quantity())
	assert.Equal(t, 20, f.Minutes())
	assert.Empty(t, f.Units())
	assert.Equal(t, 0, f.TotalCount())
	assert.Empty(t, f.Reading())
	assert.Empty(t, f.Note())
	assert.Equal(t, testBoats(), f.Boats(), "fetched list survives the reset")
	assert.Equal(t, testBoats(), f.Visible(), "full unfiltered list is shown again")
}
