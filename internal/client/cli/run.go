package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/MustafaTekin48/marine-field-app/internal/client/pricing"
	"github.com/MustafaTekin48/marine-field-app/internal/client/services"
	"github.com/MustafaTekin48/marine-field-app/internal/client/workflow"
)

// RunWorkflow loads the fleet list and walks the user through one usage
// submission: boat, date, service quantities, note, price review, save.
func (a *App) RunWorkflow(ctx context.Context, id workflow.ID) error {
	cfg, ok := workflow.Configs()[id]
	if !ok {
		return fmt.Errorf("unknown workflow: %s", id)
	}

	w := workflow.New(cfg, a.session, a.client, a.log, a.config.PageSize)
	if err := w.Initialize(ctx); err != nil {
		log.Printf("error loading boats: %s", err.Error())
		return err
	}

	fmt.Printf("-- %s --\n", cfg.Title)

	if err := a.chooseBoat(ctx, w); err != nil {
		return err
	}
	if err := a.enterDate(w); err != nil {
		return err
	}
	if err := a.enterQuantities(w); err != nil {
		return err
	}

	note, err := getSimpleText(a.reader, "Note (optional)", os.Stdout)
	if err != nil {
		return err
	}
	w.Form().SetNote(note)

	fmt.Printf("Price: %s\n", w.Quote().Display())

	confirm, err := getSimpleText(a.reader, "Save? (y/n)", os.Stdout)
	if err != nil {
		return err
	}
	if !strings.EqualFold(confirm, "y") {
		fmt.Println("Discarded.")
		return nil
	}

	if err := w.Submit(ctx); err != nil {
		log.Printf("error saving record: %s", err.Error())
		return err
	}
	fmt.Println("Saved.")
	return nil
}

// chooseBoat shows the filtered fleet list and selects a boat. The contract
// is resolved as part of the selection; a boat without a contracted
// agreement stays unselected and the user is asked again.
func (a *App) chooseBoat(ctx context.Context, w *workflow.Workflow) error {
	form := w.Form()
	for {
		visible := form.Visible()
		if len(visible) == 0 {
			fmt.Println("No boats match the filter.")
		}
		for i, b := range visible {
			fmt.Printf("%3d. %s\n", i+1, b.Name)
		}

		answer, err := getSimpleText(a.reader, "Boat number ('/text' filters the list)", os.Stdout)
		if err != nil {
			return err
		}
		if strings.HasPrefix(answer, "/") {
			form.SetSearch(strings.TrimSpace(strings.TrimPrefix(answer, "/")))
			continue
		}

		n, err := strconv.Atoi(answer)
		if err != nil || n < 1 || n > len(visible) {
			fmt.Println("Pick a number from the list.")
			continue
		}

		boat := visible[n-1]
		if err := w.SelectBoat(ctx, boat); err != nil {
			if errors.Is(err, services.ErrNoContract) {
				fmt.Printf("%s has no contracted agreement, pick another boat.\n", boat.Name)
				continue
			}
			return err
		}
		fmt.Printf("Selected %s\n", boat.Name)
		return nil
	}
}

func (a *App) enterDate(w *workflow.Workflow) error {
	for {
		answer, err := getSimpleText(a.reader, "Service date YYYY-MM-DD (empty for today)", os.Stdout)
		if err != nil {
			return err
		}
		if answer == "" {
			w.Form().SetDate(time.Now())
			return nil
		}
		d, err := time.Parse("2006-01-02", answer)
		if err != nil {
			fmt.Println("Bad date, expected YYYY-MM-DD.")
			continue
		}
		w.Form().SetDate(d)
		return nil
	}
}

func (a *App) enterQuantities(w *workflow.Workflow) error {
	switch w.Config().ID {
	case workflow.Forklift:
		return a.enterForklift(w)
	case workflow.Manlift:
		return a.enterManlift(w)
	case workflow.Scaffold:
		return a.enterScaffold(w)
	default:
		return a.enterReading(w)
	}
}

func (a *App) enterForklift(w *workflow.Workflow) error {
	for {
		answer, err := getSimpleText(a.reader, durationsPrompt(), os.Stdout)
		if err != nil {
			return err
		}
		minutes, err := strconv.Atoi(answer)
		if err != nil || !validDuration(minutes) {
			fmt.Println("Pick one of the listed durations.")
			continue
		}
		w.Form().SetMinutes(minutes)
		break
	}

	qty, err := getSimpleText(a.reader, "Number of forklifts", os.Stdout)
	if err != nil {
		return err
	}
	w.Form().SetQuantity(qty)
	return nil
}

func durationsPrompt() string {
	parts := make([]string, 0, len(pricing.ForkliftDurations))
	for _, d := range pricing.ForkliftDurations {
		parts = append(parts, strconv.Itoa(d))
	}
	return fmt.Sprintf("Duration in minutes (%s)", strings.Join(parts, ", "))
}

func validDuration(minutes int) bool {
	for _, d := range pricing.ForkliftDurations {
		if d == minutes {
			return true
		}
	}
	return false
}

func (a *App) enterManlift(w *workflow.Workflow) error {
	prompt := fmt.Sprintf("Units, comma separated (%s)", strings.Join(workflow.ManliftUnits, ", "))
	answer, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return err
	}
	for _, unit := range strings.Split(answer, ",") {
		w.Form().ToggleUnit(strings.ToUpper(strings.TrimSpace(unit)))
	}
	return nil
}

func (a *App) enterScaffold(w *workflow.Workflow) error {
	answer, err := getSimpleText(a.reader, "Sections as length=count pairs, e.g. 2=4, 5=1", os.Stdout)
	if err != nil {
		return err
	}
	for _, pair := range strings.Split(answer, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		length, count, ok := parsePair(pair)
		if !ok {
			fmt.Printf("Skipping %q, expected length=count.\n", pair)
			continue
		}
		for i := 0; i < count; i++ {
			w.Form().IncrementCount(length)
		}
	}
	return nil
}

func parsePair(pair string) (length, count int, ok bool) {
	left, right, found := strings.Cut(pair, "=")
	if !found {
		return 0, 0, false
	}
	length, err := strconv.Atoi(strings.TrimSpace(left))
	if err != nil {
		return 0, 0, false
	}
	count, err = strconv.Atoi(strings.TrimSpace(right))
	if err != nil || count < 0 {
		return 0, 0, false
	}
	return length, count, true
}

func (a *App) enterReading(w *workflow.Workflow) error {
	prompt := fmt.Sprintf("Meter reading (%s)", w.Config().Unit)
	answer, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return err
	}
	w.Form().SetReading(answer)
	return nil
}
