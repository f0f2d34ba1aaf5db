// Package workflow implements the shared boat-selection-and-submission
// sequence every service screen of the original client duplicated: fetch the
// boat list, filter, select, resolve the contract, price the draft and post
// the service record. One parametrized workflow replaces five copies; each
// service contributes only a Config value.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Rhymond/go-money"

	"github.com/MustafaTekin48/marine-field-app/internal/client/api"
	"github.com/MustafaTekin48/marine-field-app/internal/client/models"
	"github.com/MustafaTekin48/marine-field-app/internal/client/services"
	"github.com/MustafaTekin48/marine-field-app/internal/common"
	"github.com/MustafaTekin48/marine-field-app/internal/logging"
)

// ErrValidation blocks a submission with missing required fields before any
// network call is made.
var ErrValidation = errors.New("required fields missing")

// ID names one of the five usage workflows.
type ID string

const (
	Forklift    ID = "forklift"
	Manlift     ID = "manlift"
	Scaffold    ID = "scaffold"
	Electricity ID = "electricity"
	Water       ID = "water"
)

// Config parametrizes the generic workflow for one service type.
type Config struct {
	ID        ID
	Title     string
	ServiceID string
	Unit      string
	BasePrice float64

	// RequiresContract gates submission on a resolved contract.
	RequiresContract bool

	// Quote prices the current draft. Pure; recomputed on demand.
	Quote func(f *FormState) *money.Money

	// Qty derives the billable quantity submitted to the ERP.
	Qty func(f *FormState) float64

	// Description renders the record description from the draft.
	Description func(f *FormState) string

	// HasInput reports whether the draft carries at least one non-zero
	// quantity or selection for this service.
	HasInput func(f *FormState) bool
}

// Workflow drives one usage submission from boat list to posted record.
type Workflow struct {
	cfg      Config
	session  *models.Session
	client   api.Client
	boats    *services.BoatService
	resolver *services.ContractResolver
	log      logging.Logger
	form     *FormState
	now      func() time.Time
}

// New wires a workflow for the given service configuration. The session must
// already be authenticated; the workflow never mutates it.
func New(cfg Config, session *models.Session, client api.Client, log logging.Logger, pageSize int) *Workflow {
	return &Workflow{
		cfg:      cfg,
		session:  session,
		client:   client,
		boats:    services.NewBoatService(client, log, pageSize),
		resolver: services.NewContractResolver(client, log),
		log:      log.With("workflow", string(cfg.ID)),
		now:      time.Now,
	}
}

// Initialize fetches the boat list once and prepares an empty draft.
// Called exactly once per workflow instantiation; there is no hidden
// re-triggering.
func (w *Workflow) Initialize(ctx context.Context) error {
	boats, err := w.boats.FetchAll(ctx)
	if err != nil {
		w.form = NewFormState(nil)
		return err
	}
	w.form = NewFormState(boats)
	return nil
}

// Form exposes the current draft for transitions and rendering.
func (w *Workflow) Form() *FormState { return w.form }

// Config returns the service configuration the workflow runs under.
func (w *Workflow) Config() Config { return w.cfg }

// SelectBoat records the selection and, when the service bills against a
// contract, resolves the boat's eligible contract. A resolution finishing
// after a newer selection is discarded inside the resolver and reported as
// services.ErrStaleSelection.
func (w *Workflow) SelectBoat(ctx context.Context, b models.Boat) error {
	w.form.SelectBoat(b)
	if !w.cfg.RequiresContract {
		return nil
	}

	w.resolver.Select(b.ID)
	contract, err := w.resolver.Resolve(ctx, b.ID)
	if err != nil {
		if errors.Is(err, services.ErrStaleSelection) {
			return err
		}
		w.form.SetContract(nil)
		return err
	}
	w.form.SetContract(contract)
	return nil
}

// Quote prices the current draft.
func (w *Workflow) Quote() *money.Money {
	return w.cfg.Quote(w.form)
}

// Submit validates the draft, posts the service record and resets the draft
// on success. On any failure the draft is preserved for correction; no retry
// is attempted.
func (w *Workflow) Submit(ctx context.Context) error {
	if err := w.validate(); err != nil {
		return err
	}

	rec := w.buildRecord()
	if err := w.client.CreateServiceRecord(ctx, rec); err != nil {
		w.log.Error(ctx, "submission failed", "error", err)
		return err
	}

	w.log.Info(ctx, "service record created", "contract_id", rec.ContractId, "price", rec.Price, "user", w.session.Username)
	w.form.Reset()
	return nil
}

func (w *Workflow) validate() error {
	if w.session == nil || w.session.Token == "" {
		return fmt.Errorf("%w: not logged in", ErrValidation)
	}
	if w.form.Boat() == nil {
		return fmt.Errorf("%w: no boat selected", ErrValidation)
	}
	if w.cfg.RequiresContract && w.form.Contract() == nil {
		return fmt.Errorf("%w: no contract resolved", ErrValidation)
	}
	if w.form.Date().IsZero() {
		return fmt.Errorf("%w: no service date", ErrValidation)
	}
	if !w.cfg.HasInput(w.form) {
		return fmt.Errorf("%w: no quantity or selection", ErrValidation)
	}
	return nil
}

func (w *Workflow) buildRecord() *models.ServiceRecord {
	now := w.now().UTC().Format(time.RFC3339)

	rec := &models.ServiceRecord{
		ServiceId:    w.cfg.ServiceID,
		ServiceDate:  w.form.Date().UTC().Format(time.RFC3339),
		Qty:          w.cfg.Qty(w.form),
		Unit:         w.cfg.Unit,
		Price:        w.Quote().AsMajorUnits(),
		BasePrice:    w.cfg.BasePrice,
		Currency:     money.EUR,
		Status:       "Completed",
		BoatId:       w.form.Boat().ID,
		InsertedBy:   common.ActorTag,
		InsertedDate: now,
		UpdatedBy:    common.ActorTag,
		UpdatedDate:  now,
		IsCompleted:  true,
		Description:  w.cfg.Description(w.form),
	}
	if c := w.form.Contract(); c != nil {
		rec.ContractId = c.ID
	}
	return rec
}
