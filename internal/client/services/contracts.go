package services

import (
	"context"
	"sync"

	"github.com/MustafaTekin48/marine-field-app/internal/client/api"
	"github.com/MustafaTekin48/marine-field-app/internal/client/models"
	"github.com/MustafaTekin48/marine-field-app/internal/logging"
)

// ContractResolver resolves the eligible contract for the currently selected
// boat. Resolutions are tagged with the boat ID they were started for:
// a response arriving after the user has selected a different boat is
// discarded instead of overwriting the newer selection.
type ContractResolver struct {
	client api.Client
	log    logging.Logger

	mu       sync.Mutex
	selected string
	contract *models.Contract
}

// NewContractResolver constructs a resolver bound to the API client.
func NewContractResolver(client api.Client, log logging.Logger) *ContractResolver {
	return &ContractResolver{client: client, log: log}
}

// Select marks boatID as the current selection and clears any previously
// resolved contract. A new selection always replaces, never merges.
func (r *ContractResolver) Select(boatID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.selected = boatID
	r.contract = nil
}

// Resolve fetches the boat's contracts and picks the first one in server
// order whose status is eligible. If the selection has moved on while the
// request was in flight, the result is dropped and ErrStaleSelection is
// returned; the state belonging to the newer selection stays untouched.
func (r *ContractResolver) Resolve(ctx context.Context, boatID string) (*models.Contract, error) {
	contracts, err := r.client.FetchContracts(ctx, boatID)

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.selected != boatID {
		r.log.Warn(ctx, "discarding stale contract resolution", "boat_id", boatID, "selected", r.selected)
		return nil, ErrStaleSelection
	}

	if err != nil {
		r.contract = nil
		return nil, err
	}

	for i := range contracts {
		if contracts[i].Eligible() {
			c := contracts[i]
			r.contract = &c
			return &c, nil
		}
	}

	r.contract = nil
	return nil, ErrNoContract
}

// Current returns the contract resolved for the current selection, or nil.
func (r *ContractResolver) Current() *models.Contract {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.contract
}
