package api

import (
	"context"

	"github.com/MustafaTekin48/marine-field-app/internal/client/models"
)

// Client is the surface of the marine ERP consumed by the services layer.
//
// Contract:
//   - Login authenticates and returns the access token; the client attaches
//     it to every subsequent request.
//   - FetchBoatPage returns one page of the boat list, ordered by boat number
//     descending on the server side.
//   - FetchContracts returns all contracts of a boat, in server order.
//   - CreateServiceRecord posts one usage event for billing.
//
// All methods must honor context cancellation/timeouts.
type Client interface {
	Login(ctx context.Context, usernameOrEmail, password string) (string, error)
	SetToken(token string)
	FetchBoatPage(ctx context.Context, skip, top int) ([]models.Boat, error)
	FetchContracts(ctx context.Context, boatID string) ([]models.Contract, error)
	CreateServiceRecord(ctx context.Context, rec *models.ServiceRecord) error
}
