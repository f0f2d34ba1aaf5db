package services

import (
	"context"
	"sync"

	"github.com/MustafaTekin48/marine-field-app/internal/client/models"
)

// fakeClient implements api.Client for service unit tests.
type fakeClient struct {
	mu sync.Mutex

	LoginRet string
	LoginErr error

	// pages[i] is returned for the i-th FetchBoatPage call.
	Pages    [][]models.Boat
	PagesErr error

	// ContractsByBoat maps boat ID to the contract rows returned for it.
	ContractsByBoat map[string][]models.Contract
	ContractsErr    error

	// Gate, when non-nil, is received from before FetchContracts returns,
	// letting tests order concurrent resolutions.
	Gate chan struct{}

	CreateErr error

	LastLoginUser string
	LastLoginPass string
	LastToken     string
	PageCalls     []int
	ContractCalls []string
	CreatedRecs   []*models.ServiceRecord
}

func (f *fakeClient) Login(ctx context.Context, usernameOrEmail, password string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastLoginUser = usernameOrEmail
	f.LastLoginPass = password
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) SetToken(token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastToken = token
}

func (f *fakeClient) FetchBoatPage(ctx context.Context, skip, top int) ([]models.Boat, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.PageCalls = append(f.PageCalls, skip)
	if f.PagesErr != nil {
		return nil, f.PagesErr
	}
	idx := len(f.PageCalls) - 1
	if idx >= len(f.Pages) {
		return nil, nil
	}
	return f.Pages[idx], nil
}

func (f *fakeClient) FetchContracts(ctx context.Context, boatID string) ([]models.Contract, error) {
	if f.Gate != nil {
		<-f.Gate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ContractCalls = append(f.ContractCalls, boatID)
	if f.ContractsErr != nil {
		return nil, f.ContractsErr
	}
	return f.ContractsByBoat[boatID], nil
}

func (f *fakeClient) CreateServiceRecord(ctx context.Context, rec *models.ServiceRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.CreatedRecs = append(f.CreatedRecs, rec)
	return f.CreateErr
}
