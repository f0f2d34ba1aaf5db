package cli

import (
	"bufio"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MustafaTekin48/marine-field-app/internal/client/config"
	"github.com/MustafaTekin48/marine-field-app/internal/client/models"
	"github.com/MustafaTekin48/marine-field-app/internal/client/workflow"
	"github.com/MustafaTekin48/marine-field-app/internal/logging"
)

// fakeClient implements api.Client for runner tests.
type fakeClient struct {
	boats     []models.Boat
	contracts map[string][]models.Contract

	records []*models.ServiceRecord
}

func (f *fakeClient) Login(ctx context.Context, usernameOrEmail, password string) (string, error) {
	return "token", nil
}

func (f *fakeClient) SetToken(token string) {}

func (f *fakeClient) FetchBoatPage(ctx context.Context, skip, top int) ([]models.Boat, error) {
	if skip >= len(f.boats) {
		return nil, nil
	}
	end := skip + top
	if end > len(f.boats) {
		end = len(f.boats)
	}
	return f.boats[skip:end], nil
}

func (f *fakeClient) FetchContracts(ctx context.Context, boatID string) ([]models.Contract, error) {
	return f.contracts[boatID], nil
}

func (f *fakeClient) CreateServiceRecord(ctx context.Context, rec *models.ServiceRecord) error {
	f.records = append(f.records, rec)
	return nil
}

func newTestApp(script string, client *fakeClient) *App {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	return &App{
		config:  cfg,
		client:  client,
		session: &models.Session{Username: "field", Token: "tok", Roles: []string{"ekipman", "enerji"}},
		log:     logging.NewSlogLogger(slog.Default()),
		reader:  bufio.NewReader(strings.NewReader(script)),
	}
}

func twoBoatFleet() *fakeClient {
	return &fakeClient{
		boats: []models.Boat{
			{ID: "b1", Name: "Albatros"},
			{ID: "b2", Name: "Pelican"},
		},
		contracts: map[string][]models.Contract{
			"b1": {{ID: "c1", BoatID: "b1", Status: "Contracted"}},
			"b2": {{ID: "c2", BoatID: "b2", Status: "Cancelled"}},
		},
	}
}

func TestRunWorkflow_ForkliftSubmission(t *testing.T) {
	client := twoBoatFleet()
	script := strings.Join([]string{
		"1",          // Albatros
		"2026-09-01", // service date
		"40",         // duration
		"2",          // forklifts
		"night shift",
		"y",
	}, "\n") + "\n"

	app := newTestApp(script, client)
	err := app.RunWorkflow(context.Background(), workflow.Forklift)
	require.NoError(t, err)

	require.Len(t, client.records, 1)
	rec := client.records[0]
	assert.Equal(t, "b1", rec.BoatId)
	assert.Equal(t, "c1", rec.ContractId)
	assert.Equal(t, float64(4), rec.Qty) // two blocks of 20 min, two machines
	assert.Equal(t, "hrs", rec.Unit)
	assert.Equal(t, 120.0, rec.Price)
	assert.Equal(t, "night shift", rec.Description)
	assert.True(t, strings.HasPrefix(rec.ServiceDate, "2026-09-01"))
}

func TestRunWorkflow_FilterThenPick(t *testing.T) {
	client := twoBoatFleet()
	client.contracts["b2"] = []models.Contract{{ID: "c2", BoatID: "b2", Status: "contracted"}}
	script := strings.Join([]string{
		"/peli", // narrows the list to Pelican
		"1",
		"",   // today
		"T3, T7",
		"",   // no note
		"y",
	}, "\n") + "\n"

	app := newTestApp(script, client)
	err := app.RunWorkflow(context.Background(), workflow.Manlift)
	require.NoError(t, err)

	require.Len(t, client.records, 1)
	rec := client.records[0]
	assert.Equal(t, "b2", rec.BoatId)
	assert.Equal(t, float64(2), rec.Qty)
	assert.Equal(t, 120.0, rec.Price)
	assert.Contains(t, rec.Description, "T3, T7")
}

func TestRunWorkflow_NoContractAsksAgain(t *testing.T) {
	client := twoBoatFleet()
	// Pelican has no contracted agreement, the runner asks again.
	script := strings.Join([]string{
		"2", // Pelican, rejected
		"1", // Albatros
		"2026-09-01",
		"8.5", // kWh
		"",
		"y",
	}, "\n") + "\n"

	app := newTestApp(script, client)
	err := app.RunWorkflow(context.Background(), workflow.Electricity)
	require.NoError(t, err)

	require.Len(t, client.records, 1)
	rec := client.records[0]
	assert.Equal(t, "b1", rec.BoatId)
	assert.Equal(t, 8.5, rec.Qty)
	assert.Equal(t, 4.25, rec.Price)
}

func TestRunWorkflow_DeclineDoesNotPost(t *testing.T) {
	client := twoBoatFleet()
	script := strings.Join([]string{
		"1",
		"2026-09-01",
		"2=3, 5=1",
		"",
		"n",
	}, "\n") + "\n"

	app := newTestApp(script, client)
	err := app.RunWorkflow(context.Background(), workflow.Scaffold)
	require.NoError(t, err)
	assert.Empty(t, client.records)
}
