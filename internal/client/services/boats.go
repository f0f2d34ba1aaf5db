package services

import (
	"context"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/MustafaTekin48/marine-field-app/internal/client/api"
	"github.com/MustafaTekin48/marine-field-app/internal/client/models"
	"github.com/MustafaTekin48/marine-field-app/internal/logging"
)

// DefaultPageSize matches the page size the ERP list endpoints are tuned for.
const DefaultPageSize = 100

// BoatService fetches the authoritative boat list.
type BoatService struct {
	client   api.Client
	log      logging.Logger
	pageSize int
}

// NewBoatService constructs a BoatService. pageSize <= 0 selects the default.
func NewBoatService(client api.Client, log logging.Logger, pageSize int) *BoatService {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &BoatService{client: client, log: log, pageSize: pageSize}
}

// FetchAll pages through the boat resource until a short page signals
// end-of-data, then sorts by display name ascending. When the total count is
// an exact multiple of the page size, the last full page is followed by one
// confirming request that returns an empty page, so no results are truncated.
func (s *BoatService) FetchAll(ctx context.Context) ([]models.Boat, error) {
	var all []models.Boat

	for skip := 0; ; skip += s.pageSize {
		page, err := s.client.FetchBoatPage(ctx, skip, s.pageSize)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < s.pageSize {
			break
		}
	}

	// Boat names are Turkish; a collator keeps dotted/dotless I and the
	// other Turkish letters in their expected positions.
	coll := collate.New(language.Turkish, collate.IgnoreCase)
	sort.SliceStable(all, func(i, j int) bool {
		return coll.CompareString(all[i].Name, all[j].Name) < 0
	})

	s.log.Info(ctx, "boat list fetched", "count", len(all))
	return all, nil
}

// FilterBoats keeps boats whose display name contains the query,
// case-insensitively, preserving source order. Pure and idempotent.
func FilterBoats(boats []models.Boat, query string) []models.Boat {
	if query == "" {
		return boats
	}
	q := strings.ToLower(query)
	filtered := make([]models.Boat, 0, len(boats))
	for _, b := range boats {
		if strings.Contains(strings.ToLower(b.Name), q) {
			filtered = append(filtered, b)
		}
	}
	return filtered
}
