package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/MustafaTekin48/marine-field-app/internal/client/models"
	"github.com/MustafaTekin48/marine-field-app/internal/common"
)

// unknownBoatName is the display-name placeholder when every name field of a
// boat row is empty. Guarantees Boat.Name is never empty.
const unknownBoatName = "unknown boat"

// HTTPClient talks to the marine ERP over its REST/OData surface.
type HTTPClient struct {
	baseURL     string
	httpClient  *http.Client
	accessToken string
}

// NewHTTPClient builds a client for the ERP at baseURL (scheme and host,
// no trailing slash required).
func NewHTTPClient(baseURL string, httpClient *http.Client) *HTTPClient {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &HTTPClient{baseURL: trimSlash(baseURL), httpClient: httpClient}
}

func trimSlash(s string) string {
	for len(s) > 0 && s[len(s)-1] == '/' {
		s = s[:len(s)-1]
	}
	return s
}

// SetToken installs a previously obtained bearer token, e.g. one restored
// from the credential store.
func (c *HTTPClient) SetToken(token string) {
	c.accessToken = token
}

type authRequest struct {
	UsernameOrEmail string `json:"usernameOrEmail"`
	Password        string `json:"password"`
}

type authResponse struct {
	AccessToken string `json:"AccessToken"`
}

// Login posts credentials to /api/identity/Auth. Success is defined by the
// presence of AccessToken in the response; any other shape is ErrAuthFailed.
func (c *HTTPClient) Login(ctx context.Context, usernameOrEmail, password string) (string, error) {
	body, err := json.Marshal(authRequest{UsernameOrEmail: usernameOrEmail, Password: password})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/identity/Auth", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var ar authResponse
	if err := json.Unmarshal(raw, &ar); err != nil || ar.AccessToken == "" {
		return "", ErrAuthFailed
	}

	c.accessToken = ar.AccessToken
	return ar.AccessToken, nil
}

func (c *HTTPClient) newAuthedRequest(ctx context.Context, method, rawURL string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set(common.AuthHeaderName, "Bearer "+c.accessToken)
	return req, nil
}

type boatRow struct {
	Id       any    `json:"Id"`
	BoatName string `json:"BoatName"`
	Name     string `json:"Name"`
	BoatNo   any    `json:"BoatNo"`
}

type boatListResponse struct {
	Value []boatRow `json:"value"`
}

// fieldString renders an OData field that may arrive as a string or a number.
func fieldString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return ""
	}
}

func (r *boatRow) displayName() string {
	if r.BoatName != "" {
		return r.BoatName
	}
	if r.Name != "" {
		return r.Name
	}
	if no := fieldString(r.BoatNo); no != "" {
		return no
	}
	return unknownBoatName
}

// FetchBoatPage requests one page of boats, skip/top-paginated, ordered by
// boat number descending. A response without a value array is an empty page.
func (c *HTTPClient) FetchBoatPage(ctx context.Context, skip, top int) ([]models.Boat, error) {
	q := url.Values{}
	q.Set("$count", "true")
	q.Set("$skip", strconv.Itoa(skip))
	q.Set("$top", strconv.Itoa(top))
	q.Set("$orderby", "BoatNo desc")

	req, err := c.newAuthedRequest(ctx, http.MethodGet, c.baseURL+"/odata/contract/Boat?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: boat list returned status %d", ErrUnavailable, resp.StatusCode)
	}

	var blr boatListResponse
	if err := json.NewDecoder(resp.Body).Decode(&blr); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	boats := make([]models.Boat, 0, len(blr.Value))
	for _, row := range blr.Value {
		boats = append(boats, models.Boat{ID: fieldString(row.Id), Name: row.displayName()})
	}
	return boats, nil
}

type contractRow struct {
	Id     any    `json:"Id"`
	BoatId any    `json:"BoatId"`
	Status string `json:"Status"`
}

type contractListResponse struct {
	Value []contractRow `json:"value"`
}

// FetchContracts returns every contract of the boat, in server order.
// Eligibility filtering is the resolver's job, not the transport's.
func (c *HTTPClient) FetchContracts(ctx context.Context, boatID string) ([]models.Contract, error) {
	q := url.Values{}
	q.Set("$filter", "BoatId eq "+boatID)

	req, err := c.newAuthedRequest(ctx, http.MethodGet, c.baseURL+"/odata/contract/Contract?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: contract lookup returned status %d", ErrUnavailable, resp.StatusCode)
	}

	var clr contractListResponse
	if err := json.NewDecoder(resp.Body).Decode(&clr); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	contracts := make([]models.Contract, 0, len(clr.Value))
	for _, row := range clr.Value {
		contracts = append(contracts, models.Contract{
			ID:     fieldString(row.Id),
			BoatID: fieldString(row.BoatId),
			Status: row.Status,
		})
	}
	return contracts, nil
}

type resultEnvelope struct {
	Code    int    `json:"Code"`
	Message string `json:"Message"`
}

// CreateServiceRecord posts one usage event. Success requires a 2xx status
// and a body that is either empty or carries a Code below the rejection
// threshold. A server Message, when present, is wrapped into the error.
func (c *HTTPClient) CreateServiceRecord(ctx context.Context, rec *models.ServiceRecord) error {
	body, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	req, err := c.newAuthedRequest(ctx, http.MethodPost, c.baseURL+"/api/contract/ContractService", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var env resultEnvelope
	if len(raw) > 0 {
		// Some deployments answer with an empty or non-JSON body on success.
		_ = json.Unmarshal(raw, &env)
	}

	ok := resp.StatusCode >= 200 && resp.StatusCode <= 299
	if ok && env.Code < RejectionCodeThreshold {
		return nil
	}
	if env.Message != "" {
		return fmt.Errorf("%w: %s", ErrRemoteRejected, env.Message)
	}
	return fmt.Errorf("%w: status %d", ErrRemoteRejected, resp.StatusCode)
}
