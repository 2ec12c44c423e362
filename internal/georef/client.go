package georef

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Client fetches the geographic reference lists from the upstream geo API.
type Client interface {
	Districts(ctx context.Context) ([]string, error)
	Municipalities(ctx context.Context, district string) ([]string, error)
}

// httpClient talks to a geoapi.pt style JSON API. The upstream may be slow
// while warming its own cache, so the request timeout is generous.
type httpClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient creates a Client for the given base URL, e.g.
// "https://json.geoapi.pt".
func NewHTTPClient(baseURL string, timeout time.Duration) Client {
	return &httpClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *httpClient) Districts(ctx context.Context) ([]string, error) {
	var districts []struct {
		Name string `json:"distrito"`
	}
	if err := c.getJSON(ctx, c.baseURL+"/distritos", &districts); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(districts))
	for _, d := range districts {
		if d.Name != "" {
			names = append(names, d.Name)
		}
	}
	return names, nil
}

func (c *httpClient) Municipalities(ctx context.Context, district string) ([]string, error) {
	var payload struct {
		District       string   `json:"distrito"`
		Municipalities []string `json:"municipios"`
	}
	endpoint := fmt.Sprintf("%s/distritos/%s/municipios", c.baseURL, url.PathEscape(district))
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, err
	}
	return payload.Municipalities, nil
}

func (c *httpClient) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("geo API returned status code %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode geo API response: %w", err)
	}
	return nil
}
