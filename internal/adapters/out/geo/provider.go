// Package geo provides reverse-geocoding provider adapters and the registry
// that builds the configured fallback chain.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

// defaultTimeout bounds a provider call when no timeout is configured.
const defaultTimeout = 3 * time.Second

// HTTPProvider resolves coordinates through an external reverse-geocoding
// HTTP endpoint. The endpoint receives the coordinates as query parameters
// and answers with a JSON body carrying jibun and road addresses.
type HTTPProvider struct {
	name    string
	baseURL string
	client  *http.Client
}

// refineResponse is the JSON body every configured endpoint answers with.
type refineResponse struct {
	JibunAddress string `json:"jibunAddress"`
	RoadAddress  string `json:"roadAddress"`
}

// NewHTTPProvider creates a provider calling the given base URL. The timeout
// applies per call; the chain moves to the next provider when it expires.
func NewHTTPProvider(name, baseURL string, timeout time.Duration) (*HTTPProvider, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("provider name")
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("provider base URL", err)
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &HTTPProvider{
		name:    name,
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}, nil
}

// Name identifies the provider in configuration, logs and errors.
func (p *HTTPProvider) Name() string {
	return p.name
}

// Refine resolves the coordinates into an address.
func (p *HTTPProvider) Refine(ctx context.Context, coords kernel.LatLng) (kernel.Address, error) {
	requestURL := fmt.Sprintf("%s?lat=%s&lng=%s",
		p.baseURL,
		strconv.FormatFloat(coords.Latitude(), 'f', -1, 64),
		strconv.FormatFloat(coords.Longitude(), 'f', -1, 64),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return kernel.Address{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return kernel.Address{}, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return kernel.Address{}, fmt.Errorf("provider %s returned status %d", p.name, resp.StatusCode)
	}

	var body refineResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return kernel.Address{}, fmt.Errorf("provider %s returned malformed body: %w", p.name, err)
	}

	return kernel.NewAddress(body.JibunAddress, body.RoadAddress, "")
}
