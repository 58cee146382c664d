package geo

import (
	"fmt"
	"time"

	"orders/internal/core/ports"
)

// Known provider names. Every name that may appear in the configured chain
// must be registered here; wire formats beyond the generic JSON contract are
// the endpoint's concern.
const (
	ProviderKakao  = "kakao"
	ProviderNaver  = "naver"
	ProviderGoogle = "google"
)

// ProviderConfig describes one configured provider.
type ProviderConfig struct {
	Name    string
	BaseURL string
	Timeout time.Duration
}

// providerConstructors maps provider names to their constructors.
var providerConstructors = map[string]func(ProviderConfig) (ports.ReverseGeocodingProvider, error){
	ProviderKakao:  newGenericProvider,
	ProviderNaver:  newGenericProvider,
	ProviderGoogle: newGenericProvider,
}

func newGenericProvider(cfg ProviderConfig) (ports.ReverseGeocodingProvider, error) {
	return NewHTTPProvider(cfg.Name, cfg.BaseURL, cfg.Timeout)
}

// BuildProviders turns the configured provider list into the ordered chain of
// adapters. An unknown provider name is a configuration error and fails fast
// at startup.
func BuildProviders(configs []ProviderConfig) ([]ports.ReverseGeocodingProvider, error) {
	providers := make([]ports.ReverseGeocodingProvider, 0, len(configs))
	for _, cfg := range configs {
		construct, ok := providerConstructors[cfg.Name]
		if !ok {
			return nil, fmt.Errorf("unknown reverse geocoding provider: %q", cfg.Name)
		}

		provider, err := construct(cfg)
		if err != nil {
			return nil, fmt.Errorf("building provider %q: %w", cfg.Name, err)
		}
		providers = append(providers, provider)
	}

	return providers, nil
}
