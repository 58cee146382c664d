package cmd

import "time"

// Config carries all runtime settings of the service. Values are read from
// the environment in main; everything here is already parsed and validated.
type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	KafkaBrokers          []string
	KafkaOrderEventsTopic string

	// GeoProviderOrder lists reverse-geocoding providers in fallback order.
	GeoProviderOrder    []string
	GeoProviderBaseURLs map[string]string
	GeoProviderTimeout  time.Duration

	OutboxRelayEnabled   bool
	OutboxRelayInterval  time.Duration
	OutboxRelayBatchSize int
}
