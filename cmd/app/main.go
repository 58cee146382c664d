package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"orders/cmd"
	inhttp "orders/internal/adapters/in/http"
	"orders/internal/adapters/out/postgres/orderrepo"
	"orders/internal/adapters/out/postgres/outboxrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db := mustOpenDB(configs)

	root, err := cmd.NewCompositionRoot(configs, db, logger)
	if err != nil {
		log.Fatalf("Failed to build composition root: %v", err)
	}
	defer func() {
		if closeErr := root.Close(); closeErr != nil {
			logger.Error("Failed to close composition root", "error", closeErr)
		}
	}()

	jobManager := root.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),

		KafkaBrokers:          splitCSV(goDotEnvVariable("KAFKA_BROKERS")),
		KafkaOrderEventsTopic: goDotEnvVariable("KAFKA_ORDER_EVENTS_TOPIC"),

		GeoProviderOrder:    splitCSV(goDotEnvVariable("GEO_PROVIDER_ORDER")),
		GeoProviderBaseURLs: geoProviderBaseURLs(splitCSV(goDotEnvVariable("GEO_PROVIDER_ORDER"))),
		GeoProviderTimeout:  durationEnv("GEO_PROVIDER_TIMEOUT", 3*time.Second),

		OutboxRelayEnabled:   boolEnv("OUTBOX_RELAY_ENABLED", true),
		OutboxRelayInterval:  durationEnv("OUTBOX_RELAY_INTERVAL", 2*time.Second),
		OutboxRelayBatchSize: intEnv("OUTBOX_RELAY_BATCH_SIZE", 100),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

// geoProviderBaseURLs resolves GEO_<PROVIDER>_BASE_URL for every provider in
// the fallback order.
func geoProviderBaseURLs(providerOrder []string) map[string]string {
	baseURLs := make(map[string]string, len(providerOrder))
	for _, name := range providerOrder {
		key := fmt.Sprintf("GEO_%s_BASE_URL", strings.ToUpper(name))
		baseURLs[name] = goDotEnvVariable(key)
	}
	return baseURLs
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid duration in %s: %v", key, err)
	}
	return value
}

func intEnv(key string, fallback int) int {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Invalid integer in %s: %v", key, err)
	}
	return value
}

func boolEnv(key string, fallback bool) bool {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		log.Fatalf("Invalid boolean in %s: %v", key, err)
	}
	return value
}

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&outboxrepo.RecordDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := inhttp.NewServer(
		root.CreateCreateOrderCommandHandler(),
		root.CreateChangeDestinationCommandHandler(),
		root.CreateDeliverOrderCommandHandler(),
		root.CreateCancelOrderCommandHandler(),
		root.CreateGetOrderByIDQueryHandler(),
		root.CreateGetOrderByNumberQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
