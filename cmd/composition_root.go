package cmd

import (
	"fmt"
	"log/slog"

	"orders/internal/adapters/out/geo"
	"orders/internal/adapters/out/kafka"
	"orders/internal/adapters/out/postgres"
	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/services"
	"orders/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters, domain services and use case handlers
// together. It is built once at startup and hands out ready-to-use handlers.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger

	refiner *services.AddressRefiner
	broker  *kafka.Publisher
	relay   *services.OutboxRelay
}

// NewCompositionRoot builds the object graph: reverse-geocoding providers in
// the configured fallback order, the Kafka publisher and the outbox relay.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	providerConfigs := make([]geo.ProviderConfig, 0, len(config.GeoProviderOrder))
	for _, name := range config.GeoProviderOrder {
		baseURL, ok := config.GeoProviderBaseURLs[name]
		if !ok {
			return nil, fmt.Errorf("no base URL configured for reverse geocoding provider %q", name)
		}
		providerConfigs = append(providerConfigs, geo.ProviderConfig{
			Name:    name,
			BaseURL: baseURL,
			Timeout: config.GeoProviderTimeout,
		})
	}

	providers, err := geo.BuildProviders(providerConfigs)
	if err != nil {
		return nil, err
	}

	chain, err := services.NewRefinementChain(logger, providers...)
	if err != nil {
		return nil, err
	}

	broker, err := kafka.NewPublisher(config.KafkaBrokers, config.KafkaOrderEventsTopic)
	if err != nil {
		return nil, err
	}

	uowFactory := postgres.NewGormUnitOfWorkFactory(gormDB)

	return &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: uowFactory,
		logger:     logger,
		refiner:    services.NewAddressRefiner(chain),
		broker:     broker,
		relay:      services.NewOutboxRelay(uowFactory, broker, logger),
	}, nil
}

// Close releases resources held by the composition root.
func (c *CompositionRoot) Close() error {
	return c.broker.Close()
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	creator := services.NewOrderCreator(c.uowFactory, services.NewOrderNumberGenerator())
	return commands.NewCreateOrderCommandHandler(c.refiner, creator)
}

func (c *CompositionRoot) CreateChangeDestinationCommandHandler() commands.ChangeDestinationCommandHandler {
	changer := services.NewOrderLocationChanger(c.uowFactory)
	return commands.NewChangeDestinationCommandHandler(c.refiner, changer)
}

func (c *CompositionRoot) CreateDeliverOrderCommandHandler() commands.DeliverOrderCommandHandler {
	return commands.NewDeliverOrderCommandHandler(services.NewOrderTransitioner(c.uowFactory))
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(services.NewOrderTransitioner(c.uowFactory))
}

func (c *CompositionRoot) CreateGetOrderByIDQueryHandler() queries.GetOrderByIDQueryHandler {
	return queries.NewGetOrderByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderByNumberQueryHandler() queries.GetOrderByNumberQueryHandler {
	return queries.NewGetOrderByNumberQueryHandler(c.gormDB)
}

// CreateJobManager builds the background job scheduler with the outbox relay
// job wired to this root's relay service.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	relayJob := jobs.NewOutboxRelayJob(
		c.relay,
		c.config.OutboxRelayInterval,
		c.config.OutboxRelayBatchSize,
		c.logger,
	)
	return jobs.NewJobManager(relayJob, c.config.OutboxRelayEnabled)
}
