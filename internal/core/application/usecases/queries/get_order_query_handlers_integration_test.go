package queries_test

import (
	"context"
	"testing"
	"time"

	"orders/internal/adapters/out/postgres/orderrepo"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetOrderQueryHandlersTestSuite struct {
	suite.Suite
	container       *postgres.PostgresContainer
	db              *gorm.DB
	byIDHandler     queries.GetOrderByIDQueryHandler
	byNumberHandler queries.GetOrderByNumberQueryHandler
	repo            *orderrepo.GormOrderRepository
}

func (suite *GetOrderQueryHandlersTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{})
	suite.Require().NoError(err)

	suite.byIDHandler = queries.NewGetOrderByIDQueryHandler(db)
	suite.byNumberHandler = queries.NewGetOrderByNumberQueryHandler(db)
	suite.repo = orderrepo.NewGormOrderRepository(db)
}

func (suite *GetOrderQueryHandlersTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrderQueryHandlersTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetOrderQueryHandlersTestSuite) seedOrder(number string) *order.Order {
	orderNumber, err := order.NewOrderNumber(number)
	suite.Require().NoError(err)

	price, err := kernel.NewMoney(4500)
	suite.Require().NoError(err)
	coffee, err := order.NewOrderItem("Americano", 2, price, "beverage", nil, nil)
	suite.Require().NoError(err)

	dessertPrice, err := kernel.NewMoney(6000)
	suite.Require().NoError(err)
	dessert, err := order.NewOrderItem("Cheesecake", 1, dessertPrice, "dessert", nil, nil)
	suite.Require().NoError(err)

	contact, err := kernel.NewContact("Kim Minsoo", "010-1234-5678")
	suite.Require().NoError(err)
	address, err := kernel.NewAddress("Yeoksam-dong 123", "Teheran-ro 123", "3F")
	suite.Require().NoError(err)
	latLng, err := kernel.NewLatLng(37.4979, 127.0276)
	suite.Require().NoError(err)
	location, err := order.NewLocation(contact, address, latLng, kernel.EmptyEntranceInfo())
	suite.Require().NoError(err)

	policy, err := order.NewDeliveryPolicy(true, false, false, nil, time.Now())
	suite.Require().NoError(err)

	draft, err := order.NewDraft(orderNumber, []order.OrderItem{coffee, dessert},
		location, location, policy, time.Now())
	suite.Require().NoError(err)

	stored, err := suite.repo.Store(context.Background(), draft)
	suite.Require().NoError(err)
	return stored
}

func (suite *GetOrderQueryHandlersTestSuite) TestHandleByID_ReturnsFullReadModel() {
	stored := suite.seedOrder("ORD-20260830120000001")

	query, err := queries.NewGetOrderByIDQuery(stored.ID())
	suite.Require().NoError(err)

	response, err := suite.byIDHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(stored.ID(), response.ID)
	suite.Equal("ORD-20260830120000001", response.OrderNumber)
	suite.Equal("Created", response.Status)
	suite.True(response.AlcoholDelivery)
	suite.False(response.ContactlessDelivery)
	suite.Equal("Kim Minsoo", response.Destination.ContactName)
	suite.Equal("Teheran-ro 123", response.Destination.RoadAddress)
	suite.InDelta(37.4979, response.Destination.Latitude, 1e-9)
	suite.Require().Len(response.Items, 2)
	suite.Equal("Americano", response.Items[0].ItemName)
	suite.EqualValues(2*4500+6000, response.TotalAmount)
}

func (suite *GetOrderQueryHandlersTestSuite) TestHandleByID_NotFound() {
	query, err := queries.NewGetOrderByIDQuery(999999)
	suite.Require().NoError(err)

	_, err = suite.byIDHandler.Handle(context.Background(), query)

	var notFound *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFound)
}

func (suite *GetOrderQueryHandlersTestSuite) TestHandleByNumber_ReturnsSameOrder() {
	stored := suite.seedOrder("ORD-20260830120000002")

	query, err := queries.NewGetOrderByNumberQuery("ORD-20260830120000002")
	suite.Require().NoError(err)

	response, err := suite.byNumberHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(stored.ID(), response.ID)
	suite.Equal("ORD-20260830120000002", response.OrderNumber)
}

func (suite *GetOrderQueryHandlersTestSuite) TestHandleByNumber_NotFound() {
	query, err := queries.NewGetOrderByNumberQuery("ORD-20260830120000999")
	suite.Require().NoError(err)

	_, err = suite.byNumberHandler.Handle(context.Background(), query)

	var notFound *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFound)
}

func TestGetOrderQueryHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderQueryHandlersTestSuite))
}
