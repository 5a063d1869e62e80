package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/joModes-1/b2b-backend-sub001/internal/adapters/out/postgres/orderrepo"
	"github.com/joModes-1/b2b-backend-sub001/internal/core/domain/model/kernel"
	"github.com/joModes-1/b2b-backend-sub001/internal/core/domain/model/order"
	"github.com/joModes-1/b2b-backend-sub001/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for
// OrderRepository using a PostgreSQL container.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{}, &orderrepo.LineItemDTO{}, &orderrepo.OrderEventDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(channel kernel.PaymentChannel) *order.Order {
	item, err := order.NewLineItem(kernel.NewUUID(), kernel.NewUUID(), 2, 5000)
	suite.Require().NoError(err)
	address, err := kernel.NewAddress("12 Market Street", "Kampala", nil)
	suite.Require().NoError(err)

	number := "ORD-" + kernel.NewUUID().String()[:8]
	aggregate, err := order.NewOrder(
		kernel.NewUUID(), number, kernel.NewUUID(),
		[]order.LineItem{item}, address, channel, nil,
	)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_PersistsOrderWithChildren() {
	ctx := context.Background()
	aggregate := suite.createTestOrder(kernel.ChannelCard)

	err := suite.repository.Add(ctx, aggregate)
	suite.Require().NoError(err)

	var orderCount, itemCount, eventCount int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&orderCount).Error)
	suite.Require().NoError(suite.db.Model(&orderrepo.LineItemDTO{}).Count(&itemCount).Error)
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderEventDTO{}).Count(&eventCount).Error)
	suite.Equal(int64(1), orderCount)
	suite.Equal(int64(1), itemCount)
	suite.Equal(int64(1), eventCount) // order.created

	// Pending events were flushed on persist.
	suite.Empty(aggregate.Events())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_RoundTripsAggregate() {
	ctx := context.Background()
	aggregate := suite.createTestOrder(kernel.ChannelCashOnDelivery)
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	restored, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	suite.True(restored.IsEqual(aggregate))
	suite.Equal(aggregate.Number(), restored.Number())
	suite.Equal(aggregate.BuyerID(), restored.BuyerID())
	suite.Equal(order.StatusPending, restored.Status())
	suite.Equal(aggregate.TotalAmount(), restored.TotalAmount())
	suite.Equal(aggregate.Settlement().NetAmount(), restored.Settlement().NetAmount())
	suite.Len(restored.Items(), 1)
	suite.Equal(1, restored.Version())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByNumber_FindsOrder() {
	ctx := context.Background()
	aggregate := suite.createTestOrder(kernel.ChannelMobileMoney)
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	restored, err := suite.repository.GetByNumber(ctx, aggregate.Number())
	suite.Require().NoError(err)
	suite.True(restored.IsEqual(aggregate))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsTransitionAndEvents() {
	ctx := context.Background()
	aggregate := suite.createTestOrder(kernel.ChannelCard)
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	loaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.ConfirmPayment("PAY-1"))
	suite.Require().NoError(loaded.Confirm())

	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	restored, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusConfirmed, restored.Status())
	suite.Equal(order.PaymentCompleted, restored.PaymentStatus())
	suite.Equal("PAY-1", restored.PaymentReference())
	suite.Equal(2, restored.Version())

	var eventCount int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderEventDTO{}).Count(&eventCount).Error)
	suite.Equal(int64(3), eventCount) // created, payment_captured, confirmed
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_Conflict() {
	ctx := context.Background()
	aggregate := suite.createTestOrder(kernel.ChannelCard)
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	first, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(first.ConfirmPayment("PAY-A"))
	suite.Require().NoError(suite.repository.Update(ctx, first))

	suite.Require().NoError(second.ConfirmPayment("PAY-B"))
	err = suite.repository.Update(ctx, second)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrConflict)

	// The first writer's state stands.
	restored, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal("PAY-A", restored.PaymentReference())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllUnsettledDelivered_FiltersByStatus() {
	ctx := context.Background()

	delivered := suite.createTestOrder(kernel.ChannelCashOnDelivery)
	agentID := kernel.NewUUID()
	suite.Require().NoError(delivered.Confirm())
	suite.Require().NoError(delivered.AssignAgent(agentID))
	token, err := delivered.IssueHandoff()
	suite.Require().NoError(err)
	suite.Require().NoError(delivered.ConfirmPickup(token, agentID))
	suite.Require().NoError(delivered.ConfirmDelivery(agentID))
	suite.Require().NoError(suite.repository.Add(ctx, delivered))

	pending := suite.createTestOrder(kernel.ChannelCard)
	suite.Require().NoError(suite.repository.Add(ctx, pending))

	result, err := suite.repository.GetAllUnsettledDelivered(ctx)
	suite.Require().NoError(err)

	suite.Require().Len(result, 1)
	suite.True(result[0].IsEqual(delivered))
	suite.Require().NoError(result[0].CanSettle())
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
