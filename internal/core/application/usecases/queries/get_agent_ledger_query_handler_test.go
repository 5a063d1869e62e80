package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/joModes-1/b2b-backend-sub001/internal/adapters/out/postgres/agentrepo"
	"github.com/joModes-1/b2b-backend-sub001/internal/core/application/usecases/queries"
	"github.com/joModes-1/b2b-backend-sub001/internal/core/domain/model/agent"
	"github.com/joModes-1/b2b-backend-sub001/internal/core/domain/model/kernel"
	"github.com/joModes-1/b2b-backend-sub001/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetAgentLedgerQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetAgentLedgerQueryHandler
	agentRepo *agentrepo.GormAgentRepository
}

func (suite *GetAgentLedgerQueryHandlerTestSuite) SetupSuite() {
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
		&agentrepo.AgentDTO{}, &agentrepo.ActiveDeliveryDTO{}, &agentrepo.DepositDTO{}))

	suite.handler = queries.NewGetAgentLedgerQueryHandler(db)
	suite.agentRepo = agentrepo.NewGormAgentRepository(db, &noopTracker{})
}

func (suite *GetAgentLedgerQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetAgentLedgerQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE agents CASCADE").Error)
}

func (suite *GetAgentLedgerQueryHandlerTestSuite) TestHandle_ReturnsLedgerWithEntries() {
	ctx := context.Background()

	rider, err := agent.NewDeliveryAgent(kernel.NewUUID(), "Okello Ronald", 500000)
	suite.Require().NoError(err)
	rider.Verify()

	orderID := kernel.NewUUID()
	suite.Require().NoError(rider.AcceptDelivery(orderID))
	suite.Require().NoError(rider.ConfirmPickup(orderID))
	suite.Require().NoError(rider.StartTransit(orderID))
	suite.Require().NoError(rider.Collect(orderID, 120000))
	depositID := kernel.NewUUID()
	suite.Require().NoError(rider.RecordDeposit(depositID, 100000, "SLIP-300"))
	suite.Require().NoError(suite.agentRepo.Add(ctx, rider))

	query, err := queries.NewGetAgentLedgerQuery(rider.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(rider.ID(), result.AgentID)
	suite.Equal("Okello Ronald", result.Name)
	suite.True(result.Verified)
	suite.Equal(int64(500000), result.CashLimit)
	suite.Equal(int64(20000), result.CashBalance)
	suite.Equal(int64(480000), result.Headroom)
	suite.Equal(int64(120000), result.TotalCollected)
	suite.Equal(int64(100000), result.TotalDeposited)

	suite.Require().Len(result.Deliveries, 1)
	suite.Equal(orderID, result.Deliveries[0].OrderID)
	suite.Equal("InTransit", result.Deliveries[0].Stage)
	suite.Equal(int64(120000), result.Deliveries[0].CollectedAmount)

	suite.Require().Len(result.Deposits, 1)
	suite.Equal(depositID, result.Deposits[0].DepositID)
	suite.Equal(int64(100000), result.Deposits[0].Amount)
	suite.Equal("SLIP-300", result.Deposits[0].Evidence)
	suite.Equal("Pending", result.Deposits[0].Status)
	suite.Nil(result.Deposits[0].FinalizedAt)
}

func (suite *GetAgentLedgerQueryHandlerTestSuite) TestHandle_NotFound() {
	query, err := queries.NewGetAgentLedgerQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func TestGetAgentLedgerQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetAgentLedgerQueryHandlerTestSuite))
}
