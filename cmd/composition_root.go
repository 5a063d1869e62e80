package cmd

import (
	"log/slog"
	"os"

	"github.com/joModes-1/b2b-backend-sub001/internal/adapters/in/http"
	"github.com/joModes-1/b2b-backend-sub001/internal/adapters/out/notification"
	"github.com/joModes-1/b2b-backend-sub001/internal/adapters/out/payment"
	"github.com/joModes-1/b2b-backend-sub001/internal/adapters/out/postgres"
	"github.com/joModes-1/b2b-backend-sub001/internal/core/application/usecases/commands"
	"github.com/joModes-1/b2b-backend-sub001/internal/core/application/usecases/queries"
	"github.com/joModes-1/b2b-backend-sub001/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	gateway    *payment.SandboxGateway
	notifier   *notification.LogNotifier
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		gateway:    payment.NewSandboxGateway(logger),
		notifier:   notification.NewLogNotifier(logger),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmOrderCommandHandler(f, c.gateway)
}

func (c *CompositionRoot) CreateAssignAgentCommandHandler() commands.AssignAgentCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignAgentCommandHandler(f)
}

func (c *CompositionRoot) CreateConfirmPickupCommandHandler() commands.ConfirmPickupCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmPickupCommandHandler(f)
}

func (c *CompositionRoot) CreateStartTransitCommandHandler() commands.StartTransitCommandHandler {
	var f commands.AgentUoWFactory = FuncAgentUoWFactory(func() commands.AgentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStartTransitCommandHandler(f)
}

func (c *CompositionRoot) CreateConfirmDeliveryCommandHandler() commands.ConfirmDeliveryCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateSettleOrderCommandHandler() commands.SettleOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSettleOrderCommandHandler(f, c.gateway, c.notifier)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateRefundOrderCommandHandler() commands.RefundOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRefundOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateAgentCommandHandler() commands.CreateAgentCommandHandler {
	var f commands.AgentUoWFactory = FuncAgentUoWFactory(func() commands.AgentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateAgentCommandHandler(f)
}

func (c *CompositionRoot) CreateRecordDepositCommandHandler() commands.RecordDepositCommandHandler {
	var f commands.AgentUoWFactory = FuncAgentUoWFactory(func() commands.AgentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordDepositCommandHandler(f)
}

func (c *CompositionRoot) CreateReviewDepositCommandHandler() commands.ReviewDepositCommandHandler {
	var f commands.AgentUoWFactory = FuncAgentUoWFactory(func() commands.AgentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReviewDepositCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBuyerOrdersQueryHandler() queries.GetBuyerOrdersQueryHandler {
	return queries.NewGetBuyerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAgentLedgerQueryHandler() queries.GetAgentLedgerQueryHandler {
	return queries.NewGetAgentLedgerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateConfirmOrderCommandHandler(),
		c.CreateAssignAgentCommandHandler(),
		c.CreateConfirmPickupCommandHandler(),
		c.CreateStartTransitCommandHandler(),
		c.CreateConfirmDeliveryCommandHandler(),
		c.CreateSettleOrderCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateRefundOrderCommandHandler(),
		c.CreateCreateAgentCommandHandler(),
		c.CreateRecordDepositCommandHandler(),
		c.CreateReviewDepositCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetBuyerOrdersQueryHandler(),
		c.CreateGetAgentLedgerQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	var orderFactory commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	var agentFactory commands.AgentUoWFactory = FuncAgentUoWFactory(func() commands.AgentUoW {
		return c.uowFactory.Create()
	})
	return jobs.NewJobManager(
		orderFactory, agentFactory, c.CreateSettleOrderCommandHandler(), c.notifier, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncAgentUoWFactory func() commands.AgentUoW

func (f FuncAgentUoWFactory) Create() commands.AgentUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
