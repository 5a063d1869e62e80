package commands_test

import (
	"testing"

	"github.com/joModes-1/b2b-backend-sub001/internal/core/application/usecases/commands"
	"github.com/joModes-1/b2b-backend-sub001/internal/core/domain/model/agent"
	"github.com/joModes-1/b2b-backend-sub001/internal/core/domain/model/kernel"
	"github.com/joModes-1/b2b-backend-sub001/internal/core/domain/model/order"
	"github.com/joModes-1/b2b-backend-sub001/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAssignAgentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := confirmedOrder(t, kernel.ChannelCashOnDelivery)
	rider := verifiedAgent(t, 500000)
	cmd, err := commands.NewAssignAgentCommand(aggregate.ID(), rider.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	agentRepo := new(MockAgentRepository)
	orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	agentRepo.On("Get", mock.Anything, rider.ID()).Return(rider, nil).Once()
	orderRepo.On("Update", mock.Anything, mock.MatchedBy(func(o *order.Order) bool {
		return o.Agent() != nil && o.Agent().IsEqual(rider.ID())
	})).Return(nil).Once()
	agentRepo.On("Update", mock.Anything, mock.MatchedBy(func(a *agent.DeliveryAgent) bool {
		return len(a.ActiveDeliveries()) == 1
	})).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("AgentRepository").Return(agentRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignAgentCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	agentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAssignAgentCommandHandler_Handle_VersionConflict(t *testing.T) {
	ctx := t.Context()
	aggregate := confirmedOrder(t, kernel.ChannelCashOnDelivery)
	rider := verifiedAgent(t, 500000)
	cmd, err := commands.NewAssignAgentCommand(aggregate.ID(), rider.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	agentRepo := new(MockAgentRepository)
	orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	agentRepo.On("Get", mock.Anything, rider.ID()).Return(rider, nil).Once()
	// A concurrent assignment won the version race.
	orderRepo.On("Update", mock.Anything, mock.AnythingOfType("*order.Order")).
		Return(errs.NewConflictError("order", aggregate.ID().String())).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("AgentRepository").Return(agentRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignAgentCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConflict)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAssignAgentCommandHandler_Handle_AlreadyAssigned(t *testing.T) {
	ctx := t.Context()
	aggregate := confirmedOrder(t, kernel.ChannelCashOnDelivery)
	require.NoError(t, aggregate.AssignAgent(kernel.NewUUID()))
	rider := verifiedAgent(t, 500000)
	cmd, err := commands.NewAssignAgentCommand(aggregate.ID(), rider.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	agentRepo := new(MockAgentRepository)
	orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	agentRepo.On("Get", mock.Anything, rider.ID()).Return(rider, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("AgentRepository").Return(agentRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignAgentCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrAgentAlreadyAssigned)
}
