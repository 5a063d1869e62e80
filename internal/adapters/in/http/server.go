package http

import (
	"errors"
	"net/http"

	"github.com/joModes-1/b2b-backend-sub001/internal/core/application/usecases/commands"
	"github.com/joModes-1/b2b-backend-sub001/internal/core/application/usecases/queries"
	"github.com/joModes-1/b2b-backend-sub001/internal/core/domain/model/agent"
	"github.com/joModes-1/b2b-backend-sub001/internal/core/domain/model/kernel"
	"github.com/joModes-1/b2b-backend-sub001/internal/core/domain/model/order"
	"github.com/joModes-1/b2b-backend-sub001/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server exposes the marketplace use cases over HTTP.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler     commands.CreateOrderCommandHandler
	confirmOrderHandler    commands.ConfirmOrderCommandHandler
	assignAgentHandler     commands.AssignAgentCommandHandler
	confirmPickupHandler   commands.ConfirmPickupCommandHandler
	startTransitHandler    commands.StartTransitCommandHandler
	confirmDeliveryHandler commands.ConfirmDeliveryCommandHandler
	settleOrderHandler     commands.SettleOrderCommandHandler
	cancelOrderHandler     commands.CancelOrderCommandHandler
	refundOrderHandler     commands.RefundOrderCommandHandler
	createAgentHandler     commands.CreateAgentCommandHandler
	recordDepositHandler   commands.RecordDepositCommandHandler
	reviewDepositHandler   commands.ReviewDepositCommandHandler

	// Query handlers
	getOrderHandler       queries.GetOrderQueryHandler
	getBuyerOrdersHandler queries.GetBuyerOrdersQueryHandler
	getAgentLedgerHandler queries.GetAgentLedgerQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	confirmOrderHandler commands.ConfirmOrderCommandHandler,
	assignAgentHandler commands.AssignAgentCommandHandler,
	confirmPickupHandler commands.ConfirmPickupCommandHandler,
	startTransitHandler commands.StartTransitCommandHandler,
	confirmDeliveryHandler commands.ConfirmDeliveryCommandHandler,
	settleOrderHandler commands.SettleOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	refundOrderHandler commands.RefundOrderCommandHandler,
	createAgentHandler commands.CreateAgentCommandHandler,
	recordDepositHandler commands.RecordDepositCommandHandler,
	reviewDepositHandler commands.ReviewDepositCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getBuyerOrdersHandler queries.GetBuyerOrdersQueryHandler,
	getAgentLedgerHandler queries.GetAgentLedgerQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:     createOrderHandler,
		confirmOrderHandler:    confirmOrderHandler,
		assignAgentHandler:     assignAgentHandler,
		confirmPickupHandler:   confirmPickupHandler,
		startTransitHandler:    startTransitHandler,
		confirmDeliveryHandler: confirmDeliveryHandler,
		settleOrderHandler:     settleOrderHandler,
		cancelOrderHandler:     cancelOrderHandler,
		refundOrderHandler:     refundOrderHandler,
		createAgentHandler:     createAgentHandler,
		recordDepositHandler:   recordDepositHandler,
		reviewDepositHandler:   reviewDepositHandler,
		getOrderHandler:        getOrderHandler,
		getBuyerOrdersHandler:  getBuyerOrdersHandler,
		getAgentLedgerHandler:  getAgentLedgerHandler,
	}
}

// RegisterRoutes wires every endpoint onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/pickup", s.ConfirmPickup)
	api.GET("/orders/:orderID", s.GetOrder)
	api.POST("/orders/:orderID/confirm", s.ConfirmOrder)
	api.POST("/orders/:orderID/assign", s.AssignAgent)
	api.POST("/orders/:orderID/transit", s.StartTransit)
	api.POST("/orders/:orderID/delivery", s.ConfirmDelivery)
	api.POST("/orders/:orderID/settle", s.SettleOrder)
	api.POST("/orders/:orderID/cancel", s.CancelOrder)
	api.POST("/orders/:orderID/refund", s.RefundOrder)

	api.GET("/buyers/:buyerID/orders", s.GetBuyerOrders)

	api.POST("/agents", s.CreateAgent)
	api.GET("/agents/:agentID/ledger", s.GetAgentLedger)
	api.POST("/agents/:agentID/deposits", s.RecordDeposit)
	api.POST("/agents/:agentID/deposits/:depositID/review", s.ReviewDeposit)
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	buyerID, err := kernel.UUIDFromBytes(req.BuyerID[:])
	if err != nil {
		return badRequest(ctx, "Invalid buyer id: "+err.Error())
	}

	items := make([]commands.LineItemSpec, len(req.Items))
	for i, item := range req.Items {
		sellerID, sellerErr := kernel.UUIDFromBytes(item.SellerID[:])
		if sellerErr != nil {
			return badRequest(ctx, "Invalid seller id: "+sellerErr.Error())
		}
		productID, productErr := kernel.UUIDFromBytes(item.ProductID[:])
		if productErr != nil {
			return badRequest(ctx, "Invalid product id: "+productErr.Error())
		}
		items[i] = commands.LineItemSpec{
			SellerID:  sellerID,
			ProductID: productID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}

	var geopoint *kernel.Geopoint
	if req.Latitude != nil || req.Longitude != nil {
		if req.Latitude == nil || req.Longitude == nil {
			return badRequest(ctx, "Latitude and longitude must be provided together")
		}
		geopoint = &kernel.Geopoint{Latitude: *req.Latitude, Longitude: *req.Longitude}
	}

	orderID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(orderID, buyerID, items, req.Street, req.City, geopoint, req.Channel)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.Bytes()})
}

// GetOrder handles GET /api/v1/orders/:orderID - retrieves the full order
// read model, including the settlement breakdown and the event timeline.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromQueryResponse(result))
}

// GetBuyerOrders handles GET /api/v1/buyers/:buyerID/orders - lists the
// buyer's orders, optionally filtered by the "status" query parameter.
func (s *Server) GetBuyerOrders(ctx echo.Context) error {
	buyerID, err := kernel.UUIDFromString(ctx.Param("buyerID"))
	if err != nil {
		return badRequest(ctx, "Invalid buyer id: "+err.Error())
	}

	var statusFilter *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		status, statusErr := order.StatusFromString(raw)
		if statusErr != nil {
			return badRequest(ctx, "Invalid status filter: "+raw)
		}
		statusFilter = &status
	}

	query, err := queries.NewGetBuyerOrdersQuery(buyerID, statusFilter)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	results, err := s.getBuyerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]OrderSummary, len(results))
	for i, row := range results {
		response[i] = OrderSummary{
			ID:          row.ID.Bytes(),
			Number:      row.Number,
			Channel:     row.Channel,
			TotalAmount: row.TotalAmount,
			NetAmount:   row.NetAmount,
			Status:      row.Status,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ConfirmOrder handles POST /api/v1/orders/:orderID/confirm - captures
// payment through the provider and confirms the order.
func (s *Server) ConfirmOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewConfirmOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.confirmOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignAgent handles POST /api/v1/orders/:orderID/assign - assigns a
// verified delivery agent and issues the handoff token.
func (s *Server) AssignAgent(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var req AssignAgentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	agentID, err := kernel.UUIDFromBytes(req.AgentID[:])
	if err != nil {
		return badRequest(ctx, "Invalid agent id: "+err.Error())
	}

	cmd, err := commands.NewAssignAgentCommand(orderID, agentID)
	if err != nil {
		return badRequest(ctx, "Invalid assignment data: "+err.Error())
	}

	if handleErr := s.assignAgentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmPickup handles POST /api/v1/orders/pickup - verifies the handoff
// token scanned at the seller's location. The order is resolved from the
// token itself.
func (s *Server) ConfirmPickup(ctx echo.Context) error {
	var req ConfirmPickupRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	agentID, err := kernel.UUIDFromBytes(req.AgentID[:])
	if err != nil {
		return badRequest(ctx, "Invalid agent id: "+err.Error())
	}

	cmd, err := commands.NewConfirmPickupCommand(req.Token, agentID)
	if err != nil {
		return badRequest(ctx, "Invalid pickup data: "+err.Error())
	}

	if handleErr := s.confirmPickupHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartTransit handles POST /api/v1/orders/:orderID/transit - moves the
// agent's delivery entry into the in-transit stage.
func (s *Server) StartTransit(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var req StartTransitRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	agentID, err := kernel.UUIDFromBytes(req.AgentID[:])
	if err != nil {
		return badRequest(ctx, "Invalid agent id: "+err.Error())
	}

	cmd, err := commands.NewStartTransitCommand(orderID, agentID)
	if err != nil {
		return badRequest(ctx, "Invalid transit data: "+err.Error())
	}

	if handleErr := s.startTransitHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmDelivery handles POST /api/v1/orders/:orderID/delivery - confirms
// physical delivery. For cash on delivery orders the collected amount is
// pushed onto the agent's cash ledger in the same transaction.
func (s *Server) ConfirmDelivery(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var req ConfirmDeliveryRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	agentID, err := kernel.UUIDFromBytes(req.AgentID[:])
	if err != nil {
		return badRequest(ctx, "Invalid agent id: "+err.Error())
	}

	cmd, err := commands.NewConfirmDeliveryCommand(orderID, agentID)
	if err != nil {
		return badRequest(ctx, "Invalid delivery data: "+err.Error())
	}

	if handleErr := s.confirmDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SettleOrder handles POST /api/v1/orders/:orderID/settle - releases the
// seller payout for a delivered order.
func (s *Server) SettleOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewSettleOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid settlement data: "+err.Error())
	}

	if handleErr := s.settleOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:orderID/cancel - cancels an order
// that has not yet captured payment.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid cancellation data: "+err.Error())
	}

	if handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RefundOrder handles POST /api/v1/orders/:orderID/refund - refunds a
// delivered order before settlement.
func (s *Server) RefundOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewRefundOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid refund data: "+err.Error())
	}

	if handleErr := s.refundOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateAgent handles POST /api/v1/agents - registers a new delivery agent.
func (s *Server) CreateAgent(ctx echo.Context) error {
	var req CreateAgentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	agentID := kernel.NewUUID()

	cmd, err := commands.NewCreateAgentCommand(agentID, req.Name, req.CashLimit)
	if err != nil {
		return badRequest(ctx, "Invalid agent data: "+err.Error())
	}

	if handleErr := s.createAgentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreateAgentResponse{ID: agentID.Bytes()})
}

// GetAgentLedger handles GET /api/v1/agents/:agentID/ledger - retrieves the
// agent's cash accounting view.
func (s *Server) GetAgentLedger(ctx echo.Context) error {
	agentID, err := kernel.UUIDFromString(ctx.Param("agentID"))
	if err != nil {
		return badRequest(ctx, "Invalid agent id: "+err.Error())
	}

	query, err := queries.NewGetAgentLedgerQuery(agentID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	result, err := s.getAgentLedgerHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ledgerFromQueryResponse(result))
}

// RecordDeposit handles POST /api/v1/agents/:agentID/deposits - records a
// cash remittance and optimistically reduces the agent's held balance.
func (s *Server) RecordDeposit(ctx echo.Context) error {
	agentID, err := kernel.UUIDFromString(ctx.Param("agentID"))
	if err != nil {
		return badRequest(ctx, "Invalid agent id: "+err.Error())
	}

	var req RecordDepositRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	depositID := kernel.NewUUID()

	cmd, err := commands.NewRecordDepositCommand(agentID, depositID, req.Amount, req.Evidence)
	if err != nil {
		return badRequest(ctx, "Invalid deposit data: "+err.Error())
	}

	if handleErr := s.recordDepositHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, RecordDepositResponse{ID: depositID.Bytes()})
}

// ReviewDeposit handles POST /api/v1/agents/:agentID/deposits/:depositID/review -
// applies the back-office verdict ("approve" or "reject") to a pending deposit.
func (s *Server) ReviewDeposit(ctx echo.Context) error {
	agentID, err := kernel.UUIDFromString(ctx.Param("agentID"))
	if err != nil {
		return badRequest(ctx, "Invalid agent id: "+err.Error())
	}

	depositID, err := kernel.UUIDFromString(ctx.Param("depositID"))
	if err != nil {
		return badRequest(ctx, "Invalid deposit id: "+err.Error())
	}

	var req ReviewDepositRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var verdict commands.DepositVerdict
	switch req.Verdict {
	case "approve":
		verdict = commands.VerdictApprove
	case "reject":
		verdict = commands.VerdictReject
	default:
		return badRequest(ctx, "Invalid verdict: "+req.Verdict)
	}

	cmd, err := commands.NewReviewDepositCommand(agentID, depositID, req.Verifier, verdict)
	if err != nil {
		return badRequest(ctx, "Invalid review data: "+err.Error())
	}

	if handleErr := s.reviewDepositHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func orderFromQueryResponse(result queries.GetOrderQueryResponse) Order {
	response := Order{
		ID:                result.ID.Bytes(),
		Number:            result.Number,
		BuyerID:           result.BuyerID.Bytes(),
		Street:            result.Street,
		City:              result.City,
		Channel:           result.Channel,
		TotalAmount:       result.TotalAmount,
		CommissionPercent: result.CommissionPercent,
		CommissionAmount:  result.CommissionAmount,
		EstimatedFee:      result.EstimatedFee,
		NetAmount:         result.NetAmount,
		Status:            result.Status,
		PaymentStatus:     result.PaymentStatus,
		CommissionStatus:  result.CommissionStatus,
		PaymentReference:  result.PaymentReference,
		PayoutReference:   result.PayoutReference,
		Items:             make([]OrderItem, len(result.Items)),
		Events:            make([]OrderEvent, len(result.Events)),
	}

	if result.AgentID != nil {
		agentID := result.AgentID.Bytes()
		response.AgentID = &agentID
	}

	for i, item := range result.Items {
		response.Items[i] = OrderItem{
			SellerID:  item.SellerID.Bytes(),
			ProductID: item.ProductID.Bytes(),
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.Subtotal,
		}
	}

	for i, event := range result.Events {
		response.Events[i] = OrderEvent{
			Type:       event.Type,
			Actor:      event.Actor,
			OccurredAt: event.OccurredAt,
		}
	}

	return response
}

func ledgerFromQueryResponse(result queries.GetAgentLedgerQueryResponse) AgentLedger {
	response := AgentLedger{
		AgentID:        result.AgentID.Bytes(),
		Name:           result.Name,
		Verified:       result.Verified,
		CashLimit:      result.CashLimit,
		CashBalance:    result.CashBalance,
		Headroom:       result.Headroom,
		TotalCollected: result.TotalCollected,
		TotalDeposited: result.TotalDeposited,
		Deliveries:     make([]LedgerDelivery, len(result.Deliveries)),
		Deposits:       make([]LedgerDeposit, len(result.Deposits)),
	}

	for i, delivery := range result.Deliveries {
		response.Deliveries[i] = LedgerDelivery{
			OrderID:         delivery.OrderID.Bytes(),
			Stage:           delivery.Stage,
			CollectedAmount: delivery.CollectedAmount,
			AssignedAt:      delivery.AssignedAt,
			DeliveredAt:     delivery.DeliveredAt,
		}
	}

	for i, deposit := range result.Deposits {
		response.Deposits[i] = LedgerDeposit{
			DepositID:   deposit.DepositID.Bytes(),
			Amount:      deposit.Amount,
			Evidence:    deposit.Evidence,
			Status:      deposit.Status,
			VerifiedBy:  deposit.VerifiedBy,
			RecordedAt:  deposit.RecordedAt,
			FinalizedAt: deposit.FinalizedAt,
		}
	}

	return response
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorResponse maps use case failures onto HTTP status codes. Validation
// failures become 400, missing aggregates 404, concurrency conflicts and
// rejected transitions 409, declined payments 402, everything else 500.
func errorResponse(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, commands.ErrPaymentDeclined):
		code = http.StatusPaymentRequired
	case errors.Is(err, errs.ErrConflict),
		errors.Is(err, errs.ErrIllegalTransition),
		errors.Is(err, order.ErrAgentAlreadyAssigned),
		errors.Is(err, order.ErrAgentMismatch),
		errors.Is(err, order.ErrHandoffVerificationFailed),
		errors.Is(err, order.ErrPaymentNotCaptured),
		errors.Is(err, order.ErrCancelAfterCapture),
		errors.Is(err, order.ErrCancelAfterAssignment),
		errors.Is(err, agent.ErrCeilingExceeded),
		errors.Is(err, agent.ErrAgentNotVerified),
		errors.Is(err, agent.ErrDeliveryAlreadyActive),
		errors.Is(err, agent.ErrDepositExceedsBalance),
		errors.Is(err, agent.ErrDepositAlreadyFinal):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, order.ErrHandoffTokenMalformed):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}
