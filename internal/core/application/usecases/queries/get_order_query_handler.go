package queries

import (
	"context"

	"github.com/joModes-1/b2b-backend-sub001/internal/core/domain/model/kernel"
	"github.com/joModes-1/b2b-backend-sub001/internal/core/domain/model/order"
	"github.com/joModes-1/b2b-backend-sub001/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order with items and timeline straight from
// the database, bypassing the domain model.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ObjectNotFoundError when the order
// does not exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var row struct {
		ID                uuid.UUID
		Number            string
		BuyerID           uuid.UUID
		AgentID           *uuid.UUID
		DestinationStreet string
		DestinationCity   string
		Channel           string
		TotalAmount       int64
		CommissionPercent int
		CommissionAmount  int64
		EstimatedFee      int64
		NetAmount         int64
		Status            int
		PaymentStatus     int
		CommissionStatus  int
		PaymentReference  string
		PayoutReference   string
	}

	result := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			buyer_id,
			agent_id,
			destination_street,
			destination_city,
			channel,
			total_amount,
			commission_percent,
			commission_amount,
			estimated_fee,
			net_amount,
			status,
			payment_status,
			commission_status,
			payment_reference,
			payout_reference
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Scan(&row)
	if result.Error != nil {
		return GetOrderQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	orderID, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	buyerID, err := kernel.UUIDFromBytes(row.BuyerID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	var agentID *kernel.UUID
	if row.AgentID != nil {
		aID, agentErr := kernel.UUIDFromBytes((*row.AgentID)[:])
		if agentErr != nil {
			return GetOrderQueryResponse{}, agentErr
		}
		agentID = &aID
	}

	items, err := h.loadItems(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	events, err := h.loadEvents(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return GetOrderQueryResponse{
		ID:                orderID,
		Number:            row.Number,
		BuyerID:           buyerID,
		AgentID:           agentID,
		Street:            row.DestinationStreet,
		City:              row.DestinationCity,
		Channel:           row.Channel,
		TotalAmount:       row.TotalAmount,
		CommissionPercent: row.CommissionPercent,
		CommissionAmount:  row.CommissionAmount,
		EstimatedFee:      row.EstimatedFee,
		NetAmount:         row.NetAmount,
		Status:            order.Status(row.Status).String(),
		PaymentStatus:     order.PaymentStatus(row.PaymentStatus).String(),
		CommissionStatus:  order.CommissionStatus(row.CommissionStatus).String(),
		PaymentReference:  row.PaymentReference,
		PayoutReference:   row.PayoutReference,
		Items:             items,
		Events:            events,
	}, nil
}

func (h GetOrderQueryHandler) loadItems(ctx context.Context, orderID kernel.UUID) ([]OrderItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			seller_id,
			product_id,
			quantity,
			unit_price
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderItemResponse, 0)
	for rows.Next() {
		var sellerID, productID uuid.UUID
		var quantity int
		var unitPrice int64

		if err = rows.Scan(&sellerID, &productID, &quantity, &unitPrice); err != nil {
			return nil, err
		}

		seller, idErr := kernel.UUIDFromBytes(sellerID[:])
		if idErr != nil {
			return nil, idErr
		}
		product, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return nil, idErr
		}

		items = append(items, OrderItemResponse{
			SellerID:  seller,
			ProductID: product,
			Quantity:  quantity,
			UnitPrice: unitPrice,
			Subtotal:  int64(quantity) * unitPrice,
		})
	}

	return items, rows.Err()
}

func (h GetOrderQueryHandler) loadEvents(ctx context.Context, orderID kernel.UUID) ([]OrderEventResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			type,
			actor,
			occurred_at
		FROM order_events
		WHERE order_id = ?
		ORDER BY occurred_at
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]OrderEventResponse, 0)
	for rows.Next() {
		var event OrderEventResponse
		if err = rows.Scan(&event.Type, &event.Actor, &event.OccurredAt); err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, rows.Err()
}
