// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. The package implements the repository pattern for the
// order aggregate, converting between the domain model and the orders,
// order_items and order_events tables.
package orderrepo

import (
	"time"

	"github.com/joModes-1/b2b-backend-sub001/internal/core/domain/model/kernel"
	"github.com/joModes-1/b2b-backend-sub001/internal/core/domain/model/order"
	"github.com/joModes-1/b2b-backend-sub001/internal/core/domain/services"

	"github.com/google/uuid"
)

// OrderDTO represents the database row for an order aggregate. The settlement
// breakdown is denormalized onto the row so reporting queries never recompute
// money; the version column backs the optimistic concurrency check on updates.
type OrderDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Number            string     `gorm:"type:varchar(64);uniqueIndex;not null"`
	BuyerID           uuid.UUID  `gorm:"type:uuid;index;not null"`
	AgentID           *uuid.UUID `gorm:"type:uuid;index"`
	Destination       AddressDTO `gorm:"embedded;embeddedPrefix:destination_"`
	Channel           string     `gorm:"type:varchar(32);not null"`
	TotalAmount       int64      `gorm:"not null"`
	CommissionPercent int        `gorm:"not null"`
	CommissionAmount  int64      `gorm:"not null"`
	EstimatedFee      int64      `gorm:"not null"`
	NetAmount         int64      `gorm:"not null"`
	Status            int        `gorm:"index;not null"`
	PaymentStatus     int        `gorm:"not null"`
	CommissionStatus  int        `gorm:"not null"`
	PaymentReference  string     `gorm:"type:varchar(128)"`
	PayoutReference   string     `gorm:"type:varchar(128)"`
	PaidAt            *time.Time
	DeliveredAt       *time.Time
	PaymentReleasedAt *time.Time
	Version           int             `gorm:"not null"`
	Items             []LineItemDTO   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Events            []OrderEventDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order rows.
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO represents the embedded shipping destination within the order
// table. The geopoint columns are null when the address carries no pin.
type AddressDTO struct {
	Street    string `gorm:"type:varchar(255);not null"`
	City      string `gorm:"type:varchar(128);not null"`
	Latitude  *float64
	Longitude *float64
}

// LineItemDTO represents one purchased line within an order.
type LineItemDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index;not null"`
	SellerID  uuid.UUID `gorm:"type:uuid;index;not null"`
	ProductID uuid.UUID `gorm:"type:uuid;not null"`
	Quantity  int       `gorm:"not null"`
	UnitPrice int64     `gorm:"not null"`
}

// TableName specifies the database table name for order line items.
func (LineItemDTO) TableName() string {
	return "order_items"
}

// OrderEventDTO represents one append-only entry on the order's timeline.
// Rows are inserted in the same transaction as the order state change that
// raised them and are never updated.
type OrderEventDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Type       string    `gorm:"type:varchar(64);not null"`
	Actor      string    `gorm:"type:varchar(128);not null"`
	OccurredAt time.Time `gorm:"not null"`
}

// TableName specifies the database table name for order events.
func (OrderEventDTO) TableName() string {
	return "order_events"
}

// fromDomain converts an order aggregate to its database representation.
// Pending domain events are mapped alongside so they persist atomically with
// the order row.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	var agentID *uuid.UUID
	if id := aggregate.Agent(); id != nil {
		raw := id.Bytes()
		agentID = &raw
	}

	items := make([]LineItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, LineItemDTO{
			ID:        uuid.New(),
			OrderID:   orderID,
			SellerID:  item.SellerID().Bytes(),
			ProductID: item.ProductID().Bytes(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
		})
	}

	events := make([]OrderEventDTO, 0, len(aggregate.Events()))
	for _, event := range aggregate.Events() {
		events = append(events, OrderEventDTO{
			ID:         event.ID.Bytes(),
			OrderID:    orderID,
			Type:       string(event.Type),
			Actor:      event.Actor,
			OccurredAt: event.OccurredAt,
		})
	}

	destination := AddressDTO{
		Street: aggregate.Destination().Street(),
		City:   aggregate.Destination().City(),
	}
	if geo := aggregate.Destination().Geopoint(); geo != nil {
		destination.Latitude = &geo.Latitude
		destination.Longitude = &geo.Longitude
	}

	settlement := aggregate.Settlement()

	return OrderDTO{
		ID:                orderID,
		Number:            aggregate.Number(),
		BuyerID:           aggregate.BuyerID().Bytes(),
		AgentID:           agentID,
		Destination:       destination,
		Channel:           aggregate.Channel().String(),
		TotalAmount:       aggregate.TotalAmount(),
		CommissionPercent: settlement.CommissionPercent(),
		CommissionAmount:  settlement.CommissionAmount(),
		EstimatedFee:      settlement.EstimatedFee(),
		NetAmount:         settlement.NetAmount(),
		Status:            int(aggregate.Status()),
		PaymentStatus:     int(aggregate.PaymentStatus()),
		CommissionStatus:  int(aggregate.CommissionStatus()),
		PaymentReference:  aggregate.PaymentReference(),
		PayoutReference:   aggregate.PayoutReference(),
		PaidAt:            aggregate.PaidAt(),
		DeliveredAt:       aggregate.DeliveredAt(),
		PaymentReleasedAt: aggregate.PaymentReleasedAt(),
		Version:           aggregate.Version(),
		Items:             items,
		Events:            events,
	}
}

// toDomain converts a database row to an order aggregate using RestoreOrder.
// Persisted events are not loaded back onto the aggregate; the event log is
// read through queries, not through the repository.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}

	var agentID *kernel.UUID
	if dto.AgentID != nil {
		aID, agentErr := kernel.UUIDFromBytes((*dto.AgentID)[:])
		if agentErr != nil {
			return nil, agentErr
		}
		agentID = &aID
	}

	var geopoint *kernel.Geopoint
	if dto.Destination.Latitude != nil && dto.Destination.Longitude != nil {
		geopoint = &kernel.Geopoint{
			Latitude:  *dto.Destination.Latitude,
			Longitude: *dto.Destination.Longitude,
		}
	}

	destination, err := kernel.NewAddress(dto.Destination.Street, dto.Destination.City, geopoint)
	if err != nil {
		return nil, err
	}

	channel, err := kernel.PaymentChannelFromString(dto.Channel)
	if err != nil {
		return nil, err
	}

	settlement, err := services.RestoreSettlement(
		dto.CommissionPercent, dto.CommissionAmount, dto.EstimatedFee, dto.NetAmount)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		sellerID, itemErr := kernel.UUIDFromBytes(itemDTO.SellerID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		productID, itemErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		item, itemErr := order.NewLineItem(sellerID, productID, itemDTO.Quantity, itemDTO.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:                id,
		Number:            dto.Number,
		BuyerID:           buyerID,
		Items:             items,
		Destination:       destination,
		Channel:           channel,
		Settlement:        settlement,
		Status:            order.Status(dto.Status),
		PaymentStatus:     order.PaymentStatus(dto.PaymentStatus),
		CommissionStatus:  order.CommissionStatus(dto.CommissionStatus),
		AgentID:           agentID,
		PaymentReference:  dto.PaymentReference,
		PayoutReference:   dto.PayoutReference,
		PaidAt:            dto.PaidAt,
		DeliveredAt:       dto.DeliveredAt,
		PaymentReleasedAt: dto.PaymentReleasedAt,
		Version:           dto.Version,
	})
}
