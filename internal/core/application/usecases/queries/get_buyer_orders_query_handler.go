package queries

import (
	"context"

	"github.com/joModes-1/b2b-backend-sub001/internal/core/domain/model/kernel"
	"github.com/joModes-1/b2b-backend-sub001/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetBuyerOrdersQueryHandler lists orders for one buyer from the database.
type GetBuyerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetBuyerOrdersQueryHandler creates a handler for buyer order lists.
func NewGetBuyerOrdersQueryHandler(db *gorm.DB) GetBuyerOrdersQueryHandler {
	return GetBuyerOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are newest-first by order number, which
// embeds the creation timestamp.
func (h GetBuyerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetBuyerOrdersQuery,
) ([]GetBuyerOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			number,
			channel,
			total_amount,
			net_amount,
			status
		FROM orders
		WHERE buyer_id = ?
	`
	args := []any{query.BuyerID().Bytes()}
	if status := query.Status(); status != nil {
		sql += " AND status = ?"
		args = append(args, int(*status))
	}
	sql += " ORDER BY number DESC"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetBuyerOrdersQueryResponse, 0)
	for rows.Next() {
		var id uuid.UUID
		var resp GetBuyerOrdersQueryResponse
		var status int

		err = rows.Scan(&id, &resp.Number, &resp.Channel, &resp.TotalAmount, &resp.NetAmount, &status)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID
		resp.Status = order.Status(status).String()
		orders = append(orders, resp)
	}

	return orders, rows.Err()
}
