package order

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/natenaltsega2225/AbeGarage-Backend/entity"
)

// Repository defines DB operations for orders. Implementations translate
// storage failures into apperr values the same way the customer repository
// does.
type Repository interface {
	// CreateOrderGraph inserts the order row, its info, its status entry
	// and all service items in one transaction. Either the whole graph
	// exists afterwards or none of it does.
	CreateOrderGraph(ctx context.Context, o *entity.Order, info *entity.OrderInfo, status *entity.OrderStatusEntry, items []entity.OrderServiceItem) error
	// ListOrders runs the flat left-join query spanning orders, order
	// infos, status entries and service items, and folds the row stream
	// into nested views. One view per distinct order id, in the query's own
	// newest-first order; orders without service items carry an empty
	// Services slice.
	ListOrders(ctx context.Context) ([]View, error)
	MarkItemCompleted(ctx context.Context, orderID, itemID uuid.UUID) (int64, error)
	SetStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) (int64, error)
	SetCompletionDate(ctx context.Context, orderID uuid.UUID, completedAt time.Time) (int64, error)
}
