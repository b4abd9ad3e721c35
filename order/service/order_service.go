package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/natenaltsega2225/AbeGarage-Backend/apperr"
	customerpkg "github.com/natenaltsega2225/AbeGarage-Backend/customer"
	"github.com/natenaltsega2225/AbeGarage-Backend/entity"
	orderpkg "github.com/natenaltsega2225/AbeGarage-Backend/order"
)

// orderService implements order.Service.
type orderService struct {
	repo      orderpkg.Repository
	customers customerpkg.Repository
	notifier  orderpkg.Notifier
}

// NewOrderService constructs an order.Service. notifier may be nil, in which
// case lifecycle events are not published.
func NewOrderService(repo orderpkg.Repository, customers customerpkg.Repository, notifier orderpkg.Notifier) orderpkg.Service {
	return &orderService{repo: repo, customers: customers, notifier: notifier}
}

func (s *orderService) notify(event string, payload any) {
	if s.notifier != nil {
		s.notifier.BroadcastOrderEvent(event, payload)
	}
}

func (s *orderService) CreateOrder(ctx context.Context, req orderpkg.CreateOrderRequest) (*orderpkg.View, error) {
	if req.CustomerHash == "" {
		return nil, apperr.Validationf("customer_hash is required")
	}
	if len(req.ServiceIDs) == 0 {
		return nil, apperr.Validationf("at least one service is required")
	}
	if req.TotalPriceCents < 0 {
		return nil, apperr.Validationf("order total price must not be negative")
	}

	customerID, err := s.customers.ResolveHash(ctx, req.CustomerHash)
	if err != nil {
		return nil, err
	}
	if customerID == uuid.Nil {
		return nil, apperr.NotFoundf("customer not found")
	}

	o := &entity.Order{
		ID:          uuid.New(),
		CustomerID:  customerID,
		EmployeeID:  req.EmployeeID,
		VehicleID:   req.VehicleID,
		Description: req.Description,
		OrderDate:   time.Now().UTC(),
	}
	info := &entity.OrderInfo{
		ID:                      uuid.New(),
		TotalPriceCents:         req.TotalPriceCents,
		EstimatedCompletionDate: req.EstimatedCompletionDate,
		AdditionalRequest:       req.AdditionalRequest,
		NotesForInternalUse:     req.NotesForInternalUse,
		NotesForCustomer:        req.NotesForCustomer,
	}
	status := &entity.OrderStatusEntry{
		ID:     uuid.New(),
		Status: entity.OrderOpen,
	}
	items := make([]entity.OrderServiceItem, 0, len(req.ServiceIDs))
	for _, sid := range req.ServiceIDs {
		items = append(items, entity.OrderServiceItem{
			ID:        uuid.New(),
			ServiceID: sid,
		})
	}

	if err := s.repo.CreateOrderGraph(ctx, o, info, status, items); err != nil {
		return nil, err
	}

	view := &orderpkg.View{
		OrderID:                 o.ID,
		CustomerID:              o.CustomerID,
		EmployeeID:              o.EmployeeID,
		VehicleID:               o.VehicleID,
		Description:             o.Description,
		OrderDate:               o.OrderDate,
		TotalPriceCents:         info.TotalPriceCents,
		EstimatedCompletionDate: info.EstimatedCompletionDate,
		AdditionalRequest:       info.AdditionalRequest,
		NotesForInternalUse:     info.NotesForInternalUse,
		NotesForCustomer:        info.NotesForCustomer,
		Services:                make([]orderpkg.ServiceView, 0, len(items)),
	}
	for _, it := range items {
		view.Services = append(view.Services, orderpkg.ServiceView{
			ItemID:    it.ID,
			ServiceID: it.ServiceID,
		})
	}

	s.notify("order.created", view)
	return view, nil
}

func (s *orderService) ListOrders(ctx context.Context) ([]orderpkg.View, error) {
	return s.repo.ListOrders(ctx)
}

func (s *orderService) MarkServiceCompleted(ctx context.Context, orderID, itemID uuid.UUID) error {
	n, err := s.repo.MarkItemCompleted(ctx, orderID, itemID)
	if err != nil {
		return err
	}
	if n == 0 {
		return apperr.NotFoundf("order service not found")
	}
	s.notify("order.service_completed", map[string]any{
		"order_id":         orderID,
		"order_service_id": itemID,
	})
	return nil
}

func (s *orderService) CompleteOrder(ctx context.Context, orderID uuid.UUID) error {
	n, err := s.repo.SetStatus(ctx, orderID, entity.OrderCompleted)
	if err != nil {
		return err
	}
	if n == 0 {
		return apperr.NotFoundf("order not found")
	}
	completedAt := time.Now().UTC()
	if _, err := s.repo.SetCompletionDate(ctx, orderID, completedAt); err != nil {
		return err
	}
	s.notify("order.status_changed", map[string]any{
		"order_id":     orderID,
		"order_status": entity.OrderCompleted,
	})
	return nil
}
