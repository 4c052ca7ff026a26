package service

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"medicare-backend/internal/domain"
	"medicare-backend/internal/dto"
	"medicare-backend/internal/presenter"
	"medicare-backend/internal/repository"
	"medicare-backend/pkg/errs"
)

type OrderServiceImpl struct {
	orderRepo repository.OrderRepository
	now       func() time.Time
}

func CreateOrderService(orderRepo repository.OrderRepository) OrderService {
	return &OrderServiceImpl{orderRepo: orderRepo, now: time.Now}
}

// CreateOrder persists a checkout snapshot. The human-readable order id
// is second-granular; two orders in the same second share it. The
// storage _id stays the real key, so the ORD id is reference-only.
func (s *OrderServiceImpl) CreateOrder(ctx context.Context, userID string, req dto.CreateOrderRequest) (domain.Order, error) {
	now := s.now()

	items := make([]bson.M, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, bson.M(item))
	}

	order := domain.Order{
		OrderID:     "ORD" + now.Format("20060102150405"),
		UserID:      userID,
		Items:       items,
		Shipping:    bson.M(req.Shipping),
		Payment:     bson.M(req.Payment),
		Subtotal:    req.Subtotal,
		ShippingFee: req.ShippingFee,
		Tax:         req.Tax,
		Total:       req.Total,
		Status:      domain.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	id, err := s.orderRepo.Insert(ctx, order)
	if err != nil {
		return domain.Order{}, err
	}
	order.ID = id
	return order, nil
}

func (s *OrderServiceImpl) ListOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.orderRepo.FindByUserID(ctx, userID)
}

// GetOrder confirms existence before ownership: a missing or malformed
// id is NotFound, someone else's order is Forbidden.
func (s *OrderServiceImpl) GetOrder(ctx context.Context, userID, orderID string) (map[string]interface{}, error) {
	doc, err := s.orderRepo.FindRawByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if owner, _ := doc["userId"].(string); owner != userID {
		return nil, errs.ErrOrderViewForbidden
	}

	return presenter.Order(doc), nil
}

// UpdateStatus allows exactly one transition from the end-user surface:
// pending to cancelled. The requested target is checked before the
// current state, so asking for anything but cancellation is rejected
// regardless of where the order sits.
func (s *OrderServiceImpl) UpdateStatus(ctx context.Context, userID, orderID, status string) (map[string]interface{}, error) {
	doc, err := s.orderRepo.FindRawByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if owner, _ := doc["userId"].(string); owner != userID {
		return nil, errs.ErrOrderEditForbidden
	}

	currentRaw, _ := doc["status"].(string)
	current := strings.ToLower(currentRaw)
	if current == "" {
		current = domain.StatusPending
	}

	if strings.ToLower(status) != domain.StatusCancelled {
		return nil, errs.ErrOnlyCancellation
	}
	if current != domain.StatusPending {
		return nil, errs.ErrOrderNotPending
	}

	objectID, _ := primitive.ObjectIDFromHex(orderID)
	if err := s.orderRepo.UpdateStatus(ctx, objectID, domain.StatusCancelled, s.now().UTC()); err != nil {
		return nil, err
	}

	updated, err := s.orderRepo.FindRawByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return presenter.Order(updated), nil
}
