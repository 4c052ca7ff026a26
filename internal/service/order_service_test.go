package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"medicare-backend/internal/dto"
	"medicare-backend/pkg/errs"
)

func newTestOrderService(repo *fakeOrderRepo, at time.Time) *OrderServiceImpl {
	return &OrderServiceImpl{orderRepo: repo, now: func() time.Time { return at }}
}

func TestCreateOrderSnapshot(t *testing.T) {
	at := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	svc := newTestOrderService(newFakeOrderRepo(), at)

	order, err := svc.CreateOrder(context.Background(), "user-1", dto.CreateOrderRequest{
		Items:       []map[string]interface{}{{"productId": "p1", "quantity": 2, "price": 7.0}},
		Shipping:    map[string]interface{}{"full_name": "Jane"},
		Payment:     map[string]interface{}{"method": "cod"},
		Subtotal:    14.0,
		ShippingFee: 2.0,
		Tax:         1.0,
		Total:       17.0,
	})
	require.NoError(t, err)

	assert.Equal(t, "ORD20240301103000", order.OrderID)
	assert.Equal(t, "user-1", order.UserID)
	assert.Equal(t, "pending", order.Status)
	assert.Equal(t, 17.0, order.Total)
	assert.False(t, order.ID.IsZero())
}

func TestCreateOrderIDCollidesWithinSameSecond(t *testing.T) {
	at := time.Date(2024, 3, 1, 10, 30, 0, 500_000_000, time.UTC)
	svc := newTestOrderService(newFakeOrderRepo(), at)
	ctx := context.Background()
	req := dto.CreateOrderRequest{
		Items:    []map[string]interface{}{},
		Shipping: map[string]interface{}{},
		Payment:  map[string]interface{}{},
	}

	first, err := svc.CreateOrder(ctx, "user-1", req)
	require.NoError(t, err)
	second, err := svc.CreateOrder(ctx, "user-1", req)
	require.NoError(t, err)

	// the human-readable id is second-granular by design; the storage
	// ids stay distinct
	assert.Equal(t, first.OrderID, second.OrderID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestGetOrderNotFoundBeforeForbidden(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := newTestOrderService(repo, time.Now())
	ctx := context.Background()

	_, err := svc.GetOrder(ctx, "user-1", "not-a-hex-id")
	assert.ErrorIs(t, err, errs.ErrOrderNotFound)

	id := repo.seed(bson.M{"userId": "user-2", "status": "pending"})
	_, err = svc.GetOrder(ctx, "user-1", id.Hex())
	assert.ErrorIs(t, err, errs.ErrOrderViewForbidden)
}

func TestGetOrderReturnsNormalizedShape(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := newTestOrderService(repo, time.Now())

	id := repo.seed(bson.M{
		"userId": "user-1",
		"status": "pending",
		"items": []interface{}{
			bson.M{"productId": "p1", "price": 7.0, "quantity": 2},
		},
	})

	out, err := svc.GetOrder(context.Background(), "user-1", id.Hex())
	require.NoError(t, err)

	assert.Equal(t, "Pending", out["status"])
	items := out["items"].([]map[string]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, 14.0, items[0]["subtotal"])
}

func TestCancelPendingOrder(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := newTestOrderService(repo, time.Now())

	id := repo.seed(bson.M{"userId": "user-1", "status": "pending"})

	out, err := svc.UpdateStatus(context.Background(), "user-1", id.Hex(), "cancelled")
	require.NoError(t, err)
	assert.Equal(t, "Cancelled", out["status"])

	// second cancellation: no transition exists back from cancelled
	_, err = svc.UpdateStatus(context.Background(), "user-1", id.Hex(), "cancelled")
	assert.ErrorIs(t, err, errs.ErrOrderNotPending)
}

func TestCancelIsCaseInsensitive(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := newTestOrderService(repo, time.Now())

	id := repo.seed(bson.M{"userId": "user-1", "status": "Pending"})

	out, err := svc.UpdateStatus(context.Background(), "user-1", id.Hex(), "Cancelled")
	require.NoError(t, err)
	assert.Equal(t, "Cancelled", out["status"])
}

func TestCancelShippedOrderRejected(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := newTestOrderService(repo, time.Now())

	id := repo.seed(bson.M{"userId": "user-1", "status": "shipped"})

	_, err := svc.UpdateStatus(context.Background(), "user-1", id.Hex(), "cancelled")
	assert.ErrorIs(t, err, errs.ErrOrderNotPending)

	doc, err := repo.FindRawByID(context.Background(), id.Hex())
	require.NoError(t, err)
	assert.Equal(t, "shipped", doc["status"])
}

func TestOnlyCancellationSupported(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := newTestOrderService(repo, time.Now())

	// the target-status guard runs before the current-status guard
	for _, current := range []string{"pending", "shipped"} {
		id := repo.seed(bson.M{"userId": "user-1", "status": current})

		_, err := svc.UpdateStatus(context.Background(), "user-1", id.Hex(), "shipped")
		assert.ErrorIs(t, err, errs.ErrOnlyCancellation)
	}
}

func TestCancelForeignOrderForbidden(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := newTestOrderService(repo, time.Now())

	id := repo.seed(bson.M{"userId": "user-2", "status": "pending"})

	_, err := svc.UpdateStatus(context.Background(), "user-1", id.Hex(), "cancelled")
	assert.ErrorIs(t, err, errs.ErrOrderEditForbidden)

	doc, err := repo.FindRawByID(context.Background(), id.Hex())
	require.NoError(t, err)
	assert.Equal(t, "pending", doc["status"])
}

func TestCancelMissingStatusTreatedAsPending(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := newTestOrderService(repo, time.Now())

	id := repo.seed(bson.M{"userId": "user-1"})

	out, err := svc.UpdateStatus(context.Background(), "user-1", id.Hex(), "cancelled")
	require.NoError(t, err)
	assert.Equal(t, "Cancelled", out["status"])
}
