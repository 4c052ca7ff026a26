package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"medicare-backend/internal/domain"
	"medicare-backend/internal/dto"
	"medicare-backend/pkg/errs"
)

func intPtr(n int) *int { return &n }

func TestGetCartReturnsEmptyShapeWithoutCreating(t *testing.T) {
	cartRepo := newFakeCartRepo()
	svc := CreateCartService(cartRepo, newFakeProductRepo())

	cart, err := svc.GetCart(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, "user-1", cart.UserID)
	assert.Empty(t, cart.Items)
	assert.Equal(t, 0.0, cart.Total)
	// the read must not have created a document
	assert.Empty(t, cartRepo.carts)
}

func TestAddItemUnknownProduct(t *testing.T) {
	svc := CreateCartService(newFakeCartRepo(), newFakeProductRepo())

	_, err := svc.AddItem(context.Background(), "user-1", dto.AddCartItemRequest{ProductID: primitive.NewObjectID().Hex()})
	assert.ErrorIs(t, err, errs.ErrProductNotFound)
}

func TestAddItemCreatesCartLazily(t *testing.T) {
	product := domain.Product{ID: primitive.NewObjectID(), Name: "Paracetamol 500mg", Price: 7.00}
	cartRepo := newFakeCartRepo()
	svc := CreateCartService(cartRepo, newFakeProductRepo(product))

	cart, err := svc.AddItem(context.Background(), "user-1", dto.AddCartItemRequest{
		ProductID: product.ID.Hex(),
		Quantity:  intPtr(2),
	})
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, product.ID.Hex(), cart.Items[0].ProductID)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, 7.00, cart.Items[0].Price)
	assert.Equal(t, 14.00, cart.Items[0].Subtotal)
	assert.Equal(t, 14.00, cart.Total)
	assert.Len(t, cartRepo.carts, 1)
}

func TestAddItemMergesSameProduct(t *testing.T) {
	product := domain.Product{ID: primitive.NewObjectID(), Name: "Paracetamol 500mg", Price: 7.00}
	productRepo := newFakeProductRepo(product)
	svc := CreateCartService(newFakeCartRepo(), productRepo)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "user-1", dto.AddCartItemRequest{ProductID: product.ID.Hex(), Quantity: intPtr(2)})
	require.NoError(t, err)

	// catalog price changes between adds must not affect the line
	changed := product
	changed.Price = 9.00
	productRepo.products[product.ID.Hex()] = changed

	cart, err := svc.AddItem(ctx, "user-1", dto.AddCartItemRequest{ProductID: product.ID.Hex()})
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assert.Equal(t, 7.00, cart.Items[0].Price)
	assert.Equal(t, 21.00, cart.Items[0].Subtotal)
	assert.Equal(t, 21.00, cart.Total)
}

func TestAddItemAppendsDistinctProductsInOrder(t *testing.T) {
	first := domain.Product{ID: primitive.NewObjectID(), Name: "Paracetamol 500mg", Price: 7.00}
	second := domain.Product{ID: primitive.NewObjectID(), Name: "Vitamin C 1000mg", Price: 24.99}
	svc := CreateCartService(newFakeCartRepo(), newFakeProductRepo(first, second))
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "user-1", dto.AddCartItemRequest{ProductID: first.ID.Hex()})
	require.NoError(t, err)

	cart, err := svc.AddItem(ctx, "user-1", dto.AddCartItemRequest{ProductID: second.ID.Hex(), Quantity: intPtr(3)})
	require.NoError(t, err)

	require.Len(t, cart.Items, 2)
	assert.Equal(t, first.ID.Hex(), cart.Items[0].ProductID)
	assert.Equal(t, second.ID.Hex(), cart.Items[1].ProductID)
	assert.Equal(t, 7.00+3*24.99, cart.Total)
}

func TestAddItemTotalMatchesSumOfSubtotals(t *testing.T) {
	first := domain.Product{ID: primitive.NewObjectID(), Price: 7.00}
	second := domain.Product{ID: primitive.NewObjectID(), Price: 24.99}
	svc := CreateCartService(newFakeCartRepo(), newFakeProductRepo(first, second))
	ctx := context.Background()

	requests := []dto.AddCartItemRequest{
		{ProductID: first.ID.Hex(), Quantity: intPtr(2)},
		{ProductID: second.ID.Hex()},
		{ProductID: first.ID.Hex(), Quantity: intPtr(1)},
		{ProductID: second.ID.Hex(), Quantity: intPtr(4)},
	}

	var cart domain.Cart
	var err error
	for _, req := range requests {
		cart, err = svc.AddItem(ctx, "user-1", req)
		require.NoError(t, err)

		sum := 0.0
		for _, item := range cart.Items {
			sum += item.Subtotal
		}
		assert.Equal(t, sum, cart.Total)
	}

	require.Len(t, cart.Items, 2)
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assert.Equal(t, 5, cart.Items[1].Quantity)
}
