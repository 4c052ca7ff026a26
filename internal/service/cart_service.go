package service

import (
	"context"
	"errors"
	"time"

	"medicare-backend/internal/domain"
	"medicare-backend/internal/dto"
	"medicare-backend/internal/repository"
	"medicare-backend/pkg/errs"
)

type CartServiceImpl struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	now         func() time.Time
}

func CreateCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) CartService {
	return &CartServiceImpl{cartRepo: cartRepo, productRepo: productRepo, now: time.Now}
}

func (s *CartServiceImpl) GetCart(ctx context.Context, userID string) (domain.Cart, error) {
	cart, err := s.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			// A pure read never creates the document.
			return domain.Cart{UserID: userID, Items: []domain.CartItem{}, Total: 0}, nil
		}
		return domain.Cart{}, err
	}
	return cart, nil
}

// AddItem merges the product into the user's cart. An existing line for
// the same product id keeps its stored price and grows by the requested
// quantity; a new line copies the product's current price. The cart
// total is recomputed from scratch and the whole document replaced.
//
// There is no stock check and no read-modify-write guard here; two
// concurrent adds for the same user can lose one increment.
func (s *CartServiceImpl) AddItem(ctx context.Context, userID string, req dto.AddCartItemRequest) (domain.Cart, error) {
	product, err := s.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		return domain.Cart{}, err
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	cart, err := s.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, errs.ErrNotFound) {
			return domain.Cart{}, err
		}
		cart = domain.Cart{
			UserID:    userID,
			Items:     []domain.CartItem{},
			Total:     0,
			UpdatedAt: s.now(),
		}
		id, err := s.cartRepo.Insert(ctx, cart)
		if err != nil {
			return domain.Cart{}, err
		}
		cart.ID = id
	}

	found := false
	for i := range cart.Items {
		// Product identity is plain string equality.
		if cart.Items[i].ProductID == req.ProductID {
			cart.Items[i].Quantity += quantity
			cart.Items[i].Subtotal = float64(cart.Items[i].Quantity) * cart.Items[i].Price
			found = true
			break
		}
	}

	if !found {
		cart.Items = append(cart.Items, domain.CartItem{
			ProductID: product.ID.Hex(),
			Quantity:  quantity,
			Price:     product.Price,
			Subtotal:  product.Price * float64(quantity),
		})
	}

	cart.RecomputeTotal()
	cart.UpdatedAt = s.now()

	if err := s.cartRepo.Replace(ctx, cart); err != nil {
		return domain.Cart{}, err
	}
	return cart, nil
}
