package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"medicare-backend/internal/domain"
	"medicare-backend/pkg/errs"
)

// In-memory repository fakes. They implement just enough of the
// contracts for service-level tests; no concurrency support.

type fakeUserRepo struct {
	users map[string]domain.User
}

func newFakeUserRepo(users ...domain.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: map[string]domain.User{}}
	for _, u := range users {
		repo.users[u.ID.Hex()] = u
	}
	return repo
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, errs.ErrNotFound
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id string) (domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return domain.User{}, errs.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) Insert(ctx context.Context, user domain.User) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	user.ID = id
	r.users[id.Hex()] = user
	return id, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, id string, fields bson.M) error {
	if _, ok := r.users[id]; !ok {
		return errs.ErrNotFound
	}
	return nil
}

func (r *fakeUserRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

// stubVerifier answers every challenge with a fixed verdict.
type stubVerifier struct {
	ok bool
}

func (v stubVerifier) Verify(ctx context.Context, token, remoteIP string) bool {
	return v.ok
}

type fakeProductRepo struct {
	products map[string]domain.Product
}

func newFakeProductRepo(products ...domain.Product) *fakeProductRepo {
	repo := &fakeProductRepo{products: map[string]domain.Product{}}
	for _, p := range products {
		repo.products[p.ID.Hex()] = p
	}
	return repo
}

func (r *fakeProductRepo) Find(ctx context.Context, category string, limit int64) ([]domain.Product, error) {
	out := []domain.Product{}
	for _, p := range r.products {
		if category == "" || p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) FindByID(ctx context.Context, id string) (domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return domain.Product{}, errs.ErrProductNotFound
	}
	return p, nil
}

func (r *fakeProductRepo) Insert(ctx context.Context, product domain.Product) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	product.ID = id
	r.products[id.Hex()] = product
	return id, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, id string, fields bson.M) error {
	if _, ok := r.products[id]; !ok {
		return errs.ErrProductNotFound
	}
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.products[id]; !ok {
		return errs.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.products)), nil
}

type fakeCartRepo struct {
	carts    map[string]domain.Cart
	replaces int
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: map[string]domain.Cart{}}
}

func (r *fakeCartRepo) FindByUserID(ctx context.Context, userID string) (domain.Cart, error) {
	cart, ok := r.carts[userID]
	if !ok {
		return domain.Cart{}, errs.ErrNotFound
	}
	return cart, nil
}

func (r *fakeCartRepo) Insert(ctx context.Context, cart domain.Cart) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	cart.ID = id
	r.carts[cart.UserID] = cart
	return id, nil
}

func (r *fakeCartRepo) Replace(ctx context.Context, cart domain.Cart) error {
	r.replaces++
	r.carts[cart.UserID] = cart
	return nil
}

type fakeOrderRepo struct {
	docs map[string]bson.M
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{docs: map[string]bson.M{}}
}

func (r *fakeOrderRepo) FindByUserID(ctx context.Context, userID string) ([]domain.Order, error) {
	return []domain.Order{}, nil
}

func (r *fakeOrderRepo) FindRawByID(ctx context.Context, id string) (bson.M, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, errs.ErrOrderNotFound
	}
	doc, ok := r.docs[id]
	if !ok {
		return nil, errs.ErrOrderNotFound
	}
	return doc, nil
}

func (r *fakeOrderRepo) FindAllRaw(ctx context.Context, limit int64) ([]bson.M, error) {
	out := []bson.M{}
	for _, doc := range r.docs {
		out = append(out, doc)
	}
	return out, nil
}

func (r *fakeOrderRepo) Insert(ctx context.Context, order domain.Order) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	r.docs[id.Hex()] = bson.M{
		"_id":         id,
		"orderId":     order.OrderID,
		"userId":      order.UserID,
		"status":      order.Status,
		"subtotal":    order.Subtotal,
		"shippingFee": order.ShippingFee,
		"tax":         order.Tax,
		"total":       order.Total,
		"createdAt":   order.CreatedAt,
		"updatedAt":   order.UpdatedAt,
	}
	return id, nil
}

func (r *fakeOrderRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string, updatedAt time.Time) error {
	doc, ok := r.docs[id.Hex()]
	if !ok {
		return errs.ErrOrderNotFound
	}
	doc["status"] = status
	doc["updatedAt"] = updatedAt
	return nil
}

func (r *fakeOrderRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.docs)), nil
}

// seed inserts a raw order document directly, bypassing the service.
func (r *fakeOrderRepo) seed(doc bson.M) primitive.ObjectID {
	id := primitive.NewObjectID()
	doc["_id"] = id
	r.docs[id.Hex()] = doc
	return id
}
