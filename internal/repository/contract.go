package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"medicare-backend/internal/domain"
)

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindByID(ctx context.Context, id string) (domain.User, error)
	Insert(ctx context.Context, user domain.User) (primitive.ObjectID, error)
	Update(ctx context.Context, id string, fields bson.M) error
	Count(ctx context.Context) (int64, error)
}

type ProductRepository interface {
	Find(ctx context.Context, category string, limit int64) ([]domain.Product, error)
	FindByID(ctx context.Context, id string) (domain.Product, error)
	Insert(ctx context.Context, product domain.Product) (primitive.ObjectID, error)
	Update(ctx context.Context, id string, fields bson.M) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type CategoryRepository interface {
	FindAll(ctx context.Context) ([]domain.Category, error)
	Insert(ctx context.Context, category domain.Category) (primitive.ObjectID, error)
}

type CartRepository interface {
	// FindByUserID returns errs.ErrNotFound when the user has no cart yet.
	FindByUserID(ctx context.Context, userID string) (domain.Cart, error)
	Insert(ctx context.Context, cart domain.Cart) (primitive.ObjectID, error)
	// Replace rewrites the whole cart document keyed by its own id.
	Replace(ctx context.Context, cart domain.Cart) error
}

type OrderRepository interface {
	FindByUserID(ctx context.Context, userID string) ([]domain.Order, error)
	// FindRawByID returns the undecoded document so the presenter can
	// heal legacy field shapes. A malformed id reads as not found.
	FindRawByID(ctx context.Context, id string) (bson.M, error)
	FindAllRaw(ctx context.Context, limit int64) ([]bson.M, error)
	Insert(ctx context.Context, order domain.Order) (primitive.ObjectID, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string, updatedAt time.Time) error
	Count(ctx context.Context) (int64, error)
}
