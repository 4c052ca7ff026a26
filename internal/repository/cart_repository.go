package repository

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"medicare-backend/internal/domain"
	"medicare-backend/pkg/errs"
)

type MongoDBCartRepository struct {
	db *mongo.Database
}

func CreateNewCartRepository(db *mongo.Database) CartRepository {
	return &MongoDBCartRepository{db: db}
}

func (r *MongoDBCartRepository) FindByUserID(ctx context.Context, userID string) (cart domain.Cart, err error) {
	err = r.db.Collection("carts").FindOne(ctx, bson.M{"userId": userID}).Decode(&cart)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return cart, errs.ErrNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "FindCartByUserID").Msg("")
		return
	}
	return cart, nil
}

func (r *MongoDBCartRepository) Insert(ctx context.Context, cart domain.Cart) (primitive.ObjectID, error) {
	result, err := r.db.Collection("carts").InsertOne(ctx, cart)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "InsertCart").Msg("")
		return primitive.NilObjectID, err
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

// Replace is a full-document rewrite keyed by the cart's own id. There
// is no compare-and-swap here; concurrent adds for the same user race
// and the last writer wins.
func (r *MongoDBCartRepository) Replace(ctx context.Context, cart domain.Cart) error {
	_, err := r.db.Collection("carts").ReplaceOne(ctx, bson.M{"_id": cart.ID}, cart)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "ReplaceCart").Msg("")
		return err
	}
	return nil
}
