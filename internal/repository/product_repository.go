package repository

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"medicare-backend/internal/domain"
	"medicare-backend/pkg/errs"
)

type MongoDBProductRepository struct {
	db *mongo.Database
}

func CreateNewProductRepository(db *mongo.Database) ProductRepository {
	return &MongoDBProductRepository{db: db}
}

func (r *MongoDBProductRepository) Find(ctx context.Context, category string, limit int64) (data []domain.Product, err error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}

	opts := options.Find()
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}

	cursor, err := r.db.Collection("products").Find(ctx, filter, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "FindProducts").Msg("")
		return
	}

	data = []domain.Product{}
	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "FindProducts").Msg("")
		return
	}
	return data, nil
}

func (r *MongoDBProductRepository) FindByID(ctx context.Context, id string) (product domain.Product, err error) {
	productID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return product, errs.ErrProductNotFound
	}

	err = r.db.Collection("products").FindOne(ctx, bson.M{"_id": productID}).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return product, errs.ErrProductNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "FindProductByID").Msg("")
		return
	}
	return product, nil
}

func (r *MongoDBProductRepository) Insert(ctx context.Context, product domain.Product) (primitive.ObjectID, error) {
	result, err := r.db.Collection("products").InsertOne(ctx, product)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "InsertProduct").Msg("")
		return primitive.NilObjectID, err
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *MongoDBProductRepository) Update(ctx context.Context, id string, fields bson.M) error {
	productID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.ErrProductNotFound
	}

	result, err := r.db.Collection("products").UpdateOne(ctx, bson.M{"_id": productID}, bson.M{"$set": fields})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateProduct").Msg("")
		return err
	}
	if result.MatchedCount == 0 {
		return errs.ErrProductNotFound
	}
	return nil
}

func (r *MongoDBProductRepository) Delete(ctx context.Context, id string) error {
	productID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.ErrProductNotFound
	}

	result, err := r.db.Collection("products").DeleteOne(ctx, bson.M{"_id": productID})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteProduct").Msg("")
		return err
	}
	if result.DeletedCount == 0 {
		return errs.ErrProductNotFound
	}
	return nil
}

func (r *MongoDBProductRepository) Count(ctx context.Context) (int64, error) {
	return r.db.Collection("products").CountDocuments(ctx, bson.M{})
}
