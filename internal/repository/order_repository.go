package repository

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"medicare-backend/internal/domain"
	"medicare-backend/pkg/errs"
)

type MongoDBOrderRepository struct {
	db *mongo.Database
}

func CreateNewOrderRepository(db *mongo.Database) OrderRepository {
	return &MongoDBOrderRepository{db: db}
}

func (r *MongoDBOrderRepository) FindByUserID(ctx context.Context, userID string) (data []domain.Order, err error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.db.Collection("orders").Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "FindOrdersByUserID").Msg("")
		return
	}

	data = []domain.Order{}
	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "FindOrdersByUserID").Msg("")
		return
	}
	return data, nil
}

func (r *MongoDBOrderRepository) FindRawByID(ctx context.Context, id string) (doc bson.M, err error) {
	orderID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errs.ErrOrderNotFound
	}

	err = r.db.Collection("orders").FindOne(ctx, bson.M{"_id": orderID}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errs.ErrOrderNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "FindRawOrderByID").Msg("")
		return nil, err
	}
	return doc, nil
}

func (r *MongoDBOrderRepository) FindAllRaw(ctx context.Context, limit int64) (data []bson.M, err error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}

	cursor, err := r.db.Collection("orders").Find(ctx, bson.M{}, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "FindAllRawOrders").Msg("")
		return
	}

	data = []bson.M{}
	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "FindAllRawOrders").Msg("")
		return
	}
	return data, nil
}

func (r *MongoDBOrderRepository) Insert(ctx context.Context, order domain.Order) (primitive.ObjectID, error) {
	result, err := r.db.Collection("orders").InsertOne(ctx, order)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "InsertOrder").Msg("")
		return primitive.NilObjectID, err
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *MongoDBOrderRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string, updatedAt time.Time) error {
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": updatedAt}}

	result, err := r.db.Collection("orders").UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateOrderStatus").Msg("")
		return err
	}
	if result.MatchedCount == 0 {
		return errs.ErrOrderNotFound
	}
	return nil
}

func (r *MongoDBOrderRepository) Count(ctx context.Context) (int64, error) {
	return r.db.Collection("orders").CountDocuments(ctx, bson.M{})
}
