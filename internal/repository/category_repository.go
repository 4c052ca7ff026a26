package repository

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"medicare-backend/internal/domain"
)

type MongoDBCategoryRepository struct {
	db *mongo.Database
}

func CreateNewCategoryRepository(db *mongo.Database) CategoryRepository {
	return &MongoDBCategoryRepository{db: db}
}

func (r *MongoDBCategoryRepository) FindAll(ctx context.Context) (data []domain.Category, err error) {
	cursor, err := r.db.Collection("categories").Find(ctx, bson.M{})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "FindCategories").Msg("")
		return
	}

	data = []domain.Category{}
	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "FindCategories").Msg("")
		return
	}
	return data, nil
}

func (r *MongoDBCategoryRepository) Insert(ctx context.Context, category domain.Category) (primitive.ObjectID, error) {
	result, err := r.db.Collection("categories").InsertOne(ctx, category)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "InsertCategory").Msg("")
		return primitive.NilObjectID, err
	}
	return result.InsertedID.(primitive.ObjectID), nil
}
