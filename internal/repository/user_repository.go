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

type MongoDBUserRepository struct {
	db *mongo.Database
}

func CreateNewUserRepository(db *mongo.Database) UserRepository {
	return &MongoDBUserRepository{db: db}
}

func (r *MongoDBUserRepository) FindByEmail(ctx context.Context, email string) (user domain.User, err error) {
	err = r.db.Collection("users").FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return user, errs.ErrNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "FindByEmail").Msg("")
		return
	}
	return user, nil
}

func (r *MongoDBUserRepository) FindByID(ctx context.Context, id string) (user domain.User, err error) {
	userID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return user, errs.ErrNotFound
	}

	err = r.db.Collection("users").FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return user, errs.ErrNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "FindByID").Msg("")
		return
	}
	return user, nil
}

func (r *MongoDBUserRepository) Insert(ctx context.Context, user domain.User) (primitive.ObjectID, error) {
	result, err := r.db.Collection("users").InsertOne(ctx, user)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "InsertUser").Msg("")
		return primitive.NilObjectID, err
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *MongoDBUserRepository) Update(ctx context.Context, id string, fields bson.M) error {
	userID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.ErrNotFound
	}

	result, err := r.db.Collection("users").UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$set": fields})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateUser").Msg("")
		return err
	}
	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *MongoDBUserRepository) Count(ctx context.Context) (int64, error) {
	return r.db.Collection("users").CountDocuments(ctx, bson.M{})
}
