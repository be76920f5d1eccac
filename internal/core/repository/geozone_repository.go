package repository

import (
	"context"
	"time"

	"gctrack/internal/core/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type GeozoneRepository interface {
	Create(zone *model.Geozone) error
	FindByAccountID(accountID string) ([]*model.Geozone, error)
}

type MongoGeozoneRepository struct {
	collection *mongo.Collection
}

func NewMongoGeozoneRepository(db *mongo.Database) *MongoGeozoneRepository {
	return &MongoGeozoneRepository{
		collection: db.Collection("geozones"),
	}
}

func (r *MongoGeozoneRepository) Create(zone *model.Geozone) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := r.collection.InsertOne(ctx, zone)
	return err
}

func (r *MongoGeozoneRepository) FindByAccountID(accountID string) ([]*model.Geozone, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{"accountid": accountID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var zones []*model.Geozone
	if err = cursor.All(ctx, &zones); err != nil {
		return nil, err
	}
	return zones, nil
}
