package repository

import (
	"context"
	"time"

	"gctrack/internal/core/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type EventRepository interface {
	// Create stores an event. The (account, device, timestamp, statusCode)
	// tuple is the identity key; storing the same key twice overwrites.
	Create(event *model.EventRecord) error
	FindByDevice(accountID, deviceID string) ([]*model.EventRecord, error)
	FindLatestByDevice(accountID, deviceID string) (*model.EventRecord, error)
}

type MongoEventRepository struct {
	collection *mongo.Collection
}

func NewMongoEventRepository(db *mongo.Database) *MongoEventRepository {
	return &MongoEventRepository{
		collection: db.Collection("events"),
	}
}

func eventKey(event *model.EventRecord) bson.M {
	return bson.M{
		"accountid":  event.AccountID,
		"deviceid":   event.DeviceID,
		"timestamp":  event.Timestamp,
		"statuscode": event.StatusCode,
	}
}

func (r *MongoEventRepository) Create(event *model.EventRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, eventKey(event), event, opts)
	return err
}

func (r *MongoEventRepository) FindByDevice(accountID, deviceID string) ([]*model.EventRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"timestamp": 1})
	cursor, err := r.collection.Find(ctx, bson.M{"accountid": accountID, "deviceid": deviceID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []*model.EventRecord
	if err = cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *MongoEventRepository) FindLatestByDevice(accountID, deviceID string) (*model.EventRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.FindOne().SetSort(bson.M{"timestamp": -1})
	var event model.EventRecord
	err := r.collection.FindOne(ctx, bson.M{"accountid": accountID, "deviceid": deviceID}, opts).Decode(&event)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &event, err
}
