package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoRecord struct {
	Key   string `bson:"_id"`
	Value string `bson:"value"`
}

type mongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewMongo connects the store to a MongoDB records collection.
func NewMongo(uri string) (Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connecting to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("pinging MongoDB: %w", err)
	}

	return &mongoStore{
		client:     client,
		collection: client.Database("alumniconnect").Collection("records"),
	}, nil
}

func opCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 5*time.Second)
}

func (s *mongoStore) Get(key string) (string, bool, error) {
	ctx, cancel := opCtx()
	defer cancel()

	var rec mongoRecord
	err := s.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&rec)
	if err == mongo.ErrNoDocuments {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return rec.Value, true, nil
}

func (s *mongoStore) Put(key, value string) error {
	ctx, cancel := opCtx()
	defer cancel()

	_, err := s.collection.UpdateOne(ctx,
		bson.M{"_id": key},
		bson.M{"$set": bson.M{"value": value}},
		options.Update().SetUpsert(true))
	return err
}

func (s *mongoStore) Delete(key string) error {
	ctx, cancel := opCtx()
	defer cancel()

	_, err := s.collection.DeleteOne(ctx, bson.M{"_id": key})
	return err
}

func (s *mongoStore) Close() error {
	ctx, cancel := opCtx()
	defer cancel()
	return s.client.Disconnect(ctx)
}
