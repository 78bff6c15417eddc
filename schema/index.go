package schema

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBIndexer struct {
	ctx      context.Context
	dbName   string
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDBIndexer(connectionString, dbName string) *MongoDBIndexer {
	ctx := context.Background()
	opts := options.Client().ApplyURI(connectionString)
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}

	return &MongoDBIndexer{
		ctx:      ctx,
		dbName:   dbName,
		Client:   client,
		Database: client.Database(dbName),
	}
}

func (m *MongoDBIndexer) createIndex(collection string, index mongo.IndexModel) error {
	c := m.Database.Collection(collection)
	_, err := c.Indexes().CreateOne(m.ctx, index)
	return err
}

func panicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

func (m *MongoDBIndexer) IndexAll() {
	panicIfError(m.IndexRiskAreaCollection())
	panicIfError(m.IndexAlertCollection())
}

func (m *MongoDBIndexer) IndexRiskAreaCollection() error {
	// the ingestion dedup key
	if err := m.createIndex(RiskAreaCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "location", Value: 1},
			{Key: "disease", Value: 1},
			{Key: "date_reported", Value: 1},
			{Key: "source_url", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}

	if err := m.createIndex(RiskAreaCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "disease", Value: 1},
			{Key: "risk_level", Value: 1},
			{Key: "date_reported", Value: -1},
		},
	}); err != nil {
		return err
	}

	return m.createIndex(RiskAreaCollection, mongo.IndexModel{
		Keys: bson.M{
			"coordinates": "2dsphere",
		},
	})
}

func (m *MongoDBIndexer) IndexAlertCollection() error {
	if err := m.createIndex(AlertCollection, mongo.IndexModel{
		Keys: bson.M{
			"id": 1,
		},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}

	return m.createIndex(AlertCollection, mongo.IndexModel{
		Keys: bson.M{
			"created_at": -1,
		},
	})
}
