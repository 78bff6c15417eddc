package store

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/afyawatch/outbreak-api/schema"
)

// AlertOperator - persistence for outbreak alerts
type AlertOperator interface {
	CreateAlerts(alerts []schema.Alert) error
	ListAlerts(since time.Time) ([]schema.Alert, error)
}

func (m *mongoDB) CreateAlerts(alerts []schema.Alert) error {
	if len(alerts) == 0 {
		return nil
	}

	data := make([]interface{}, len(alerts))
	for i, a := range alerts {
		data[i] = a
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	opts := options.InsertMany().SetOrdered(false)
	res, err := m.client.Database(m.database).Collection(schema.AlertCollection).InsertMany(ctx, data, opts)
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{"prefix": mongoLogPrefix, "records": len(res.InsertedIDs)}).Debug("created alerts")
	return nil
}

func (m *mongoDB) ListAlerts(since time.Time) ([]schema.Alert, error) {
	query := bson.M{}
	if !since.IsZero() {
		query["created_at"] = bson.D{{Key: "$gte", Value: since}}
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := m.client.Database(m.database).Collection(schema.AlertCollection).Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	alerts := []schema.Alert{}
	for cursor.Next(ctx) {
		var a schema.Alert
		if err := cursor.Decode(&a); err != nil {
			return nil, err
		}
		alerts = append(alerts, a)
	}

	return alerts, cursor.Err()
}
