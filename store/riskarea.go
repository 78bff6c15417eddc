package store

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/afyawatch/outbreak-api/schema"
)

var (
	ErrRiskAreaDecode = fmt.Errorf("decode risk area record fail")
)

// RiskAreaFilter narrows retrieval for the visualization layer. Zero
// values mean "no constraint".
type RiskAreaFilter struct {
	Disease   schema.Disease
	RiskLevel schema.RiskLevel
	Since     time.Time
	Until     time.Time
}

// DiseaseSummary is the aggregated dashboard view of one disease.
type DiseaseSummary struct {
	Disease     schema.Disease `bson:"_id" json:"disease"`
	Areas       int            `bson:"areas" json:"areas"`
	TotalCases  int            `bson:"total_cases" json:"total_cases"`
	TotalDeaths int            `bson:"total_deaths" json:"total_deaths"`
	HighRisk    int            `bson:"high_risk" json:"high_risk"`
}

// RiskAreaOperator - append-only risk area storage with filtered
// retrieval
type RiskAreaOperator interface {
	ReplaceRiskAreas(areas []schema.RiskArea) error
	ListRiskAreas(filter RiskAreaFilter) ([]schema.RiskArea, error)
	SummarizeRiskAreas() ([]DiseaseSummary, error)
	DeleteRiskAreasBefore(timeBefore time.Time) (int64, error)
}

// ReplaceRiskAreas upserts each record on the ingestion dedup key so a
// re-ingested observation replaces its previous values instead of
// accumulating duplicates.
func (m *mongoDB) ReplaceRiskAreas(areas []schema.RiskArea) error {
	if len(areas) == 0 {
		log.WithFields(log.Fields{"prefix": mongoLogPrefix}).Debug("no risk area record to update")
		return nil
	}

	collection := m.client.Database(m.database).Collection(schema.RiskAreaCollection)

	for _, area := range areas {
		filter := bson.M{
			"location":      area.Location,
			"disease":       area.Disease,
			"date_reported": area.DateReported,
			"source_url":    area.SourceURL,
		}
		opts := options.Replace().SetUpsert(true)

		ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
		_, err := collection.ReplaceOne(ctx, filter, area, opts)
		cancel()
		if err != nil {
			// a concurrent upsert on the same dedup key already wrote this record
			if errs, hasErr := err.(mongo.WriteException); hasErr {
				if 1 == len(errs.WriteErrors) && DuplicateKeyCode == errs.WriteErrors[0].Code {
					log.WithField("prefix", mongoLogPrefix).Warnf("risk area update with error: %s", err)
					continue
				}
			}
			return err
		}
	}

	log.WithFields(log.Fields{"prefix": mongoLogPrefix, "records": len(areas)}).Debug("replaced risk areas")
	return nil
}

func (m *mongoDB) ListRiskAreas(filter RiskAreaFilter) ([]schema.RiskArea, error) {
	query := bson.M{}
	if filter.Disease != "" {
		query["disease"] = filter.Disease
	}
	if filter.RiskLevel != "" {
		query["risk_level"] = filter.RiskLevel
	}

	dateRange := bson.M{}
	if !filter.Since.IsZero() {
		dateRange["$gte"] = filter.Since
	}
	if !filter.Until.IsZero() {
		dateRange["$lte"] = filter.Until
	}
	if len(dateRange) > 0 {
		query["date_reported"] = dateRange
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"date_reported": -1})
	cursor, err := m.client.Database(m.database).Collection(schema.RiskAreaCollection).Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	areas := []schema.RiskArea{}
	for cursor.Next(ctx) {
		var area schema.RiskArea
		if err := cursor.Decode(&area); err != nil {
			log.WithFields(log.Fields{"prefix": mongoLogPrefix, "error": err}).Error("decode risk area")
			return nil, ErrRiskAreaDecode
		}
		areas = append(areas, area)
	}

	return areas, cursor.Err()
}

func (m *mongoDB) SummarizeRiskAreas() ([]DiseaseSummary, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$disease"},
			{Key: "areas", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "total_cases", Value: bson.D{{Key: "$sum", Value: "$cases"}}},
			{Key: "total_deaths", Value: bson.D{{Key: "$sum", Value: "$deaths"}}},
			{Key: "high_risk", Value: bson.D{{Key: "$sum", Value: bson.D{
				{Key: "$cond", Value: bson.A{
					bson.D{{Key: "$eq", Value: bson.A{"$risk_level", schema.RiskLevelHigh}}},
					1,
					0,
				}},
			}}}},
		}}},
	}

	cursor, err := m.client.Database(m.database).Collection(schema.RiskAreaCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	summaries := []DiseaseSummary{}
	for cursor.Next(ctx) {
		var summary DiseaseSummary
		if err := cursor.Decode(&summary); err != nil {
			return nil, ErrRiskAreaDecode
		}
		summaries = append(summaries, summary)
	}

	return summaries, cursor.Err()
}

// DeleteRiskAreasBefore is retention cleanup for the crawler, the core
// itself never deletes records.
func (m *mongoDB) DeleteRiskAreasBefore(timeBefore time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	filter := bson.M{"date_reported": bson.D{{Key: "$lte", Value: timeBefore}}}
	res, err := m.client.Database(m.database).Collection(schema.RiskAreaCollection).DeleteMany(ctx, filter)
	if err != nil {
		log.WithField("prefix", mongoLogPrefix).Warnf("risk area delete unused record with error: %s", err)
		return 0, err
	}

	log.WithFields(log.Fields{"prefix": mongoLogPrefix, "records": res.DeletedCount}).Debug("deleted stale risk areas")
	return res.DeletedCount, nil
}
