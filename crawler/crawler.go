package main

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/afyawatch/outbreak-api/alert"
	"github.com/afyawatch/outbreak-api/ingest"
	"github.com/afyawatch/outbreak-api/schema"
	"github.com/afyawatch/outbreak-api/store"
)

type outbreakCrawler struct {
	mongoStore store.MongoStore
	pipeline   *ingest.Pipeline
	sources    []ingest.Source
	fallback   ingest.Source
	window     schema.AgeWindow
}

func (c outbreakCrawler) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), crawlTimeout)
	defer cancel()

	accepted, rejections, usedFallback, err := c.pipeline.IngestFromSources(ctx, c.sources, c.fallback, c.window)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Error("ingestion run")
		return
	}

	log.WithFields(log.Fields{
		"prefix":       logPrefix,
		"accepted":     len(accepted),
		"rejected":     len(rejections),
		"usedFallback": usedFallback,
	}).Info("ingestion run finished")

	if len(accepted) == 0 {
		return
	}

	if err := c.mongoStore.ReplaceRiskAreas(accepted); err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Error("store risk areas")
		return
	}

	if alerts := alert.Check(accepted); len(alerts) > 0 {
		if err := c.mongoStore.CreateAlerts(alerts); err != nil {
			log.WithFields(log.Fields{
				"prefix": logPrefix,
				"error":  err,
			}).Error("store alerts")
		}
	}

	retentionDays := viper.GetInt("ingest.retention_days")
	if retentionDays <= 0 {
		retentionDays = defaultRetentionDays
	}
	if deleted, err := c.mongoStore.DeleteRiskAreasBefore(time.Now().AddDate(0, 0, -retentionDays)); err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Error("expire stale risk areas")
	} else if deleted > 0 {
		log.WithFields(log.Fields{
			"prefix":  logPrefix,
			"deleted": deleted,
		}).Info("expired stale risk areas")
	}
}

// newOutbreakCrawler - one-shot ingestion job for the cron schedule
func newOutbreakCrawler(mongoStore store.MongoStore, pipeline *ingest.Pipeline, sources []ingest.Source, fallback ingest.Source, window schema.AgeWindow) Cron {
	return &outbreakCrawler{
		mongoStore: mongoStore,
		pipeline:   pipeline,
		sources:    sources,
		fallback:   fallback,
		window:     window,
	}
}
