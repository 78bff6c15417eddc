package background

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/afyawatch/outbreak-api/alert"
	"github.com/afyawatch/outbreak-api/constraint"
)

const (
	ingestTimeout        = 2 * time.Minute
	defaultRetentionDays = 90
)

// IngestOutbreaks runs one full ingestion cycle: fetch from the live
// sources, classify and store the accepted records, raise alerts for
// areas over the outbreak thresholds, and expire stale records.
func (m *OutbreakManager) IngestOutbreaks() error {
	ctx, cancel := context.WithTimeout(context.Background(), ingestTimeout)
	defer cancel()

	window := constraint.NewAgeConstraintManagerFromConfig().Window()

	accepted, rejections, usedFallback, err := m.pipeline.IngestFromSources(ctx, m.sources, m.fallback, window)
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"prefix":       logPrefix,
		"accepted":     len(accepted),
		"rejected":     len(rejections),
		"usedFallback": usedFallback,
	}).Info("ingestion cycle finished")

	if len(accepted) == 0 {
		return nil
	}

	if err := m.mongoStore.ReplaceRiskAreas(accepted); err != nil {
		return err
	}

	if alerts := alert.Check(accepted); len(alerts) > 0 {
		if err := m.mongoStore.CreateAlerts(alerts); err != nil {
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
	deleted, err := m.mongoStore.DeleteRiskAreasBefore(time.Now().AddDate(0, 0, -retentionDays))
	if err != nil {
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

	return nil
}

// DispatchAlerts logs the alerts raised over the last day. Field teams
// follow the worker log stream, there is no push channel yet.
func (m *OutbreakManager) DispatchAlerts() error {
	alerts, err := m.mongoStore.ListAlerts(time.Now().AddDate(0, 0, -1))
	if err != nil {
		return err
	}

	for _, a := range alerts {
		log.WithFields(log.Fields{
			"prefix":   logPrefix,
			"location": a.Location,
			"disease":  a.Disease,
			"cases":    a.Cases,
			"deaths":   a.Deaths,
		}).Warn(a.Message)
	}

	return nil
}
