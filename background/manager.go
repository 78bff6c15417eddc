package background

import (
	"errors"

	"github.com/RichardKnop/machinery/v1"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/afyawatch/outbreak-api/external/geoinfo"
	"github.com/afyawatch/outbreak-api/external/moh"
	"github.com/afyawatch/outbreak-api/ingest"
	"github.com/afyawatch/outbreak-api/store"
)

const logPrefix = "background"

const (
	defaultMOHKenyaURL = "https://www.health.go.ke/press-releases"
	defaultWHOAfroURL  = "https://www.afro.who.int/health-topics/disease-outbreaks/outbreaks-and-other-emergencies-updates"
)

// OutbreakManager wires the shared stores, the ingestion pipeline and
// the upstream sources for all background workers.
type OutbreakManager struct {
	mongoStore store.MongoStore

	pipeline *ingest.Pipeline
	sources  []ingest.Source
	fallback ingest.Source

	taskServer *machinery.Server

	worker *machinery.Worker
}

func New(mongoClient *mongo.Client, taskServer *machinery.Server) *OutbreakManager {
	mongoStore := store.NewMongoStore(
		mongoClient,
		viper.GetString("mongo.database"),
	)

	var geoClient geoinfo.GeoInfo
	if key := viper.GetString("map.key"); key != "" {
		client, err := geoinfo.New(key)
		if err != nil {
			log.WithFields(log.Fields{
				"prefix": logPrefix,
				"error":  err,
			}).Warn("geocoding client unavailable")
		} else {
			geoClient = client
		}
	}

	return &OutbreakManager{
		mongoStore: mongoStore,
		pipeline:   ingest.NewPipeline(nil, geoClient),
		sources:    liveSources(),
		fallback:   moh.NewMockSource(),
		taskServer: taskServer,
	}
}

func liveSources() []ingest.Source {
	kenyaURL := viper.GetString("crawler.moh_kenya.url")
	if kenyaURL == "" {
		kenyaURL = defaultMOHKenyaURL
	}
	afroURL := viper.GetString("crawler.who_afro.url")
	if afroURL == "" {
		afroURL = defaultWHOAfroURL
	}

	return []ingest.Source{
		moh.NewMOHKenya(kenyaURL),
		moh.NewWHOAfro(afroURL),
	}
}

func (m *OutbreakManager) RegisterTask(name string, taskFunc interface{}) error {
	return m.taskServer.RegisterTask(name, taskFunc)
}

// Run spawn workers to execute background jobs
func (m *OutbreakManager) Run() error {
	if m.worker != nil {
		return errors.New("background worker has started")
	}
	m.worker = m.taskServer.NewWorker("outbreak-worker", 5)
	return m.worker.Launch()
}
