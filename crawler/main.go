package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/afyawatch/outbreak-api/constraint"
	"github.com/afyawatch/outbreak-api/external/geoinfo"
	"github.com/afyawatch/outbreak-api/external/moh"
	"github.com/afyawatch/outbreak-api/ingest"
	"github.com/afyawatch/outbreak-api/store"
)

const (
	logPrefix            = "cron"
	mohKenyaURL          = "https://www.health.go.ke/press-releases"
	whoAfroURL           = "https://www.afro.who.int/health-topics/disease-outbreaks/outbreaks-and-other-emergencies-updates"
	crawlTimeout         = 2 * time.Minute
	defaultRetentionDays = 90
	defaultTimeout       = 15 * time.Second
)

type Cron interface {
	Run()
}

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("afyawatch")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("afyawatch")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	var configFile string

	initialCtx, cancelInitialization := context.WithCancel(context.Background())

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	var err error

	// initialise mongodb connections
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		log.Panicf("create mongo client with error: %s", err)
	}

	err = mongoClient.Connect(initialCtx)
	if nil != err {
		log.Panicf("connect mongo database with error: %s", err)
	}

	mStore := store.NewMongoStore(
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

	kenyaURL := viper.GetString("crawler.moh_kenya.url")
	if kenyaURL == "" {
		kenyaURL = mohKenyaURL
	}
	afroURL := viper.GetString("crawler.who_afro.url")
	if afroURL == "" {
		afroURL = whoAfroURL
	}

	sources := []ingest.Source{
		moh.NewMOHKenya(kenyaURL),
		moh.NewWHOAfro(afroURL),
	}
	window := constraint.NewAgeConstraintManagerFromConfig().Window()

	crawler := newOutbreakCrawler(mStore, ingest.NewPipeline(nil, geoClient), sources, moh.NewMockSource(), window)
	crawler.Run()

	if cancelInitialization != nil {
		cancelInitialization()
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if mongoClient != nil {
		log.Info("Shutting down mongo store")
		_ = mongoClient.Disconnect(ctx)
	}
}
