package api

import (
	"context"
	"net/http"
	"time"

	"github.com/RichardKnop/machinery/v1"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/afyawatch/outbreak-api/constraint"
	"github.com/afyawatch/outbreak-api/logmodule"
	"github.com/afyawatch/outbreak-api/schema"
	"github.com/afyawatch/outbreak-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	mongoStore    store.MongoStore
	clinicalStore store.ClinicalCore

	// Age window configuration shared with the ingestion worker
	constraints *constraint.AgeConstraintManager

	// job pool enqueuer
	backgroundEnqueuer *machinery.Server
}

// NewServer new instance of server
func NewServer(
	ormDB *gorm.DB,
	mongoClient *mongo.Client,
	backgroundEnqueuer *machinery.Server,
	constraints *constraint.AgeConstraintManager) *Server {
	return &Server{
		mongoStore:         store.NewMongoStore(mongoClient, viper.GetString("mongo.database")),
		clinicalStore:      store.NewClinicalStore(ormDB),
		constraints:        constraints,
		backgroundEnqueuer: backgroundEnqueuer,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))
	r.Use(cors.Default())

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.GET("/information", s.information)

	riskAreaRoute := apiRoute.Group("/risk-areas")
	{
		riskAreaRoute.GET("", s.listRiskAreas)
		riskAreaRoute.GET("/summary", s.riskAreaSummary)
	}

	apiRoute.GET("/age-range", s.currentAgeRange)
	apiRoute.PUT("/age-range", s.updateAgeRange)

	assessmentRoute := apiRoute.Group("/assessments")
	{
		assessmentRoute.POST("", s.createAssessment)
		assessmentRoute.GET("", s.listAssessments)
		assessmentRoute.GET("/:assessmentID", s.getAssessment)
	}

	apiRoute.GET("/alerts", s.listAlerts)

	secretRoute := r.Group("/secret")
	secretRoute.Use(logmodule.Ginrus("Secret"))
	secretRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.admin")))
	{
		secretRoute.POST("/ingest", s.triggerIngestion)
	}

	metricRoute := r.Group("/metrics")
	metricRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.metric")))
	{
		metricRoute.GET("/health", s.healthCheck)
	}

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) apikeyAuthentication(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("API-KEY") != key {
			abortWithEncoding(c, http.StatusUnauthorized, errorInvalidAPIKey)
			return
		}
		c.Next()
	}
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"diseases":       []schema.Disease{schema.Meningitis, schema.Diarrhoea},
			"age_window":     s.constraints.Window(),
			"system_version": "AfyaWatch 0.1",
		},
	})
}

func (s *Server) healthCheck(c *gin.Context) {
	if err := s.mongoStore.Ping(); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}
	if err := s.clinicalStore.Ping(); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	c.JSON(code, obj)
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
