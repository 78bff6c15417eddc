package store

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/afyawatch/outbreak-api/schema"
)

// The suite needs a reachable mongod; set AFYAWATCH_MONGO_CONN to run it.
type RiskAreaTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
	store        MongoStore
}

func (s *RiskAreaTestSuite) SetupSuite() {
	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}
	if err = mongoClient.Connect(context.Background()); nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err.Error())
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)
	s.store = NewMongoStore(mongoClient, s.testDBName)

	// make sure the test suite is run with a clean environment
	if err := s.testDatabase.Drop(context.Background()); err != nil {
		s.T().Fatal(err)
	}
	schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexAll()
}

func (s *RiskAreaTestSuite) SetupTest() {
	if _, err := s.testDatabase.Collection(schema.RiskAreaCollection).DeleteMany(context.Background(), bson.M{}); err != nil {
		s.T().Fatal(err)
	}
}

func (s *RiskAreaTestSuite) TearDownSuite() {
	_ = s.testDatabase.Drop(context.Background())
	_ = s.mongoClient.Disconnect(context.Background())
}

func testArea(location string, disease schema.Disease, level schema.RiskLevel, daysAgo int) schema.RiskArea {
	return schema.RiskArea{
		Location:     location,
		Disease:      disease,
		RiskLevel:    level,
		Cases:        40,
		Deaths:       1,
		DateReported: time.Now().AddDate(0, 0, -daysAgo).Truncate(time.Millisecond),
		SourceURL:    "https://www.health.go.ke/disease-surveillance",
		InScope:      true,
		IngestedAt:   time.Now().Truncate(time.Millisecond),
	}
}

func (s *RiskAreaTestSuite) TestReplaceRiskAreasUpserts() {
	area := testArea("Turkana County", schema.Meningitis, schema.RiskLevelHigh, 1)
	s.NoError(s.store.ReplaceRiskAreas([]schema.RiskArea{area}))

	// same dedup key, updated counts
	area.Cases = 80
	s.NoError(s.store.ReplaceRiskAreas([]schema.RiskArea{area}))

	areas, err := s.store.ListRiskAreas(RiskAreaFilter{})
	s.NoError(err)
	s.Len(areas, 1)
	s.Equal(80, areas[0].Cases)
}

func (s *RiskAreaTestSuite) TestListRiskAreasFilters() {
	s.NoError(s.store.ReplaceRiskAreas([]schema.RiskArea{
		testArea("Turkana County", schema.Meningitis, schema.RiskLevelHigh, 1),
		testArea("Mombasa County", schema.Diarrhoea, schema.RiskLevelMedium, 2),
		testArea("Kisumu County", schema.Diarrhoea, schema.RiskLevelLow, 10),
	}))

	areas, err := s.store.ListRiskAreas(RiskAreaFilter{Disease: schema.Diarrhoea})
	s.NoError(err)
	s.Len(areas, 2)

	areas, err = s.store.ListRiskAreas(RiskAreaFilter{Disease: schema.Diarrhoea, RiskLevel: schema.RiskLevelMedium})
	s.NoError(err)
	s.Len(areas, 1)
	s.Equal("Mombasa County", areas[0].Location)

	areas, err = s.store.ListRiskAreas(RiskAreaFilter{Since: time.Now().AddDate(0, 0, -5)})
	s.NoError(err)
	s.Len(areas, 2)
}

func (s *RiskAreaTestSuite) TestSummarizeRiskAreas() {
	s.NoError(s.store.ReplaceRiskAreas([]schema.RiskArea{
		testArea("Turkana County", schema.Meningitis, schema.RiskLevelHigh, 1),
		testArea("Mombasa County", schema.Diarrhoea, schema.RiskLevelMedium, 2),
	}))

	summaries, err := s.store.SummarizeRiskAreas()
	s.NoError(err)
	s.Len(summaries, 2)

	for _, summary := range summaries {
		s.Equal(1, summary.Areas)
		s.Equal(40, summary.TotalCases)
		if summary.Disease == schema.Meningitis {
			s.Equal(1, summary.HighRisk)
		} else {
			s.Equal(0, summary.HighRisk)
		}
	}
}

func (s *RiskAreaTestSuite) TestDeleteRiskAreasBefore() {
	s.NoError(s.store.ReplaceRiskAreas([]schema.RiskArea{
		testArea("Turkana County", schema.Meningitis, schema.RiskLevelHigh, 1),
		testArea("Kisumu County", schema.Diarrhoea, schema.RiskLevelLow, 30),
	}))

	deleted, err := s.store.DeleteRiskAreasBefore(time.Now().AddDate(0, 0, -20))
	s.NoError(err)
	s.Equal(int64(1), deleted)
}

func (s *RiskAreaTestSuite) TestDedupKeyIndexIsUnique() {
	area := testArea("Turkana County", schema.Meningitis, schema.RiskLevelHigh, 1)
	s.NoError(s.store.ReplaceRiskAreas([]schema.RiskArea{area}))

	_, err := s.testDatabase.Collection(schema.RiskAreaCollection).InsertOne(context.Background(), area)
	s.Require().Error(err)

	errs, ok := err.(mongo.WriteException)
	s.Require().True(ok)
	s.Require().Len(errs.WriteErrors, 1)
	s.Equal(DuplicateKeyCode, errs.WriteErrors[0].Code)
}

func (s *RiskAreaTestSuite) TestReplaceRiskAreasConcurrentSameKey() {
	area := testArea("Mombasa County", schema.Diarrhoea, schema.RiskLevelMedium, 1)

	var wg sync.WaitGroup
	errCh := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errCh <- s.store.ReplaceRiskAreas([]schema.RiskArea{area})
		}()
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		s.NoError(err)
	}

	areas, err := s.store.ListRiskAreas(RiskAreaFilter{})
	s.NoError(err)
	s.Len(areas, 1)
}

func TestRiskAreaSuite(t *testing.T) {
	connURI := os.Getenv("AFYAWATCH_MONGO_CONN")
	if connURI == "" {
		t.Skip("AFYAWATCH_MONGO_CONN not set")
	}

	suite.Run(t, &RiskAreaTestSuite{
		connURI:    connURI,
		testDBName: "test_outbreak",
	})
}
