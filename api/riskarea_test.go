package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/afyawatch/outbreak-api/api/mocks"
	"github.com/afyawatch/outbreak-api/constraint"
	"github.com/afyawatch/outbreak-api/schema"
	"github.com/afyawatch/outbreak-api/store"
)

func TestListRiskAreas(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		mongoStore:  m,
		constraints: constraint.NewAgeConstraintManager(),
	}

	expected := []schema.RiskArea{
		{
			Location:     "Turkana County",
			Disease:      schema.Meningitis,
			RiskLevel:    schema.RiskLevelHigh,
			Cases:        67,
			Deaths:       4,
			DateReported: time.Date(2020, 5, 1, 0, 0, 0, 0, time.UTC),
			SourceURL:    "https://www.health.go.ke/disease-surveillance",
			InScope:      true,
		},
	}

	m.EXPECT().ListRiskAreas(store.RiskAreaFilter{
		Disease:   schema.Meningitis,
		RiskLevel: schema.RiskLevelHigh,
	}).Return(expected, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", s.listRiskAreas)

	req := httptest.NewRequest("GET", "/?disease=meningitis&risk_level=high", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		RiskAreas []schema.RiskArea `json:"risk_areas"`
	}
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, expected, jResp.RiskAreas, "wrong data")
}

func TestListRiskAreasBadDate(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := Server{
		mongoStore: mocks.NewMockMongoStore(ctl),
	}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", s.listRiskAreas)

	req := httptest.NewRequest("GET", "/?since=yesterday", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
}

func TestRiskAreaSummary(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		mongoStore: m,
	}

	expected := []store.DiseaseSummary{
		{Disease: schema.Meningitis, Areas: 2, TotalCases: 156, TotalDeaths: 10, HighRisk: 2},
	}

	m.EXPECT().SummarizeRiskAreas().Return(expected, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", s.riskAreaSummary)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Summary []store.DiseaseSummary `json:"summary"`
	}
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, expected, jResp.Summary, "wrong data")
}
