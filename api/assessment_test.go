package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/afyawatch/outbreak-api/api/mocks"
	"github.com/afyawatch/outbreak-api/constraint"
	"github.com/afyawatch/outbreak-api/schema"
	"github.com/afyawatch/outbreak-api/store"
)

func newAssessmentRouter(s *Server) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/", s.createAssessment)
	router.GET("/:assessmentID", s.getAssessment)
	return router
}

func TestCreateAssessment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c := mocks.NewMockClinicalCore(ctrl)
	c.EXPECT().CreateAssessment(gomock.Any()).Return(nil).Times(1)

	s := Server{
		clinicalStore: c,
		constraints:   constraint.NewAgeConstraintManager(),
	}
	router := newAssessmentRouter(&s)

	body := `{
		"patient_name": "Amina Wanjiru",
		"age_months": 18,
		"residence": "Turkana",
		"gender": "F",
		"condition": "meningitis",
		"meningitis_signs": {"stiff_neck": true, "lp_clear": true}
	}`
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Assessment    schema.PatientAssessment `json:"assessment"`
		InTargetGroup bool                     `json:"in_target_group"`
	}
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.True(t, jResp.InTargetGroup, "18 months is inside the default window")
	assert.Equal(t, "definite", jResp.Assessment.Classification, "wrong classification")
	assert.Equal(t, "AW", jResp.Assessment.Initials, "wrong initials")
}

func TestCreateAssessmentOutsideTargetGroup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c := mocks.NewMockClinicalCore(ctrl)
	c.EXPECT().CreateAssessment(gomock.Any()).Return(nil).Times(1)

	s := Server{
		clinicalStore: c,
		constraints:   constraint.NewAgeConstraintManager(),
	}
	router := newAssessmentRouter(&s)

	body := `{
		"patient_name": "Baraka Odhiambo",
		"age_months": 96,
		"condition": "diarrhoea",
		"dehydration_signs": {"sunken_eyes": true, "restless_irritable": true}
	}`
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		InTargetGroup bool `json:"in_target_group"`
	}
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.False(t, jResp.InTargetGroup, "96 months is outside the default window")
}

func TestCreateAssessmentUnknownCondition(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := Server{
		clinicalStore: mocks.NewMockClinicalCore(ctrl),
		constraints:   constraint.NewAgeConstraintManager(),
	}
	router := newAssessmentRouter(&s)

	body := `{"patient_name": "Amina Wanjiru", "age_months": 18, "condition": "malaria"}`
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
}

func TestGetAssessmentNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c := mocks.NewMockClinicalCore(ctrl)
	c.EXPECT().GetAssessment("missing-id").Return(nil, store.ErrAssessmentNotFound).Times(1)

	s := Server{
		clinicalStore: c,
		constraints:   constraint.NewAgeConstraintManager(),
	}
	router := newAssessmentRouter(&s)

	req := httptest.NewRequest("GET", "/missing-id", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status code")
}
