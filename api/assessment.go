package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/afyawatch/outbreak-api/schema"
	"github.com/afyawatch/outbreak-api/store"
	"github.com/afyawatch/outbreak-api/triage"
	"github.com/afyawatch/outbreak-api/utils"
)

type assessmentRequest struct {
	PatientName string `json:"patient_name"`
	AgeMonths   *int   `json:"age_months"`
	Residence   string `json:"residence"`
	Gender      string `json:"gender"`
	Condition   string `json:"condition"`

	MeningitisSigns  *triage.MeningitisSigns  `json:"meningitis_signs,omitempty"`
	DehydrationSigns *triage.DehydrationSigns `json:"dehydration_signs,omitempty"`
}

func (s *Server) createAssessment(c *gin.Context) {
	var params assessmentRequest
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}
	if params.PatientName == "" || params.AgeMonths == nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	inTargetGroup, err := s.constraints.IsAgeInRange(*params.AgeMonths)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorNegativeAge, err)
		return
	}

	var classification, guidance string
	var symptoms schema.SymptomSet
	condition := schema.Disease(params.Condition)

	switch condition {
	case schema.Meningitis:
		if params.MeningitisSigns == nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}
		result := triage.ClassifyMeningitis(*params.MeningitisSigns)
		classification = string(result)
		guidance = result.Guidance()
		symptoms = params.MeningitisSigns.SymptomSet()
	case schema.Diarrhoea:
		if params.DehydrationSigns == nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}
		result := triage.ClassifyDiarrhoea(*params.DehydrationSigns)
		classification = string(result)
		guidance = result.Guidance(*params.AgeMonths)
		symptoms = params.DehydrationSigns.SymptomSet()
	default:
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	assessment := schema.PatientAssessment{
		PatientID:      utils.GeneratePatientID(params.PatientName),
		Initials:       utils.Initials(params.PatientName),
		AgeMonths:      *params.AgeMonths,
		Residence:      params.Residence,
		Gender:         params.Gender,
		Condition:      condition,
		Classification: classification,
		Guidance:       guidance,
		Symptoms:       symptoms,
	}

	if err := s.clinicalStore.CreateAssessment(&assessment); err != nil {
		if err == store.ErrDuplicateAssessment {
			abortWithEncoding(c, http.StatusConflict, errorDuplicateAssessment)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorCreateAssessment, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"assessment":      assessment,
		"in_target_group": inTargetGroup,
	})
}

func (s *Server) getAssessment(c *gin.Context) {
	assessment, err := s.clinicalStore.GetAssessment(c.Param("assessmentID"))
	if err != nil {
		if err == store.ErrAssessmentNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorAssessmentNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"assessment": assessment,
	})
}

func (s *Server) listAssessments(c *gin.Context) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}
		limit = parsed
	}

	assessments, err := s.clinicalStore.ListAssessments(schema.Disease(c.Query("condition")), limit)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"assessments": assessments,
	})
}
