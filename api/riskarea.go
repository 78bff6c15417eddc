package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/afyawatch/outbreak-api/schema"
	"github.com/afyawatch/outbreak-api/store"
)

const dateQueryLayout = "2006-01-02"

func (s *Server) listRiskAreas(c *gin.Context) {
	var params struct {
		Disease   string `form:"disease"`
		RiskLevel string `form:"risk_level"`
		Since     string `form:"since"`
		Until     string `form:"until"`
	}

	if err := c.Bind(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	filter := store.RiskAreaFilter{
		Disease:   schema.Disease(params.Disease),
		RiskLevel: schema.RiskLevel(params.RiskLevel),
	}

	if params.Since != "" {
		since, err := parseDateQuery(params.Since)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
			return
		}
		filter.Since = since
	}
	if params.Until != "" {
		until, err := parseDateQuery(params.Until)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
			return
		}
		filter.Until = until
	}

	areas, err := s.mongoStore.ListRiskAreas(filter)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorQueryRiskAreas, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"risk_areas": areas,
	})
}

func (s *Server) riskAreaSummary(c *gin.Context) {
	summaries, err := s.mongoStore.SummarizeRiskAreas()
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorQueryRiskAreas, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"summary": summaries,
	})
}

func (s *Server) listAlerts(c *gin.Context) {
	var params struct {
		Since string `form:"since"`
	}
	if err := c.Bind(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	var since time.Time
	if params.Since != "" {
		parsed, err := parseDateQuery(params.Since)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
			return
		}
		since = parsed
	}

	alerts, err := s.mongoStore.ListAlerts(since)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorQueryAlerts, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"alerts": alerts,
	})
}

func parseDateQuery(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse(dateQueryLayout, value)
}
