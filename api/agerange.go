package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) currentAgeRange(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"age_range": s.constraints.Window(),
	})
}

func (s *Server) updateAgeRange(c *gin.Context) {
	var params struct {
		MinMonths *int `json:"min_months"`
		MaxMonths *int `json:"max_months"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}
	if params.MinMonths == nil || params.MaxMonths == nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if err := s.constraints.SetAgeRange(*params.MinMonths, *params.MaxMonths); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidAgeRange, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"age_range": s.constraints.Window(),
	})
}
