package api

import (
	"net/http"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"
)

// TaskIngestOutbreaks is consumed by the background worker.
const TaskIngestOutbreaks = "outbreak_ingest"

// triggerIngestion enqueues a background ingestion run instead of
// scraping inline, so the request returns immediately.
func (s *Server) triggerIngestion(c *gin.Context) {
	signature := &tasks.Signature{
		Name: TaskIngestOutbreaks,
	}

	if _, err := s.backgroundEnqueuer.SendTask(signature); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorEnqueueIngestion, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"result": "ok",
	})
}
