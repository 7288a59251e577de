package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) datasetSummary(c *gin.Context) {
	if s.report == nil {
		abortWithEncoding(c, http.StatusServiceUnavailable, errorDatasetUnavailable)
		return
	}
	c.JSON(http.StatusOK, s.report.Summary)
}

func (s *Server) datasetDistributions(c *gin.Context) {
	if s.report == nil {
		abortWithEncoding(c, http.StatusServiceUnavailable, errorDatasetUnavailable)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"distributions": s.report.Distributions,
	})
}

func (s *Server) datasetCorrelations(c *gin.Context) {
	if s.report == nil {
		abortWithEncoding(c, http.StatusServiceUnavailable, errorDatasetUnavailable)
		return
	}
	c.JSON(http.StatusOK, s.report.Correlations)
}
