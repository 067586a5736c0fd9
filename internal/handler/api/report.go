package api

import (
	"net/http"

	resdto "campusbook/internal/handler/dto/response"
	"campusbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportQueries queries.ReportQueries
}

func NewReportHandler(reportQueries queries.ReportQueries) *ReportHandler {
	return &ReportHandler{
		reportQueries: reportQueries,
	}
}

// @Summary Resource utilization report
// @Description Aggregate booked hours and booking counts per resource
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.UtilizationResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /reports/utilization [get]
func (h *ReportHandler) ResourceUtilization(c *gin.Context) {
	rows, err := h.reportQueries.ResourceUtilization(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromUtilizationRows(rows))
}
