package handlers

import (
	"bytes"
	"net/http"
	"strconv"

	"railway-backend/internal/domain"
	"railway-backend/internal/repositories"
	"railway-backend/internal/services"

	"github.com/gin-gonic/gin"
)

func reportFilter(c *gin.Context) (repositories.TicketFilter, bool) {
	var f repositories.TicketFilter
	if raw := c.Query("train_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			RespondError(c, http.StatusBadRequest, "train_id tidak valid", err)
			return f, false
		}
		f.TrainID = id
	}
	f.Status = c.Query("status")
	f.StartDate = c.Query("start_date")
	f.EndDate = c.Query("end_date")
	return f, true
}

func TicketReport(c *gin.Context) {
	f, ok := reportFilter(c)
	if !ok {
		return
	}
	svc := services.ReportsService{}
	rows, err := svc.TicketReport(f)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tickets": rows, "count": len(rows)})
}

func TicketReportCSV(c *gin.Context) {
	f, ok := reportFilter(c)
	if !ok {
		return
	}
	svc := services.ReportsService{}
	rows, err := svc.TicketReport(f)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	var buf bytes.Buffer
	if err := services.WriteReportCSV(&buf, rows); err != nil {
		RespondDomainError(c, domain.InternalError{Err: err})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="ticket_report.csv"`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}
