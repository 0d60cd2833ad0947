package handlers

import (
	"net/http"
	"strings"

	"railway-backend/internal/http/middleware"
	"railway-backend/internal/services"

	"github.com/gin-gonic/gin"
)

// ViewTicket shows the summary a user confirms before cancelling. Read-only.
func ViewTicket(c *gin.Context) {
	code := strings.TrimSpace(c.Param("pnr"))

	svc := services.CancellationService{RequestID: middleware.GetRequestID(c)}
	summary, err := svc.View(code)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// CancelTicket flips a ticket to Cancelled. Repeating the call reports
// already_cancelled instead of failing.
func CancelTicket(c *gin.Context) {
	code := strings.TrimSpace(c.Param("pnr"))

	svc := services.CancellationService{RequestID: middleware.GetRequestID(c)}
	result, err := svc.Cancel(code)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	message := "tiket berhasil dibatalkan"
	if result.AlreadyCancelled {
		message = "tiket sudah dibatalkan sebelumnya"
	}
	c.JSON(http.StatusOK, gin.H{
		"pnr":               result.PNR,
		"already_cancelled": result.AlreadyCancelled,
		"message":           message,
	})
}

// TicketETicketPDF returns the printable e-ticket inline.
func TicketETicketPDF(c *gin.Context) {
	code := strings.TrimSpace(c.Param("pnr"))

	svc := services.DocsService{RequestID: middleware.GetRequestID(c)}
	data, filename, err := svc.ETicketByPNR(code)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
