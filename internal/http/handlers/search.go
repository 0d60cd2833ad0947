package handlers

import (
	"net/http"
	"strconv"

	"railway-backend/internal/services"

	"github.com/gin-gonic/gin"
)

// SearchTrains lists trains serving from -> to with live availability.
// GET /api/search?from=1&to=2
func SearchTrains(c *gin.Context) {
	from, err1 := strconv.ParseInt(c.Query("from"), 10, 64)
	to, err2 := strconv.ParseInt(c.Query("to"), 10, 64)
	if err1 != nil || err2 != nil {
		RespondError(c, http.StatusBadRequest, "parameter from/to tidak valid", nil)
		return
	}

	svc := services.SearchService{}
	options, err := svc.Search(from, to)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trains": options})
}
