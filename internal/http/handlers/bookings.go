package handlers

import (
	"net/http"

	"railway-backend/internal/http/middleware"
	"railway-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type bookingPayload struct {
	TrainID     int64  `json:"train_id"`
	FromStation int64  `json:"from_station"`
	ToStation   int64  `json:"to_station"`
	ClassType   string `json:"class_type"`
	Name        string `json:"passenger_name"`
	Age         int    `json:"passenger_age"`
	Gender      string `json:"passenger_gender"`
}

// CreateBooking books the next free seat on a train for the authenticated
// passenger.
func CreateBooking(c *gin.Context) {
	var req bookingPayload
	if !BindJSONOrError(c, &req) {
		return
	}

	passengerID := middleware.GetUserID(c)
	if passengerID <= 0 {
		RespondError(c, http.StatusUnauthorized, "user tidak dikenali", nil)
		return
	}

	svc := services.BookingService{RequestID: middleware.GetRequestID(c)}
	conf, err := svc.Book(services.BookingRequest{
		TrainID:     req.TrainID,
		FromStation: req.FromStation,
		ToStation:   req.ToStation,
		ClassType:   req.ClassType,
		PassengerID: passengerID,
		Name:        req.Name,
		Age:         req.Age,
		Gender:      req.Gender,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, conf)
}

// MyBookings lists the authenticated passenger's tickets, newest first.
func MyBookings(c *gin.Context) {
	passengerID := middleware.GetUserID(c)
	if passengerID <= 0 {
		RespondError(c, http.StatusUnauthorized, "user tidak dikenali", nil)
		return
	}

	svc := services.BookingService{RequestID: middleware.GetRequestID(c)}
	rows, err := svc.ListByPassenger(passengerID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": rows})
}
