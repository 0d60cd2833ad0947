package handlers

import (
	"database/sql"
	"errors"
	"net/http"

	"railway-backend/internal/domain/models"
	"railway-backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

func GetSchedules(c *gin.Context) {
	repo := repositories.ScheduleRepo{}
	stops, err := repo.List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil data jadwal", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedules": stops})
}

type schedulePayload struct {
	TrainID       int64  `json:"train_id"`
	StationID     int64  `json:"station_id"`
	ArrivalTime   string `json:"arrival_time"`
	DepartureTime string `json:"departure_time"`
	Sequence      int    `json:"sequence"`
}

func CreateSchedule(c *gin.Context) {
	var req schedulePayload
	if !BindJSONOrError(c, &req) {
		return
	}
	switch {
	case req.TrainID <= 0 || req.StationID <= 0:
		RespondError(c, http.StatusBadRequest, "kereta dan stasiun wajib diisi", nil)
		return
	case req.Sequence <= 0:
		RespondError(c, http.StatusBadRequest, "urutan pemberhentian harus bilangan positif", nil)
		return
	}
	repo := repositories.ScheduleRepo{}
	id, err := repo.Add(models.ScheduleStop{
		TrainID:       req.TrainID,
		StationID:     req.StationID,
		ArrivalTime:   req.ArrivalTime,
		DepartureTime: req.DepartureTime,
		Sequence:      req.Sequence,
	})
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal menyimpan jadwal", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"schedule_id": id})
}

func DeleteSchedule(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	repo := repositories.ScheduleRepo{}
	if err := repo.Delete(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			RespondError(c, http.StatusNotFound, "jadwal tidak ditemukan", nil)
			return
		}
		RespondError(c, http.StatusInternalServerError, "gagal menghapus jadwal", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "jadwal dihapus"})
}
