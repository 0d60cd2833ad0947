package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"

	"railway-backend/internal/domain/models"
	"railway-backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

func GetTrains(c *gin.Context) {
	repo := repositories.TrainRepo{}
	trains, err := repo.List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil data kereta", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trains": trains})
}

func GetTrainByID(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	repo := repositories.TrainRepo{}
	train, err := repo.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			RespondError(c, http.StatusNotFound, "kereta tidak ditemukan", nil)
			return
		}
		RespondError(c, http.StatusInternalServerError, "gagal mengambil data kereta", err)
		return
	}
	c.JSON(http.StatusOK, train)
}

type trainPayload struct {
	Name       string `json:"train_name"`
	Type       string `json:"train_type"`
	TotalSeats int    `json:"total_seats"`
}

func (p trainPayload) validate(c *gin.Context) bool {
	if strings.TrimSpace(p.Name) == "" || strings.TrimSpace(p.Type) == "" {
		RespondError(c, http.StatusBadRequest, "nama dan tipe kereta wajib diisi", nil)
		return false
	}
	if p.TotalSeats <= 0 {
		RespondError(c, http.StatusBadRequest, "total kursi harus bilangan positif", nil)
		return false
	}
	return true
}

func CreateTrain(c *gin.Context) {
	var req trainPayload
	if !BindJSONOrError(c, &req) {
		return
	}
	if !req.validate(c) {
		return
	}
	repo := repositories.TrainRepo{}
	id, err := repo.Create(models.Train{Name: req.Name, Type: req.Type, TotalSeats: req.TotalSeats})
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal menyimpan data kereta", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"train_id": id})
}

func UpdateTrain(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	var req trainPayload
	if !BindJSONOrError(c, &req) {
		return
	}
	if !req.validate(c) {
		return
	}
	repo := repositories.TrainRepo{}
	err := repo.Update(models.Train{ID: id, Name: req.Name, Type: req.Type, TotalSeats: req.TotalSeats})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			RespondError(c, http.StatusNotFound, "kereta tidak ditemukan", nil)
			return
		}
		RespondError(c, http.StatusInternalServerError, "gagal memperbarui data kereta", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "data kereta disimpan"})
}

func DeleteTrain(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	repo := repositories.TrainRepo{}
	if err := repo.Delete(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			RespondError(c, http.StatusNotFound, "kereta tidak ditemukan", nil)
			return
		}
		RespondError(c, http.StatusInternalServerError, "gagal menghapus data kereta", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "kereta dihapus"})
}
