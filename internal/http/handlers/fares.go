package handlers

import (
	"database/sql"
	"errors"
	"net/http"

	"railway-backend/internal/domain/models"
	"railway-backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

func GetFares(c *gin.Context) {
	repo := repositories.FareRepo{}
	fares, err := repo.List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil data tarif", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"fares": fares})
}

type farePayload struct {
	FromStation int64   `json:"from_station"`
	ToStation   int64   `json:"to_station"`
	ClassType   string  `json:"class_type"`
	Amount      float64 `json:"fare_amount"`
}

func (p farePayload) validate(c *gin.Context) bool {
	switch {
	case p.FromStation <= 0 || p.ToStation <= 0:
		RespondError(c, http.StatusBadRequest, "stasiun asal dan tujuan wajib diisi", nil)
	case p.FromStation == p.ToStation:
		RespondError(c, http.StatusBadRequest, "stasiun asal dan tujuan tidak boleh sama", nil)
	case !models.ValidClass(p.ClassType):
		RespondError(c, http.StatusBadRequest, "kelas tidak dikenal", nil)
	case p.Amount < 0:
		RespondError(c, http.StatusBadRequest, "tarif tidak boleh negatif", nil)
	default:
		return true
	}
	return false
}

func CreateFare(c *gin.Context) {
	var req farePayload
	if !BindJSONOrError(c, &req) {
		return
	}
	if !req.validate(c) {
		return
	}
	repo := repositories.FareRepo{}
	exists, err := repo.Exists(req.FromStation, req.ToStation, req.ClassType)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal memeriksa aturan tarif", err)
		return
	}
	if exists {
		RespondError(c, http.StatusConflict, "aturan tarif untuk rute dan kelas ini sudah ada", nil)
		return
	}
	id, err := repo.Create(models.FareRule{
		FromStation: req.FromStation,
		ToStation:   req.ToStation,
		ClassType:   req.ClassType,
		Amount:      req.Amount,
	})
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal menyimpan aturan tarif", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"fare_id": id})
}

func UpdateFare(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	var req farePayload
	if !BindJSONOrError(c, &req) {
		return
	}
	if !req.validate(c) {
		return
	}
	repo := repositories.FareRepo{}
	err := repo.Update(models.FareRule{
		ID:          id,
		FromStation: req.FromStation,
		ToStation:   req.ToStation,
		ClassType:   req.ClassType,
		Amount:      req.Amount,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			RespondError(c, http.StatusNotFound, "aturan tarif tidak ditemukan", nil)
			return
		}
		RespondError(c, http.StatusInternalServerError, "gagal memperbarui aturan tarif", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "aturan tarif disimpan"})
}

func DeleteFare(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	repo := repositories.FareRepo{}
	if err := repo.Delete(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			RespondError(c, http.StatusNotFound, "aturan tarif tidak ditemukan", nil)
			return
		}
		RespondError(c, http.StatusInternalServerError, "gagal menghapus aturan tarif", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "aturan tarif dihapus"})
}
