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

func GetStations(c *gin.Context) {
	repo := repositories.StationRepo{}
	stations, err := repo.List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil data stasiun", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stations": stations})
}

func GetStationByID(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	repo := repositories.StationRepo{}
	station, err := repo.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			RespondError(c, http.StatusNotFound, "stasiun tidak ditemukan", nil)
			return
		}
		RespondError(c, http.StatusInternalServerError, "gagal mengambil data stasiun", err)
		return
	}
	c.JSON(http.StatusOK, station)
}

type stationPayload struct {
	Name  string `json:"station_name"`
	Code  string `json:"station_code"`
	City  string `json:"city"`
	State string `json:"state"`
}

func (p stationPayload) validate(c *gin.Context) bool {
	if strings.TrimSpace(p.Name) == "" || strings.TrimSpace(p.Code) == "" {
		RespondError(c, http.StatusBadRequest, "nama dan kode stasiun wajib diisi", nil)
		return false
	}
	return true
}

func CreateStation(c *gin.Context) {
	var req stationPayload
	if !BindJSONOrError(c, &req) {
		return
	}
	if !req.validate(c) {
		return
	}
	repo := repositories.StationRepo{}
	exists, err := repo.CodeExists(req.Code)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal memeriksa kode stasiun", err)
		return
	}
	if exists {
		RespondError(c, http.StatusConflict, "kode stasiun sudah digunakan", nil)
		return
	}
	id, err := repo.Create(models.Station{Name: req.Name, Code: req.Code, City: req.City, State: req.State})
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal menyimpan data stasiun", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"station_id": id})
}

func UpdateStation(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	var req stationPayload
	if !BindJSONOrError(c, &req) {
		return
	}
	if !req.validate(c) {
		return
	}
	repo := repositories.StationRepo{}
	err := repo.Update(models.Station{ID: id, Name: req.Name, Code: req.Code, City: req.City, State: req.State})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			RespondError(c, http.StatusNotFound, "stasiun tidak ditemukan", nil)
			return
		}
		RespondError(c, http.StatusInternalServerError, "gagal memperbarui data stasiun", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "data stasiun disimpan"})
}

func DeleteStation(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	repo := repositories.StationRepo{}
	if err := repo.Delete(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			RespondError(c, http.StatusNotFound, "stasiun tidak ditemukan", nil)
			return
		}
		RespondError(c, http.StatusInternalServerError, "gagal menghapus data stasiun", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "stasiun dihapus"})
}
