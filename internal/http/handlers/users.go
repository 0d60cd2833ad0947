package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"

	"railway-backend/internal/domain/models"
	"railway-backend/internal/repositories"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func GetUsers(c *gin.Context) {
	repo := repositories.UserRepo{}
	users, err := repo.List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil data pengguna", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

type userPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

func CreateUser(c *gin.Context) {
	var req userPayload
	if !BindJSONOrError(c, &req) {
		return
	}
	switch {
	case strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Email) == "":
		RespondError(c, http.StatusBadRequest, "username dan email wajib diisi", nil)
		return
	case len(req.Password) < 6:
		RespondError(c, http.StatusBadRequest, "password minimal 6 karakter", nil)
		return
	case req.Role != "admin" && req.Role != "user":
		RespondError(c, http.StatusBadRequest, "role tidak dikenal", nil)
		return
	}
	repo := repositories.UserRepo{}
	exists, err := repo.Exists(req.Username, req.Email)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal memeriksa data pengguna", err)
		return
	}
	if exists {
		RespondError(c, http.StatusConflict, "username atau email sudah terdaftar", nil)
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal memproses password", err)
		return
	}
	id, err := repo.Create(models.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         req.Role,
		Email:        req.Email,
		Phone:        req.Phone,
	})
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal menyimpan data pengguna", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user_id": id})
}

func UpdateUser(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	var req userPayload
	if !BindJSONOrError(c, &req) {
		return
	}
	switch {
	case strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Email) == "":
		RespondError(c, http.StatusBadRequest, "username dan email wajib diisi", nil)
		return
	case req.Role != "admin" && req.Role != "user":
		RespondError(c, http.StatusBadRequest, "role tidak dikenal", nil)
		return
	case req.Password != "" && len(req.Password) < 6:
		RespondError(c, http.StatusBadRequest, "password minimal 6 karakter", nil)
		return
	}
	u := models.User{
		ID:       id,
		Username: req.Username,
		Role:     req.Role,
		Email:    req.Email,
		Phone:    req.Phone,
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			RespondError(c, http.StatusInternalServerError, "gagal memproses password", err)
			return
		}
		u.PasswordHash = string(hash)
	}
	repo := repositories.UserRepo{}
	if err := repo.Update(u); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			RespondError(c, http.StatusNotFound, "pengguna tidak ditemukan", nil)
			return
		}
		RespondError(c, http.StatusInternalServerError, "gagal memperbarui data pengguna", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "data pengguna disimpan"})
}

func DeleteUser(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	repo := repositories.UserRepo{}
	if err := repo.Delete(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			RespondError(c, http.StatusNotFound, "pengguna tidak ditemukan", nil)
			return
		}
		RespondError(c, http.StatusInternalServerError, "gagal menghapus pengguna", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "pengguna dihapus"})
}
