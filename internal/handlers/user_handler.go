package handlers

import (
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/rsmedika/hospital-api/internal/httperr"
	"github.com/rsmedika/hospital-api/internal/httpresp"
	"github.com/rsmedika/hospital-api/internal/models"
	"github.com/rsmedika/hospital-api/internal/validation"
)

type UserHandler struct {
	db *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db}
}

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email,max=100"`
	Password string `json:"password" binding:"required,min=6"`
	IsAdmin  bool   `json:"is_admin"`
}

type UpdateUserRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=100"`
	Email    *string `json:"email" binding:"omitempty,email,max=100"`
	Password *string `json:"password" binding:"omitempty,min=6"`
	IsAdmin  *bool   `json:"is_admin"`
}

func (h *UserHandler) List(c *gin.Context) {
	var users []models.User
	if err := h.db.Find(&users).Error; err != nil {
		log.Printf("user list: %v", err)
		httperr.Internal(c, "Gagal mengambil data pengguna")
		return
	}
	httpresp.OK(c, "Daftar pengguna", users)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httperr.NotFound(c, "User tidak ditemukan")
		return
	}

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "User tidak ditemukan")
			return
		}
		log.Printf("user get: %v", err)
		httperr.Internal(c, "Gagal mengambil data pengguna")
		return
	}
	httpresp.OK(c, "Detail pengguna", user)
}

func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, validation.Fields(err))
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.Unprocessable(c, map[string]string{"email": "email sudah terdaftar"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
		IsAdmin:      req.IsAdmin,
	}

	if err := h.db.Create(&user).Error; err != nil {
		log.Printf("user create: %v", err)
		httperr.Internal(c, "Gagal menyimpan pengguna")
		return
	}
	httpresp.Created(c, "User berhasil ditambahkan", user)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httperr.NotFound(c, "User tidak ditemukan")
		return
	}

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "User tidak ditemukan")
			return
		}
		log.Printf("user update: %v", err)
		httperr.Internal(c, "Gagal mengambil data pengguna")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, validation.Fields(err))
		return
	}

	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))

		var count int64
		h.db.Model(&models.User{}).Where("email = ? AND id <> ?", email, user.ID).Count(&count)
		if count > 0 {
			httperr.Unprocessable(c, map[string]string{"email": "email sudah terdaftar"})
			return
		}
		user.Email = email
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			httperr.Internal(c, "Terjadi kesalahan pada server")
			return
		}
		user.PasswordHash = string(hashed)
	}
	if req.IsAdmin != nil {
		user.IsAdmin = *req.IsAdmin
	}

	if err := h.db.Save(&user).Error; err != nil {
		log.Printf("user update: %v", err)
		httperr.Internal(c, "Gagal memperbarui pengguna")
		return
	}
	httpresp.OK(c, "User berhasil diperbarui", user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httperr.NotFound(c, "User tidak ditemukan")
		return
	}

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "User tidak ditemukan")
			return
		}
		log.Printf("user delete: %v", err)
		httperr.Internal(c, "Gagal mengambil data pengguna")
		return
	}

	if err := h.db.Delete(&user).Error; err != nil {
		log.Printf("user delete: %v", err)
		httperr.Internal(c, "Gagal menghapus pengguna")
		return
	}
	httpresp.Message(c, "User berhasil dihapus")
}
