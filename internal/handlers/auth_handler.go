package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/rsmedika/hospital-api/internal/httperr"
	"github.com/rsmedika/hospital-api/internal/middleware"
	"github.com/rsmedika/hospital-api/internal/models"
	"github.com/rsmedika/hospital-api/internal/token"
	"github.com/rsmedika/hospital-api/internal/validation"
)

type AuthHandler struct {
	db     *gorm.DB
	tokens *token.Manager
}

func NewAuthHandler(db *gorm.DB, tokens *token.Manager) *AuthHandler {
	return &AuthHandler{db: db, tokens: tokens}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email,max=100"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
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
	}

	if err := h.db.Create(&user).Error; err != nil {
		log.Printf("register: create user: %v", err)
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	}

	tok, err := h.tokens.Issue(c.Request.Context(), user.ID)
	if err != nil {
		log.Printf("register: issue token: %v", err)
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Register berhasil",
		"token":   tok,
		"user":    user,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, validation.Fields(err))
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.Unauthorized(c, "Email atau password salah!")
			return
		}
		log.Printf("login: lookup user: %v", err)
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "Email atau password salah!")
		return
	}

	// Token lama tetap berlaku; login hanya menambah sesi baru.
	tok, err := h.tokens.Issue(c.Request.Context(), user.ID)
	if err != nil {
		log.Printf("login: issue token: %v", err)
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login berhasil",
		"token":   tok,
		"user":    user,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	jti, ok := c.Get(middleware.ContextTokenID)
	if !ok {
		httperr.Unauthorized(c, "Tidak ada user yang login")
		return
	}

	if err := h.tokens.Revoke(c.Request.Context(), jti.(string)); err != nil {
		log.Printf("logout: revoke token: %v", err)
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logout berhasil"})
}
