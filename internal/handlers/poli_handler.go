package handlers

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rsmedika/hospital-api/internal/httperr"
	"github.com/rsmedika/hospital-api/internal/httpresp"
	"github.com/rsmedika/hospital-api/internal/models"
	"github.com/rsmedika/hospital-api/internal/validation"
)

type PoliHandler struct {
	db *gorm.DB
}

func NewPoliHandler(db *gorm.DB) *PoliHandler {
	return &PoliHandler{db: db}
}

type CreatePoliRequest struct {
	NamaPoli string `json:"nama_poli" binding:"required,max=100"`
}

type UpdatePoliRequest struct {
	NamaPoli *string `json:"nama_poli" binding:"omitempty,max=100"`
}

func (h *PoliHandler) List(c *gin.Context) {
	var poli []models.Poli
	if err := h.db.Find(&poli).Error; err != nil {
		log.Printf("poli list: %v", err)
		httperr.Internal(c, "Gagal mengambil data poli")
		return
	}
	httpresp.OK(c, "Daftar poli", poli)
}

func (h *PoliHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httperr.NotFound(c, "Poli tidak ditemukan")
		return
	}

	var poli models.Poli
	if err := h.db.First(&poli, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Poli tidak ditemukan")
			return
		}
		log.Printf("poli get: %v", err)
		httperr.Internal(c, "Gagal mengambil data poli")
		return
	}
	httpresp.OK(c, "Detail poli", poli)
}

func (h *PoliHandler) Create(c *gin.Context) {
	var req CreatePoliRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, validation.Fields(err))
		return
	}

	poli := models.Poli{NamaPoli: req.NamaPoli}
	if err := h.db.Create(&poli).Error; err != nil {
		log.Printf("poli create: %v", err)
		httperr.Internal(c, "Gagal menyimpan poli")
		return
	}
	httpresp.Created(c, "Poli berhasil ditambahkan", poli)
}

func (h *PoliHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httperr.NotFound(c, "Poli tidak ditemukan")
		return
	}

	var poli models.Poli
	if err := h.db.First(&poli, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Poli tidak ditemukan")
			return
		}
		log.Printf("poli update: %v", err)
		httperr.Internal(c, "Gagal mengambil data poli")
		return
	}

	var req UpdatePoliRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, validation.Fields(err))
		return
	}

	if req.NamaPoli != nil {
		poli.NamaPoli = *req.NamaPoli
	}

	if err := h.db.Save(&poli).Error; err != nil {
		log.Printf("poli update: %v", err)
		httperr.Internal(c, "Gagal memperbarui poli")
		return
	}
	httpresp.OK(c, "Poli berhasil diperbarui", poli)
}

func (h *PoliHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httperr.NotFound(c, "Poli tidak ditemukan")
		return
	}

	var poli models.Poli
	if err := h.db.First(&poli, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Poli tidak ditemukan")
			return
		}
		log.Printf("poli delete: %v", err)
		httperr.Internal(c, "Gagal mengambil data poli")
		return
	}

	if err := h.db.Delete(&poli).Error; err != nil {
		log.Printf("poli delete: %v", err)
		httperr.Internal(c, "Gagal menghapus poli")
		return
	}
	httpresp.Message(c, "Poli berhasil dihapus")
}
