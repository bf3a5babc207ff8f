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

type LaporanHandler struct {
	db *gorm.DB
}

func NewLaporanHandler(db *gorm.DB) *LaporanHandler {
	return &LaporanHandler{db: db}
}

type CreateLaporanRequest struct {
	Periode      string   `json:"periode" binding:"required,max=50"`
	JumlahPasien *int     `json:"jumlah_pasien" binding:"required,gte=0"`
	Pendapatan   *float64 `json:"pendapatan" binding:"required,gte=0"`
}

type UpdateLaporanRequest struct {
	Periode      *string  `json:"periode" binding:"omitempty,max=50"`
	JumlahPasien *int     `json:"jumlah_pasien" binding:"omitempty,gte=0"`
	Pendapatan   *float64 `json:"pendapatan" binding:"omitempty,gte=0"`
}

func (h *LaporanHandler) List(c *gin.Context) {
	var laporan []models.Laporan
	if err := h.db.Find(&laporan).Error; err != nil {
		log.Printf("laporan list: %v", err)
		httperr.Internal(c, "Gagal mengambil data laporan")
		return
	}
	httpresp.OK(c, "Data semua laporan", laporan)
}

func (h *LaporanHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httperr.NotFound(c, "Laporan tidak ditemukan")
		return
	}

	var laporan models.Laporan
	if err := h.db.First(&laporan, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Laporan tidak ditemukan")
			return
		}
		log.Printf("laporan get: %v", err)
		httperr.Internal(c, "Gagal mengambil data laporan")
		return
	}
	httpresp.OK(c, "Detail laporan", laporan)
}

func (h *LaporanHandler) Create(c *gin.Context) {
	var req CreateLaporanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, validation.Fields(err))
		return
	}

	laporan := models.Laporan{
		Periode:      req.Periode,
		JumlahPasien: *req.JumlahPasien,
		Pendapatan:   *req.Pendapatan,
	}

	if err := h.db.Create(&laporan).Error; err != nil {
		log.Printf("laporan create: %v", err)
		httperr.Internal(c, "Gagal menyimpan laporan")
		return
	}
	httpresp.Created(c, "Laporan berhasil disimpan", laporan)
}

func (h *LaporanHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httperr.NotFound(c, "Laporan tidak ditemukan")
		return
	}

	var laporan models.Laporan
	if err := h.db.First(&laporan, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Laporan tidak ditemukan")
			return
		}
		log.Printf("laporan update: %v", err)
		httperr.Internal(c, "Gagal mengambil data laporan")
		return
	}

	var req UpdateLaporanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, validation.Fields(err))
		return
	}

	if req.Periode != nil {
		laporan.Periode = *req.Periode
	}
	if req.JumlahPasien != nil {
		laporan.JumlahPasien = *req.JumlahPasien
	}
	if req.Pendapatan != nil {
		laporan.Pendapatan = *req.Pendapatan
	}

	if err := h.db.Save(&laporan).Error; err != nil {
		log.Printf("laporan update: %v", err)
		httperr.Internal(c, "Gagal memperbarui laporan")
		return
	}
	httpresp.OK(c, "Laporan berhasil diperbarui", laporan)
}

func (h *LaporanHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httperr.NotFound(c, "Laporan tidak ditemukan")
		return
	}

	var laporan models.Laporan
	if err := h.db.First(&laporan, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Laporan tidak ditemukan")
			return
		}
		log.Printf("laporan delete: %v", err)
		httperr.Internal(c, "Gagal mengambil data laporan")
		return
	}

	if err := h.db.Delete(&laporan).Error; err != nil {
		log.Printf("laporan delete: %v", err)
		httperr.Internal(c, "Gagal menghapus laporan")
		return
	}
	httpresp.Deleted(c, "Laporan berhasil dihapus", laporan.ID)
}
