package handlers

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rsmedika/hospital-api/internal/httperr"
	"github.com/rsmedika/hospital-api/internal/httpresp"
	"github.com/rsmedika/hospital-api/internal/models"
	"github.com/rsmedika/hospital-api/internal/validation"
)

type PendaftaranHandler struct {
	db *gorm.DB
}

func NewPendaftaranHandler(db *gorm.DB) *PendaftaranHandler {
	return &PendaftaranHandler{db: db}
}

type CreatePendaftaranRequest struct {
	PasienID   uint   `json:"pasien_id" binding:"required"`
	PoliID     uint   `json:"poli_id" binding:"required"`
	StatusBpjs string `json:"status_bpjs" binding:"required,oneof=Ya Tidak"`
}

type UpdatePendaftaranRequest struct {
	PasienID   *uint   `json:"pasien_id"`
	PoliID     *uint   `json:"poli_id"`
	StatusBpjs *string `json:"status_bpjs" binding:"omitempty,oneof=Ya Tidak"`
}

func (h *PendaftaranHandler) List(c *gin.Context) {
	var pendaftaran []models.Pendaftaran
	if err := h.db.
		Preload("Pasien").
		Preload("Poli").
		Order("waktu_daftar DESC").
		Find(&pendaftaran).Error; err != nil {

		log.Printf("pendaftaran list: %v", err)
		httperr.Internal(c, "Gagal mengambil data pendaftaran")
		return
	}
	httpresp.OK(c, "Data semua pendaftaran", pendaftaran)
}

func (h *PendaftaranHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httperr.NotFound(c, "Pendaftaran tidak ditemukan")
		return
	}

	var pendaftaran models.Pendaftaran
	if err := h.db.
		Preload("Pasien").
		Preload("Poli").
		First(&pendaftaran, id).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Pendaftaran tidak ditemukan")
			return
		}
		log.Printf("pendaftaran get: %v", err)
		httperr.Internal(c, "Gagal mengambil data pendaftaran")
		return
	}
	httpresp.OK(c, "Detail pendaftaran", pendaftaran)
}

func (h *PendaftaranHandler) Create(c *gin.Context) {
	var req CreatePendaftaranRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, validation.Fields(err))
		return
	}

	if ok, err := recordExists(h.db, &models.Pasien{}, req.PasienID); err != nil {
		log.Printf("pendaftaran create: %v", err)
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	} else if !ok {
		httperr.Unprocessable(c, map[string]string{"pasien_id": "pasien tidak ditemukan"})
		return
	}

	if ok, err := recordExists(h.db, &models.Poli{}, req.PoliID); err != nil {
		log.Printf("pendaftaran create: %v", err)
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	} else if !ok {
		httperr.Unprocessable(c, map[string]string{"poli_id": "poli tidak ditemukan"})
		return
	}

	pendaftaran := models.Pendaftaran{
		PasienID:    req.PasienID,
		PoliID:      req.PoliID,
		StatusBpjs:  req.StatusBpjs,
		WaktuDaftar: time.Now(),
	}

	if err := h.db.Create(&pendaftaran).Error; err != nil {
		log.Printf("pendaftaran create: %v", err)
		httperr.Internal(c, "Gagal menyimpan pendaftaran")
		return
	}
	httpresp.Created(c, "Pendaftaran berhasil disimpan", pendaftaran)
}

func (h *PendaftaranHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httperr.NotFound(c, "Pendaftaran tidak ditemukan")
		return
	}

	var pendaftaran models.Pendaftaran
	if err := h.db.First(&pendaftaran, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Pendaftaran tidak ditemukan")
			return
		}
		log.Printf("pendaftaran update: %v", err)
		httperr.Internal(c, "Gagal mengambil data pendaftaran")
		return
	}

	var req UpdatePendaftaranRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, validation.Fields(err))
		return
	}

	if req.PasienID != nil {
		if ok, err := recordExists(h.db, &models.Pasien{}, *req.PasienID); err != nil {
			log.Printf("pendaftaran update: %v", err)
			httperr.Internal(c, "Terjadi kesalahan pada server")
			return
		} else if !ok {
			httperr.Unprocessable(c, map[string]string{"pasien_id": "pasien tidak ditemukan"})
			return
		}
		pendaftaran.PasienID = *req.PasienID
	}

	if req.PoliID != nil {
		if ok, err := recordExists(h.db, &models.Poli{}, *req.PoliID); err != nil {
			log.Printf("pendaftaran update: %v", err)
			httperr.Internal(c, "Terjadi kesalahan pada server")
			return
		} else if !ok {
			httperr.Unprocessable(c, map[string]string{"poli_id": "poli tidak ditemukan"})
			return
		}
		pendaftaran.PoliID = *req.PoliID
	}

	if req.StatusBpjs != nil {
		pendaftaran.StatusBpjs = *req.StatusBpjs
	}

	if err := h.db.Save(&pendaftaran).Error; err != nil {
		log.Printf("pendaftaran update: %v", err)
		httperr.Internal(c, "Gagal memperbarui pendaftaran")
		return
	}
	httpresp.OK(c, "Pendaftaran berhasil diperbarui", pendaftaran)
}

func (h *PendaftaranHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httperr.NotFound(c, "Pendaftaran tidak ditemukan")
		return
	}

	var pendaftaran models.Pendaftaran
	if err := h.db.First(&pendaftaran, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Pendaftaran tidak ditemukan")
			return
		}
		log.Printf("pendaftaran delete: %v", err)
		httperr.Internal(c, "Gagal mengambil data pendaftaran")
		return
	}

	if err := h.db.Delete(&pendaftaran).Error; err != nil {
		log.Printf("pendaftaran delete: %v", err)
		httperr.Internal(c, "Gagal menghapus pendaftaran")
		return
	}
	httpresp.Message(c, "Pendaftaran berhasil dihapus")
}
