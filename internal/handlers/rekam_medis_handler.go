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

type RekamMedisHandler struct {
	db *gorm.DB
}

func NewRekamMedisHandler(db *gorm.DB) *RekamMedisHandler {
	return &RekamMedisHandler{db: db}
}

type CreateRekamMedisRequest struct {
	PasienID         uint    `json:"pasien_id" binding:"required"`
	TanggalKunjungan string  `json:"tanggal_kunjungan" binding:"required,datetime=2006-01-02"`
	Diagnosis        string  `json:"diagnosis" binding:"required"`
	Tindakan         string  `json:"tindakan" binding:"required"`
	Obat             string  `json:"obat" binding:"required"`
	Catatan          *string `json:"catatan"`
}

type UpdateRekamMedisRequest struct {
	PasienID         *uint   `json:"pasien_id"`
	TanggalKunjungan *string `json:"tanggal_kunjungan" binding:"omitempty,datetime=2006-01-02"`
	Diagnosis        *string `json:"diagnosis"`
	Tindakan         *string `json:"tindakan"`
	Obat             *string `json:"obat"`
	Catatan          *string `json:"catatan"`
}

func (h *RekamMedisHandler) List(c *gin.Context) {
	var rekam []models.RekamMedis
	if err := h.db.Preload("Pasien").Find(&rekam).Error; err != nil {
		log.Printf("rekam medis list: %v", err)
		httperr.Internal(c, "Gagal mengambil data rekam medis")
		return
	}
	httpresp.OK(c, "Data semua rekam medis", rekam)
}

func (h *RekamMedisHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httperr.NotFound(c, "Rekam medis tidak ditemukan")
		return
	}

	var rekam models.RekamMedis
	if err := h.db.Preload("Pasien").First(&rekam, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Rekam medis tidak ditemukan")
			return
		}
		log.Printf("rekam medis get: %v", err)
		httperr.Internal(c, "Gagal mengambil data rekam medis")
		return
	}
	httpresp.OK(c, "Detail rekam medis", rekam)
}

func (h *RekamMedisHandler) Create(c *gin.Context) {
	var req CreateRekamMedisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, validation.Fields(err))
		return
	}

	if ok, err := recordExists(h.db, &models.Pasien{}, req.PasienID); err != nil {
		log.Printf("rekam medis create: %v", err)
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	} else if !ok {
		httperr.Unprocessable(c, map[string]string{"pasien_id": "pasien tidak ditemukan"})
		return
	}

	rekam := models.RekamMedis{
		PasienID:         req.PasienID,
		TanggalKunjungan: req.TanggalKunjungan,
		Diagnosis:        req.Diagnosis,
		Tindakan:         req.Tindakan,
		Obat:             req.Obat,
		Catatan:          req.Catatan,
	}

	if err := h.db.Create(&rekam).Error; err != nil {
		log.Printf("rekam medis create: %v", err)
		httperr.Internal(c, "Gagal menyimpan rekam medis")
		return
	}
	httpresp.Created(c, "Rekam medis berhasil disimpan", rekam)
}

func (h *RekamMedisHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httperr.NotFound(c, "Rekam medis tidak ditemukan")
		return
	}

	var rekam models.RekamMedis
	if err := h.db.First(&rekam, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Rekam medis tidak ditemukan")
			return
		}
		log.Printf("rekam medis update: %v", err)
		httperr.Internal(c, "Gagal mengambil data rekam medis")
		return
	}

	var req UpdateRekamMedisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, validation.Fields(err))
		return
	}

	if req.PasienID != nil {
		if ok, err := recordExists(h.db, &models.Pasien{}, *req.PasienID); err != nil {
			log.Printf("rekam medis update: %v", err)
			httperr.Internal(c, "Terjadi kesalahan pada server")
			return
		} else if !ok {
			httperr.Unprocessable(c, map[string]string{"pasien_id": "pasien tidak ditemukan"})
			return
		}
		rekam.PasienID = *req.PasienID
	}

	if req.TanggalKunjungan != nil {
		rekam.TanggalKunjungan = *req.TanggalKunjungan
	}
	if req.Diagnosis != nil {
		rekam.Diagnosis = *req.Diagnosis
	}
	if req.Tindakan != nil {
		rekam.Tindakan = *req.Tindakan
	}
	if req.Obat != nil {
		rekam.Obat = *req.Obat
	}
	if req.Catatan != nil {
		rekam.Catatan = req.Catatan
	}

	if err := h.db.Save(&rekam).Error; err != nil {
		log.Printf("rekam medis update: %v", err)
		httperr.Internal(c, "Gagal memperbarui rekam medis")
		return
	}
	httpresp.OK(c, "Rekam medis berhasil diperbarui", rekam)
}

func (h *RekamMedisHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httperr.NotFound(c, "Rekam medis tidak ditemukan")
		return
	}

	var rekam models.RekamMedis
	if err := h.db.First(&rekam, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Rekam medis tidak ditemukan")
			return
		}
		log.Printf("rekam medis delete: %v", err)
		httperr.Internal(c, "Gagal mengambil data rekam medis")
		return
	}

	if err := h.db.Delete(&rekam).Error; err != nil {
		log.Printf("rekam medis delete: %v", err)
		httperr.Internal(c, "Gagal menghapus rekam medis")
		return
	}
	httpresp.Deleted(c, "Rekam medis berhasil dihapus", rekam.ID)
}
