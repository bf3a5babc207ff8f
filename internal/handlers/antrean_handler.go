package handlers

import (
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rsmedika/hospital-api/internal/httperr"
	"github.com/rsmedika/hospital-api/internal/httpresp"
	"github.com/rsmedika/hospital-api/internal/models"
	"github.com/rsmedika/hospital-api/internal/validation"
)

type AntreanHandler struct {
	db *gorm.DB
}

func NewAntreanHandler(db *gorm.DB) *AntreanHandler {
	return &AntreanHandler{db: db}
}

type CreateAntreanRequest struct {
	PasienID uint `json:"pasien_id" binding:"required"`

	// Nomor antrean boleh dikosongkan; server akan membuatkan nomor.
	NomorAntrean string `json:"nomor_antrean"`
	Status       string `json:"status" binding:"omitempty,oneof=menunggu dipanggil selesai batal"`
	Tanggal      string `json:"tanggal" binding:"required,datetime=2006-01-02"`
}

type UpdateAntreanRequest struct {
	PasienID     *uint   `json:"pasien_id"`
	NomorAntrean *string `json:"nomor_antrean"`
	Status       *string `json:"status" binding:"omitempty,oneof=menunggu dipanggil selesai batal"`
	Tanggal      *string `json:"tanggal" binding:"omitempty,datetime=2006-01-02"`
}

func (h *AntreanHandler) List(c *gin.Context) {
	var antrean []models.Antrean
	if err := h.db.Find(&antrean).Error; err != nil {
		log.Printf("antrean list: %v", err)
		httperr.Internal(c, "Gagal mengambil data antrean")
		return
	}
	httpresp.OK(c, "Data semua antrean", antrean)
}

func (h *AntreanHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httperr.NotFound(c, "Antrean tidak ditemukan")
		return
	}

	var antrean models.Antrean
	if err := h.db.Preload("Pasien").First(&antrean, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Antrean tidak ditemukan")
			return
		}
		log.Printf("antrean get: %v", err)
		httperr.Internal(c, "Gagal mengambil data antrean")
		return
	}
	httpresp.OK(c, "Detail antrean", antrean)
}

func (h *AntreanHandler) Create(c *gin.Context) {
	var req CreateAntreanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, validation.Fields(err))
		return
	}

	if ok, err := recordExists(h.db, &models.Pasien{}, req.PasienID); err != nil {
		log.Printf("antrean create: %v", err)
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	} else if !ok {
		httperr.Unprocessable(c, map[string]string{"pasien_id": "pasien tidak ditemukan"})
		return
	}

	nomor := strings.TrimSpace(req.NomorAntrean)
	if nomor == "" {
		nomor = generateNomorAntrean()
	}

	status := req.Status
	if status == "" {
		status = "menunggu"
	}

	antrean := models.Antrean{
		PasienID:     req.PasienID,
		NomorAntrean: nomor,
		Status:       status,
		Tanggal:      req.Tanggal,
	}

	if err := h.db.Create(&antrean).Error; err != nil {
		log.Printf("antrean create: %v", err)
		httperr.Internal(c, "Gagal menyimpan antrean")
		return
	}
	httpresp.Created(c, "Antrean berhasil dibuat", antrean)
}

func (h *AntreanHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httperr.NotFound(c, "Antrean tidak ditemukan")
		return
	}

	var antrean models.Antrean
	if err := h.db.First(&antrean, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Antrean tidak ditemukan")
			return
		}
		log.Printf("antrean update: %v", err)
		httperr.Internal(c, "Gagal mengambil data antrean")
		return
	}

	var req UpdateAntreanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, validation.Fields(err))
		return
	}

	if req.PasienID != nil {
		if ok, err := recordExists(h.db, &models.Pasien{}, *req.PasienID); err != nil {
			log.Printf("antrean update: %v", err)
			httperr.Internal(c, "Terjadi kesalahan pada server")
			return
		} else if !ok {
			httperr.Unprocessable(c, map[string]string{"pasien_id": "pasien tidak ditemukan"})
			return
		}
		antrean.PasienID = *req.PasienID
	}

	if req.NomorAntrean != nil {
		antrean.NomorAntrean = *req.NomorAntrean
	}
	if req.Status != nil {
		antrean.Status = *req.Status
	}
	if req.Tanggal != nil {
		antrean.Tanggal = *req.Tanggal
	}

	if err := h.db.Save(&antrean).Error; err != nil {
		log.Printf("antrean update: %v", err)
		httperr.Internal(c, "Gagal memperbarui antrean")
		return
	}
	httpresp.OK(c, "Antrean berhasil diperbarui", antrean)
}

func (h *AntreanHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httperr.NotFound(c, "Antrean tidak ditemukan")
		return
	}

	var antrean models.Antrean
	if err := h.db.First(&antrean, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Antrean tidak ditemukan")
			return
		}
		log.Printf("antrean delete: %v", err)
		httperr.Internal(c, "Gagal mengambil data antrean")
		return
	}

	if err := h.db.Delete(&antrean).Error; err != nil {
		log.Printf("antrean delete: %v", err)
		httperr.Internal(c, "Gagal menghapus antrean")
		return
	}
	httpresp.Deleted(c, "Antrean berhasil dihapus", antrean.ID)
}

// Nomor antrean tidak dituntut unik; slug acak cukup agar tiket yang
// dibuat tanpa nomor tetap bisa dipanggil.
func generateNomorAntrean() string {
	return fmt.Sprintf("A-%s", strings.ToUpper(uuid.NewString()[:8]))
}
