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

type PasienHandler struct {
	db *gorm.DB
}

func NewPasienHandler(db *gorm.DB) *PasienHandler {
	return &PasienHandler{db: db}
}

type CreatePasienRequest struct {
	Nama         string `json:"nama" binding:"required,max=100"`
	TanggalLahir string `json:"tanggal_lahir" binding:"required,datetime=2006-01-02"`
	JenisKelamin string `json:"jenis_kelamin" binding:"required,oneof=Laki-laki Perempuan"`
	Alamat       string `json:"alamat" binding:"required"`
}

type UpdatePasienRequest struct {
	Nama         *string `json:"nama" binding:"omitempty,max=100"`
	TanggalLahir *string `json:"tanggal_lahir" binding:"omitempty,datetime=2006-01-02"`
	JenisKelamin *string `json:"jenis_kelamin" binding:"omitempty,oneof=Laki-laki Perempuan"`
	Alamat       *string `json:"alamat"`
}

func (h *PasienHandler) List(c *gin.Context) {
	var pasien []models.Pasien
	if err := h.db.Find(&pasien).Error; err != nil {
		log.Printf("pasien list: %v", err)
		httperr.Internal(c, "Gagal mengambil data pasien")
		return
	}
	httpresp.OK(c, "Data semua pasien", pasien)
}

func (h *PasienHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httperr.NotFound(c, "Pasien tidak ditemukan")
		return
	}

	var pasien models.Pasien
	if err := h.db.First(&pasien, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Pasien tidak ditemukan")
			return
		}
		log.Printf("pasien get: %v", err)
		httperr.Internal(c, "Gagal mengambil data pasien")
		return
	}
	httpresp.OK(c, "Detail pasien", pasien)
}

func (h *PasienHandler) Create(c *gin.Context) {
	var req CreatePasienRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, validation.Fields(err))
		return
	}

	pasien := models.Pasien{
		Nama:         req.Nama,
		TanggalLahir: req.TanggalLahir,
		JenisKelamin: req.JenisKelamin,
		Alamat:       req.Alamat,
	}

	if err := h.db.Create(&pasien).Error; err != nil {
		log.Printf("pasien create: %v", err)
		httperr.Internal(c, "Gagal menyimpan pasien")
		return
	}
	httpresp.Created(c, "Data berhasil disimpan", pasien)
}

func (h *PasienHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httperr.NotFound(c, "Pasien tidak ditemukan")
		return
	}

	var pasien models.Pasien
	if err := h.db.First(&pasien, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Pasien tidak ditemukan")
			return
		}
		log.Printf("pasien update: %v", err)
		httperr.Internal(c, "Gagal mengambil data pasien")
		return
	}

	var req UpdatePasienRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, validation.Fields(err))
		return
	}

	if req.Nama != nil {
		pasien.Nama = *req.Nama
	}
	if req.TanggalLahir != nil {
		pasien.TanggalLahir = *req.TanggalLahir
	}
	if req.JenisKelamin != nil {
		pasien.JenisKelamin = *req.JenisKelamin
	}
	if req.Alamat != nil {
		pasien.Alamat = *req.Alamat
	}

	if err := h.db.Save(&pasien).Error; err != nil {
		log.Printf("pasien update: %v", err)
		httperr.Internal(c, "Gagal memperbarui pasien")
		return
	}
	httpresp.OK(c, "Data pasien berhasil diperbarui", pasien)
}

func (h *PasienHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httperr.NotFound(c, "Pasien tidak ditemukan")
		return
	}

	var pasien models.Pasien
	if err := h.db.First(&pasien, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Pasien tidak ditemukan")
			return
		}
		log.Printf("pasien delete: %v", err)
		httperr.Internal(c, "Gagal mengambil data pasien")
		return
	}

	// Rekam medis, pendaftaran, konsultasi, antrean, dan pengambilan obat
	// milik pasien ikut terhapus lewat cascade FK.
	if err := h.db.Delete(&pasien).Error; err != nil {
		log.Printf("pasien delete: %v", err)
		httperr.Internal(c, "Gagal menghapus pasien")
		return
	}
	httpresp.Deleted(c, "Pasien berhasil dihapus", pasien.ID)
}
