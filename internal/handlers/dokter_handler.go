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

type DokterHandler struct {
	db *gorm.DB
}

func NewDokterHandler(db *gorm.DB) *DokterHandler {
	return &DokterHandler{db: db}
}

type CreateDokterRequest struct {
	Nama         string `json:"nama" binding:"required,max=100"`
	Spesialisasi string `json:"spesialisasi" binding:"required,max=100"`
	NoTelepon    string `json:"no_telepon" binding:"required,max=20"`
	Email        string `json:"email" binding:"required,email,max=100"`
}

type UpdateDokterRequest struct {
	Nama         *string `json:"nama" binding:"omitempty,max=100"`
	Spesialisasi *string `json:"spesialisasi" binding:"omitempty,max=100"`
	NoTelepon    *string `json:"no_telepon" binding:"omitempty,max=20"`
	Email        *string `json:"email" binding:"omitempty,email,max=100"`
}

func (h *DokterHandler) List(c *gin.Context) {
	var dokter []models.Dokter
	if err := h.db.
		Preload("Jadwal").
		Preload("Konsultasi").
		Find(&dokter).Error; err != nil {

		log.Printf("dokter list: %v", err)
		httperr.Internal(c, "Gagal mengambil data dokter")
		return
	}
	httpresp.OK(c, "Daftar dokter berhasil diambil", dokter)
}

func (h *DokterHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httperr.NotFound(c, "Dokter tidak ditemukan")
		return
	}

	var dokter models.Dokter
	if err := h.db.
		Preload("Jadwal").
		Preload("Konsultasi").
		First(&dokter, id).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Dokter tidak ditemukan")
			return
		}
		log.Printf("dokter get: %v", err)
		httperr.Internal(c, "Gagal mengambil data dokter")
		return
	}
	httpresp.OK(c, "Data dokter berhasil diambil", dokter)
}

func (h *DokterHandler) Create(c *gin.Context) {
	var req CreateDokterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, validation.Fields(err))
		return
	}

	if fields := h.uniqueViolations(req.NoTelepon, req.Email, 0); len(fields) > 0 {
		httperr.Unprocessable(c, fields)
		return
	}

	dokter := models.Dokter{
		Nama:         req.Nama,
		Spesialisasi: req.Spesialisasi,
		NoTelepon:    req.NoTelepon,
		Email:        req.Email,
	}

	if err := h.db.Create(&dokter).Error; err != nil {
		log.Printf("dokter create: %v", err)
		httperr.Internal(c, "Gagal menyimpan dokter")
		return
	}
	httpresp.Created(c, "Dokter berhasil ditambahkan", dokter)
}

func (h *DokterHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httperr.NotFound(c, "Dokter tidak ditemukan")
		return
	}

	var dokter models.Dokter
	if err := h.db.First(&dokter, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Dokter tidak ditemukan")
			return
		}
		log.Printf("dokter update: %v", err)
		httperr.Internal(c, "Gagal mengambil data dokter")
		return
	}

	var req UpdateDokterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, validation.Fields(err))
		return
	}

	noTelepon := dokter.NoTelepon
	if req.NoTelepon != nil {
		noTelepon = *req.NoTelepon
	}
	email := dokter.Email
	if req.Email != nil {
		email = *req.Email
	}
	if fields := h.uniqueViolations(noTelepon, email, dokter.ID); len(fields) > 0 {
		httperr.Unprocessable(c, fields)
		return
	}

	if req.Nama != nil {
		dokter.Nama = *req.Nama
	}
	if req.Spesialisasi != nil {
		dokter.Spesialisasi = *req.Spesialisasi
	}
	dokter.NoTelepon = noTelepon
	dokter.Email = email

	if err := h.db.Save(&dokter).Error; err != nil {
		log.Printf("dokter update: %v", err)
		httperr.Internal(c, "Gagal memperbarui dokter")
		return
	}
	httpresp.OK(c, "Data dokter berhasil diperbarui", dokter)
}

func (h *DokterHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httperr.NotFound(c, "Dokter tidak ditemukan")
		return
	}

	var dokter models.Dokter
	if err := h.db.First(&dokter, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Dokter tidak ditemukan")
			return
		}
		log.Printf("dokter delete: %v", err)
		httperr.Internal(c, "Gagal mengambil data dokter")
		return
	}

	// Jadwal dan konsultasi milik dokter ikut terhapus lewat cascade FK.
	if err := h.db.Delete(&dokter).Error; err != nil {
		log.Printf("dokter delete: %v", err)
		httperr.Internal(c, "Gagal menghapus dokter")
		return
	}
	httpresp.Message(c, "Dokter berhasil dihapus")
}

// uniqueViolations memeriksa keunikan no_telepon dan email; excludeID > 0
// mengecualikan baris milik dokter itu sendiri saat update.
func (h *DokterHandler) uniqueViolations(noTelepon, email string, excludeID uint) map[string]string {
	fields := make(map[string]string)

	var count int64
	q := h.db.Model(&models.Dokter{}).Where("no_telepon = ?", noTelepon)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	q.Count(&count)
	if count > 0 {
		fields["no_telepon"] = "no telepon sudah terdaftar"
	}

	count = 0
	q = h.db.Model(&models.Dokter{}).Where("email = ?", email)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	q.Count(&count)
	if count > 0 {
		fields["email"] = "email sudah terdaftar"
	}

	return fields
}
