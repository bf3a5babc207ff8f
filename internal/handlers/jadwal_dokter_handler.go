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

type JadwalDokterHandler struct {
	db *gorm.DB
}

func NewJadwalDokterHandler(db *gorm.DB) *JadwalDokterHandler {
	return &JadwalDokterHandler{db: db}
}

type CreateJadwalDokterRequest struct {
	DokterID   uint   `json:"dokter_id" binding:"required"`
	PoliID     uint   `json:"poli_id" binding:"required"`
	Hari       string `json:"hari" binding:"required,oneof=Senin Selasa Rabu Kamis Jumat Sabtu Minggu"`
	JamMulai   string `json:"jam_mulai" binding:"required,datetime=15:04:05"`
	JamSelesai string `json:"jam_selesai" binding:"required,datetime=15:04:05"`
}

type UpdateJadwalDokterRequest struct {
	DokterID   *uint   `json:"dokter_id"`
	PoliID     *uint   `json:"poli_id"`
	Hari       *string `json:"hari" binding:"omitempty,oneof=Senin Selasa Rabu Kamis Jumat Sabtu Minggu"`
	JamMulai   *string `json:"jam_mulai" binding:"omitempty,datetime=15:04:05"`
	JamSelesai *string `json:"jam_selesai" binding:"omitempty,datetime=15:04:05"`
}

func (h *JadwalDokterHandler) List(c *gin.Context) {
	var jadwal []models.JadwalDokter
	if err := h.db.
		Preload("Dokter").
		Preload("Poli").
		Find(&jadwal).Error; err != nil {

		log.Printf("jadwal list: %v", err)
		httperr.Internal(c, "Gagal mengambil data jadwal dokter")
		return
	}
	httpresp.OK(c, "Data semua jadwal dokter", jadwal)
}

func (h *JadwalDokterHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httperr.NotFound(c, "Jadwal dokter tidak ditemukan")
		return
	}

	var jadwal models.JadwalDokter
	if err := h.db.
		Preload("Dokter").
		Preload("Poli").
		First(&jadwal, id).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Jadwal dokter tidak ditemukan")
			return
		}
		log.Printf("jadwal get: %v", err)
		httperr.Internal(c, "Gagal mengambil data jadwal dokter")
		return
	}
	httpresp.OK(c, "Detail jadwal dokter", jadwal)
}

func (h *JadwalDokterHandler) Create(c *gin.Context) {
	var req CreateJadwalDokterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, validation.Fields(err))
		return
	}

	if ok, err := recordExists(h.db, &models.Dokter{}, req.DokterID); err != nil {
		log.Printf("jadwal create: %v", err)
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	} else if !ok {
		httperr.Unprocessable(c, map[string]string{"dokter_id": "dokter tidak ditemukan"})
		return
	}

	if ok, err := recordExists(h.db, &models.Poli{}, req.PoliID); err != nil {
		log.Printf("jadwal create: %v", err)
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	} else if !ok {
		httperr.Unprocessable(c, map[string]string{"poli_id": "poli tidak ditemukan"})
		return
	}

	// Jam berformat tetap HH:MM:SS sehingga perbandingan string aman.
	if req.JamSelesai <= req.JamMulai {
		httperr.Unprocessable(c, map[string]string{"jam_selesai": "harus lebih besar dari jam_mulai"})
		return
	}

	jadwal := models.JadwalDokter{
		DokterID:   req.DokterID,
		PoliID:     req.PoliID,
		Hari:       req.Hari,
		JamMulai:   req.JamMulai,
		JamSelesai: req.JamSelesai,
	}

	if err := h.db.Create(&jadwal).Error; err != nil {
		log.Printf("jadwal create: %v", err)
		httperr.Internal(c, "Gagal menyimpan jadwal dokter")
		return
	}
	httpresp.Created(c, "Jadwal dokter berhasil disimpan", jadwal)
}

func (h *JadwalDokterHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httperr.NotFound(c, "Jadwal dokter tidak ditemukan")
		return
	}

	var jadwal models.JadwalDokter
	if err := h.db.First(&jadwal, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Jadwal dokter tidak ditemukan")
			return
		}
		log.Printf("jadwal update: %v", err)
		httperr.Internal(c, "Gagal mengambil data jadwal dokter")
		return
	}

	var req UpdateJadwalDokterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, validation.Fields(err))
		return
	}

	if req.DokterID != nil {
		if ok, err := recordExists(h.db, &models.Dokter{}, *req.DokterID); err != nil {
			log.Printf("jadwal update: %v", err)
			httperr.Internal(c, "Terjadi kesalahan pada server")
			return
		} else if !ok {
			httperr.Unprocessable(c, map[string]string{"dokter_id": "dokter tidak ditemukan"})
			return
		}
		jadwal.DokterID = *req.DokterID
	}

	if req.PoliID != nil {
		if ok, err := recordExists(h.db, &models.Poli{}, *req.PoliID); err != nil {
			log.Printf("jadwal update: %v", err)
			httperr.Internal(c, "Terjadi kesalahan pada server")
			return
		} else if !ok {
			httperr.Unprocessable(c, map[string]string{"poli_id": "poli tidak ditemukan"})
			return
		}
		jadwal.PoliID = *req.PoliID
	}

	if req.Hari != nil {
		jadwal.Hari = *req.Hari
	}
	if req.JamMulai != nil {
		jadwal.JamMulai = *req.JamMulai
	}
	if req.JamSelesai != nil {
		jadwal.JamSelesai = *req.JamSelesai
	}

	if jadwal.JamSelesai <= jadwal.JamMulai {
		httperr.Unprocessable(c, map[string]string{"jam_selesai": "harus lebih besar dari jam_mulai"})
		return
	}

	if err := h.db.Save(&jadwal).Error; err != nil {
		log.Printf("jadwal update: %v", err)
		httperr.Internal(c, "Gagal memperbarui jadwal dokter")
		return
	}
	httpresp.OK(c, "Jadwal dokter berhasil diperbarui", jadwal)
}

func (h *JadwalDokterHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httperr.NotFound(c, "Jadwal dokter tidak ditemukan")
		return
	}

	var jadwal models.JadwalDokter
	if err := h.db.First(&jadwal, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Jadwal dokter tidak ditemukan")
			return
		}
		log.Printf("jadwal delete: %v", err)
		httperr.Internal(c, "Gagal mengambil data jadwal dokter")
		return
	}

	if err := h.db.Delete(&jadwal).Error; err != nil {
		log.Printf("jadwal delete: %v", err)
		httperr.Internal(c, "Gagal menghapus jadwal dokter")
		return
	}
	httpresp.Message(c, "Jadwal dokter berhasil dihapus")
}
