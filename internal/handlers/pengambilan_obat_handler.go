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

type PengambilanObatHandler struct {
	db *gorm.DB
}

func NewPengambilanObatHandler(db *gorm.DB) *PengambilanObatHandler {
	return &PengambilanObatHandler{db: db}
}

type CreatePengambilanObatRequest struct {
	PasienID           uint   `json:"pasien_id" binding:"required"`
	InventoryID        uint   `json:"inventory_id" binding:"required"`
	Jumlah             int    `json:"jumlah" binding:"required,gte=1"`
	TanggalPengambilan string `json:"tanggal_pengambilan" binding:"required,datetime=2006-01-02T15:04:05"`
	Status             string `json:"status" binding:"required,oneof=Diambil Belum"`
}

type UpdatePengambilanObatRequest struct {
	PasienID           *uint   `json:"pasien_id"`
	InventoryID        *uint   `json:"inventory_id"`
	Jumlah             *int    `json:"jumlah" binding:"omitempty,gte=1"`
	TanggalPengambilan *string `json:"tanggal_pengambilan" binding:"omitempty,datetime=2006-01-02T15:04:05"`
	Status             *string `json:"status" binding:"omitempty,oneof=Diambil Belum"`
}

func (h *PengambilanObatHandler) List(c *gin.Context) {
	var pengambilan []models.PengambilanObat
	if err := h.db.
		Preload("Pasien").
		Preload("Inventory").
		Find(&pengambilan).Error; err != nil {

		log.Printf("pengambilan obat list: %v", err)
		httperr.Internal(c, "Gagal mengambil data pengambilan obat")
		return
	}
	httpresp.OK(c, "Data pengambilan obat", pengambilan)
}

func (h *PengambilanObatHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httperr.NotFound(c, "Pengambilan obat tidak ditemukan")
		return
	}

	var pengambilan models.PengambilanObat
	if err := h.db.
		Preload("Pasien").
		Preload("Inventory").
		First(&pengambilan, id).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Pengambilan obat tidak ditemukan")
			return
		}
		log.Printf("pengambilan obat get: %v", err)
		httperr.Internal(c, "Gagal mengambil data pengambilan obat")
		return
	}
	httpresp.OK(c, "Detail pengambilan obat", pengambilan)
}

func (h *PengambilanObatHandler) Create(c *gin.Context) {
	var req CreatePengambilanObatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, validation.Fields(err))
		return
	}

	if ok, err := recordExists(h.db, &models.Pasien{}, req.PasienID); err != nil {
		log.Printf("pengambilan obat create: %v", err)
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	} else if !ok {
		httperr.Unprocessable(c, map[string]string{"pasien_id": "pasien tidak ditemukan"})
		return
	}

	if ok, err := recordExists(h.db, &models.Inventory{}, req.InventoryID); err != nil {
		log.Printf("pengambilan obat create: %v", err)
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	} else if !ok {
		httperr.Unprocessable(c, map[string]string{"inventory_id": "inventaris tidak ditemukan"})
		return
	}

	pengambilan := models.PengambilanObat{
		PasienID:           req.PasienID,
		InventoryID:        req.InventoryID,
		Jumlah:             req.Jumlah,
		TanggalPengambilan: req.TanggalPengambilan,
		Status:             req.Status,
	}

	if err := h.db.Create(&pengambilan).Error; err != nil {
		log.Printf("pengambilan obat create: %v", err)
		httperr.Internal(c, "Gagal menyimpan pengambilan obat")
		return
	}
	httpresp.Created(c, "Pengambilan obat berhasil disimpan", pengambilan)
}

func (h *PengambilanObatHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httperr.NotFound(c, "Pengambilan obat tidak ditemukan")
		return
	}

	var pengambilan models.PengambilanObat
	if err := h.db.First(&pengambilan, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Pengambilan obat tidak ditemukan")
			return
		}
		log.Printf("pengambilan obat update: %v", err)
		httperr.Internal(c, "Gagal mengambil data pengambilan obat")
		return
	}

	var req UpdatePengambilanObatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, validation.Fields(err))
		return
	}

	if req.PasienID != nil {
		if ok, err := recordExists(h.db, &models.Pasien{}, *req.PasienID); err != nil {
			log.Printf("pengambilan obat update: %v", err)
			httperr.Internal(c, "Terjadi kesalahan pada server")
			return
		} else if !ok {
			httperr.Unprocessable(c, map[string]string{"pasien_id": "pasien tidak ditemukan"})
			return
		}
		pengambilan.PasienID = *req.PasienID
	}

	if req.InventoryID != nil {
		if ok, err := recordExists(h.db, &models.Inventory{}, *req.InventoryID); err != nil {
			log.Printf("pengambilan obat update: %v", err)
			httperr.Internal(c, "Terjadi kesalahan pada server")
			return
		} else if !ok {
			httperr.Unprocessable(c, map[string]string{"inventory_id": "inventaris tidak ditemukan"})
			return
		}
		pengambilan.InventoryID = *req.InventoryID
	}

	if req.Jumlah != nil {
		pengambilan.Jumlah = *req.Jumlah
	}
	if req.TanggalPengambilan != nil {
		pengambilan.TanggalPengambilan = *req.TanggalPengambilan
	}
	if req.Status != nil {
		pengambilan.Status = *req.Status
	}

	if err := h.db.Save(&pengambilan).Error; err != nil {
		log.Printf("pengambilan obat update: %v", err)
		httperr.Internal(c, "Gagal memperbarui pengambilan obat")
		return
	}
	httpresp.OK(c, "Pengambilan obat berhasil diperbarui", pengambilan)
}

func (h *PengambilanObatHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httperr.NotFound(c, "Pengambilan obat tidak ditemukan")
		return
	}

	var pengambilan models.PengambilanObat
	if err := h.db.First(&pengambilan, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Pengambilan obat tidak ditemukan")
			return
		}
		log.Printf("pengambilan obat delete: %v", err)
		httperr.Internal(c, "Gagal mengambil data pengambilan obat")
		return
	}

	if err := h.db.Delete(&pengambilan).Error; err != nil {
		log.Printf("pengambilan obat delete: %v", err)
		httperr.Internal(c, "Gagal menghapus pengambilan obat")
		return
	}
	httpresp.Message(c, "Pengambilan obat berhasil dihapus")
}
