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

type InventoryHandler struct {
	db *gorm.DB
}

func NewInventoryHandler(db *gorm.DB) *InventoryHandler {
	return &InventoryHandler{db: db}
}

// Stok dan harga memakai pointer agar nilai 0 tetap dianggap terisi.
type CreateInventoryRequest struct {
	NamaObat string   `json:"nama_obat" binding:"required,max=100"`
	Kategori string   `json:"kategori" binding:"required,oneof=Tablet Syrup Capsule Injection"`
	Stok     *int     `json:"stok" binding:"required,gte=0"`
	Harga    *float64 `json:"harga" binding:"required,gte=0"`
	ExpDate  string   `json:"exp_date" binding:"required,datetime=2006-01-02"`
}

type UpdateInventoryRequest struct {
	NamaObat *string  `json:"nama_obat" binding:"omitempty,max=100"`
	Kategori *string  `json:"kategori" binding:"omitempty,oneof=Tablet Syrup Capsule Injection"`
	Stok     *int     `json:"stok" binding:"omitempty,gte=0"`
	Harga    *float64 `json:"harga" binding:"omitempty,gte=0"`
	ExpDate  *string  `json:"exp_date" binding:"omitempty,datetime=2006-01-02"`
}

func (h *InventoryHandler) List(c *gin.Context) {
	var inventory []models.Inventory
	if err := h.db.Find(&inventory).Error; err != nil {
		log.Printf("inventory list: %v", err)
		httperr.Internal(c, "Gagal mengambil data inventaris")
		return
	}
	httpresp.OK(c, "Data inventaris obat", inventory)
}

func (h *InventoryHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httperr.NotFound(c, "Inventaris tidak ditemukan")
		return
	}

	var inventory models.Inventory
	if err := h.db.First(&inventory, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Inventaris tidak ditemukan")
			return
		}
		log.Printf("inventory get: %v", err)
		httperr.Internal(c, "Gagal mengambil data inventaris")
		return
	}
	httpresp.OK(c, "Detail inventaris obat", inventory)
}

func (h *InventoryHandler) Create(c *gin.Context) {
	var req CreateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, validation.Fields(err))
		return
	}

	inventory := models.Inventory{
		NamaObat: req.NamaObat,
		Kategori: req.Kategori,
		Stok:     *req.Stok,
		Harga:    *req.Harga,
		ExpDate:  req.ExpDate,
	}

	if err := h.db.Create(&inventory).Error; err != nil {
		log.Printf("inventory create: %v", err)
		httperr.Internal(c, "Gagal menyimpan inventaris")
		return
	}
	httpresp.Created(c, "Data inventaris berhasil disimpan", inventory)
}

func (h *InventoryHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httperr.NotFound(c, "Inventaris tidak ditemukan")
		return
	}

	var inventory models.Inventory
	if err := h.db.First(&inventory, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Inventaris tidak ditemukan")
			return
		}
		log.Printf("inventory update: %v", err)
		httperr.Internal(c, "Gagal mengambil data inventaris")
		return
	}

	var req UpdateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, validation.Fields(err))
		return
	}

	if req.NamaObat != nil {
		inventory.NamaObat = *req.NamaObat
	}
	if req.Kategori != nil {
		inventory.Kategori = *req.Kategori
	}
	if req.Stok != nil {
		inventory.Stok = *req.Stok
	}
	if req.Harga != nil {
		inventory.Harga = *req.Harga
	}
	if req.ExpDate != nil {
		inventory.ExpDate = *req.ExpDate
	}

	if err := h.db.Save(&inventory).Error; err != nil {
		log.Printf("inventory update: %v", err)
		httperr.Internal(c, "Gagal memperbarui inventaris")
		return
	}
	httpresp.OK(c, "Data inventaris berhasil diperbarui", inventory)
}

func (h *InventoryHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httperr.NotFound(c, "Inventaris tidak ditemukan")
		return
	}

	var inventory models.Inventory
	if err := h.db.First(&inventory, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Inventaris tidak ditemukan")
			return
		}
		log.Printf("inventory delete: %v", err)
		httperr.Internal(c, "Gagal mengambil data inventaris")
		return
	}

	if err := h.db.Delete(&inventory).Error; err != nil {
		log.Printf("inventory delete: %v", err)
		httperr.Internal(c, "Gagal menghapus inventaris")
		return
	}
	httpresp.Message(c, "Inventaris berhasil dihapus")
}
