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

type PaymentHandler struct {
	db *gorm.DB
}

func NewPaymentHandler(db *gorm.DB) *PaymentHandler {
	return &PaymentHandler{db: db}
}

type CreatePaymentRequest struct {
	KonsultasiID uint     `json:"konsultasi_id" binding:"required"`
	Amount       *float64 `json:"amount" binding:"required,gte=0"`
	PaymentDate  string   `json:"payment_date" binding:"required,datetime=2006-01-02T15:04:05"`
	Method       string   `json:"method" binding:"required,oneof='Cash' 'Credit Card' 'Transfer'"`
	Status       string   `json:"status" binding:"required,oneof=Pending Paid Cancelled"`
}

type UpdatePaymentRequest struct {
	KonsultasiID *uint    `json:"konsultasi_id"`
	Amount       *float64 `json:"amount" binding:"omitempty,gte=0"`
	PaymentDate  *string  `json:"payment_date" binding:"omitempty,datetime=2006-01-02T15:04:05"`
	Method       *string  `json:"method" binding:"omitempty,oneof='Cash' 'Credit Card' 'Transfer'"`
	Status       *string  `json:"status" binding:"omitempty,oneof=Pending Paid Cancelled"`
}

func (h *PaymentHandler) List(c *gin.Context) {
	var payments []models.Payment
	if err := h.db.Preload("Konsultasi").Find(&payments).Error; err != nil {
		log.Printf("payment list: %v", err)
		httperr.Internal(c, "Gagal mengambil data pembayaran")
		return
	}
	httpresp.OK(c, "Data semua pembayaran", payments)
}

func (h *PaymentHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httperr.NotFound(c, "Pembayaran tidak ditemukan")
		return
	}

	var payment models.Payment
	if err := h.db.Preload("Konsultasi").First(&payment, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Pembayaran tidak ditemukan")
			return
		}
		log.Printf("payment get: %v", err)
		httperr.Internal(c, "Gagal mengambil data pembayaran")
		return
	}
	httpresp.OK(c, "Detail pembayaran", payment)
}

func (h *PaymentHandler) Create(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, validation.Fields(err))
		return
	}

	if ok, err := recordExists(h.db, &models.Konsultasi{}, req.KonsultasiID); err != nil {
		log.Printf("payment create: %v", err)
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	} else if !ok {
		httperr.Unprocessable(c, map[string]string{"konsultasi_id": "konsultasi tidak ditemukan"})
		return
	}

	payment := models.Payment{
		KonsultasiID: req.KonsultasiID,
		Amount:       *req.Amount,
		PaymentDate:  req.PaymentDate,
		Method:       req.Method,
		Status:       req.Status,
	}

	if err := h.db.Create(&payment).Error; err != nil {
		log.Printf("payment create: %v", err)
		httperr.Internal(c, "Gagal menyimpan pembayaran")
		return
	}
	httpresp.Created(c, "Pembayaran berhasil disimpan", payment)
}

func (h *PaymentHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httperr.NotFound(c, "Pembayaran tidak ditemukan")
		return
	}

	var payment models.Payment
	if err := h.db.First(&payment, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Pembayaran tidak ditemukan")
			return
		}
		log.Printf("payment update: %v", err)
		httperr.Internal(c, "Gagal mengambil data pembayaran")
		return
	}

	var req UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, validation.Fields(err))
		return
	}

	if req.KonsultasiID != nil {
		if ok, err := recordExists(h.db, &models.Konsultasi{}, *req.KonsultasiID); err != nil {
			log.Printf("payment update: %v", err)
			httperr.Internal(c, "Terjadi kesalahan pada server")
			return
		} else if !ok {
			httperr.Unprocessable(c, map[string]string{"konsultasi_id": "konsultasi tidak ditemukan"})
			return
		}
		payment.KonsultasiID = *req.KonsultasiID
	}

	if req.Amount != nil {
		payment.Amount = *req.Amount
	}
	if req.PaymentDate != nil {
		payment.PaymentDate = *req.PaymentDate
	}
	if req.Method != nil {
		payment.Method = *req.Method
	}
	if req.Status != nil {
		payment.Status = *req.Status
	}

	if err := h.db.Save(&payment).Error; err != nil {
		log.Printf("payment update: %v", err)
		httperr.Internal(c, "Gagal memperbarui pembayaran")
		return
	}
	httpresp.OK(c, "Pembayaran berhasil diperbarui", payment)
}

func (h *PaymentHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httperr.NotFound(c, "Pembayaran tidak ditemukan")
		return
	}

	var payment models.Payment
	if err := h.db.First(&payment, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Pembayaran tidak ditemukan")
			return
		}
		log.Printf("payment delete: %v", err)
		httperr.Internal(c, "Gagal mengambil data pembayaran")
		return
	}

	if err := h.db.Delete(&payment).Error; err != nil {
		log.Printf("payment delete: %v", err)
		httperr.Internal(c, "Gagal menghapus pembayaran")
		return
	}
	httpresp.Message(c, "Pembayaran berhasil dihapus")
}
