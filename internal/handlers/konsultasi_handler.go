package handlers

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	domain "github.com/rsmedika/hospital-api/internal/domain/konsultasi"
	"github.com/rsmedika/hospital-api/internal/httperr"
	"github.com/rsmedika/hospital-api/internal/httpresp"
	ucKonsultasi "github.com/rsmedika/hospital-api/internal/usecase/konsultasi"
	"github.com/rsmedika/hospital-api/internal/validation"
)

type KonsultasiHandler struct {
	repo     domain.Repository
	createUC *ucKonsultasi.CreateKonsultasi
	updateUC *ucKonsultasi.UpdateKonsultasi
}

func NewKonsultasiHandler(
	repo domain.Repository,
	createUC *ucKonsultasi.CreateKonsultasi,
	updateUC *ucKonsultasi.UpdateKonsultasi,
) *KonsultasiHandler {
	return &KonsultasiHandler{
		repo:     repo,
		createUC: createUC,
		updateUC: updateUC,
	}
}

type CreateKonsultasiRequest struct {
	PasienID          uint   `json:"pasien_id" binding:"required"`
	DokterID          uint   `json:"dokter_id" binding:"required"`
	JadwalID          uint   `json:"jadwal_id" binding:"required"`
	TanggalKonsultasi string `json:"tanggal_konsultasi" binding:"required,datetime=2006-01-02"`
	Status            string `json:"status" binding:"omitempty,oneof=Dijadwalkan Selesai Dibatalkan"`
}

type UpdateKonsultasiRequest struct {
	PasienID          *uint   `json:"pasien_id"`
	DokterID          *uint   `json:"dokter_id"`
	JadwalID          *uint   `json:"jadwal_id"`
	TanggalKonsultasi *string `json:"tanggal_konsultasi" binding:"omitempty,datetime=2006-01-02"`
	Status            *string `json:"status" binding:"omitempty,oneof=Dijadwalkan Selesai Dibatalkan"`
}

func (h *KonsultasiHandler) List(c *gin.Context) {
	list, err := h.repo.List(c.Request.Context())
	if err != nil {
		log.Printf("konsultasi list: %v", err)
		httperr.Internal(c, "Gagal mengambil data konsultasi")
		return
	}
	httpresp.OK(c, "Data semua konsultasi berhasil diambil", list)
}

func (h *KonsultasiHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httperr.NotFound(c, "Konsultasi tidak ditemukan")
		return
	}

	k, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			httperr.NotFound(c, "Konsultasi tidak ditemukan")
			return
		}
		log.Printf("konsultasi get: %v", err)
		httperr.Internal(c, "Gagal mengambil detail konsultasi")
		return
	}
	httpresp.OK(c, "Detail konsultasi berhasil diambil", k)
}

func (h *KonsultasiHandler) Create(c *gin.Context) {
	var req CreateKonsultasiRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, validation.Fields(err))
		return
	}

	k, err := h.createUC.Execute(c.Request.Context(), ucKonsultasi.CreateInput{
		PasienID:          req.PasienID,
		DokterID:          req.DokterID,
		JadwalID:          req.JadwalID,
		TanggalKonsultasi: req.TanggalKonsultasi,
		Status:            req.Status,
	})
	if err != nil {
		h.writeError(c, err, "Gagal menyimpan konsultasi")
		return
	}
	httpresp.Created(c, "Konsultasi berhasil disimpan", k)
}

func (h *KonsultasiHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httperr.NotFound(c, "Konsultasi tidak ditemukan")
		return
	}

	var req UpdateKonsultasiRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, validation.Fields(err))
		return
	}

	k, err := h.updateUC.Execute(c.Request.Context(), id, ucKonsultasi.UpdateInput{
		PasienID:          req.PasienID,
		DokterID:          req.DokterID,
		JadwalID:          req.JadwalID,
		TanggalKonsultasi: req.TanggalKonsultasi,
		Status:            req.Status,
	})
	if err != nil {
		h.writeError(c, err, "Gagal memperbarui konsultasi")
		return
	}
	httpresp.OK(c, "Data konsultasi berhasil diperbarui", k)
}

func (h *KonsultasiHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httperr.NotFound(c, "Konsultasi tidak ditemukan")
		return
	}

	k, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			httperr.NotFound(c, "Konsultasi tidak ditemukan")
			return
		}
		log.Printf("konsultasi delete: %v", err)
		httperr.Internal(c, "Gagal menghapus konsultasi")
		return
	}

	// Payment terkait ikut terhapus lewat cascade FK.
	if err := h.repo.Delete(c.Request.Context(), k); err != nil {
		log.Printf("konsultasi delete: %v", err)
		httperr.Internal(c, "Gagal menghapus konsultasi")
		return
	}
	httpresp.Message(c, "Konsultasi berhasil dihapus")
}

func (h *KonsultasiHandler) writeError(c *gin.Context, err error, internalMsg string) {
	if fe, ok := httperr.AsField(err); ok {
		httperr.Unprocessable(c, map[string]string{fe.Field: fe.Message})
		return
	}
	if errors.Is(err, domain.ErrNotFound) {
		httperr.NotFound(c, "Konsultasi tidak ditemukan")
		return
	}
	log.Printf("konsultasi: %v", err)
	httperr.Internal(c, internalMsg)
}
