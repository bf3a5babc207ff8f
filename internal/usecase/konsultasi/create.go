package konsultasi

import (
	"context"

	domain "github.com/rsmedika/hospital-api/internal/domain/konsultasi"
	"github.com/rsmedika/hospital-api/internal/httperr"
	"github.com/rsmedika/hospital-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateInput struct {
	PasienID uint
	DokterID uint
	JadwalID uint

	TanggalKonsultasi string

	// Status opsional; kosong berarti status awal.
	Status string
}

// ======================================================
// USE CASE
// ======================================================

type CreateKonsultasi struct {
	repo domain.Repository
}

func NewCreateKonsultasi(repo domain.Repository) *CreateKonsultasi {
	return &CreateKonsultasi{repo: repo}
}

func (uc *CreateKonsultasi) Execute(
	ctx context.Context,
	in CreateInput,
) (*models.Konsultasi, error) {

	// Ketiga relasi harus menunjuk baris yang ada.
	ok, err := uc.repo.PasienExists(ctx, in.PasienID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrField("pasien_id", "pasien tidak ditemukan")
	}

	ok, err = uc.repo.DokterExists(ctx, in.DokterID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrField("dokter_id", "dokter tidak ditemukan")
	}

	ok, err = uc.repo.JadwalExists(ctx, in.JadwalID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrField("jadwal_id", "jadwal dokter tidak ditemukan")
	}

	status := domain.Status(in.Status)
	if in.Status == "" {
		status = domain.InitialStatus()
	}
	if !domain.IsValid(status) {
		return nil, httperr.ErrField("status", "status tidak dikenal")
	}

	k := &models.Konsultasi{
		PasienID:          in.PasienID,
		DokterID:          in.DokterID,
		JadwalID:          in.JadwalID,
		TanggalKonsultasi: in.TanggalKonsultasi,
		Status:            string(status),
	}

	if err := uc.repo.Create(ctx, k); err != nil {
		return nil, err
	}

	return k, nil
}
