package konsultasi

import (
	"context"

	domain "github.com/rsmedika/hospital-api/internal/domain/konsultasi"
	"github.com/rsmedika/hospital-api/internal/httperr"
	"github.com/rsmedika/hospital-api/internal/models"
)

// UpdateInput membawa perubahan parsial; field nil dibiarkan apa adanya.
type UpdateInput struct {
	PasienID          *uint
	DokterID          *uint
	JadwalID          *uint
	TanggalKonsultasi *string
	Status            *string
}

type UpdateKonsultasi struct {
	repo domain.Repository
}

func NewUpdateKonsultasi(repo domain.Repository) *UpdateKonsultasi {
	return &UpdateKonsultasi{repo: repo}
}

func (uc *UpdateKonsultasi) Execute(
	ctx context.Context,
	id uint,
	in UpdateInput,
) (*models.Konsultasi, error) {

	k, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.PasienID != nil {
		ok, err := uc.repo.PasienExists(ctx, *in.PasienID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, httperr.ErrField("pasien_id", "pasien tidak ditemukan")
		}
		k.PasienID = *in.PasienID
	}

	if in.DokterID != nil {
		ok, err := uc.repo.DokterExists(ctx, *in.DokterID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, httperr.ErrField("dokter_id", "dokter tidak ditemukan")
		}
		k.DokterID = *in.DokterID
	}

	if in.JadwalID != nil {
		ok, err := uc.repo.JadwalExists(ctx, *in.JadwalID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, httperr.ErrField("jadwal_id", "jadwal dokter tidak ditemukan")
		}
		k.JadwalID = *in.JadwalID
	}

	if in.TanggalKonsultasi != nil {
		k.TanggalKonsultasi = *in.TanggalKonsultasi
	}

	if in.Status != nil {
		if !domain.IsValid(domain.Status(*in.Status)) {
			return nil, httperr.ErrField("status", "status tidak dikenal")
		}
		k.Status = *in.Status
	}

	if err := uc.repo.Update(ctx, k); err != nil {
		return nil, err
	}

	return k, nil
}
