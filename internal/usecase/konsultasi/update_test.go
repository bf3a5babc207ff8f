package konsultasi

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/rsmedika/hospital-api/internal/domain/konsultasi"
	"github.com/rsmedika/hospital-api/internal/httperr"
	"github.com/rsmedika/hospital-api/internal/models"
)

func existingKonsultasi() *models.Konsultasi {
	return &models.Konsultasi{
		ID:                10,
		PasienID:          1,
		DokterID:          2,
		JadwalID:          3,
		TanggalKonsultasi: "2025-03-10",
		Status:            "Dijadwalkan",
	}
}

func TestUpdateKonsultasiPartial(t *testing.T) {
	repo := allExists()
	repo.GetByIDFunc = func(context.Context, uint) (*models.Konsultasi, error) {
		return existingKonsultasi(), nil
	}
	var saved *models.Konsultasi
	repo.UpdateFunc = func(_ context.Context, k *models.Konsultasi) error {
		saved = k
		return nil
	}

	status := "Selesai"
	uc := NewUpdateKonsultasi(repo)
	out, err := uc.Execute(context.Background(), 10, UpdateInput{Status: &status})
	require.NoError(t, err)
	require.NotNil(t, saved)

	// Field lain tidak tersentuh.
	assert.Equal(t, "Selesai", out.Status)
	assert.Equal(t, uint(1), out.PasienID)
	assert.Equal(t, "2025-03-10", out.TanggalKonsultasi)
}

func TestUpdateKonsultasiNotFound(t *testing.T) {
	repo := allExists()
	repo.GetByIDFunc = func(context.Context, uint) (*models.Konsultasi, error) {
		return nil, domain.ErrNotFound
	}

	uc := NewUpdateKonsultasi(repo)
	_, err := uc.Execute(context.Background(), 99, UpdateInput{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateKonsultasiRejectsMissingPasien(t *testing.T) {
	repo := allExists()
	repo.GetByIDFunc = func(context.Context, uint) (*models.Konsultasi, error) {
		return existingKonsultasi(), nil
	}
	repo.PasienExistsFunc = func(context.Context, uint) (bool, error) { return false, nil }

	pasienID := uint(777)
	uc := NewUpdateKonsultasi(repo)
	_, err := uc.Execute(context.Background(), 10, UpdateInput{PasienID: &pasienID})
	require.Error(t, err)

	fe, ok := httperr.AsField(err)
	require.True(t, ok)
	assert.Equal(t, "pasien_id", fe.Field)
}

func TestUpdateKonsultasiRejectsUnknownStatus(t *testing.T) {
	repo := allExists()
	repo.GetByIDFunc = func(context.Context, uint) (*models.Konsultasi, error) {
		return existingKonsultasi(), nil
	}

	status := "Menunggu"
	uc := NewUpdateKonsultasi(repo)
	_, err := uc.Execute(context.Background(), 10, UpdateInput{Status: &status})
	require.Error(t, err)

	fe, ok := httperr.AsField(err)
	require.True(t, ok)
	assert.Equal(t, "status", fe.Field)
}
