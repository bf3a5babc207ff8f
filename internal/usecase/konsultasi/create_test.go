package konsultasi

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsmedika/hospital-api/internal/httperr"
	"github.com/rsmedika/hospital-api/internal/models"
)

func TestCreateKonsultasiDefaultsStatus(t *testing.T) {
	repo := allExists()
	var saved *models.Konsultasi
	repo.CreateFunc = func(_ context.Context, k *models.Konsultasi) error {
		saved = k
		return nil
	}

	uc := NewCreateKonsultasi(repo)
	out, err := uc.Execute(context.Background(), CreateInput{
		PasienID:          1,
		DokterID:          2,
		JadwalID:          3,
		TanggalKonsultasi: "2025-03-10",
	})
	require.NoError(t, err)
	require.NotNil(t, saved)

	assert.Equal(t, "Dijadwalkan", out.Status)
	assert.Equal(t, uint(1), saved.PasienID)
	assert.Equal(t, "2025-03-10", saved.TanggalKonsultasi)
}

func TestCreateKonsultasiKeepsGivenStatus(t *testing.T) {
	repo := allExists()
	repo.CreateFunc = func(context.Context, *models.Konsultasi) error { return nil }

	uc := NewCreateKonsultasi(repo)
	out, err := uc.Execute(context.Background(), CreateInput{
		PasienID:          1,
		DokterID:          2,
		JadwalID:          3,
		TanggalKonsultasi: "2025-03-10",
		Status:            "Selesai",
	})
	require.NoError(t, err)
	assert.Equal(t, "Selesai", out.Status)
}

func TestCreateKonsultasiRejectsMissingRelations(t *testing.T) {
	cases := []struct {
		name  string
		patch func(*mockRepository)
		field string
	}{
		{
			name: "pasien tidak ada",
			patch: func(m *mockRepository) {
				m.PasienExistsFunc = func(context.Context, uint) (bool, error) { return false, nil }
			},
			field: "pasien_id",
		},
		{
			name: "dokter tidak ada",
			patch: func(m *mockRepository) {
				m.DokterExistsFunc = func(context.Context, uint) (bool, error) { return false, nil }
			},
			field: "dokter_id",
		},
		{
			name: "jadwal tidak ada",
			patch: func(m *mockRepository) {
				m.JadwalExistsFunc = func(context.Context, uint) (bool, error) { return false, nil }
			},
			field: "jadwal_id",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := allExists()
			tc.patch(repo)

			uc := NewCreateKonsultasi(repo)
			_, err := uc.Execute(context.Background(), CreateInput{
				PasienID:          1,
				DokterID:          2,
				JadwalID:          3,
				TanggalKonsultasi: "2025-03-10",
			})
			require.Error(t, err)

			fe, ok := httperr.AsField(err)
			require.True(t, ok)
			assert.Equal(t, tc.field, fe.Field)
		})
	}
}

func TestCreateKonsultasiRejectsUnknownStatus(t *testing.T) {
	uc := NewCreateKonsultasi(allExists())

	_, err := uc.Execute(context.Background(), CreateInput{
		PasienID:          1,
		DokterID:          2,
		JadwalID:          3,
		TanggalKonsultasi: "2025-03-10",
		Status:            "Ditunda",
	})
	require.Error(t, err)

	fe, ok := httperr.AsField(err)
	require.True(t, ok)
	assert.Equal(t, "status", fe.Field)
}
