package konsultasi

import (
	"context"
	"errors"

	"github.com/rsmedika/hospital-api/internal/models"
)

var ErrNotFound = errors.New("konsultasi not found")

type Repository interface {
	// -------- Keberadaan relasi --------
	PasienExists(ctx context.Context, id uint) (bool, error)
	DokterExists(ctx context.Context, id uint) (bool, error)
	JadwalExists(ctx context.Context, id uint) (bool, error)

	// -------- Konsultasi --------
	Create(ctx context.Context, k *models.Konsultasi) error

	List(ctx context.Context) ([]models.Konsultasi, error)

	// GetByID memuat relasi pasien, dokter, jadwal, dan payment;
	// mengembalikan ErrNotFound bila id tidak ada.
	GetByID(ctx context.Context, id uint) (*models.Konsultasi, error)

	Update(ctx context.Context, k *models.Konsultasi) error

	Delete(ctx context.Context, k *models.Konsultasi) error
}
