package konsultasi

import (
	"context"

	domain "github.com/rsmedika/hospital-api/internal/domain/konsultasi"
	"github.com/rsmedika/hospital-api/internal/models"
)

type mockRepository struct {
	PasienExistsFunc func(ctx context.Context, id uint) (bool, error)
	DokterExistsFunc func(ctx context.Context, id uint) (bool, error)
	JadwalExistsFunc func(ctx context.Context, id uint) (bool, error)
	CreateFunc       func(ctx context.Context, k *models.Konsultasi) error
	ListFunc         func(ctx context.Context) ([]models.Konsultasi, error)
	GetByIDFunc      func(ctx context.Context, id uint) (*models.Konsultasi, error)
	UpdateFunc       func(ctx context.Context, k *models.Konsultasi) error
	DeleteFunc       func(ctx context.Context, k *models.Konsultasi) error
}

func (m *mockRepository) PasienExists(ctx context.Context, id uint) (bool, error) {
	return m.PasienExistsFunc(ctx, id)
}

func (m *mockRepository) DokterExists(ctx context.Context, id uint) (bool, error) {
	return m.DokterExistsFunc(ctx, id)
}

func (m *mockRepository) JadwalExists(ctx context.Context, id uint) (bool, error) {
	return m.JadwalExistsFunc(ctx, id)
}

func (m *mockRepository) Create(ctx context.Context, k *models.Konsultasi) error {
	return m.CreateFunc(ctx, k)
}

func (m *mockRepository) List(ctx context.Context) ([]models.Konsultasi, error) {
	return m.ListFunc(ctx)
}

func (m *mockRepository) GetByID(ctx context.Context, id uint) (*models.Konsultasi, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *mockRepository) Update(ctx context.Context, k *models.Konsultasi) error {
	return m.UpdateFunc(ctx, k)
}

func (m *mockRepository) Delete(ctx context.Context, k *models.Konsultasi) error {
	return m.DeleteFunc(ctx, k)
}

var _ domain.Repository = (*mockRepository)(nil)

// allExists mengembalikan mock yang menganggap semua relasi ada.
func allExists() *mockRepository {
	exists := func(context.Context, uint) (bool, error) { return true, nil }
	return &mockRepository{
		PasienExistsFunc: exists,
		DokterExistsFunc: exists,
		JadwalExistsFunc: exists,
	}
}
