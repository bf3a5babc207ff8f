package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/rsmedika/hospital-api/internal/domain/konsultasi"
	"github.com/rsmedika/hospital-api/internal/models"
)

type KonsultasiGormRepository struct {
	db *gorm.DB
}

func NewKonsultasiGormRepository(db *gorm.DB) *KonsultasiGormRepository {
	return &KonsultasiGormRepository{db: db}
}

// --------------------------------------------------
// Keberadaan relasi
// --------------------------------------------------

func (r *KonsultasiGormRepository) PasienExists(ctx context.Context, id uint) (bool, error) {
	return r.exists(ctx, &models.Pasien{}, id)
}

func (r *KonsultasiGormRepository) DokterExists(ctx context.Context, id uint) (bool, error) {
	return r.exists(ctx, &models.Dokter{}, id)
}

func (r *KonsultasiGormRepository) JadwalExists(ctx context.Context, id uint) (bool, error) {
	return r.exists(ctx, &models.JadwalDokter{}, id)
}

func (r *KonsultasiGormRepository) exists(ctx context.Context, model any, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// --------------------------------------------------
// Konsultasi
// --------------------------------------------------

func (r *KonsultasiGormRepository) Create(ctx context.Context, k *models.Konsultasi) error {
	return r.db.WithContext(ctx).Create(k).Error
}

func (r *KonsultasiGormRepository) List(ctx context.Context) ([]models.Konsultasi, error) {
	var list []models.Konsultasi
	if err := r.db.WithContext(ctx).
		Preload("Pasien").
		Preload("Dokter").
		Preload("Jadwal").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *KonsultasiGormRepository) GetByID(ctx context.Context, id uint) (*models.Konsultasi, error) {
	var k models.Konsultasi
	if err := r.db.WithContext(ctx).
		Preload("Pasien").
		Preload("Dokter").
		Preload("Jadwal").
		Preload("Payment").
		First(&k, id).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &k, nil
}

func (r *KonsultasiGormRepository) Update(ctx context.Context, k *models.Konsultasi) error {
	// Relasi hasil preload tidak ikut disimpan ulang.
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(k).Error
}

func (r *KonsultasiGormRepository) Delete(ctx context.Context, k *models.Konsultasi) error {
	return r.db.WithContext(ctx).Delete(k).Error
}

// Compile-time check
var _ domain.Repository = (*KonsultasiGormRepository)(nil)
