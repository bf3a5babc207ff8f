package models

import "time"

type RekamMedis struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PasienID uint    `gorm:"not null" json:"pasien_id"`
	Pasien   *Pasien `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"pasien,omitempty"`

	TanggalKunjungan string  `gorm:"size:10;not null" json:"tanggal_kunjungan"`
	Diagnosis        string  `gorm:"type:text;not null" json:"diagnosis"`
	Tindakan         string  `gorm:"type:text;not null" json:"tindakan"`
	Obat             string  `gorm:"type:text;not null" json:"obat"`
	Catatan          *string `gorm:"type:text" json:"catatan"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
