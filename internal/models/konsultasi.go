package models

import "time"

type Konsultasi struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PasienID uint    `gorm:"not null" json:"pasien_id"`
	Pasien   *Pasien `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"pasien,omitempty"`

	DokterID uint    `gorm:"not null" json:"dokter_id"`
	Dokter   *Dokter `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"dokter,omitempty"`

	JadwalID uint          `gorm:"not null" json:"jadwal_id"`
	Jadwal   *JadwalDokter `gorm:"foreignKey:JadwalID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"jadwal,omitempty"`

	TanggalKonsultasi string `gorm:"size:10;not null" json:"tanggal_konsultasi"`
	Status            string `gorm:"size:20;default:'Dijadwalkan'" json:"status"`

	Payment *Payment `gorm:"foreignKey:KonsultasiID" json:"payment,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
