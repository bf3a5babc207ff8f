package models

import "time"

// Antrean adalah tiket antrean harian pasien.
type Antrean struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PasienID uint    `gorm:"not null" json:"pasien_id"`
	Pasien   *Pasien `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"pasien,omitempty"`

	NomorAntrean string `gorm:"size:50;not null" json:"nomor_antrean"`
	Status       string `gorm:"size:10;default:'menunggu'" json:"status"`
	Tanggal      string `gorm:"size:10;not null" json:"tanggal"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
