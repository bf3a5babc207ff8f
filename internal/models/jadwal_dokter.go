package models

import "time"

type JadwalDokter struct {
	ID uint `gorm:"primaryKey" json:"id"`

	DokterID uint    `gorm:"not null" json:"dokter_id"`
	Dokter   *Dokter `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"dokter,omitempty"`

	PoliID uint  `gorm:"not null" json:"poli_id"`
	Poli   *Poli `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"poli,omitempty"`

	Hari       string `gorm:"size:10;not null" json:"hari"`
	JamMulai   string `gorm:"size:8;not null" json:"jam_mulai"`
	JamSelesai string `gorm:"size:8;not null" json:"jam_selesai"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
