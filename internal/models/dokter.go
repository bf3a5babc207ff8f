package models

import "time"

type Dokter struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Nama         string `gorm:"size:100;not null" json:"nama"`
	Spesialisasi string `gorm:"size:100;not null" json:"spesialisasi"`
	NoTelepon    string `gorm:"size:20;uniqueIndex;not null" json:"no_telepon"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`

	Jadwal     []JadwalDokter `gorm:"foreignKey:DokterID" json:"jadwal,omitempty"`
	Konsultasi []Konsultasi   `gorm:"foreignKey:DokterID" json:"konsultasi,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
