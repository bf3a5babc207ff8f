package models

import "time"

// Poli adalah unit pelayanan (poliklinik) rumah sakit.
type Poli struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	NamaPoli string `gorm:"size:100;not null" json:"nama_poli"`

	Jadwal      []JadwalDokter `gorm:"foreignKey:PoliID" json:"jadwal,omitempty"`
	Pendaftaran []Pendaftaran  `gorm:"foreignKey:PoliID" json:"pendaftaran,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
