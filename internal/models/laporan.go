package models

import "time"

// Laporan adalah rekap periodik yang diinput petugas, bukan agregat otomatis.
type Laporan struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Periode      string  `gorm:"size:50;not null" json:"periode"`
	JumlahPasien int     `gorm:"not null" json:"jumlah_pasien"`
	Pendapatan   float64 `gorm:"not null" json:"pendapatan"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
