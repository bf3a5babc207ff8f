package models

import "time"

type Pendaftaran struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PasienID uint    `gorm:"not null" json:"pasien_id"`
	Pasien   *Pasien `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"pasien,omitempty"`

	PoliID uint  `gorm:"not null" json:"poli_id"`
	Poli   *Poli `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"poli,omitempty"`

	StatusBpjs  string    `gorm:"size:5;not null" json:"status_bpjs"`
	WaktuDaftar time.Time `json:"waktu_daftar"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
