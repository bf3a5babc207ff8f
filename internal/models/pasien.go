package models

import "time"

type Pasien struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Nama         string `gorm:"size:100;not null" json:"nama"`
	TanggalLahir string `gorm:"size:10;not null" json:"tanggal_lahir"`
	JenisKelamin string `gorm:"size:10;not null" json:"jenis_kelamin"`
	Alamat       string `gorm:"type:text;not null" json:"alamat"`

	RekamMedis      []RekamMedis      `gorm:"foreignKey:PasienID" json:"rekam_medis,omitempty"`
	Pendaftaran     []Pendaftaran     `gorm:"foreignKey:PasienID" json:"pendaftaran,omitempty"`
	Konsultasi      []Konsultasi      `gorm:"foreignKey:PasienID" json:"konsultasi,omitempty"`
	Antrean         []Antrean         `gorm:"foreignKey:PasienID" json:"antrean,omitempty"`
	PengambilanObat []PengambilanObat `gorm:"foreignKey:PasienID" json:"pengambilan_obat,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
