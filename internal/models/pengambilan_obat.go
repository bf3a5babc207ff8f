package models

import "time"

type PengambilanObat struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PasienID uint    `gorm:"not null" json:"pasien_id"`
	Pasien   *Pasien `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"pasien,omitempty"`

	InventoryID uint       `gorm:"not null" json:"inventory_id"`
	Inventory   *Inventory `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"inventory,omitempty"`

	Jumlah             int    `gorm:"not null" json:"jumlah"`
	TanggalPengambilan string `gorm:"size:19;not null" json:"tanggal_pengambilan"`
	Status             string `gorm:"size:10;not null" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
