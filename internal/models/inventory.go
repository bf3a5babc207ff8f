package models

import "time"

type Inventory struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	NamaObat string  `gorm:"size:100;not null" json:"nama_obat"`
	Kategori string  `gorm:"size:20;not null" json:"kategori"`
	Stok     int     `gorm:"not null" json:"stok"`
	Harga    float64 `gorm:"not null" json:"harga"`
	ExpDate  string  `gorm:"size:10;not null" json:"exp_date"`

	PengambilanObat []PengambilanObat `gorm:"foreignKey:InventoryID" json:"pengambilan_obat,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
