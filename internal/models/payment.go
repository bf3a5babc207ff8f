package models

import "time"

type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	KonsultasiID uint        `gorm:"not null" json:"konsultasi_id"`
	Konsultasi   *Konsultasi `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"konsultasi,omitempty"`

	Amount      float64 `gorm:"not null" json:"amount"`
	PaymentDate string  `gorm:"size:19;not null" json:"payment_date"`
	Method      string  `gorm:"size:20;not null" json:"method"`
	Status      string  `gorm:"size:10;default:'Pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
