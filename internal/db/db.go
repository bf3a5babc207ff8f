package db

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/rsmedika/hospital-api/internal/config"
	"github.com/rsmedika/hospital-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Dokter{},
		&models.Poli{},
		&models.JadwalDokter{},
		&models.Pasien{},
		&models.Pendaftaran{},
		&models.Konsultasi{},
		&models.RekamMedis{},
		&models.Inventory{},
		&models.PengambilanObat{},
		&models.Payment{},
		&models.Antrean{},
		&models.Laporan{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	seedAdmin(db)

	return db
}

// seedAdmin membuat akun admin awal saat tabel users masih kosong.
func seedAdmin(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil || count > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("failed to hash admin password: %v", err)
		return
	}

	admin := models.User{
		Name:         "Administrator",
		Email:        "admin@example.com",
		PasswordHash: string(hashed),
		IsAdmin:      true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("failed to seed admin user: %v", err)
	}
}
