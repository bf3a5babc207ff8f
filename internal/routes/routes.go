package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rsmedika/hospital-api/internal/handlers"
	infraRepo "github.com/rsmedika/hospital-api/internal/infra/repository"
	"github.com/rsmedika/hospital-api/internal/middleware"
	"github.com/rsmedika/hospital-api/internal/token"
	ucKonsultasi "github.com/rsmedika/hospital-api/internal/usecase/konsultasi"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, tokens *token.Manager) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	konsultasiRepo := infraRepo.NewKonsultasiGormRepository(db)

	// ======================================================
	// 🧠 USE CASES — KONSULTASI
	// ======================================================
	createKonsultasiUC := ucKonsultasi.NewCreateKonsultasi(konsultasiRepo)
	updateKonsultasiUC := ucKonsultasi.NewUpdateKonsultasi(konsultasiRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, tokens)
	userHandler := handlers.NewUserHandler(db)

	pasienHandler := handlers.NewPasienHandler(db)
	dokterHandler := handlers.NewDokterHandler(db)
	poliHandler := handlers.NewPoliHandler(db)
	jadwalHandler := handlers.NewJadwalDokterHandler(db)

	konsultasiHandler := handlers.NewKonsultasiHandler(
		konsultasiRepo,
		createKonsultasiUC,
		updateKonsultasiUC,
	)

	rekamMedisHandler := handlers.NewRekamMedisHandler(db)
	inventoryHandler := handlers.NewInventoryHandler(db)
	pengambilanHandler := handlers.NewPengambilanObatHandler(db)
	pendaftaranHandler := handlers.NewPendaftaranHandler(db)
	antreanHandler := handlers.NewAntreanHandler(db)
	paymentHandler := handlers.NewPaymentHandler(db)
	laporanHandler := handlers.NewLaporanHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(tokens))
		{
			secured.POST("/logout", authHandler.Logout)

			secured.GET("/user", userHandler.List)
			secured.GET("/user/:id", userHandler.Get)
			secured.POST("/user", userHandler.Create)
			secured.PUT("/user/:id", userHandler.Update)
			secured.DELETE("/user/:id", userHandler.Delete)

			secured.GET("/pasien", pasienHandler.List)
			secured.GET("/pasien/:id", pasienHandler.Get)
			secured.POST("/pasien", pasienHandler.Create)
			secured.PUT("/pasien/:id", pasienHandler.Update)
			secured.DELETE("/pasien/:id", pasienHandler.Delete)

			secured.GET("/dokter", dokterHandler.List)
			secured.GET("/dokter/:id", dokterHandler.Get)
			secured.POST("/dokter", dokterHandler.Create)
			secured.PUT("/dokter/:id", dokterHandler.Update)
			secured.DELETE("/dokter/:id", dokterHandler.Delete)

			secured.GET("/poli", poliHandler.List)
			secured.GET("/poli/:id", poliHandler.Get)
			secured.POST("/poli", poliHandler.Create)
			secured.PUT("/poli/:id", poliHandler.Update)
			secured.DELETE("/poli/:id", poliHandler.Delete)

			secured.GET("/jadwal-dokter", jadwalHandler.List)
			secured.GET("/jadwal-dokter/:id", jadwalHandler.Get)
			secured.POST("/jadwal-dokter", jadwalHandler.Create)
			secured.PUT("/jadwal-dokter/:id", jadwalHandler.Update)
			secured.DELETE("/jadwal-dokter/:id", jadwalHandler.Delete)

			// ------------------------------
			// KONSULTASI
			// ------------------------------
			secured.GET("/konsultasi", konsultasiHandler.List)
			secured.GET("/konsultasi/:id", konsultasiHandler.Get)
			secured.POST("/konsultasi", konsultasiHandler.Create)
			secured.PUT("/konsultasi/:id", konsultasiHandler.Update)
			secured.DELETE("/konsultasi/:id", konsultasiHandler.Delete)

			secured.GET("/rekam-medis", rekamMedisHandler.List)
			secured.GET("/rekam-medis/:id", rekamMedisHandler.Get)
			secured.POST("/rekam-medis", rekamMedisHandler.Create)
			secured.PUT("/rekam-medis/:id", rekamMedisHandler.Update)
			secured.DELETE("/rekam-medis/:id", rekamMedisHandler.Delete)

			secured.GET("/inventory", inventoryHandler.List)
			secured.GET("/inventory/:id", inventoryHandler.Get)
			secured.POST("/inventory", inventoryHandler.Create)
			secured.PUT("/inventory/:id", inventoryHandler.Update)
			secured.DELETE("/inventory/:id", inventoryHandler.Delete)

			secured.GET("/pengambilan-obat", pengambilanHandler.List)
			secured.GET("/pengambilan-obat/:id", pengambilanHandler.Get)
			secured.POST("/pengambilan-obat", pengambilanHandler.Create)
			secured.PUT("/pengambilan-obat/:id", pengambilanHandler.Update)
			secured.DELETE("/pengambilan-obat/:id", pengambilanHandler.Delete)

			secured.GET("/pendaftaran", pendaftaranHandler.List)
			secured.GET("/pendaftaran/:id", pendaftaranHandler.Get)
			secured.POST("/pendaftaran", pendaftaranHandler.Create)
			secured.PUT("/pendaftaran/:id", pendaftaranHandler.Update)
			secured.DELETE("/pendaftaran/:id", pendaftaranHandler.Delete)

			secured.GET("/antrean", antreanHandler.List)
			secured.GET("/antrean/:id", antreanHandler.Get)
			secured.POST("/antrean", antreanHandler.Create)
			secured.PUT("/antrean/:id", antreanHandler.Update)
			secured.DELETE("/antrean/:id", antreanHandler.Delete)

			secured.GET("/payments", paymentHandler.List)
			secured.GET("/payments/:id", paymentHandler.Get)
			secured.POST("/payments", paymentHandler.Create)
			secured.PUT("/payments/:id", paymentHandler.Update)
			secured.DELETE("/payments/:id", paymentHandler.Delete)

			secured.GET("/laporan", laporanHandler.List)
			secured.GET("/laporan/:id", laporanHandler.Get)
			secured.POST("/laporan", laporanHandler.Create)
			secured.PUT("/laporan/:id", laporanHandler.Update)
			secured.DELETE("/laporan/:id", laporanHandler.Delete)
		}
	}
}
