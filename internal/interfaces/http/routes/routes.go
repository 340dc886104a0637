package routes

import (
	"github.com/richardGonza/orasLocal/internal/application/usecases"
	"github.com/richardGonza/orasLocal/internal/domain/repositories"
	"github.com/richardGonza/orasLocal/internal/infrastructure/cache"
	"github.com/richardGonza/orasLocal/internal/interfaces/http/handlers"
	"github.com/richardGonza/orasLocal/internal/interfaces/http/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(etag.New())

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// Repositories
	personRepo := repositories.NewPersonRepository(db)
	encuestaRepo := repositories.NewEncuestaRepository(db)
	bibleReadingRepo := repositories.NewBibleReadingRepository(db)
	oracionRepo := repositories.NewOracionRepository(db)
	dashboardRepo := repositories.NewDashboardRepository(db)

	// Use Cases
	authUseCase := usecases.NewAuthUseCase(personRepo)
	otpUseCase := usecases.NewOtpUseCase()
	encuestaUseCase := usecases.NewEncuestaUseCase(encuestaRepo, false)
	bibliaUseCase := usecases.NewBibliaUseCase(bibleReadingRepo)
	oracionUseCase := usecases.NewOracionUseCase(oracionRepo)
	dashboardUseCase := usecases.NewDashboardUseCase(dashboardRepo, cache.New())
	adminUseCase := usecases.NewAdminUseCase(personRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authUseCase)
	otpHandler := handlers.NewOtpHandler(otpUseCase)
	encuestaHandler := handlers.NewEncuestaHandler(encuestaUseCase)
	bibliaHandler := handlers.NewBibliaHandler(bibliaUseCase)
	oracionHandler := handlers.NewOracionHandler(oracionUseCase)
	adminHandler := handlers.NewAdminHandler(adminUseCase, dashboardUseCase)

	// Rutas públicas (sin sesión ni CSRF)
	app.Post("/register", authHandler.Register)
	app.Post("/login", authHandler.Login)
	app.Post("/admin/login", authHandler.AdminLogin)
	app.Post("/otp/send", otpHandler.SendCode)
	app.Post("/otp/verify", otpHandler.VerifyCode)
	app.Get("/csrf-cookie", authHandler.CsrfCookie)

	// Rutas con sesión: token válido + chequeo CSRF en métodos con efectos
	session := app.Group("/", middleware.RequireAuth(db), middleware.VerifyCsrf())

	session.Post("/logout", authHandler.Logout)
	session.Get("/me", authHandler.Me)

	session.Get("/encuestas", encuestaHandler.Index)
	session.Post("/encuestas", encuestaHandler.Store)
	session.Post("/respuestas", encuestaHandler.StoreRespuesta)

	session.Post("/biblia/registrar", bibliaHandler.Store)

	// Las rutas fijas van antes que /:id para que Fiber no las capture como
	// parámetro
	session.Get("/oraciones", oracionHandler.Index)
	session.Get("/oraciones/categorias", oracionHandler.Categorias)
	session.Get("/oraciones/recomendadas", oracionHandler.Recomendadas)
	session.Get("/oraciones/:id", oracionHandler.Show)
	session.Post("/oraciones/:id/completar", oracionHandler.Completar)
	session.Post("/oraciones/:id/progreso", oracionHandler.Progreso)

	// Panel de administración: hereda sesión y CSRF del grupo padre
	admin := session.Group("/admin", middleware.RequireAdmin())

	admin.Get("/dashboard", adminHandler.Dashboard)
	admin.Get("/funnel", adminHandler.Funnel)
	admin.Get("/users", adminHandler.Users)
	admin.Post("/users", adminHandler.StoreUser)
	admin.Put("/users/:id", adminHandler.UpdateUser)
	admin.Delete("/users/:id", adminHandler.DeleteUser)
}
