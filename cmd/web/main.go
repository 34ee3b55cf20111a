package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"

	"github.com/ryze42/Gym-App/internal/config"
	"github.com/ryze42/Gym-App/internal/database"
	"github.com/ryze42/Gym-App/internal/handlers"
	"github.com/ryze42/Gym-App/internal/models"
	"github.com/ryze42/Gym-App/internal/store"
)

func main() {
	// Загрузка конфигурации
	cfg := config.LoadConfig()

	// Подключение к базе данных
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("❌ Ошибка подключения к БД: %v", err)
	}
	defer db.Close()

	if err := database.TestConnection(db); err != nil {
		log.Fatalf("❌ БД недоступна: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("❌ Ошибка миграции схемы: %v", err)
	}

	st := store.New(db)
	h := handlers.New(st, cfg)

	// Инициализация шаблонов
	engine := html.New(cfg.Server.TemplatePath, ".html")

	// Создание приложения Fiber
	app := fiber.New(fiber.Config{
		Views:       engine,
		AppName:     "HighStreetGym",
		ViewsLayout: "layouts/base",
		BodyLimit:   10 * 1024 * 1024, // до 10 МБ на запрос
	})

	// -------------------------------
	// Middleware: безопасность и логика
	// -------------------------------

	app.Use(recover.New())  // Перехватывает паники, возвращает 500 вместо краша
	app.Use(helmet.New())   // Добавляет HTTP security-заголовки
	app.Use(compress.New()) // Сжимает ответы gzip/br
	app.Use(logger.New())   // Логи запросов
	app.Use(limiter.New(limiter.Config{
		Max:        120,         // 120 запросов
		Expiration: time.Minute, // за минуту
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).SendString("Слишком много запросов. Попробуйте позже.")
		},
	}))
	app.Use(etag.New()) // Ускоряет GET-запросы через кэширование по ETag
	app.Use(encryptcookie.New(encryptcookie.Config{
		Key: cfg.Server.SessionSecret, // base64, 32 байта (см. config.secret.yaml.example)
	}))

	// -------------------------------
	// Статика и маршруты
	// -------------------------------
	app.Static("/static", cfg.Server.StaticPath)

	setupRoutes(app, h)

	log.Printf("🚀 Сервер запущен на http://localhost%s", cfg.Server.Port)
	log.Printf("📅 Расписание: http://localhost%s/session_timetable", cfg.Server.Port)

	log.Fatal(app.Listen(cfg.Server.Port))
}

// setupRoutes — маршруты приложения
func setupRoutes(app *fiber.App, h *handlers.Handlers) {
	admin := models.RoleAdmin
	trainer := models.RoleTrainer
	member := models.RoleMember

	// -------------------------------
	// Серверные страницы (cookie-сессии)
	// -------------------------------
	pages := app.Group("/", h.SessionAuth)

	pages.Get("/", h.GetTimetablePage)
	pages.Get("/session_timetable", h.GetTimetablePage)

	// вход и регистрация
	pages.Get("/authenticate", h.GetLoginPage)
	pages.Post("/authenticate", h.HandleLogin)
	pages.Post("/register", h.HandleRegister)
	pages.Post("/logout", h.HandleLogout)

	// профиль
	pages.Get("/profile", h.RequirePage(admin, trainer, member), h.GetProfilePage)
	pages.Post("/profile", h.RequirePage(admin, trainer, member), h.HandleProfileForm)

	// брони текущего пользователя
	pages.Get("/bookings/my", h.RequirePage(admin, trainer, member), h.GetMyBookingsPage)
	pages.Get("/book_session/:id", h.RequirePage(member, admin), h.GetBookSessionPage)
	pages.Post("/book_session", h.RequirePage(member, admin), h.HandleBookSession)
	pages.Post("/bookings/:id/cancel", h.RequirePage(admin, trainer, member), h.HandleCancelBooking)

	// блог
	pages.Get("/blog", h.RequirePage(admin, trainer, member), h.GetBlogPage)
	pages.Get("/blog/:id", h.RequirePage(admin, trainer, member), h.GetBlogPostPage)
	pages.Post("/blog", h.RequirePage(admin, trainer, member), h.HandleBlogForm)

	// панель администратора
	pages.Get("/dashboard", h.RequirePage(admin), h.GetDashboardPage)

	// управление пользователями
	pages.Get("/users", h.RequirePage(admin), h.GetUsersPage)
	pages.Get("/users/:id", h.RequirePage(admin), h.GetUsersPage)
	pages.Post("/users", h.RequirePage(admin), h.HandleUsersForm)

	// управление активностями
	pages.Get("/activities", h.RequirePage(admin), h.GetActivitiesPage)
	pages.Get("/activities/:id", h.RequirePage(admin), h.GetActivitiesPage)
	pages.Post("/activities", h.RequirePage(admin), h.HandleActivitiesForm)

	// управление залами
	pages.Get("/locations", h.RequirePage(admin), h.GetLocationsPage)
	pages.Get("/locations/:id", h.RequirePage(admin), h.GetLocationsPage)
	pages.Post("/locations", h.RequirePage(admin), h.HandleLocationsForm)

	// управление занятиями
	pages.Get("/sessions", h.RequirePage(admin), h.GetSessionsPage)
	pages.Get("/sessions/:id", h.RequirePage(admin), h.GetSessionsPage)
	pages.Post("/sessions", h.RequirePage(admin), h.HandleSessionsForm)

	// управление бронями
	pages.Get("/bookings", h.RequirePage(admin), h.GetBookingManagementPage)
	pages.Post("/bookings", h.RequirePage(admin), h.HandleBookingsForm)

	// -------------------------------
	// JSON API (заголовок x-auth-key)
	// -------------------------------
	api := app.Group("/api")

	// аутентификация без ключа
	api.Post("/authenticate", h.APIAuthenticate)
	api.Post("/register", h.APIRegister)

	auth := api.Group("/", h.APIAuth)
	auth.Post("/deauthenticate", h.APIDeauthenticate)

	// расписание
	auth.Get("/timetable", h.APITimetable)

	// профиль
	auth.Get("/profile", h.APIGetProfile)
	auth.Put("/profile", h.APIUpdateProfile)

	// пользователи (только админ)
	auth.Get("/users", h.APIRequire(admin), h.APIGetUsers)
	auth.Post("/users", h.APIRequire(admin), h.APICreateUser)
	auth.Get("/users/:id", h.APIRequire(admin), h.APIGetUser)
	auth.Put("/users/:id", h.APIRequire(admin), h.APIUpdateUser)
	auth.Delete("/users/:id", h.APIRequire(admin), h.APIDeleteUser)

	// брони
	auth.Get("/bookings/xml", h.APIExportBookingsXML)
	auth.Get("/bookings/my", h.APIGetMyBookings)
	auth.Get("/bookings", h.APIRequire(admin), h.APIGetBookings)
	auth.Post("/bookings", h.APICreateBooking)
	auth.Get("/bookings/:id", h.APIGetBooking)
	auth.Put("/bookings/:id", h.APIRequire(admin), h.APIUpdateBooking)
	auth.Delete("/bookings/:id", h.APICancelBooking)

	// занятия тренера
	auth.Get("/sessions/xml", h.APIRequire(trainer, admin), h.APIExportSessionsXML)

	// блог
	auth.Get("/blog", h.APIGetBlogPosts)
	auth.Post("/blog", h.APICreateBlogPost)
	auth.Get("/blog/:id", h.APIGetBlogPost)
	auth.Put("/blog/:id", h.APIUpdateBlogPost)
	auth.Delete("/blog/:id", h.APIDeleteBlogPost)
}
