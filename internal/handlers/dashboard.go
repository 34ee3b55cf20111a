package handlers

import (
    "log"

    "github.com/gofiber/fiber/v2"
)

// GetDashboardPage — главная панель администратора со счётчиками.
func (h *Handlers) GetDashboardPage(c *fiber.Ctx) error {
    counts, err := h.store.GetDashboardCounts()
    if err != nil {
        log.Printf("❌ dashboard stats: %v", err)
        return statusPage(c, 500, "Ошибка БД", "Не удалось загрузить статистику.", err)
    }

    log.Printf("📊 Статистика: Участники=%d, Тренеры=%d, Занятия=%d, Брони=%d",
        counts.Members, counts.Trainers, counts.Sessions, counts.Bookings)

    user, _ := currentUser(c)
    return c.Render("dashboard", fiber.Map{
        "Title": "Главная панель",
        "User":  user,
        "Stats": fiber.Map{
            "Members":  counts.Members,
            "Trainers": counts.Trainers,
            "Sessions": counts.Sessions,
            "Bookings": counts.Bookings,
        },
    })
}
