package handlers

import (
    "strconv"

    "github.com/gofiber/fiber/v2"

    "github.com/ryze42/Gym-App/internal/models"
    "github.com/ryze42/Gym-App/internal/timetable"
)

// APITimetable — расписание в JSON для мобильного клиента.
// ?location= фильтрует по названию зала, ?sessionId= возвращает выбранное
// занятие в поле selectedSession.
func (h *Handlers) APITimetable(c *fiber.Ctx) error {
    location := locationFilter(c.Query("location"))

    sessions, err := h.store.SessionsWithContext(location)
    if err != nil {
        return jsonError(c, 500, "Ошибка БД", err)
    }

    all := sessions
    if location != "" {
        all, err = h.store.SessionsWithContext("")
        if err != nil {
            return jsonError(c, 500, "Ошибка БД", err)
        }
    }

    trainers, err := h.store.GetUsersByRole(models.RoleTrainer)
    if err != nil {
        return jsonError(c, 500, "Ошибка БД", err)
    }

    selectedID, _ := strconv.Atoi(c.Query("sessionId"))

    // Клиент ожидает ключ обратно в том же виде, в каком его выдал login.
    return jsonOK(c, fiber.Map{
        "authenticationKey": fiber.Map{"key": c.Get("x-auth-key")},
        "sessions":          timetable.GroupByDayAndActivity(sessions),
        "activities":        timetable.Activities(sessions),
        "locations":         timetable.LocationNames(all),
        "trainers":          trainers,
        "selectedSession":   timetable.SelectedSession(sessions, selectedID),
    })
}
