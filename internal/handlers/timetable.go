package handlers

import (
    "log"
    "strconv"
    "strings"

    "github.com/gofiber/fiber/v2"

    "github.com/ryze42/Gym-App/internal/timetable"
)

// locationFilter нормализует параметр фильтра зала:
// пустая строка и "all" означают "без фильтра".
func locationFilter(s string) string {
    s = strings.TrimSpace(s)
    if s == "all" {
        return ""
    }
    return s
}

// GetTimetablePage — расписание занятий, сгруппированное по дням и
// активностям. Параметр ?location= фильтрует по названию зала,
// ?sessionId= подсвечивает выбранное занятие.
func (h *Handlers) GetTimetablePage(c *fiber.Ctx) error {
    location := locationFilter(c.Query("location"))

    sessions, err := h.store.SessionsWithContext(location)
    if err != nil {
        log.Printf("❌ timetable error: %v", err)
        return statusPage(c, 500, "Ошибка БД", "Не удалось загрузить расписание.", err)
    }

    // Список залов для фильтра строим по всем занятиям, не по отфильтрованным.
    all := sessions
    if location != "" {
        all, err = h.store.SessionsWithContext("")
        if err != nil {
            return statusPage(c, 500, "Ошибка БД", "Не удалось загрузить залы.", err)
        }
    }

    selectedID, _ := strconv.Atoi(c.Query("sessionId"))

    user, _ := currentUser(c)
    return c.Render("timetable", fiber.Map{
        "Title":      "Расписание",
        "User":       user,
        "Grouped":    timetable.GroupByDayAndActivity(sessions),
        "Activities": timetable.Activities(sessions),
        "Locations":  timetable.LocationNames(all),
        "Location":   location,
        "Selected":   timetable.SelectedSession(sessions, selectedID),
    })
}
