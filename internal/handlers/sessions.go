package handlers

import (
    "errors"
    "log"
    "strconv"
    "time"

    "github.com/gofiber/fiber/v2"

    "github.com/ryze42/Gym-App/internal/models"
    "github.com/ryze42/Gym-App/internal/store"
)

// parseSessionDate проверяет дату формы (YYYY-MM-DD).
func parseSessionDate(s string) (string, error) {
    t, err := time.Parse("2006-01-02", s)
    if err != nil {
        return "", err
    }
    return t.Format("2006-01-02"), nil
}

// parseSessionTime принимает HH:MM или HH:MM:SS и нормализует к HH:MM:SS.
func parseSessionTime(s string) (string, error) {
    if t, err := time.Parse("15:04:05", s); err == nil {
        return t.Format("15:04:05"), nil
    }
    t, err := time.Parse("15:04", s)
    if err != nil {
        return "", err
    }
    return t.Format("15:04:05"), nil
}

// GetSessionsPage — страница управления занятиями (только админ).
func (h *Handlers) GetSessionsPage(c *fiber.Ctx) error {
    sessions, err := h.store.SessionsWithContext("")
    if err != nil {
        log.Printf("❌ sessions list error: %v", err)
        return statusPage(c, 500, "Ошибка БД", "Не удалось загрузить занятия.", err)
    }
    activities, err := h.store.GetAllActivities()
    if err != nil {
        return statusPage(c, 500, "Ошибка БД", "Не удалось загрузить активности.", err)
    }
    locations, err := h.store.GetAllLocations()
    if err != nil {
        return statusPage(c, 500, "Ошибка БД", "Не удалось загрузить залы.", err)
    }
    trainers, err := h.store.GetUsersByRole(models.RoleTrainer)
    if err != nil {
        return statusPage(c, 500, "Ошибка БД", "Не удалось загрузить тренеров.", err)
    }

    selectedID, _ := strconv.Atoi(c.Params("id"))
    var selected models.SessionView
    for _, s := range sessions {
        if s.Session.ID == selectedID {
            selected = s
            break
        }
    }

    user, _ := currentUser(c)
    return c.Render("sessions", fiber.Map{
        "Title":      "Занятия",
        "User":       user,
        "Sessions":   sessions,
        "Activities": activities,
        "Locations":  locations,
        "Trainers":   trainers,
        "Selected":   selected,
    })
}

// HandleSessionsForm обрабатывает форму занятий.
// Поле action: create | update | delete (мягкое удаление, брони остаются).
func (h *Handlers) HandleSessionsForm(c *fiber.Ctx) error {
    type formT struct {
        ID         int    `form:"id"`
        ActivityID int    `form:"activity_id"`
        Date       string `form:"date"`       // YYYY-MM-DD
        StartTime  string `form:"start_time"` // HH:MM
        LocationID int    `form:"location_id"`
        TrainerID  int    `form:"trainer_id"`
        Action     string `form:"action"`
    }
    var f formT
    if err := c.BodyParser(&f); err != nil {
        return statusPage(c, 400, "Неверные данные формы", "Не удалось разобрать форму.", err)
    }
    if f.ID == 0 {
        f.ID, _ = strconv.Atoi(c.Params("id"))
    }

    switch f.Action {
    case "create", "update":
        if f.ActivityID <= 0 || f.LocationID <= 0 || f.TrainerID <= 0 || f.Date == "" || f.StartTime == "" {
            return statusPage(c, 400, "Ошибка валидации", "Заполните обязательные поля.", nil)
        }
        date, err := parseSessionDate(f.Date)
        if err != nil {
            return statusPage(c, 400, "Ошибка валидации", "Неверный формат даты (ожидается ГГГГ-ММ-ДД).", err)
        }
        start, err := parseSessionTime(f.StartTime)
        if err != nil {
            return statusPage(c, 400, "Ошибка валидации", "Неверное время начала (ожидается ЧЧ:ММ).", err)
        }

        // Ссылки проверяются заранее, чтобы отдать 400 вместо ошибки FK.
        if _, err := h.store.GetActivityByID(f.ActivityID); err != nil {
            return statusPage(c, 400, "Ошибка валидации", "Выбранная активность не найдена.", err)
        }
        if _, err := h.store.GetLocationByID(f.LocationID); err != nil {
            return statusPage(c, 400, "Ошибка валидации", "Выбранный зал не найден.", err)
        }

        // Тренером занятия может быть только пользователь с ролью trainer.
        trainer, err := h.store.GetUserByID(f.TrainerID)
        if err != nil || trainer.Role != models.RoleTrainer {
            return statusPage(c, 400, "Ошибка валидации", "Выбранный тренер не найден.", err)
        }

        sess := models.Session{
            ID:         f.ID,
            ActivityID: f.ActivityID,
            Date:       date,
            StartTime:  start,
            LocationID: f.LocationID,
            TrainerID:  f.TrainerID,
        }

        if f.Action == "create" {
            if _, err := h.store.CreateSession(sess); err != nil {
                log.Printf("❌ create session: %v", err)
                return statusPage(c, 500, "Ошибка сохранения", "Не удалось создать занятие.", err)
            }
        } else {
            if f.ID <= 0 {
                return statusPage(c, 400, "Некорректный id", "Занятие не выбрано.", nil)
            }
            err := h.store.UpdateSession(sess)
            if errors.Is(err, store.ErrNotFound) {
                return statusPage(c, 404, "Не найдено", "Занятие не найдено.", nil)
            }
            if err != nil {
                return statusPage(c, 500, "Ошибка обновления", "Не удалось обновить занятие.", err)
            }
        }
        return c.Redirect("/sessions")

    case "delete":
        if f.ID <= 0 {
            return statusPage(c, 400, "Некорректный id", "Занятие не выбрано.", nil)
        }
        err := h.store.SoftDeleteSession(f.ID)
        if errors.Is(err, store.ErrNotFound) {
            return statusPage(c, 404, "Не найдено", "Занятие не найдено.", nil)
        }
        if err != nil {
            return statusPage(c, 500, "Ошибка удаления", "Не удалось удалить занятие.", err)
        }
        return c.Redirect("/sessions")
    }

    return statusPage(c, 400, "Неизвестное действие", "Форма не поддерживает это действие.", nil)
}
