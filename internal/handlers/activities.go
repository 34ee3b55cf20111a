package handlers

import (
    "errors"
    "log"
    "strconv"

    "github.com/gofiber/fiber/v2"

    "github.com/ryze42/Gym-App/internal/models"
    "github.com/ryze42/Gym-App/internal/store"
)

// GetActivitiesPage — страница управления активностями (только админ).
func (h *Handlers) GetActivitiesPage(c *fiber.Ctx) error {
    activities, err := h.store.GetAllActivities()
    if err != nil {
        log.Printf("❌ activities list error: %v", err)
        return statusPage(c, 500, "Ошибка БД", "Не удалось загрузить активности.", err)
    }

    selectedID, _ := strconv.Atoi(c.Params("id"))
    var selected models.Activity
    for _, a := range activities {
        if a.ID == selectedID {
            selected = a
            break
        }
    }

    user, _ := currentUser(c)
    return c.Render("activities", fiber.Map{
        "Title":      "Активности",
        "User":       user,
        "Activities": activities,
        "Selected":   selected,
    })
}

// HandleActivitiesForm обрабатывает форму активностей.
// Поле action: create | update | delete (мягкое удаление).
func (h *Handlers) HandleActivitiesForm(c *fiber.Ctx) error {
    type formT struct {
        ID       int    `form:"id"`
        Name     string `form:"name"`
        Duration int    `form:"duration"`
        Action   string `form:"action"`
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
        if f.Name == "" || len(f.Name) > 100 {
            return statusPage(c, 400, "Ошибка валидации", "Укажите название активности (до 100 символов).", nil)
        }
        if f.Duration <= 0 {
            return statusPage(c, 400, "Ошибка валидации", "Длительность должна быть положительным числом минут.", nil)
        }
        a := models.Activity{ID: f.ID, Name: f.Name, Duration: f.Duration}

        if f.Action == "create" {
            if _, err := h.store.CreateActivity(a); err != nil {
                log.Printf("❌ create activity: %v", err)
                return statusPage(c, 500, "Ошибка сохранения", "Не удалось создать активность.", err)
            }
        } else {
            if f.ID <= 0 {
                return statusPage(c, 400, "Некорректный id", "Активность не выбрана.", nil)
            }
            err := h.store.UpdateActivity(a)
            if errors.Is(err, store.ErrNotFound) {
                return statusPage(c, 404, "Не найдено", "Активность не найдена.", nil)
            }
            if err != nil {
                return statusPage(c, 500, "Ошибка обновления", "Не удалось обновить активность.", err)
            }
        }
        return c.Redirect("/activities")

    case "delete":
        if f.ID <= 0 {
            return statusPage(c, 400, "Некорректный id", "Активность не выбрана.", nil)
        }
        err := h.store.SoftDeleteActivity(f.ID)
        if errors.Is(err, store.ErrNotFound) {
            return statusPage(c, 404, "Не найдено", "Активность не найдена.", nil)
        }
        if err != nil {
            return statusPage(c, 500, "Ошибка удаления", "Не удалось удалить активность.", err)
        }
        return c.Redirect("/activities")
    }

    return statusPage(c, 400, "Неизвестное действие", "Форма не поддерживает это действие.", nil)
}
