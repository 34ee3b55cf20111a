package handlers

import (
    "errors"
    "log"
    "strconv"

    "github.com/gofiber/fiber/v2"

    "github.com/ryze42/Gym-App/internal/models"
    "github.com/ryze42/Gym-App/internal/store"
)

// GetLocationsPage — страница управления залами (только админ).
func (h *Handlers) GetLocationsPage(c *fiber.Ctx) error {
    locations, err := h.store.GetAllLocations()
    if err != nil {
        log.Printf("❌ locations list error: %v", err)
        return statusPage(c, 500, "Ошибка БД", "Не удалось загрузить залы.", err)
    }

    selectedID, _ := strconv.Atoi(c.Params("id"))
    var selected models.Location
    for _, l := range locations {
        if l.ID == selectedID {
            selected = l
            break
        }
    }

    user, _ := currentUser(c)
    return c.Render("locations", fiber.Map{
        "Title":     "Залы",
        "User":      user,
        "Locations": locations,
        "Selected":  selected,
    })
}

// HandleLocationsForm обрабатывает форму залов.
// Поле action: create | update | delete. Удаление физическое:
// зал с занятиями удалить нельзя.
func (h *Handlers) HandleLocationsForm(c *fiber.Ctx) error {
    type formT struct {
        ID      int    `form:"id"`
        Name    string `form:"name"`
        Address string `form:"address"`
        Action  string `form:"action"`
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
            return statusPage(c, 400, "Ошибка валидации", "Укажите название зала (до 100 символов).", nil)
        }
        if f.Address == "" || len(f.Address) > 255 {
            return statusPage(c, 400, "Ошибка валидации", "Укажите адрес зала (до 255 символов).", nil)
        }
        l := models.Location{ID: f.ID, Name: f.Name, Address: f.Address}

        if f.Action == "create" {
            if _, err := h.store.CreateLocation(l); err != nil {
                log.Printf("❌ create location: %v", err)
                return statusPage(c, 500, "Ошибка сохранения", "Не удалось создать зал.", err)
            }
        } else {
            if f.ID <= 0 {
                return statusPage(c, 400, "Некорректный id", "Зал не выбран.", nil)
            }
            err := h.store.UpdateLocation(l)
            if errors.Is(err, store.ErrNotFound) {
                return statusPage(c, 404, "Не найдено", "Зал не найден.", nil)
            }
            if err != nil {
                return statusPage(c, 500, "Ошибка обновления", "Не удалось обновить зал.", err)
            }
        }
        return c.Redirect("/locations")

    case "delete":
        if f.ID <= 0 {
            return statusPage(c, 400, "Некорректный id", "Зал не выбран.", nil)
        }
        err := h.store.DeleteLocation(f.ID)
        if errors.Is(err, store.ErrInUse) {
            return statusPage(c, 409, "Невозможно удалить", "Невозможно удалить зал: с ним связаны занятия.", nil)
        }
        if errors.Is(err, store.ErrNotFound) {
            return statusPage(c, 404, "Не найдено", "Зал не найден.", nil)
        }
        if err != nil {
            return statusPage(c, 500, "Ошибка удаления", "Не удалось удалить зал.", err)
        }
        return c.Redirect("/locations")
    }

    return statusPage(c, 400, "Неизвестное действие", "Форма не поддерживает это действие.", nil)
}
