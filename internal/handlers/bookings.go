package handlers

import (
    "errors"
    "log"
    "strconv"

    "github.com/gofiber/fiber/v2"

    "github.com/ryze42/Gym-App/internal/models"
    "github.com/ryze42/Gym-App/internal/store"
)

// GetMyBookingsPage — брони текущего пользователя: участник видит свои,
// тренер — брони на свои занятия, админ — все.
func (h *Handlers) GetMyBookingsPage(c *fiber.Ctx) error {
    user, _ := currentUser(c)

    var filter store.BookingFilter
    switch user.Role {
    case models.RoleMember:
        filter.MemberID = user.ID
    case models.RoleTrainer:
        filter.TrainerID = user.ID
    case models.RoleAdmin:
        // без фильтра
    }

    bookings, err := h.store.BookingsWithContext(filter)
    if err != nil {
        log.Printf("❌ my bookings error: %v", err)
        return statusPage(c, 500, "Ошибка БД", "Не удалось загрузить брони.", err)
    }

    return c.Render("bookings", fiber.Map{
        "Title":    "Мои брони",
        "User":     user,
        "Bookings": bookings,
    })
}

// GetBookSessionPage — подтверждение записи на занятие: показывает кортеж
// занятие+тренер+активность+зал и альтернативных тренеров того же слота.
func (h *Handlers) GetBookSessionPage(c *fiber.Ctx) error {
    sessionID, err := strconv.Atoi(c.Params("id"))
    if err != nil || sessionID <= 0 {
        return statusPage(c, 400, "Некорректный id", "Занятие не указано.", err)
    }

    details, err := h.store.BookingDetailsBySessionID(sessionID)
    if errors.Is(err, store.ErrNotFound) {
        return statusPage(c, 404, "Не найдено", "Занятие не найдено.", nil)
    }
    if err != nil {
        return statusPage(c, 500, "Ошибка БД", "Не удалось загрузить занятие.", err)
    }

    // Один и тот же класс могут вести несколько тренеров: даём выбор,
    // бронируется конкретный id занятия.
    options, err := h.store.SameSlotSessions(
        details.Session.Date, details.Session.StartTime,
        details.Session.ActivityID, details.Session.LocationID,
    )
    if err != nil {
        log.Printf("❌ same slot sessions: %v", err)
        return statusPage(c, 500, "Ошибка БД", "Не удалось загрузить варианты тренеров.", err)
    }

    user, _ := currentUser(c)
    return c.Render("book_session", fiber.Map{
        "Title":   "Запись на занятие",
        "User":    user,
        "Details": details,
        "Options": options,
    })
}

// HandleBookSession записывает текущего участника на занятие.
// Повторная активная бронь на то же занятие — конфликт.
func (h *Handlers) HandleBookSession(c *fiber.Ctx) error {
    user, _ := currentUser(c)

    type formT struct {
        SessionID int `form:"session_id"`
    }
    var f formT
    if err := c.BodyParser(&f); err != nil {
        return statusPage(c, 400, "Неверные данные формы", "Не удалось разобрать форму.", err)
    }
    if f.SessionID <= 0 {
        return statusPage(c, 400, "Ошибка валидации", "Выберите занятие.", nil)
    }

    _, err := h.store.CreateBooking(user.ID, f.SessionID, models.BookingActive)
    if errors.Is(err, store.ErrDuplicateBooking) {
        return statusPage(c, 409, "Уже записаны", "Вы уже записаны на это занятие.", nil)
    }
    if errors.Is(err, store.ErrNotFound) {
        return statusPage(c, 404, "Не найдено", "Занятие не найдено.", nil)
    }
    if err != nil {
        log.Printf("❌ book session: %v", err)
        return statusPage(c, 500, "Ошибка сохранения", "Не удалось создать бронь.", err)
    }

    return c.Redirect("/bookings/my")
}

// HandleCancelBooking отменяет бронь (перевод статуса, не удаление).
// Участник может отменить только свою бронь.
func (h *Handlers) HandleCancelBooking(c *fiber.Ctx) error {
    user, _ := currentUser(c)

    id, err := strconv.Atoi(c.Params("id"))
    if err != nil || id <= 0 {
        return statusPage(c, 400, "Некорректный id", "Бронь не указана.", err)
    }

    booking, err := h.store.GetBookingByID(id)
    if errors.Is(err, store.ErrNotFound) {
        return statusPage(c, 404, "Не найдено", "Бронь не найдена.", nil)
    }
    if err != nil {
        return statusPage(c, 500, "Ошибка БД", "Не удалось загрузить бронь.", err)
    }
    if user.Role != models.RoleAdmin && booking.MemberID != user.ID {
        return statusPage(c, 403, "Доступ запрещён", "Можно отменять только свои брони.", nil)
    }

    err = h.store.CancelBooking(id)
    if errors.Is(err, store.ErrNotFound) {
        return statusPage(c, 404, "Не найдено", "Бронь уже отменена.", nil)
    }
    if err != nil {
        return statusPage(c, 500, "Ошибка обновления", "Не удалось отменить бронь.", err)
    }

    return c.Redirect("/bookings/my")
}

// GetBookingManagementPage — страница управления бронями (только админ).
func (h *Handlers) GetBookingManagementPage(c *fiber.Ctx) error {
    bookings, err := h.store.BookingsWithContext(store.BookingFilter{})
    if err != nil {
        log.Printf("❌ bookings list error: %v", err)
        return statusPage(c, 500, "Ошибка БД", "Не удалось загрузить брони.", err)
    }
    sessions, err := h.store.SessionsWithContext("")
    if err != nil {
        return statusPage(c, 500, "Ошибка БД", "Не удалось загрузить занятия.", err)
    }
    members, err := h.store.GetUsersByRole(models.RoleMember)
    if err != nil {
        return statusPage(c, 500, "Ошибка БД", "Не удалось загрузить участников.", err)
    }

    user, _ := currentUser(c)
    return c.Render("booking_management", fiber.Map{
        "Title":    "Управление бронями",
        "User":     user,
        "Bookings": bookings,
        "Sessions": sessions,
        "Members":  members,
    })
}

// HandleBookingsForm — форма управления бронями (только админ).
// Поле action: create | update | delete. Удаление — это отмена брони.
func (h *Handlers) HandleBookingsForm(c *fiber.Ctx) error {
    type formT struct {
        ID        int    `form:"id"`
        MemberID  int    `form:"member_id"`
        SessionID int    `form:"session_id"`
        Status    string `form:"status"`
        Action    string `form:"action"`
    }
    var f formT
    if err := c.BodyParser(&f); err != nil {
        return statusPage(c, 400, "Неверные данные формы", "Не удалось разобрать форму.", err)
    }
    if f.ID == 0 {
        f.ID, _ = strconv.Atoi(c.Params("id"))
    }

    switch f.Action {
    case "create":
        if f.MemberID <= 0 || f.SessionID <= 0 {
            return statusPage(c, 400, "Ошибка валидации", "Выберите участника и занятие.", nil)
        }
        member, err := h.store.GetUserByID(f.MemberID)
        if err != nil || member.Role != models.RoleMember {
            return statusPage(c, 400, "Ошибка валидации", "Выбранный участник не найден.", err)
        }
        _, err = h.store.CreateBooking(f.MemberID, f.SessionID, models.BookingActive)
        if errors.Is(err, store.ErrDuplicateBooking) {
            return statusPage(c, 409, "Конфликт", "Участник уже записан на это занятие.", nil)
        }
        if errors.Is(err, store.ErrNotFound) {
            return statusPage(c, 404, "Не найдено", "Занятие не найдено.", nil)
        }
        if err != nil {
            log.Printf("❌ create booking: %v", err)
            return statusPage(c, 500, "Ошибка сохранения", "Не удалось создать бронь.", err)
        }
        return c.Redirect("/bookings")

    case "update":
        if f.ID <= 0 {
            return statusPage(c, 400, "Некорректный id", "Бронь не выбрана.", nil)
        }
        if f.Status != models.BookingActive && f.Status != models.BookingCancelled {
            return statusPage(c, 400, "Ошибка валидации", "Недопустимый статус брони.", nil)
        }
        err := h.store.UpdateBookingStatus(f.ID, f.Status)
        if errors.Is(err, store.ErrDuplicateBooking) {
            return statusPage(c, 409, "Конфликт", "Участник уже записан на это занятие.", nil)
        }
        if errors.Is(err, store.ErrNotFound) {
            return statusPage(c, 404, "Не найдено", "Бронь не найдена.", nil)
        }
        if err != nil {
            return statusPage(c, 500, "Ошибка обновления", "Не удалось обновить бронь.", err)
        }
        return c.Redirect("/bookings")

    case "delete":
        if f.ID <= 0 {
            return statusPage(c, 400, "Некорректный id", "Бронь не выбрана.", nil)
        }
        err := h.store.CancelBooking(f.ID)
        if errors.Is(err, store.ErrNotFound) {
            return statusPage(c, 404, "Не найдено", "Бронь не найдена или уже отменена.", nil)
        }
        if err != nil {
            return statusPage(c, 500, "Ошибка обновления", "Не удалось отменить бронь.", err)
        }
        return c.Redirect("/bookings")
    }

    return statusPage(c, 400, "Неизвестное действие", "Форма не поддерживает это действие.", nil)
}
