package handlers

import (
    "errors"
    "log"
    "strconv"

    "github.com/gofiber/fiber/v2"

    "github.com/ryze42/Gym-App/internal/models"
    "github.com/ryze42/Gym-App/internal/store"
)

// APIGetBookings — все активные брони (только админ).
func (h *Handlers) APIGetBookings(c *fiber.Ctx) error {
    bookings, err := h.store.BookingsWithContext(store.BookingFilter{})
    if err != nil {
        return jsonError(c, 500, "Ошибка БД", err)
    }
    return jsonOK(c, fiber.Map{"bookings": bookings})
}

// APIGetMyBookings — брони текущего пользователя. Участник видит свои,
// тренер — брони на свои занятия.
func (h *Handlers) APIGetMyBookings(c *fiber.Ctx) error {
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
        return jsonError(c, 500, "Ошибка БД", err)
    }
    return jsonOK(c, fiber.Map{"bookings": bookings})
}

// APIGetBooking — одна бронь. Участник может смотреть только свою.
func (h *Handlers) APIGetBooking(c *fiber.Ctx) error {
    user, _ := currentUser(c)

    id, err := strconv.Atoi(c.Params("id"))
    if err != nil || id <= 0 {
        return jsonError(c, 400, "Некорректный id", err)
    }

    booking, err := h.store.GetBookingByID(id)
    if errors.Is(err, store.ErrNotFound) {
        return jsonError(c, 404, "Бронь не найдена", nil)
    }
    if err != nil {
        return jsonError(c, 500, "Ошибка БД", err)
    }
    if user.Role != models.RoleAdmin && booking.MemberID != user.ID {
        return jsonError(c, 403, "Недостаточно прав", nil)
    }
    return jsonOK(c, fiber.Map{"booking": booking})
}

// APICreateBooking записывает участника на занятие. Админ может указать
// member_id, остальные бронируют только для себя. Повторная активная
// бронь — 409.
func (h *Handlers) APICreateBooking(c *fiber.Ctx) error {
    user, _ := currentUser(c)

    type payloadT struct {
        SessionID int `json:"session_id" validate:"required,gt=0"`
        MemberID  int `json:"member_id"`
    }
    var p payloadT
    if err := c.BodyParser(&p); err != nil {
        return jsonError(c, 400, "Неверный JSON", err)
    }
    if err := h.validate.Struct(p); err != nil {
        return jsonError(c, 400, "Заполните обязательные поля", err)
    }

    memberID := user.ID
    if p.MemberID > 0 && p.MemberID != user.ID {
        if user.Role != models.RoleAdmin {
            return jsonError(c, 403, "Бронировать можно только для себя", nil)
        }
        member, err := h.store.GetUserByID(p.MemberID)
        if err != nil || member.Role != models.RoleMember {
            return jsonError(c, 400, "Выбранный участник не найден", err)
        }
        memberID = p.MemberID
    }

    id, err := h.store.CreateBooking(memberID, p.SessionID, models.BookingActive)
    if errors.Is(err, store.ErrDuplicateBooking) {
        return jsonError(c, 409, "Вы уже записаны на это занятие", nil)
    }
    if errors.Is(err, store.ErrNotFound) {
        return jsonError(c, 404, "Занятие не найдено", nil)
    }
    if err != nil {
        log.Printf("❌ api create booking: %v", err)
        return jsonError(c, 500, "Ошибка сохранения", err)
    }

    c.Status(201)
    return jsonOK(c, fiber.Map{"id": id, "message": "Бронь создана"})
}

// APIUpdateBooking меняет статус брони (только админ).
func (h *Handlers) APIUpdateBooking(c *fiber.Ctx) error {
    id, err := strconv.Atoi(c.Params("id"))
    if err != nil || id <= 0 {
        return jsonError(c, 400, "Некорректный id", err)
    }

    type payloadT struct {
        Status string `json:"status" validate:"required,oneof=active cancelled"`
    }
    var p payloadT
    if err := c.BodyParser(&p); err != nil {
        return jsonError(c, 400, "Неверный JSON", err)
    }
    if err := h.validate.Struct(p); err != nil {
        return jsonError(c, 400, "Недопустимый статус брони", err)
    }

    err = h.store.UpdateBookingStatus(id, p.Status)
    if errors.Is(err, store.ErrDuplicateBooking) {
        return jsonError(c, 409, "Участник уже записан на это занятие", nil)
    }
    if errors.Is(err, store.ErrNotFound) {
        return jsonError(c, 404, "Бронь не найдена", nil)
    }
    if err != nil {
        return jsonError(c, 500, "Ошибка обновления", err)
    }
    return jsonOK(c, fiber.Map{"message": "Бронь обновлена"})
}

// APICancelBooking отменяет бронь. Повторная отмена — 404: активной брони
// с таким id уже нет.
func (h *Handlers) APICancelBooking(c *fiber.Ctx) error {
    user, _ := currentUser(c)

    id, err := strconv.Atoi(c.Params("id"))
    if err != nil || id <= 0 {
        return jsonError(c, 400, "Некорректный id", err)
    }

    booking, err := h.store.GetBookingByID(id)
    if errors.Is(err, store.ErrNotFound) {
        return jsonError(c, 404, "Бронь не найдена", nil)
    }
    if err != nil {
        return jsonError(c, 500, "Ошибка БД", err)
    }
    if user.Role != models.RoleAdmin && booking.MemberID != user.ID {
        return jsonError(c, 403, "Отменять можно только свои брони", nil)
    }

    err = h.store.CancelBooking(id)
    if errors.Is(err, store.ErrNotFound) {
        return jsonError(c, 404, "Бронь не найдена или уже отменена", nil)
    }
    if err != nil {
        return jsonError(c, 500, "Ошибка обновления", err)
    }
    return jsonOK(c, fiber.Map{"message": "Бронь отменена"})
}
