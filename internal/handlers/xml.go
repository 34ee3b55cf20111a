package handlers

import (
    "encoding/xml"
    "log"

    "github.com/gofiber/fiber/v2"

    "github.com/ryze42/Gym-App/internal/models"
    "github.com/ryze42/Gym-App/internal/store"
)

// XML-экспорт данных пользователя: брони участника и занятия тренера.
// Ответ отдаётся как вложение text/xml.

type xmlBooking struct {
    ID        int    `xml:"id"`
    Status    string `xml:"status"`
    Date      string `xml:"date"`
    StartTime string `xml:"startTime"`
    Activity  string `xml:"activity"`
    Duration  int    `xml:"durationMinutes"`
    Location  string `xml:"location"`
    Trainer   string `xml:"trainer"`
}

type xmlBookingExport struct {
    XMLName  xml.Name     `xml:"bookings"`
    Member   string       `xml:"member,attr"`
    Bookings []xmlBooking `xml:"booking"`
}

type xmlSession struct {
    ID        int    `xml:"id"`
    Date      string `xml:"date"`
    StartTime string `xml:"startTime"`
    Activity  string `xml:"activity"`
    Duration  int    `xml:"durationMinutes"`
    Location  string `xml:"location"`
}

type xmlSessionExport struct {
    XMLName  xml.Name     `xml:"sessions"`
    Trainer  string       `xml:"trainer,attr"`
    Sessions []xmlSession `xml:"session"`
}

func sendXML(c *fiber.Ctx, filename string, v any) error {
    out, err := xml.MarshalIndent(v, "", "  ")
    if err != nil {
        return jsonError(c, 500, "Ошибка формирования XML", err)
    }
    c.Set(fiber.HeaderContentType, "text/xml; charset=utf-8")
    c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
    return c.Send(append([]byte(xml.Header), out...))
}

// APIExportBookingsXML — активные брони текущего участника в XML.
func (h *Handlers) APIExportBookingsXML(c *fiber.Ctx) error {
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
        log.Printf("❌ xml bookings export: %v", err)
        return jsonError(c, 500, "Ошибка БД", err)
    }

    export := xmlBookingExport{Member: user.FullName()}
    for _, b := range bookings {
        export.Bookings = append(export.Bookings, xmlBooking{
            ID:        b.Booking.ID,
            Status:    b.Booking.Status,
            Date:      b.Session.Date,
            StartTime: b.Session.StartTime,
            Activity:  b.Activity.Name,
            Duration:  b.Activity.Duration,
            Location:  b.Location.Name,
            Trainer:   b.Trainer.FullName(),
        })
    }
    return sendXML(c, "bookings.xml", export)
}

// APIExportSessionsXML — занятия текущего тренера в XML.
// Админ получает все занятия.
func (h *Handlers) APIExportSessionsXML(c *fiber.Ctx) error {
    user, _ := currentUser(c)

    sessions, err := h.store.SessionsWithContext("")
    if err != nil {
        log.Printf("❌ xml sessions export: %v", err)
        return jsonError(c, 500, "Ошибка БД", err)
    }

    export := xmlSessionExport{Trainer: user.FullName()}
    for _, s := range sessions {
        if user.Role == models.RoleTrainer && s.Session.TrainerID != user.ID {
            continue
        }
        export.Sessions = append(export.Sessions, xmlSession{
            ID:        s.Session.ID,
            Date:      s.Session.Date,
            StartTime: s.Session.StartTime,
            Activity:  s.Activity.Name,
            Duration:  s.Activity.Duration,
            Location:  s.Location.Name,
        })
    }
    return sendXML(c, "sessions.xml", export)
}
