package handlers

import (
    "io"
    "net/http/httptest"
    "strings"
    "testing"

    sqlmock "github.com/DATA-DOG/go-sqlmock"
    "github.com/gofiber/fiber/v2"

    "github.com/ryze42/Gym-App/internal/config"
    "github.com/ryze42/Gym-App/internal/models"
    "github.com/ryze42/Gym-App/internal/store"
)

func mockStoreApp(t *testing.T) (*fiber.App, *Handlers, sqlmock.Sqlmock) {
    t.Helper()
    db, mock, err := sqlmock.New()
    if err != nil {
        t.Fatalf("sqlmock.New: %v", err)
    }
    t.Cleanup(func() { db.Close() })
    h := New(store.New(db), &config.Config{})
    return fiber.New(), h, mock
}

func asUser(u models.User) fiber.Handler {
    return func(c *fiber.Ctx) error {
        c.Locals(localUserKey, u)
        return c.Next()
    }
}

// Повторная запись на то же занятие — 409 с кодом duplicate-booking,
// вторая строка брони не создаётся.
func TestAPICreateBookingDuplicateConflict(t *testing.T) {
    app, h, mock := mockStoreApp(t)
    app.Post("/api/bookings", asUser(models.User{ID: 5, Role: models.RoleMember}), h.APICreateBooking)

    mock.ExpectQuery("FROM sessions").WithArgs(3).WillReturnRows(
        sqlmock.NewRows([]string{"id", "activity_id", "date", "start_time", "location_id", "trainer_id"}).
            AddRow(3, 1, "2026-09-01", "09:30:00", 2, 4))
    mock.ExpectQuery("FROM bookings").WithArgs(3, 5).WillReturnRows(
        sqlmock.NewRows([]string{"id", "member_id", "session_id", "status"}).
            AddRow(9, 5, 3, "active"))

    req := httptest.NewRequest("POST", "/api/bookings", strings.NewReader(`{"session_id":3}`))
    req.Header.Set("Content-Type", "application/json")

    resp, err := app.Test(req)
    if err != nil {
        t.Fatalf("app.Test: %v", err)
    }
    if resp.StatusCode != 409 {
        t.Fatalf("статус = %d, ожидался 409", resp.StatusCode)
    }

    body, _ := io.ReadAll(resp.Body)
    if !strings.Contains(string(body), "duplicate-booking") {
        t.Errorf("в теле нет кода duplicate-booking: %s", body)
    }
    if err := mock.ExpectationsWereMet(); err != nil {
        t.Fatalf("лишние или недостающие запросы: %v", err)
    }
}
