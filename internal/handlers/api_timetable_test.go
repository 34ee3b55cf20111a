package handlers

import (
    "io"
    "net/http/httptest"
    "strings"
    "testing"

    sqlmock "github.com/DATA-DOG/go-sqlmock"

    "github.com/ryze42/Gym-App/internal/models"
)

func TestLocationFilter(t *testing.T) {
    tests := []struct {
        in   string
        want string
    }{
        {"", ""},
        {"all", ""},
        {" all ", ""},
        {"Главный зал", "Главный зал"},
    }
    for _, tt := range tests {
        if got := locationFilter(tt.in); got != tt.want {
            t.Errorf("locationFilter(%q) = %q, ожидалось %q", tt.in, got, tt.want)
        }
    }
}

// ?location=all означает "без фильтра": запрос занятий уходит без
// аргументов, а ключ аутентификации возвращается объектом {key}.
func TestAPITimetableAllLocations(t *testing.T) {
    app, h, mock := mockStoreApp(t)
    app.Get("/api/timetable", asUser(models.User{ID: 5, Role: models.RoleMember}), h.APITimetable)

    mock.ExpectQuery("FROM sessions").WithArgs().WillReturnRows(
        sqlmock.NewRows([]string{
            "id", "activity_id", "date", "start_time", "location_id", "trainer_id",
            "u_id", "first_name", "last_name", "email",
            "a_id", "a_name", "duration",
            "l_id", "l_name", "address",
        }).AddRow(
            3, 1, "2026-09-01", "09:30:00", 2, 4,
            4, "Пётр", "Смирнов", "petr@gym.ru",
            1, "Йога", 60,
            2, "Главный зал", "ул. Главная, 1",
        ))
    mock.ExpectQuery("FROM users").WithArgs("trainer").WillReturnRows(
        sqlmock.NewRows([]string{
            "id", "first_name", "last_name", "role", "email", "password", "authentication_key", "deleted",
        }).AddRow(4, "Пётр", "Смирнов", "trainer", "petr@gym.ru", "hash", nil, false))

    req := httptest.NewRequest("GET", "/api/timetable?location=all", nil)
    req.Header.Set("x-auth-key", "k123")

    resp, err := app.Test(req)
    if err != nil {
        t.Fatalf("app.Test: %v", err)
    }
    if resp.StatusCode != 200 {
        t.Fatalf("статус = %d, ожидался 200", resp.StatusCode)
    }

    body, _ := io.ReadAll(resp.Body)
    if !strings.Contains(string(body), `"authenticationKey":{"key":"k123"}`) {
        t.Errorf("ключ не возвращён объектом {key}: %s", body)
    }
    if !strings.Contains(string(body), `"2026-09-01"`) {
        t.Errorf("в расписании нет занятия: %s", body)
    }
    if err := mock.ExpectationsWereMet(); err != nil {
        t.Fatalf("лишние или недостающие запросы: %v", err)
    }
}
