package handlers

import (
    "net/http/httptest"
    "testing"

    "github.com/gofiber/fiber/v2"

    "github.com/ryze42/Gym-App/internal/config"
    "github.com/ryze42/Gym-App/internal/models"
    "github.com/ryze42/Gym-App/internal/store"
)

func testApp(t *testing.T) (*fiber.App, *Handlers) {
    t.Helper()
    h := New(store.New(nil), &config.Config{})
    return fiber.New(), h
}

func TestRequirePageRedirectsUnauthenticated(t *testing.T) {
    app, h := testApp(t)
    app.Get("/users", h.RequirePage(models.RoleAdmin), func(c *fiber.Ctx) error {
        return c.SendString("ok")
    })

    resp, err := app.Test(httptest.NewRequest("GET", "/users", nil))
    if err != nil {
        t.Fatalf("app.Test: %v", err)
    }
    if resp.StatusCode != 302 {
        t.Fatalf("статус = %d, ожидался 302", resp.StatusCode)
    }
    if loc := resp.Header.Get("Location"); loc != "/authenticate" {
        t.Fatalf("Location = %q, ожидался /authenticate", loc)
    }
}

func TestAPIAuthRejectsMissingKey(t *testing.T) {
    app, h := testApp(t)
    app.Get("/api/timetable", h.APIAuth, func(c *fiber.Ctx) error {
        return jsonOK(c, nil)
    })

    resp, err := app.Test(httptest.NewRequest("GET", "/api/timetable", nil))
    if err != nil {
        t.Fatalf("app.Test: %v", err)
    }
    if resp.StatusCode != 401 {
        t.Fatalf("статус = %d, ожидался 401", resp.StatusCode)
    }
}

func TestAPIRequireRejectsWrongRole(t *testing.T) {
    app, h := testApp(t)
    // Пользователь уже загружен middleware аутентификации.
    app.Get("/api/users",
        func(c *fiber.Ctx) error {
            c.Locals(localUserKey, models.User{ID: 1, Role: models.RoleMember})
            return c.Next()
        },
        h.APIRequire(models.RoleAdmin),
        func(c *fiber.Ctx) error {
            return jsonOK(c, nil)
        })

    resp, err := app.Test(httptest.NewRequest("GET", "/api/users", nil))
    if err != nil {
        t.Fatalf("app.Test: %v", err)
    }
    if resp.StatusCode != 403 {
        t.Fatalf("статус = %d, ожидался 403", resp.StatusCode)
    }
}

func TestAPIRequireAllowsListedRole(t *testing.T) {
    app, h := testApp(t)
    app.Get("/api/users",
        func(c *fiber.Ctx) error {
            c.Locals(localUserKey, models.User{ID: 1, Role: models.RoleAdmin})
            return c.Next()
        },
        h.APIRequire(models.RoleAdmin),
        func(c *fiber.Ctx) error {
            return jsonOK(c, nil)
        })

    resp, err := app.Test(httptest.NewRequest("GET", "/api/users", nil))
    if err != nil {
        t.Fatalf("app.Test: %v", err)
    }
    if resp.StatusCode != 200 {
        t.Fatalf("статус = %d, ожидался 200", resp.StatusCode)
    }
}
