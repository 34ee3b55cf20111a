package handlers

import (
    "time"

    "github.com/go-playground/validator/v10"
    "github.com/gofiber/fiber/v2/middleware/session"
    "github.com/yuin/goldmark"

    "github.com/ryze42/Gym-App/internal/config"
    "github.com/ryze42/Gym-App/internal/store"
)

// Handlers — обработчики HTTP. Все зависимости передаются через конструктор,
// глобального состояния нет.
type Handlers struct {
    store    *store.Store
    cfg      *config.Config
    sessions *session.Store
    validate *validator.Validate
    markdown goldmark.Markdown
}

func New(st *store.Store, cfg *config.Config) *Handlers {
    return &Handlers{
        store: st,
        cfg:   cfg,
        sessions: session.New(session.Config{
            KeyLookup:      "cookie:gym_session",
            Expiration:     12 * time.Hour,
            CookieHTTPOnly: true,
        }),
        validate: validator.New(),
        markdown: goldmark.New(),
    }
}
