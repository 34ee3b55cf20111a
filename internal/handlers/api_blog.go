package handlers

import (
    "errors"
    "log"
    "strconv"
    "strings"

    "github.com/gofiber/fiber/v2"

    "github.com/ryze42/Gym-App/internal/models"
    "github.com/ryze42/Gym-App/internal/store"
)

// APIGetBlogPosts — все посты блога с именами авторов.
func (h *Handlers) APIGetBlogPosts(c *fiber.Ctx) error {
    posts, err := h.store.GetAllBlogPosts()
    if err != nil {
        return jsonError(c, 500, "Ошибка БД", err)
    }
    return jsonOK(c, fiber.Map{"posts": posts})
}

// APIGetBlogPost — один пост по id.
func (h *Handlers) APIGetBlogPost(c *fiber.Ctx) error {
    id, err := strconv.Atoi(c.Params("id"))
    if err != nil || id <= 0 {
        return jsonError(c, 400, "Некорректный id", err)
    }
    post, err := h.store.GetBlogPostByID(id)
    if errors.Is(err, store.ErrNotFound) {
        return jsonError(c, 404, "Пост не найден", nil)
    }
    if err != nil {
        return jsonError(c, 500, "Ошибка БД", err)
    }
    return jsonOK(c, fiber.Map{"post": post})
}

// APICreateBlogPost создаёт пост от имени текущего пользователя.
func (h *Handlers) APICreateBlogPost(c *fiber.Ctx) error {
    user, _ := currentUser(c)

    type payloadT struct {
        Subject string `json:"subject" validate:"required,max=255"`
        Content string `json:"content" validate:"required"`
    }
    var p payloadT
    if err := c.BodyParser(&p); err != nil {
        return jsonError(c, 400, "Неверный JSON", err)
    }
    p.Subject = strings.TrimSpace(p.Subject)
    if err := h.validate.Struct(p); err != nil {
        return jsonError(c, 400, "Укажите тему и текст поста", err)
    }

    id, err := h.store.CreateBlogPost(models.BlogPost{
        UserID:  user.ID,
        Subject: p.Subject,
        Content: p.Content,
    })
    if err != nil {
        log.Printf("❌ api create blog post: %v", err)
        return jsonError(c, 500, "Ошибка сохранения", err)
    }

    c.Status(201)
    return jsonOK(c, fiber.Map{"id": id, "message": "Пост создан"})
}

// APIUpdateBlogPost обновляет пост. Автор правит только свои, админ — любые.
func (h *Handlers) APIUpdateBlogPost(c *fiber.Ctx) error {
    user, _ := currentUser(c)

    id, err := strconv.Atoi(c.Params("id"))
    if err != nil || id <= 0 {
        return jsonError(c, 400, "Некорректный id", err)
    }

    type payloadT struct {
        Subject string `json:"subject" validate:"required,max=255"`
        Content string `json:"content" validate:"required"`
    }
    var p payloadT
    if err := c.BodyParser(&p); err != nil {
        return jsonError(c, 400, "Неверный JSON", err)
    }
    p.Subject = strings.TrimSpace(p.Subject)
    if err := h.validate.Struct(p); err != nil {
        return jsonError(c, 400, "Укажите тему и текст поста", err)
    }

    existing, err := h.store.GetBlogPostByID(id)
    if errors.Is(err, store.ErrNotFound) {
        return jsonError(c, 404, "Пост не найден", nil)
    }
    if err != nil {
        return jsonError(c, 500, "Ошибка БД", err)
    }
    if user.Role != models.RoleAdmin && existing.UserID != user.ID {
        return jsonError(c, 403, "Можно редактировать только свои посты", nil)
    }

    err = h.store.UpdateBlogPost(models.BlogPost{
        ID:      id,
        Subject: p.Subject,
        Content: p.Content,
    })
    if err != nil {
        return jsonError(c, 500, "Ошибка обновления", err)
    }
    return jsonOK(c, fiber.Map{"message": "Пост обновлён"})
}

// APIDeleteBlogPost удаляет пост. Автор удаляет только свои, админ — любые.
func (h *Handlers) APIDeleteBlogPost(c *fiber.Ctx) error {
    user, _ := currentUser(c)

    id, err := strconv.Atoi(c.Params("id"))
    if err != nil || id <= 0 {
        return jsonError(c, 400, "Некорректный id", err)
    }

    existing, err := h.store.GetBlogPostByID(id)
    if errors.Is(err, store.ErrNotFound) {
        return jsonError(c, 404, "Пост не найден", nil)
    }
    if err != nil {
        return jsonError(c, 500, "Ошибка БД", err)
    }
    if user.Role != models.RoleAdmin && existing.UserID != user.ID {
        return jsonError(c, 403, "Можно удалять только свои посты", nil)
    }

    if err := h.store.DeleteBlogPost(id); err != nil {
        return jsonError(c, 500, "Ошибка удаления", err)
    }
    return jsonOK(c, fiber.Map{"message": "Пост удалён"})
}
