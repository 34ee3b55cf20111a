package handlers

import (
    "bytes"
    "errors"
    "html/template"
    "log"
    "strconv"
    "strings"

    "github.com/gofiber/fiber/v2"

    "github.com/ryze42/Gym-App/internal/models"
    "github.com/ryze42/Gym-App/internal/store"
)

// renderMarkdown превращает содержимое поста в HTML.
func (h *Handlers) renderMarkdown(content string) template.HTML {
    var buf bytes.Buffer
    if err := h.markdown.Convert([]byte(content), &buf); err != nil {
        log.Printf("markdown render: %v", err)
        return template.HTML(template.HTMLEscapeString(content))
    }
    return template.HTML(buf.String())
}

// GetBlogPage — список постов блога (любой аутентифицированный пользователь).
func (h *Handlers) GetBlogPage(c *fiber.Ctx) error {
    posts, err := h.store.GetAllBlogPosts()
    if err != nil {
        log.Printf("❌ blog list error: %v", err)
        return statusPage(c, 500, "Ошибка БД", "Не удалось загрузить блог.", err)
    }

    user, _ := currentUser(c)
    return c.Render("blog", fiber.Map{
        "Title": "Блог",
        "User":  user,
        "Posts": posts,
    })
}

// GetBlogPostPage — один пост, содержимое рендерится как markdown.
func (h *Handlers) GetBlogPostPage(c *fiber.Ctx) error {
    id, err := strconv.Atoi(c.Params("id"))
    if err != nil || id <= 0 {
        return statusPage(c, 400, "Некорректный id", "Пост не указан.", err)
    }

    post, err := h.store.GetBlogPostByID(id)
    if errors.Is(err, store.ErrNotFound) {
        return statusPage(c, 404, "Не найдено", "Пост не найден.", nil)
    }
    if err != nil {
        return statusPage(c, 500, "Ошибка БД", "Не удалось загрузить пост.", err)
    }

    user, _ := currentUser(c)
    return c.Render("blog_post", fiber.Map{
        "Title":   post.Subject,
        "User":    user,
        "Post":    post,
        "Content": h.renderMarkdown(post.Content),
        "CanEdit": user.Role == models.RoleAdmin || user.ID == post.UserID,
    })
}

// HandleBlogForm обрабатывает форму блога.
// Поле action: create | update | delete. Автор правит только свои посты,
// админ модерирует любые.
func (h *Handlers) HandleBlogForm(c *fiber.Ctx) error {
    user, _ := currentUser(c)

    type formT struct {
        ID      int    `form:"id"`
        Subject string `form:"subject"`
        Content string `form:"content"`
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
    case "create":
        if strings.TrimSpace(f.Subject) == "" || strings.TrimSpace(f.Content) == "" {
            return statusPage(c, 400, "Ошибка валидации", "Укажите тему и текст поста.", nil)
        }
        if len(f.Subject) > 255 {
            return statusPage(c, 400, "Ошибка валидации", "Тема не должна превышать 255 символов.", nil)
        }
        _, err := h.store.CreateBlogPost(models.BlogPost{
            UserID:  user.ID,
            Subject: strings.TrimSpace(f.Subject),
            Content: f.Content,
        })
        if err != nil {
            log.Printf("❌ create blog post: %v", err)
            return statusPage(c, 500, "Ошибка сохранения", "Не удалось создать пост.", err)
        }
        return c.Redirect("/blog")

    case "update":
        if f.ID <= 0 {
            return statusPage(c, 400, "Некорректный id", "Пост не выбран.", nil)
        }
        if strings.TrimSpace(f.Subject) == "" || strings.TrimSpace(f.Content) == "" {
            return statusPage(c, 400, "Ошибка валидации", "Укажите тему и текст поста.", nil)
        }
        existing, err := h.store.GetBlogPostByID(f.ID)
        if errors.Is(err, store.ErrNotFound) {
            return statusPage(c, 404, "Не найдено", "Пост не найден.", nil)
        }
        if err != nil {
            return statusPage(c, 500, "Ошибка БД", "Не удалось загрузить пост.", err)
        }
        if user.Role != models.RoleAdmin && existing.UserID != user.ID {
            return statusPage(c, 403, "Доступ запрещён", "Можно редактировать только свои посты.", nil)
        }
        err = h.store.UpdateBlogPost(models.BlogPost{
            ID:      f.ID,
            Subject: strings.TrimSpace(f.Subject),
            Content: f.Content,
        })
        if err != nil {
            return statusPage(c, 500, "Ошибка обновления", "Не удалось обновить пост.", err)
        }
        return c.Redirect("/blog/" + strconv.Itoa(f.ID))

    case "delete":
        if f.ID <= 0 {
            return statusPage(c, 400, "Некорректный id", "Пост не выбран.", nil)
        }
        existing, err := h.store.GetBlogPostByID(f.ID)
        if errors.Is(err, store.ErrNotFound) {
            return statusPage(c, 404, "Не найдено", "Пост не найден.", nil)
        }
        if err != nil {
            return statusPage(c, 500, "Ошибка БД", "Не удалось загрузить пост.", err)
        }
        if user.Role != models.RoleAdmin && existing.UserID != user.ID {
            return statusPage(c, 403, "Доступ запрещён", "Можно удалять только свои посты.", nil)
        }
        if err := h.store.DeleteBlogPost(f.ID); err != nil {
            return statusPage(c, 500, "Ошибка удаления", "Не удалось удалить пост.", err)
        }
        return c.Redirect("/blog")
    }

    return statusPage(c, 400, "Неизвестное действие", "Форма не поддерживает это действие.", nil)
}
