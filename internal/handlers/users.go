package handlers

import (
    "errors"
    "log"
    "strconv"
    "strings"

    "github.com/gofiber/fiber/v2"
    "golang.org/x/crypto/bcrypt"

    "github.com/ryze42/Gym-App/internal/models"
    "github.com/ryze42/Gym-App/internal/store"
)

// GetUsersPage — страница управления пользователями (только админ).
func (h *Handlers) GetUsersPage(c *fiber.Ctx) error {
    users, err := h.store.GetAllUsers()
    if err != nil {
        log.Printf("❌ users list error: %v", err)
        return statusPage(c, 500, "Ошибка БД", "Не удалось загрузить пользователей.", err)
    }

    selectedID, _ := strconv.Atoi(c.Params("id"))
    var selected models.User
    for _, u := range users {
        if u.ID == selectedID {
            selected = u
            break
        }
    }

    user, _ := currentUser(c)
    return c.Render("users", fiber.Map{
        "Title":    "Пользователи",
        "User":     user,
        "Users":    users,
        "Selected": selected,
    })
}

// HandleUsersForm обрабатывает форму управления пользователями.
// Поле action: create | update | delete. Удаление мягкое: флаг deleted,
// исторические брони сохраняют ссылку на пользователя.
func (h *Handlers) HandleUsersForm(c *fiber.Ctx) error {
    type formT struct {
        ID        int    `form:"id"`
        FirstName string `form:"first_name"`
        LastName  string `form:"last_name"`
        Email     string `form:"email"`
        Password  string `form:"password"`
        Role      string `form:"role"`
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
    case "create", "update":
        if f.FirstName == "" || f.LastName == "" || f.Email == "" || f.Role == "" {
            return statusPage(c, 400, "Ошибка валидации", "Заполните обязательные поля.", nil)
        }
        if !validName(f.FirstName) || !validName(f.LastName) {
            return statusPage(c, 400, "Ошибка валидации", "Имя и фамилия: 2-100 символов, буквы, пробелы, дефисы и апострофы.", nil)
        }
        f.Email = strings.ToLower(strings.TrimSpace(f.Email))
        if err := h.validate.Var(f.Email, "required,email"); err != nil {
            return statusPage(c, 400, "Ошибка валидации", "Введите корректный email.", nil)
        }
        role, err := models.ParseRole(f.Role)
        if err != nil {
            return statusPage(c, 400, "Ошибка валидации", "Недопустимая роль.", nil)
        }

        hash := ""
        if f.Password != "" {
            if len(f.Password) < 8 {
                return statusPage(c, 400, "Ошибка валидации", "Пароль должен быть не короче 8 символов.", nil)
            }
            hashed, err := bcrypt.GenerateFromPassword([]byte(f.Password), bcrypt.DefaultCost)
            if err != nil {
                return statusPage(c, 500, "Ошибка сохранения", "Не удалось сохранить пользователя.", err)
            }
            hash = string(hashed)
        }

        u := models.User{
            ID:        f.ID,
            FirstName: strings.TrimSpace(f.FirstName),
            LastName:  strings.TrimSpace(f.LastName),
            Role:      role,
            Email:     f.Email,
            Password:  hash,
        }

        if f.Action == "create" {
            if hash == "" {
                return statusPage(c, 400, "Ошибка валидации", "Пароль обязателен при создании.", nil)
            }
            if _, err := h.store.CreateUser(u); err != nil {
                log.Printf("❌ create user: %v", err)
                return statusPage(c, 500, "Ошибка сохранения", "Не удалось создать пользователя.", err)
            }
        } else {
            if f.ID <= 0 {
                return statusPage(c, 400, "Некорректный id", "Пользователь не выбран.", nil)
            }
            err := h.store.UpdateUser(u)
            if errors.Is(err, store.ErrNotFound) {
                return statusPage(c, 404, "Не найдено", "Пользователь не найден.", nil)
            }
            if err != nil {
                log.Printf("❌ update user: %v", err)
                return statusPage(c, 500, "Ошибка обновления", "Не удалось обновить пользователя.", err)
            }
        }
        return c.Redirect("/users")

    case "delete":
        if f.ID <= 0 {
            return statusPage(c, 400, "Некорректный id", "Пользователь не выбран.", nil)
        }
        err := h.store.SoftDeleteUser(f.ID)
        if errors.Is(err, store.ErrNotFound) {
            return statusPage(c, 404, "Не найдено", "Пользователь не найден.", nil)
        }
        if err != nil {
            return statusPage(c, 500, "Ошибка удаления", "Не удалось удалить пользователя.", err)
        }
        return c.Redirect("/users")
    }

    return statusPage(c, 400, "Неизвестное действие", "Форма не поддерживает это действие.", nil)
}

// ======================= Профиль =======================

func (h *Handlers) GetProfilePage(c *fiber.Ctx) error {
    user, _ := currentUser(c)
    return c.Render("profile", fiber.Map{
        "Title": "Профиль",
        "User":  user,
    })
}

// HandleProfileForm — самообслуживание: имя, email, смена пароля.
// Роль пользователь менять не может.
func (h *Handlers) HandleProfileForm(c *fiber.Ctx) error {
    user, ok := currentUser(c)
    if !ok {
        return c.Redirect("/authenticate")
    }

    type formT struct {
        FirstName string `form:"first_name"`
        LastName  string `form:"last_name"`
        Email     string `form:"email"`
        Password  string `form:"password"`
    }
    var f formT
    if err := c.BodyParser(&f); err != nil {
        return statusPage(c, 400, "Неверные данные формы", "Не удалось разобрать форму.", err)
    }
    if f.FirstName == "" || f.LastName == "" || f.Email == "" {
        return statusPage(c, 400, "Ошибка валидации", "Заполните обязательные поля.", nil)
    }
    if !validName(f.FirstName) || !validName(f.LastName) {
        return statusPage(c, 400, "Ошибка валидации", "Имя и фамилия: 2-100 символов, буквы, пробелы, дефисы и апострофы.", nil)
    }
    f.Email = strings.ToLower(strings.TrimSpace(f.Email))
    if err := h.validate.Var(f.Email, "required,email"); err != nil {
        return statusPage(c, 400, "Ошибка валидации", "Введите корректный email.", nil)
    }

    hash := ""
    if f.Password != "" {
        if len(f.Password) < 8 {
            return statusPage(c, 400, "Ошибка валидации", "Пароль должен быть не короче 8 символов.", nil)
        }
        hashed, err := bcrypt.GenerateFromPassword([]byte(f.Password), bcrypt.DefaultCost)
        if err != nil {
            return statusPage(c, 500, "Ошибка сохранения", "Не удалось обновить профиль.", err)
        }
        hash = string(hashed)
    }

    err := h.store.UpdateUser(models.User{
        ID:        user.ID,
        FirstName: strings.TrimSpace(f.FirstName),
        LastName:  strings.TrimSpace(f.LastName),
        Role:      user.Role,
        Email:     f.Email,
        Password:  hash,
    })
    if err != nil {
        log.Printf("❌ update profile: %v", err)
        return statusPage(c, 500, "Ошибка обновления", "Не удалось обновить профиль.", err)
    }
    return c.Redirect("/profile")
}
