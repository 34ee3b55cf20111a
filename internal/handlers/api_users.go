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

// APIGetProfile — профиль текущего пользователя.
func (h *Handlers) APIGetProfile(c *fiber.Ctx) error {
    user, _ := currentUser(c)
    return jsonOK(c, fiber.Map{"user": user})
}

// APIUpdateProfile — самообслуживание: имя, email, смена пароля.
// Роль через этот эндпоинт не меняется.
func (h *Handlers) APIUpdateProfile(c *fiber.Ctx) error {
    user, _ := currentUser(c)

    type payloadT struct {
        FirstName string `json:"first_name" validate:"required"`
        LastName  string `json:"last_name" validate:"required"`
        Email     string `json:"email" validate:"required,email"`
        Password  string `json:"password" validate:"omitempty,min=8"`
    }
    var p payloadT
    if err := c.BodyParser(&p); err != nil {
        return jsonError(c, 400, "Неверный JSON", err)
    }
    p.Email = strings.ToLower(strings.TrimSpace(p.Email))
    if err := h.validate.Struct(p); err != nil {
        return jsonError(c, 400, "Заполните обязательные поля", err)
    }
    if !validName(p.FirstName) || !validName(p.LastName) {
        return jsonError(c, 400, "Имя и фамилия: 2-100 символов, буквы, пробелы, дефисы и апострофы", nil)
    }

    hash := ""
    if p.Password != "" {
        hashed, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.DefaultCost)
        if err != nil {
            return jsonError(c, 500, "Ошибка сохранения", err)
        }
        hash = string(hashed)
    }

    err := h.store.UpdateUser(models.User{
        ID:        user.ID,
        FirstName: strings.TrimSpace(p.FirstName),
        LastName:  strings.TrimSpace(p.LastName),
        Role:      user.Role,
        Email:     p.Email,
        Password:  hash,
    })
    if err != nil {
        log.Printf("❌ api update profile: %v", err)
        return jsonError(c, 500, "Ошибка обновления", err)
    }

    updated, err := h.store.GetUserByID(user.ID)
    if err != nil {
        return jsonError(c, 500, "Ошибка БД", err)
    }
    return jsonOK(c, fiber.Map{"user": updated})
}

// ======================= Администрирование =======================

// APIGetUsers — все пользователи (только админ).
func (h *Handlers) APIGetUsers(c *fiber.Ctx) error {
    users, err := h.store.GetAllUsers()
    if err != nil {
        return jsonError(c, 500, "Ошибка БД", err)
    }
    return jsonOK(c, fiber.Map{"users": users})
}

// APIGetUser — пользователь по id (только админ).
func (h *Handlers) APIGetUser(c *fiber.Ctx) error {
    id, err := strconv.Atoi(c.Params("id"))
    if err != nil || id <= 0 {
        return jsonError(c, 400, "Некорректный id", err)
    }
    user, err := h.store.GetUserByID(id)
    if errors.Is(err, store.ErrNotFound) {
        return jsonError(c, 404, "Пользователь не найден", nil)
    }
    if err != nil {
        return jsonError(c, 500, "Ошибка БД", err)
    }
    return jsonOK(c, fiber.Map{"user": user})
}

// APICreateUser создаёт пользователя с любой ролью (только админ).
func (h *Handlers) APICreateUser(c *fiber.Ctx) error {
    type payloadT struct {
        FirstName string `json:"first_name" validate:"required"`
        LastName  string `json:"last_name" validate:"required"`
        Email     string `json:"email" validate:"required,email"`
        Password  string `json:"password" validate:"required,min=8"`
        Role      string `json:"role" validate:"required"`
    }
    var p payloadT
    if err := c.BodyParser(&p); err != nil {
        return jsonError(c, 400, "Неверный JSON", err)
    }
    p.Email = strings.ToLower(strings.TrimSpace(p.Email))
    if err := h.validate.Struct(p); err != nil {
        return jsonError(c, 400, "Заполните обязательные поля", err)
    }
    if !validName(p.FirstName) || !validName(p.LastName) {
        return jsonError(c, 400, "Имя и фамилия: 2-100 символов, буквы, пробелы, дефисы и апострофы", nil)
    }
    role, err := models.ParseRole(p.Role)
    if err != nil {
        return jsonError(c, 400, "Недопустимая роль", err)
    }

    hash, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.DefaultCost)
    if err != nil {
        return jsonError(c, 500, "Ошибка сохранения", err)
    }

    id, err := h.store.CreateUser(models.User{
        FirstName: strings.TrimSpace(p.FirstName),
        LastName:  strings.TrimSpace(p.LastName),
        Role:      role,
        Email:     p.Email,
        Password:  string(hash),
    })
    if err != nil {
        log.Printf("❌ api create user: %v", err)
        return jsonError(c, 500, "Ошибка сохранения", err)
    }

    c.Status(201)
    return jsonOK(c, fiber.Map{"id": id, "message": "Пользователь создан"})
}

// APIUpdateUser обновляет пользователя, включая роль (только админ).
func (h *Handlers) APIUpdateUser(c *fiber.Ctx) error {
    id, err := strconv.Atoi(c.Params("id"))
    if err != nil || id <= 0 {
        return jsonError(c, 400, "Некорректный id", err)
    }

    type payloadT struct {
        FirstName string `json:"first_name" validate:"required"`
        LastName  string `json:"last_name" validate:"required"`
        Email     string `json:"email" validate:"required,email"`
        Password  string `json:"password" validate:"omitempty,min=8"`
        Role      string `json:"role" validate:"required"`
    }
    var p payloadT
    if err := c.BodyParser(&p); err != nil {
        return jsonError(c, 400, "Неверный JSON", err)
    }
    p.Email = strings.ToLower(strings.TrimSpace(p.Email))
    if err := h.validate.Struct(p); err != nil {
        return jsonError(c, 400, "Заполните обязательные поля", err)
    }
    role, err := models.ParseRole(p.Role)
    if err != nil {
        return jsonError(c, 400, "Недопустимая роль", err)
    }

    hash := ""
    if p.Password != "" {
        hashed, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.DefaultCost)
        if err != nil {
            return jsonError(c, 500, "Ошибка сохранения", err)
        }
        hash = string(hashed)
    }

    err = h.store.UpdateUser(models.User{
        ID:        id,
        FirstName: strings.TrimSpace(p.FirstName),
        LastName:  strings.TrimSpace(p.LastName),
        Role:      role,
        Email:     p.Email,
        Password:  hash,
    })
    if errors.Is(err, store.ErrNotFound) {
        return jsonError(c, 404, "Пользователь не найден", nil)
    }
    if err != nil {
        return jsonError(c, 500, "Ошибка обновления", err)
    }
    return jsonOK(c, fiber.Map{"message": "Пользователь обновлён"})
}

// APIDeleteUser мягко удаляет пользователя (только админ).
func (h *Handlers) APIDeleteUser(c *fiber.Ctx) error {
    id, err := strconv.Atoi(c.Params("id"))
    if err != nil || id <= 0 {
        return jsonError(c, 400, "Некорректный id", err)
    }
    err = h.store.SoftDeleteUser(id)
    if errors.Is(err, store.ErrNotFound) {
        return jsonError(c, 404, "Пользователь не найден", nil)
    }
    if err != nil {
        return jsonError(c, 500, "Ошибка удаления", err)
    }
    return jsonOK(c, fiber.Map{"message": "Пользователь удалён"})
}
