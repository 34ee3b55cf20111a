package handlers

import (
    "errors"
    "log"
    "strings"

    "github.com/gofiber/fiber/v2"
    "github.com/google/uuid"
    "golang.org/x/crypto/bcrypt"

    "github.com/ryze42/Gym-App/internal/models"
    "github.com/ryze42/Gym-App/internal/store"
)

// APIAuthenticate выдаёт непрозрачный ключ аутентификации по email и паролю.
// Ключ предъявляется в заголовке x-auth-key вместо учётных данных.
func (h *Handlers) APIAuthenticate(c *fiber.Ctx) error {
    type payloadT struct {
        Email    string `json:"email" validate:"required,email"`
        Password string `json:"password" validate:"required"`
    }
    var p payloadT
    if err := c.BodyParser(&p); err != nil {
        return jsonError(c, 400, "Неверный JSON", err)
    }
    p.Email = strings.ToLower(strings.TrimSpace(p.Email))
    if err := h.validate.Struct(p); err != nil {
        return jsonError(c, 400, "Укажите корректный email и пароль", err)
    }

    user, err := h.store.GetUserByEmail(p.Email)
    if errors.Is(err, store.ErrNotFound) {
        return jsonError(c, 400, "Неверные учётные данные", nil)
    }
    if err != nil {
        return jsonError(c, 500, "Ошибка БД", err)
    }
    if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(p.Password)) != nil {
        return jsonError(c, 400, "Неверные учётные данные", nil)
    }

    key := uuid.NewString()
    if err := h.store.SetAuthenticationKey(user.ID, &key); err != nil {
        return jsonError(c, 500, "Ошибка сохранения ключа", err)
    }

    return jsonOK(c, fiber.Map{
        "authenticationKey": fiber.Map{"key": key},
        "user":              user,
    })
}

// APIDeauthenticate отзывает ключ текущего пользователя.
func (h *Handlers) APIDeauthenticate(c *fiber.Ctx) error {
    user, ok := currentUser(c)
    if !ok {
        return jsonError(c, 401, "Требуется аутентификация", nil)
    }
    if err := h.store.SetAuthenticationKey(user.ID, nil); err != nil {
        return jsonError(c, 500, "Ошибка отзыва ключа", err)
    }
    return jsonOK(c, fiber.Map{"message": "Выход выполнен"})
}

// APIRegister создаёт учётную запись участника через JSON API.
func (h *Handlers) APIRegister(c *fiber.Ctx) error {
    type payloadT struct {
        FirstName string `json:"first_name" validate:"required"`
        LastName  string `json:"last_name" validate:"required"`
        Email     string `json:"email" validate:"required,email"`
        Password  string `json:"password" validate:"required,min=8"`
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

    if _, err := h.store.GetUserByEmail(p.Email); err == nil {
        return jsonError(c, 400, "Этот email уже зарегистрирован", nil)
    }

    hash, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.DefaultCost)
    if err != nil {
        return jsonError(c, 500, "Не удалось создать учётную запись", err)
    }

    id, err := h.store.CreateUser(models.User{
        FirstName: strings.TrimSpace(p.FirstName),
        LastName:  strings.TrimSpace(p.LastName),
        Role:      models.RoleMember,
        Email:     p.Email,
        Password:  string(hash),
    })
    if err != nil {
        log.Printf("❌ api register: %v", err)
        return jsonError(c, 500, "Не удалось создать учётную запись", err)
    }

    c.Status(201)
    return jsonOK(c, fiber.Map{"id": id, "message": "Учётная запись создана"})
}
