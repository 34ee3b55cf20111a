package handlers

import (
    "errors"
    "log"
    "regexp"
    "strings"

    "github.com/gofiber/fiber/v2"
    "golang.org/x/crypto/bcrypt"

    "github.com/ryze42/Gym-App/internal/models"
    "github.com/ryze42/Gym-App/internal/store"
)

const localUserKey = "authenticatedUser"

// Имя: буквы, пробелы, дефисы и апострофы, 2-100 символов.
var nameRx = regexp.MustCompile(`^[\p{L}\s'-]{2,100}$`)

func validName(s string) bool {
    return nameRx.MatchString(strings.TrimSpace(s))
}

// currentUser возвращает пользователя, загруженного middleware аутентификации.
func currentUser(c *fiber.Ctx) (models.User, bool) {
    u, ok := c.Locals(localUserKey).(models.User)
    return u, ok
}

// SessionAuth загружает пользователя из cookie-сессии, если она есть.
// Сам по себе ничего не запрещает.
func (h *Handlers) SessionAuth(c *fiber.Ctx) error {
    sess, err := h.sessions.Get(c)
    if err != nil {
        log.Printf("session error: %v", err)
        return c.Next()
    }
    userID, ok := sess.Get("user_id").(int)
    if !ok || userID <= 0 {
        return c.Next()
    }
    user, err := h.store.GetUserByID(userID)
    if err != nil {
        return c.Next()
    }
    c.Locals(localUserKey, user)
    return c.Next()
}

// RequirePage пускает на страницу только перечисленные роли.
// Неаутентифицированных отправляет на форму входа, чужую роль — 403.
func (h *Handlers) RequirePage(roles ...models.Role) fiber.Handler {
    return func(c *fiber.Ctx) error {
        user, ok := currentUser(c)
        if !ok {
            return c.Redirect("/authenticate")
        }
        for _, r := range roles {
            if user.Role == r {
                return c.Next()
            }
        }
        return statusPage(c, 403, "Доступ запрещён", "У вас нет прав для этой страницы.", nil)
    }
}

// APIAuth аутентифицирует запрос по заголовку x-auth-key.
// Без валидного ключа до данных запрос не доходит.
func (h *Handlers) APIAuth(c *fiber.Ctx) error {
    key := strings.TrimSpace(c.Get("x-auth-key"))
    if key == "" {
        return jsonError(c, 401, "Требуется аутентификация", nil)
    }
    user, err := h.store.GetUserByAuthenticationKey(key)
    if errors.Is(err, store.ErrNotFound) {
        return jsonError(c, 401, "Недействительный ключ аутентификации", nil)
    }
    if err != nil {
        return jsonError(c, 500, "Ошибка БД", err)
    }
    c.Locals(localUserKey, user)
    return c.Next()
}

// APIRequire пускает к операции только перечисленные роли.
func (h *Handlers) APIRequire(roles ...models.Role) fiber.Handler {
    return func(c *fiber.Ctx) error {
        user, ok := currentUser(c)
        if !ok {
            return jsonError(c, 401, "Требуется аутентификация", nil)
        }
        for _, r := range roles {
            if user.Role == r {
                return c.Next()
            }
        }
        return jsonError(c, 403, "Недостаточно прав", nil)
    }
}

// ======================= Страницы входа =======================

func (h *Handlers) GetLoginPage(c *fiber.Ctx) error {
    user, _ := currentUser(c)
    return c.Render("login", fiber.Map{
        "Title": "Вход",
        "User":  user,
    })
}

func (h *Handlers) HandleLogin(c *fiber.Ctx) error {
    type formT struct {
        Email    string `form:"email"`
        Password string `form:"password"`
    }
    var f formT
    if err := c.BodyParser(&f); err != nil {
        return statusPage(c, 400, "Ошибка входа", "Неверные данные формы.", err)
    }
    f.Email = strings.ToLower(strings.TrimSpace(f.Email))
    if f.Email == "" || f.Password == "" {
        return statusPage(c, 400, "Ошибка входа", "Укажите email и пароль.", nil)
    }
    if err := h.validate.Var(f.Email, "required,email"); err != nil {
        return statusPage(c, 400, "Ошибка входа", "Введите корректный email.", nil)
    }

    user, err := h.store.GetUserByEmail(f.Email)
    if errors.Is(err, store.ErrNotFound) {
        return statusPage(c, 400, "Ошибка входа", "Неверные учётные данные.", nil)
    }
    if err != nil {
        return statusPage(c, 500, "Ошибка БД", "Не удалось выполнить вход.", err)
    }
    if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(f.Password)) != nil {
        return statusPage(c, 400, "Ошибка входа", "Неверные учётные данные.", nil)
    }

    sess, err := h.sessions.Get(c)
    if err != nil {
        return statusPage(c, 500, "Ошибка сессии", "Не удалось выполнить вход.", err)
    }
    sess.Set("user_id", user.ID)
    if err := sess.Save(); err != nil {
        return statusPage(c, 500, "Ошибка сессии", "Не удалось выполнить вход.", err)
    }

    return c.Redirect("/session_timetable")
}

func (h *Handlers) HandleRegister(c *fiber.Ctx) error {
    type formT struct {
        FirstName string `form:"first_name"`
        LastName  string `form:"last_name"`
        Email     string `form:"email"`
        Password  string `form:"password"`
    }
    var f formT
    if err := c.BodyParser(&f); err != nil {
        return statusPage(c, 400, "Ошибка регистрации", "Неверные данные формы.", err)
    }
    if f.FirstName == "" || f.LastName == "" || f.Email == "" || f.Password == "" {
        return statusPage(c, 400, "Ошибка регистрации", "Все поля обязательны.", nil)
    }
    if !validName(f.FirstName) || !validName(f.LastName) {
        return statusPage(c, 400, "Ошибка регистрации", "Имя и фамилия: 2-100 символов, буквы, пробелы, дефисы и апострофы.", nil)
    }
    f.Email = strings.ToLower(strings.TrimSpace(f.Email))
    if err := h.validate.Var(f.Email, "required,email"); err != nil {
        return statusPage(c, 400, "Ошибка регистрации", "Введите корректный email.", nil)
    }
    if len(f.Password) < 8 {
        return statusPage(c, 400, "Ошибка регистрации", "Пароль должен быть не короче 8 символов.", nil)
    }

    if _, err := h.store.GetUserByEmail(f.Email); err == nil {
        return statusPage(c, 400, "Ошибка регистрации", "Этот email уже зарегистрирован.", nil)
    }

    hash, err := bcrypt.GenerateFromPassword([]byte(f.Password), bcrypt.DefaultCost)
    if err != nil {
        return statusPage(c, 500, "Ошибка регистрации", "Не удалось создать учётную запись.", err)
    }

    // Публичная регистрация всегда создаёт участника.
    _, err = h.store.CreateUser(models.User{
        FirstName: strings.TrimSpace(f.FirstName),
        LastName:  strings.TrimSpace(f.LastName),
        Role:      models.RoleMember,
        Email:     f.Email,
        Password:  string(hash),
    })
    if err != nil {
        log.Printf("❌ register: %v", err)
        return statusPage(c, 500, "Ошибка регистрации", "Не удалось создать учётную запись.", err)
    }

    return statusPage(c, 200, "Регистрация завершена", "Учётная запись создана. Теперь вы можете войти.", nil)
}

func (h *Handlers) HandleLogout(c *fiber.Ctx) error {
    sess, err := h.sessions.Get(c)
    if err == nil {
        if err := sess.Destroy(); err != nil {
            log.Printf("session destroy: %v", err)
        }
    }
    return c.Redirect("/authenticate")
}
