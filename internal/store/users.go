package store

import (
    "database/sql"
    "fmt"

    "github.com/ryze42/Gym-App/internal/models"
)

const userColumns = `id, first_name, last_name, role, email, password, authentication_key, deleted`

func scanUser(row interface{ Scan(...any) error }) (models.User, error) {
    var u models.User
    var role string
    err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &role, &u.Email, &u.Password, &u.AuthenticationKey, &u.Deleted)
    if err != nil {
        return models.User{}, err
    }
    u.Role, err = models.ParseRole(role)
    if err != nil {
        return models.User{}, err
    }
    return u, nil
}

// GetAllUsers возвращает всех неудалённых пользователей.
func (s *Store) GetAllUsers() ([]models.User, error) {
    ctx, cancel := withTimeout()
    defer cancel()

    rows, err := s.db.QueryContext(ctx, `
        SELECT `+userColumns+`
        FROM users
        WHERE deleted = FALSE
        ORDER BY last_name, first_name
    `)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    var list []models.User
    for rows.Next() {
        u, err := scanUser(rows)
        if err != nil {
            return nil, err
        }
        list = append(list, u)
    }
    return list, rows.Err()
}

// GetUsersByRole — неудалённые пользователи одной роли (для списков выбора).
func (s *Store) GetUsersByRole(role models.Role) ([]models.User, error) {
    ctx, cancel := withTimeout()
    defer cancel()

    rows, err := s.db.QueryContext(ctx, `
        SELECT `+userColumns+`
        FROM users
        WHERE deleted = FALSE AND role = $1
        ORDER BY last_name, first_name
    `, string(role))
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    var list []models.User
    for rows.Next() {
        u, err := scanUser(rows)
        if err != nil {
            return nil, err
        }
        list = append(list, u)
    }
    return list, rows.Err()
}

// GetUserByID возвращает пользователя в том числе удалённого:
// исторические брони должны уметь показать своего участника.
func (s *Store) GetUserByID(id int) (models.User, error) {
    ctx, cancel := withTimeout()
    defer cancel()

    u, err := scanUser(s.db.QueryRowContext(ctx, `
        SELECT `+userColumns+` FROM users WHERE id = $1
    `, id))
    if err == sql.ErrNoRows {
        return models.User{}, ErrNotFound
    }
    return u, err
}

func (s *Store) GetUserByEmail(email string) (models.User, error) {
    ctx, cancel := withTimeout()
    defer cancel()

    u, err := scanUser(s.db.QueryRowContext(ctx, `
        SELECT `+userColumns+` FROM users WHERE email = $1 AND deleted = FALSE
    `, email))
    if err == sql.ErrNoRows {
        return models.User{}, ErrNotFound
    }
    return u, err
}

func (s *Store) GetUserByAuthenticationKey(key string) (models.User, error) {
    ctx, cancel := withTimeout()
    defer cancel()

    u, err := scanUser(s.db.QueryRowContext(ctx, `
        SELECT `+userColumns+` FROM users WHERE authentication_key = $1 AND deleted = FALSE
    `, key))
    if err == sql.ErrNoRows {
        return models.User{}, ErrNotFound
    }
    return u, err
}

// CreateUser сохраняет нового пользователя. Пароль уже должен быть захэширован.
func (s *Store) CreateUser(u models.User) (int, error) {
    ctx, cancel := withTimeout()
    defer cancel()

    var id int
    err := s.db.QueryRowContext(ctx, `
        INSERT INTO users (first_name, last_name, role, email, password, authentication_key)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `, u.FirstName, u.LastName, string(u.Role), u.Email, u.Password, u.AuthenticationKey).Scan(&id)
    if isUniqueViolation(err) {
        return 0, fmt.Errorf("email уже зарегистрирован: %w", err)
    }
    return id, err
}

// UpdateUser обновляет пользователя. Пустой пароль означает "оставить прежний".
func (s *Store) UpdateUser(u models.User) error {
    ctx, cancel := withTimeout()
    defer cancel()

    res, err := s.db.ExecContext(ctx, `
        UPDATE users
        SET first_name = $2,
            last_name  = $3,
            role       = $4,
            email      = $5,
            password   = CASE WHEN $6 <> '' THEN $6 ELSE password END
        WHERE id = $1
    `, u.ID, u.FirstName, u.LastName, string(u.Role), u.Email, u.Password)
    if err != nil {
        return err
    }
    if n, _ := res.RowsAffected(); n == 0 {
        return ErrNotFound
    }
    return nil
}

// SetAuthenticationKey записывает ключ API. nil очищает ключ (logout).
func (s *Store) SetAuthenticationKey(userID int, key *string) error {
    ctx, cancel := withTimeout()
    defer cancel()

    res, err := s.db.ExecContext(ctx, `
        UPDATE users SET authentication_key = $2 WHERE id = $1
    `, userID, key)
    if err != nil {
        return err
    }
    if n, _ := res.RowsAffected(); n == 0 {
        return ErrNotFound
    }
    return nil
}

// SoftDeleteUser помечает пользователя удалённым. Физического удаления нет:
// исторические брони и посты должны сохранять ссылку на автора.
func (s *Store) SoftDeleteUser(id int) error {
    ctx, cancel := withTimeout()
    defer cancel()

    res, err := s.db.ExecContext(ctx, `UPDATE users SET deleted = TRUE WHERE id = $1`, id)
    if err != nil {
        return err
    }
    if n, _ := res.RowsAffected(); n == 0 {
        return ErrNotFound
    }
    return nil
}
