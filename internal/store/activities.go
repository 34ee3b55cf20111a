package store

import (
    "database/sql"

    "github.com/ryze42/Gym-App/internal/models"
)

func (s *Store) GetAllActivities() ([]models.Activity, error) {
    ctx, cancel := withTimeout()
    defer cancel()

    rows, err := s.db.QueryContext(ctx, `
        SELECT id, name, duration
        FROM activities
        WHERE deleted = FALSE
        ORDER BY name
    `)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    var list []models.Activity
    for rows.Next() {
        var a models.Activity
        if err := rows.Scan(&a.ID, &a.Name, &a.Duration); err != nil {
            return nil, err
        }
        list = append(list, a)
    }
    return list, rows.Err()
}

func (s *Store) GetActivityByID(id int) (models.Activity, error) {
    ctx, cancel := withTimeout()
    defer cancel()

    var a models.Activity
    err := s.db.QueryRowContext(ctx, `
        SELECT id, name, duration FROM activities WHERE id = $1
    `, id).Scan(&a.ID, &a.Name, &a.Duration)
    if err == sql.ErrNoRows {
        return models.Activity{}, ErrNotFound
    }
    return a, err
}

func (s *Store) CreateActivity(a models.Activity) (int, error) {
    ctx, cancel := withTimeout()
    defer cancel()

    var id int
    err := s.db.QueryRowContext(ctx, `
        INSERT INTO activities (name, duration)
        VALUES ($1, $2)
        RETURNING id
    `, a.Name, a.Duration).Scan(&id)
    return id, err
}

func (s *Store) UpdateActivity(a models.Activity) error {
    ctx, cancel := withTimeout()
    defer cancel()

    res, err := s.db.ExecContext(ctx, `
        UPDATE activities SET name = $2, duration = $3 WHERE id = $1
    `, a.ID, a.Name, a.Duration)
    if err != nil {
        return err
    }
    if n, _ := res.RowsAffected(); n == 0 {
        return ErrNotFound
    }
    return nil
}

func (s *Store) SoftDeleteActivity(id int) error {
    ctx, cancel := withTimeout()
    defer cancel()

    res, err := s.db.ExecContext(ctx, `UPDATE activities SET deleted = TRUE WHERE id = $1`, id)
    if err != nil {
        return err
    }
    if n, _ := res.RowsAffected(); n == 0 {
        return ErrNotFound
    }
    return nil
}
