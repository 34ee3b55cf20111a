package store

import (
    "database/sql"

    "github.com/ryze42/Gym-App/internal/models"
)

func (s *Store) GetAllLocations() ([]models.Location, error) {
    ctx, cancel := withTimeout()
    defer cancel()

    rows, err := s.db.QueryContext(ctx, `
        SELECT id, name, address
        FROM locations
        ORDER BY name
    `)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    var list []models.Location
    for rows.Next() {
        var l models.Location
        if err := rows.Scan(&l.ID, &l.Name, &l.Address); err != nil {
            return nil, err
        }
        list = append(list, l)
    }
    return list, rows.Err()
}

func (s *Store) GetLocationByID(id int) (models.Location, error) {
    ctx, cancel := withTimeout()
    defer cancel()

    var l models.Location
    err := s.db.QueryRowContext(ctx, `
        SELECT id, name, address FROM locations WHERE id = $1
    `, id).Scan(&l.ID, &l.Name, &l.Address)
    if err == sql.ErrNoRows {
        return models.Location{}, ErrNotFound
    }
    return l, err
}

func (s *Store) CreateLocation(l models.Location) (int, error) {
    ctx, cancel := withTimeout()
    defer cancel()

    var id int
    err := s.db.QueryRowContext(ctx, `
        INSERT INTO locations (name, address)
        VALUES ($1, $2)
        RETURNING id
    `, l.Name, l.Address).Scan(&id)
    return id, err
}

func (s *Store) UpdateLocation(l models.Location) error {
    ctx, cancel := withTimeout()
    defer cancel()

    res, err := s.db.ExecContext(ctx, `
        UPDATE locations SET name = $2, address = $3 WHERE id = $1
    `, l.ID, l.Name, l.Address)
    if err != nil {
        return err
    }
    if n, _ := res.RowsAffected(); n == 0 {
        return ErrNotFound
    }
    return nil
}

// DeleteLocation удаляет зал физически. Зал с занятиями удалить нельзя:
// нарушение внешнего ключа переводится в ErrInUse.
func (s *Store) DeleteLocation(id int) error {
    ctx, cancel := withTimeout()
    defer cancel()

    res, err := s.db.ExecContext(ctx, `DELETE FROM locations WHERE id = $1`, id)
    if isForeignKeyViolation(err) {
        return ErrInUse
    }
    if err != nil {
        return err
    }
    if n, _ := res.RowsAffected(); n == 0 {
        return ErrNotFound
    }
    return nil
}
