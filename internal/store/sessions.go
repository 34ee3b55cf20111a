package store

import (
    "database/sql"

    "github.com/ryze42/Gym-App/internal/models"
)

// Дата и время занятия хранятся как DATE/TIME без часового пояса и
// читаются через to_char, чтобы группировка сравнивала строки 1:1.
const sessionColumns = `id, activity_id, to_char(date, 'YYYY-MM-DD'), to_char(start_time, 'HH24:MI:SS'), location_id, trainer_id`

func scanSession(row interface{ Scan(...any) error }) (models.Session, error) {
    var sess models.Session
    err := row.Scan(&sess.ID, &sess.ActivityID, &sess.Date, &sess.StartTime, &sess.LocationID, &sess.TrainerID)
    return sess, err
}

// GetSessionByID возвращает только неудалённое занятие: на удалённое
// нельзя ни записаться, ни показать его в расписании.
func (s *Store) GetSessionByID(id int) (models.Session, error) {
    ctx, cancel := withTimeout()
    defer cancel()

    sess, err := scanSession(s.db.QueryRowContext(ctx, `
        SELECT `+sessionColumns+` FROM sessions WHERE id = $1 AND deleted = FALSE
    `, id))
    if err == sql.ErrNoRows {
        return models.Session{}, ErrNotFound
    }
    return sess, err
}

func (s *Store) CreateSession(sess models.Session) (int, error) {
    ctx, cancel := withTimeout()
    defer cancel()

    var id int
    err := s.db.QueryRowContext(ctx, `
        INSERT INTO sessions (activity_id, date, start_time, location_id, trainer_id)
        VALUES ($1, $2::date, $3::time, $4, $5)
        RETURNING id
    `, sess.ActivityID, sess.Date, sess.StartTime, sess.LocationID, sess.TrainerID).Scan(&id)
    return id, err
}

func (s *Store) UpdateSession(sess models.Session) error {
    ctx, cancel := withTimeout()
    defer cancel()

    res, err := s.db.ExecContext(ctx, `
        UPDATE sessions
        SET activity_id = $2, date = $3::date, start_time = $4::time, location_id = $5, trainer_id = $6
        WHERE id = $1
    `, sess.ID, sess.ActivityID, sess.Date, sess.StartTime, sess.LocationID, sess.TrainerID)
    if err != nil {
        return err
    }
    if n, _ := res.RowsAffected(); n == 0 {
        return ErrNotFound
    }
    return nil
}

func (s *Store) SoftDeleteSession(id int) error {
    ctx, cancel := withTimeout()
    defer cancel()

    res, err := s.db.ExecContext(ctx, `UPDATE sessions SET deleted = TRUE WHERE id = $1`, id)
    if err != nil {
        return err
    }
    if n, _ := res.RowsAffected(); n == 0 {
        return ErrNotFound
    }
    return nil
}
