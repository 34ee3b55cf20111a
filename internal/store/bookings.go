package store

import (
    "database/sql"

    "github.com/ryze42/Gym-App/internal/models"
)

// GetBookingByID находит бронь независимо от статуса.
func (s *Store) GetBookingByID(id int) (models.Booking, error) {
    ctx, cancel := withTimeout()
    defer cancel()

    var b models.Booking
    err := s.db.QueryRowContext(ctx, `
        SELECT id, member_id, session_id, status FROM bookings WHERE id = $1
    `, id).Scan(&b.ID, &b.MemberID, &b.SessionID, &b.Status)
    if err == sql.ErrNoRows {
        return models.Booking{}, ErrNotFound
    }
    return b, err
}

// FindActiveBooking ищет активную бронь участника на занятие.
// Возвращает ErrNotFound, если такой брони нет.
func (s *Store) FindActiveBooking(sessionID, memberID int) (models.Booking, error) {
    ctx, cancel := withTimeout()
    defer cancel()

    var b models.Booking
    err := s.db.QueryRowContext(ctx, `
        SELECT id, member_id, session_id, status
        FROM bookings
        WHERE session_id = $1 AND member_id = $2 AND status = 'active'
    `, sessionID, memberID).Scan(&b.ID, &b.MemberID, &b.SessionID, &b.Status)
    if err == sql.ErrNoRows {
        return models.Booking{}, ErrNotFound
    }
    return b, err
}

// CreateBooking создаёт бронь участника на занятие.
// Занятие должно существовать и не быть удалённым (иначе ErrNotFound).
// Повторная активная бронь того же участника на то же занятие запрещена:
// предварительная проверка даёт понятное сообщение, а частичный уникальный
// индекс bookings_member_session_active закрывает гонку между проверкой
// и вставкой — нарушение транслируется в тот же ErrDuplicateBooking.
func (s *Store) CreateBooking(memberID, sessionID int, status string) (int, error) {
    if status == "" {
        status = models.BookingActive
    }

    if _, err := s.GetSessionByID(sessionID); err != nil {
        return 0, err
    }

    if _, err := s.FindActiveBooking(sessionID, memberID); err == nil {
        return 0, ErrDuplicateBooking
    } else if err != ErrNotFound {
        return 0, err
    }

    ctx, cancel := withTimeout()
    defer cancel()

    var id int
    err := s.db.QueryRowContext(ctx, `
        INSERT INTO bookings (member_id, session_id, status)
        VALUES ($1, $2, $3)
        RETURNING id
    `, memberID, sessionID, status).Scan(&id)
    if isUniqueViolation(err) {
        return 0, ErrDuplicateBooking
    }
    return id, err
}

// UpdateBookingStatus меняет статус брони. Возврат в active возможен
// только если это не создаст вторую активную бронь (индекс не даст).
func (s *Store) UpdateBookingStatus(id int, status string) error {
    ctx, cancel := withTimeout()
    defer cancel()

    res, err := s.db.ExecContext(ctx, `
        UPDATE bookings SET status = $2 WHERE id = $1
    `, id, status)
    if isUniqueViolation(err) {
        return ErrDuplicateBooking
    }
    if err != nil {
        return err
    }
    if n, _ := res.RowsAffected(); n == 0 {
        return ErrNotFound
    }
    return nil
}

// CancelBooking переводит бронь в cancelled. Повторная отмена или отмена
// несуществующей брони — ErrNotFound, не тихий успех.
func (s *Store) CancelBooking(id int) error {
    ctx, cancel := withTimeout()
    defer cancel()

    res, err := s.db.ExecContext(ctx, `
        UPDATE bookings SET status = 'cancelled' WHERE id = $1 AND status = 'active'
    `, id)
    if err != nil {
        return err
    }
    if n, _ := res.RowsAffected(); n == 0 {
        return ErrNotFound
    }
    return nil
}
