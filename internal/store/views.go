package store

import (
    "database/sql"
    "strconv"
    "strings"

    "github.com/ryze42/Gym-App/internal/models"
)

// JOIN-слой: собирает денормализованные записи занятие+тренер+активность+зал
// и бронь+занятие+..., которые читает остальная система.

const sessionViewColumns = `
        s.id, s.activity_id, to_char(s.date, 'YYYY-MM-DD'), to_char(s.start_time, 'HH24:MI:SS'), s.location_id, s.trainer_id,
        u.id, u.first_name, u.last_name, u.email,
        a.id, a.name, a.duration,
        l.id, l.name, l.address`

func scanSessionView(row interface{ Scan(...any) error }) (models.SessionView, error) {
    var v models.SessionView
    err := row.Scan(
        &v.Session.ID, &v.Session.ActivityID, &v.Session.Date, &v.Session.StartTime, &v.Session.LocationID, &v.Session.TrainerID,
        &v.Trainer.ID, &v.Trainer.FirstName, &v.Trainer.LastName, &v.Trainer.Email,
        &v.Activity.ID, &v.Activity.Name, &v.Activity.Duration,
        &v.Location.ID, &v.Location.Name, &v.Location.Address,
    )
    v.Trainer.Role = models.RoleTrainer
    return v, err
}

// SessionsWithContext возвращает занятия с тренером, активностью и залом,
// без удалённых, по возрастанию даты и времени начала.
// Непустой locationName фильтрует по названию зала.
func (s *Store) SessionsWithContext(locationName string) ([]models.SessionView, error) {
    query := `
        SELECT ` + sessionViewColumns + `
        FROM sessions s
        JOIN users u      ON u.id = s.trainer_id AND u.role = 'trainer'
        JOIN activities a ON a.id = s.activity_id
        JOIN locations l  ON l.id = s.location_id
        WHERE s.deleted = FALSE
    `
    args := []any{}
    if locationName != "" {
        args = append(args, locationName)
        query += ` AND l.name = $1`
    }
    query += ` ORDER BY s.date, s.start_time`

    ctx, cancel := withTimeout()
    defer cancel()

    rows, err := s.db.QueryContext(ctx, query, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    var list []models.SessionView
    for rows.Next() {
        v, err := scanSessionView(rows)
        if err != nil {
            return nil, err
        }
        list = append(list, v)
    }
    return list, rows.Err()
}

// BookingFilter сужает выборку броней: по участнику, по тренеру занятий
// или без фильтра (для администратора). Нулевые поля не применяются.
type BookingFilter struct {
    MemberID  int
    TrainerID int
}

// BookingsWithContext возвращает активные брони вместе с занятием и его
// окружением. Брони удалённых занятий не показываются.
func (s *Store) BookingsWithContext(f BookingFilter) ([]models.BookingView, error) {
    query := `
        SELECT b.id, b.member_id, b.session_id, b.status, ` + sessionViewColumns + `
        FROM bookings b
        JOIN sessions s   ON s.id = b.session_id
        JOIN users u      ON u.id = s.trainer_id AND u.role = 'trainer'
        JOIN activities a ON a.id = s.activity_id
        JOIN locations l  ON l.id = s.location_id
    `
    where := []string{`b.status = 'active'`, `s.deleted = FALSE`}
    args := []any{}
    nextPH := func() string {
        return "$" + strconv.Itoa(len(args))
    }

    if f.MemberID > 0 {
        args = append(args, f.MemberID)
        where = append(where, `b.member_id = `+nextPH())
    }
    if f.TrainerID > 0 {
        args = append(args, f.TrainerID)
        where = append(where, `s.trainer_id = `+nextPH())
    }

    query += ` WHERE ` + strings.Join(where, " AND ")
    query += ` ORDER BY s.date, s.start_time`

    ctx, cancel := withTimeout()
    defer cancel()

    rows, err := s.db.QueryContext(ctx, query, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    var list []models.BookingView
    for rows.Next() {
        var v models.BookingView
        err := rows.Scan(
            &v.Booking.ID, &v.Booking.MemberID, &v.Booking.SessionID, &v.Booking.Status,
            &v.Session.ID, &v.Session.ActivityID, &v.Session.Date, &v.Session.StartTime, &v.Session.LocationID, &v.Session.TrainerID,
            &v.Trainer.ID, &v.Trainer.FirstName, &v.Trainer.LastName, &v.Trainer.Email,
            &v.Activity.ID, &v.Activity.Name, &v.Activity.Duration,
            &v.Location.ID, &v.Location.Name, &v.Location.Address,
        )
        if err != nil {
            return nil, err
        }
        v.Trainer.Role = models.RoleTrainer
        list = append(list, v)
    }
    return list, rows.Err()
}

// BookingDetailsBySessionID возвращает кортеж занятие+тренер+активность+зал
// ровно для одного занятия. Отсутствующее или удалённое занятие — ErrNotFound,
// а не пустая запись: для запроса это терминальный исход.
func (s *Store) BookingDetailsBySessionID(sessionID int) (models.SessionView, error) {
    ctx, cancel := withTimeout()
    defer cancel()

    v, err := scanSessionView(s.db.QueryRowContext(ctx, `
        SELECT `+sessionViewColumns+`
        FROM sessions s
        JOIN users u      ON u.id = s.trainer_id AND u.role = 'trainer'
        JOIN activities a ON a.id = s.activity_id
        JOIN locations l  ON l.id = s.location_id
        WHERE s.deleted = FALSE AND s.id = $1
    `, sessionID))
    if err == sql.ErrNoRows {
        return models.SessionView{}, ErrNotFound
    }
    return v, err
}

// SameSlotSessions находит все занятия одного слота (дата, время, активность,
// зал) с именами тренеров, по фамилии тренера. Участник выбирает между ними,
// когда один и тот же класс ведут несколько тренеров.
func (s *Store) SameSlotSessions(date, startTime string, activityID, locationID int) ([]models.TrainerOption, error) {
    ctx, cancel := withTimeout()
    defer cancel()

    rows, err := s.db.QueryContext(ctx, `
        SELECT s.id, u.first_name || ' ' || u.last_name AS trainer_name
        FROM sessions s
        JOIN users u ON u.id = s.trainer_id AND u.role = 'trainer'
        WHERE s.date = $1::date
          AND s.start_time = $2::time
          AND s.activity_id = $3
          AND s.location_id = $4
          AND s.deleted = FALSE
        ORDER BY u.last_name
    `, date, startTime, activityID, locationID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    var list []models.TrainerOption
    for rows.Next() {
        var opt models.TrainerOption
        if err := rows.Scan(&opt.SessionID, &opt.TrainerName); err != nil {
            return nil, err
        }
        list = append(list, opt)
    }
    return list, rows.Err()
}
