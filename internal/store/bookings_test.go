package store

import (
    "database/sql"
    "errors"
    "testing"

    sqlmock "github.com/DATA-DOG/go-sqlmock"
    "github.com/lib/pq"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
    t.Helper()
    db, mock, err := sqlmock.New()
    if err != nil {
        t.Fatalf("sqlmock.New: %v", err)
    }
    t.Cleanup(func() { db.Close() })
    return New(db), mock
}

func sessionRows() *sqlmock.Rows {
    return sqlmock.NewRows([]string{"id", "activity_id", "date", "start_time", "location_id", "trainer_id"}).
        AddRow(3, 1, "2026-09-01", "09:30:00", 2, 4)
}

func activeBookingRows() *sqlmock.Rows {
    return sqlmock.NewRows([]string{"id", "member_id", "session_id", "status"}).
        AddRow(9, 5, 3, "active")
}

// Повторная активная бронь отсекается предварительной проверкой:
// INSERT не выполняется вообще.
func TestCreateBookingDuplicatePreCheck(t *testing.T) {
    st, mock := newMockStore(t)

    mock.ExpectQuery("FROM sessions").WithArgs(3).WillReturnRows(sessionRows())
    mock.ExpectQuery("FROM bookings").WithArgs(3, 5).WillReturnRows(activeBookingRows())

    id, err := st.CreateBooking(5, 3, "")
    if !errors.Is(err, ErrDuplicateBooking) {
        t.Fatalf("err = %v, ожидался ErrDuplicateBooking", err)
    }
    if id != 0 {
        t.Fatalf("id = %d, ожидался 0", id)
    }
    if err := mock.ExpectationsWereMet(); err != nil {
        t.Fatalf("лишние или недостающие запросы: %v", err)
    }
}

// Гонка "проверили-вставили": проверка прошла, но вставка упала на
// уникальном индексе. Нарушение транслируется в ту же ошибку.
func TestCreateBookingUniqueIndexBackstop(t *testing.T) {
    st, mock := newMockStore(t)

    mock.ExpectQuery("FROM sessions").WithArgs(3).WillReturnRows(sessionRows())
    mock.ExpectQuery("FROM bookings").WithArgs(3, 5).WillReturnError(sql.ErrNoRows)
    mock.ExpectQuery("INSERT INTO bookings").WithArgs(5, 3, "active").
        WillReturnError(&pq.Error{Code: "23505"})

    _, err := st.CreateBooking(5, 3, "")
    if !errors.Is(err, ErrDuplicateBooking) {
        t.Fatalf("err = %v, ожидался ErrDuplicateBooking", err)
    }
    if err := mock.ExpectationsWereMet(); err != nil {
        t.Fatalf("лишние или недостающие запросы: %v", err)
    }
}

// Бронь на несуществующее или удалённое занятие невозможна.
func TestCreateBookingSessionNotFound(t *testing.T) {
    st, mock := newMockStore(t)

    mock.ExpectQuery("FROM sessions").WithArgs(3).WillReturnError(sql.ErrNoRows)

    _, err := st.CreateBooking(5, 3, "")
    if !errors.Is(err, ErrNotFound) {
        t.Fatalf("err = %v, ожидался ErrNotFound", err)
    }
    if err := mock.ExpectationsWereMet(); err != nil {
        t.Fatalf("лишние или недостающие запросы: %v", err)
    }
}

func TestCreateBookingSuccess(t *testing.T) {
    st, mock := newMockStore(t)

    mock.ExpectQuery("FROM sessions").WithArgs(3).WillReturnRows(sessionRows())
    mock.ExpectQuery("FROM bookings").WithArgs(3, 5).WillReturnError(sql.ErrNoRows)
    mock.ExpectQuery("INSERT INTO bookings").WithArgs(5, 3, "active").
        WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

    id, err := st.CreateBooking(5, 3, "")
    if err != nil {
        t.Fatalf("CreateBooking: %v", err)
    }
    if id != 42 {
        t.Fatalf("id = %d, ожидался 42", id)
    }
}

// Повторная отмена уже отменённой брони — ErrNotFound, не тихий успех.
func TestCancelBookingRepeat(t *testing.T) {
    st, mock := newMockStore(t)

    mock.ExpectExec("UPDATE bookings").WithArgs(9).
        WillReturnResult(sqlmock.NewResult(0, 0))

    if err := st.CancelBooking(9); !errors.Is(err, ErrNotFound) {
        t.Fatalf("err = %v, ожидался ErrNotFound", err)
    }
}
