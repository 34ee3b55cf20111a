package store

import (
    "context"
    "database/sql"
    "errors"
    "time"

    "github.com/lib/pq"
)

const queryTimeout = 5 * time.Second

var (
    // ErrNotFound — запрошенная запись отсутствует или помечена удалённой.
    // Для вызывающего это терминальный исход запроса (404), не повтор.
    ErrNotFound = errors.New("запись не найдена")

    // ErrDuplicateBooking — у участника уже есть активная бронь на это занятие.
    ErrDuplicateBooking = errors.New("участник уже записан на это занятие")

    // ErrInUse — запись нельзя удалить, на неё ссылаются другие таблицы.
    ErrInUse = errors.New("запись используется связанными данными")
)

// Store — слой доступа к данным. Пул соединений передаётся явно,
// чтобы в тестах его можно было подменить.
type Store struct {
    db *sql.DB
}

func New(db *sql.DB) *Store {
    return &Store{db: db}
}

func withTimeout() (context.Context, context.CancelFunc) {
    return context.WithTimeout(context.Background(), queryTimeout)
}

// isUniqueViolation — нарушение уникального индекса (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
    var pqErr *pq.Error
    return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

// isForeignKeyViolation — нарушение внешнего ключа (SQLSTATE 23503).
func isForeignKeyViolation(err error) bool {
    var pqErr *pq.Error
    return errors.As(err, &pqErr) && pqErr.Code == "23503"
}
