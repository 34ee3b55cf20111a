package database

import (
    "database/sql"
    _ "embed"
    "fmt"
    "log"
)

//go:embed schema.sql
var schema string

// Migrate создаёт таблицы и индексы, если их ещё нет.
func Migrate(db *sql.DB) error {
    if _, err := db.Exec(schema); err != nil {
        return fmt.Errorf("ошибка применения схемы: %w", err)
    }
    log.Println("Схема БД проверена")
    return nil
}
