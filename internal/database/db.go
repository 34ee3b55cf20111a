package database

import (
    "database/sql"
    "fmt"
    "log"
    "time"

    "github.com/ryze42/Gym-App/internal/config"

    _ "github.com/lib/pq"
)

// Connect открывает пул соединений к PostgreSQL.
// Пул создаётся явно и передаётся дальше через конструкторы,
// глобального состояния здесь нет.
func Connect(cfg *config.Config) (*sql.DB, error) {
    dbConfig := cfg.Database

    connectionStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
        dbConfig.Host,
        dbConfig.Port,
        dbConfig.User,
        dbConfig.Password,
        dbConfig.DBName,
        dbConfig.SSLMode)

    db, err := sql.Open("postgres", connectionStr)
    if err != nil {
        return nil, fmt.Errorf("ошибка подключения к БД: %w", err)
    }

    if err = db.Ping(); err != nil {
        db.Close()
        return nil, fmt.Errorf("ошибка ping БД: %w", err)
    }

    db.SetMaxOpenConns(25)
    db.SetMaxIdleConns(25)
    db.SetConnMaxLifetime(5 * time.Minute)
    log.Println("Успешное подключение к PostgreSQL")

    return db, nil
}

func TestConnection(db *sql.DB) error {
    var result int
    err := db.QueryRow("SELECT 1").Scan(&result)
    if err != nil {
        return fmt.Errorf("ошибка тестового запроса: %v", err)
    }

    if result != 1 {
        return fmt.Errorf("неожиданный результат теста: %d", result)
    }

    log.Println("Тестовый запрос к БД выполнен успешно")
    return nil
}
