package models

import (
    "database/sql"
    "fmt"
    "time"
)

// Role — закрытый набор ролей. Все проверки доступа ветвятся по этому типу.
type Role string

const (
    RoleAdmin   Role = "admin"
    RoleTrainer Role = "trainer"
    RoleMember  Role = "member"
)

// ParseRole проверяет, что строка из формы/БД входит в допустимый набор.
func ParseRole(s string) (Role, error) {
    switch Role(s) {
    case RoleAdmin, RoleTrainer, RoleMember:
        return Role(s), nil
    }
    return "", fmt.Errorf("недопустимая роль: %q", s)
}

// Статусы брони. Бронь никогда не удаляется физически.
const (
    BookingActive    = "active"
    BookingCancelled = "cancelled"
)

type User struct {
    ID                int            `json:"id"`
    FirstName         string         `json:"first_name"`
    LastName          string         `json:"last_name"`
    Role              Role           `json:"role"`
    Email             string         `json:"email"`
    Password          string         `json:"-"`
    AuthenticationKey sql.NullString `json:"-"`
    Deleted           bool           `json:"-"`
}

func (u User) FullName() string {
    return u.FirstName + " " + u.LastName
}

type Activity struct {
    ID       int    `json:"id"`
    Name     string `json:"name"`
    Duration int    `json:"duration"` // минуты
}

type Location struct {
    ID      int    `json:"id"`
    Name    string `json:"name"`
    Address string `json:"address"`
}

type Session struct {
    ID         int    `json:"id"`
    ActivityID int    `json:"activity_id"`
    Date       string `json:"date"`       // YYYY-MM-DD, без часового пояса
    StartTime  string `json:"start_time"` // HH:MM:SS, без часового пояса
    LocationID int    `json:"location_id"`
    TrainerID  int    `json:"trainer_id"`
}

type Booking struct {
    ID        int    `json:"id"`
    MemberID  int    `json:"member_id"`
    SessionID int    `json:"session_id"`
    Status    string `json:"status"`
}

type BlogPost struct {
    ID        int       `json:"id"`
    UserID    int       `json:"user_id"`
    Subject   string    `json:"subject"`
    Content   string    `json:"content"`
    CreatedAt time.Time `json:"created_at"`
}
