package models

// Денормализованные записи для JOIN-запросов.

// SessionView — занятие вместе с тренером, активностью и залом.
type SessionView struct {
    Session  Session  `json:"session"`
    Trainer  User     `json:"trainer"`
    Activity Activity `json:"activity"`
    Location Location `json:"location"`
}

// BookingView — бронь вместе с занятием и его окружением.
type BookingView struct {
    Booking  Booking  `json:"booking"`
    Session  Session  `json:"session"`
    Trainer  User     `json:"trainer"`
    Activity Activity `json:"activity"`
    Location Location `json:"location"`
}

// TrainerOption — вариант тренера внутри одного слота расписания:
// то же время, тот же зал, та же активность, другой тренер.
type TrainerOption struct {
    SessionID   int    `json:"session_id"`
    TrainerName string `json:"trainer_name"`
}

// BlogPostView — пост блога с именем автора (lookup).
type BlogPostView struct {
    BlogPost
    AuthorName string `json:"author_name"`
}
