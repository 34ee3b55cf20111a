package handlers

import (
    "strings"
    "testing"
)

func TestProblemTypeByMessage(t *testing.T) {
    tests := []struct {
        title  string
        status int
        want   string
    }{
        {"Некорректный id", 400, "invalid-id"},
        {"Неверные данные формы", 400, "invalid-form"},
        {"Неверный JSON", 400, "invalid-form"},
        {"Заполните обязательные поля", 400, "missing-required-fields"},
        {"Неверный формат даты (ожидается ГГГГ-ММ-ДД)", 400, "invalid-date"},
        {"Неверное время начала", 400, "invalid-time"},
        {"Вы уже записаны на это занятие", 409, "duplicate-booking"},
        {"Участник уже записан на это занятие", 409, "duplicate-booking"},
        {"Бронь не найдена", 404, "not-found"},
        {"Ошибка БД", 500, "database-error"},
        {"Недопустимая роль", 400, "invalid-role"},
        {"Недопустимый статус брони", 400, "invalid-status"},
    }
    for _, tt := range tests {
        got := problemType(tt.title, tt.status)
        if !strings.HasSuffix(got, ":"+tt.want) {
            t.Errorf("problemType(%q, %d) = %q, ожидался код %q", tt.title, tt.status, got, tt.want)
        }
    }
}

func TestProblemTypeByStatus(t *testing.T) {
    tests := []struct {
        status int
        want   string
    }{
        {400, "validation-error"},
        {401, "unauthorized"},
        {403, "forbidden"},
        {404, "not-found"},
        {409, "conflict"},
        {500, "internal-error"},
    }
    for _, tt := range tests {
        got := problemType("что-то пошло не так", tt.status)
        if !strings.HasSuffix(got, ":"+tt.want) {
            t.Errorf("problemType(_, %d) = %q, ожидался код %q", tt.status, got, tt.want)
        }
    }
}

func TestProblemTypeBaseURL(t *testing.T) {
    defer SetProblemBaseURL("")

    SetProblemBaseURL("https://gym.example.com/problem/")
    got := problemType("Бронь не найдена", 404)
    if got != "https://gym.example.com/problem/not-found" {
        t.Fatalf("problemType с базовым URL = %q", got)
    }

    SetProblemBaseURL("")
    got = problemType("Бронь не найдена", 404)
    if got != "urn:high-street-gym:problem:not-found" {
        t.Fatalf("problemType без базового URL = %q", got)
    }
}
