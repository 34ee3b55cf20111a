// Package timetable группирует плоский список занятий в расписание:
// день → активность → слоты. Чистое преобразование в памяти, без БД.
package timetable

import (
    "github.com/ryze42/Gym-App/internal/models"
)

// Slot — один элемент расписания. Занятия с одинаковыми датой, временем
// начала, залом и активностью, но разными тренерами, сливаются в один слот:
// участник выбирает тренера, бронируется конкретный id занятия.
type Slot struct {
    Session    models.Session  `json:"session"`
    Activity   models.Activity `json:"activity"`
    Location   models.Location `json:"location"`
    Trainers   []models.User   `json:"trainers"`
    SessionIDs []int           `json:"sessionIds"`
}

// Grouped — день (YYYY-MM-DD) → название активности → слоты.
type Grouped map[string]map[string][]Slot

// GroupByDayAndActivity раскладывает занятия по дням и активностям.
// Ключ слияния внутри ведра — точное совпадение строки start_time и id зала.
// Дата берётся как хранится (YYYY-MM-DD, без часового пояса), никакой
// компенсации смещений не применяется.
func GroupByDayAndActivity(items []models.SessionView) Grouped {
    grouped := Grouped{}

    for _, item := range items {
        day := item.Session.Date
        activityName := item.Activity.Name

        if grouped[day] == nil {
            grouped[day] = map[string][]Slot{}
        }
        slots := grouped[day][activityName]

        merged := false
        for i := range slots {
            if slots[i].Session.StartTime == item.Session.StartTime &&
                slots[i].Location.ID == item.Location.ID {
                slots[i].Trainers = append(slots[i].Trainers, item.Trainer)
                slots[i].SessionIDs = append(slots[i].SessionIDs, item.Session.ID)
                merged = true
                break
            }
        }
        if !merged {
            slots = append(slots, Slot{
                Session:    item.Session,
                Activity:   item.Activity,
                Location:   item.Location,
                Trainers:   []models.User{item.Trainer},
                SessionIDs: []int{item.Session.ID},
            })
        }
        grouped[day][activityName] = slots
    }

    return grouped
}

// SelectedSession находит занятие по id в плоском списке.
// Отсутствующий id — nil, не паника.
func SelectedSession(items []models.SessionView, id int) *models.Session {
    for _, item := range items {
        if item.Session.ID == id {
            sess := item.Session
            return &sess
        }
    }
    return nil
}

// LocationNames — уникальные названия залов в порядке появления
// (для фильтра расписания).
func LocationNames(items []models.SessionView) []string {
    seen := map[string]bool{}
    var names []string
    for _, item := range items {
        if !seen[item.Location.Name] {
            seen[item.Location.Name] = true
            names = append(names, item.Location.Name)
        }
    }
    return names
}

// Activities — уникальные активности в порядке появления.
func Activities(items []models.SessionView) []models.Activity {
    seen := map[int]bool{}
    var list []models.Activity
    for _, item := range items {
        if !seen[item.Activity.ID] {
            seen[item.Activity.ID] = true
            list = append(list, item.Activity)
        }
    }
    return list
}
