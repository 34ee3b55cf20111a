package timetable

import (
    "testing"

    "github.com/ryze42/Gym-App/internal/models"
)

func sessionView(id int, date, start string, activityID int, activityName string, locationID, trainerID int) models.SessionView {
    return models.SessionView{
        Session: models.Session{
            ID:         id,
            ActivityID: activityID,
            Date:       date,
            StartTime:  start,
            LocationID: locationID,
            TrainerID:  trainerID,
        },
        Trainer:  models.User{ID: trainerID, FirstName: "Тренер", LastName: "Номер", Role: models.RoleTrainer},
        Activity: models.Activity{ID: activityID, Name: activityName, Duration: 60},
        Location: models.Location{ID: locationID, Name: "Зал", Address: "ул. Главная"},
    }
}

func TestGroupMergesSameSlot(t *testing.T) {
    // Три занятия в одном слоте (дата, время, зал, активность),
    // разные тренеры — должен получиться ровно один слот.
    items := []models.SessionView{
        sessionView(1, "2026-09-02", "09:00:00", 10, "Йога", 5, 100),
        sessionView(2, "2026-09-02", "09:00:00", 10, "Йога", 5, 101),
        sessionView(3, "2026-09-02", "09:00:00", 10, "Йога", 5, 102),
    }

    grouped := GroupByDayAndActivity(items)

    slots := grouped["2026-09-02"]["Йога"]
    if len(slots) != 1 {
        t.Fatalf("ожидался 1 слот, получено %d", len(slots))
    }
    if len(slots[0].Trainers) != 3 {
        t.Fatalf("ожидалось 3 тренера, получено %d", len(slots[0].Trainers))
    }
    if len(slots[0].SessionIDs) != 3 {
        t.Fatalf("ожидалось 3 id занятий, получено %d", len(slots[0].SessionIDs))
    }
    for i, want := range []int{1, 2, 3} {
        if slots[0].SessionIDs[i] != want {
            t.Fatalf("sessionIds[%d]: ожидалось %d, получено %d", i, want, slots[0].SessionIDs[i])
        }
    }
}

func TestGroupSplitsByKey(t *testing.T) {
    tests := []struct {
        name  string
        other models.SessionView
    }{
        {name: "другое время", other: sessionView(2, "2026-09-02", "10:00:00", 10, "Йога", 5, 101)},
        {name: "другой зал", other: sessionView(2, "2026-09-02", "09:00:00", 10, "Йога", 6, 101)},
    }

    for _, tt := range tests {
        t.Run(tt.name, func(t *testing.T) {
            items := []models.SessionView{
                sessionView(1, "2026-09-02", "09:00:00", 10, "Йога", 5, 100),
                tt.other,
            }
            grouped := GroupByDayAndActivity(items)
            if got := len(grouped["2026-09-02"]["Йога"]); got != 2 {
                t.Fatalf("ожидалось 2 слота, получено %d", got)
            }
        })
    }
}

func TestGroupSplitsByDayAndActivity(t *testing.T) {
    items := []models.SessionView{
        sessionView(1, "2026-09-02", "09:00:00", 10, "Йога", 5, 100),
        sessionView(2, "2026-09-03", "09:00:00", 10, "Йога", 5, 100),
        sessionView(3, "2026-09-02", "09:00:00", 11, "Пилатес", 5, 101),
    }

    grouped := GroupByDayAndActivity(items)

    if len(grouped) != 2 {
        t.Fatalf("ожидалось 2 дня, получено %d", len(grouped))
    }
    if len(grouped["2026-09-02"]) != 2 {
        t.Fatalf("ожидалось 2 активности на 2026-09-02, получено %d", len(grouped["2026-09-02"]))
    }
    if len(grouped["2026-09-03"]["Йога"]) != 1 {
        t.Fatalf("ожидался 1 слот йоги на 2026-09-03")
    }
}

func TestGroupEmptyInput(t *testing.T) {
    grouped := GroupByDayAndActivity(nil)
    if len(grouped) != 0 {
        t.Fatalf("ожидалась пустая группировка, получено %d дней", len(grouped))
    }
}

func TestSelectedSession(t *testing.T) {
    items := []models.SessionView{
        sessionView(1, "2026-09-02", "09:00:00", 10, "Йога", 5, 100),
        sessionView(2, "2026-09-02", "10:00:00", 10, "Йога", 5, 100),
    }

    if got := SelectedSession(items, 2); got == nil || got.ID != 2 {
        t.Fatalf("ожидалось занятие 2, получено %+v", got)
    }
    // id вне списка — nil, не паника
    if got := SelectedSession(items, 99); got != nil {
        t.Fatalf("ожидался nil для отсутствующего id, получено %+v", got)
    }
    if got := SelectedSession(nil, 1); got != nil {
        t.Fatalf("ожидался nil для пустого списка, получено %+v", got)
    }
}

func TestLocationNamesUnique(t *testing.T) {
    a := sessionView(1, "2026-09-02", "09:00:00", 10, "Йога", 5, 100)
    b := sessionView(2, "2026-09-02", "10:00:00", 10, "Йога", 5, 100)
    c := sessionView(3, "2026-09-02", "11:00:00", 10, "Йога", 6, 100)
    c.Location.Name = "Второй зал"

    names := LocationNames([]models.SessionView{a, b, c})
    if len(names) != 2 {
        t.Fatalf("ожидалось 2 зала, получено %v", names)
    }
    if names[0] != "Зал" || names[1] != "Второй зал" {
        t.Fatalf("неверный порядок залов: %v", names)
    }
}

func TestActivitiesUnique(t *testing.T) {
    items := []models.SessionView{
        sessionView(1, "2026-09-02", "09:00:00", 10, "Йога", 5, 100),
        sessionView(2, "2026-09-02", "10:00:00", 10, "Йога", 5, 100),
        sessionView(3, "2026-09-02", "11:00:00", 11, "Пилатес", 5, 100),
    }

    list := Activities(items)
    if len(list) != 2 {
        t.Fatalf("ожидалось 2 активности, получено %d", len(list))
    }
}
