package handlers

import (
    "encoding/xml"
    "strings"
    "testing"
)

func TestBookingExportMarshal(t *testing.T) {
    export := xmlBookingExport{
        Member: "Анна Иванова",
        Bookings: []xmlBooking{
            {
                ID:        7,
                Status:    "active",
                Date:      "2026-09-01",
                StartTime: "09:30:00",
                Activity:  "Йога",
                Duration:  60,
                Location:  "Главный зал",
                Trainer:   "Пётр Смирнов",
            },
        },
    }

    out, err := xml.MarshalIndent(export, "", "  ")
    if err != nil {
        t.Fatalf("MarshalIndent: %v", err)
    }
    s := string(out)

    for _, want := range []string{
        `<bookings member="Анна Иванова">`,
        "<booking>",
        "<id>7</id>",
        "<status>active</status>",
        "<date>2026-09-01</date>",
        "<startTime>09:30:00</startTime>",
        "<durationMinutes>60</durationMinutes>",
    } {
        if !strings.Contains(s, want) {
            t.Errorf("в XML нет %q:\n%s", want, s)
        }
    }
}

func TestSessionExportMarshalEmpty(t *testing.T) {
    export := xmlSessionExport{Trainer: "Пётр Смирнов"}

    out, err := xml.Marshal(export)
    if err != nil {
        t.Fatalf("Marshal: %v", err)
    }
    s := string(out)
    if strings.Contains(s, "<session>") {
        t.Errorf("пустой экспорт не должен содержать занятий: %s", s)
    }
    if !strings.Contains(s, `trainer="Пётр Смирнов"`) {
        t.Errorf("нет атрибута trainer: %s", s)
    }
}
