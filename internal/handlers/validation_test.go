package handlers

import "testing"

func TestValidName(t *testing.T) {
    tests := []struct {
        name string
        in   string
        want bool
    }{
        {"обычное имя", "Анна", true},
        {"латиница", "Mary", true},
        {"с дефисом", "Анна-Мария", true},
        {"с апострофом", "O'Brien", true},
        {"двойное с пробелом", "Анна Мария", true},
        {"один символ", "А", false},
        {"пустая строка", "", false},
        {"цифры", "Anna123", false},
        {"спецсимволы", "Anna<script>", false},
    }
    for _, tt := range tests {
        t.Run(tt.name, func(t *testing.T) {
            if got := validName(tt.in); got != tt.want {
                t.Errorf("validName(%q) = %v, ожидалось %v", tt.in, got, tt.want)
            }
        })
    }
}

func TestParseSessionDate(t *testing.T) {
    tests := []struct {
        in      string
        want    string
        wantErr bool
    }{
        {"2026-09-01", "2026-09-01", false},
        {"2026-02-29", "", true},
        {"01.09.2026", "", true},
        {"2026-9-1", "", true},
        {"", "", true},
    }
    for _, tt := range tests {
        got, err := parseSessionDate(tt.in)
        if (err != nil) != tt.wantErr {
            t.Errorf("parseSessionDate(%q): err = %v, wantErr = %v", tt.in, err, tt.wantErr)
            continue
        }
        if got != tt.want {
            t.Errorf("parseSessionDate(%q) = %q, ожидалось %q", tt.in, got, tt.want)
        }
    }
}

func TestParseSessionTime(t *testing.T) {
    tests := []struct {
        in      string
        want    string
        wantErr bool
    }{
        {"09:30", "09:30:00", false},
        {"09:30:00", "09:30:00", false},
        {"23:59", "23:59:00", false},
        {"9:30", "09:30:00", false},
        {"24:00", "", true},
        {"", "", true},
    }
    for _, tt := range tests {
        got, err := parseSessionTime(tt.in)
        if (err != nil) != tt.wantErr {
            t.Errorf("parseSessionTime(%q): err = %v, wantErr = %v", tt.in, err, tt.wantErr)
            continue
        }
        if got != tt.want {
            t.Errorf("parseSessionTime(%q) = %q, ожидалось %q", tt.in, got, tt.want)
        }
    }
}
