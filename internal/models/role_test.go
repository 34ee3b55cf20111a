package models

import "testing"

func TestParseRole(t *testing.T) {
    tests := []struct {
        in      string
        want    Role
        wantErr bool
    }{
        {in: "admin", want: RoleAdmin},
        {in: "trainer", want: RoleTrainer},
        {in: "member", want: RoleMember},
        {in: "", wantErr: true},
        {in: "Admin", wantErr: true},
        {in: "superuser", wantErr: true},
    }

    for _, tt := range tests {
        t.Run(tt.in, func(t *testing.T) {
            got, err := ParseRole(tt.in)
            if tt.wantErr {
                if err == nil {
                    t.Fatalf("ожидалась ошибка для %q", tt.in)
                }
                return
            }
            if err != nil {
                t.Fatalf("ParseRole(%q): %v", tt.in, err)
            }
            if got != tt.want {
                t.Fatalf("ожидалось %q, получено %q", tt.want, got)
            }
        })
    }
}

func TestFullName(t *testing.T) {
    u := User{FirstName: "Анна", LastName: "Петрова"}
    if got := u.FullName(); got != "Анна Петрова" {
        t.Fatalf("неверное полное имя: %q", got)
    }
}
