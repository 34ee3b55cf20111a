package config

import (
    "os"
    "testing"
)

func TestLoadConfigMergesSecrets(t *testing.T) {
    oldWD, err := os.Getwd()
    if err != nil {
        t.Fatal(err)
    }
    if err := os.Chdir(t.TempDir()); err != nil {
        t.Fatal(err)
    }
    t.Cleanup(func() { _ = os.Chdir(oldWD) })

    write := func(name, content string) {
        t.Helper()
        if err := os.WriteFile(name, []byte(content), 0o600); err != nil {
            t.Fatalf("запись %s: %v", name, err)
        }
    }

    write("config.yaml", `
database:
  host: localhost
  port: "5432"
  user: gym
  dbname: high_street_gym
  sslmode: disable
server:
  port: ":3000"
  template_path: ./web/templates
  static_path: ./web/static
`)
    write("config.secret.yaml", `
database:
  password: s3cret
server:
  session_secret: c2Vzc2lvbi1zZWNyZXQtMzItYnl0ZXMtbG9uZyEh
`)

    cfg := LoadConfig()

    if cfg.Database.Host != "localhost" || cfg.Database.DBName != "high_street_gym" {
        t.Errorf("основной конфиг не загружен: %+v", cfg.Database)
    }
    if cfg.Database.Password != "s3cret" {
        t.Errorf("пароль БД не слит из секретного файла: %q", cfg.Database.Password)
    }
    if cfg.Server.SessionSecret != "c2Vzc2lvbi1zZWNyZXQtMzItYnl0ZXMtbG9uZyEh" {
        t.Errorf("session_secret не слит из секретного файла: %q", cfg.Server.SessionSecret)
    }
    if cfg.Server.Port != ":3000" {
        t.Errorf("порт сервера = %q", cfg.Server.Port)
    }
}
