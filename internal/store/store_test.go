package store

import (
    "errors"
    "fmt"
    "testing"

    "github.com/lib/pq"
)

func TestIsUniqueViolation(t *testing.T) {
    tests := []struct {
        name string
        err  error
        want bool
    }{
        {"нарушение уникальности", &pq.Error{Code: "23505"}, true},
        {"обёрнутое нарушение", fmt.Errorf("insert: %w", &pq.Error{Code: "23505"}), true},
        {"другая ошибка pq", &pq.Error{Code: "23503"}, false},
        {"не pq-ошибка", errors.New("connection refused"), false},
        {"nil", nil, false},
    }
    for _, tt := range tests {
        t.Run(tt.name, func(t *testing.T) {
            if got := isUniqueViolation(tt.err); got != tt.want {
                t.Errorf("isUniqueViolation(%v) = %v, ожидалось %v", tt.err, got, tt.want)
            }
        })
    }
}
