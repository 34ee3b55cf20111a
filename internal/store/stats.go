package store

// DashboardCounts — счётчики для главной панели администратора.
type DashboardCounts struct {
    Members  int
    Trainers int
    Sessions int
    Bookings int
}

// GetDashboardCounts собирает счётчики одним запросом на таблицу.
func (s *Store) GetDashboardCounts() (DashboardCounts, error) {
    ctx, cancel := withTimeout()
    defer cancel()

    var counts DashboardCounts
    queries := []struct {
        sql  string
        dest *int
    }{
        {`SELECT COUNT(*) FROM users WHERE role = 'member' AND deleted = FALSE`, &counts.Members},
        {`SELECT COUNT(*) FROM users WHERE role = 'trainer' AND deleted = FALSE`, &counts.Trainers},
        {`SELECT COUNT(*) FROM sessions WHERE deleted = FALSE`, &counts.Sessions},
        {`SELECT COUNT(*) FROM bookings WHERE status = 'active'`, &counts.Bookings},
    }
    for _, q := range queries {
        if err := s.db.QueryRowContext(ctx, q.sql).Scan(q.dest); err != nil {
            return DashboardCounts{}, err
        }
    }
    return counts, nil
}
