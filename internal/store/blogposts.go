package store

import (
    "database/sql"

    "github.com/ryze42/Gym-App/internal/models"
)

// GetAllBlogPosts возвращает посты с именем автора, новые сверху.
func (s *Store) GetAllBlogPosts() ([]models.BlogPostView, error) {
    ctx, cancel := withTimeout()
    defer cancel()

    rows, err := s.db.QueryContext(ctx, `
        SELECT p.id, p.user_id, p.subject, p.content, p.created_at,
               u.first_name || ' ' || u.last_name AS author_name
        FROM blog_posts p
        JOIN users u ON u.id = p.user_id
        ORDER BY p.created_at DESC
    `)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    var list []models.BlogPostView
    for rows.Next() {
        var p models.BlogPostView
        if err := rows.Scan(&p.ID, &p.UserID, &p.Subject, &p.Content, &p.CreatedAt, &p.AuthorName); err != nil {
            return nil, err
        }
        list = append(list, p)
    }
    return list, rows.Err()
}

func (s *Store) GetBlogPostByID(id int) (models.BlogPostView, error) {
    ctx, cancel := withTimeout()
    defer cancel()

    var p models.BlogPostView
    err := s.db.QueryRowContext(ctx, `
        SELECT p.id, p.user_id, p.subject, p.content, p.created_at,
               u.first_name || ' ' || u.last_name AS author_name
        FROM blog_posts p
        JOIN users u ON u.id = p.user_id
        WHERE p.id = $1
    `, id).Scan(&p.ID, &p.UserID, &p.Subject, &p.Content, &p.CreatedAt, &p.AuthorName)
    if err == sql.ErrNoRows {
        return models.BlogPostView{}, ErrNotFound
    }
    return p, err
}

func (s *Store) CreateBlogPost(p models.BlogPost) (int, error) {
    ctx, cancel := withTimeout()
    defer cancel()

    var id int
    err := s.db.QueryRowContext(ctx, `
        INSERT INTO blog_posts (user_id, subject, content)
        VALUES ($1, $2, $3)
        RETURNING id
    `, p.UserID, p.Subject, p.Content).Scan(&id)
    return id, err
}

func (s *Store) UpdateBlogPost(p models.BlogPost) error {
    ctx, cancel := withTimeout()
    defer cancel()

    res, err := s.db.ExecContext(ctx, `
        UPDATE blog_posts SET subject = $2, content = $3 WHERE id = $1
    `, p.ID, p.Subject, p.Content)
    if err != nil {
        return err
    }
    if n, _ := res.RowsAffected(); n == 0 {
        return ErrNotFound
    }
    return nil
}

func (s *Store) DeleteBlogPost(id int) error {
    ctx, cancel := withTimeout()
    defer cancel()

    res, err := s.db.ExecContext(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
    if err != nil {
        return err
    }
    if n, _ := res.RowsAffected(); n == 0 {
        return ErrNotFound
    }
    return nil
}
