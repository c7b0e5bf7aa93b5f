package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"authorsite-backend/internal/domains/comment"
)

// postgresCommentRepository implements comment.Repository using pgx.
type postgresCommentRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) comment.Repository {
	return &postgresCommentRepository{db: db}
}

func (r *postgresCommentRepository) Create(ctx context.Context, c *comment.Comment) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now

	query := `
		INSERT INTO comments (id, book_id, name, city, rating, content, is_anonymous, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.Exec(ctx, query,
		c.ID, c.BookID, c.Name, c.City, c.Rating, c.Content, c.IsAnonymous, c.Status, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return comment.ErrBookNotFound
		}
		return fmt.Errorf("failed to create comment: %w", err)
	}

	return nil
}

func (r *postgresCommentRepository) FindByID(ctx context.Context, id uuid.UUID) (*comment.Comment, error) {
	query := `
		SELECT id, book_id, name, city, rating, content, is_anonymous, status, created_at, updated_at
		FROM comments
		WHERE id = $1`

	var c comment.Comment
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.BookID, &c.Name, &c.City, &c.Rating, &c.Content, &c.IsAnonymous, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, comment.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to find comment: %w", err)
	}

	return &c, nil
}

func (r *postgresCommentRepository) FindByStatus(ctx context.Context, status comment.Status, limit int) ([]comment.CommentWithBook, error) {
	query := `
		SELECT c.id, c.book_id, c.name, c.city, c.rating, c.content, c.is_anonymous, c.status,
		       c.created_at, c.updated_at, b.title
		FROM comments c
		JOIN books b ON b.id = c.book_id
		WHERE c.status = $1
		ORDER BY c.created_at DESC
		LIMIT CASE WHEN $2 > 0 THEN $2 END`

	rows, err := r.db.Query(ctx, query, status, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	comments := make([]comment.CommentWithBook, 0)
	for rows.Next() {
		var c comment.CommentWithBook
		if err := rows.Scan(
			&c.ID, &c.BookID, &c.Name, &c.City, &c.Rating, &c.Content, &c.IsAnonymous, &c.Status,
			&c.CreatedAt, &c.UpdatedAt, &c.BookTitle,
		); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}

	return comments, rows.Err()
}

func (r *postgresCommentRepository) CountByStatus(ctx context.Context, status comment.Status) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM comments WHERE status = $1`, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count comments: %w", err)
	}
	return count, nil
}

func (r *postgresCommentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status comment.Status) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE comments SET status = $1, updated_at = $2 WHERE id = $3`,
		status, time.Now(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update comment status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return comment.ErrCommentNotFound
	}
	return nil
}
