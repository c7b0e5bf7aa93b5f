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

	"authorsite-backend/internal/domains/book"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) book.Repository {
	return &postgresRepository{pool: pool}
}

const bookColumns = `
	id, title, category_id, year, description, long_description,
	pages, publisher, isbn, status, cover_image_url,
	seo_title, seo_description, seo_keywords, created_at, updated_at
`

func scanBook(row pgx.Row, b *book.Book) error {
	return row.Scan(
		&b.ID, &b.Title, &b.CategoryID, &b.Year, &b.Description, &b.LongDescription,
		&b.Pages, &b.Publisher, &b.ISBN, &b.Status, &b.CoverImageURL,
		&b.SEOTitle, &b.SEODescription, &b.SEOKeywords, &b.CreatedAt, &b.UpdatedAt,
	)
}

func (r *postgresRepository) Create(ctx context.Context, b *book.Book) error {
	query := `
		INSERT INTO books (
			id, title, category_id, year, description, long_description,
			pages, publisher, isbn, status, cover_image_url,
			seo_title, seo_description, seo_keywords, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16
		)
		RETURNING created_at, updated_at
	`

	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	now := time.Now()

	err := r.pool.QueryRow(ctx, query,
		b.ID, b.Title, b.CategoryID, b.Year, b.Description, b.LongDescription,
		b.Pages, b.Publisher, b.ISBN, b.Status, b.CoverImageURL,
		b.SEOTitle, b.SEODescription, b.SEOKeywords, now, now,
	).Scan(&b.CreatedAt, &b.UpdatedAt)

	if err != nil {
		// 23503 = foreign_key_violation on category_id.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return book.ErrCategoryNotFound
		}
		return fmt.Errorf("create book: %w", err)
	}

	return nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1`

	var b book.Book
	if err := scanBook(r.pool.QueryRow(ctx, query, id), &b); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		return nil, fmt.Errorf("find book by id: %w", err)
	}

	return &b, nil
}

func (r *postgresRepository) FindAll(ctx context.Context, q *book.ListBooksQuery) ([]book.BookWithCategory, error) {
	query := `
		SELECT
			b.id, b.title, b.category_id, b.year, b.description, b.long_description,
			b.pages, b.publisher, b.isbn, b.status, b.cover_image_url,
			b.seo_title, b.seo_description, b.seo_keywords, b.created_at, b.updated_at,
			c.name
		FROM books b
		JOIN categories c ON c.id = b.category_id
		WHERE ($1::uuid IS NULL OR b.category_id = $1)
		  AND ($2::text IS NULL OR b.status = $2)
		ORDER BY b.created_at DESC
	`

	args := []interface{}{q.CategoryID, q.Status}
	if q.Limit > 0 {
		query += ` LIMIT $3`
		args = append(args, q.Limit)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()

	var books []book.BookWithCategory
	for rows.Next() {
		var b book.BookWithCategory
		if err := rows.Scan(
			&b.ID, &b.Title, &b.CategoryID, &b.Year, &b.Description, &b.LongDescription,
			&b.Pages, &b.Publisher, &b.ISBN, &b.Status, &b.CoverImageURL,
			&b.SEOTitle, &b.SEODescription, &b.SEOKeywords, &b.CreatedAt, &b.UpdatedAt,
			&b.CategoryName,
		); err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		books = append(books, b)
	}

	return books, rows.Err()
}

func (r *postgresRepository) Update(ctx context.Context, b *book.Book) error {
	query := `
		UPDATE books SET
			title = $2, category_id = $3, year = $4, description = $5,
			long_description = $6, pages = $7, publisher = $8, isbn = $9,
			status = $10, cover_image_url = $11, seo_title = $12,
			seo_description = $13, seo_keywords = $14, updated_at = $15
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		b.ID, b.Title, b.CategoryID, b.Year, b.Description, b.LongDescription,
		b.Pages, b.Publisher, b.ISBN, b.Status, b.CoverImageURL,
		b.SEOTitle, b.SEODescription, b.SEOKeywords, time.Now(),
	).Scan(&b.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return book.ErrBookNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return book.ErrCategoryNotFound
		}
		return fmt.Errorf("update book: %w", err)
	}

	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return book.ErrBookNotFound
	}

	return nil
}

func (r *postgresRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM books`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count books: %w", err)
	}

	return count, nil
}

func (r *postgresRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM books WHERE id = $1)`, id).
		Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("book exists: %w", err)
	}

	return exists, nil
}

func (r *postgresRepository) FindTitle(ctx context.Context, id uuid.UUID) (string, error) {
	var title string
	err := r.pool.QueryRow(ctx, `SELECT title FROM books WHERE id = $1`, id).Scan(&title)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", book.ErrBookNotFound
		}
		return "", fmt.Errorf("find book title: %w", err)
	}

	return title, nil
}
