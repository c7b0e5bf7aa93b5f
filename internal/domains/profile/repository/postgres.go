package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"authorsite-backend/internal/domains/profile"
)

// postgresProfileRepository implements profile.Repository using pgx.
// Badges and bio paragraphs are stored as jsonb columns.
type postgresProfileRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) profile.Repository {
	return &postgresProfileRepository{db: db}
}

func (r *postgresProfileRepository) Find(ctx context.Context) (*profile.Profile, error) {
	query := `
		SELECT id, author_name, title, title_icon, short_bio, profile_image_url,
		       page_title, favicon_url, show_badges, badges, long_bio,
		       use_bio_image, bio_image_url, use_bio_paragraphs, bio_paragraphs,
		       created_at, updated_at
		FROM author_profile
		LIMIT 1`

	var p profile.Profile
	var badges, paragraphs []byte

	err := r.db.QueryRow(ctx, query).Scan(
		&p.ID, &p.AuthorName, &p.Title, &p.TitleIcon, &p.ShortBio, &p.ProfileImageURL,
		&p.PageTitle, &p.FaviconURL, &p.ShowBadges, &badges, &p.LongBio,
		&p.UseBioImage, &p.BioImageURL, &p.UseBioParagraphs, &paragraphs,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, profile.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}

	if err := json.Unmarshal(badges, &p.Badges); err != nil {
		return nil, fmt.Errorf("failed to decode badges: %w", err)
	}
	if err := json.Unmarshal(paragraphs, &p.BioParagraphs); err != nil {
		return nil, fmt.Errorf("failed to decode bio paragraphs: %w", err)
	}

	return &p, nil
}

func (r *postgresProfileRepository) Upsert(ctx context.Context, p *profile.Profile) error {
	badges, err := json.Marshal(p.Badges)
	if err != nil {
		return fmt.Errorf("failed to encode badges: %w", err)
	}
	paragraphs, err := json.Marshal(p.BioParagraphs)
	if err != nil {
		return fmt.Errorf("failed to encode bio paragraphs: %w", err)
	}

	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	now := time.Now()
	p.UpdatedAt = now

	// Single-row table keyed by a constant singleton flag, so the
	// upsert always targets the same row.
	query := `
		INSERT INTO author_profile (
			id, singleton, author_name, title, title_icon, short_bio,
			profile_image_url, page_title, favicon_url, show_badges, badges,
			long_bio, use_bio_image, bio_image_url, use_bio_paragraphs,
			bio_paragraphs, created_at, updated_at
		) VALUES ($1, TRUE, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		ON CONFLICT (singleton) DO UPDATE SET
			author_name = EXCLUDED.author_name,
			title = EXCLUDED.title,
			title_icon = EXCLUDED.title_icon,
			short_bio = EXCLUDED.short_bio,
			profile_image_url = EXCLUDED.profile_image_url,
			page_title = EXCLUDED.page_title,
			favicon_url = EXCLUDED.favicon_url,
			show_badges = EXCLUDED.show_badges,
			badges = EXCLUDED.badges,
			long_bio = EXCLUDED.long_bio,
			use_bio_image = EXCLUDED.use_bio_image,
			bio_image_url = EXCLUDED.bio_image_url,
			use_bio_paragraphs = EXCLUDED.use_bio_paragraphs,
			bio_paragraphs = EXCLUDED.bio_paragraphs,
			updated_at = EXCLUDED.updated_at
		RETURNING id, created_at`

	err = r.db.QueryRow(ctx, query,
		p.ID, p.AuthorName, p.Title, p.TitleIcon, p.ShortBio,
		p.ProfileImageURL, p.PageTitle, p.FaviconURL, p.ShowBadges, badges,
		p.LongBio, p.UseBioImage, p.BioImageURL, p.UseBioParagraphs,
		paragraphs, now, now,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}

	return nil
}
