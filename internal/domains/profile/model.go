package profile

import (
	"time"

	"github.com/google/uuid"
)

// Badge is a small icon+text pair shown next to the author's name.
type Badge struct {
	Icon string `json:"icon"`
	Text string `json:"text"`
}

// BioParagraph is one titled section of the long biography.
type BioParagraph struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Profile is the single author profile document driving the public
// site. The table holds at most one row.
type Profile struct {
	ID               uuid.UUID      `json:"id"`
	AuthorName       string         `json:"author_name"`
	Title            string         `json:"title"`
	TitleIcon        string         `json:"title_icon"`
	ShortBio         string         `json:"short_bio"`
	ProfileImageURL  string         `json:"profile_image_url"`
	PageTitle        string         `json:"page_title"`
	FaviconURL       string         `json:"favicon_url"`
	ShowBadges       bool           `json:"show_badges"`
	Badges           []Badge        `json:"badges"`
	LongBio          string         `json:"long_bio"`
	UseBioImage      bool           `json:"use_bio_image"`
	BioImageURL      string         `json:"bio_image_url"`
	UseBioParagraphs bool           `json:"use_bio_paragraphs"`
	BioParagraphs    []BioParagraph `json:"bio_paragraphs"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

const MaxShortBioLength = 200
