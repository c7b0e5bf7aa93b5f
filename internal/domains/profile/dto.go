package profile

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// UpsertProfileRequest creates the profile on first save and replaces
// it afterwards.
type UpsertProfileRequest struct {
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
}

func (r UpsertProfileRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.AuthorName, validation.Required, validation.Length(2, 100)),
		validation.Field(&r.Title, validation.Required, validation.Length(2, 100)),
		validation.Field(&r.ShortBio, validation.Required, validation.Length(1, MaxShortBioLength)),
		validation.Field(&r.LongBio, validation.Required, validation.Length(10, 0)),
		validation.Field(&r.PageTitle, validation.Required, validation.Length(2, 100)),
	)
}
