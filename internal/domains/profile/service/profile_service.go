package service

import (
	"context"
	"strings"

	"authorsite-backend/internal/domains/profile"
	"authorsite-backend/pkg/logger"
)

type profileServiceImpl struct {
	repository profile.Repository
}

func NewProfileService(repo profile.Repository) profile.Service {
	return &profileServiceImpl{repository: repo}
}

func (s *profileServiceImpl) Get(ctx context.Context) (*profile.Profile, error) {
	return s.repository.Find(ctx)
}

func (s *profileServiceImpl) Upsert(ctx context.Context, req *profile.UpsertProfileRequest) (*profile.Profile, error) {
	if req == nil ||
		strings.TrimSpace(req.AuthorName) == "" ||
		strings.TrimSpace(req.Title) == "" ||
		strings.TrimSpace(req.ShortBio) == "" ||
		strings.TrimSpace(req.LongBio) == "" ||
		strings.TrimSpace(req.PageTitle) == "" {
		return nil, profile.ErrMissingFields
	}

	if len(req.ShortBio) > profile.MaxShortBioLength {
		return nil, profile.ErrShortBioTooLong
	}

	p := &profile.Profile{
		AuthorName:       strings.TrimSpace(req.AuthorName),
		Title:            strings.TrimSpace(req.Title),
		TitleIcon:        req.TitleIcon,
		ShortBio:         req.ShortBio,
		ProfileImageURL:  req.ProfileImageURL,
		PageTitle:        strings.TrimSpace(req.PageTitle),
		FaviconURL:       req.FaviconURL,
		ShowBadges:       req.ShowBadges,
		Badges:           req.Badges,
		LongBio:          req.LongBio,
		UseBioImage:      req.UseBioImage,
		BioImageURL:      req.BioImageURL,
		UseBioParagraphs: req.UseBioParagraphs,
		BioParagraphs:    req.BioParagraphs,
	}
	if p.Badges == nil {
		p.Badges = []profile.Badge{}
	}
	if p.BioParagraphs == nil {
		p.BioParagraphs = []profile.BioParagraph{}
	}

	if err := s.repository.Upsert(ctx, p); err != nil {
		return nil, err
	}

	logger.Info("profile saved", map[string]interface{}{
		"profile_id":  p.ID.String(),
		"author_name": p.AuthorName,
	})

	return p, nil
}
