package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"authorsite-backend/internal/domains/profile"
)

type fakeProfileRepo struct {
	stored *profile.Profile
}

func (f *fakeProfileRepo) Find(ctx context.Context) (*profile.Profile, error) {
	if f.stored == nil {
		return nil, profile.ErrProfileNotFound
	}
	return f.stored, nil
}

func (f *fakeProfileRepo) Upsert(ctx context.Context, p *profile.Profile) error {
	f.stored = p
	return nil
}

func validUpsertRequest() *profile.UpsertProfileRequest {
	return &profile.UpsertProfileRequest{
		AuthorName: "Jane Doe",
		Title:      "Novelist",
		ShortBio:   "Writes historical fiction.",
		LongBio:    "A much longer biography of the author.",
		PageTitle:  "Jane Doe | Official Site",
	}
}

func TestProfileGetBeforeFirstSave(t *testing.T) {
	svc := NewProfileService(&fakeProfileRepo{})

	_, err := svc.Get(context.Background())
	assert.ErrorIs(t, err, profile.ErrProfileNotFound)
	assert.Equal(t, "PROFILE_NOT_FOUND", profile.ToErrorCode(err))
}

func TestProfileUpsertCreatesThenReplaces(t *testing.T) {
	repo := &fakeProfileRepo{}
	svc := NewProfileService(repo)

	first, err := svc.Upsert(context.Background(), validUpsertRequest())
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", first.AuthorName)
	assert.NotNil(t, first.Badges)

	req := validUpsertRequest()
	req.AuthorName = "Jane Q. Doe"
	second, err := svc.Upsert(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Jane Q. Doe", second.AuthorName)

	got, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Jane Q. Doe", got.AuthorName)
}

func TestProfileUpsertRequiredFields(t *testing.T) {
	svc := NewProfileService(&fakeProfileRepo{})

	req := validUpsertRequest()
	req.LongBio = "   "

	_, err := svc.Upsert(context.Background(), req)
	assert.ErrorIs(t, err, profile.ErrMissingFields)
	assert.Equal(t, "MISSING_REQUIRED_FIELDS", profile.ToErrorCode(err))
}

func TestProfileUpsertShortBioLimit(t *testing.T) {
	svc := NewProfileService(&fakeProfileRepo{})

	req := validUpsertRequest()
	req.ShortBio = strings.Repeat("a", profile.MaxShortBioLength+1)

	_, err := svc.Upsert(context.Background(), req)
	assert.ErrorIs(t, err, profile.ErrShortBioTooLong)
}
