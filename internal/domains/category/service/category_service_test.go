package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"authorsite-backend/internal/domains/category"
)

type fakeCategoryRepo struct {
	categories map[uuid.UUID]*category.Category
	bookCounts map[uuid.UUID]int
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{
		categories: map[uuid.UUID]*category.Category{},
		bookCounts: map[uuid.UUID]int{},
	}
}

func (f *fakeCategoryRepo) Create(_ context.Context, c *category.Category) error {
	for _, existing := range f.categories {
		if existing.Name == c.Name {
			return category.ErrCategoryExists
		}
	}
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	cp := *c
	f.categories[c.ID] = &cp
	return nil
}

func (f *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*category.Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, category.ErrCategoryNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCategoryRepo) FindByName(_ context.Context, name string) (*category.Category, error) {
	for _, c := range f.categories {
		if c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, category.ErrCategoryNotFound
}

func (f *fakeCategoryRepo) FindAll(_ context.Context) ([]category.Category, error) {
	var out []category.Category
	for _, c := range f.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCategoryRepo) Update(_ context.Context, c *category.Category) error {
	if _, ok := f.categories[c.ID]; !ok {
		return category.ErrCategoryNotFound
	}
	c.UpdatedAt = time.Now()
	cp := *c
	f.categories[c.ID] = &cp
	return nil
}

func (f *fakeCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.categories[id]; !ok {
		return category.ErrCategoryNotFound
	}
	delete(f.categories, id)
	return nil
}

func (f *fakeCategoryRepo) CountBooks(_ context.Context, id uuid.UUID) (int, error) {
	return f.bookCounts[id], nil
}

func TestCreateCategoryRejectsDuplicateName(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := NewCategoryService(repo)

	_, err := svc.Create(context.Background(), &category.CreateCategoryRequest{Name: "Roman"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), &category.CreateCategoryRequest{Name: "Roman"})
	assert.ErrorIs(t, err, category.ErrCategoryExists)
}

func TestCreateCategoryValidatesName(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryRepo())

	_, err := svc.Create(context.Background(), &category.CreateCategoryRequest{Name: "   "})
	assert.ErrorIs(t, err, category.ErrMissingName)

	_, err = svc.Create(context.Background(), &category.CreateCategoryRequest{Name: "R"})
	assert.ErrorIs(t, err, category.ErrNameTooShort)
}

func TestDeleteCategoryRefusedWhileBooksReferenceIt(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := NewCategoryService(repo)

	created, err := svc.Create(context.Background(), &category.CreateCategoryRequest{Name: "Deneme"})
	require.NoError(t, err)

	repo.bookCounts[created.ID] = 3
	assert.ErrorIs(t, svc.Delete(context.Background(), created.ID), category.ErrCategoryInUse)

	repo.bookCounts[created.ID] = 0
	assert.NoError(t, svc.Delete(context.Background(), created.ID))

	_, err = svc.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, category.ErrCategoryNotFound)
}
