package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"authorsite-backend/internal/domains/book"
	"authorsite-backend/internal/domains/category"
)

type fakeBookRepo struct {
	books map[uuid.UUID]*book.Book
}

func newFakeBookRepo() *fakeBookRepo {
	return &fakeBookRepo{books: map[uuid.UUID]*book.Book{}}
}

func (f *fakeBookRepo) Create(_ context.Context, b *book.Book) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	cp := *b
	f.books[b.ID] = &cp
	return nil
}

func (f *fakeBookRepo) FindByID(_ context.Context, id uuid.UUID) (*book.Book, error) {
	b, ok := f.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBookRepo) FindAll(_ context.Context, q *book.ListBooksQuery) ([]book.BookWithCategory, error) {
	var out []book.BookWithCategory
	for _, b := range f.books {
		if q.Status != nil && string(b.Status) != *q.Status {
			continue
		}
		if q.CategoryID != nil && b.CategoryID != *q.CategoryID {
			continue
		}
		out = append(out, book.BookWithCategory{Book: *b})
	}
	return out, nil
}

func (f *fakeBookRepo) Update(_ context.Context, b *book.Book) error {
	if _, ok := f.books[b.ID]; !ok {
		return book.ErrBookNotFound
	}
	b.UpdatedAt = time.Now()
	cp := *b
	f.books[b.ID] = &cp
	return nil
}

func (f *fakeBookRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.books[id]; !ok {
		return book.ErrBookNotFound
	}
	delete(f.books, id)
	return nil
}

func (f *fakeBookRepo) Count(_ context.Context) (int, error) {
	return len(f.books), nil
}

func (f *fakeBookRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := f.books[id]
	return ok, nil
}

func (f *fakeBookRepo) FindTitle(_ context.Context, id uuid.UUID) (string, error) {
	b, ok := f.books[id]
	if !ok {
		return "", book.ErrBookNotFound
	}
	return b.Title, nil
}

type stubCategoryRepo struct {
	known map[uuid.UUID]bool
}

func (s *stubCategoryRepo) Create(context.Context, *category.Category) error { return nil }
func (s *stubCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*category.Category, error) {
	if !s.known[id] {
		return nil, category.ErrCategoryNotFound
	}
	return &category.Category{ID: id, Name: "Roman"}, nil
}
func (s *stubCategoryRepo) FindByName(context.Context, string) (*category.Category, error) {
	return nil, category.ErrCategoryNotFound
}
func (s *stubCategoryRepo) FindAll(context.Context) ([]category.Category, error) { return nil, nil }
func (s *stubCategoryRepo) Update(context.Context, *category.Category) error     { return nil }
func (s *stubCategoryRepo) Delete(context.Context, uuid.UUID) error              { return nil }
func (s *stubCategoryRepo) CountBooks(context.Context, uuid.UUID) (int, error)   { return 0, nil }

func validCreateRequest(categoryID uuid.UUID) *book.CreateBookRequest {
	return &book.CreateBookRequest{
		Title:         "Sessiz Ev",
		CategoryID:    categoryID,
		Description:   "Kısa açıklama",
		Status:        "published",
		CoverImageURL: "https://cdn.example.com/sessiz-ev.jpg",
	}
}

func TestCreateBookRequiresKnownCategory(t *testing.T) {
	catID := uuid.New()
	svc := NewBookService(newFakeBookRepo(), &stubCategoryRepo{known: map[uuid.UUID]bool{catID: true}})

	created, err := svc.Create(context.Background(), validCreateRequest(catID))
	require.NoError(t, err)
	assert.Equal(t, book.StatusPublished, created.Status)

	_, err = svc.Create(context.Background(), validCreateRequest(uuid.New()))
	assert.ErrorIs(t, err, book.ErrCategoryNotFound)
}

func TestCreateBookValidation(t *testing.T) {
	catID := uuid.New()
	svc := NewBookService(newFakeBookRepo(), &stubCategoryRepo{known: map[uuid.UUID]bool{catID: true}})

	req := validCreateRequest(catID)
	req.Title = ""
	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, book.ErrMissingFields)

	req = validCreateRequest(catID)
	req.Status = "archived"
	_, err = svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, book.ErrInvalidStatus)
}

func TestCreateBookDefaultsToDraft(t *testing.T) {
	catID := uuid.New()
	svc := NewBookService(newFakeBookRepo(), &stubCategoryRepo{known: map[uuid.UUID]bool{catID: true}})

	req := validCreateRequest(catID)
	req.Status = ""
	created, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, book.StatusDraft, created.Status)
}

func TestUpdateBookAppliesPartialChanges(t *testing.T) {
	catID := uuid.New()
	repo := newFakeBookRepo()
	svc := NewBookService(repo, &stubCategoryRepo{known: map[uuid.UUID]bool{catID: true}})

	created, err := svc.Create(context.Background(), validCreateRequest(catID))
	require.NoError(t, err)

	newStatus := "upcoming"
	updated, err := svc.Update(context.Background(), created.ID, &book.UpdateBookRequest{Status: &newStatus})
	require.NoError(t, err)
	assert.Equal(t, book.StatusUpcoming, updated.Status)
	assert.Equal(t, created.Title, updated.Title)

	badStatus := "archived"
	_, err = svc.Update(context.Background(), created.ID, &book.UpdateBookRequest{Status: &badStatus})
	assert.ErrorIs(t, err, book.ErrInvalidStatus)

	unknownCat := uuid.New()
	_, err = svc.Update(context.Background(), created.ID, &book.UpdateBookRequest{CategoryID: &unknownCat})
	assert.ErrorIs(t, err, book.ErrCategoryNotFound)

	_, err = svc.Update(context.Background(), uuid.New(), &book.UpdateBookRequest{Status: &newStatus})
	assert.ErrorIs(t, err, book.ErrBookNotFound)
}

func TestDeleteBook(t *testing.T) {
	catID := uuid.New()
	repo := newFakeBookRepo()
	svc := NewBookService(repo, &stubCategoryRepo{known: map[uuid.UUID]bool{catID: true}})

	created, err := svc.Create(context.Background(), validCreateRequest(catID))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	_, err = svc.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, book.ErrBookNotFound)

	err = svc.Delete(context.Background(), created.ID)
	assert.ErrorIs(t, err, book.ErrBookNotFound)
}

func TestListBooksRejectsUnknownStatusFilter(t *testing.T) {
	svc := NewBookService(newFakeBookRepo(), &stubCategoryRepo{known: map[uuid.UUID]bool{}})

	bad := "archived"
	_, err := svc.List(context.Background(), &book.ListBooksQuery{Status: &bad})
	assert.ErrorIs(t, err, book.ErrInvalidStatus)
}
