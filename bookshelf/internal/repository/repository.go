package repository

import (
	"context"
	"sync"

	"github.com/Astemirdum/bookshelf-service/bookshelf/internal/errs"
	"github.com/Astemirdum/bookshelf-service/bookshelf/internal/model"
	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, book model.Book) error
	List(ctx context.Context, filter model.BookFilter) ([]model.Book, error)
	Get(ctx context.Context, id string) (model.Book, error)
	// Update runs fn on a copy of the stored book under the write lock.
	// The copy replaces the stored book only when fn returns nil.
	Update(ctx context.Context, id string, fn func(book *model.Book) error) error
	Delete(ctx context.Context, id string) error
	Len(ctx context.Context) (int, error)
}

type repository struct {
	mu    sync.RWMutex
	books []model.Book
	log   *zap.Logger
}

func NewRepository(log *zap.Logger, seed ...model.Book) *repository {
	books := make([]model.Book, 0, len(seed))
	books = append(books, seed...)
	return &repository{
		books: books,
		log:   log.Named("repo"),
	}
}

func (r *repository) Create(_ context.Context, book model.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.books = append(r.books, book)
	r.log.Debug("Create", zap.String("id", book.ID), zap.Int("size", len(r.books)))
	return nil
}

func (r *repository) List(_ context.Context, filter model.BookFilter) ([]model.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	books := make([]model.Book, 0, len(r.books))
	for _, b := range r.books {
		if filter.Match(b) {
			books = append(books, b)
		}
	}
	return books, nil
}

func (r *repository) Get(_ context.Context, id string) (model.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i == -1 {
		return model.Book{}, errs.ErrNotFound
	}
	return r.books[i], nil
}

func (r *repository) Update(_ context.Context, id string, fn func(book *model.Book) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i == -1 {
		return errs.ErrNotFound
	}
	book := r.books[i]
	if err := fn(&book); err != nil {
		return err
	}
	book.ID = id
	r.books[i] = book
	return nil
}

func (r *repository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i == -1 {
		return errs.ErrNotFound
	}
	r.books = append(r.books[:i], r.books[i+1:]...)
	r.log.Debug("Delete", zap.String("id", id), zap.Int("size", len(r.books)))
	return nil
}

func (r *repository) Len(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.books), nil
}

// indexOf expects r.mu to be held.
func (r *repository) indexOf(id string) int {
	for i := range r.books {
		if r.books[i].ID == id {
			return i
		}
	}
	return -1
}
