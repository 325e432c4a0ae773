package handler

import (
	"context"

	"github.com/Astemirdum/bookshelf-service/bookshelf/internal/model"
	"github.com/Astemirdum/bookshelf-service/bookshelf/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type BookService interface {
	Create(ctx context.Context, in model.BookInput) (string, error)
	List(ctx context.Context, filter model.BookFilter) ([]model.BookSummary, error)
	Get(ctx context.Context, id string) (model.Book, error)
	Update(ctx context.Context, id string, in model.BookInput) error
	Delete(ctx context.Context, id string) error
}

var _ BookService = (*service.Service)(nil)
