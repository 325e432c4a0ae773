package service

import (
	"context"
	"time"

	"github.com/Astemirdum/bookshelf-service/bookshelf/internal/errs"
	"github.com/Astemirdum/bookshelf-service/bookshelf/internal/model"
	"github.com/Astemirdum/bookshelf-service/bookshelf/internal/repository"
	"github.com/Astemirdum/bookshelf-service/pkg/validate"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Publisher interface {
	Publish(ctx context.Context, event model.BookEvent) error
}

type Service struct {
	log       *zap.Logger
	repo      repository.Repository
	publisher Publisher
	now       func() time.Time
	newID     func() string
	validator *validate.CustomValidator
}

type Option func(s *Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func WithIDGenerator(newID func() string) Option {
	return func(s *Service) {
		s.newID = newID
	}
}

func WithPublisher(p Publisher) Option {
	return func(s *Service) {
		s.publisher = p
	}
}

func NewService(repo repository.Repository, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:       log.Named("service"),
		repo:      repo,
		publisher: nopPublisher{},
		now:       time.Now,
		newID:     uuid.NewString,
		validator: validate.NewCustomValidator(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Create(ctx context.Context, in model.BookInput) (string, error) {
	if err := s.validate(in); err != nil {
		return "", err
	}
	now := s.now().UTC()
	book := model.Book{
		ID:         s.newID(),
		Name:       in.Name,
		Year:       in.Year,
		Author:     in.Author,
		Summary:    in.Summary,
		Publisher:  in.Publisher,
		PageCount:  in.PageCount,
		ReadPage:   in.ReadPage,
		Finished:   in.ReadPage == in.PageCount,
		Reading:    in.Reading,
		InsertedAt: now,
		UpdatedAt:  now,
	}
	if err := s.repo.Create(ctx, book); err != nil {
		return "", errors.Wrap(err, "repo.Create")
	}
	s.publish(ctx, model.EventBookCreated, book.ID, &book)
	return book.ID, nil
}

func (s *Service) List(ctx context.Context, filter model.BookFilter) ([]model.BookSummary, error) {
	books, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "repo.List")
	}
	summaries := make([]model.BookSummary, 0, len(books))
	for _, b := range books {
		summaries = append(summaries, b.Summarize())
	}
	return summaries, nil
}

func (s *Service) Get(ctx context.Context, id string) (model.Book, error) {
	return s.repo.Get(ctx, id)
}

// Update overwrites every user-supplied field. Finished keeps the value
// computed at creation even when the pages change.
func (s *Service) Update(ctx context.Context, id string, in model.BookInput) error {
	var updated model.Book
	err := s.repo.Update(ctx, id, func(b *model.Book) error {
		if err := s.validate(in); err != nil {
			return err
		}
		b.Name = in.Name
		b.Year = in.Year
		b.Author = in.Author
		b.Summary = in.Summary
		b.Publisher = in.Publisher
		b.PageCount = in.PageCount
		b.ReadPage = in.ReadPage
		b.Reading = in.Reading
		b.UpdatedAt = s.now().UTC()
		updated = *b
		return nil
	})
	if err != nil {
		return err
	}
	s.publish(ctx, model.EventBookUpdated, id, &updated)
	return nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, model.EventBookDeleted, id, nil)
	return nil
}

// validate reports the first failing check: name, then readPage against
// pageCount, then the schema tags of BookInput.
func (s *Service) validate(in model.BookInput) error {
	if in.Name == "" {
		return errs.ErrNameRequired
	}
	if in.ReadPage > in.PageCount {
		return errs.ErrReadPageExceeds
	}
	if err := s.validator.Validate(in); err != nil {
		return errors.WithMessage(errs.ErrNegativePages, err.Error())
	}
	return nil
}

// publish runs after the change is stored, a failure is only logged.
func (s *Service) publish(ctx context.Context, typ model.EventType, id string, book *model.Book) {
	event := model.BookEvent{
		Type:       typ,
		BookID:     id,
		Book:       book,
		OccurredAt: s.now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.Warn("publish", zap.String("type", string(typ)), zap.String("id", id), zap.Error(err))
	}
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, model.BookEvent) error { return nil }
