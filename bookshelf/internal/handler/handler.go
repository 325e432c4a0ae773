package handler

import (
	"net/http"
	"net/url"

	"github.com/Astemirdum/bookshelf-service/bookshelf/internal/errs"
	"github.com/Astemirdum/bookshelf-service/bookshelf/internal/model"
	md "github.com/Astemirdum/bookshelf-service/pkg/middleware"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	_ "github.com/Astemirdum/bookshelf-service/bookshelf/docs"
)

type Handler struct {
	bookSvc BookService
	log     *zap.Logger
}

func New(bookSvc BookService, log *zap.Logger) *Handler {
	return &Handler{
		bookSvc: bookSvc,
		log:     log.Named("handler"),
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.HTTPErrorHandler = h.errorHandler

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))
	e.Use(
		middleware.RequestID(),
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
	)

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	books := e.Group("/books", md.NewRateLimiter(apiRPS))
	books.POST("", h.CreateBook)
	books.GET("", h.ListBooks)
	books.GET("/:bookId", h.GetBook)
	books.PUT("/:bookId", h.UpdateBook)
	books.DELETE("/:bookId", h.DeleteBook)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) CreateBook(c echo.Context) error {
	in, err := bindInput(c, "failed to add book")
	if err != nil {
		return err
	}

	id, err := h.bookSvc.Create(c.Request().Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNameRequired):
			return echo.NewHTTPError(http.StatusBadRequest, "failed to add book. please fill in the book name")
		case errors.Is(err, errs.ErrReadPageExceeds):
			return echo.NewHTTPError(http.StatusBadRequest, "failed to add book. readPage cannot be greater than pageCount")
		case errors.Is(err, errs.ErrNegativePages):
			return echo.NewHTTPError(http.StatusBadRequest, "failed to add book. pageCount and readPage must not be negative")
		}
		return internalError(err)
	}

	return success(c, http.StatusCreated, "book added successfully", bookIDData{BookID: id})
}

func (h *Handler) ListBooks(c echo.Context) error {
	books, err := h.bookSvc.List(c.Request().Context(), parseFilter(c.QueryParams()))
	if err != nil {
		return internalError(err)
	}
	if books == nil {
		books = []model.BookSummary{}
	}
	return success(c, http.StatusOK, "", booksData{Books: books})
}

func (h *Handler) GetBook(c echo.Context) error {
	book, err := h.bookSvc.Get(c.Request().Context(), c.Param("bookId"))
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "book not found")
		}
		return internalError(err)
	}
	return success(c, http.StatusOK, "", bookData{Book: book})
}

func (h *Handler) UpdateBook(c echo.Context) error {
	in, err := bindInput(c, "failed to update book")
	if err != nil {
		return err
	}

	if err := h.bookSvc.Update(c.Request().Context(), c.Param("bookId"), in); err != nil {
		switch {
		case errors.Is(err, errs.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "failed to update book. id not found")
		case errors.Is(err, errs.ErrNameRequired):
			return echo.NewHTTPError(http.StatusBadRequest, "failed to update book. please fill in the book name")
		case errors.Is(err, errs.ErrReadPageExceeds):
			return echo.NewHTTPError(http.StatusBadRequest, "failed to update book. readPage cannot be greater than pageCount")
		case errors.Is(err, errs.ErrNegativePages):
			return echo.NewHTTPError(http.StatusBadRequest, "failed to update book. pageCount and readPage must not be negative")
		}
		return internalError(err)
	}

	return success(c, http.StatusOK, "book updated successfully", nil)
}

func (h *Handler) DeleteBook(c echo.Context) error {
	if err := h.bookSvc.Delete(c.Request().Context(), c.Param("bookId")); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "failed to delete book. id not found")
		}
		return internalError(err)
	}
	return success(c, http.StatusOK, "book deleted successfully", nil)
}

func bindInput(c echo.Context, action string) (model.BookInput, error) {
	var in model.BookInput
	if err := (&echo.DefaultBinder{}).BindBody(c, &in); err != nil {
		return in, echo.NewHTTPError(http.StatusBadRequest, action+". invalid request payload").SetInternal(err)
	}
	return in, nil
}

// parseFilter treats a present reading/finished parameter as true only when it equals "1".
func parseFilter(q url.Values) model.BookFilter {
	return model.BookFilter{
		Name:     q.Get("name"),
		Reading:  flag(q, "reading"),
		Finished: flag(q, "finished"),
	}
}

func flag(q url.Values, key string) *bool {
	if !q.Has(key) {
		return nil
	}
	v := q.Get(key) == "1"
	return &v
}
