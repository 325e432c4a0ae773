package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Astemirdum/bookshelf-service/bookshelf/internal/errs"
	"github.com/Astemirdum/bookshelf-service/bookshelf/internal/handler"
	"github.com/Astemirdum/bookshelf-service/bookshelf/internal/model"
	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	service_mocks "github.com/Astemirdum/bookshelf-service/bookshelf/internal/handler/mocks"
)

type response struct {
	expectedCode int
	expectedBody string
}

func serve(t *testing.T, svc handler.BookService, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := handler.New(svc, zap.NewExample().Named("test"))
	e := h.NewRouter()

	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, http.NoBody)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)
	return w
}

func TestHandler_CreateBook(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *service_mocks.MockBookService)

	const payload = `{"name":"Buku A","year":2010,"author":"John Doe","summary":"Lorem","publisher":"Dicoding","pageCount":100,"readPage":25,"reading":false}`
	input := model.BookInput{Name: "Buku A", Year: 2010, Author: "John Doe", Summary: "Lorem", Publisher: "Dicoding", PageCount: 100, ReadPage: 25}

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: payload,
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().Create(gomock.Any(), input).Return("book-1", nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"status":"success","message":"book added successfully","data":{"bookId":"book-1"}}`,
			},
		},
		{
			name: "err. name required",
			body: `{"pageCount":10}`,
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().Create(gomock.Any(), model.BookInput{PageCount: 10}).Return("", errs.ErrNameRequired)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"status":"fail","message":"failed to add book. please fill in the book name"}`,
			},
		},
		{
			name: "err. readPage exceeds pageCount",
			body: `{"name":"x","pageCount":10,"readPage":15}`,
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().Create(gomock.Any(), model.BookInput{Name: "x", PageCount: 10, ReadPage: 15}).Return("", errs.ErrReadPageExceeds)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"status":"fail","message":"failed to add book. readPage cannot be greater than pageCount"}`,
			},
		},
		{
			name:         "err. malformed json",
			body:         `{"name":`,
			mockBehavior: func(r *service_mocks.MockBookService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"status":"fail","message":"failed to add book. invalid request payload"}`,
			},
		},
		{
			name: "err. negative pageCount",
			body: `{"name":"x","pageCount":-1,"readPage":-1}`,
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().Create(gomock.Any(), model.BookInput{Name: "x", PageCount: -1, ReadPage: -1}).Return("", errs.ErrNegativePages)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"status":"fail","message":"failed to add book. pageCount and readPage must not be negative"}`,
			},
		},
		{
			name: "err. internal",
			body: payload,
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().Create(gomock.Any(), input).Return("", errors.New("storage internal"))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"status":"error","message":"internal server error"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockBookService(c)
			tt.mockBehavior(svc)

			w := serve(t, svc, http.MethodPost, "/books", tt.body)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_ListBooks(t *testing.T) {
	t.Parallel()
	yes, no := true, false
	summaries := []model.BookSummary{{ID: "book-1", Name: "Dicoding", Publisher: "Dicoding Indonesia"}}

	var tests = []struct {
		name     string
		query    string
		filter   model.BookFilter
		result   []model.BookSummary
		err      error
		response response
	}{
		{
			name:   "ok. no filter",
			query:  "",
			filter: model.BookFilter{},
			result: summaries,
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"status":"success","data":{"books":[{"id":"book-1","name":"Dicoding","publisher":"Dicoding Indonesia"}]}}`,
			},
		},
		{
			name:   "ok. all filters",
			query:  "?name=DICOdING&reading=1&finished=0",
			filter: model.BookFilter{Name: "DICOdING", Reading: &yes, Finished: &no},
			result: summaries,
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"status":"success","data":{"books":[{"id":"book-1","name":"Dicoding","publisher":"Dicoding Indonesia"}]}}`,
			},
		},
		{
			name:   "ok. non 1 flag means false",
			query:  "?reading=yes",
			filter: model.BookFilter{Reading: &no},
			result: nil,
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"status":"success","data":{"books":[]}}`,
			},
		},
		{
			name:   "err. internal",
			filter: model.BookFilter{},
			err:    errors.New("boom"),
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"status":"error","message":"internal server error"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockBookService(c)
			svc.EXPECT().List(gomock.Any(), tt.filter).Return(tt.result, tt.err)

			w := serve(t, svc, http.MethodGet, "/books"+tt.query, "")

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_GetBook(t *testing.T) {
	t.Parallel()
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	book := model.Book{
		ID: "book-1", Name: "Dicoding", Year: 2010, Author: "John Doe", Summary: "Lorem",
		Publisher: "Dicoding Indonesia", PageCount: 100, ReadPage: 100, Finished: true, Reading: false,
		InsertedAt: ts, UpdatedAt: ts,
	}

	var tests = []struct {
		name     string
		id       string
		book     model.Book
		err      error
		response response
	}{
		{
			name: "ok",
			id:   "book-1",
			book: book,
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"status":"success","data":{"book":{"id":"book-1","name":"Dicoding","year":2010,"author":"John Doe","summary":"Lorem","publisher":"Dicoding Indonesia","pageCount":100,"readPage":100,"finished":true,"reading":false,"insertedAt":"2024-03-01T12:00:00Z","updatedAt":"2024-03-01T12:00:00Z"}}}`,
			},
		},
		{
			name: "err. not found",
			id:   "nonexistent",
			err:  errs.ErrNotFound,
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"status":"fail","message":"book not found"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockBookService(c)
			svc.EXPECT().Get(gomock.Any(), tt.id).Return(tt.book, tt.err)

			w := serve(t, svc, http.MethodGet, "/books/"+tt.id, "")

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_UpdateBook(t *testing.T) {
	t.Parallel()
	const payload = `{"name":"Buku A","pageCount":10,"readPage":5,"reading":true}`
	input := model.BookInput{Name: "Buku A", PageCount: 10, ReadPage: 5, Reading: true}

	var tests = []struct {
		name     string
		id       string
		err      error
		response response
	}{
		{
			name: "ok",
			id:   "book-1",
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"status":"success","message":"book updated successfully"}`,
			},
		},
		{
			name: "err. not found",
			id:   "nonexistent",
			err:  errs.ErrNotFound,
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"status":"fail","message":"failed to update book. id not found"}`,
			},
		},
		{
			name: "err. name required",
			id:   "book-1",
			err:  errs.ErrNameRequired,
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"status":"fail","message":"failed to update book. please fill in the book name"}`,
			},
		},
		{
			name: "err. readPage exceeds pageCount",
			id:   "book-1",
			err:  errs.ErrReadPageExceeds,
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"status":"fail","message":"failed to update book. readPage cannot be greater than pageCount"}`,
			},
		},
		{
			name: "err. negative pages",
			id:   "book-1",
			err:  errs.ErrNegativePages,
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"status":"fail","message":"failed to update book. pageCount and readPage must not be negative"}`,
			},
		},
		{
			name: "err. internal",
			id:   "book-1",
			err:  errors.New("boom"),
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"status":"error","message":"internal server error"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockBookService(c)
			svc.EXPECT().Update(gomock.Any(), tt.id, input).Return(tt.err)

			w := serve(t, svc, http.MethodPut, "/books/"+tt.id, payload)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_DeleteBook(t *testing.T) {
	t.Parallel()
	var tests = []struct {
		name     string
		id       string
		err      error
		response response
	}{
		{
			name: "ok",
			id:   "book-1",
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"status":"success","message":"book deleted successfully"}`,
			},
		},
		{
			name: "err. not found",
			id:   "nonexistent",
			err:  errs.ErrNotFound,
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"status":"fail","message":"failed to delete book. id not found"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockBookService(c)
			svc.EXPECT().Delete(gomock.Any(), tt.id).Return(tt.err)

			w := serve(t, svc, http.MethodDelete, "/books/"+tt.id, "")

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_Ops(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockBookService(c)

	w := serve(t, svc, http.MethodGet, "/manage/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "OK", w.Body.String())

	w = serve(t, svc, http.MethodGet, "/unknown", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, `{"status":"fail","message":"Not Found"}`, strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_Panic(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockBookService(c)
	svc.EXPECT().Get(gomock.Any(), "book-1").DoAndReturn(func(context.Context, string) (model.Book, error) {
		panic("unexpected")
	})

	w := serve(t, svc, http.MethodGet, "/books/book-1", "")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Equal(t, `{"status":"error","message":"internal server error"}`, strings.Trim(w.Body.String(), "\n"))
}
