package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	statusSuccess = "success"
	statusFail    = "fail"
	statusError   = "error"
)

const msgInternal = "internal server error"

type response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type bookIDData struct {
	BookID string `json:"bookId"`
}

type booksData struct {
	Books interface{} `json:"books"`
}

type bookData struct {
	Book interface{} `json:"book"`
}

func success(c echo.Context, code int, message string, data interface{}) error {
	return c.JSON(code, response{
		Status:  statusSuccess,
		Message: message,
		Data:    data,
	})
}

func internalError(err error) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusInternalServerError, msgInternal).SetInternal(err)
}

// errorHandler renders every error as the status envelope: 4xx are "fail", 5xx are "error".
func (h *Handler) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := msgInternal
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		} else if he.Message != nil {
			message = fmt.Sprint(he.Message)
		}
	}

	status := statusFail
	if code >= http.StatusInternalServerError {
		status = statusError
		message = msgInternal
		h.log.Error("request failed",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Path()),
			zap.Error(err))
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, response{Status: status, Message: message})
	}
	if err != nil {
		h.log.Error("errorHandler", zap.Error(err))
	}
}
