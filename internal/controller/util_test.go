package controller

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/project/catalog/internal/controller/mocks"
	"github.com/project/catalog/internal/entity"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var errInternal = errors.New("internal error")

func init() {
	gin.SetMode(gin.TestMode)
}

type pingerFunc func(ctx context.Context) error

func (p pingerFunc) Ping(ctx context.Context) error {
	return p(ctx)
}

type testEnv struct {
	authorUseCase *mocks.MockAuthorUseCase
	booksUseCase  *mocks.MockBooksUseCase
	pingErr       error
	router        *gin.Engine
}

func initTest(t *testing.T) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger, err := zap.NewProduction()
	if err != nil {
		t.Fatal("assertion error: " + err.Error())
	}

	env := &testEnv{
		authorUseCase: mocks.NewMockAuthorUseCase(ctrl),
		booksUseCase:  mocks.NewMockBooksUseCase(ctrl),
	}
	pinger := pingerFunc(func(context.Context) error {
		return env.pingErr
	})
	env.router = NewRouter(New(logger, env.booksUseCase, env.authorUseCase, pinger))
	return env
}

func (e *testEnv) do(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func convertCodeToError(code int, notFound error) error {
	switch code {
	case http.StatusNotFound:
		return notFound
	case http.StatusInternalServerError:
		return errInternal
	default:
		return nil
	}
}

func rowling() entity.Author {
	return entity.Author{ID: 1, Name: "J.K. Rowling"}
}

func king() entity.Author {
	return entity.Author{ID: 2, Name: "Stephen King"}
}

func potter() entity.Book {
	return entity.Book{ID: 10, Title: "Harry Potter és a bölcsek köve", ISBN: "963-8386-87-0", Author: rowling()}
}
