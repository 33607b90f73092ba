package library

import (
	"context"
	"errors"
	"testing"

	"github.com/project/catalog/internal/entity"
	"github.com/project/catalog/internal/usecase/library/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var errInternal = errors.New("internal error")

type testEnv struct {
	ctx        context.Context
	authorRepo *mocks.MockAuthorRepository
	booksRepo  *mocks.MockBooksRepository
	transactor *mocks.MockTransactor
	library    *libraryImpl
}

func initTest(t *testing.T) testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger, err := zap.NewProduction()
	if err != nil {
		t.Fatal("assertion error: " + err.Error())
	}

	env := testEnv{
		ctx:        context.Background(),
		authorRepo: mocks.NewMockAuthorRepository(ctrl),
		booksRepo:  mocks.NewMockBooksRepository(ctrl),
		transactor: mocks.NewMockTransactor(ctrl),
	}
	env.library = New(logger, env.authorRepo, env.booksRepo, env.transactor)

	passThrough := func(ctx context.Context, function func(ctx context.Context) error) error {
		return function(ctx)
	}
	env.transactor.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(passThrough).AnyTimes()
	env.transactor.EXPECT().WithReadTx(gomock.Any(), gomock.Any()).DoAndReturn(passThrough).AnyTimes()

	return env
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
