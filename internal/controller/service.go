package controller

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/project/catalog/internal/entity"
	"github.com/project/catalog/internal/log"
	"go.uber.org/zap"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

type (
	AuthorUseCase interface {
		GetAllAuthors(ctx context.Context) ([]entity.Author, error)
		GetAuthorByID(ctx context.Context, id int64) (entity.Author, error)
		CreateAuthor(ctx context.Context, name string) (entity.Author, error)
		UpdateAuthor(ctx context.Context, id int64, newName string) (entity.Author, error)
		DeleteAuthor(ctx context.Context, id int64) error
		GetBooksByAuthorID(ctx context.Context, authorID int64) ([]entity.Book, error)
		CountBooksByAuthorID(ctx context.Context, authorID int64) (int64, error)
	}

	BooksUseCase interface {
		GetAllBooks(ctx context.Context) ([]entity.Book, error)
		GetBookByID(ctx context.Context, id int64) (entity.Book, error)
		CreateBook(ctx context.Context, title, isbn string, authorID int64) (entity.Book, error)
		UpdateBook(ctx context.Context, id int64, newTitle, newIsbn string, newAuthorID *int64) (entity.Book, error)
		DeleteBook(ctx context.Context, id int64) error
		GetAuthorOfBook(ctx context.Context, bookID int64) (entity.Author, error)
		SearchBooks(ctx context.Context, search entity.BookSearch) ([]entity.Book, error)
	}

	Pinger interface {
		Ping(ctx context.Context) error
	}
)

type implementation struct {
	logger        *zap.Logger
	booksUseCase  BooksUseCase
	authorUseCase AuthorUseCase
	pinger        Pinger
}

func New(
	logger *zap.Logger,
	booksUseCase BooksUseCase,
	authorUseCase AuthorUseCase,
	pinger Pinger,
) *implementation {
	return &implementation{
		logger:        logger,
		booksUseCase:  booksUseCase,
		authorUseCase: authorUseCase,
		pinger:        pinger,
	}
}

// NewRouter builds the gin engine serving the catalog API.
func NewRouter(i *implementation) *gin.Engine {
	router := gin.New()
	router.Use(
		i.recovery(),
		requestID(),
		i.accessLog(),
		i.errorMapper(),
	)

	router.GET("/healthz", i.action(log.Health, i.Health))

	api := router.Group("/api")

	authors := api.Group("/authors")
	authors.GET("", i.action(log.GetAllAuthors, i.GetAllAuthors))
	authors.POST("", i.action(log.CreateAuthor, i.CreateAuthor))
	authors.GET("/:id", i.action(log.GetAuthor, i.GetAuthor))
	authors.PUT("/:id", i.action(log.UpdateAuthor, i.UpdateAuthor))
	authors.DELETE("/:id", i.action(log.DeleteAuthor, i.DeleteAuthor))
	authors.GET("/:id/books", i.action(log.GetAuthorBooks, i.GetAuthorBooks))
	authors.GET("/:id/books/count", i.action(log.CountAuthorBooks, i.CountAuthorBooks))

	books := api.Group("/books")
	books.GET("", i.action(log.GetAllBooks, i.GetAllBooks))
	books.POST("", i.action(log.CreateBook, i.CreateBook))
	books.GET("/search", i.action(log.SearchBooks, i.SearchBooks))
	books.GET("/:id", i.action(log.GetBook, i.GetBook))
	books.PUT("/:id", i.action(log.UpdateBook, i.UpdateBook))
	books.DELETE("/:id", i.action(log.DeleteBook, i.DeleteBook))
	books.GET("/:id/author", i.action(log.GetBookAuthor, i.GetBookAuthor))

	return router
}
