package library

import (
	"context"

	"github.com/project/catalog/internal/entity"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

//go:generate mockgen -source=usecases.go -destination=mocks/library_mock.go -package=mocks

type (
	AuthorRepository interface {
		FindAll(ctx context.Context) ([]entity.Author, error)
		FindByID(ctx context.Context, id int64) (entity.Author, error)
		Save(ctx context.Context, author entity.Author) (entity.Author, error)
		DeleteByID(ctx context.Context, id int64) error
		ExistsByID(ctx context.Context, id int64) (bool, error)
	}

	BooksRepository interface {
		FindAll(ctx context.Context) ([]entity.Book, error)
		FindByID(ctx context.Context, id int64) (entity.Book, error)
		Save(ctx context.Context, book entity.Book) (entity.Book, error)
		DeleteByID(ctx context.Context, id int64) error

		FindByTitle(ctx context.Context, title string) ([]entity.Book, error)
		FindByTitleContainingIgnoreCase(ctx context.Context, title string) ([]entity.Book, error)
		FindByIsbn(ctx context.Context, isbn string) (entity.Book, error)
		FindByAuthorID(ctx context.Context, authorID int64) ([]entity.Book, error)
		FindByAuthorName(ctx context.Context, name string) ([]entity.Book, error)
		FindByAuthorNameContainingIgnoreCase(ctx context.Context, name string) ([]entity.Book, error)
		FindByTitleOrAuthorNameContaining(ctx context.Context, keyword string) ([]entity.Book, error)
		ExistsByIsbn(ctx context.Context, isbn string) (bool, error)
		CountByAuthorID(ctx context.Context, authorID int64) (int64, error)
	}

	Transactor interface {
		WithTx(ctx context.Context, function func(ctx context.Context) error) error
		WithReadTx(ctx context.Context, function func(ctx context.Context) error) error
	}
)

var _ AuthorUseCase = (*libraryImpl)(nil)
var _ BooksUseCase = (*libraryImpl)(nil)
var _ CatalogSeeder = (*libraryImpl)(nil)

type libraryImpl struct {
	logger           *zap.Logger
	authorRepository AuthorRepository
	booksRepository  BooksRepository
	transactor       Transactor
}

func New(
	logger *zap.Logger,
	authorRepository AuthorRepository,
	booksRepository BooksRepository,
	transactor Transactor,
) *libraryImpl {
	return &libraryImpl{
		logger:           logger,
		authorRepository: authorRepository,
		booksRepository:  booksRepository,
		transactor:       transactor,
	}
}

func spanOf(ctx context.Context) (trace.Span, string) {
	span := trace.SpanFromContext(ctx)
	return span, span.SpanContext().TraceID().String()
}

// getAuthorByID is the single place authors are resolved, so every caller
// fails with the same not found error.
func (l *libraryImpl) getAuthorByID(ctx context.Context, id int64) (entity.Author, error) {
	return l.authorRepository.FindByID(ctx, id)
}

func (l *libraryImpl) getBookByID(ctx context.Context, id int64) (entity.Book, error) {
	return l.booksRepository.FindByID(ctx, id)
}
