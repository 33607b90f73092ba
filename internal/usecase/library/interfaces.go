package library

import (
	"context"

	"github.com/project/catalog/internal/entity"
)

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
		// UpdateBook always overwrites title and isbn. The author is replaced
		// only when newAuthorID is not nil.
		UpdateBook(ctx context.Context, id int64, newTitle, newIsbn string, newAuthorID *int64) (entity.Book, error)
		DeleteBook(ctx context.Context, id int64) error
		GetAuthorOfBook(ctx context.Context, bookID int64) (entity.Author, error)
		SearchBooks(ctx context.Context, search entity.BookSearch) ([]entity.Book, error)
	}

	CatalogSeeder interface {
		SeedCatalog(ctx context.Context) (bool, error)
	}
)
