package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/project/catalog/internal/entity"
	"go.uber.org/zap"
)

const (
	ErrForeignKeyViolation = "23503"
	ErrUniqueViolation     = "23505"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likeEscape makes s match literally inside an ILIKE pattern using ESCAPE '\'.
func likeEscape(s string) string {
	return likeEscaper.Replace(s)
}

var _ BooksRepository = (*booksRepository)(nil)

type booksRepository struct {
	logger *zap.Logger
	db     DataBase
}

func NewBooksRepository(logger *zap.Logger, db DataBase) *booksRepository {
	return &booksRepository{
		logger: logger,
		db:     db,
	}
}

// A missing isbn is stored as NULL, so the unique constraint only
// applies to books that have one.
const selectBook = `
SELECT b.id, b.title, COALESCE(b.isbn, ''), b.created_at, b.updated_at,
       a.id, a.name, a.created_at, a.updated_at
FROM books b
JOIN authors a ON a.id = b.author_id
`

func scanBook(row pgx.Row) (entity.Book, error) {
	var book entity.Book
	err := row.Scan(
		&book.ID, &book.Title, &book.ISBN, &book.CreatedAt, &book.UpdatedAt,
		&book.Author.ID, &book.Author.Name, &book.Author.CreatedAt, &book.Author.UpdatedAt,
	)
	return book, err
}

func (b *booksRepository) queryBooks(ctx context.Context, query string, args ...any) ([]entity.Book, error) {
	rows, err := executor(ctx, b.db).Query(ctx, query, args...)
	if err != nil {
		return nil, dbError(b.logger, err, "select books")
	}

	books, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.Book, error) {
		return scanBook(row)
	})
	if err != nil {
		return nil, dbError(b.logger, err, "scan books")
	}

	return books, nil
}

func (b *booksRepository) queryBook(ctx context.Context, query string, args ...any) (entity.Book, error) {
	book, err := scanBook(executor(ctx, b.db).QueryRow(ctx, query, args...))

	if errors.Is(err, pgx.ErrNoRows) {
		return entity.Book{}, entity.ErrBookNotFound
	}

	if err != nil {
		return entity.Book{}, dbError(b.logger, err, "select book")
	}

	return book, nil
}

func (b *booksRepository) FindAll(ctx context.Context) ([]entity.Book, error) {
	return b.queryBooks(ctx, selectBook+`ORDER BY b.id`)
}

func (b *booksRepository) FindByID(ctx context.Context, id int64) (entity.Book, error) {
	return b.queryBook(ctx, selectBook+`WHERE b.id = $1`, id)
}

func (b *booksRepository) Save(ctx context.Context, book entity.Book) (entity.Book, error) {
	var (
		result = book
		err    error
	)

	if book.IsNew() {
		const query = `
INSERT INTO books (title, isbn, author_id)
VALUES ($1, NULLIF($2, ''), $3)
RETURNING id, created_at, updated_at
`
		err = executor(ctx, b.db).QueryRow(ctx, query, book.Title, book.ISBN, book.Author.ID).
			Scan(&result.ID, &result.CreatedAt, &result.UpdatedAt)
	} else {
		const query = `
UPDATE books SET title = $1, isbn = NULLIF($2, ''), author_id = $3
WHERE id = $4
RETURNING created_at, updated_at
`
		err = executor(ctx, b.db).QueryRow(ctx, query, book.Title, book.ISBN, book.Author.ID, book.ID).
			Scan(&result.CreatedAt, &result.UpdatedAt)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return entity.Book{}, entity.ErrBookNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case ErrForeignKeyViolation:
			return entity.Book{}, fmt.Errorf("author with ID %d does not exist: %w",
				book.Author.ID, entity.ErrAuthorNotFound)
		case ErrUniqueViolation:
			return entity.Book{}, fmt.Errorf("isbn %q: %w", book.ISBN, entity.ErrIsbnTaken)
		}
	}

	if err != nil {
		return entity.Book{}, dbError(b.logger, err, "save book")
	}

	return result, nil
}

func (b *booksRepository) DeleteByID(ctx context.Context, id int64) error {
	const query = `
DELETE FROM books WHERE id = $1
`
	tag, err := executor(ctx, b.db).Exec(ctx, query, id)
	if err != nil {
		return dbError(b.logger, err, fmt.Sprintf("delete book %d", id))
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrBookNotFound
	}

	return nil
}

func (b *booksRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	const query = `
SELECT EXISTS(SELECT 1 FROM books WHERE id = $1)
`
	return b.exists(ctx, query, id)
}

func (b *booksRepository) FindByTitle(ctx context.Context, title string) ([]entity.Book, error) {
	return b.queryBooks(ctx, selectBook+`WHERE b.title = $1 ORDER BY b.id`, title)
}

func (b *booksRepository) FindByTitleContainingIgnoreCase(ctx context.Context, title string) ([]entity.Book, error) {
	return b.queryBooks(ctx, selectBook+`WHERE b.title ILIKE '%' || $1 || '%' ESCAPE '\' ORDER BY b.id`, likeEscape(title))
}

func (b *booksRepository) FindByIsbn(ctx context.Context, isbn string) (entity.Book, error) {
	return b.queryBook(ctx, selectBook+`WHERE b.isbn = $1`, isbn)
}

func (b *booksRepository) FindByAuthorID(ctx context.Context, authorID int64) ([]entity.Book, error) {
	return b.queryBooks(ctx, selectBook+`WHERE b.author_id = $1 ORDER BY b.id`, authorID)
}

func (b *booksRepository) FindByAuthorName(ctx context.Context, name string) ([]entity.Book, error) {
	return b.queryBooks(ctx, selectBook+`WHERE a.name = $1 ORDER BY b.id`, name)
}

func (b *booksRepository) FindByAuthorNameContainingIgnoreCase(ctx context.Context, name string) ([]entity.Book, error) {
	return b.queryBooks(ctx, selectBook+`WHERE a.name ILIKE '%' || $1 || '%' ESCAPE '\' ORDER BY b.id`, likeEscape(name))
}

// FindByTitleOrAuthorNameContaining matches keyword case-insensitively
// against both the title and the author name.
func (b *booksRepository) FindByTitleOrAuthorNameContaining(ctx context.Context, keyword string) ([]entity.Book, error) {
	return b.queryBooks(ctx,
		selectBook+`WHERE b.title ILIKE '%' || $1 || '%' OR a.name ILIKE '%' || $1 || '%' ORDER BY b.id`,
		keyword)
}

func (b *booksRepository) ExistsByIsbn(ctx context.Context, isbn string) (bool, error) {
	const query = `
SELECT EXISTS(SELECT 1 FROM books WHERE isbn = $1)
`
	return b.exists(ctx, query, isbn)
}

func (b *booksRepository) CountByAuthorID(ctx context.Context, authorID int64) (int64, error) {
	const query = `
SELECT count(*) FROM books WHERE author_id = $1
`
	var count int64
	if err := executor(ctx, b.db).QueryRow(ctx, query, authorID).Scan(&count); err != nil {
		return 0, dbError(b.logger, err, fmt.Sprintf("count books of author %d", authorID))
	}

	return count, nil
}

func (b *booksRepository) exists(ctx context.Context, query string, arg any) (bool, error) {
	var exists bool
	if err := executor(ctx, b.db).QueryRow(ctx, query, arg).Scan(&exists); err != nil {
		return false, dbError(b.logger, err, "check book")
	}

	return exists, nil
}
